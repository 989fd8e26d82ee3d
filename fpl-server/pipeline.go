package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fpl-league-mcp/internal/analysis"
	"fpl-league-mcp/internal/config"
	"fpl-league-mcp/internal/fetch"
	"fpl-league-mcp/internal/store"
)

// AnalysisRun identifies one end-to-end analysis, stamped on every payload
// so logs, derived files, and tool responses can be correlated.
type AnalysisRun struct {
	RunID          string `json:"run_id"`
	LeagueID       int    `json:"league_id"`
	Gameweek       int    `json:"gameweek"`
	Managers       int    `json:"managers"`
	GeneratedAtUTC string `json:"generated_at_utc"`
}

func newRun(leagueID int, gw int, managers int) AnalysisRun {
	return AnalysisRun{
		RunID:          uuid.NewString(),
		LeagueID:       leagueID,
		Gameweek:       gw,
		Managers:       managers,
		GeneratedAtUTC: time.Now().UTC().Format(time.RFC3339),
	}
}

// newFetchClient wires a fetch client from server config.
func newFetchClient(cfg *config.Config) *fetch.Client {
	c := fetch.NewClient(store.NewJSONStore(cfg.RawRoot))
	c.BaseURL = cfg.BaseURL
	c.UserAgent = cfg.UserAgent
	c.Sleep = time.Duration(cfg.SleepMS) * time.Millisecond
	c.UseCache = cfg.UseCache
	return c
}

// adjustedRecords runs the fetch + adjustment front half of the pipeline.
func adjustedRecords(ctx context.Context, cfg *config.Config, leagueID int, gw int) ([]analysis.AdjustedRecord, error) {
	client := newFetchClient(cfg)
	raw, err := client.BuildRecords(ctx, leagueID, gw, cfg.FetchWorkers, false)
	if err != nil {
		return nil, fmt.Errorf("fetch league %d gw %d: %w", leagueID, gw, err)
	}
	return analysis.AdjustAll(raw)
}

// writeDerived persists a payload under the derived root; failures are
// returned so the caller can decide whether they are fatal.
func writeDerived(cfg *config.Config, rel string, payload any) error {
	if !cfg.WriteDerived {
		return nil
	}
	return store.NewJSONStore(cfg.DerivedRoot).WriteJSON(rel, payload)
}
