package fetch

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"fpl-league-mcp/internal/model"
)

// Wire shapes, trimmed to the fields the assembly needs.

type standingsPage struct {
	Standings struct {
		HasNext bool `json:"has_next"`
		Results []struct {
			Entry      int    `json:"entry"`
			PlayerName string `json:"player_name"`
			EntryName  string `json:"entry_name"`
			Rank       int    `json:"rank"`
			LastRank   int    `json:"last_rank"`
			EventTotal int    `json:"event_total"`
			Total      int    `json:"total"`
		} `json:"results"`
	} `json:"standings"`
}

type entryPicks struct {
	ActiveChip   string `json:"active_chip"`
	EntryHistory struct {
		Points             int `json:"points"`
		EventTransfersCost int `json:"event_transfers_cost"`
	} `json:"entry_history"`
	Picks []struct {
		Element       int  `json:"element"`
		Position      int  `json:"position"`
		Multiplier    int  `json:"multiplier"`
		IsCaptain     bool `json:"is_captain"`
		IsViceCaptain bool `json:"is_vice_captain"`
	} `json:"picks"`
}

type entryHistory struct {
	Current []struct {
		Event       int `json:"event"`
		OverallRank int `json:"overall_rank"`
	} `json:"current"`
}

type entryTransfer struct {
	ElementIn  int `json:"element_in"`
	ElementOut int `json:"element_out"`
	Event      int `json:"event"`
}

type eventLive struct {
	Elements []struct {
		ID    int `json:"id"`
		Stats struct {
			TotalPoints int `json:"total_points"`
		} `json:"stats"`
	} `json:"elements"`
}

type bootstrapStatic struct {
	Elements []struct {
		ID      int    `json:"id"`
		WebName string `json:"web_name"`
	} `json:"elements"`
}

// standingsRow is the league-table line a record is seeded from.
type standingsRow struct {
	Entry      int
	PlayerName string
	EntryName  string
}

// Workers bounds the concurrent per-manager fetches; the zero value falls
// back to the original tool's 20-worker pool.
const defaultWorkers = 20

// BuildRecords assembles one validated ManagerGameweekRecord per manager in
// the league for the given gameweek. It fetches standings pages, the
// gameweek live points, and per manager the picks, history, and transfers,
// with at most workers in-flight managers at a time.
func (c *Client) BuildRecords(ctx context.Context, leagueID int, gw int, workers int, force bool) ([]model.ManagerGameweekRecord, error) {
	if workers < 1 {
		workers = defaultWorkers
	}

	rows, err := c.fetchStandings(ctx, leagueID, force)
	if err != nil {
		return nil, err
	}

	livePoints, err := c.fetchLivePoints(ctx, gw, force)
	if err != nil {
		return nil, err
	}

	records := make([]model.ManagerGameweekRecord, len(rows))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, row := range rows {
		g.Go(func() error {
			rec, err := c.buildRecord(gctx, row, gw, livePoints, force)
			if err != nil {
				return fmt.Errorf("entry %d: %w", row.Entry, err)
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) fetchStandings(ctx context.Context, leagueID int, force bool) ([]standingsRow, error) {
	var rows []standingsRow
	for page := 1; ; page++ {
		raw, err := c.LeagueStandingsPage(ctx, leagueID, page, force)
		if err != nil {
			return nil, err
		}
		var parsed standingsPage
		if err := json.Unmarshal(raw, &parsed); err != nil {
			return nil, fmt.Errorf("parse standings page %d: %w", page, err)
		}
		for _, r := range parsed.Standings.Results {
			rows = append(rows, standingsRow{
				Entry:      r.Entry,
				PlayerName: r.PlayerName,
				EntryName:  r.EntryName,
			})
		}
		if !parsed.Standings.HasNext {
			break
		}
	}
	return rows, nil
}

// fetchLivePoints maps element id to its live gameweek points.
func (c *Client) fetchLivePoints(ctx context.Context, gw int, force bool) (map[int]int, error) {
	raw, err := c.EventLive(ctx, gw, force)
	if err != nil {
		return nil, err
	}
	var live eventLive
	if err := json.Unmarshal(raw, &live); err != nil {
		return nil, fmt.Errorf("parse gw %d live: %w", gw, err)
	}
	out := make(map[int]int, len(live.Elements))
	for _, e := range live.Elements {
		out[e.ID] = e.Stats.TotalPoints
	}
	return out, nil
}

func (c *Client) buildRecord(ctx context.Context, row standingsRow, gw int, livePoints map[int]int, force bool) (model.ManagerGameweekRecord, error) {
	var rec model.ManagerGameweekRecord

	rawPicks, err := c.EntryPicks(ctx, row.Entry, gw, force)
	if err != nil {
		return rec, err
	}
	var picks entryPicks
	if err := json.Unmarshal(rawPicks, &picks); err != nil {
		return rec, fmt.Errorf("parse picks: %w", err)
	}

	rawHistory, err := c.EntryHistory(ctx, row.Entry, force)
	if err != nil {
		return rec, err
	}
	var history entryHistory
	if err := json.Unmarshal(rawHistory, &history); err != nil {
		return rec, fmt.Errorf("parse history: %w", err)
	}

	rawTransfers, err := c.EntryTransfers(ctx, row.Entry, force)
	if err != nil {
		return rec, err
	}
	var transfers []entryTransfer
	if err := json.Unmarshal(rawTransfers, &transfers); err != nil {
		return rec, fmt.Errorf("parse transfers: %w", err)
	}

	chip := model.Chip(picks.ActiveChip)

	rec = model.ManagerGameweekRecord{
		EntryID:      row.Entry,
		ManagerName:  row.PlayerName,
		TeamName:     row.EntryName,
		RawPoints:    picks.EntryHistory.Points,
		TransferCost: picks.EntryHistory.EventTransfersCost,
		ActiveChip:   chip,
	}

	for _, h := range history.Current {
		switch h.Event {
		case gw:
			rec.RankAfter = h.OverallRank
		case gw - 1:
			rec.RankBefore = h.OverallRank
		}
	}

	for _, p := range picks.Picks {
		if p.IsCaptain {
			rec.Captained = append(rec.Captained, p.Element)
		}
		switch chip {
		case model.ChipBenchBoost:
			// Bench slots are positions 12-15; with bboost active they
			// all scored.
			if p.Position > 11 {
				rec.BenchBoostPoints += livePoints[p.Element]
			}
		case model.ChipTripleCaptain:
			// Raw points already include the 3x captain; the extra beyond
			// a normal double is one more multiple.
			if p.IsCaptain {
				rec.TripleCaptainExtra += livePoints[p.Element]
			}
		}
	}

	for _, t := range transfers {
		if t.Event != gw {
			continue
		}
		if t.ElementIn != 0 {
			rec.Transfers = append(rec.Transfers, model.Transfer{Element: t.ElementIn, Direction: model.TransferIn})
		}
		if t.ElementOut != 0 {
			rec.Transfers = append(rec.Transfers, model.Transfer{Element: t.ElementOut, Direction: model.TransferOut})
		}
	}

	if err := rec.Validate(); err != nil {
		return model.ManagerGameweekRecord{}, err
	}
	return rec, nil
}

// PlayerNames maps element id to web name from bootstrap-static, for
// decorating frequency tables at the presentation edge.
func (c *Client) PlayerNames(ctx context.Context, force bool) (map[int]string, error) {
	raw, err := c.BootstrapStatic(ctx, force)
	if err != nil {
		return nil, err
	}
	var bs bootstrapStatic
	if err := json.Unmarshal(raw, &bs); err != nil {
		return nil, fmt.Errorf("parse bootstrap-static: %w", err)
	}
	out := make(map[int]string, len(bs.Elements))
	for _, e := range bs.Elements {
		out[e.ID] = e.WebName
	}
	return out, nil
}
