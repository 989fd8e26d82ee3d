package main

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fpl-league-mcp/internal/analysis"
	"fpl-league-mcp/internal/config"
	"fpl-league-mcp/internal/metrics"
)

type LeagueGWArgs struct {
	LeagueID int `json:"league_id" jsonschema:"Classic league id (required)"`
	GW       int `json:"gw" jsonschema:"Gameweek to analyze (required)"`
}

type TopNArgs struct {
	LeagueID int `json:"league_id" jsonschema:"Classic league id (required)"`
	GW       int `json:"gw" jsonschema:"Gameweek to analyze (required)"`
	N        int `json:"n" jsonschema:"Number of top managers by adjusted points (0 = server default)"`
}

type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fpl-league-mcp",
			Version: "0.1.0",
		},
		nil,
	)

	registry := make([]toolInfo, 0, 4)

	addTool(server, &registry, &mcp.Tool{
		Name:        "league_summary",
		Description: "Chip-adjusted league digest: top raw/adjusted scorers and biggest overall-rank movers",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args LeagueGWArgs) (*mcp.CallToolResult, any, error) {
		return observed("league_summary", func() (*mcp.CallToolResult, error) {
			leagueID, gw, err := requireLeagueGW(args.LeagueID, args.GW)
			if err != nil {
				return toolError(err), nil
			}
			records, err := adjustedRecords(ctx, cfg, leagueID, gw)
			if err != nil {
				return toolError(err), nil
			}
			summary, err := analysis.Summarize(records)
			if err != nil {
				return toolError(err), nil
			}
			payload := &LeagueSummaryPayload{Run: newRun(leagueID, gw, len(records)), Summary: summary}
			if err := writeDerived(cfg, fmt.Sprintf("summary/league/%d/gw/%d.json", leagueID, gw), payload); err != nil {
				return toolError(err), nil
			}
			return marshalTool(payload)
		})
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "top_n_report",
		Description: "Aggregates over the top N managers by adjusted points: means, chip usage, captain and transfer tables",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args TopNArgs) (*mcp.CallToolResult, any, error) {
		return observed("top_n_report", func() (*mcp.CallToolResult, error) {
			leagueID, gw, err := requireLeagueGW(args.LeagueID, args.GW)
			if err != nil {
				return toolError(err), nil
			}
			n := args.N
			if n == 0 {
				n = cfg.DefaultTopN
			}
			records, err := adjustedRecords(ctx, cfg, leagueID, gw)
			if err != nil {
				return toolError(err), nil
			}
			report, err := analysis.AnalyzeTopN(records, n)
			if err != nil {
				return toolError(err), nil
			}
			names, err := newFetchClient(cfg).PlayerNames(ctx, false)
			if err != nil {
				return toolError(err), nil
			}
			payload := renderTopN(newRun(leagueID, gw, len(records)), report, names)
			if err := writeDerived(cfg, fmt.Sprintf("summary/top_n/%d/gw/%d_n%d.json", leagueID, gw, report.N), payload); err != nil {
				return toolError(err), nil
			}
			return marshalTool(payload)
		})
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "adjusted_standings",
		Description: "Full league table ranked by chip-adjusted points (raw vs adjusted per manager)",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args LeagueGWArgs) (*mcp.CallToolResult, any, error) {
		return observed("adjusted_standings", func() (*mcp.CallToolResult, error) {
			leagueID, gw, err := requireLeagueGW(args.LeagueID, args.GW)
			if err != nil {
				return toolError(err), nil
			}
			records, err := adjustedRecords(ctx, cfg, leagueID, gw)
			if err != nil {
				return toolError(err), nil
			}
			payload, err := renderStandings(newRun(leagueID, gw, len(records)), records)
			if err != nil {
				return toolError(err), nil
			}
			if err := writeDerived(cfg, fmt.Sprintf("summary/adjusted_standings/%d/gw/%d.json", leagueID, gw), payload); err != nil {
				return toolError(err), nil
			}
			return marshalTool(payload)
		})
	})

	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})

	apiKey := strings.TrimSpace(os.Getenv("FPL_MCP_API_KEY"))
	if cfg.RequireAuth && apiKey == "" {
		log.Fatal("FPL_MCP_API_KEY is required (set env var or FPLLEAGUE_REQUIRE_AUTH=false)")
	}

	withAuth := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" {
				next(w, r)
				return
			}
			key := strings.TrimSpace(r.Header.Get(cfg.AuthHeader))
			if key == "" {
				if authz := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
					key = strings.TrimSpace(authz[7:])
				}
			}
			if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}
			next(w, r)
		}
	}

	http.HandleFunc("/health", withAuth(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}))

	http.HandleFunc("/tools", withAuth(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		b, _ := json.MarshalIndent(map[string]any{"tools": registry}, "", "  ")
		w.Write(b)
	}))

	http.Handle("/metrics", promhttp.Handler())

	http.HandleFunc(cfg.MCPPath, withAuth(func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, r)
	}))

	log.Printf("MCP HTTP server listening on %s%s", cfg.Addr, cfg.MCPPath)
	if err := http.ListenAndServe(cfg.Addr, nil); err != nil {
		log.Fatal(err)
	}
}

func addTool[T any](server *mcp.Server, registry *[]toolInfo, tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error)) {
	*registry = append(*registry, toolInfo{Name: tool.Name, Description: tool.Description})
	mcp.AddTool(server, tool, handler)
}

func requireLeagueGW(leagueID int, gw int) (int, int, error) {
	if leagueID == 0 {
		return 0, 0, fmt.Errorf("league_id is required")
	}
	if gw < 1 || gw > 38 {
		return 0, 0, fmt.Errorf("gw must be between 1 and 38")
	}
	return leagueID, gw, nil
}

// observed wraps a tool body with the call counter.
func observed(tool string, fn func() (*mcp.CallToolResult, error)) (*mcp.CallToolResult, any, error) {
	res, err := fn()
	outcome := "ok"
	if err != nil || (res != nil && res.IsError) {
		outcome = "error"
	}
	metrics.ToolCalls.WithLabelValues(tool, outcome).Inc()
	return res, nil, err
}

func marshalTool(v any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError(err), nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(b)},
		},
	}, nil
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}
