// Dev harness: runs the fetch + adjustment + aggregation pipeline once and
// prints the payloads, without the MCP server in the way.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"fpl-league-mcp/internal/analysis"
	"fpl-league-mcp/internal/fetch"
	"fpl-league-mcp/internal/store"
)

func main() {
	var (
		leagueID = flag.Int("league", 0, "classic league id (required)")
		gw       = flag.Int("gw", 0, "gameweek to analyze (required)")
		topN     = flag.Int("n", 10, "top managers by adjusted points")
		rawRoot  = flag.String("raw-root", "data/raw", "root directory for raw JSON")
		sleepMS  = flag.Int("sleep-ms", 250, "sleep between requests in ms")
		live     = flag.Bool("live", false, "disable cache and disk writes")
		pretty   = flag.Bool("pretty", true, "pretty-print JSON to disk")
		workers  = flag.Int("workers", 20, "concurrent per-manager fetches")
	)
	flag.Parse()

	if *leagueID == 0 || *gw == 0 {
		flag.Usage()
		os.Exit(2)
	}

	st := store.NewJSONStore(*rawRoot)
	client := fetch.NewClient(st)
	client.PrettyWrite = *pretty && !*live
	client.Sleep = time.Duration(*sleepMS) * time.Millisecond
	client.UseCache = !*live
	client.DisableWrite = *live

	ctx := context.Background()

	raw, err := client.BuildRecords(ctx, *leagueID, *gw, *workers, false)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("fetched %d manager records for league %d gw %d", len(raw), *leagueID, *gw)

	records, err := analysis.AdjustAll(raw)
	if err != nil {
		log.Fatal(err)
	}

	summary, err := analysis.Summarize(records)
	if err != nil {
		log.Fatal(err)
	}
	report, err := analysis.AnalyzeTopN(records, *topN)
	if err != nil {
		log.Fatal(err)
	}

	dump("LEAGUE SUMMARY", summary)
	dump(fmt.Sprintf("TOP %d REPORT", report.N), report)
}

func dump(title string, v any) {
	fmt.Println("\n================================================================================")
	fmt.Println(title)
	fmt.Println("================================================================================")
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(b))
}
