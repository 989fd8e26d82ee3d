package main

import (
	"sort"

	"fpl-league-mcp/internal/analysis"
)

// PlayerCount is one row of a rendered frequency table, decorated with the
// player's web name when bootstrap-static knows it.
type PlayerCount struct {
	Element int    `json:"element"`
	Name    string `json:"name,omitempty"`
	Count   int    `json:"count"`
}

// TopNPayload is the tool-facing rendering of an engine TopNReport:
// frequency tables become sorted lists, and the triple-captain table is
// dropped entirely when nobody in the selected set played the chip.
type TopNPayload struct {
	Run AnalysisRun `json:"run"`

	N        int                   `json:"n"`
	Selected []analysis.TopManager `json:"selected"`

	MeanRawPoints      float64 `json:"mean_raw_points"`
	MeanAdjustedPoints float64 `json:"mean_adjusted_points"`
	MeanOverallRank    float64 `json:"mean_overall_rank"`

	ChipCounts map[string]int `json:"chip_counts"`

	Captained       []PlayerCount `json:"captained"`
	TripleCaptained []PlayerCount `json:"triple_captained,omitempty"`
	TransferredIn   []PlayerCount `json:"transferred_in"`
	TransferredOut  []PlayerCount `json:"transferred_out"`
}

type LeagueSummaryPayload struct {
	Run     AnalysisRun             `json:"run"`
	Summary *analysis.LeagueSummary `json:"summary"`
}

// StandingRow is one line of the full adjusted table.
type StandingRow struct {
	Position       int    `json:"position"`
	EntryID        int    `json:"entry_id"`
	ManagerName    string `json:"manager_name"`
	TeamName       string `json:"team_name"`
	RawPoints      int    `json:"raw_points"`
	AdjustedPoints int    `json:"adjusted_points"`
	OverallRank    int    `json:"overall_rank"`
}

type AdjustedStandingsPayload struct {
	Run  AnalysisRun   `json:"run"`
	Rows []StandingRow `json:"rows"`
}

// renderTable turns a frequency map into a list sorted by count descending,
// element id ascending on ties.
func renderTable(freq map[int]int, names map[int]string) []PlayerCount {
	out := make([]PlayerCount, 0, len(freq))
	for element, count := range freq {
		out = append(out, PlayerCount{Element: element, Name: names[element], Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Element < out[j].Element
	})
	return out
}

func renderTopN(run AnalysisRun, report *analysis.TopNReport, names map[int]string) *TopNPayload {
	payload := &TopNPayload{
		Run:                run,
		N:                  report.N,
		Selected:           report.Selected,
		MeanRawPoints:      report.MeanRawPoints,
		MeanAdjustedPoints: report.MeanAdjustedPoints,
		MeanOverallRank:    report.MeanOverallRank,
		ChipCounts:         report.ChipCounts,
		Captained:          renderTable(report.Captained, names),
		TransferredIn:      renderTable(report.TransferredIn, names),
		TransferredOut:     renderTable(report.TransferredOut, names),
	}
	// "No one played it" hides the table; an empty-but-rendered table would
	// read as "played but no captains", which cannot happen.
	if len(report.TripleCaptained) > 0 {
		payload.TripleCaptained = renderTable(report.TripleCaptained, names)
	}
	return payload
}

func renderStandings(run AnalysisRun, records []analysis.AdjustedRecord) (*AdjustedStandingsPayload, error) {
	// Selecting n = all records reuses the analyzer's documented ordering.
	report, err := analysis.AnalyzeTopN(records, len(records))
	if err != nil {
		return nil, err
	}
	rows := make([]StandingRow, 0, len(report.Selected))
	for i, m := range report.Selected {
		rows = append(rows, StandingRow{
			Position:       i + 1,
			EntryID:        m.EntryID,
			ManagerName:    m.ManagerName,
			TeamName:       m.TeamName,
			RawPoints:      m.RawPoints,
			AdjustedPoints: m.AdjustedPoints,
			OverallRank:    m.OverallRank,
		})
	}
	return &AdjustedStandingsPayload{Run: run, Rows: rows}, nil
}
