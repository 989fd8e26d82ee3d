package analysis

import (
	"fmt"
	"sort"

	"fpl-league-mcp/internal/model"
)

// TopManager is one selected manager in a TopNReport.
type TopManager struct {
	EntryID        int    `json:"entry_id"`
	ManagerName    string `json:"manager_name"`
	TeamName       string `json:"team_name"`
	RawPoints      int    `json:"raw_points"`
	AdjustedPoints int    `json:"adjusted_points"`
	OverallRank    int    `json:"overall_rank"`
}

// TopNReport aggregates the N managers with the highest adjusted points.
// The frequency tables map player element id to occurrence count and are
// always present, possibly empty; whether an empty triple-captain table is
// rendered is the consumer's call.
type TopNReport struct {
	N        int          `json:"n"`
	Selected []TopManager `json:"selected"`

	MeanRawPoints      float64 `json:"mean_raw_points"`
	MeanAdjustedPoints float64 `json:"mean_adjusted_points"`
	MeanOverallRank    float64 `json:"mean_overall_rank"`

	ChipCounts map[string]int `json:"chip_counts"`

	Captained       map[int]int `json:"captained"`
	TripleCaptained map[int]int `json:"triple_captained"`
	TransferredIn   map[int]int `json:"transferred_in"`
	TransferredOut  map[int]int `json:"transferred_out"`
}

// AnalyzeTopN ranks records by adjusted points and aggregates over the top n.
// n larger than the record count means "all records". Selection order is
// deterministic: adjusted points descending, then raw points descending,
// then entry id ascending.
func AnalyzeTopN(records []AdjustedRecord, n int) (*TopNReport, error) {
	if n < 1 {
		return nil, fmt.Errorf("analyze top n: n=%d: %w", n, ErrInvalidConfig)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("analyze top n: %w", ErrEmptyInput)
	}

	selected := selectTopN(records, n)

	report := &TopNReport{
		N:               len(selected),
		Selected:        make([]TopManager, 0, len(selected)),
		ChipCounts:      make(map[string]int),
		Captained:       make(map[int]int),
		TripleCaptained: make(map[int]int),
		TransferredIn:   make(map[int]int),
		TransferredOut:  make(map[int]int),
	}

	rawSum, adjSum, rankSum := 0, 0, 0
	for _, r := range selected {
		report.Selected = append(report.Selected, TopManager{
			EntryID:        r.EntryID,
			ManagerName:    r.ManagerName,
			TeamName:       r.TeamName,
			RawPoints:      r.RawPoints,
			AdjustedPoints: r.AdjustedPoints,
			OverallRank:    r.RankAfter,
		})
		rawSum += r.RawPoints
		adjSum += r.AdjustedPoints
		rankSum += r.RankAfter

		report.ChipCounts[r.ActiveChip.Label()]++

		for _, element := range r.Captained {
			report.Captained[element]++
			if r.ActiveChip == model.ChipTripleCaptain {
				report.TripleCaptained[element]++
			}
		}
		for _, t := range r.Transfers {
			switch t.Direction {
			case model.TransferIn:
				report.TransferredIn[t.Element]++
			case model.TransferOut:
				report.TransferredOut[t.Element]++
			}
		}
	}

	size := float64(len(selected))
	report.MeanRawPoints = float64(rawSum) / size
	report.MeanAdjustedPoints = float64(adjSum) / size
	report.MeanOverallRank = float64(rankSum) / size

	return report, nil
}

// selectTopN sorts a copy of records by the documented ordering and returns
// the first n (all of them when n exceeds the count). Selection is kept
// separate from aggregation so the ranking policy can change without
// touching the statistics.
func selectTopN(records []AdjustedRecord, n int) []AdjustedRecord {
	sorted := make([]AdjustedRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.AdjustedPoints != b.AdjustedPoints {
			return a.AdjustedPoints > b.AdjustedPoints
		}
		if a.RawPoints != b.RawPoints {
			return a.RawPoints > b.RawPoints
		}
		return a.EntryID < b.EntryID
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
