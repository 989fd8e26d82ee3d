package analysis

import (
	"fmt"
)

// Scorer is one manager's entry in a tie-inclusive top-scorer list.
type Scorer struct {
	EntryID     int    `json:"entry_id"`
	ManagerName string `json:"manager_name"`
	TeamName    string `json:"team_name"`
	Points      int    `json:"points"`
}

// RankMove is one manager's overall-rank movement across the gameweek.
// Delta is rank before minus rank after, so positive means improved.
// Pct is Delta as a percentage of the rank before.
type RankMove struct {
	EntryID     int     `json:"entry_id"`
	ManagerName string  `json:"manager_name"`
	TeamName    string  `json:"team_name"`
	RankBefore  int     `json:"rank_before"`
	RankAfter   int     `json:"rank_after"`
	Delta       int     `json:"delta"`
	Pct         float64 `json:"pct"`
}

// LeagueSummary is the league-wide digest for one gameweek. Every list is
// tie-inclusive: when managers tie on the deciding field they all appear,
// in input order.
type LeagueSummary struct {
	Managers int `json:"managers"`

	TopRawScorers      []Scorer `json:"top_raw_scorers"`
	TopAdjustedScorers []Scorer `json:"top_adjusted_scorers"`

	BestRankGain     []RankMove `json:"best_rank_gain"`
	BestRankGainPct  []RankMove `json:"best_rank_gain_pct"`
	WorstRankDrop    []RankMove `json:"worst_rank_drop"`
	WorstRankDropPct []RankMove `json:"worst_rank_drop_pct"`
}

// Summarize computes the league-wide summary over at least one adjusted
// record. Managers with no prior overall rank (rank before = 0) stay
// eligible for the absolute rank-move lists but are excluded from the
// percentage lists, where the ratio is undefined.
func Summarize(records []AdjustedRecord) (*LeagueSummary, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("summarize: %w", ErrEmptyInput)
	}

	s := &LeagueSummary{Managers: len(records)}

	s.TopRawScorers = topScorers(records, func(r AdjustedRecord) int { return r.RawPoints })
	s.TopAdjustedScorers = topScorers(records, func(r AdjustedRecord) int { return r.AdjustedPoints })

	moves := make([]RankMove, 0, len(records))
	for _, r := range records {
		m := RankMove{
			EntryID:     r.EntryID,
			ManagerName: r.ManagerName,
			TeamName:    r.TeamName,
			RankBefore:  r.RankBefore,
			RankAfter:   r.RankAfter,
			Delta:       r.RankBefore - r.RankAfter,
		}
		if r.RankBefore > 0 {
			m.Pct = float64(m.Delta) / float64(r.RankBefore) * 100
		}
		moves = append(moves, m)
	}

	s.BestRankGain = extremeMoves(moves, false, func(m RankMove) float64 { return float64(m.Delta) })
	s.WorstRankDrop = extremeMoves(moves, false, func(m RankMove) float64 { return -float64(m.Delta) })
	s.BestRankGainPct = extremeMoves(moves, true, func(m RankMove) float64 { return m.Pct })
	s.WorstRankDropPct = extremeMoves(moves, true, func(m RankMove) float64 { return -m.Pct })

	return s, nil
}

// topScorers returns every record sharing the maximum of key, in input order.
func topScorers(records []AdjustedRecord, key func(AdjustedRecord) int) []Scorer {
	best := key(records[0])
	for _, r := range records[1:] {
		if k := key(r); k > best {
			best = k
		}
	}
	out := make([]Scorer, 0, 1)
	for _, r := range records {
		if key(r) != best {
			continue
		}
		out = append(out, Scorer{
			EntryID:     r.EntryID,
			ManagerName: r.ManagerName,
			TeamName:    r.TeamName,
			Points:      best,
		})
	}
	return out
}

// extremeMoves returns the moves maximizing key, ties included. With
// ranked=true, moves without a prior rank are skipped; the result may then
// be empty.
func extremeMoves(moves []RankMove, ranked bool, key func(RankMove) float64) []RankMove {
	var out []RankMove
	have := false
	var best float64
	for _, m := range moves {
		if ranked && m.RankBefore == 0 {
			continue
		}
		k := key(m)
		switch {
		case !have || k > best:
			best = k
			out = append(out[:0], m)
			have = true
		case k == best:
			out = append(out, m)
		}
	}
	return out
}
