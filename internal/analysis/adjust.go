// Package analysis is the chip-adjustment engine: it turns raw per-manager
// gameweek records into chip-neutral adjusted scores and computes league-wide
// and top-N aggregates over them. Everything here is a pure function over
// immutable inputs; fetching and rendering live elsewhere.
package analysis

import (
	"fpl-league-mcp/internal/model"
)

// AdjustedRecord is a ManagerGameweekRecord plus its derived chip-neutral
// score. It is never mutated after Adjust returns it.
type AdjustedRecord struct {
	model.ManagerGameweekRecord
	AdjustedPoints int `json:"adjusted_points"`
}

// Adjust computes the chip-neutral score for one manager:
//
//	adjusted = raw - transfer cost - chip bonus
//
// where the chip bonus is the bench total for bboost, the extra captain
// multiple for 3xc, and zero otherwise. Transfer cost is subtracted
// regardless of chip, and the result may go negative.
func Adjust(rec model.ManagerGameweekRecord) (AdjustedRecord, error) {
	if err := rec.Validate(); err != nil {
		return AdjustedRecord{}, err
	}

	bonus := 0
	switch rec.ActiveChip {
	case model.ChipBenchBoost:
		bonus = rec.BenchBoostPoints
	case model.ChipTripleCaptain:
		bonus = rec.TripleCaptainExtra
	}

	return AdjustedRecord{
		ManagerGameweekRecord: rec,
		AdjustedPoints:        rec.RawPoints - rec.TransferCost - bonus,
	}, nil
}

// AdjustAll applies Adjust to every record, failing on the first invalid one.
func AdjustAll(recs []model.ManagerGameweekRecord) ([]AdjustedRecord, error) {
	out := make([]AdjustedRecord, 0, len(recs))
	for _, rec := range recs {
		adj, err := Adjust(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, adj)
	}
	return out, nil
}
