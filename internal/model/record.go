package model

import (
	"errors"
	"fmt"
)

// Chip is the active chip for a gameweek, using the wire names the FPL API
// returns ("" when no chip was played).
type Chip string

const (
	ChipNone          Chip = ""
	ChipBenchBoost    Chip = "bboost"
	ChipTripleCaptain Chip = "3xc"
	ChipWildcard      Chip = "wildcard"
	ChipFreeHit       Chip = "freehit"
)

// Known reports whether c is one of the chips this engine understands.
func (c Chip) Known() bool {
	switch c {
	case ChipNone, ChipBenchBoost, ChipTripleCaptain, ChipWildcard, ChipFreeHit:
		return true
	}
	return false
}

// Label returns the human key used in chip-count tables, mapping the empty
// chip to "none".
func (c Chip) Label() string {
	if c == ChipNone {
		return "none"
	}
	return string(c)
}

type TransferDirection string

const (
	TransferIn  TransferDirection = "in"
	TransferOut TransferDirection = "out"
)

type Transfer struct {
	Element   int               `json:"element"`
	Direction TransferDirection `json:"direction"`
}

// ErrDataIntegrity marks records whose fields contradict each other, e.g.
// a chip bonus claimed for a chip that was not played.
var ErrDataIntegrity = errors.New("data integrity fault")

// ManagerGameweekRecord is one manager's raw gameweek line, validated once
// at the data-source boundary and immutable afterwards. Adjusted points are
// always derived, never set here.
type ManagerGameweekRecord struct {
	EntryID     int    `json:"entry_id"`
	ManagerName string `json:"manager_name"`
	TeamName    string `json:"team_name"`

	RawPoints    int  `json:"raw_points"`
	TransferCost int  `json:"transfer_cost"`
	ActiveChip   Chip `json:"active_chip"`

	// BenchBoostPoints is the total scored by the bench, only meaningful
	// when ActiveChip is bboost. TripleCaptainExtra is the one additional
	// captain multiple beyond the normal double, only meaningful for 3xc.
	BenchBoostPoints   int `json:"bench_boost_points"`
	TripleCaptainExtra int `json:"triple_captain_extra"`

	// Overall ranks around the gameweek. RankBefore is 0 for managers with
	// no prior rank (new entries).
	RankBefore int `json:"rank_before"`
	RankAfter  int `json:"rank_after"`

	Captained []int      `json:"captained"`
	Transfers []Transfer `json:"transfers"`
}

// Validate checks the record's internal consistency. All violations are
// ErrDataIntegrity so callers can branch with errors.Is.
func (r ManagerGameweekRecord) Validate() error {
	if r.RawPoints < 0 {
		return fmt.Errorf("%w: entry %d has negative raw points %d", ErrDataIntegrity, r.EntryID, r.RawPoints)
	}
	if r.TransferCost < 0 {
		return fmt.Errorf("%w: entry %d has negative transfer cost %d", ErrDataIntegrity, r.EntryID, r.TransferCost)
	}
	if !r.ActiveChip.Known() {
		return fmt.Errorf("%w: entry %d played unknown chip %q", ErrDataIntegrity, r.EntryID, string(r.ActiveChip))
	}
	if r.BenchBoostPoints < 0 {
		return fmt.Errorf("%w: entry %d has negative bench boost points", ErrDataIntegrity, r.EntryID)
	}
	if r.TripleCaptainExtra < 0 {
		return fmt.Errorf("%w: entry %d has negative triple captain extra", ErrDataIntegrity, r.EntryID)
	}
	if r.BenchBoostPoints != 0 && r.ActiveChip != ChipBenchBoost {
		return fmt.Errorf("%w: entry %d claims bench boost points without playing bboost", ErrDataIntegrity, r.EntryID)
	}
	if r.TripleCaptainExtra != 0 && r.ActiveChip != ChipTripleCaptain {
		return fmt.Errorf("%w: entry %d claims triple captain extra without playing 3xc", ErrDataIntegrity, r.EntryID)
	}
	return nil
}
