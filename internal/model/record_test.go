package model

import (
	"errors"
	"testing"
)

func TestValidate_AcceptsConsistentRecords(t *testing.T) {
	cases := []ManagerGameweekRecord{
		{EntryID: 1, RawPoints: 60},
		{EntryID: 2, RawPoints: 80, TransferCost: 4, ActiveChip: ChipBenchBoost, BenchBoostPoints: 12},
		{EntryID: 3, RawPoints: 90, ActiveChip: ChipTripleCaptain, TripleCaptainExtra: 15},
		{EntryID: 4, RawPoints: 0, ActiveChip: ChipFreeHit},
	}
	for _, rec := range cases {
		if err := rec.Validate(); err != nil {
			t.Errorf("Validate(%+v) = %v, want nil", rec, err)
		}
	}
}

func TestValidate_RejectsChipMismatch(t *testing.T) {
	rec := ManagerGameweekRecord{EntryID: 1, RawPoints: 60, BenchBoostPoints: 5}
	if err := rec.Validate(); !errors.Is(err, ErrDataIntegrity) {
		t.Errorf("Validate = %v, want ErrDataIntegrity", err)
	}
}

func TestChipLabel(t *testing.T) {
	if got := ChipNone.Label(); got != "none" {
		t.Errorf("ChipNone.Label() = %q, want none", got)
	}
	if got := ChipTripleCaptain.Label(); got != "3xc" {
		t.Errorf("ChipTripleCaptain.Label() = %q, want 3xc", got)
	}
}
