package analysis

import (
	"errors"
	"reflect"
	"testing"

	"fpl-league-mcp/internal/model"
)

// rec builds a minimal valid record with the given points and chip fields.
func rec(entry, raw, cost int, chip model.Chip, bb, tc int) model.ManagerGameweekRecord {
	return model.ManagerGameweekRecord{
		EntryID:            entry,
		ManagerName:        "Manager",
		RawPoints:          raw,
		TransferCost:       cost,
		ActiveChip:         chip,
		BenchBoostPoints:   bb,
		TripleCaptainExtra: tc,
	}
}

func TestAdjust_NoChip(t *testing.T) {
	adj, err := Adjust(rec(1, 70, 8, model.ChipNone, 0, 0))
	if err != nil {
		t.Fatalf("Adjust: %v", err)
	}
	if adj.AdjustedPoints != 62 {
		t.Errorf("AdjustedPoints = %d, want 62 (raw - transfer cost)", adj.AdjustedPoints)
	}
}

func TestAdjust_BenchBoost(t *testing.T) {
	adj, err := Adjust(rec(1, 80, 4, model.ChipBenchBoost, 12, 0))
	if err != nil {
		t.Fatalf("Adjust: %v", err)
	}
	if adj.AdjustedPoints != 64 {
		t.Errorf("AdjustedPoints = %d, want 64", adj.AdjustedPoints)
	}
}

func TestAdjust_TripleCaptain(t *testing.T) {
	adj, err := Adjust(rec(1, 90, 0, model.ChipTripleCaptain, 0, 15))
	if err != nil {
		t.Fatalf("Adjust: %v", err)
	}
	if adj.AdjustedPoints != 75 {
		t.Errorf("AdjustedPoints = %d, want 75", adj.AdjustedPoints)
	}
}

func TestAdjust_WildcardAndFreeHitHaveNoBonus(t *testing.T) {
	for _, chip := range []model.Chip{model.ChipWildcard, model.ChipFreeHit} {
		adj, err := Adjust(rec(1, 55, 4, chip, 0, 0))
		if err != nil {
			t.Fatalf("Adjust(%s): %v", chip, err)
		}
		if adj.AdjustedPoints != 51 {
			t.Errorf("Adjust(%s) = %d, want 51", chip, adj.AdjustedPoints)
		}
	}
}

func TestAdjust_CanGoNegative(t *testing.T) {
	// Heavy transfer spending on a bad week: no clamping.
	adj, err := Adjust(rec(1, 20, 24, model.ChipNone, 0, 0))
	if err != nil {
		t.Fatalf("Adjust: %v", err)
	}
	if adj.AdjustedPoints != -4 {
		t.Errorf("AdjustedPoints = %d, want -4", adj.AdjustedPoints)
	}
}

func TestAdjust_Idempotent(t *testing.T) {
	in := rec(7, 66, 4, model.ChipBenchBoost, 9, 0)
	first, err := Adjust(in)
	if err != nil {
		t.Fatalf("Adjust: %v", err)
	}
	second, err := Adjust(in)
	if err != nil {
		t.Fatalf("Adjust: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Adjust is not idempotent: %+v vs %+v", first, second)
	}
}

func TestAdjust_ChipBonusMismatch(t *testing.T) {
	cases := []struct {
		name string
		in   model.ManagerGameweekRecord
	}{
		{"bench boost points without bboost", rec(1, 50, 0, model.ChipNone, 5, 0)},
		{"triple captain extra without 3xc", rec(1, 50, 0, model.ChipWildcard, 0, 8)},
		{"negative raw points", rec(1, -1, 0, model.ChipNone, 0, 0)},
		{"negative transfer cost", rec(1, 50, -4, model.ChipNone, 0, 0)},
		{"unknown chip", rec(1, 50, 0, model.Chip("manager"), 0, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Adjust(tc.in); !errors.Is(err, ErrDataIntegrity) {
				t.Errorf("Adjust error = %v, want ErrDataIntegrity", err)
			}
		})
	}
}

func TestAdjustAll_StopsOnFirstFault(t *testing.T) {
	in := []model.ManagerGameweekRecord{
		rec(1, 40, 0, model.ChipNone, 0, 0),
		rec(2, 40, 0, model.ChipNone, 3, 0), // inconsistent
	}
	if _, err := AdjustAll(in); !errors.Is(err, ErrDataIntegrity) {
		t.Fatalf("AdjustAll error = %v, want ErrDataIntegrity", err)
	}

	out, err := AdjustAll(in[:1])
	if err != nil {
		t.Fatalf("AdjustAll: %v", err)
	}
	if len(out) != 1 || out[0].AdjustedPoints != 40 {
		t.Errorf("AdjustAll = %+v, want one record at 40", out)
	}
}
