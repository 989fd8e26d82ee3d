package main

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"fpl-league-mcp/internal/analysis"
	"fpl-league-mcp/internal/model"
)

func TestRenderTable_SortsByCountThenElement(t *testing.T) {
	freq := map[int]int{30: 2, 10: 5, 20: 2}
	names := map[int]string{10: "Haaland", 20: "Saka"}

	got := renderTable(freq, names)

	want := []PlayerCount{
		{Element: 10, Name: "Haaland", Count: 5},
		{Element: 20, Name: "Saka", Count: 2},
		{Element: 30, Count: 2}, // unknown element keeps its id, no name
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("renderTable = %+v, want %+v", got, want)
	}
}

func TestRenderTopN_OmitsEmptyTripleCaptainTable(t *testing.T) {
	report := &analysis.TopNReport{
		N:               1,
		ChipCounts:      map[string]int{"none": 1},
		Captained:       map[int]int{10: 1},
		TripleCaptained: map[int]int{},
		TransferredIn:   map[int]int{},
		TransferredOut:  map[int]int{},
	}
	payload := renderTopN(AnalysisRun{RunID: "r"}, report, nil)

	b, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), "triple_captained") {
		t.Errorf("payload renders an empty triple-captain table: %s", b)
	}
	if !strings.Contains(string(b), `"captained"`) {
		t.Errorf("payload missing captained table: %s", b)
	}
}

func TestRenderTopN_KeepsNonEmptyTripleCaptainTable(t *testing.T) {
	report := &analysis.TopNReport{
		N:               1,
		ChipCounts:      map[string]int{"3xc": 1},
		Captained:       map[int]int{10: 1},
		TripleCaptained: map[int]int{10: 1},
		TransferredIn:   map[int]int{},
		TransferredOut:  map[int]int{},
	}
	payload := renderTopN(AnalysisRun{RunID: "r"}, report, map[int]string{10: "Haaland"})

	if len(payload.TripleCaptained) != 1 || payload.TripleCaptained[0].Name != "Haaland" {
		t.Errorf("TripleCaptained = %+v, want decorated single row", payload.TripleCaptained)
	}
}

func TestRenderStandings_FullTableInAdjustedOrder(t *testing.T) {
	records := []analysis.AdjustedRecord{
		{ManagerGameweekRecord: model.ManagerGameweekRecord{EntryID: 1, RawPoints: 60}, AdjustedPoints: 52},
		{ManagerGameweekRecord: model.ManagerGameweekRecord{EntryID: 2, RawPoints: 58}, AdjustedPoints: 58},
		{ManagerGameweekRecord: model.ManagerGameweekRecord{EntryID: 3, RawPoints: 40}, AdjustedPoints: 40},
	}
	payload, err := renderStandings(AnalysisRun{RunID: "r"}, records)
	if err != nil {
		t.Fatalf("renderStandings: %v", err)
	}
	if len(payload.Rows) != 3 {
		t.Fatalf("Rows = %d, want 3", len(payload.Rows))
	}
	wantOrder := []int{2, 1, 3}
	for i, row := range payload.Rows {
		if row.EntryID != wantOrder[i] {
			t.Errorf("row %d entry = %d, want %d", i, row.EntryID, wantOrder[i])
		}
		if row.Position != i+1 {
			t.Errorf("row %d position = %d, want %d", i, row.Position, i+1)
		}
	}
}
