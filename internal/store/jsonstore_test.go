package store

import (
	"os"
	"strings"
	"testing"
)

func TestWriteRaw_PrettyReindentsJSON(t *testing.T) {
	st := NewJSONStore(t.TempDir())
	if err := st.WriteRaw("league/1/standings.json", []byte(`{"a":1,"b":[2,3]}`), true); err != nil {
		t.Fatalf("WriteRaw: %v", err)
	}
	b, err := st.ReadRaw("league/1/standings.json")
	if err != nil {
		t.Fatalf("ReadRaw: %v", err)
	}
	if !strings.Contains(string(b), "\n  \"a\": 1") {
		t.Errorf("expected indented output, got %q", string(b))
	}
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	st := NewJSONStore(t.TempDir())
	in := map[string]int{"bboost": 2}
	if err := st.WriteJSON("derived/chips.json", in); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if !st.Exists("derived/chips.json") {
		t.Fatal("Exists = false after WriteJSON")
	}
	b, err := st.ReadRaw("derived/chips.json")
	if err != nil {
		t.Fatalf("ReadRaw: %v", err)
	}
	if !strings.Contains(string(b), `"bboost": 2`) {
		t.Errorf("unexpected content %q", string(b))
	}
}

func TestReadRaw_Missing(t *testing.T) {
	st := NewJSONStore(t.TempDir())
	if _, err := st.ReadRaw("nope.json"); !os.IsNotExist(err) {
		t.Errorf("ReadRaw missing file error = %v, want not-exist", err)
	}
}
