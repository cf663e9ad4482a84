package session

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/johndoe6345789/WordNet/internal/perception"
)

func TestSnapshotShape(t *testing.T) {
	c := NewContext()
	c.BeginTurn()
	c.Merge(&perception.TurnAnalysis{
		Actions:  []string{"deploy"},
		Entities: []string{"service", "cli"},
		Language: perception.Detection{Value: "go", Score: 1},
		Platform: perception.Detection{Value: "cli", Score: 1},
	})
	c.Merge(&perception.TurnAnalysis{
		Language: perception.Detection{Value: "python", Score: 1},
	})

	want := Snapshot{
		Turns:      1,
		Actions:    []string{"deploy"},
		Entities:   []string{"service", "cli"},
		Qualifiers: []string{},
		Language: FieldSnapshot{
			Value: "go", Score: 1, Alternatives: []string{"python"},
		},
		Platform: FieldSnapshot{
			Value: "cli", Score: 1, Alternatives: []string{},
		},
		Framework: FieldSnapshot{Alternatives: []string{}},
	}
	if diff := cmp.Diff(want, c.Snapshot()); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

// The dump's field names are a stable contract for golden-output tests.
func TestDumpJSONStableFieldNames(t *testing.T) {
	c := NewContext()
	out, err := c.DumpJSON()
	if err != nil {
		t.Fatalf("DumpJSON: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(out), &raw); err != nil {
		t.Fatalf("dump is not valid JSON: %v", err)
	}
	for _, key := range []string{
		"turns", "actions", "entities", "qualifiers",
		"language", "platform", "framework",
	} {
		if _, ok := raw[key]; !ok {
			t.Errorf("dump missing field %q", key)
		}
	}

	var field map[string]json.RawMessage
	if err := json.Unmarshal(raw["language"], &field); err != nil {
		t.Fatalf("language field: %v", err)
	}
	for _, key := range []string{"value", "score", "alternatives"} {
		if _, ok := field[key]; !ok {
			t.Errorf("language field missing %q", key)
		}
	}
}

func TestDumpJSONEmptySession(t *testing.T) {
	c := NewContext()
	out, err := c.DumpJSON()
	if err != nil {
		t.Fatalf("DumpJSON: %v", err)
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(out), &snap); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if snap.Turns != 0 || len(snap.Entities) != 0 {
		t.Errorf("empty session dump = %+v", snap)
	}
}
