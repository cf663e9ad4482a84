package session

import "encoding/json"

// FieldSnapshot is the dump shape of one scored field. Field names are
// stable; golden tests depend on them.
type FieldSnapshot struct {
	Value        string   `json:"value"`
	Score        int      `json:"score"`
	Alternatives []string `json:"alternatives"`
}

// Snapshot is the observable dump of a session context.
type Snapshot struct {
	Turns      int           `json:"turns"`
	Actions    []string      `json:"actions"`
	Entities   []string      `json:"entities"`
	Qualifiers []string      `json:"qualifiers"`
	Language   FieldSnapshot `json:"language"`
	Platform   FieldSnapshot `json:"platform"`
	Framework  FieldSnapshot `json:"framework"`
}

func snapshotField(f *ScoredField) FieldSnapshot {
	alts := f.Alternatives()
	if alts == nil {
		alts = []string{}
	}
	return FieldSnapshot{Value: f.Value, Score: f.Score, Alternatives: alts}
}

// Snapshot captures the current session state. Lists are never nil so the
// JSON form is stable across empty and populated sessions.
func (c *Context) Snapshot() Snapshot {
	emptySafe := func(list []string) []string {
		if list == nil {
			return []string{}
		}
		return list
	}
	return Snapshot{
		Turns:      c.Turns,
		Actions:    emptySafe(c.Actions()),
		Entities:   emptySafe(c.Entities()),
		Qualifiers: emptySafe(c.Qualifiers()),
		Language:   snapshotField(&c.Language),
		Platform:   snapshotField(&c.Platform),
		Framework:  snapshotField(&c.Framework),
	}
}

// DumpJSON renders the snapshot as indented JSON for the /dump command and
// the --json run mode.
func (c *Context) DumpJSON() (string, error) {
	b, err := json.MarshalIndent(c.Snapshot(), "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
