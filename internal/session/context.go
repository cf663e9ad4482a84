// Package session holds the turn-spanning memory of one conversation:
// cumulative action/entity/qualifier sets, scored language/platform/
// framework fields with alternatives, the weighted term-frequency table,
// and the bookkeeping the synthesizer needs for non-repeating phrasing.
package session

import (
	"github.com/google/uuid"

	"github.com/johndoe6345789/WordNet/internal/logging"
	"github.com/johndoe6345789/WordNet/internal/perception"
)

const (
	// maxSetEntries caps each cumulative unique set. Past the cap new
	// unique values are refused; existing values are never dropped.
	maxSetEntries = 128
	// maxTermEntries caps how many distinct terms the frequency table
	// tracks. Counts for tracked terms keep accumulating past the cap.
	maxTermEntries = 512
)

// uniqueList is an insertion-ordered set with a fixed capacity.
type uniqueList struct {
	items []string
	seen  map[string]bool
}

func newUniqueList() *uniqueList {
	return &uniqueList{seen: make(map[string]bool)}
}

// add inserts v if absent. The return value reports whether v is now a
// member; a refused insertion past the cap returns false.
func (u *uniqueList) add(v string) bool {
	if v == "" {
		return false
	}
	if u.seen[v] {
		return true
	}
	if len(u.items) >= maxSetEntries {
		return false
	}
	u.seen[v] = true
	u.items = append(u.items, v)
	return true
}

func (u *uniqueList) has(v string) bool { return u.seen[v] }

func (u *uniqueList) size() int { return len(u.items) }

func (u *uniqueList) list() []string {
	out := make([]string, len(u.items))
	copy(out, u.items)
	return out
}

func (u *uniqueList) reset() {
	u.items = nil
	u.seen = make(map[string]bool)
}

// ScoredField tracks the best-known value for language, platform, or
// framework. The score only ever climbs; displaced and lower-scoring
// distinct values are kept as alternatives instead of being dropped.
type ScoredField struct {
	Value        string
	Score        int
	alternatives *uniqueList
}

func newScoredField() ScoredField {
	return ScoredField{alternatives: newUniqueList()}
}

// Alternatives returns the recorded lower-scoring values in first-seen
// order.
func (f *ScoredField) Alternatives() []string { return f.alternatives.list() }

// observe applies one turn's detection. A strictly greater score replaces
// the stored value and demotes it into the alternatives; anything else
// distinct lands in the alternatives directly.
func (f *ScoredField) observe(value string, score int) {
	if value == "" || score <= 0 {
		return
	}
	if f.Value == "" || score > f.Score {
		if f.Value != "" && f.Value != value {
			f.alternatives.add(f.Value)
		}
		f.Value = value
		f.Score = score
		f.removeAlternative(value)
		return
	}
	if value != f.Value {
		f.alternatives.add(value)
	}
}

// removeAlternative drops v after it is promoted to primary, keeping the
// "appears exactly once, never as both" shape of the field.
func (f *ScoredField) removeAlternative(v string) {
	if !f.alternatives.seen[v] {
		return
	}
	delete(f.alternatives.seen, v)
	items := f.alternatives.items[:0]
	for _, it := range f.alternatives.items {
		if it != v {
			items = append(items, it)
		}
	}
	f.alternatives.items = items
}

func (f *ScoredField) reset() {
	f.Value = ""
	f.Score = 0
	f.alternatives.reset()
}

// Context is one conversation's memory. It has single-goroutine ownership:
// one turn runs to completion before the next begins, and nothing else
// reads it concurrently.
type Context struct {
	id string

	actions    *uniqueList
	entities   *uniqueList
	qualifiers *uniqueList

	Language  ScoredField
	Platform  ScoredField
	Framework ScoredField

	termFreq  map[string]int
	termOrder []string

	Turns       int
	LastEntity  string
	LastAction  string
	LastVariant int
}

// NewContext returns an empty session context.
func NewContext() *Context {
	c := &Context{id: uuid.NewString()}
	c.init()
	logging.Session("session %s started", c.id)
	return c
}

func (c *Context) init() {
	c.actions = newUniqueList()
	c.entities = newUniqueList()
	c.qualifiers = newUniqueList()
	c.Language = newScoredField()
	c.Platform = newScoredField()
	c.Framework = newScoredField()
	c.termFreq = make(map[string]int)
	c.termOrder = nil
	c.Turns = 0
	c.LastEntity = ""
	c.LastAction = ""
	c.LastVariant = -1
}

// ID returns the session identifier.
func (c *Context) ID() string { return c.id }

// BeginTurn increments the turn counter. Called before any analysis so
// turns with no usable signal still count.
func (c *Context) BeginTurn() {
	c.Turns++
}

// BumpTerm implements perception.Memory. New terms past the table cap are
// refused; counts for tracked terms never stop accumulating.
func (c *Context) BumpTerm(term string, weight int) {
	if term == "" || weight <= 0 {
		return
	}
	if _, tracked := c.termFreq[term]; !tracked {
		if len(c.termOrder) >= maxTermEntries {
			return
		}
		c.termOrder = append(c.termOrder, term)
	}
	c.termFreq[term] += weight
}

// TermCount implements perception.Memory.
func (c *Context) TermCount(term string) int { return c.termFreq[term] }

// TopTerm returns the most frequent remembered term, ties broken by first
// observation, or "" for an empty table.
func (c *Context) TopTerm() string {
	best := ""
	bestCount := 0
	for _, term := range c.termOrder {
		if n := c.termFreq[term]; n > bestCount {
			best = term
			bestCount = n
		}
	}
	return best
}

// Merge folds one completed turn analysis into the session. It runs after
// the analyzer finishes, so no partially merged state is observable within
// a turn.
func (c *Context) Merge(a *perception.TurnAnalysis) {
	for _, v := range a.Actions {
		c.actions.add(v)
	}
	for _, v := range a.Entities {
		c.entities.add(v)
	}
	for _, v := range a.Qualifiers {
		c.qualifiers.add(v)
	}
	c.Language.observe(a.Language.Value, a.Language.Score)
	c.Platform.observe(a.Platform.Value, a.Platform.Score)
	c.Framework.observe(a.Framework.Value, a.Framework.Score)
	logging.Session("turn %d merged: %d entities, language=%q platform=%q framework=%q",
		c.Turns, c.entities.size(), c.Language.Value, c.Platform.Value, c.Framework.Value)
}

// Actions returns the cumulative action set in first-seen order.
func (c *Context) Actions() []string { return c.actions.list() }

// Entities returns the cumulative entity set in first-seen order.
func (c *Context) Entities() []string { return c.entities.list() }

// Qualifiers returns the cumulative qualifier set in first-seen order.
func (c *Context) Qualifiers() []string { return c.qualifiers.list() }

// HasEntity reports membership in the cumulative entity set.
func (c *Context) HasEntity(v string) bool { return c.entities.has(v) }

// RecordReply stores the phrasing bookkeeping of an accepted reply.
func (c *Context) RecordReply(variant int, entity, action string) {
	c.LastVariant = variant
	c.LastEntity = entity
	c.LastAction = action
}

// Reset clears the whole session back to its initial state. The session
// identifier survives.
func (c *Context) Reset() {
	c.init()
	logging.Session("session %s reset", c.id)
}
