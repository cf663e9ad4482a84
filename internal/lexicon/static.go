package lexicon

import "strings"

type staticKey struct {
	lemma string
	pos   PartOfSpeech
}

// Static is an in-memory oracle seeded from explicit entries. It backs the
// test suites and any environment without WordNet data files.
type Static struct {
	senses map[staticKey][]Sense
}

// NewStatic returns an empty in-memory oracle.
func NewStatic() *Static {
	return &Static{senses: make(map[staticKey][]Sense)}
}

// Add registers a sense for a lemma and part of speech. Entries accumulate
// in insertion order, so the first Add for a lemma is its first sense.
func (s *Static) Add(lemma string, pos PartOfSpeech, sense Sense) *Static {
	k := staticKey{lemma: strings.ToLower(lemma), pos: pos}
	s.senses[k] = append(s.senses[k], sense)
	return s
}

// AddWords is shorthand for a gloss-less sense whose first word is the lemma.
func (s *Static) AddWords(lemma string, pos PartOfSpeech, synonyms ...string) *Static {
	return s.Add(lemma, pos, Sense{Words: append([]string{lemma}, synonyms...)})
}

// Lookup implements Oracle.
func (s *Static) Lookup(word string, pos PartOfSpeech) []Sense {
	word = strings.ToLower(strings.TrimSpace(word))
	if out, ok := s.senses[staticKey{lemma: word, pos: pos}]; ok {
		return out
	}
	if base, ok := s.BaseForm(word, pos); ok {
		return s.senses[staticKey{lemma: base, pos: pos}]
	}
	return nil
}

// BaseForm implements Oracle using the shared detachment rules validated
// against the registered lemmas.
func (s *Static) BaseForm(word string, pos PartOfSpeech) (string, bool) {
	word = strings.ToLower(strings.TrimSpace(word))
	for _, cand := range morphCandidates(word, pos) {
		if _, ok := s.senses[staticKey{lemma: cand, pos: pos}]; ok {
			return cand, true
		}
	}
	return "", false
}
