package lexicon

import "strings"

// detachment is one suffix rewrite rule of the morphological analyzer.
type detachment struct {
	suffix string
	ending string
}

// Suffix detachment tables per part of speech, tried in order. These mirror
// the standard WordNet rules; adverbs have no productive morphology.
var detachments = map[PartOfSpeech][]detachment{
	Noun: {
		{"ses", "s"},
		{"xes", "x"},
		{"zes", "z"},
		{"ches", "ch"},
		{"shes", "sh"},
		{"men", "man"},
		{"ies", "y"},
		{"s", ""},
	},
	Verb: {
		{"ies", "y"},
		{"es", "e"},
		{"es", ""},
		{"ed", "e"},
		{"ed", ""},
		{"ing", "e"},
		{"ing", ""},
		{"s", ""},
	},
	Adjective: {
		{"er", ""},
		{"est", ""},
		{"er", "e"},
		{"est", "e"},
	},
}

// morphCandidates generates base-form candidates for word in rule order.
// The caller validates each candidate against the index; the first one that
// exists wins.
func morphCandidates(word string, pos PartOfSpeech) []string {
	rules, ok := detachments[pos]
	if !ok {
		return nil
	}
	var out []string
	seen := make(map[string]bool)
	for _, r := range rules {
		if !strings.HasSuffix(word, r.suffix) {
			continue
		}
		stem := strings.TrimSuffix(word, r.suffix) + r.ending
		if len(stem) < 2 || stem == word || seen[stem] {
			continue
		}
		seen[stem] = true
		out = append(out, stem)
	}
	return out
}
