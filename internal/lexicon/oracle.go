// Package lexicon implements the lexical oracle used by perception and
// articulation: lemma lookup per part of speech, synonym/hypernym/gloss
// access, and morphological base-forming.
//
// The primary implementation reads the WordNet database files directly
// (index.* and data.*). A SQLite-backed cache and an in-memory static
// oracle share the same contract.
package lexicon

// PartOfSpeech selects which WordNet database a lookup goes against.
type PartOfSpeech int

const (
	Noun PartOfSpeech = iota
	Verb
	Adjective
	Adverb
)

// AllPartsOfSpeech is the fixed probe order used by the turn analyzer.
var AllPartsOfSpeech = []PartOfSpeech{Noun, Verb, Adjective, Adverb}

// String returns the WordNet file suffix for the part of speech.
func (p PartOfSpeech) String() string {
	switch p {
	case Noun:
		return "noun"
	case Verb:
		return "verb"
	case Adjective:
		return "adj"
	case Adverb:
		return "adv"
	}
	return "unknown"
}

// Sense is one meaning of a lemma: its synonym surface forms in database
// order, an optional gloss, and hypernym senses resolved one level deep.
// Hypernyms of hypernyms are not materialized; nothing downstream walks
// deeper than one link.
type Sense struct {
	Words     []string
	Gloss     string
	Hypernyms []Sense
}

// Oracle resolves words against a lexical knowledge base. Implementations
// are synchronous and side-effect-free from the caller's point of view.
// A miss is a nil slice, never an error.
type Oracle interface {
	// Lookup returns every sense of word for the given part of speech,
	// first trying the word as-is and then its morphological base form.
	Lookup(word string, pos PartOfSpeech) []Sense

	// BaseForm returns the normalized lemma for an inflected word, if the
	// knowledge base recognizes one.
	BaseForm(word string, pos PartOfSpeech) (string, bool)
}

// FirstSense returns the first sense of a lookup, or false on a miss.
func FirstSense(o Oracle, word string, pos PartOfSpeech) (Sense, bool) {
	senses := o.Lookup(word, pos)
	if len(senses) == 0 {
		return Sense{}, false
	}
	return senses[0], true
}

// HasVerbSense reports whether any word in text tokens resolves as a verb.
// Used by the reply guardrail.
func HasVerbSense(o Oracle, words []string) bool {
	for _, w := range words {
		if len(o.Lookup(w, Verb)) > 0 {
			return true
		}
	}
	return false
}
