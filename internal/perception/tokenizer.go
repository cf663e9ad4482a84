// Package perception turns raw turn text into structured understanding:
// normalized tokens, action/entity/qualifier buckets, related-term records
// from the lexical oracle, and a ranking of the fixed concept catalog.
package perception

import "strings"

// stopwords are tokens that carry no intent signal: articles, auxiliaries,
// pronouns, and filler verbs. Preference triggers ("like", "enjoy") are
// deliberately absent so preference questions stay detectable.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "that": true,
	"this": true, "these": true, "those": true, "from": true, "into": true,
	"onto": true, "over": true, "under": true, "about": true, "after": true,
	"before": true, "while": true, "because": true, "then": true, "than": true,
	"when": true, "what": true, "where": true, "which": true, "who": true,
	"whom": true, "why": true, "how": true, "there": true, "here": true,
	"have": true, "has": true, "had": true, "was": true, "were": true,
	"are": true, "been": true, "being": true, "does": true, "did": true,
	"doing": true, "will": true, "would": true, "could": true, "should": true,
	"can": true, "may": true, "might": true, "must": true, "shall": true,
	"you": true, "your": true, "yours": true, "they": true, "them": true,
	"their": true, "she": true, "her": true, "hers": true, "him": true,
	"his": true, "its": true, "our": true, "ours": true, "mine": true,
	"not": true, "but": true, "all": true, "any": true, "each": true,
	"some": true, "just": true, "also": true, "very": true, "too": true,
	"please": true, "make": true, "want": true, "need": true, "let": true,
	"lets": true, "get": true, "got": true, "thing": true, "things": true,
}

// shortAllowed exempts a few meaningful two-letter (and one-letter) terms
// from the minimum-length rule: language and interface names that would
// otherwise be unreachable.
var shortAllowed = map[string]bool{
	"c": true, "go": true, "hi": true, "ui": true, "ux": true, "qa": true,
}

// NormalizeWord lowercases w and strips every character outside
// [a-z0-9_-]. The result may be empty.
func NormalizeWord(w string) string {
	var b strings.Builder
	b.Grow(len(w))
	for _, r := range strings.ToLower(w) {
		if isTokenRune(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isTokenRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-'
}

func isRawTokenRune(r rune) bool {
	return isTokenRune(r) || (r >= 'A' && r <= 'Z')
}

// IsNoise reports whether a normalized token should be discarded: empty,
// below the minimum length (unless allow-listed), or a stopword.
func IsNoise(tok string) bool {
	if tok == "" {
		return true
	}
	if len(tok) < 3 && !shortAllowed[tok] {
		return true
	}
	return stopwords[tok]
}

// Tokenize splits raw text into normalized, non-noise tokens. Runs of
// [A-Za-z0-9_-] form tokens; everything else delimits. Deterministic and
// side-effect free, so tokenizing the same text twice yields identical
// output.
func Tokenize(text string) []string {
	var out []string
	var run strings.Builder
	flush := func() {
		if run.Len() == 0 {
			return
		}
		tok := NormalizeWord(run.String())
		run.Reset()
		if !IsNoise(tok) {
			out = append(out, tok)
		}
	}
	for _, r := range text {
		if isRawTokenRune(r) {
			run.WriteRune(r)
			continue
		}
		flush()
	}
	flush()
	return out
}
