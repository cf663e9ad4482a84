package articulation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/johndoe6345789/WordNet/internal/lexicon"
	"github.com/johndoe6345789/WordNet/internal/perception"
)

// Reply length bounds enforced by the guardrail.
const (
	minReplyLen = 6
	maxReplyLen = 420
)

// Guardrail normalizes and validates every candidate reply, including
// greetings and the hard fallback. It never rejects without the caller
// having a retry or fallback path.
type Guardrail struct {
	oracle  lexicon.Oracle
	phrases *Provider
}

// NewGuardrail builds a guardrail over the oracle used for verb checks.
func NewGuardrail(oracle lexicon.Oracle, phrases *Provider) *Guardrail {
	return &Guardrail{oracle: oracle, phrases: phrases}
}

// Normalize applies the repair steps: collapse whitespace, substitute the
// need-more-detail sentence for empty text, prepend a verb-bearing lead-in
// when no verb is found, capitalize, and close with terminal punctuation.
func (g *Guardrail) Normalize(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		text = g.phrases.Get(PhraseNeedMoreDetail)
	}
	if !g.hasVerb(text) {
		text = strings.TrimSpace(g.phrases.Get(PhraseVerbLeadIn) + " " + text)
	}
	text = capitalizeFirst(text)
	if !strings.ContainsAny(text[len(text)-1:], ".!?") {
		text += "."
	}
	return text
}

// Accept reports whether a normalized reply may be emitted.
func (g *Guardrail) Accept(text string) bool {
	if n := len(text); n < minReplyLen || n > maxReplyLen {
		return false
	}
	if strings.Contains(text, "??") || strings.Contains(text, "!!") {
		return false
	}
	return g.hasVerb(text)
}

// Validate normalizes text and reports whether the result is acceptable.
func (g *Guardrail) Validate(text string) (string, bool) {
	normalized := g.Normalize(text)
	return normalized, g.Accept(normalized)
}

func (g *Guardrail) hasVerb(text string) bool {
	return lexicon.HasVerbSense(g.oracle, perception.Tokenize(text))
}

func capitalizeFirst(text string) string {
	r, size := utf8.DecodeRuneInString(text)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return text
	}
	return string(unicode.ToUpper(r)) + text[size:]
}
