package perception

import (
	"strings"

	"github.com/johndoe6345789/WordNet/internal/lexicon"
	"github.com/johndoe6345789/WordNet/internal/logging"
)

// Memory is the slice of session state the analyzer reads and writes while
// a turn is in flight: the weighted term-frequency table.
type Memory interface {
	// BumpTerm adds weight to a term's frequency count.
	BumpTerm(term string, weight int)
	// TermCount returns a term's accumulated frequency.
	TermCount(term string) int
}

// Fixed option lists for language/platform/framework detection. List order
// is match priority: the first option present among the turn's entities
// becomes the candidate value.
var (
	languageOptions = []string{
		"c", "c++", "python", "javascript", "typescript", "go", "rust",
		"java", "c#", "ruby", "php", "swift", "kotlin",
	}
	platformOptions = []string{
		"linux", "windows", "macos", "web", "browser", "cloud", "server",
		"mobile", "android", "ios", "embedded", "desktop", "cli",
		"terminal", "docker", "kubernetes",
	}
	frameworkOptions = []string{
		"react", "vue", "angular", "svelte", "django", "flask", "fastapi",
		"rails", "spring", "laravel", "express", "flutter",
	}
)

// genericVerbs are dropped from multi-action turns so specific verbs win.
// A lone generic action is kept; the filter never empties the list.
var genericVerbs = map[string]bool{
	"build": true, "make": true, "do": true, "write": true, "create": true,
	"get": true, "use": true, "have": true, "put": true,
}

// softwareNouns add domain-score weight when they appear literally among
// the turn's entities.
var softwareNouns = map[string]bool{
	"code": true, "app": true, "api": true, "server": true, "service": true,
	"ui": true, "gui": true, "database": true, "library": true,
	"program": true, "game": true, "cli": true,
}

var greetingWords = map[string]bool{
	"hello": true, "hi": true, "hey": true, "greeting": true,
}

var preferenceTriggers = map[string]bool{"like": true, "enjoy": true}

// focus list caps per category.
const (
	maxLifecycleFocus = 2
	maxDesignFocus    = 3
)

// Analyzer consumes one turn of tokens and produces a TurnAnalysis. It is
// stateless between turns; all cross-turn state lives in the Memory.
type Analyzer struct {
	oracle  lexicon.Oracle
	catalog *Catalog
}

// NewAnalyzer builds an analyzer over the given oracle and catalog.
func NewAnalyzer(oracle lexicon.Oracle, catalog *Catalog) *Analyzer {
	return &Analyzer{oracle: oracle, catalog: catalog}
}

// Analyze runs the full per-turn pipeline on raw text: tokenization, the
// four-way part-of-speech probe per token, related-term collection, option
// detection, domain scoring, and concept ranking. Term frequencies are
// written into mem as the turn progresses so the concept boost sees this
// turn's updates.
func (an *Analyzer) Analyze(text string, mem Memory) *TurnAnalysis {
	a := &TurnAnalysis{IsQuestion: strings.Contains(text, "?")}

	tokens := Tokenize(text)
	preference := false
	for _, tok := range tokens {
		if preferenceTriggers[tok] {
			preference = true
		}
		an.analyzeToken(a, tok, mem)
	}
	a.IsPreferenceQuestion = a.IsQuestion && preference

	an.filterGenericActions(a)
	a.Language = detectOption(a.Entities, languageOptions)
	a.Platform = detectOption(a.Entities, platformOptions)
	a.Framework = detectOption(a.Entities, frameworkOptions)
	an.rankConcepts(a, mem)
	an.scoreDomain(a)
	a.HasGreeting = an.detectGreeting(a)

	logging.PerceptionDebug("turn analyzed: %d tokens, %d entities, %d actions, domain=%d",
		len(tokens), len(a.Entities), len(a.Actions), a.DomainScore)
	return a
}

// analyzeToken probes the oracle for tok in the fixed order noun, verb,
// adjective, adverb and files the results. A token with no sense at all is
// still kept as an unresolved entity literal.
func (an *Analyzer) analyzeToken(a *TurnAnalysis, tok string, mem Memory) {
	matched := false
	for _, pos := range lexicon.AllPartsOfSpeech {
		senses := an.oracle.Lookup(tok, pos)
		if len(senses) == 0 {
			continue
		}
		matched = true
		an.fileToken(a, tok, pos)

		sense := senses[0]
		record := an.recordFor(a, tok)
		if record.Gloss == "" {
			record.Gloss = sense.Gloss
		}
		for _, w := range sense.Words {
			norm := NormalizeWord(w)
			if norm == "" {
				continue
			}
			mem.BumpTerm(norm, 2)
			if IsNoise(norm) || norm == tok {
				continue
			}
			an.fileToken(a, norm, pos)
			record.addSynonym(norm)
		}
		for _, hyper := range sense.Hypernyms {
			for _, w := range hyper.Words {
				norm := NormalizeWord(w)
				if norm == "" {
					continue
				}
				record.addHypernym(norm)
				mem.BumpTerm(norm, 1)
			}
		}
		for _, glossWord := range distinctGlossWords(sense.Gloss) {
			mem.BumpTerm(glossWord, 1)
		}
	}
	if !matched {
		a.Entities = appendUnique(a.Entities, tok)
	}
}

// fileToken places tok into the bucket matching the part of speech.
func (an *Analyzer) fileToken(a *TurnAnalysis, tok string, pos lexicon.PartOfSpeech) {
	switch pos {
	case lexicon.Verb:
		a.Actions = appendUnique(a.Actions, tok)
	case lexicon.Noun:
		a.Entities = appendUnique(a.Entities, tok)
	default:
		a.Qualifiers = appendUnique(a.Qualifiers, tok)
	}
}

func (an *Analyzer) recordFor(a *TurnAnalysis, term string) *RelatedTermRecord {
	if r := a.RelatedFor(term); r != nil {
		return r
	}
	r := newRelatedTermRecord(term)
	a.Related = append(a.Related, r)
	return r
}

// filterGenericActions drops generic verbs from multi-action turns, but
// never empties the list: a lone generic action survives, and so does a
// turn whose actions are all generic.
func (an *Analyzer) filterGenericActions(a *TurnAnalysis) {
	if len(a.Actions) <= 1 {
		return
	}
	filtered := make([]string, 0, len(a.Actions))
	for _, act := range a.Actions {
		if !genericVerbs[act] {
			filtered = append(filtered, act)
		}
	}
	if len(filtered) > 0 {
		a.Actions = filtered
	}
}

// detectOption intersects entities with a fixed option list. The first
// option in list order that appears becomes the value; the score is the
// size of the whole intersection.
func detectOption(entities []string, options []string) Detection {
	present := make(map[string]bool, len(entities))
	for _, e := range entities {
		present[e] = true
	}
	var d Detection
	for _, opt := range options {
		if !present[opt] {
			continue
		}
		if d.Value == "" {
			d.Value = opt
		}
		d.Score++
	}
	return d
}

// rankConcepts scores every catalog concept against the turn and fills the
// capped focus lists: matched entities contribute 2 plus a frequency boost,
// and concept terms standing as this turn's synonyms or hypernyms add 2 or
// 1 each.
func (an *Analyzer) rankConcepts(a *TurnAnalysis, mem Memory) {
	synonyms := make(map[string]bool)
	hypernyms := make(map[string]bool)
	for _, r := range a.Related {
		for _, s := range r.Synonyms {
			synonyms[s] = true
		}
		for _, h := range r.Hypernyms {
			hypernyms[h] = true
		}
	}

	concepts := an.catalog.Concepts()
	scores := make([]int, len(concepts))
	for i, c := range concepts {
		for _, entity := range a.Entities {
			if !c.Contains(entity) {
				continue
			}
			boost := 0
			switch freq := mem.TermCount(entity); {
			case freq > 4:
				boost = 2
			case freq > 0:
				boost = 1
			}
			scores[i] += 2 + boost
		}
		for term := range c.terms {
			if synonyms[term] {
				scores[i] += 2
			} else if hypernyms[term] {
				scores[i]++
			}
		}
	}

	a.LifecycleFocus = pickFocus(concepts, scores, Lifecycle, maxLifecycleFocus)
	a.DesignFocus = pickFocus(concepts, scores, DesignAspect, maxDesignFocus)
}

// pickFocus repeatedly takes the highest-scoring unconsumed concept of the
// category, ties broken by declaration order, until the cap is hit or no
// positive score remains.
func pickFocus(concepts []*Concept, scores []int, cat Category, limit int) []string {
	taken := make([]bool, len(concepts))
	var out []string
	for len(out) < limit {
		best := -1
		for i, c := range concepts {
			if taken[i] || c.Category != cat || scores[i] <= 0 {
				continue
			}
			if best < 0 || scores[i] > scores[best] {
				best = i
			}
		}
		if best < 0 {
			break
		}
		taken[best] = true
		out = append(out, concepts[best].Name)
	}
	return out
}

// scoreDomain accumulates the heuristic signal that this turn is about a
// software project.
func (an *Analyzer) scoreDomain(a *TurnAnalysis) {
	if a.Language.Score > 0 || a.Platform.Score > 0 || a.Framework.Score > 0 {
		a.DomainScore++
	}
	if len(a.LifecycleFocus) > 0 || len(a.DesignFocus) > 0 {
		a.DomainScore += 2
	}
	for _, e := range a.Entities {
		if softwareNouns[e] {
			a.DomainScore++
		}
	}
	if !a.IsQuestion {
		for _, act := range a.Actions {
			if !genericVerbs[act] {
				a.DomainScore++
				break
			}
		}
	}
}

func (an *Analyzer) detectGreeting(a *TurnAnalysis) bool {
	for _, e := range a.Entities {
		if greetingWords[e] {
			return true
		}
	}
	for _, r := range a.Related {
		if r.HasHypernym("greeting") || r.HasHypernym("salutation") {
			return true
		}
	}
	return false
}

// distinctGlossWords tokenizes gloss text with the same rules as turn input
// and de-duplicates the result.
func distinctGlossWords(gloss string) []string {
	if gloss == "" {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, w := range Tokenize(gloss) {
		if seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}

// appendUnique inserts v into list if absent, refusing insertions past the
// bucket cap.
func appendUnique(list []string, v string) []string {
	if v == "" || len(list) >= maxBucketTerms {
		return list
	}
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}
