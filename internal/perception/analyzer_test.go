package perception

import (
	"reflect"
	"testing"

	"github.com/johndoe6345789/WordNet/internal/lexicon"
)

// fakeMemory is a bare term-frequency table standing in for the session.
type fakeMemory map[string]int

func (m fakeMemory) BumpTerm(term string, weight int) {
	if term != "" {
		m[term] += weight
	}
}

func (m fakeMemory) TermCount(term string) int { return m[term] }

// devOracle seeds enough vocabulary to drive the analyzer through its
// interesting paths.
func devOracle() *lexicon.Static {
	o := lexicon.NewStatic()
	o.AddWords("build", lexicon.Verb, "construct")
	o.AddWords("parse", lexicon.Verb, "analyze")
	o.Add("cli", lexicon.Noun, lexicon.Sense{
		Words: []string{"cli"},
		Gloss: "a text-based command prompt",
		Hypernyms: []lexicon.Sense{
			{Words: []string{"interface"}},
		},
	})
	o.Add("log", lexicon.Noun, lexicon.Sense{
		Words: []string{"log"},
		Gloss: "a written record of events",
		Hypernyms: []lexicon.Sense{
			{Words: []string{"record"}},
		},
	})
	o.AddWords("file", lexicon.Noun)
	o.AddWords("fast", lexicon.Adjective, "quick")
	o.Add("hello", lexicon.Noun, lexicon.Sense{
		Words: []string{"hello", "hullo"},
		Gloss: "an expression of greeting",
		Hypernyms: []lexicon.Sense{
			{Words: []string{"greeting", "salutation"}},
		},
	})
	o.AddWords("retry", lexicon.Noun)
	o.AddWords("python", lexicon.Noun, "serpent")
	return o
}

func newTestAnalyzer() *Analyzer {
	oracle := devOracle()
	return NewAnalyzer(oracle, NewCatalog(oracle))
}

func TestAnalyzeBucketsAndDetection(t *testing.T) {
	an := newTestAnalyzer()
	a := an.Analyze("build a CLI that parses log files", fakeMemory{})

	// Verb tokens and their synonyms land in actions; the generic-verb
	// filter then drops "build" because specific verbs survived.
	if !reflect.DeepEqual(a.Actions, []string{"construct", "parses", "parse", "analyze"}) {
		t.Errorf("actions = %v", a.Actions)
	}
	if !containsString(a.Entities, "cli") {
		t.Errorf("entities %v missing cli", a.Entities)
	}
	if a.Platform.Value != "cli" || a.Platform.Score < 1 {
		t.Errorf("platform = %+v, want cli with score >= 1", a.Platform)
	}
	if a.Language.Value != "" {
		t.Errorf("language = %+v, want unset", a.Language)
	}
	if a.DomainScore < 3 {
		t.Errorf("domain score = %d, want at least 3", a.DomainScore)
	}
	if a.IsQuestion || a.HasGreeting {
		t.Errorf("unexpected flags: question=%v greeting=%v", a.IsQuestion, a.HasGreeting)
	}
}

func TestAnalyzeUnresolvedLiteral(t *testing.T) {
	an := newTestAnalyzer()
	a := an.Analyze("kubernetes", fakeMemory{})

	if !reflect.DeepEqual(a.Entities, []string{"kubernetes"}) {
		t.Errorf("entities = %v, want the unresolved literal", a.Entities)
	}
	if a.Platform.Value != "kubernetes" {
		t.Errorf("platform = %+v", a.Platform)
	}
}

func TestAnalyzeGreeting(t *testing.T) {
	an := newTestAnalyzer()
	a := an.Analyze("hello", fakeMemory{})

	if !a.HasGreeting {
		t.Fatal("hasGreeting not set for hello")
	}
	if a.DomainScore != 0 {
		t.Errorf("domain score = %d, want 0 for a bare greeting", a.DomainScore)
	}

	// Greeting standing also flows from hypernyms alone.
	r := a.RelatedFor("hello")
	if r == nil || !r.HasHypernym("salutation") {
		t.Errorf("related record = %+v, want salutation hypernym", r)
	}
}

func TestAnalyzeGreetingLiteralWithoutOracle(t *testing.T) {
	empty := lexicon.NewStatic()
	an := NewAnalyzer(empty, NewCatalog(empty))
	if a := an.Analyze("hello", fakeMemory{}); !a.HasGreeting {
		t.Error("greeting literal not detected without oracle help")
	}
}

func TestAnalyzePreferenceQuestion(t *testing.T) {
	an := newTestAnalyzer()

	a := an.Analyze("do you like python?", fakeMemory{})
	if !a.IsQuestion || !a.IsPreferenceQuestion {
		t.Errorf("flags question=%v preference=%v, want both", a.IsQuestion, a.IsPreferenceQuestion)
	}
	if a.Language.Value != "python" {
		t.Errorf("language = %+v", a.Language)
	}

	a = an.Analyze("add python support", fakeMemory{})
	if a.IsPreferenceQuestion {
		t.Error("statement flagged as preference question")
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	an := newTestAnalyzer()
	a := an.Analyze("", fakeMemory{})

	if len(a.Entities)+len(a.Actions)+len(a.Qualifiers) != 0 {
		t.Errorf("empty input produced buckets: %+v", a)
	}
	if a.DomainScore != 0 {
		t.Errorf("domain score = %d, want 0", a.DomainScore)
	}
}

func TestGenericActionSurvivesAlone(t *testing.T) {
	oracle := lexicon.NewStatic().AddWords("build", lexicon.Verb)
	an := NewAnalyzer(oracle, NewCatalog(oracle))

	a := an.Analyze("build something", fakeMemory{})
	if !reflect.DeepEqual(a.Actions, []string{"build"}) {
		t.Errorf("lone generic action dropped: %v", a.Actions)
	}
}

func TestAllGenericActionsSurvive(t *testing.T) {
	oracle := lexicon.NewStatic().
		AddWords("build", lexicon.Verb).
		AddWords("create", lexicon.Verb)
	an := NewAnalyzer(oracle, NewCatalog(oracle))

	// The filter would empty the list, so the original list is kept.
	a := an.Analyze("build then create", fakeMemory{})
	if !reflect.DeepEqual(a.Actions, []string{"build", "create"}) {
		t.Errorf("all-generic action list was erased: %v", a.Actions)
	}
}

func TestAnalyzeTermFrequency(t *testing.T) {
	an := newTestAnalyzer()
	mem := fakeMemory{}
	an.Analyze("build a CLI", mem)

	// Surface forms weigh 2, gloss words and hypernyms 1.
	if mem["cli"] < 2 {
		t.Errorf("cli frequency = %d, want >= 2", mem["cli"])
	}
	if mem["interface"] != 1 {
		t.Errorf("hypernym frequency = %d, want 1", mem["interface"])
	}
	if mem["command"] != 1 {
		t.Errorf("gloss word frequency = %d, want 1", mem["command"])
	}
}

func TestRankConceptsFocus(t *testing.T) {
	an := newTestAnalyzer()
	a := an.Analyze("build a CLI that parses log files", fakeMemory{})

	// "log" seeds the observability concept.
	if !containsString(a.DesignFocus, "observability") {
		t.Errorf("design focus = %v, want observability", a.DesignFocus)
	}
	if len(a.LifecycleFocus) > maxLifecycleFocus || len(a.DesignFocus) > maxDesignFocus {
		t.Errorf("focus caps exceeded: %v %v", a.LifecycleFocus, a.DesignFocus)
	}
}

func TestRankConceptsFrequencyBoost(t *testing.T) {
	an := newTestAnalyzer()

	cold := an.Analyze("test the api", fakeMemory{})
	if !containsString(cold.DesignFocus, "api") {
		t.Fatalf("design focus = %v, want api", cold.DesignFocus)
	}

	// A hot term frequency must not change which concepts rank, only how
	// strongly, so focus membership stays stable.
	hot := an.Analyze("test the api", fakeMemory{"api": 10})
	if !reflect.DeepEqual(cold.DesignFocus, hot.DesignFocus) {
		t.Errorf("focus changed under frequency boost: %v vs %v", cold.DesignFocus, hot.DesignFocus)
	}
}

func TestRelatedness(t *testing.T) {
	an := newTestAnalyzer()
	a := an.Analyze("build a CLI", fakeMemory{})

	if got := a.Relatedness("interface"); got != 1 {
		t.Errorf("Relatedness(interface) = %d, want 1 (hypernym)", got)
	}
	if got := a.Relatedness("construct"); got != 2 {
		t.Errorf("Relatedness(construct) = %d, want 2 (synonym)", got)
	}
	if got := a.Relatedness("nonesuch"); got != 0 {
		t.Errorf("Relatedness(nonesuch) = %d, want 0", got)
	}
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
