package perception

import (
	"testing"

	"github.com/johndoe6345789/WordNet/internal/lexicon"
)

func TestNewCatalogExpandsSeeds(t *testing.T) {
	oracle := lexicon.NewStatic().
		AddWords("test", lexicon.Noun, "trial", "run").
		AddWords("test", lexicon.Verb, "examine").
		AddWords("deploy", lexicon.Verb, "position")

	cat := NewCatalog(oracle)
	if got := len(cat.Concepts()); got != 13 {
		t.Fatalf("catalog has %d concepts, want 13", got)
	}

	testingConcept := cat.Lookup("testing")
	if testingConcept == nil {
		t.Fatal("testing concept missing")
	}
	for _, term := range []string{"test", "verify", "validate", "qa", "trial", "run", "examine"} {
		if !testingConcept.Contains(term) {
			t.Errorf("testing concept missing term %q", term)
		}
	}

	deployment := cat.Lookup("deployment")
	if !deployment.Contains("position") {
		t.Error("deployment concept missing oracle synonym 'position'")
	}
	if deployment.Contains("trial") {
		t.Error("deployment concept leaked a testing term")
	}
}

func TestNewCatalogSurvivesEmptyOracle(t *testing.T) {
	cat := NewCatalog(lexicon.NewStatic())
	for _, c := range cat.Concepts() {
		if c.TermCount() < len(c.Seeds) {
			t.Errorf("concept %s kept %d terms, want at least its %d seeds",
				c.Name, c.TermCount(), len(c.Seeds))
		}
	}
}

func TestCatalogLookupUnknown(t *testing.T) {
	if c := NewCatalog(lexicon.NewStatic()).Lookup("nonesuch"); c != nil {
		t.Errorf("Lookup(nonesuch) = %v, want nil", c)
	}
}

func TestCategoryOrder(t *testing.T) {
	cat := NewCatalog(lexicon.NewStatic())
	concepts := cat.Concepts()
	// Declaration order is the focus tie-break: lifecycle stages first.
	for i, c := range concepts[:6] {
		if c.Category != Lifecycle {
			t.Errorf("concept %d (%s) is %s, want lifecycle", i, c.Name, c.Category)
		}
	}
	for i, c := range concepts[6:] {
		if c.Category != DesignAspect {
			t.Errorf("concept %d (%s) is %s, want design-aspect", i+6, c.Name, c.Category)
		}
	}
}
