package lexicon

import "testing"

func TestStaticLookup(t *testing.T) {
	o := NewStatic().
		AddWords("pipeline", Noun, "line").
		Add("pipeline", Noun, Sense{Words: []string{"pipeline"}, Gloss: "a series of stages"}).
		AddWords("build", Verb)

	senses := o.Lookup("pipeline", Noun)
	if len(senses) != 2 {
		t.Fatalf("Lookup(pipeline) = %d senses, want 2", len(senses))
	}
	if senses[0].Words[1] != "line" {
		t.Errorf("first sense words = %v", senses[0].Words)
	}
	if senses[1].Gloss != "a series of stages" {
		t.Errorf("second sense gloss = %q", senses[1].Gloss)
	}

	if got := o.Lookup("PIPELINE", Noun); len(got) != 2 {
		t.Error("lookup is not case-insensitive")
	}
	if got := o.Lookup("pipeline", Verb); got != nil {
		t.Errorf("wrong part of speech returned senses: %+v", got)
	}
}

func TestStaticBaseForm(t *testing.T) {
	o := NewStatic().AddWords("pipeline", Noun).AddWords("build", Verb)

	if base, ok := o.BaseForm("pipelines", Noun); !ok || base != "pipeline" {
		t.Errorf("BaseForm(pipelines) = %q, %v", base, ok)
	}
	if senses := o.Lookup("building", Verb); len(senses) != 1 {
		t.Errorf("Lookup(building) via base form = %d senses", len(senses))
	}
	if _, ok := o.BaseForm("widgets", Noun); ok {
		t.Error("BaseForm resolved an unregistered lemma")
	}
}

func TestFirstSense(t *testing.T) {
	o := NewStatic().Add("api", Noun, Sense{Words: []string{"api"}, Gloss: "an interface"})

	s, ok := FirstSense(o, "api", Noun)
	if !ok || s.Gloss != "an interface" {
		t.Fatalf("FirstSense = %+v, %v", s, ok)
	}
	if _, ok := FirstSense(o, "missing", Noun); ok {
		t.Error("FirstSense reported a hit on a miss")
	}
}

func TestHasVerbSense(t *testing.T) {
	o := NewStatic().AddWords("deploy", Verb).AddWords("service", Noun)

	if !HasVerbSense(o, []string{"service", "deploy"}) {
		t.Error("verb in the word list was not detected")
	}
	if HasVerbSense(o, []string{"service", "api"}) {
		t.Error("noun-only list reported a verb")
	}
}
