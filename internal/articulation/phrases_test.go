package articulation

import (
	"os"
	"path/filepath"
	"testing"
)

func TestProviderDefaults(t *testing.T) {
	p := NewProvider()
	if got := p.Get(PhraseAskLanguage); got != "Which language or runtime should I target?" {
		t.Errorf("default fragment = %q", got)
	}
	if got := p.Get(PhraseKey("unknown_key")); got != "" {
		t.Errorf("unknown key = %q, want empty", got)
	}
}

func TestProviderOverride(t *testing.T) {
	p := NewProvider()
	p.SetOverrides(map[PhraseKey]string{PhraseAskLanguage: "Quel langage?"})

	if got := p.Get(PhraseAskLanguage); got != "Quel langage?" {
		t.Errorf("override not served: %q", got)
	}
	// Other keys still fall back to defaults.
	if got := p.Get(PhraseAskPlatform); got == "" {
		t.Error("unrelated key lost its default")
	}
	// Empty override values fall through to the default.
	p.SetOverrides(map[PhraseKey]string{PhraseAskLanguage: ""})
	if got := p.Get(PhraseAskLanguage); got == "" {
		t.Error("empty override masked the default")
	}
}

func TestLoadFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phrases.json")
	doc := `{
		"strings": {"ask_language": "Which tongue?"},
		"templates": {"language_ack": "Fine, %s then."},
		"extra": {"nested": "deep value"}
	}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	p := NewProvider()
	if err := p.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := p.Get(PhraseAskLanguage); got != "Which tongue?" {
		t.Errorf("strings section fragment = %q", got)
	}
	if got := p.Get(PhraseLanguageAck); got != "Fine, %s then." {
		t.Errorf("templates section fragment = %q", got)
	}
	// Non-wrapper objects flatten with dotted keys.
	if got := p.Get(PhraseKey("extra.nested")); got != "deep value" {
		t.Errorf("nested fragment = %q", got)
	}
}

func TestLoadFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phrases.yaml")
	doc := "strings:\n  ask_platform: Where should it run?\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	p := NewProvider()
	if err := p.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := p.Get(PhraseAskPlatform); got != "Where should it run?" {
		t.Errorf("yaml fragment = %q", got)
	}
}

func TestLoadFileRejectsBadInput(t *testing.T) {
	p := NewProvider()
	if err := p.LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file accepted")
	}

	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := p.LoadFile(path); err == nil {
		t.Error("malformed file accepted")
	}
	// A failed load leaves the previous fragments intact.
	if got := p.Get(PhraseAskLanguage); got == "" {
		t.Error("failed load cleared defaults")
	}
}

func TestEveryKeyHasDefault(t *testing.T) {
	keys := []PhraseKey{
		PhrasePersonaGreeting0, PhrasePersonaGreeting1, PhrasePersonaGreeting2,
		PhraseGreetingWithPersona, PhraseGreetingPlain,
		PhrasePreferenceAnswer, PhraseLanguageAck, PhrasePlatformAck,
		PhraseActionLead0, PhraseActionLead1, PhraseActionLead2, PhraseActionLead3,
		PhraseEntityLead0, PhraseEntityLead1, PhraseEntityLead2, PhraseEntityLead3,
		PhraseNoFocus0, PhraseNoFocus1,
		PhraseGlossLead0, PhraseGlossLead1,
		PhraseSecondaryLead, PhraseHypernymLead, PhraseSynonymLead,
		PhraseDefaultsClause, PhraseMemoryCallback, PhraseQuestionAnswer,
		PhraseAskLanguage, PhraseAskPlatform, PhraseAskBoth,
		PhraseAskPlanOrSample, PhraseAskSoftware, PhraseAskNext,
		PhraseNeedMoreDetail, PhraseVerbLeadIn, PhraseHardFallback,
	}
	p := NewProvider()
	for _, key := range keys {
		if p.Get(key) == "" {
			t.Errorf("key %q has no default fragment", key)
		}
	}
}
