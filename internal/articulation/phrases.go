// Package articulation renders the per-turn reply: focus scoring, template
// selection over rotating phrasing variants, enrichment clauses, and the
// guardrail that validates every candidate before it is emitted.
package articulation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// PhraseKey names one localizable sentence fragment. The same keys address
// the built-in English defaults and any override file.
type PhraseKey string

const (
	PhrasePersonaGreeting0 PhraseKey = "persona_greeting_0"
	PhrasePersonaGreeting1 PhraseKey = "persona_greeting_1"
	PhrasePersonaGreeting2 PhraseKey = "persona_greeting_2"

	PhraseGreetingWithPersona PhraseKey = "greeting_with_persona"
	PhraseGreetingPlain       PhraseKey = "greeting_plain"

	PhrasePreferenceAnswer PhraseKey = "preference_answer"
	PhraseLanguageAck      PhraseKey = "language_ack"
	PhrasePlatformAck      PhraseKey = "platform_ack"

	PhraseActionLead0 PhraseKey = "action_lead_0"
	PhraseActionLead1 PhraseKey = "action_lead_1"
	PhraseActionLead2 PhraseKey = "action_lead_2"
	PhraseActionLead3 PhraseKey = "action_lead_3"

	PhraseEntityLead0 PhraseKey = "entity_lead_0"
	PhraseEntityLead1 PhraseKey = "entity_lead_1"
	PhraseEntityLead2 PhraseKey = "entity_lead_2"
	PhraseEntityLead3 PhraseKey = "entity_lead_3"

	PhraseNoFocus0 PhraseKey = "no_focus_0"
	PhraseNoFocus1 PhraseKey = "no_focus_1"

	PhraseGlossLead0      PhraseKey = "gloss_lead_0"
	PhraseGlossLead1      PhraseKey = "gloss_lead_1"
	PhraseSecondaryLead   PhraseKey = "secondary_mention"
	PhraseHypernymLead    PhraseKey = "hypernym_mention"
	PhraseSynonymLead     PhraseKey = "synonym_mention"
	PhraseDefaultsClause  PhraseKey = "defaults_clause"
	PhraseMemoryCallback  PhraseKey = "memory_callback"
	PhraseQuestionAnswer  PhraseKey = "question_answer"
	PhraseAskLanguage     PhraseKey = "ask_language"
	PhraseAskPlatform     PhraseKey = "ask_platform"
	PhraseAskBoth         PhraseKey = "ask_both"
	PhraseAskPlanOrSample PhraseKey = "ask_plan_or_example"
	PhraseAskSoftware     PhraseKey = "ask_software_focus"
	PhraseAskNext         PhraseKey = "ask_next"

	PhraseNeedMoreDetail PhraseKey = "need_more_detail"
	PhraseVerbLeadIn     PhraseKey = "verb_lead_in"
	PhraseHardFallback   PhraseKey = "hard_fallback"
)

// defaultPhrases are the built-in English fragments used whenever no
// override is configured for a key.
var defaultPhrases = map[PhraseKey]string{
	PhrasePersonaGreeting0: "Hey, good to meet you.",
	PhrasePersonaGreeting1: "Hello, glad you stopped by.",
	PhrasePersonaGreeting2: "Hi, ready when you are.",

	PhraseGreetingWithPersona: "%s Tell me about the project you have in mind.",
	PhraseGreetingPlain:       "Tell me what you would like to work on next.",

	PhrasePreferenceAnswer: "I lean toward whatever ships reliably, and %s is a solid pick.",
	PhraseLanguageAck:      "Noted, %s it is.",
	PhrasePlatformAck:      "Understood, we will target %s.",

	PhraseActionLead0: "Got it, let us %s the %s.",
	PhraseActionLead1: "Sounds like we should %s the %s.",
	PhraseActionLead2: "Okay, I can help you %s the %s.",
	PhraseActionLead3: "All right, time to %s the %s.",

	PhraseEntityLead0: "Let us dig into the %s.",
	PhraseEntityLead1: "Happy to focus on the %s.",
	PhraseEntityLead2: "We can center this work on the %s.",
	PhraseEntityLead3: "So this all comes down to the %s.",

	PhraseNoFocus0: "Tell me a bit more about what you want to build.",
	PhraseNoFocus1: "Give me a little more detail and we can get moving.",

	PhraseGlossLead0:      "For reference, %s means %s.",
	PhraseGlossLead1:      "As a working definition, %s is %s.",
	PhraseSecondaryLead:   "We should also keep the %s in the picture.",
	PhraseHypernymLead:    "Broadly speaking that falls under %s.",
	PhraseSynonymLead:     "Some people also call it %s.",
	PhraseDefaultsClause:  "I will assume sensible defaults for the %s for now.",
	PhraseMemoryCallback:  "Earlier you mentioned %s, which still seems relevant.",
	PhraseQuestionAnswer:  "Good question, though I am better at building than debating.",
	PhraseAskLanguage:     "Which language or runtime should I target?",
	PhraseAskPlatform:     "Should this run as a CLI, service, library, or UI?",
	PhraseAskBoth:         "Which language should I target, and should it run as a CLI, service, or UI?",
	PhraseAskPlanOrSample: "Want a short plan first, or should we jump straight to an example?",
	PhraseAskSoftware:     "What would you like to build?",
	PhraseAskNext:         "What should we tackle next?",

	PhraseNeedMoreDetail: "Share a little more detail so I can help.",
	PhraseVerbLeadIn:     "Let me work with this:",
	PhraseHardFallback:   "I am still here and happy to help you build something.",
}

// Provider resolves phrase keys against an optional override map layered
// over the built-in defaults. Safe for concurrent reads while a watcher
// reloads overrides.
type Provider struct {
	mu        sync.RWMutex
	overrides map[PhraseKey]string
}

// NewProvider returns a provider serving only the built-in defaults.
func NewProvider() *Provider {
	return &Provider{overrides: make(map[PhraseKey]string)}
}

// Get returns the configured fragment for key, falling back to the English
// default. Unknown keys yield an empty string.
func (p *Provider) Get(key PhraseKey) string {
	p.mu.RLock()
	text, ok := p.overrides[key]
	p.mu.RUnlock()
	if ok && text != "" {
		return text
	}
	return defaultPhrases[key]
}

// Format renders the fragment for key with args.
func (p *Provider) Format(key PhraseKey, args ...any) string {
	return fmt.Sprintf(p.Get(key), args...)
}

// SetOverrides replaces the whole override map.
func (p *Provider) SetOverrides(overrides map[PhraseKey]string) {
	p.mu.Lock()
	p.overrides = overrides
	p.mu.Unlock()
}

// LoadFile reads an override file and installs its fragments. The format
// is chosen by extension: .yaml/.yml, otherwise JSON.
func (p *Provider) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("articulation: read phrase file: %w", err)
	}
	var doc map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return fmt.Errorf("articulation: parse phrase file %s: %w", filepath.Base(path), err)
	}
	p.SetOverrides(flattenPhrases(doc))
	return nil
}

// flattenPhrases collects string values from the document. The wrapper
// sections "strings" and "templates" are transparent; other nested objects
// flatten with dot-joined keys.
func flattenPhrases(doc map[string]any) map[PhraseKey]string {
	out := make(map[PhraseKey]string)
	var walk func(prefix string, node map[string]any)
	walk = func(prefix string, node map[string]any) {
		for key, value := range node {
			name := key
			if prefix != "" {
				name = prefix + "." + key
			}
			switch v := value.(type) {
			case string:
				out[PhraseKey(name)] = v
			case map[string]any:
				if prefix == "" && (key == "strings" || key == "templates") {
					walk("", v)
					continue
				}
				walk(name, v)
			}
		}
	}
	walk("", doc)
	return out
}
