package articulation

import (
	"strings"

	"github.com/johndoe6345789/WordNet/internal/lexicon"
	"github.com/johndoe6345789/WordNet/internal/logging"
	"github.com/johndoe6345789/WordNet/internal/perception"
	"github.com/johndoe6345789/WordNet/internal/session"
)

// maxGlossLen caps the shortened gloss used in explanation clauses.
const maxGlossLen = 140

// variantCount is the size of the phrasing rotation.
const variantCount = 4

// allowedActions is the whitelist a detected action must belong to before
// it may anchor a reply.
var allowedActions = map[string]bool{
	"build": true, "make": true, "create": true, "implement": true,
	"design": true, "plan": true, "draft": true, "write": true,
	"develop": true, "test": true, "deploy": true, "outline": true,
	"prototype": true, "code": true,
}

// Reply is a rendered, guardrail-approved utterance plus the confidence
// share of its primary focus.
type Reply struct {
	Text       string
	Confidence float64
}

// situation selects which template family a variant draws from.
type situation int

const (
	situationPreference situation = iota
	situationLanguageAck
	situationPlatformAck
	situationActionEntity
	situationEntityOnly
	situationNoFocus
)

// Synthesizer renders replies from a turn analysis and the session state.
type Synthesizer struct {
	oracle    lexicon.Oracle
	phrases   *Provider
	guardrail *Guardrail
}

// NewSynthesizer wires the synthesizer and its guardrail over one oracle
// and phrase provider.
func NewSynthesizer(oracle lexicon.Oracle, phrases *Provider) *Synthesizer {
	return &Synthesizer{
		oracle:    oracle,
		phrases:   phrases,
		guardrail: NewGuardrail(oracle, phrases),
	}
}

// material is the scratch state one reply draws on: the chosen focus and
// the supporting vocabulary mined from the turn.
type material struct {
	primaryEntity   string
	primaryAction   string
	secondaryEntity string
	synonym         string
	hypernym        string
	gloss           string
	memoryTerm      string
	languageOnly    bool
	platformOnly    bool
	confidence      float64
}

// Respond produces the reply for one analyzed turn. The session must
// already hold the turn's merge; bookkeeping for phrasing rotation is
// written back on success.
func (s *Synthesizer) Respond(a *perception.TurnAnalysis, ctx *session.Context) Reply {
	if a.HasGreeting {
		return s.greet(ctx)
	}

	m := s.gather(a, ctx)
	for attempt := 0; attempt < variantCount; attempt++ {
		pick := (ctx.LastVariant + 1 + attempt) % variantCount
		candidate := s.compose(a, ctx, m, pick, attempt)
		text, ok := s.guardrail.Validate(candidate)
		if !ok {
			logging.ArticulationDebug("variant %d rejected: %q", pick, text)
			continue
		}
		ctx.RecordReply(pick, m.primaryEntity, m.primaryAction)
		return Reply{Text: text, Confidence: m.confidence}
	}

	logging.Articulation("all variants rejected, using hard fallback")
	return Reply{
		Text:       s.guardrail.Normalize(s.phrases.Get(PhraseHardFallback)),
		Confidence: m.confidence,
	}
}

// greet renders the greeting short-circuit: persona prefix on the first
// turn only, rotated by turn count.
func (s *Synthesizer) greet(ctx *session.Context) Reply {
	text := s.phrases.Get(PhraseGreetingPlain)
	if ctx.Turns <= 1 {
		personas := []PhraseKey{
			PhrasePersonaGreeting0, PhrasePersonaGreeting1, PhrasePersonaGreeting2,
		}
		prefix := s.phrases.Get(personas[ctx.Turns%3])
		text = s.phrases.Format(PhraseGreetingWithPersona, prefix)
	}
	normalized, ok := s.guardrail.Validate(text)
	if !ok {
		normalized = s.guardrail.Normalize(s.phrases.Get(PhraseHardFallback))
	}
	return Reply{Text: normalized}
}

// gather runs steps two through five: focus scoring, action selection,
// language/platform deflection, and secondary material.
func (s *Synthesizer) gather(a *perception.TurnAnalysis, ctx *session.Context) material {
	var m material
	m.primaryEntity, m.confidence = pickPrimaryEntity(a, ctx)
	m.primaryAction = s.pickAction(a, m.primaryEntity)

	// A turn that only restates the session's language or platform gets a
	// short acknowledgement, not a new focus. Preference questions keep
	// their subject so the answer can still draw on its senses.
	if !a.IsPreferenceQuestion && len(a.Entities) == 1 {
		sole := a.Entities[0]
		if sole != "" && sole == ctx.Language.Value {
			m.languageOnly = true
			m.primaryEntity = ""
		} else if m.primaryAction == "" && sole == ctx.Platform.Value {
			m.platformOnly = true
			m.primaryEntity = ""
		}
	}

	// A deflected entity must not resurface as secondary material.
	if !m.languageOnly && !m.platformOnly {
		for _, e := range a.Entities {
			if e != m.primaryEntity {
				m.secondaryEntity = e
				break
			}
		}
	}
	if record := a.RelatedFor(m.primaryEntity); record != nil {
		if len(record.Synonyms) > 0 {
			m.synonym = record.Synonyms[0]
		}
		if len(record.Hypernyms) > 0 {
			m.hypernym = record.Hypernyms[0]
		}
	}
	for _, record := range a.Related {
		if record.Gloss != "" {
			m.gloss = shortenGloss(record.Gloss)
			break
		}
	}
	m.memoryTerm = ctx.TopTerm()
	return m
}

// pickPrimaryEntity scores every turn entity against session frequency and
// turn relatedness, returning the winner and its normalized score share.
func pickPrimaryEntity(a *perception.TurnAnalysis, ctx *session.Context) (string, float64) {
	best := ""
	bestScore := 0.0
	total := 0.0
	for _, e := range a.Entities {
		score := 1 + 0.5*float64(ctx.TermCount(e)) + 0.75*float64(a.Relatedness(e))
		total += score
		if score > bestScore {
			best = e
			bestScore = score
		}
	}
	if total == 0 {
		return "", 0
	}
	return best, bestScore / total
}

// pickAction keeps the first detected action only when the turn is not a
// question and the verb is whitelisted, otherwise falls back to a safe
// verb for domain-positive turns.
func (s *Synthesizer) pickAction(a *perception.TurnAnalysis, primaryEntity string) string {
	action := ""
	if len(a.Actions) > 0 && !a.IsQuestion && allowedActions[a.Actions[0]] {
		action = a.Actions[0]
	}
	if action == "" && !a.IsQuestion && a.DomainScore > 0 {
		switch primaryEntity {
		case "plan", "outline":
			action = "outline"
		case "test", "testing":
			action = "test"
		default:
			action = "build"
		}
	}
	return action
}

// compose builds one candidate sentence for a phrasing pick: the base
// template for the situation, then the applicable clauses in fixed order.
func (s *Synthesizer) compose(a *perception.TurnAnalysis, ctx *session.Context, m material, pick, attempt int) string {
	var parts []string
	sit := s.classify(a, m)
	parts = append(parts, s.baseSentence(a, ctx, m, sit, pick))

	if clause := s.defaultsClause(ctx, m, sit); clause != "" {
		parts = append(parts, clause)
	}
	if clause := s.enrichment(a, m, sit, pick); clause != "" {
		parts = append(parts, clause)
	}
	if attempt == 2 && m.memoryTerm != "" && m.memoryTerm != m.primaryEntity {
		parts = append(parts, s.phrases.Format(PhraseMemoryCallback, m.memoryTerm))
	}
	parts = append(parts, s.closingQuestion(a, ctx, sit))
	return strings.Join(parts, " ")
}

func (s *Synthesizer) classify(a *perception.TurnAnalysis, m material) situation {
	switch {
	case a.IsPreferenceQuestion:
		return situationPreference
	case m.languageOnly:
		return situationLanguageAck
	case m.platformOnly:
		return situationPlatformAck
	case m.primaryAction != "" && m.primaryEntity != "":
		return situationActionEntity
	case m.primaryEntity != "":
		return situationEntityOnly
	default:
		return situationNoFocus
	}
}

func (s *Synthesizer) baseSentence(a *perception.TurnAnalysis, ctx *session.Context, m material, sit situation, pick int) string {
	switch sit {
	case situationPreference:
		subject := firstNonEmpty(a.Language.Value, ctx.Language.Value, m.primaryEntity, "whatever gets the job done")
		return s.phrases.Format(PhrasePreferenceAnswer, subject)
	case situationLanguageAck:
		return s.phrases.Format(PhraseLanguageAck, ctx.Language.Value)
	case situationPlatformAck:
		return s.phrases.Format(PhrasePlatformAck, ctx.Platform.Value)
	case situationActionEntity:
		leads := []PhraseKey{PhraseActionLead0, PhraseActionLead1, PhraseActionLead2, PhraseActionLead3}
		return s.phrases.Format(leads[pick], m.primaryAction, m.primaryEntity)
	case situationEntityOnly:
		leads := []PhraseKey{PhraseEntityLead0, PhraseEntityLead1, PhraseEntityLead2, PhraseEntityLead3}
		return s.phrases.Format(leads[pick], m.primaryEntity)
	default:
		if pick%2 == 0 {
			return s.phrases.Get(PhraseNoFocus0)
		}
		return s.phrases.Get(PhraseNoFocus1)
	}
}

// defaultsClause names the scored fields being implicitly defaulted when a
// focused, domain-positive reply goes out without them.
func (s *Synthesizer) defaultsClause(ctx *session.Context, m material, sit situation) string {
	if sit != situationActionEntity && sit != situationEntityOnly {
		return ""
	}
	var unset []string
	if ctx.Language.Value == "" {
		unset = append(unset, "language")
	}
	if ctx.Platform.Value == "" {
		unset = append(unset, "platform")
	}
	if ctx.Framework.Value == "" {
		unset = append(unset, "framework")
	}
	if len(unset) == 0 {
		return ""
	}
	return s.phrases.Format(PhraseDefaultsClause, joinNames(unset))
}

// enrichment picks exactly one supporting clause by fixed priority: gloss,
// secondary entity, hypernym, then synonym. Preference answers never carry
// the gloss clause.
func (s *Synthesizer) enrichment(a *perception.TurnAnalysis, m material, sit situation, pick int) string {
	if sit != situationPreference && m.gloss != "" && m.primaryEntity != "" && a.DomainScore > 0 && m.confidence >= 0.35 {
		key := PhraseGlossLead0
		if pick%2 == 1 {
			key = PhraseGlossLead1
		}
		return s.phrases.Format(key, m.primaryEntity, m.gloss)
	}
	if pick == 3 && m.secondaryEntity != "" && a.DomainScore > 0 {
		return s.phrases.Format(PhraseSecondaryLead, m.secondaryEntity)
	}
	if m.hypernym != "" {
		return s.phrases.Format(PhraseHypernymLead, m.hypernym)
	}
	if m.synonym != "" && m.synonym != m.primaryEntity {
		return s.phrases.Format(PhraseSynonymLead, m.synonym)
	}
	return ""
}

// closingQuestion asks for whatever the session still lacks, or proposes
// the next step when language and platform are both settled.
func (s *Synthesizer) closingQuestion(a *perception.TurnAnalysis, ctx *session.Context, sit situation) string {
	if a.DomainScore == 0 {
		ask := s.phrases.Get(PhraseAskSoftware)
		if a.IsQuestion {
			return s.phrases.Get(PhraseQuestionAnswer) + " " + ask
		}
		return ask
	}
	langKnown := ctx.Language.Value != ""
	platKnown := ctx.Platform.Value != ""
	switch {
	case !langKnown && !platKnown:
		return s.phrases.Get(PhraseAskBoth)
	case !langKnown:
		return s.phrases.Get(PhraseAskLanguage)
	case !platKnown:
		return s.phrases.Get(PhraseAskPlatform)
	case sit == situationPreference || sit == situationLanguageAck || sit == situationPlatformAck:
		return s.phrases.Get(PhraseAskNext)
	default:
		return s.phrases.Get(PhraseAskPlanOrSample)
	}
}

// shortenGloss trims a gloss for inline use: any parenthetical prefix is
// dropped, the text is cut at the first ';' or '.', and the result is
// capped at maxGlossLen.
func shortenGloss(gloss string) string {
	gloss = strings.TrimSpace(gloss)
	if strings.HasPrefix(gloss, "(") {
		if end := strings.IndexByte(gloss, ')'); end >= 0 {
			gloss = strings.TrimSpace(gloss[end+1:])
		}
	}
	if cut := strings.IndexAny(gloss, ";."); cut >= 0 {
		gloss = gloss[:cut]
	}
	gloss = strings.TrimSpace(gloss)
	if len(gloss) > maxGlossLen {
		gloss = strings.TrimSpace(gloss[:maxGlossLen])
	}
	return gloss
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
}
