package perception

// maxBucketTerms caps the per-turn action/entity/qualifier buckets and the
// related-term sets. Insertions past the cap are refused, not truncated.
const maxBucketTerms = 128

// RelatedTermRecord collects what the oracle knows about one surface word
// within a turn: the first gloss seen and the synonym/hypernym surface
// forms accumulated across every part of speech that matched.
type RelatedTermRecord struct {
	Term      string
	Gloss     string
	Synonyms  []string
	Hypernyms []string

	synSet   map[string]bool
	hyperSet map[string]bool
}

func newRelatedTermRecord(term string) *RelatedTermRecord {
	return &RelatedTermRecord{
		Term:     term,
		synSet:   make(map[string]bool),
		hyperSet: make(map[string]bool),
	}
}

func (r *RelatedTermRecord) addSynonym(w string) {
	if w == "" || r.synSet[w] || len(r.Synonyms) >= maxBucketTerms {
		return
	}
	r.synSet[w] = true
	r.Synonyms = append(r.Synonyms, w)
}

func (r *RelatedTermRecord) addHypernym(w string) {
	if w == "" || r.hyperSet[w] || len(r.Hypernyms) >= maxBucketTerms {
		return
	}
	r.hyperSet[w] = true
	r.Hypernyms = append(r.Hypernyms, w)
}

// HasSynonym reports whether w was collected as a synonym of the term.
func (r *RelatedTermRecord) HasSynonym(w string) bool { return r.synSet[w] }

// HasHypernym reports whether w was collected as a hypernym of the term.
func (r *RelatedTermRecord) HasHypernym(w string) bool { return r.hyperSet[w] }

// Detection is one turn's candidate for a scored session field: the first
// matching option in list order plus the match count as its score.
type Detection struct {
	Value string
	Score int
}

// TurnAnalysis is the full structured understanding of a single turn. It is
// created fresh per turn and discarded after the reply, except for what the
// session merge folds in.
type TurnAnalysis struct {
	Actions    []string
	Entities   []string
	Qualifiers []string
	Related    []*RelatedTermRecord

	LifecycleFocus []string
	DesignFocus    []string

	Language  Detection
	Platform  Detection
	Framework Detection

	IsQuestion           bool
	IsPreferenceQuestion bool
	HasGreeting          bool
	DomainScore          int
}

// RelatedFor returns the record for a surface word, or nil.
func (a *TurnAnalysis) RelatedFor(term string) *RelatedTermRecord {
	for _, r := range a.Related {
		if r.Term == term {
			return r
		}
	}
	return nil
}

// Relatedness scores how strongly w is tied to this turn's vocabulary:
// 2 when it appears as a synonym in any related record, 1 as a hypernym,
// else 0. Synonym standing wins over hypernym standing.
func (a *TurnAnalysis) Relatedness(w string) int {
	score := 0
	for _, r := range a.Related {
		if r.HasSynonym(w) {
			return 2
		}
		if r.HasHypernym(w) {
			score = 1
		}
	}
	return score
}
