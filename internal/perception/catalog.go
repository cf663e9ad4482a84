package perception

import (
	"github.com/johndoe6345789/WordNet/internal/lexicon"
	"github.com/johndoe6345789/WordNet/internal/logging"
)

// maxConceptTerms bounds how large a concept's expanded term set may grow.
// Past the bound, further unique terms are refused, never existing ones
// dropped.
const maxConceptTerms = 256

// Category splits the concept catalog into lifecycle stages and design
// aspects. Focus lists are capped per category.
type Category int

const (
	Lifecycle Category = iota
	DesignAspect
)

func (c Category) String() string {
	if c == Lifecycle {
		return "lifecycle"
	}
	return "design-aspect"
}

// Concept is one named topic with its expanded term set. Immutable after
// catalog construction; per-turn scores live in the analyzer's scratch
// state, not here.
type Concept struct {
	Name     string
	Category Category
	Seeds    []string
	terms    map[string]bool
}

// Contains reports whether term belongs to the concept's expanded set.
func (c *Concept) Contains(term string) bool { return c.terms[term] }

// TermCount returns the size of the expanded term set.
func (c *Concept) TermCount() int { return len(c.terms) }

// conceptSeeds is the fixed 13-entry taxonomy: six lifecycle stages and
// seven design aspects, each with hand-picked seed words.
var conceptSeeds = []Concept{
	{Name: "requirements", Category: Lifecycle, Seeds: []string{"requirement", "specification", "story", "scope"}},
	{Name: "design", Category: Lifecycle, Seeds: []string{"design", "architecture", "model", "interface"}},
	{Name: "implementation", Category: Lifecycle, Seeds: []string{"implement", "build", "code", "develop"}},
	{Name: "testing", Category: Lifecycle, Seeds: []string{"test", "verify", "validate", "qa"}},
	{Name: "deployment", Category: Lifecycle, Seeds: []string{"deploy", "release", "ship", "deliver"}},
	{Name: "maintenance", Category: Lifecycle, Seeds: []string{"maintain", "operate", "support", "monitor"}},
	{Name: "api", Category: DesignAspect, Seeds: []string{"api", "interface", "endpoint", "protocol"}},
	{Name: "data", Category: DesignAspect, Seeds: []string{"data", "database", "storage", "schema"}},
	{Name: "ui", Category: DesignAspect, Seeds: []string{"ui", "ux", "screen", "visual"}},
	{Name: "performance", Category: DesignAspect, Seeds: []string{"performance", "latency", "throughput", "optimize"}},
	{Name: "security", Category: DesignAspect, Seeds: []string{"security", "auth", "encrypt", "permission"}},
	{Name: "reliability", Category: DesignAspect, Seeds: []string{"reliability", "retry", "failover", "resilience"}},
	{Name: "observability", Category: DesignAspect, Seeds: []string{"log", "trace", "monitor", "metric"}},
}

// Catalog is the process-wide concept table, built once at startup and
// passed by reference into every analysis. Declaration order is the
// documented tie-break for focus selection.
type Catalog struct {
	concepts []*Concept
}

// NewCatalog expands the fixed seed table through the oracle: every seed's
// noun and verb senses contribute their synonym surface forms. Lookup
// misses are skipped silently.
func NewCatalog(oracle lexicon.Oracle) *Catalog {
	cat := &Catalog{}
	for _, base := range conceptSeeds {
		c := &Concept{
			Name:     base.Name,
			Category: base.Category,
			Seeds:    base.Seeds,
			terms:    make(map[string]bool),
		}
		for _, seed := range base.Seeds {
			norm := NormalizeWord(seed)
			addConceptTerm(c, norm)
			for _, pos := range []lexicon.PartOfSpeech{lexicon.Noun, lexicon.Verb} {
				for _, sense := range oracle.Lookup(norm, pos) {
					for _, w := range sense.Words {
						addConceptTerm(c, NormalizeWord(w))
					}
				}
			}
		}
		cat.concepts = append(cat.concepts, c)
		logging.PerceptionDebug("concept %s expanded to %d terms", c.Name, len(c.terms))
	}
	return cat
}

func addConceptTerm(c *Concept, term string) {
	if term == "" || c.terms[term] {
		return
	}
	if len(c.terms) >= maxConceptTerms {
		return
	}
	c.terms[term] = true
}

// Concepts returns the catalog entries in declaration order.
func (cat *Catalog) Concepts() []*Concept { return cat.concepts }

// Lookup returns the concept with the given name, or nil.
func (cat *Catalog) Lookup(name string) *Concept {
	for _, c := range cat.concepts {
		if c.Name == name {
			return c
		}
	}
	return nil
}
