package lexicon

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memoized wraps an oracle with an in-process TTL cache. The analyzer probes
// up to four parts of speech per token and re-probes common words every turn,
// so memoization removes most repeat file or database reads within a session.
type Memoized struct {
	inner Oracle
	cache *gocache.Cache
}

// NewMemoized wraps inner with a lookup cache. A zero ttl keeps entries for
// the default 30 minutes.
func NewMemoized(inner Oracle, ttl time.Duration) *Memoized {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Memoized{
		inner: inner,
		cache: gocache.New(ttl, 2*ttl),
	}
}

func lookupKey(word string, pos PartOfSpeech) string {
	return fmt.Sprintf("l/%d/%s", pos, word)
}

func baseKey(word string, pos PartOfSpeech) string {
	return fmt.Sprintf("b/%d/%s", pos, word)
}

// Lookup implements Oracle. Misses are cached too; a word with no senses
// stays a miss for the TTL.
func (m *Memoized) Lookup(word string, pos PartOfSpeech) []Sense {
	key := lookupKey(word, pos)
	if v, ok := m.cache.Get(key); ok {
		return v.([]Sense)
	}
	senses := m.inner.Lookup(word, pos)
	m.cache.SetDefault(key, senses)
	return senses
}

type baseResult struct {
	lemma string
	ok    bool
}

// BaseForm implements Oracle.
func (m *Memoized) BaseForm(word string, pos PartOfSpeech) (string, bool) {
	key := baseKey(word, pos)
	if v, ok := m.cache.Get(key); ok {
		r := v.(baseResult)
		return r.lemma, r.ok
	}
	lemma, ok := m.inner.BaseForm(word, pos)
	m.cache.SetDefault(key, baseResult{lemma: lemma, ok: ok})
	return lemma, ok
}
