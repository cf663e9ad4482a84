package lexicon

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	_ "modernc.org/sqlite"

	"github.com/johndoe6345789/WordNet/internal/logging"
)

// CacheStore persists resolved senses in SQLite so repeated sessions skip
// the WordNet file walk entirely. Built either lazily (write-through from a
// CachedOracle) or in bulk by the cache builder command.
type CacheStore struct {
	db *sql.DB
}

// storedHypernym is the serialized one-level hypernym link.
type storedHypernym struct {
	Words []string `json:"words"`
	Gloss string   `json:"gloss,omitempty"`
}

// OpenCacheStore opens (creating if needed) the sense cache at path.
func OpenCacheStore(path string) (*CacheStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("lexicon: create cache dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: open cache database: %w", err)
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("lexicon: pragma %q: %w", pragma, err)
		}
	}
	s := &CacheStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("lexicon: cache migration: %w", err)
	}
	return s, nil
}

func (s *CacheStore) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS senses (
			lemma     TEXT    NOT NULL,
			pos       INTEGER NOT NULL,
			sense_no  INTEGER NOT NULL,
			gloss     TEXT    NOT NULL DEFAULT '',
			words     TEXT    NOT NULL,
			hypernyms TEXT    NOT NULL DEFAULT '[]',
			PRIMARY KEY (lemma, pos, sense_no)
		);
		CREATE TABLE IF NOT EXISTS misses (
			lemma TEXT    NOT NULL,
			pos   INTEGER NOT NULL,
			PRIMARY KEY (lemma, pos)
		);
		CREATE INDEX IF NOT EXISTS idx_senses_lemma ON senses(lemma, pos);
	`)
	return err
}

// Close closes the database.
func (s *CacheStore) Close() error { return s.db.Close() }

// Put stores all senses for a lemma/pos pair, replacing prior rows. An empty
// slice is recorded as a negative entry so misses are cached too.
func (s *CacheStore) Put(lemma string, pos PartOfSpeech, senses []Sense) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.Exec(`DELETE FROM senses WHERE lemma = ? AND pos = ?`, lemma, int(pos)); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM misses WHERE lemma = ? AND pos = ?`, lemma, int(pos)); err != nil {
		return err
	}
	if len(senses) == 0 {
		if _, err := tx.Exec(`INSERT INTO misses (lemma, pos) VALUES (?, ?)`, lemma, int(pos)); err != nil {
			return err
		}
		return tx.Commit()
	}
	for i, sense := range senses {
		words, err := json.Marshal(sense.Words)
		if err != nil {
			return err
		}
		hypers := make([]storedHypernym, 0, len(sense.Hypernyms))
		for _, h := range sense.Hypernyms {
			hypers = append(hypers, storedHypernym{Words: h.Words, Gloss: h.Gloss})
		}
		hyperJSON, err := json.Marshal(hypers)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(
			`INSERT INTO senses (lemma, pos, sense_no, gloss, words, hypernyms) VALUES (?, ?, ?, ?, ?, ?)`,
			lemma, int(pos), i, sense.Gloss, string(words), string(hyperJSON),
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Get returns the cached senses for a lemma/pos pair. The second result is
// false when the pair has never been cached (as opposed to a cached miss).
func (s *CacheStore) Get(lemma string, pos PartOfSpeech) ([]Sense, bool, error) {
	rows, err := s.db.Query(
		`SELECT gloss, words, hypernyms FROM senses WHERE lemma = ? AND pos = ? ORDER BY sense_no`,
		lemma, int(pos),
	)
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()

	var senses []Sense
	for rows.Next() {
		var gloss, wordsJSON, hyperJSON string
		if err := rows.Scan(&gloss, &wordsJSON, &hyperJSON); err != nil {
			return nil, false, err
		}
		var words []string
		if err := json.Unmarshal([]byte(wordsJSON), &words); err != nil {
			return nil, false, err
		}
		var hypers []storedHypernym
		if err := json.Unmarshal([]byte(hyperJSON), &hypers); err != nil {
			return nil, false, err
		}
		sense := Sense{Words: words, Gloss: gloss}
		for _, h := range hypers {
			sense.Hypernyms = append(sense.Hypernyms, Sense{Words: h.Words, Gloss: h.Gloss})
		}
		senses = append(senses, sense)
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}
	if len(senses) > 0 {
		return senses, true, nil
	}

	var n int
	if err := s.db.QueryRow(
		`SELECT COUNT(*) FROM misses WHERE lemma = ? AND pos = ?`, lemma, int(pos),
	).Scan(&n); err != nil {
		return nil, false, err
	}
	return nil, n > 0, nil
}

// Count returns the number of cached sense rows.
func (s *CacheStore) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM senses`).Scan(&n)
	return n, err
}

// hasLemma reports whether any sense row exists for the lemma/pos pair.
func (s *CacheStore) hasLemma(lemma string, pos PartOfSpeech) bool {
	var n int
	if err := s.db.QueryRow(
		`SELECT COUNT(*) FROM senses WHERE lemma = ? AND pos = ?`, lemma, int(pos),
	).Scan(&n); err != nil {
		return false
	}
	return n > 0
}

// BuildCache walks every lemma the source WordNet indexes and materializes
// its senses into the store. Returns the number of lemmas written. A zero
// limit means no cap; lemmas are walked in sorted order so partial builds
// are deterministic.
func BuildCache(store *CacheStore, wn *WordNet, limit int) (int, error) {
	written := 0
	for _, pos := range AllPartsOfSpeech {
		lemmas := wn.Lemmas(pos)
		sort.Strings(lemmas)
		for _, lemma := range lemmas {
			if limit > 0 && written >= limit {
				return written, nil
			}
			if err := store.Put(lemma, pos, wn.Lookup(lemma, pos)); err != nil {
				return written, fmt.Errorf("lexicon: cache %q/%s: %w", lemma, pos, err)
			}
			written++
			if written%5000 == 0 {
				logging.Lexicon("cache build progress: %d lemmas", written)
			}
		}
	}
	return written, nil
}

// CachedOracle serves lookups from a CacheStore, optionally falling back to
// (and write-through populating from) an inner oracle on cold pairs.
type CachedOracle struct {
	store    *CacheStore
	fallback Oracle
}

// NewCachedOracle wraps store; fallback may be nil for cache-only operation.
func NewCachedOracle(store *CacheStore, fallback Oracle) *CachedOracle {
	return &CachedOracle{store: store, fallback: fallback}
}

// Lookup implements Oracle.
func (c *CachedOracle) Lookup(word string, pos PartOfSpeech) []Sense {
	senses, cached, err := c.store.Get(word, pos)
	if err != nil {
		logging.LexiconDebug("cache read failed for %q/%s: %v", word, pos, err)
	} else if cached {
		return senses
	}
	if c.fallback == nil {
		return nil
	}
	senses = c.fallback.Lookup(word, pos)
	if err := c.store.Put(word, pos, senses); err != nil {
		logging.LexiconDebug("cache write failed for %q/%s: %v", word, pos, err)
	}
	return senses
}

// BaseForm implements Oracle. The fallback owns real morphology; without one
// the detachment rules are validated against cached lemmas.
func (c *CachedOracle) BaseForm(word string, pos PartOfSpeech) (string, bool) {
	if c.fallback != nil {
		return c.fallback.BaseForm(word, pos)
	}
	for _, cand := range morphCandidates(word, pos) {
		if c.store.hasLemma(cand, pos) {
			return cand, true
		}
	}
	return "", false
}
