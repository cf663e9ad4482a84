package main

import (
	"time"

	"github.com/johndoe6345789/WordNet/cmd/diyai/config"
	"github.com/johndoe6345789/WordNet/internal/articulation"
	"github.com/johndoe6345789/WordNet/internal/lexicon"
	"github.com/johndoe6345789/WordNet/internal/logging"
	"github.com/johndoe6345789/WordNet/internal/perception"
	"github.com/johndoe6345789/WordNet/internal/session"
)

// engine wires the full pipeline for one process: oracle stack, concept
// catalog, analyzer, synthesizer, phrase provider, and a session.
type engine struct {
	wordnet *lexicon.WordNet
	store   *lexicon.CacheStore
	oracle  lexicon.Oracle

	analyzer *perception.Analyzer
	synth    *articulation.Synthesizer
	phrases  *articulation.Provider
	watcher  *articulation.PhraseWatcher

	session *session.Context
}

// newEngine opens the WordNet database and builds the pipeline. The oracle
// stack is WordNet at the bottom, the optional SQLite sense cache above
// it, and in-process memoization on top.
func newEngine(cfg *config.Config) (*engine, error) {
	dir, err := lexicon.ResolveSearchDir(cfg.WordNetDir)
	if err != nil {
		return nil, err
	}
	wn, err := lexicon.OpenWordNet(dir)
	if err != nil {
		return nil, err
	}

	e := &engine{wordnet: wn}
	var oracle lexicon.Oracle = wn
	if cfg.CachePath != "" {
		store, err := lexicon.OpenCacheStore(cfg.CachePath)
		if err != nil {
			wn.Close()
			return nil, err
		}
		e.store = store
		oracle = lexicon.NewCachedOracle(store, wn)
	}
	e.oracle = lexicon.NewMemoized(oracle, time.Duration(cfg.CacheTTLMinutes)*time.Minute)

	e.phrases = articulation.NewProvider()
	if cfg.PhraseFile != "" {
		watcher, err := articulation.WatchPhraseFile(e.phrases, cfg.PhraseFile)
		if err != nil {
			e.Close()
			return nil, err
		}
		e.watcher = watcher
	}

	e.analyzer = perception.NewAnalyzer(e.oracle, perception.NewCatalog(e.oracle))
	e.synth = articulation.NewSynthesizer(e.oracle, e.phrases)
	e.session = session.NewContext()
	logging.Chat("engine ready, WordNet at %s", dir)
	return e, nil
}

// turn runs one full conversation turn: preprocess, analyze, merge, reply.
func (e *engine) turn(input string) articulation.Reply {
	e.session.BeginTurn()
	analysis := e.analyzer.Analyze(perception.ExtractPlainText(input), e.session)
	e.session.Merge(analysis)
	return e.synth.Respond(analysis, e.session)
}

// reset clears the session memory.
func (e *engine) reset() {
	e.session.Reset()
}

// dump renders the observable session snapshot.
func (e *engine) dump() (string, error) {
	return e.session.DumpJSON()
}

// Close releases the oracle resources and stops the phrase watcher.
func (e *engine) Close() {
	if e.watcher != nil {
		e.watcher.Close()
	}
	if e.store != nil {
		e.store.Close()
	}
	if e.wordnet != nil {
		e.wordnet.Close()
	}
}
