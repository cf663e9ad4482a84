package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/johndoe6345789/WordNet/internal/lexicon"
	"github.com/johndoe6345789/WordNet/internal/perception"
)

var (
	meaningTop         int
	meaningNoGloss     bool
	meaningNoHypernyms bool
)

// meaningCmd sketches what the input text means: per-word glosses and a
// ranked table of related terms mined from senses, glosses, and hypernyms.
var meaningCmd = &cobra.Command{
	Use:   "meaning [text...]",
	Short: "Print a meaning sketch for the given text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEngine(cfg)
		if err != nil {
			return err
		}
		defer e.Close()

		input := strings.Join(args, " ")
		fmt.Printf("Input: %s\n", input)

		hints := newHintTable()
		for _, word := range perception.Tokenize(input) {
			explainWord(e.oracle, word, !meaningNoGloss)
			for _, pos := range lexicon.AllPartsOfSpeech {
				senses := e.oracle.Lookup(word, pos)
				if len(senses) == 0 {
					continue
				}
				hints.collectSense(senses[0])
				if !meaningNoHypernyms && (pos == lexicon.Noun || pos == lexicon.Verb) {
					for _, hyper := range senses[0].Hypernyms {
						hints.collectSense(hyper)
					}
				}
			}
		}

		fmt.Printf("\nMeaning hints (top terms):\n")
		for _, h := range hints.top(meaningTop) {
			fmt.Printf("  %s (%d)\n", h.term, h.count)
		}
		return nil
	},
}

func init() {
	meaningCmd.Flags().IntVar(&meaningTop, "top", 10, "show the top N meaning hints")
	meaningCmd.Flags().BoolVar(&meaningNoGloss, "no-gloss", false, "skip per-word gloss output")
	meaningCmd.Flags().BoolVar(&meaningNoHypernyms, "no-hypernyms", false, "skip hypernym expansion")
}

// explainWord prints the first gloss per part of speech for one word.
func explainWord(oracle lexicon.Oracle, word string, show bool) {
	if !show {
		return
	}
	fmt.Printf("\nWord: %s\n", word)
	for _, pos := range lexicon.AllPartsOfSpeech {
		senses := oracle.Lookup(word, pos)
		if len(senses) == 0 {
			continue
		}
		gloss := senses[0].Gloss
		if gloss == "" {
			gloss = "(no gloss)"
		}
		fmt.Printf("  %s: %s\n", pos, gloss)
	}
}

// hintTable accumulates weighted term counts for the meaning sketch.
type hintTable struct {
	counts map[string]int
}

type hint struct {
	term  string
	count int
}

func newHintTable() *hintTable {
	return &hintTable{counts: make(map[string]int)}
}

// collectSense weighs a sense's surface forms at 2 and its gloss words at
// 1, the same split the turn analyzer uses.
func (t *hintTable) collectSense(s lexicon.Sense) {
	for _, w := range s.Words {
		norm := perception.NormalizeWord(w)
		if norm == "" {
			continue
		}
		t.counts[norm] += 2
	}
	for _, w := range perception.Tokenize(s.Gloss) {
		t.counts[w]++
	}
}

// top returns the n highest-counted hints, ties broken alphabetically.
func (t *hintTable) top(n int) []hint {
	hints := make([]hint, 0, len(t.counts))
	for term, count := range t.counts {
		hints = append(hints, hint{term: term, count: count})
	}
	sort.Slice(hints, func(i, j int) bool {
		if hints[i].count != hints[j].count {
			return hints[i].count > hints[j].count
		}
		return hints[i].term < hints[j].term
	})
	if n >= 0 && len(hints) > n {
		hints = hints[:n]
	}
	return hints
}
