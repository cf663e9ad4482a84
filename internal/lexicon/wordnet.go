package lexicon

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/johndoe6345789/WordNet/internal/logging"
)

// maxHypernymLinks bounds how many hypernym pointers are resolved per sense
// so per-turn oracle traffic stays predictable.
const maxHypernymLinks = 8

// WordNet reads the WordNet database files (index.*, data.*, *.exc) from a
// search directory. The index files are loaded fully into memory at Open;
// synset data is read on demand at the recorded byte offsets.
type WordNet struct {
	dir string

	mu    sync.Mutex
	index map[PartOfSpeech]map[string][]int64
	exc   map[PartOfSpeech]map[string]string
	data  map[PartOfSpeech]*os.File
}

// ResolveSearchDir picks the WordNet data directory: an explicit override,
// then WNSEARCHDIR, then WNHOME/dict, then common install locations.
func ResolveSearchDir(override string) (string, error) {
	candidates := []string{override, os.Getenv("WNSEARCHDIR")}
	if home := os.Getenv("WNHOME"); home != "" {
		candidates = append(candidates, filepath.Join(home, "dict"))
	}
	candidates = append(candidates,
		"/usr/share/wordnet",
		"/usr/local/WordNet-3.0/dict",
		"/usr/local/share/wordnet",
	)
	for _, dir := range candidates {
		if dir == "" {
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, "index.noun")); err == nil {
			return dir, nil
		}
	}
	return "", fmt.Errorf("lexicon: WordNet data files not found; set WNSEARCHDIR or WNHOME")
}

// OpenWordNet loads the index and exception files from dir and keeps the
// data files open for offset reads.
func OpenWordNet(dir string) (*WordNet, error) {
	wn := &WordNet{
		dir:   dir,
		index: make(map[PartOfSpeech]map[string][]int64),
		exc:   make(map[PartOfSpeech]map[string]string),
		data:  make(map[PartOfSpeech]*os.File),
	}
	for _, pos := range AllPartsOfSpeech {
		if err := wn.loadIndex(pos); err != nil {
			wn.Close()
			return nil, err
		}
		wn.loadExceptions(pos)
		f, err := os.Open(filepath.Join(dir, "data."+pos.String()))
		if err != nil {
			wn.Close()
			return nil, fmt.Errorf("lexicon: open data.%s: %w", pos, err)
		}
		wn.data[pos] = f
	}
	logging.Lexicon("WordNet loaded from %s (%d noun lemmas, %d verb lemmas)",
		dir, len(wn.index[Noun]), len(wn.index[Verb]))
	return wn, nil
}

// Close releases the data file handles.
func (wn *WordNet) Close() error {
	var firstErr error
	for _, f := range wn.data {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (wn *WordNet) loadIndex(pos PartOfSpeech) error {
	path := filepath.Join(wn.dir, "index."+pos.String())
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("lexicon: open %s: %w", path, err)
	}
	defer f.Close()

	idx := make(map[string][]int64)
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		// License header lines start with two spaces.
		if line == "" || line[0] == ' ' {
			continue
		}
		lemma, offsets, ok := parseIndexLine(line)
		if !ok {
			continue
		}
		idx[lemma] = offsets
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("lexicon: read %s: %w", path, err)
	}
	wn.index[pos] = idx
	return nil
}

// parseIndexLine splits one index.* entry. Layout:
//
//	lemma pos synset_cnt p_cnt [ptr_symbol...] sense_cnt tagsense_cnt offset...
//
// so the synset offsets begin at field 6+p_cnt.
func parseIndexLine(line string) (string, []int64, bool) {
	fields := strings.Fields(line)
	if len(fields) < 7 {
		return "", nil, false
	}
	pcnt, err := strconv.Atoi(fields[3])
	if err != nil {
		return "", nil, false
	}
	start := 6 + pcnt
	if start >= len(fields) {
		return "", nil, false
	}
	offsets := make([]int64, 0, len(fields)-start)
	for _, f := range fields[start:] {
		off, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return "", nil, false
		}
		offsets = append(offsets, off)
	}
	return fields[0], offsets, true
}

// loadExceptions reads the irregular-inflection file for a part of speech.
// The file is optional; a missing one just means suffix rules only.
func (wn *WordNet) loadExceptions(pos PartOfSpeech) {
	path := filepath.Join(wn.dir, pos.String()+".exc")
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	exc := make(map[string]string)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}
		exc[fields[0]] = fields[1]
	}
	wn.exc[pos] = exc
}

// Lookup implements Oracle. The word is matched as-is first; on a miss the
// morphological base form is retried, mirroring the lookup_index fallback of
// the classic WordNet tools.
func (wn *WordNet) Lookup(word string, pos PartOfSpeech) []Sense {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return nil
	}
	offsets, ok := wn.index[pos][word]
	if !ok {
		base, found := wn.BaseForm(word, pos)
		if !found {
			return nil
		}
		offsets = wn.index[pos][base]
	}
	senses := make([]Sense, 0, len(offsets))
	for _, off := range offsets {
		s, err := wn.readSynset(pos, off, true)
		if err != nil {
			logging.LexiconDebug("synset read failed at %s:%d: %v", pos, off, err)
			continue
		}
		senses = append(senses, s)
	}
	return senses
}

// Lemmas returns every indexed lemma for a part of speech, in no particular
// order. Used by the cache builder to walk the whole database.
func (wn *WordNet) Lemmas(pos PartOfSpeech) []string {
	idx := wn.index[pos]
	lemmas := make([]string, 0, len(idx))
	for lemma := range idx {
		lemmas = append(lemmas, lemma)
	}
	return lemmas
}

// BaseForm implements Oracle: exception list first, then suffix detachment
// validated against the index.
func (wn *WordNet) BaseForm(word string, pos PartOfSpeech) (string, bool) {
	word = strings.ToLower(strings.TrimSpace(word))
	if base, ok := wn.exc[pos][word]; ok {
		return base, true
	}
	for _, cand := range morphCandidates(word, pos) {
		if _, ok := wn.index[pos][cand]; ok {
			return cand, true
		}
	}
	return "", false
}

// readSynset reads and parses one data.* record. When resolveHypernyms is
// set, hypernym pointers ("@", "@i") are followed one level.
func (wn *WordNet) readSynset(pos PartOfSpeech, offset int64, resolveHypernyms bool) (Sense, error) {
	line, err := wn.readLineAt(pos, offset)
	if err != nil {
		return Sense{}, err
	}

	gloss := ""
	if i := strings.Index(line, " | "); i >= 0 {
		gloss = strings.TrimSpace(line[i+3:])
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return Sense{}, fmt.Errorf("lexicon: short synset record at %d", offset)
	}

	// w_cnt is two hex digits.
	wcnt, err := strconv.ParseInt(fields[3], 16, 32)
	if err != nil {
		return Sense{}, fmt.Errorf("lexicon: bad word count at %d: %w", offset, err)
	}
	words := make([]string, 0, wcnt)
	p := 4
	for i := int64(0); i < wcnt && p+1 < len(fields); i++ {
		words = append(words, cleanSurfaceForm(fields[p]))
		p += 2 // word, lex_id
	}

	sense := Sense{Words: words, Gloss: gloss}
	if !resolveHypernyms || p >= len(fields) {
		return sense, nil
	}

	pcnt, err := strconv.Atoi(fields[p])
	if err != nil {
		return sense, nil
	}
	p++
	for i := 0; i < pcnt && p+3 < len(fields); i++ {
		sym, offStr, posChar := fields[p], fields[p+1], fields[p+2]
		p += 4 // symbol, offset, pos, source/target
		if sym != "@" && sym != "@i" {
			continue
		}
		if len(sense.Hypernyms) >= maxHypernymLinks {
			break
		}
		targetPos, ok := posFromChar(posChar)
		if !ok {
			continue
		}
		targetOff, err := strconv.ParseInt(offStr, 10, 64)
		if err != nil {
			continue
		}
		hyper, err := wn.readSynset(targetPos, targetOff, false)
		if err != nil {
			continue
		}
		sense.Hypernyms = append(sense.Hypernyms, hyper)
	}
	return sense, nil
}

// readLineAt seeks the data file to offset and reads one record line.
func (wn *WordNet) readLineAt(pos PartOfSpeech, offset int64) (string, error) {
	wn.mu.Lock()
	defer wn.mu.Unlock()

	f, ok := wn.data[pos]
	if !ok || f == nil {
		return "", fmt.Errorf("lexicon: no data file for %s", pos)
	}
	if _, err := f.Seek(offset, 0); err != nil {
		return "", err
	}
	r := bufio.NewReader(f)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// cleanSurfaceForm strips adjective syntax markers like "(p)" and keeps the
// underscore form of collocations.
func cleanSurfaceForm(w string) string {
	if i := strings.IndexByte(w, '('); i > 0 {
		w = w[:i]
	}
	return w
}

func posFromChar(c string) (PartOfSpeech, bool) {
	switch c {
	case "n":
		return Noun, true
	case "v":
		return Verb, true
	case "a", "s":
		return Adjective, true
	case "r":
		return Adverb, true
	}
	return 0, false
}
