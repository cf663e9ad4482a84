package articulation

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWatchPhraseFileReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "phrases.json")
	write := func(doc string) {
		t.Helper()
		if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write(`{"ask_language": "First wording?"}`)

	p := NewProvider()
	w, err := WatchPhraseFile(p, path)
	if err != nil {
		t.Fatalf("WatchPhraseFile: %v", err)
	}
	defer w.Close()

	if got := p.Get(PhraseAskLanguage); got != "First wording?" {
		t.Fatalf("initial load = %q", got)
	}

	write(`{"ask_language": "Second wording?"}`)
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if p.Get(PhraseAskLanguage) == "Second wording?" {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("reload not observed, still %q", p.Get(PhraseAskLanguage))
}

func TestWatchPhraseFileBadPath(t *testing.T) {
	if _, err := WatchPhraseFile(NewProvider(), filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing phrase file accepted")
	}
}

func TestWatcherCloseStopsGoroutine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phrases.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := WatchPhraseFile(NewProvider(), path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	// goleak in TestMain verifies the run loop exited.
}
