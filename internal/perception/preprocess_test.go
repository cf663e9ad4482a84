package perception

import "testing"

func TestExtractPlainTextObject(t *testing.T) {
	in := `{"goal": "build a service", "details": {"language": "go", "count": 3}}`
	want := "build a service go"
	if got := ExtractPlainText(in); got != want {
		t.Errorf("ExtractPlainText = %q, want %q", got, want)
	}
}

func TestExtractPlainTextArray(t *testing.T) {
	in := `["add retries", 42, ["for failed requests"], true]`
	want := "add retries for failed requests"
	if got := ExtractPlainText(in); got != want {
		t.Errorf("ExtractPlainText = %q, want %q", got, want)
	}
}

func TestExtractPlainTextKeysAreNotLeaves(t *testing.T) {
	in := `{"deploy": 1, "test": null}`
	if got := ExtractPlainText(in); got != in {
		t.Errorf("document with no string leaves must pass through, got %q", got)
	}
}

func TestExtractPlainTextPassthrough(t *testing.T) {
	for _, in := range []string{
		"plain text stays as is",
		"",
		"{not json at all",
		"  {\"broken\": ",
	} {
		if got := ExtractPlainText(in); got != in {
			t.Errorf("ExtractPlainText(%q) = %q, want passthrough", in, got)
		}
	}
}
