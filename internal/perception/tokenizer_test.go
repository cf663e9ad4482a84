package perception

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"build a CLI that parses log files", []string{"build", "cli", "parses", "log", "files"}},
		{"Hello!!!", []string{"hello"}},
		{"use go for this", []string{"use", "go"}},
		{"the and for with", nil},
		{"re-try snake_case v2", []string{"re-try", "snake_case"}},
		{"", nil},
		{"a an of", nil},
	}
	for _, tc := range cases {
		if got := Tokenize(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestTokenizeIdempotent(t *testing.T) {
	in := "Deploy the API to Kubernetes, then add retries?"
	first := Tokenize(in)
	second := Tokenize(in)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("tokenization not stable: %v vs %v", first, second)
	}
}

func TestTokenizeShortAllowList(t *testing.T) {
	got := Tokenize("hi, is the ui in go or c?")
	want := []string{"hi", "ui", "go", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestNormalizeWord(t *testing.T) {
	cases := map[string]string{
		"Hello":      "hello",
		"C++":        "c",
		"snake_case": "snake_case",
		"re-try":     "re-try",
		"!!!":        "",
	}
	for in, want := range cases {
		if got := NormalizeWord(in); got != want {
			t.Errorf("NormalizeWord(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsNoise(t *testing.T) {
	for tok, want := range map[string]bool{
		"":       true,
		"ab":     true,
		"go":     false,
		"the":    true,
		"deploy": false,
	} {
		if got := IsNoise(tok); got != want {
			t.Errorf("IsNoise(%q) = %v, want %v", tok, got, want)
		}
	}
}
