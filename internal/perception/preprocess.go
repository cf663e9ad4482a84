package perception

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/johndoe6345789/WordNet/internal/logging"
)

// ExtractPlainText prepares raw turn input for tokenization. Input that
// looks like a JSON document is replaced by all of its string leaf values
// in document order, space-joined; object keys are not leaves. Anything
// that fails to parse, or parses to no strings, passes through unchanged.
func ExtractPlainText(input string) string {
	trimmed := strings.TrimSpace(input)
	if len(trimmed) == 0 || (trimmed[0] != '{' && trimmed[0] != '[') {
		return input
	}
	leaves, err := collectStringLeaves(trimmed)
	if err != nil {
		logging.PerceptionDebug("structured input rejected: %v", err)
		return input
	}
	if len(leaves) == 0 {
		return input
	}
	return strings.Join(leaves, " ")
}

// frame tracks whether the walker sits inside an object (alternating
// key/value tokens) or an array.
type frame struct {
	object    bool
	expectKey bool
}

// collectStringLeaves walks the JSON token stream so leaf order follows
// the document, which a decoded map would not preserve.
func collectStringLeaves(doc string) ([]string, error) {
	dec := json.NewDecoder(strings.NewReader(doc))
	var stack []frame
	var leaves []string

	valueDone := func() {
		if n := len(stack); n > 0 && stack[n-1].object {
			stack[n-1].expectKey = true
		}
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case json.Delim:
			switch t {
			case '{':
				stack = append(stack, frame{object: true, expectKey: true})
			case '[':
				stack = append(stack, frame{})
			case '}', ']':
				stack = stack[:len(stack)-1]
				valueDone()
			}
		case string:
			if n := len(stack); n > 0 && stack[n-1].object && stack[n-1].expectKey {
				stack[n-1].expectKey = false
				continue
			}
			if t != "" {
				leaves = append(leaves, t)
			}
			valueDone()
		default:
			valueDone()
		}
		if len(stack) == 0 {
			break
		}
	}
	return leaves, nil
}
