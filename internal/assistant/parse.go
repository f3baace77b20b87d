package assistant

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrUnparsableOutput signals that the model response contained no
// usable JSON, even after stripping the usual markdown wrapping.
var ErrUnparsableOutput = errors.New("could not parse model output")

// ExtractJSON pulls a JSON object or array out of free-form model
// output. Models like to wrap JSON in ```json fences or surround it
// with prose, so the raw text cannot be trusted to decode as-is.
func ExtractJSON(text string) (string, error) {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	if json.Valid([]byte(text)) {
		return text, nil
	}

	// prose around the payload: take the outermost object or array
	for _, pair := range [][2]string{{"{", "}"}, {"[", "]"}} {
		start := strings.Index(text, pair[0])
		end := strings.LastIndex(text, pair[1])
		if start < 0 || end <= start {
			continue
		}
		candidate := text[start : end+1]
		if json.Valid([]byte(candidate)) {
			return candidate, nil
		}
	}

	return "", ErrUnparsableOutput
}
