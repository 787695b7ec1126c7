package generation

import (
	"errors"
	"strings"
)

var (
	// ErrMalformedResponse means the completion answered but no JSON
	// payload could be located or parsed in the response text.
	ErrMalformedResponse = errors.New("completion response contains no parseable json")
	// ErrEmptyContent means parsing succeeded but filtering left no
	// usable flashcards or quiz questions.
	ErrEmptyContent = errors.New("completion response contains no usable items")
)

// ExtractJSONPayload isolates the JSON span inside a completion response
// that may be wrapped in prose or markdown code fences. The heuristics
// live here so they can be tested apart from any network concern.
func ExtractJSONPayload(raw string) (string, error) {
	content := strings.TrimSpace(raw)
	if content == "" {
		return "", ErrMalformedResponse
	}

	content = stripCodeFences(content)

	objStart := strings.Index(content, "{")
	arrStart := strings.Index(content, "[")

	start, open := objStart, byte('{')
	if start == -1 || (arrStart != -1 && arrStart < start) {
		start, open = arrStart, '['
	}
	if start == -1 {
		return "", ErrMalformedResponse
	}

	closing := byte('}')
	if open == '[' {
		closing = ']'
	}

	end := strings.LastIndexByte(content, closing)
	if end <= start {
		return "", ErrMalformedResponse
	}

	return strings.TrimSpace(content[start : end+1]), nil
}

func stripCodeFences(content string) string {
	if !strings.HasPrefix(content, "```") {
		return content
	}

	// Skip the opening fence and its optional language tag line.
	start := 3
	if idx := strings.Index(content[start:], "\n"); idx != -1 {
		start += idx + 1
	}

	if end := strings.Index(content[start:], "```"); end != -1 {
		return strings.TrimSpace(content[start : start+end])
	}
	return strings.TrimSpace(content[start:])
}
