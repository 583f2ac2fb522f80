// Package llmjson pulls a JSON object out of free-form model output.
package llmjson

import "errors"

// MaxScanBytes caps the input ExtractObject will look at. The scan is a
// single forward pass, so the worst case is O(MaxScanBytes).
const MaxScanBytes = 1 << 20

var (
	ErrNoObject = errors.New("llmjson: no balanced JSON object in text")
	ErrTooLarge = errors.New("llmjson: text exceeds scan limit")
)

// ExtractObject returns the first balanced {...} span of text.
//
// Scanning starts at the first '{' and tracks nesting depth. Braces inside
// JSON strings (including escaped quotes) do not count. If the opening brace
// is never closed the text is rejected; no later start is tried.
func ExtractObject(text string) (string, error) {
	if len(text) > MaxScanBytes {
		return "", ErrTooLarge
	}

	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]

		if start < 0 {
			if c == '{' {
				start = i
				depth = 1
			}
			continue
		}

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}

	return "", ErrNoObject
}
