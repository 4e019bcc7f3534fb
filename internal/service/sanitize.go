package service

import (
	"errors"
	"strings"
)

var errNoJSONObject = errors.New("no JSON object in model output")

// ExtractJSONObject drops everything before the first '{' and after the last '}'.
// Braces inside the surrounding text are not detected and surface as a parse error later.
// Empty text is an error too, so the caller answers 500 rather than an empty {} solution.
func ExtractJSONObject(text string) ([]byte, error) {
	first := strings.IndexByte(text, '{')
	last := strings.LastIndexByte(text, '}')
	if first < 0 || last < first {
		return nil, errNoJSONObject
	}
	return []byte(strings.TrimSpace(text[first : last+1])), nil
}
