package app

import "strings"

// NormalizeURL trims raw and prefixes https:// unless it already starts with
// http:// or https://. Nothing else is checked; the service decides validity.
func NormalizeURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", &ValidationError{Input: raw}
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return trimmed, nil
	}
	return "https://" + trimmed, nil
}
