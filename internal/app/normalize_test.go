package app_test

import (
	"errors"
	"testing"

	"github.com/raysh454/compliscan/internal/app"
)

func TestNormalizeURL_PrefixesSecureScheme(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"example.com":               "https://example.com",
		"  example.com/path?q=1  ":  "https://example.com/path?q=1",
		"http://example.com":        "http://example.com",
		"https://example.com":       "https://example.com",
		"\thttps://example.com/a\n": "https://example.com/a",
		"ftp://example.com":         "https://ftp://example.com",
		"not a url":                 "https://not a url",
	}
	for in, want := range cases {
		got, err := app.NormalizeURL(in)
		if err != nil {
			t.Errorf("NormalizeURL(%q) error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("NormalizeURL(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeURL_EmptyIsValidationError(t *testing.T) {
	t.Parallel()
	for _, in := range []string{"", "   ", "\t\n"} {
		_, err := app.NormalizeURL(in)
		var ve *app.ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("NormalizeURL(%q) = %v, want ValidationError", in, err)
		}
	}
}
