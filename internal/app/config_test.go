package app_test

import (
	"testing"
	"time"

	"github.com/raysh454/compliscan/internal/app"
)

func TestDefaultConfig_Valid(t *testing.T) {
	t.Parallel()
	cfg := app.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Timeout != 120*time.Second {
		t.Errorf("timeout = %s", cfg.Timeout)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		cfg     app.Config
		wantErr bool
	}{
		{"ok", app.Config{Endpoint: "https://scan.example.com/api/analyze"}, false},
		{"empty endpoint", app.Config{}, true},
		{"relative endpoint", app.Config{Endpoint: "/api/analyze"}, true},
		{"ftp endpoint", app.Config{Endpoint: "ftp://scan/api"}, true},
		{"bad image base", app.Config{Endpoint: "http://a/api", ImageBase: "images"}, true},
		{"negative timeout", app.Config{Endpoint: "http://a/api", Timeout: -time.Second}, true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestConfig_ImageBaseURL(t *testing.T) {
	t.Parallel()
	derived := app.Config{Endpoint: "http://localhost:8081/api/analyze"}
	u, err := derived.ImageBaseURL()
	if err != nil {
		t.Fatalf("ImageBaseURL: %v", err)
	}
	if u.String() != "http://localhost:8081/" {
		t.Errorf("derived base = %q", u.String())
	}

	explicit := app.Config{Endpoint: "http://localhost:8081/api/analyze", ImageBase: "https://cdn.example.com/shots/"}
	u, err = explicit.ImageBaseURL()
	if err != nil {
		t.Fatalf("ImageBaseURL: %v", err)
	}
	if u.String() != "https://cdn.example.com/shots/" {
		t.Errorf("explicit base = %q", u.String())
	}
}

func TestConfig_WebClientConfig(t *testing.T) {
	t.Parallel()
	cfg := app.Config{Endpoint: "http://a/api", Timeout: 5 * time.Second}
	if got := cfg.WebClientConfig().Timeout; got != 5*time.Second {
		t.Errorf("timeout = %s", got)
	}
}
