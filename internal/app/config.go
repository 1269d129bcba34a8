package app

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/raysh454/compliscan/internal/webclient"
)

// Config describes the scanning service the orchestrator talks to.
type Config struct {
	// Endpoint is the fixed URL analysis requests are POSTed to.
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`

	// ImageBase is the origin screenshot paths are resolved against. When empty
	// the endpoint's origin is used.
	ImageBase string `mapstructure:"image_base" yaml:"image_base"`

	// Timeout bounds one analysis request at the transport. Zero disables it.
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// DefaultConfig returns a Config pointing at a locally running scanning service.
func DefaultConfig() *Config {
	return &Config{
		Endpoint: "http://localhost:8081/api/analyze",
		Timeout:  120 * time.Second,
	}
}

// Validate checks that the endpoint and image base are usable absolute URLs.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("service config is nil")
	}
	if _, err := parseHTTPURL(c.Endpoint); err != nil {
		return fmt.Errorf("service endpoint: %w", err)
	}
	if c.ImageBase != "" {
		if _, err := parseHTTPURL(c.ImageBase); err != nil {
			return fmt.Errorf("service image base: %w", err)
		}
	}
	if c.Timeout < 0 {
		return fmt.Errorf("service timeout must not be negative, got %s", c.Timeout)
	}
	return nil
}

// ImageBaseURL returns the configured image base, or the endpoint's origin.
func (c *Config) ImageBaseURL() (*url.URL, error) {
	if c.ImageBase != "" {
		return parseHTTPURL(c.ImageBase)
	}
	ep, err := parseHTTPURL(c.Endpoint)
	if err != nil {
		return nil, err
	}
	return &url.URL{Scheme: ep.Scheme, Host: ep.Host, Path: "/"}, nil
}

// WebClientConfig derives the transport settings.
func (c *Config) WebClientConfig() webclient.Config {
	return webclient.Config{Timeout: c.Timeout}
}

func parseHTTPURL(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, errors.New("url is empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse url %s: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("url %s must use http or https", raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("url %s has no host", raw)
	}
	return u, nil
}
