package demoserver

import (
	"fmt"
	"time"
)

// Config holds configuration for the demo server.
type Config struct {
	// Port is the port on which the demo server listens.
	Port int `mapstructure:"port" yaml:"port"`

	// SlowDelay is how long the "slow" scenario takes to answer.
	SlowDelay time.Duration `mapstructure:"slow_delay" yaml:"slow_delay"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Port:      8081,
		SlowDelay: 3 * time.Second,
	}
}

func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("demoserver.port must be between 1 and 65535, got %d", c.Port)
	}
	if c.SlowDelay < 0 {
		return fmt.Errorf("demoserver.slow_delay must not be negative, got %s", c.SlowDelay)
	}
	return nil
}
