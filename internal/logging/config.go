package logging

import "fmt"

// Config controls how the zap backed logger is built.
type Config struct {
	// Level is one of debug, info, warn, error. Unknown values fall back to info.
	Level string `mapstructure:"level" yaml:"level"`

	// Format is "console" for human readable output or "json".
	Format string `mapstructure:"format" yaml:"format"`

	// ServiceName names the root logger.
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`

	// LogFile, when set, adds a rotating JSON file sink.
	LogFile    string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"` // days
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// DefaultConfig returns console logging at info level.
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Format:      "console",
		ServiceName: "compliscan",
		MaxSize:     10,
		MaxBackups:  3,
		MaxAge:      28,
	}
}

// Validate rejects formats and rotation settings the zap backend can't use.
func (c Config) Validate() error {
	switch c.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logger.format must be console or json, got %q", c.Format)
	}
	if c.MaxSize < 0 || c.MaxBackups < 0 || c.MaxAge < 0 {
		return fmt.Errorf("logger rotation settings must not be negative")
	}
	return nil
}
