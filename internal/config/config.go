// Package config loads the compliscan configuration from defaults, an optional
// YAML file and COMPLISCAN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/raysh454/compliscan/internal/app"
	"github.com/raysh454/compliscan/internal/demoserver"
	"github.com/raysh454/compliscan/internal/logging"
	"github.com/raysh454/compliscan/internal/webui"
)

const (
	// EnvPrefix prefixes every environment override, e.g. COMPLISCAN_SERVICE_ENDPOINT.
	EnvPrefix = "COMPLISCAN"

	// DefaultFileName is looked up in the working directory when no file is given.
	DefaultFileName = "compliscan"
)

// Config aggregates the settings of every component.
type Config struct {
	Service    app.Config        `mapstructure:"service" yaml:"service"`
	Server     webui.Config      `mapstructure:"server" yaml:"server"`
	Logger     logging.Config    `mapstructure:"logger" yaml:"logger"`
	DemoServer demoserver.Config `mapstructure:"demoserver" yaml:"demoserver"`
}

// SetDefaults registers a default for every known key. Environment overrides
// only apply to keys viper knows about, so nothing may be left out here.
func SetDefaults(v *viper.Viper) {
	svc := app.DefaultConfig()
	v.SetDefault("service.endpoint", svc.Endpoint)
	v.SetDefault("service.image_base", svc.ImageBase)
	v.SetDefault("service.timeout", svc.Timeout)

	srv := webui.DefaultConfig()
	v.SetDefault("server.listen_addr", srv.ListenAddr)

	lg := logging.DefaultConfig()
	v.SetDefault("logger.level", lg.Level)
	v.SetDefault("logger.format", lg.Format)
	v.SetDefault("logger.service_name", lg.ServiceName)
	v.SetDefault("logger.log_file", lg.LogFile)
	v.SetDefault("logger.max_size", lg.MaxSize)
	v.SetDefault("logger.max_backups", lg.MaxBackups)
	v.SetDefault("logger.max_age", lg.MaxAge)
	v.SetDefault("logger.compress", lg.Compress)

	demo := demoserver.DefaultConfig()
	v.SetDefault("demoserver.port", demo.Port)
	v.SetDefault("demoserver.slow_delay", demo.SlowDelay)
}

// NewViper returns a viper instance with defaults and environment binding set
// up. When path is empty ./compliscan.yaml is used if it exists.
func NewViper(path string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(DefaultFileName)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the configuration. A missing default file is not an error; a
// missing explicit file is.
func Load(path string) (*Config, error) {
	v := NewViper(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return FromViper(v)
}

// FromViper unmarshals and validates the configuration held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Default returns the configuration built from defaults alone.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Service.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.DemoServer.Validate(); err != nil {
		return err
	}
	return nil
}
