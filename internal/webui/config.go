package webui

import (
	"errors"

	"github.com/raysh454/compliscan/internal/app"
	"github.com/raysh454/compliscan/internal/logging"
	"github.com/raysh454/compliscan/internal/webclient"
)

type Config struct {
	// ListenAddr is the HTTP listen address of the web UI.
	ListenAddr string `mapstructure:"listen_addr" yaml:"listen_addr"`

	// Service is the scanning service every session talks to. Nil means
	// app.DefaultConfig().
	Service *app.Config `mapstructure:"-" yaml:"-"`

	// Client is shared by all sessions. When nil the server builds a net/http
	// client from Service and closes it on Close.
	Client webclient.WebClient `mapstructure:"-" yaml:"-"`

	Logger logging.Logger `mapstructure:"-" yaml:"-"`
}

// DefaultConfig listens on :8080.
func DefaultConfig() Config {
	return Config{ListenAddr: ":8080"}
}

func (c Config) Validate() error {
	if c.ListenAddr == "" {
		return errors.New("server.listen_addr must not be empty")
	}
	return nil
}
