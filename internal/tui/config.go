package tui

import (
	"github.com/uzpay-labs/fraudscope/internal/api"
	"github.com/uzpay-labs/fraudscope/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Client *api.Client
	Theme  themes.Theme
	Width  int
	Height int
}

// Option is a functional option for configuring the console.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:  themes.Default,
		Width:  80,
		Height: 24,
	}
}

// WithClient sets a preconfigured backend client.
func WithClient(client *api.Client) Option {
	return func(c *Config) {
		c.Client = client
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}
