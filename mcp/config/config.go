package config

import (
	"context"
	"fmt"
	"time"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	mcp "github.com/viant/mcp"
)

// Dispatcher tunes the invocation dispatcher.
type Dispatcher struct {
	// Workers bounds the number of concurrently executing handlers.
	Workers int `yaml:"workers,omitempty" json:"workers,omitempty"`
	// Timeout is a Go duration string, e.g. "30s" or "5m".
	Timeout string `yaml:"timeout,omitempty" json:"timeout,omitempty"`
}

// TimeoutDuration parses the configured timeout; zero when unset.
func (d *Dispatcher) TimeoutDuration() (time.Duration, error) {
	if d == nil || d.Timeout == "" {
		return 0, nil
	}
	timeout, err := time.ParseDuration(d.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid dispatcher timeout %q: %w", d.Timeout, err)
	}
	return timeout, nil
}

// Endpoint overrides the base URL of an outbound API dependency.
type Endpoint struct {
	URL string `yaml:"url,omitempty" json:"url,omitempty"`
}

type Config struct {
	Server     *mcp.ServerOptions `yaml:"server,omitempty" json:"server,omitempty"`
	Builtins   []string           `yaml:"builtins,omitempty" json:"builtins,omitempty"`
	Dispatcher *Dispatcher        `yaml:"dispatcher,omitempty" json:"dispatcher,omitempty"`
	Translator *Endpoint          `yaml:"translator,omitempty" json:"translator,omitempty"`
	Weather    *Endpoint          `yaml:"weather,omitempty" json:"weather,omitempty"`
}

// Load reads a configuration document from a local path or URL.
func Load(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", URL, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", URL, err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Dispatcher != nil {
		if c.Dispatcher.Workers < 0 {
			return fmt.Errorf("dispatcher workers must not be negative, got %d", c.Dispatcher.Workers)
		}
		if _, err := c.Dispatcher.TimeoutDuration(); err != nil {
			return err
		}
	}
	return nil
}
