package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	document := `
builtins:
  - mathops
  - weather
dispatcher:
  workers: 4
  timeout: 30s
weather:
  url: http://localhost:9090
`
	location := filepath.Join(t.TempDir(), "config.yaml")
	assert.Nil(t, os.WriteFile(location, []byte(document), 0o644))

	cfg, err := Load(context.Background(), location)
	assert.Nil(t, err)
	assert.Equal(t, []string{"mathops", "weather"}, cfg.Builtins)
	assert.Equal(t, 4, cfg.Dispatcher.Workers)
	timeout, err := cfg.Dispatcher.TimeoutDuration()
	assert.Nil(t, err)
	assert.Equal(t, 30*time.Second, timeout)
	assert.Equal(t, "http://localhost:9090", cfg.Weather.URL)
	assert.Nil(t, cfg.Validate())
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.NotNil(t, err)
}

func TestLoadMalformed(t *testing.T) {
	location := filepath.Join(t.TempDir(), "config.yaml")
	assert.Nil(t, os.WriteFile(location, []byte("builtins: [unterminated"), 0o644))
	_, err := Load(context.Background(), location)
	assert.NotNil(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		description string
		config      Config
		valid       bool
	}{
		{"empty", Config{}, true},
		{"negative workers", Config{Dispatcher: &Dispatcher{Workers: -1}}, false},
		{"bad timeout", Config{Dispatcher: &Dispatcher{Timeout: "soon"}}, false},
		{"valid dispatcher", Config{Dispatcher: &Dispatcher{Workers: 2, Timeout: "1m"}}, true},
	}
	for _, tc := range cases {
		err := tc.config.Validate()
		if tc.valid {
			assert.Nil(t, err, tc.description)
		} else {
			assert.NotNil(t, err, tc.description)
		}
	}
}

func TestTimeoutDurationUnset(t *testing.T) {
	var d *Dispatcher
	timeout, err := d.TimeoutDuration()
	assert.Nil(t, err)
	assert.Equal(t, time.Duration(0), timeout)
}
