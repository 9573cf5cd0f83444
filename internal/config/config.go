// Package config holds runtime settings for the mindcli client. Values are
// layered: defaults, then an optional JSON file, then command-line flags
// (applied by the command layer). Later sources win.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Config is the resolved runtime configuration.
type Config struct {
	ServerURL      string
	RequestTimeout time.Duration
}

// Default returns the built-in settings: local backend, 15s timeout.
func Default() *Config {
	return &Config{
		ServerURL:      "http://localhost:5000",
		RequestTimeout: 15 * time.Second,
	}
}

// fileConfig is the JSON on-disk shape. The timeout is a string like "15s".
type fileConfig struct {
	ServerURL      string   `json:"server_url"`
	RequestTimeout duration `json:"request_timeout"`
}

// Load builds a Config from defaults overlaid with the JSON file at path.
// An empty path skips the file layer entirely.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if fc.ServerURL != "" {
		cfg.ServerURL = fc.ServerURL
	}
	if fc.RequestTimeout > 0 {
		cfg.RequestTimeout = time.Duration(fc.RequestTimeout)
	}
	return cfg, nil
}

// duration unmarshals from a Go duration string ("15s", "1m30s").
type duration time.Duration

func (d *duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = duration(parsed)
	return nil
}
