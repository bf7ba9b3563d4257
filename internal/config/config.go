// Package config loads the optional per-site configuration file.
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/marcus/solsite/internal/site"
	"github.com/natefinch/atomic"
)

const configFile = ".solsite/config.json"

// Config holds optional per-site settings. The zero value is a fully
// working default.
type Config struct {
	// SiteName overrides the display name used in the homepage <title> and
	// og:title lines.
	SiteName string `json:"site_name,omitempty"`
	// Publish disables the git publish step when explicitly set to false.
	Publish *bool `json:"publish,omitempty"`
}

// Load reads the config from the site root. A missing file is not an
// error; it yields the zero-value config.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(root, configFile))
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the config to the site root using an atomic replace.
func Save(root string, cfg *Config) error {
	path := filepath.Join(root, configFile)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return atomic.WriteFile(path, bytes.NewReader(append(data, '\n')))
}

// SiteName returns the configured site name, or the default.
func (c *Config) SiteNameOrDefault() string {
	if c.SiteName != "" {
		return c.SiteName
	}
	return site.DefaultSiteName
}

// PublishEnabled reports whether the publish step should run. Unset means
// enabled.
func (c *Config) PublishEnabled() bool {
	return c.Publish == nil || *c.Publish
}
