// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package config loads settings for the ghactivity command.
//
// Settings are read from a configuration file in HuJSON format (JSON with
// comments and trailing commas), then overridden by the environment:
//
//	{
//	  // A token raises the API rate limit.
//	  "token": "ghp_...",
//	  "pages": 2,
//	  "kinds": ["PushEvent", "PullRequestEvent"],
//	}
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/creachadair/ghactivity/fetch"
	"github.com/tailscale/hujson"
)

// TokenEnv is the name of the environment variable consulted for an API
// token. It takes precedence over a token in the configuration file.
const TokenEnv = "GITHUB_TOKEN"

// Config holds settings for the ghactivity command.
type Config struct {
	Token      string   `json:"token,omitempty"`
	BaseURL    string   `json:"base_url,omitempty"`
	PerPage    int      `json:"per_page,omitempty"`
	Pages      int      `json:"pages,omitempty"`
	PublicOnly bool     `json:"public_only,omitempty"`
	Kinds      []string `json:"kinds,omitempty"` // if non-empty, show only these event types
}

// DefaultPath returns the default location of the configuration file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "ghactivity", "config.json"), nil
}

// Load reads the configuration file at path. If path == "", the file at
// DefaultPath is read if it exists, and a zero Config is returned if not.
// A file named explicitly must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, nil // no home directory, no default file
		}
		path = p
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return Config{}, nil
	} else if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a configuration from HuJSON text. Unknown fields are
// rejected, so that a misspelled setting is not silently ignored.
func Parse(data []byte) (Config, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, err
	}
	dec := json.NewDecoder(bytes.NewReader(std))
	dec.DisallowUnknownFields()
	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.PerPage < 0 || cfg.Pages < 0 {
		return Config{}, errors.New("per_page and pages must not be negative")
	}
	return cfg, nil
}

// ApplyEnv overrides settings from the environment, using getenv to look
// up variables (typically os.Getenv).
func (c *Config) ApplyEnv(getenv func(string) string) {
	if tok := getenv(TokenEnv); tok != "" {
		c.Token = tok
	}
}

// FetchConfig returns the settings for a fetch client described by c,
// logging to logger.
func (c Config) FetchConfig(logger *slog.Logger) fetch.Config {
	return fetch.Config{
		BaseURL:    c.BaseURL,
		Token:      c.Token,
		PublicOnly: c.PublicOnly,
		PerPage:    c.PerPage,
		Pages:      c.Pages,
		Logger:     logger,
	}
}
