// Package config reads and writes the edi configuration file.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the persisted client configuration, collected once during
// first-run setup.
type Config struct {
	APIKey string `toml:"api_key"` // Poe API key
	Model  string `toml:"model"`   // Bot the conversation is held with
}

// Complete reports whether the configuration is usable without setup.
func (c Config) Complete() bool {
	return c.APIKey != "" && c.Model != ""
}

// DefaultPath returns the default location of the configuration file.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(home, ".config", "edi", "config.toml"), nil
}

// Load reads the configuration at path. A missing file yields a zero
// Config so first-run setup can take over; a malformed file is an error,
// since silently discarding a key the user saved would force a re-setup.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes cfg to path, creating parent directories as needed. The
// file carries the API key, so it is written user-only.
func Save(path string, cfg Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}
