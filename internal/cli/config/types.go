// Package config loads olivctl's own configuration from file, environment
// variables and CLI flags. This is the tool's configuration, not the bot's:
// the bot's account collection lives in account.json under the install
// directory and is managed by the account store.
package config

import (
	"fmt"
	"path/filepath"
)

// Defaults.
const (
	DefaultRootPath = "./OlivOS"
	DefaultOutput   = "auto"
)

// Config is the resolved olivctl configuration.
type Config struct {
	// RootPath is the OlivOS installation directory.
	RootPath string `koanf:"root_path"`

	// AccountFile overrides the account collection path. Empty means
	// <root_path>/conf/account.json.
	AccountFile string `koanf:"account_file"`

	// Output selects the rendering mode: auto, text or json.
	Output string `koanf:"output"`

	Verbose bool `koanf:"verbose"`
}

// AccountPath returns the account collection path, applying the default
// layout under the install directory when no override is set.
func (c *Config) AccountPath() string {
	if c.AccountFile != "" {
		return c.AccountFile
	}
	return filepath.Join(c.RootPath, "conf", "account.json")
}

// Validate checks fields that cannot be checked by unmarshalling alone.
func (c *Config) Validate() error {
	switch c.Output {
	case "auto", "text", "json":
		return nil
	default:
		return fmt.Errorf("invalid output mode %q (expected auto, text or json)", c.Output)
	}
}
