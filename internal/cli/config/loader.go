package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

var configFileUsed string

// GetConfigFileUsed returns the config file the last Load resolved, or ""
// when only defaults, env vars and flags applied.
func GetConfigFileUsed() string { return configFileUsed }

// findConfigFile picks the config file to use.
// Priority: explicit path > ./olivctl.yaml > ./olivctl.yml.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"olivctl.yaml", "olivctl.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load builds the configuration.
// Precedence (highest to lowest): flags > OLIVCTL_* env vars > config file
// > defaults.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"root_path": DefaultRootPath,
		"output":    DefaultOutput,
		"verbose":   false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// OLIVCTL_ROOT_PATH -> root_path
	if err := k.Load(env.Provider("OLIVCTL_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "OLIVCTL_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")

			// The CLI uses --root for brevity; the config key stays
			// root_path for clarity.
			if key == "root" {
				return "root_path", posflag.FlagVal(flags, f)
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Resolve file-sourced paths relative to the config file's directory
	// so invoking olivctl from elsewhere still finds the same install.
	// Flag-sourced paths are relative to the CWD and stay as given.
	if configFileUsed != "" {
		base := filepath.Dir(configFileUsed)
		if flags == nil || !flags.Changed("root") {
			cfg.RootPath = resolveRelativeTo(cfg.RootPath, base)
		}
		if flags == nil || !flags.Changed("account-file") {
			cfg.AccountFile = resolveRelativeTo(cfg.AccountFile, base)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func resolveRelativeTo(path, baseDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
