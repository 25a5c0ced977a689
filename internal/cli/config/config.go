// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FileOwners
// Source: github.com/fileowners/codeowners

// Package config loads CLI configuration from file, environment and flags.
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

// Config holds the resolved CLI configuration.
type Config struct {
	// File is the CODEOWNERS file path; empty means discover it upward
	// from the working directory.
	File string `koanf:"file"`
	// Aliases enables "@name owner..." alias line parsing.
	Aliases bool `koanf:"aliases"`
	// Format selects command output: "table" or "json".
	Format string `koanf:"format"`
	// Charset is the output encoding used when writing the file back;
	// empty means UTF-8.
	Charset string `koanf:"charset"`
}

// configNames are the config file names searched upward from the working
// directory when no explicit --config is given.
var configNames = []string{".codeowners.yaml", ".codeowners.yml"}

// maxUpwardSearchLevels limits how far up the directory tree to search for
// config files.
const maxUpwardSearchLevels = 10

// findConfigFile returns the config file to use, or empty when none exists.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}

	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for i := 0; i < maxUpwardSearchLevels; i++ {
		for _, name := range configNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	return ""
}

// Load resolves configuration with precedence flags > env > file > defaults.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"file":    "",
		"aliases": false,
		"format":  "table",
		"charset": "",
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if used := findConfigFile(cfgFile); used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", used, err)
		}
	}

	// CODEOWNERS_FORMAT -> format
	if err := k.Load(env.Provider("CODEOWNERS_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "CODEOWNERS_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only flags the user set override file and env values.
			if !f.Changed {
				return "", nil
			}

			return f.Name, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return &cfg, nil
}
