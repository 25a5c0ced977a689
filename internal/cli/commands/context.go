// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FileOwners
// Source: github.com/fileowners/codeowners

// Package commands implements the codeowners CLI subcommands.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fileowners/codeowners"
	"github.com/fileowners/codeowners/internal/cli/config"
	"github.com/fileowners/codeowners/internal/finder"
)

// configKey is used to store the resolved config in the command context.
type configKey struct{}

// WithConfig stores the resolved config in ctx.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// configFrom retrieves the config from ctx, falling back to defaults.
func configFrom(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return cfg
	}

	return &config.Config{Format: "table"}
}

// resolveFile returns the CODEOWNERS file path from config or by searching
// upward from the working directory.
func resolveFile(cfg *config.Config) (string, error) {
	if cfg.File != "" {
		return cfg.File, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	return finder.Find(cwd)
}

// loadDocument locates, parses and returns the document plus its file path.
func loadDocument(cfg *config.Config) (*codeowners.Document, string, error) {
	path, err := resolveFile(cfg)
	if err != nil {
		return nil, "", err
	}

	doc, err := codeowners.LoadFile(path, codeowners.Options{Aliases: cfg.Aliases})
	if err != nil {
		return nil, "", err
	}

	return doc, path, nil
}

// saveDocument writes the document back to its file.
func saveDocument(doc *codeowners.Document, path string, cfg *config.Config) error {
	return doc.WriteFile(path, cfg.Charset)
}

// repoRoot returns the directory holding the CODEOWNERS file, treated as
// the repository root for path matching. Files under docs/, .github/ and
// similar hosting conventions live one level below the root.
func repoRoot(codeownersPath string) string {
	dir := filepath.Dir(codeownersPath)
	switch filepath.Base(dir) {
	case "docs", ".github", ".gitlab", ".bitbucket":
		return filepath.Dir(dir)
	}

	return dir
}

// printJSON renders v as indented JSON on stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}
