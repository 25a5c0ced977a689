// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FileOwners
// Source: github.com/fileowners/codeowners

// Package finder locates a CODEOWNERS file on disk.
package finder

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrNotFound indicates no CODEOWNERS file in any conventional location.
var ErrNotFound = errors.New("no CODEOWNERS file found")

// locations are the conventional file locations tried within each
// directory, most specific hosting convention last.
var locations = []string{
	"CODEOWNERS",
	"docs/CODEOWNERS",
	".github/CODEOWNERS",
	".gitlab/CODEOWNERS",
	".bitbucket/CODEOWNERS",
}

// maxUpwardLevels limits how far up the directory tree Find searches.
const maxUpwardLevels = 10

// FindIn returns the CODEOWNERS file inside dir, if any.
func FindIn(dir string) (string, bool) {
	for _, loc := range locations {
		candidate := filepath.Join(dir, filepath.FromSlash(loc))
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}

	return "", false
}

// Find searches startDir and its parents for a CODEOWNERS file and returns
// its absolute path.
func Find(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for i := 0; i < maxUpwardLevels; i++ {
		if found, ok := FindIn(dir); ok {
			return found, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	return "", ErrNotFound
}
