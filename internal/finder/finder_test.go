// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FileOwners
// Source: github.com/fileowners/codeowners

package finder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("*.go  @gophers\n"), 0o644))
}

func TestFindIn(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".github", "CODEOWNERS"))

	found, ok := FindIn(root)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, ".github", "CODEOWNERS"), found)

	_, ok = FindIn(t.TempDir())
	assert.False(t, ok)
}

func TestFindInPrefersRootFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "CODEOWNERS"))
	writeFile(t, filepath.Join(root, ".github", "CODEOWNERS"))

	found, ok := FindIn(root)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "CODEOWNERS"), found)
}

func TestFindWalksUpward(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "docs", "CODEOWNERS"))

	start := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(start, 0o750))

	found, err := Find(start)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "docs", "CODEOWNERS"), found)
}

func TestFindNotFound(t *testing.T) {
	// An isolated temp tree has no CODEOWNERS within the search depth.
	deep := filepath.Join(t.TempDir(), "a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k")
	require.NoError(t, os.MkdirAll(deep, 0o750))

	_, err := Find(deep)
	assert.ErrorIs(t, err, ErrNotFound)
}
