// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FileOwners
// Source: github.com/fileowners/codeowners

package vcs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initRepo creates a repository with one commit containing the given files.
func initRepo(t *testing.T, files ...string) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	for _, f := range files {
		path := filepath.Join(dir, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte("content\n"), 0o644))
		_, err = wt.Add(f)
		require.NoError(t, err)
	}

	_, err = wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "tester",
			Email: "tester@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return dir
}

func TestListFiles(t *testing.T) {
	dir := initRepo(t, "src/main.go", "README.md", "docs/intro.md")

	files, err := ListFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"README.md", "docs/intro.md", "src/main.go"}, files)
}

func TestListFilesFromSubdirectory(t *testing.T) {
	dir := initRepo(t, "src/main.go", "src/util.go")

	// DetectDotGit walks upward from the given path.
	files, err := ListFiles(filepath.Join(dir, "src"))
	require.NoError(t, err)
	assert.Equal(t, []string{"src/main.go", "src/util.go"}, files)
}

func TestListFilesNotARepository(t *testing.T) {
	_, err := ListFiles(t.TempDir())
	assert.Error(t, err)
}
