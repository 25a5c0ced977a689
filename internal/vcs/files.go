// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FileOwners
// Source: github.com/fileowners/codeowners

// Package vcs lists version-controlled files for ownership checks.
package vcs

import (
	"fmt"
	"sort"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// ListFiles returns the paths tracked at HEAD of the repository containing
// repoPath, slash-separated and relative to the repository root, sorted.
func ListFiles(repoPath string) ([]string, error) {
	repo, err := git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open repository at %s: %w", repoPath, err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("read HEAD commit: %w", err)
	}

	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("read HEAD tree: %w", err)
	}

	var files []string
	iter := tree.Files()
	defer iter.Close()

	if err := iter.ForEach(func(f *object.File) error {
		files = append(files, f.Name)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("walk HEAD tree: %w", err)
	}

	sort.Strings(files)
	return files, nil
}
