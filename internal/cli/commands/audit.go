// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FileOwners
// Source: github.com/fileowners/codeowners

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fileowners/codeowners/internal/vcs"
)

// NewAuditCommand creates the audit command.
func NewAuditCommand() *cobra.Command {
	var update bool

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Check that every tracked file has an owner",
		Long: `Walk every file tracked at HEAD and report those matching no rule and
missing from the unowned block. With --update, the unowned block is
rewritten from current facts: genuinely unowned files are added and
entries that now match a rule are dropped.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAudit(cmd, update)
		},
	}

	cmd.Flags().BoolVar(&update, "update", false, "rewrite the unowned block and save the file")
	return cmd
}

func runAudit(cmd *cobra.Command, update bool) error {
	cfg := configFrom(cmd.Context())
	doc, path, err := loadDocument(cfg)
	if err != nil {
		return err
	}

	files, err := vcs.ListFiles(repoRoot(path))
	if err != nil {
		return err
	}

	var uncovered []string
	for _, f := range files {
		if doc.Match(f, false) != nil {
			continue
		}

		if !doc.IsUnowned(f) {
			uncovered = append(uncovered, f)
		}
	}

	var stale []string
	for _, p := range doc.Unowned() {
		if doc.Match(p, false) != nil {
			stale = append(stale, p)
		}
	}

	if !update {
		for _, f := range uncovered {
			fmt.Fprintf(os.Stderr, "unowned: %s\n", f)
		}
		for _, p := range stale {
			fmt.Fprintf(os.Stderr, "stale unowned entry: %s\n", p)
		}

		if len(uncovered) > 0 {
			return fmt.Errorf("%d files have no owner", len(uncovered))
		}

		fmt.Println("all tracked files are covered")
		return nil
	}

	if len(uncovered) > 0 {
		if err := doc.AddUnowned(uncovered...); err != nil {
			return err
		}
	}

	if len(stale) > 0 {
		if err := doc.RemoveUnowned(stale...); err != nil {
			return err
		}
	}

	if err := saveDocument(doc, path, cfg); err != nil {
		return err
	}

	fmt.Printf("recorded %d unowned, dropped %d stale entries\n", len(uncovered), len(stale))
	return nil
}
