// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FileOwners
// Source: github.com/fileowners/codeowners

package commands

import (
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/fileowners/codeowners/internal/vcs"
)

// pathOwnership is one row of show output.
type pathOwnership struct {
	Path    string   `json:"path"`
	Owners  []string `json:"owners,omitempty"`
	Pattern string   `json:"pattern,omitempty"`
	Project string   `json:"project,omitempty"`
	Unowned bool     `json:"unowned,omitempty"`
}

// NewShowCommand creates the show command.
func NewShowCommand() *cobra.Command {
	var expand bool

	cmd := &cobra.Command{
		Use:   "show [path...]",
		Short: "Show ownership for tracked files",
		Long: `Resolve ownership for the given paths, or for every file tracked at
HEAD of the surrounding repository when no path is given.`,
		Example: `  # Ownership of every tracked file
  codeowners show

  # Ownership of specific paths, aliases expanded
  codeowners show --aliases --expand src/main.go docs/intro.md`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args, expand)
		},
	}

	cmd.Flags().BoolVar(&expand, "expand", false, "expand owner aliases in results")
	return cmd
}

func runShow(cmd *cobra.Command, args []string, expand bool) error {
	cfg := configFrom(cmd.Context())
	doc, path, err := loadDocument(cfg)
	if err != nil {
		return err
	}

	paths := args
	if len(paths) == 0 {
		paths, err = vcs.ListFiles(repoRoot(path))
		if err != nil {
			return err
		}
	}

	rows := make([]pathOwnership, 0, len(paths))
	for _, p := range paths {
		row := pathOwnership{Path: p}
		if m := doc.Match(p, expand); m != nil {
			row.Owners = m.Owners
			row.Pattern = m.Pattern
			row.Project = m.Project
		} else {
			row.Unowned = true
		}

		rows = append(rows, row)
	}

	if cfg.Format == "json" {
		return printJSON(rows)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Path", "Owners", "Project"})
	for _, row := range rows {
		owners := strings.Join(row.Owners, " ")
		if row.Unowned {
			owners = "(unowned)"
		}

		t.AppendRow(table.Row{row.Path, owners, row.Project})
	}

	t.Render()
	return nil
}
