// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FileOwners
// Source: github.com/fileowners/codeowners

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSetOwnersCommand creates the set-owners command.
func NewSetOwnersCommand() *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "set-owners [pattern] <owner>...",
		Short: "Replace the owners of every rule with the given pattern",
		Long: `Replace the owner list of every rule whose pattern equals the given one.
With --project, all positional arguments are owners and every rule of
that project is updated instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd.Context())
			doc, path, err := loadDocument(cfg)
			if err != nil {
				return err
			}

			var count int
			if project != "" {
				count, err = doc.UpdateProjectOwners(project, args)
			} else {
				if len(args) < 2 {
					return fmt.Errorf("set-owners needs a pattern and at least one owner")
				}

				count, err = doc.UpdateOwners(args[0], args[1:])
			}
			if err != nil {
				return err
			}

			if count == 0 {
				fmt.Println("no matching rules, file unchanged")
				return nil
			}

			if err := saveDocument(doc, path, cfg); err != nil {
				return err
			}

			fmt.Printf("updated %d rules\n", count)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "update by project instead of by pattern")
	return cmd
}

// NewRenameOwnerCommand creates the rename-owner command.
func NewRenameOwnerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename-owner <old> <new>",
		Short: "Replace an owner everywhere it appears",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd.Context())
			doc, path, err := loadDocument(cfg)
			if err != nil {
				return err
			}

			count, err := doc.RenameOwner(args[0], args[1])
			if err != nil {
				return err
			}

			if count == 0 {
				fmt.Println("owner not found, file unchanged")
				return nil
			}

			if err := saveDocument(doc, path, cfg); err != nil {
				return err
			}

			fmt.Printf("replaced %d occurrences\n", count)
			return nil
		},
	}
}

// NewRenameProjectCommand creates the rename-project command.
func NewRenameProjectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename-project <old> <new>",
		Short: "Rename a project and its declaring comments",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd.Context())
			doc, path, err := loadDocument(cfg)
			if err != nil {
				return err
			}

			count, err := doc.RenameProject(args[0], args[1])
			if err != nil {
				return err
			}

			if count == 0 {
				fmt.Println("project not found, file unchanged")
				return nil
			}

			if err := saveDocument(doc, path, cfg); err != nil {
				return err
			}

			fmt.Printf("renamed on %d lines\n", count)
			return nil
		},
	}
}
