// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FileOwners
// Source: github.com/fileowners/codeowners

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewUnownedCommand creates the unowned command group.
func NewUnownedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unowned",
		Short: "Manage the unowned extension block",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List recorded unowned paths",
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg := configFrom(cmd.Context())
				doc, _, err := loadDocument(cfg)
				if err != nil {
					return err
				}

				return printListing(cfg.Format, doc.Unowned())
			},
		},
		&cobra.Command{
			Use:   "add <path>...",
			Short: "Record paths as unowned",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg := configFrom(cmd.Context())
				doc, path, err := loadDocument(cfg)
				if err != nil {
					return err
				}

				if err := doc.AddUnowned(args...); err != nil {
					return err
				}

				return saveDocument(doc, path, cfg)
			},
		},
		&cobra.Command{
			Use:   "remove <path>...",
			Short: "Drop paths from the unowned block",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg := configFrom(cmd.Context())
				doc, path, err := loadDocument(cfg)
				if err != nil {
					return err
				}

				if err := doc.RemoveUnowned(args...); err != nil {
					return err
				}

				return saveDocument(doc, path, cfg)
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Drop the whole unowned block",
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg := configFrom(cmd.Context())
				doc, path, err := loadDocument(cfg)
				if err != nil {
					return err
				}

				n := len(doc.Unowned())
				doc.ClearUnowned()
				if err := saveDocument(doc, path, cfg); err != nil {
					return err
				}

				fmt.Printf("dropped %d entries\n", n)
				return nil
			},
		},
	)

	return cmd
}
