// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FileOwners
// Source: github.com/fileowners/codeowners

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewOwnersCommand creates the owners command.
func NewOwnersCommand() *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "owners",
		Short: "List owners declared in the file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFrom(cmd.Context())
			doc, _, err := loadDocument(cfg)
			if err != nil {
				return err
			}

			owners := doc.Owners()
			if pattern != "" {
				owners = doc.OwnersByPattern(pattern)
			}

			return printListing(cfg.Format, owners)
		},
	}

	cmd.Flags().StringVar(&pattern, "pattern", "", "restrict to owners of this exact pattern")
	return cmd
}

// NewPatternsCommand creates the patterns command.
func NewPatternsCommand() *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List patterns declared in the file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFrom(cmd.Context())
			doc, _, err := loadDocument(cfg)
			if err != nil {
				return err
			}

			patterns := doc.Patterns()
			if owner != "" {
				patterns = doc.PatternsByOwner(owner)
			}

			return printListing(cfg.Format, patterns)
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "restrict to patterns owned by this owner")
	return cmd
}

// NewProjectsCommand creates the projects command.
func NewProjectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "List projects declared in the file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFrom(cmd.Context())
			doc, _, err := loadDocument(cfg)
			if err != nil {
				return err
			}

			return printListing(cfg.Format, doc.Projects())
		},
	}
}

// printListing renders a deduplicated sorted listing.
func printListing(format string, values []string) error {
	if format == "json" {
		return printJSON(values)
	}

	for _, v := range values {
		fmt.Println(v)
	}

	return nil
}
