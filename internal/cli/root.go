// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FileOwners
// Source: github.com/fileowners/codeowners

// Package cli provides the command-line interface for codeowners.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fileowners/codeowners/internal/cli/commands"
	"github.com/fileowners/codeowners/internal/cli/config"
)

// Version information (set at build time).
var Version = "0.1.0"

var cfgFile string

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "codeowners",
		Short: "Query and edit CODEOWNERS files",
		Long: `codeowners parses a CODEOWNERS file, resolves ownership for paths
tracked in the repository, and edits owners, projects and the
unowned extension block in place.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			cmd.SetContext(commands.WithConfig(cmd.Context(), cfg))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .codeowners.yaml found upward)")
	rootCmd.PersistentFlags().StringP("file", "f", "", "CODEOWNERS file path (default: discovered upward)")
	rootCmd.PersistentFlags().Bool("aliases", false, "enable @alias owner lines")
	rootCmd.PersistentFlags().StringP("format", "o", "", "output format (table|json)")
	rootCmd.PersistentFlags().String("charset", "", "encoding used when writing the file back")

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"table", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewOwnersCommand())
	rootCmd.AddCommand(commands.NewPatternsCommand())
	rootCmd.AddCommand(commands.NewProjectsCommand())
	rootCmd.AddCommand(commands.NewAuditCommand())
	rootCmd.AddCommand(commands.NewSetOwnersCommand())
	rootCmd.AddCommand(commands.NewRenameOwnerCommand())
	rootCmd.AddCommand(commands.NewRenameProjectCommand())
	rootCmd.AddCommand(commands.NewUnownedCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	return nil
}
