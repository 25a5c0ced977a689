// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FileOwners
// Source: github.com/fileowners/codeowners

// Package main provides the codeowners CLI.
package main

import (
	"os"

	"github.com/fileowners/codeowners/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
