// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FileOwners
// Source: github.com/fileowners/codeowners

package codeowners

import (
	"errors"
	"fmt"
)

// Sentinel errors for codeowners operations.
var (
	// ErrInvalidLine indicates a line matching no known shape.
	ErrInvalidLine = errors.New("invalid line")
	// ErrEmptyPattern indicates a missing or empty rule pattern argument.
	ErrEmptyPattern = errors.New("empty pattern")
	// ErrNoOwners indicates a missing owner list argument.
	ErrNoOwners = errors.New("missing owners")
	// ErrEmptyOwner indicates an empty owner token argument.
	ErrEmptyOwner = errors.New("empty owner")
	// ErrEmptyProject indicates a missing or empty project name argument.
	ErrEmptyProject = errors.New("empty project")
	// ErrEmptyAlias indicates a missing or empty alias name argument.
	ErrEmptyAlias = errors.New("empty alias name")
	// ErrEmptyPath indicates a missing or empty path argument.
	ErrEmptyPath = errors.New("empty path")
	// ErrUnknownCharset indicates an unresolvable output character set.
	ErrUnknownCharset = errors.New("unknown charset")
)

// ParseError describes one source line the grammar does not recognize.
//
// A parse error aborts the whole parse; no partial document is produced.
type ParseError struct {
	// LineNumber is the 1-based physical line number.
	LineNumber int
	// Text is the raw line content.
	Text string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid line %d: %q", e.LineNumber, e.Text)
}

// Unwrap makes the error match ErrInvalidLine via errors.Is.
func (e *ParseError) Unwrap() error {
	return ErrInvalidLine
}

// validateOwners checks an owner list argument before any mutation.
func validateOwners(owners []string) error {
	if len(owners) == 0 {
		return ErrNoOwners
	}

	for _, owner := range owners {
		if owner == "" {
			return ErrEmptyOwner
		}
	}

	return nil
}
