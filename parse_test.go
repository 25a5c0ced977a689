// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FileOwners
// Source: github.com/fileowners/codeowners

package codeowners

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseString(t *testing.T) {
	t.Parallel()

	doc, err := ParseString(`# Project: Core
/src/**  @alice
/src/gen/**  @bob

*.md  @docs @"Doc Team"`, Options{})
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}

	if doc.Len() != 5 {
		t.Fatalf("Len()=%d, want 5", doc.Len())
	}

	lines := doc.Lines()
	if lines[0].Kind != KindComment || lines[0].Project != "Core" {
		t.Fatalf("line[0]=%+v", lines[0])
	}

	if lines[1].Kind != KindRule || lines[1].Pattern != "/src/**" || lines[1].Project != "Core" {
		t.Fatalf("line[1]=%+v", lines[1])
	}

	if !reflect.DeepEqual(lines[1].Owners, []string{"@alice"}) {
		t.Fatalf("line[1].Owners=%v", lines[1].Owners)
	}

	if lines[3].Kind != KindBlank {
		t.Fatalf("line[3]=%+v", lines[3])
	}

	if !reflect.DeepEqual(lines[4].Owners, []string{"@docs", `@"Doc Team"`}) {
		t.Fatalf("line[4].Owners=%v", lines[4].Owners)
	}

	// The blank does not end the project scope.
	if lines[4].Project != "Core" {
		t.Fatalf("line[4].Project=%q, want Core", lines[4].Project)
	}
}

func TestParseProjectScope(t *testing.T) {
	t.Parallel()

	doc, err := ParseLines([]string{
		"#   project:   Billing  ",
		"a.go  @x",
		"# Project:",
		"b.go  @x",
	}, Options{})
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}

	lines := doc.Lines()
	if lines[1].Project != "Billing" {
		t.Fatalf("line[1].Project=%q, want Billing (label is case-insensitive)", lines[1].Project)
	}

	// An empty name after the label clears the scope.
	if lines[3].Project != "" {
		t.Fatalf("line[3].Project=%q, want empty", lines[3].Project)
	}
}

func TestParseAliases(t *testing.T) {
	t.Parallel()

	doc, err := ParseLines([]string{"@infra alice bob", "src/  @infra"}, Options{Aliases: true})
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}

	lines := doc.Lines()
	if lines[0].Kind != KindAlias || lines[0].Alias != "infra" {
		t.Fatalf("line[0]=%+v", lines[0])
	}

	if !reflect.DeepEqual(lines[0].Owners, []string{"alice", "bob"}) {
		t.Fatalf("line[0].Owners=%v", lines[0].Owners)
	}

	// With aliases off, the same line is a rule with pattern "@infra".
	doc, err = ParseLines([]string{"@infra alice bob"}, Options{})
	if err != nil {
		t.Fatalf("ParseLines without aliases: %v", err)
	}

	if got := doc.Lines()[0]; got.Kind != KindRule || got.Pattern != "@infra" {
		t.Fatalf("line without aliases=%+v", got)
	}
}

func TestParseUnownedSection(t *testing.T) {
	t.Parallel()

	doc, err := ParseLines([]string{
		"*.md  @docs",
		"",
		UnownedMarker,
		"# README.md",
		"# src/main.go",
		"not an entry, ignored",
	}, Options{})
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}

	if doc.Len() != 2 {
		t.Fatalf("Len()=%d, want 2 (marker and entries are not document lines)", doc.Len())
	}

	if got := doc.Unowned(); !reflect.DeepEqual(got, []string{"README.md", "src/main.go"}) {
		t.Fatalf("Unowned()=%v", got)
	}
}

func TestParseEscapedPattern(t *testing.T) {
	t.Parallel()

	doc, err := ParseString(`docs/my\ file.txt  @alice`, Options{})
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}

	if got := doc.Lines()[0].Pattern; got != `docs/my\ file.txt` {
		t.Fatalf("Pattern=%q, escapes must be preserved as written", got)
	}

	if m := doc.Match("docs/my file.txt", false); m == nil {
		t.Fatalf("escaped space must match the literal space")
	}
}

func TestParseError(t *testing.T) {
	t.Parallel()

	_, err := ParseLines([]string{"ok.go  @a", "orphan-pattern-without-owners"}, Options{})
	if err == nil {
		t.Fatalf("expected parse error")
	}

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error %v is not a *ParseError", err)
	}

	if pe.LineNumber != 2 || pe.Text != "orphan-pattern-without-owners" {
		t.Fatalf("ParseError=%+v", pe)
	}

	if !errors.Is(err, ErrInvalidLine) {
		t.Fatalf("err must match ErrInvalidLine")
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "CODEOWNERS")
	if err := os.WriteFile(path, []byte("*.go  @gophers\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	doc, err := LoadFile(path, Options{})
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if doc.Len() != 1 {
		t.Fatalf("Len()=%d, want 1", doc.Len())
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing"), Options{}); err == nil {
		t.Fatalf("missing file must error")
	}
}
