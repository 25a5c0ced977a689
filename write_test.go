// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FileOwners
// Source: github.com/fileowners/codeowners

package codeowners

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestRoundTripIdempotent(t *testing.T) {
	t.Parallel()

	doc, err := ParseLines([]string{
		"# Project: Core",
		"@infra alice bob",
		"/src/**  @alice",
		"",
		"*.md  @docs",
		"",
		UnownedMarker,
		"# README.md",
	}, Options{Aliases: true})
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}

	first := doc.String()

	again, err := ParseString(first, Options{Aliases: true})
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}

	if second := again.String(); second != first {
		t.Fatalf("round trip not idempotent:\nfirst:\n%q\nsecond:\n%q", first, second)
	}
}

func TestUnownedBlockRendering(t *testing.T) {
	t.Parallel()

	doc, err := ParseLines([]string{"*.md  @docs"}, Options{})
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}

	if err := doc.AddUnowned("README.md"); err != nil {
		t.Fatalf("AddUnowned: %v", err)
	}

	want := []string{"*.md  @docs", "", UnownedMarker, "# README.md"}
	if got := doc.ToLines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("ToLines()=%v, want %v", got, want)
	}
}

func TestUnownedBlockSeparator(t *testing.T) {
	t.Parallel()

	doc, err := ParseLines([]string{"*.md  @docs", ""}, Options{})
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}

	if err := doc.AddUnowned("b.txt", "a.txt"); err != nil {
		t.Fatalf("AddUnowned: %v", err)
	}

	// The trailing blank already separates; exactly one blank, and entries
	// are emitted in sorted order regardless of insertion order.
	want := []string{"*.md  @docs", "", UnownedMarker, "# a.txt", "# b.txt"}
	if got := doc.ToLines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("ToLines()=%v, want %v", got, want)
	}
}

func TestWriteFileAtomicReplace(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "CODEOWNERS")
	if err := os.WriteFile(path, []byte("old content\n"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	doc, err := ParseLines([]string{"*.go  @gophers"}, Options{})
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}

	if err := doc.WriteFile(path, ""); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if string(data) != doc.String() {
		t.Fatalf("file content=%q, want %q", data, doc.String())
	}

	// No temp file may survive the replace.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("directory has %d entries, want the target only", len(entries))
	}
}

func TestWriteEncoded(t *testing.T) {
	t.Parallel()

	doc, err := ParseLines([]string{"*.md  josé"}, Options{})
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}

	var buf bytes.Buffer
	if err := doc.Write(&buf, "iso-8859-1"); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if !bytes.Contains(buf.Bytes(), []byte{'j', 'o', 's', 0xe9}) {
		t.Fatalf("output %q is not latin-1 encoded", buf.Bytes())
	}

	if err := doc.Write(&buf, "no-such-charset"); !errors.Is(err, ErrUnknownCharset) {
		t.Fatalf("unknown charset err=%v", err)
	}
}

func TestToEncodedLines(t *testing.T) {
	t.Parallel()

	doc, err := ParseLines([]string{"*.md  josé"}, Options{})
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}

	lines, err := doc.ToEncodedLines("iso-8859-1")
	if err != nil {
		t.Fatalf("ToEncodedLines: %v", err)
	}

	if len(lines) != 1 || !bytes.HasSuffix(lines[0], []byte{0xe9}) {
		t.Fatalf("lines=%q", lines)
	}

	plain, err := doc.ToEncodedLines("")
	if err != nil || string(plain[0]) != "*.md  josé" {
		t.Fatalf("utf-8 lines=%q err=%v", plain, err)
	}
}

func TestEmptyDocument(t *testing.T) {
	t.Parallel()

	doc := NewDocument()
	if got := doc.ToLines(); len(got) != 0 {
		t.Fatalf("ToLines()=%v, want empty", got)
	}

	if got := doc.String(); got != "\n" {
		t.Fatalf("String()=%q", got)
	}
}
