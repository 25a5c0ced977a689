// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FileOwners
// Source: github.com/fileowners/codeowners

package codeowners

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// ToLines renders the document as ordered text lines.
//
// Regular lines render in declaration order. When the unowned set is not
// empty, a trailing block follows: one blank separator (only if the last
// rendered line is not already blank), the marker line, then one "# <path>"
// line per unowned path in lexicographic order.
func (d *Document) ToLines() []string {
	out := make([]string, 0, len(d.lines)+len(d.unowned)+2)
	for i := range d.lines {
		out = append(out, renderLine(&d.lines[i]))
	}

	if len(d.unowned) > 0 {
		if n := len(out); n > 0 && out[n-1] != "" {
			out = append(out, "")
		}

		out = append(out, UnownedMarker)
		for _, path := range d.Unowned() {
			out = append(out, "# "+path)
		}
	}

	return out
}

// ToEncodedLines renders the document lines encoded in the named charset.
// An empty charset means UTF-8.
func (d *Document) ToEncodedLines(charset string) ([][]byte, error) {
	enc, err := resolveCharset(charset)
	if err != nil {
		return nil, err
	}

	lines := d.ToLines()
	out := make([][]byte, len(lines))
	for i, line := range lines {
		if enc == nil {
			out[i] = []byte(line)
			continue
		}

		encoded, err := enc.NewEncoder().Bytes([]byte(line))
		if err != nil {
			return nil, fmt.Errorf("encode line %d: %w", i+1, err)
		}

		out[i] = encoded
	}

	return out, nil
}

// String renders the document as newline-joined text with a trailing newline.
func (d *Document) String() string {
	return strings.Join(d.ToLines(), "\n") + "\n"
}

// Write renders the document to w. An empty charset means UTF-8.
func (d *Document) Write(w io.Writer, charset string) error {
	enc, err := resolveCharset(charset)
	if err != nil {
		return err
	}

	if enc != nil {
		w = transform.NewWriter(w, enc.NewEncoder())
	}

	if _, err := io.WriteString(w, d.String()); err != nil {
		return fmt.Errorf("write codeowners: %w", err)
	}

	if closer, ok := w.(*transform.Writer); ok {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("flush encoder: %w", err)
		}
	}

	return nil
}

// WriteFile renders the document to path atomically: the full output is
// written and synced to a temporary file in the same directory, which then
// replaces the destination via rename. A crash mid-write never leaves a
// truncated file behind.
func (d *Document) WriteFile(path string, charset string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tmpName := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}

	if err := d.Write(tmp, charset); err != nil {
		cleanup()
		return err
	}

	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("sync temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", path, err)
	}

	// Best effort directory sync so the rename itself is durable.
	if df, err := os.Open(dir); err == nil {
		_ = df.Sync()
		_ = df.Close()
	}

	return nil
}

// renderLine renders one line in canonical form.
func renderLine(l *Line) string {
	switch l.Kind {
	case KindComment:
		return "#" + l.Comment
	case KindRule:
		return l.Pattern + "  " + strings.Join(l.Owners, " ")
	case KindAlias:
		return "@" + l.Alias + "  " + strings.Join(l.Owners, " ")
	default:
		return ""
	}
}

// resolveCharset maps a charset name to an encoding; empty and the UTF-8
// spellings mean no transformation.
func resolveCharset(charset string) (encoding.Encoding, error) {
	switch strings.ToLower(charset) {
	case "", "utf-8", "utf8":
		return nil, nil
	}

	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, charset)
	}

	return enc, nil
}
