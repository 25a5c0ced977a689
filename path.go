// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FileOwners
// Source: github.com/fileowners/codeowners

package codeowners

import (
	"path"
	"strings"
)

// normalizeCandidate normalizes a matching path to slash-separated
// document-root-relative clean form.
func normalizeCandidate(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "./")
	raw = strings.TrimPrefix(raw, "/")
	if raw == "" {
		return ""
	}

	// Fast path for already-normalized relative paths.
	if isSimpleCandidate(raw) {
		return raw
	}

	raw = path.Clean("/" + raw)
	raw = strings.TrimPrefix(raw, "/")
	if raw == "." {
		return ""
	}

	return strings.TrimSuffix(raw, "/")
}

// isSimpleCandidate reports whether a path is normalized enough to skip path.Clean.
func isSimpleCandidate(p string) bool {
	if p == "" ||
		p == "." ||
		p == ".." ||
		strings.HasPrefix(p, "/") ||
		strings.HasSuffix(p, "/") ||
		strings.HasPrefix(p, "./") ||
		strings.HasPrefix(p, "../") ||
		strings.Contains(p, "//") ||
		strings.Contains(p, "/./") ||
		strings.Contains(p, "/../") ||
		strings.HasSuffix(p, "/.") ||
		strings.HasSuffix(p, "/..") {
		return false
	}

	return true
}

// pathBase returns the final path component using the slash separator.
func pathBase(p string) string {
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		return p[i+1:]
	}

	return p
}
