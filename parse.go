// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FileOwners
// Source: github.com/fileowners/codeowners

package codeowners

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode"
)

// UnownedMarker separates regular content from the trailing unowned block.
//
// The marker is compared verbatim; everything after it is parsed in
// unowned-section mode.
const UnownedMarker = "### UNOWNED (File::Codeowners)"

// Options controls parsing behavior.
type Options struct {
	// Aliases enables "@name owner..." alias lines.
	Aliases bool `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

var (
	// commentRE captures the comment body after "#".
	commentRE = regexp.MustCompile(`^\s*#(.*)$`)
	// projectRE captures a project declaration inside a comment body.
	// An empty captured name clears the current project scope.
	projectRE = regexp.MustCompile(`(?i)^\s*project:\s*(.*?)\s*$`)
	// unownedRE captures one unowned path after the marker.
	unownedRE = regexp.MustCompile(`^# (.+)$`)
	// ownerRE extracts owner tokens greedily left to right; the quoted form
	// must come first so it wins over the bare non-whitespace run.
	ownerRE = regexp.MustCompile(`@"[^"]*"|\S+`)
)

// Parse reads a whole document from r.
//
// The grammar is line oriented: comments ("# ..."), blanks, pattern rules
// ("pattern owner..."), alias lines when enabled, and the unowned marker
// which switches all remaining lines to unowned-section mode. A line
// matching none of these aborts the parse with a *ParseError; no partial
// document is returned.
func Parse(r io.Reader, opts Options) (*Document, error) {
	s := bufio.NewScanner(r)
	doc := NewDocument()
	project := ""
	unownedMode := false
	num := 0

	for s.Scan() {
		num++
		line := strings.TrimRight(s.Text(), "\r")

		if unownedMode {
			// Only "# <path>" lines contribute; everything else is ignored.
			if m := unownedRE.FindStringSubmatch(line); m != nil {
				doc.unowned[m[1]] = struct{}{}
			}
			continue
		}

		if line == UnownedMarker {
			unownedMode = true
			continue
		}

		parsed, err := parseLine(line, opts, &project)
		if err != nil {
			return nil, &ParseError{LineNumber: num, Text: line}
		}

		doc.lines = append(doc.lines, parsed)
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan codeowners: %w", err)
	}

	return doc, nil
}

// ParseString parses a document from a string.
func ParseString(src string, opts Options) (*Document, error) {
	return Parse(strings.NewReader(src), opts)
}

// ParseLines parses a document from an ordered slice of text lines.
func ParseLines(lines []string, opts Options) (*Document, error) {
	return Parse(strings.NewReader(strings.Join(lines, "\n")), opts)
}

// LoadFile reads and parses a document from a file.
func LoadFile(path string, opts Options) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open codeowners file: %w", err)
	}
	defer func() { _ = f.Close() }()

	doc, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return doc, nil
}

// parseLine classifies one physical line, updating the current project scope
// when the line is a project-declaring comment.
func parseLine(line string, opts Options, project *string) (Line, error) {
	if m := commentRE.FindStringSubmatch(line); m != nil {
		parsed := CommentLine(m[1])
		if pm := projectRE.FindStringSubmatch(m[1]); pm != nil {
			// An empty name after the label clears the scope.
			*project = pm[1]
			parsed.Project = pm[1]
		}

		return parsed, nil
	}

	if strings.TrimSpace(line) == "" {
		return BlankLine(), nil
	}

	if opts.Aliases {
		if name, owners, ok := splitAliasLine(line); ok {
			return AliasLine(name, owners...), nil
		}
	}

	if pattern, owners, ok := splitRuleLine(line); ok {
		return RuleLine(pattern, owners...).InProject(*project), nil
	}

	return Line{}, ErrInvalidLine
}

// splitAliasLine parses "@name owner owner..." into its parts.
func splitAliasLine(line string) (string, []string, bool) {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	if !strings.HasPrefix(trimmed, "@") {
		return "", nil, false
	}

	tokens := ownerRE.FindAllString(trimmed, -1)
	if len(tokens) < 2 {
		return "", nil, false
	}

	name := strings.TrimPrefix(tokens[0], "@")
	if name == "" {
		return "", nil, false
	}

	return name, tokens[1:], true
}

// splitRuleLine parses "pattern owner owner..." honoring backslash-escaped
// whitespace inside the pattern token. The pattern is returned exactly as
// written, escapes included, for round-trip fidelity.
func splitRuleLine(line string) (string, []string, bool) {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)

	end := len(trimmed)
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] == '\\' && i+1 < len(trimmed) {
			i++
			continue
		}

		if trimmed[i] == ' ' || trimmed[i] == '\t' {
			end = i
			break
		}
	}

	pattern := trimmed[:end]
	if pattern == "" {
		return "", nil, false
	}

	owners := ownerRE.FindAllString(trimmed[end:], -1)
	if len(owners) == 0 {
		return "", nil, false
	}

	return pattern, owners, true
}
