// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FileOwners
// Source: github.com/fileowners/codeowners

/*
Package codeowners models, parses, mutates and serializes CODEOWNERS files.

A document is an ordered sequence of typed lines (comments, blanks, pattern
rules and optional owner aliases) plus a trailing extension block recording
paths known to have no owner. Line order is preserved exactly, so a document
can be parsed, edited and written back without losing its shape.

Basic flow:
  - parse a document from a path, reader, string or line slice
    (`LoadFile`, `Parse`, `ParseString`, `ParseLines`)
  - resolve ownership for a path (`Document.Match`)
  - edit owners, projects and the unowned set in place
    (`UpdateOwners`, `RenameOwner`, `AddUnowned`, ...)
  - write the document back (`String`, `Write`, `WriteFile`)

Patterns use gitignore-like semantics: a pattern without "/" matches the
basename at any depth, a leading "/" anchors to the document root, a trailing
"/" matches everything inside a directory, "*" stays within one path segment
and "**" crosses segments. When several rules match one path, the rule
declared last in the file wins.

Rules may be grouped into named projects using "# Project: <name>" comments;
every rule inherits the most recently declared project name. Alias lines
("@name owner owner...") are recognized only when enabled in Options.
*/
package codeowners
