// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FileOwners
// Source: github.com/fileowners/codeowners

package codeowners

import (
	"sort"
)

// UpdateOwners replaces the owner list of every rule whose pattern equals
// pattern and returns the number of rules updated. A pattern absent from
// the document is not an error; the count is 0 and nothing changes.
func (d *Document) UpdateOwners(pattern string, owners []string) (int, error) {
	if pattern == "" {
		return 0, ErrEmptyPattern
	}

	if err := validateOwners(owners); err != nil {
		return 0, err
	}

	count := 0
	for i := range d.lines {
		if d.lines[i].Kind != KindRule || d.lines[i].Pattern != pattern {
			continue
		}

		d.lines[i].Owners = append([]string(nil), owners...)
		count++
	}

	d.invalidate()
	return count, nil
}

// UpdateProjectOwners replaces the owner list of every rule associated with
// project and returns the number of rules updated.
func (d *Document) UpdateProjectOwners(project string, owners []string) (int, error) {
	if project == "" {
		return 0, ErrEmptyProject
	}

	if err := validateOwners(owners); err != nil {
		return 0, err
	}

	count := 0
	for i := range d.lines {
		if d.lines[i].Kind != KindRule || d.lines[i].Project != project {
			continue
		}

		d.lines[i].Owners = append([]string(nil), owners...)
		count++
	}

	d.invalidate()
	return count, nil
}

// RenameOwner replaces every occurrence of old with new on every line
// carrying an owner list, rule and alias lines alike, and returns the total
// number of replacements.
func (d *Document) RenameOwner(old, new string) (int, error) {
	if old == "" || new == "" {
		return 0, ErrEmptyOwner
	}

	count := 0
	for i := range d.lines {
		for j, owner := range d.lines[i].Owners {
			if owner == old {
				d.lines[i].Owners[j] = new
				count++
			}
		}
	}

	d.invalidate()
	return count, nil
}

// RenameProject renames a project on every line associated with it and
// returns the number of lines changed. Project-declaring comments get their
// comment text rewritten to carry the new name.
func (d *Document) RenameProject(old, new string) (int, error) {
	if old == "" || new == "" {
		return 0, ErrEmptyProject
	}

	count := 0
	for i := range d.lines {
		if d.lines[i].Project != old {
			continue
		}

		d.lines[i].Project = new
		if d.lines[i].Kind == KindComment {
			d.lines[i].Comment = rewriteProjectComment(d.lines[i].Comment, new)
		}

		count++
	}

	d.invalidate()
	return count, nil
}

// rewriteProjectComment splices a new project name into a declaring comment
// body, preserving its whitespace and label casing.
func rewriteProjectComment(text, name string) string {
	loc := projectRE.FindStringSubmatchIndex(text)
	if loc == nil {
		return text
	}

	return text[:loc[2]] + name + text[loc[3]:]
}

// Append adds lines at the end of the document. Called with no lines it
// adds a single blank, mirroring the behavior of appending "nothing".
func (d *Document) Append(lines ...Line) error {
	prepared, err := prepareLines(lines)
	if err != nil {
		return err
	}

	d.lines = append(d.lines, prepared...)
	d.invalidate()
	return nil
}

// Prepend adds lines at the start of the document, preserving their given
// order. Called with no lines it adds a single blank.
func (d *Document) Prepend(lines ...Line) error {
	prepared, err := prepareLines(lines)
	if err != nil {
		return err
	}

	d.lines = append(prepared, d.lines...)
	d.invalidate()
	return nil
}

// prepareLines validates lines before insertion and detaches them from any
// caller-held matcher state. Validation happens for the whole batch before
// any mutation.
func prepareLines(lines []Line) ([]Line, error) {
	if len(lines) == 0 {
		return []Line{BlankLine()}, nil
	}

	out := make([]Line, len(lines))
	for i := range lines {
		if err := lines[i].validate(); err != nil {
			return nil, err
		}

		out[i] = lines[i]
		out[i].matcher = nil
		out[i].Owners = append([]string(nil), lines[i].Owners...)
	}

	return out, nil
}

// AddUnowned inserts paths into the unowned set. Insertion is idempotent
// and performs no matching validation; callers wanting only genuinely
// unowned entries should confirm via Match first.
func (d *Document) AddUnowned(paths ...string) error {
	for _, path := range paths {
		if path == "" {
			return ErrEmptyPath
		}
	}

	for _, path := range paths {
		d.unowned[path] = struct{}{}
	}

	d.invalidate()
	return nil
}

// RemoveUnowned removes paths from the unowned set, silently ignoring
// absent entries.
func (d *Document) RemoveUnowned(paths ...string) error {
	for _, path := range paths {
		if path == "" {
			return ErrEmptyPath
		}
	}

	for _, path := range paths {
		delete(d.unowned, path)
	}

	d.invalidate()
	return nil
}

// IsUnowned reports whether a path is recorded in the unowned set.
func (d *Document) IsUnowned(path string) bool {
	_, ok := d.unowned[path]
	return ok
}

// ClearUnowned empties the unowned set.
func (d *Document) ClearUnowned() {
	d.unowned = make(map[string]struct{})
	d.invalidate()
}

// Unowned returns the unowned paths in lexicographic order.
func (d *Document) Unowned() []string {
	out := make([]string, 0, len(d.unowned))
	for path := range d.unowned {
		out = append(out, path)
	}

	sort.Strings(out)
	return out
}
