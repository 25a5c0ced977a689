// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FileOwners
// Source: github.com/fileowners/codeowners

package codeowners

import (
	"sort"
	"strings"
)

// Document is the in-memory model of one CODEOWNERS file: an ordered line
// sequence plus the set of known-unowned paths.
//
// Derived views (owners, patterns, projects, aliases and the matching index)
// are memoized; every mutation entry point clears them before returning, so
// a view read always reflects the current line sequence.
//
// A Document is not safe for concurrent use; callers sharing one across
// goroutines must provide their own exclusion.
type Document struct {
	lines   []Line
	unowned map[string]struct{}

	// Memoized derived views, nil when not built.
	owners   []string
	patterns []string
	projects []string
	aliases  map[string][]string
	// ruleIdx holds indexes of rule lines, most recently declared first.
	ruleIdx []int
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{
		unowned: make(map[string]struct{}),
	}
}

// invalidate clears every memoized view. Called by all mutation entry
// points before they return.
func (d *Document) invalidate() {
	d.owners = nil
	d.patterns = nil
	d.projects = nil
	d.aliases = nil
	d.ruleIdx = nil
}

// Len returns the number of document lines, the unowned set excluded.
func (d *Document) Len() int {
	return len(d.lines)
}

// Lines returns a copy of the document lines in declaration order.
func (d *Document) Lines() []Line {
	out := make([]Line, len(d.lines))
	copy(out, d.lines)
	return out
}

// Owners returns all owners of the document, sorted and deduplicated.
// Owners declared on alias lines count too.
func (d *Document) Owners() []string {
	if d.owners == nil {
		set := make(map[string]struct{})
		for i := range d.lines {
			for _, owner := range d.lines[i].Owners {
				set[owner] = struct{}{}
			}
		}

		d.owners = sortedKeys(set)
	}

	return append([]string(nil), d.owners...)
}

// OwnersByPattern returns the owners of every rule whose pattern equals
// pattern, sorted and deduplicated.
func (d *Document) OwnersByPattern(pattern string) []string {
	set := make(map[string]struct{})
	for i := range d.lines {
		if d.lines[i].Kind != KindRule || d.lines[i].Pattern != pattern {
			continue
		}

		for _, owner := range d.lines[i].Owners {
			set[owner] = struct{}{}
		}
	}

	return sortedKeys(set)
}

// Patterns returns all rule patterns, sorted and deduplicated.
func (d *Document) Patterns() []string {
	if d.patterns == nil {
		set := make(map[string]struct{})
		for i := range d.lines {
			if d.lines[i].Kind == KindRule {
				set[d.lines[i].Pattern] = struct{}{}
			}
		}

		d.patterns = sortedKeys(set)
	}

	return append([]string(nil), d.patterns...)
}

// PatternsByOwner returns the patterns of every rule whose owner list
// contains owner, sorted and deduplicated.
func (d *Document) PatternsByOwner(owner string) []string {
	set := make(map[string]struct{})
	for i := range d.lines {
		if d.lines[i].Kind != KindRule {
			continue
		}

		for _, o := range d.lines[i].Owners {
			if o == owner {
				set[d.lines[i].Pattern] = struct{}{}
				break
			}
		}
	}

	return sortedKeys(set)
}

// Projects returns all declared project names, sorted and deduplicated.
func (d *Document) Projects() []string {
	if d.projects == nil {
		set := make(map[string]struct{})
		for i := range d.lines {
			if d.lines[i].Project != "" {
				set[d.lines[i].Project] = struct{}{}
			}
		}

		d.projects = sortedKeys(set)
	}

	return append([]string(nil), d.projects...)
}

// Aliases returns the alias name to owner list mapping reflecting the
// current alias lines. The later of two same-named alias lines wins.
func (d *Document) Aliases() map[string][]string {
	view := d.aliasView()
	out := make(map[string][]string, len(view))
	for name, owners := range view {
		out[name] = append([]string(nil), owners...)
	}

	return out
}

// Match resolves ownership for a path.
//
// Rules are consulted in reverse declaration order, so when several
// patterns match, the rule declared last in the file wins. Each rule's
// matcher is compiled lazily on first use and memoized. When expand is set,
// owner tokens naming an alias ("@name") are substituted with the alias's
// owner list; substitution is deliberately non-recursive, so an alias name
// inside another alias's owner list is returned verbatim. Returns nil when
// no rule matches.
func (d *Document) Match(path string, expand bool) *Match {
	candidate := normalizeCandidate(path)
	if candidate == "" {
		return nil
	}

	for _, idx := range d.ruleView() {
		ln := &d.lines[idx]
		if ln.matcher == nil {
			m, err := compilePattern(ln.Pattern)
			if err != nil {
				// The parser accepted the line; a pattern its own compiler
				// rejects simply matches nothing.
				m = &patternMatcher{}
			}

			ln.matcher = m
		}

		if !ln.matcher.matches(candidate) {
			continue
		}

		res := &Match{
			Pattern: ln.Pattern,
			Owners:  append([]string(nil), ln.Owners...),
			Project: ln.Project,
		}
		if expand {
			res.Owners = d.expandOwners(res.Owners)
		}

		return res
	}

	return nil
}

// ruleView returns the memoized most-recent-first rule index.
func (d *Document) ruleView() []int {
	if d.ruleIdx == nil {
		idx := make([]int, 0, len(d.lines))
		for i := len(d.lines) - 1; i >= 0; i-- {
			if d.lines[i].Kind == KindRule {
				idx = append(idx, i)
			}
		}

		d.ruleIdx = idx
	}

	return d.ruleIdx
}

// aliasView returns the memoized alias mapping, building it on demand.
func (d *Document) aliasView() map[string][]string {
	if d.aliases == nil {
		aliases := make(map[string][]string)
		for i := range d.lines {
			if d.lines[i].Kind == KindAlias {
				aliases[d.lines[i].Alias] = d.lines[i].Owners
			}
		}

		d.aliases = aliases
	}

	return d.aliases
}

// expandOwners substitutes alias references in an owner list, one level deep.
func (d *Document) expandOwners(owners []string) []string {
	aliases := d.aliasView()
	if len(aliases) == 0 {
		return owners
	}

	out := make([]string, 0, len(owners))
	for _, owner := range owners {
		name, ok := strings.CutPrefix(owner, "@")
		if !ok {
			out = append(out, owner)
			continue
		}

		if expanded, found := aliases[name]; found {
			out = append(out, expanded...)
			continue
		}

		out = append(out, owner)
	}

	return out
}

// sortedKeys returns the keys of a string set in lexicographic order.
func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for key := range set {
		out = append(out, key)
	}

	sort.Strings(out)
	return out
}
