// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FileOwners
// Source: github.com/fileowners/codeowners

package codeowners

// LineKind identifies the shape of one physical line.
type LineKind uint8

const (
	// KindBlank is an explicitly empty line.
	KindBlank LineKind = iota
	// KindComment is a "#"-prefixed comment line.
	KindComment
	// KindRule is a pattern line carrying an owner list.
	KindRule
	// KindAlias is an "@name owner..." alias line.
	KindAlias
)

// Line is one physical line of a document in declaration order.
//
// Only the fields meaningful for Kind are populated; use the constructors
// to build well-formed lines for Append/Prepend.
type Line struct {
	// Kind selects which fields below are meaningful.
	Kind LineKind `json:"kind" yaml:"kind"`
	// Comment is the text after the "#" of a comment line.
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`
	// Pattern is the path pattern exactly as written, escapes included.
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	// Alias is the alias name without its "@" prefix.
	Alias string `json:"alias,omitempty" yaml:"alias,omitempty"`
	// Owners is the ordered owner list of a rule or alias line.
	Owners []string `json:"owners,omitempty" yaml:"owners,omitempty"`
	// Project is the project scope inherited from the nearest preceding
	// project comment, or the declared name on the comment itself.
	Project string `json:"project,omitempty" yaml:"project,omitempty"`

	// matcher is the lazily compiled pattern matcher of a rule line.
	matcher *patternMatcher
}

// Match is the resolved ownership for one path.
//
// It is a detached value: mutating the document afterwards does not change
// a previously returned Match.
type Match struct {
	// Pattern is the pattern of the winning rule as written.
	Pattern string `json:"pattern" yaml:"pattern"`
	// Owners is the winning rule's owner list, alias-expanded on request.
	Owners []string `json:"owners" yaml:"owners"`
	// Project is the winning rule's project scope, empty when none.
	Project string `json:"project,omitempty" yaml:"project,omitempty"`
}

// BlankLine returns an empty line.
func BlankLine() Line {
	return Line{Kind: KindBlank}
}

// CommentLine returns a comment line with the given text after "#".
func CommentLine(text string) Line {
	return Line{Kind: KindComment, Comment: text}
}

// RuleLine returns a pattern rule line with the given ordered owners.
func RuleLine(pattern string, owners ...string) Line {
	return Line{Kind: KindRule, Pattern: pattern, Owners: owners}
}

// AliasLine returns an alias line. Name is given without the "@" prefix.
func AliasLine(name string, owners ...string) Line {
	return Line{Kind: KindAlias, Alias: name, Owners: owners}
}

// InProject returns a copy of the line scoped to the given project.
func (l Line) InProject(project string) Line {
	l.Project = project
	return l
}

// valid reports whether the kind value is one of the declared variants.
func (k LineKind) valid() bool {
	return k == KindBlank || k == KindComment || k == KindRule || k == KindAlias
}

// validate checks that the line is well formed for its kind.
func (l *Line) validate() error {
	if !l.Kind.valid() {
		return ErrInvalidLine
	}

	switch l.Kind {
	case KindRule:
		if l.Pattern == "" {
			return ErrEmptyPattern
		}

		return validateOwners(l.Owners)
	case KindAlias:
		if l.Alias == "" {
			return ErrEmptyAlias
		}

		return validateOwners(l.Owners)
	}

	return nil
}
