// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FileOwners
// Source: github.com/fileowners/codeowners

package codeowners

import (
	"fmt"
	"regexp"
	"strings"
)

// patternMatcher is the compiled form of one rule pattern.
//
// Compilation happens once per pattern and picks the cheapest strategy that
// preserves gitignore-like semantics; evaluation is reusable across many
// candidate paths. Candidates are always file paths, so a dir-only pattern
// (trailing "/") matches only proper descendants of the directory.
type patternMatcher struct {
	// componentExact matches basename patterns without glob meta.
	componentExact string
	// componentGlob matches basename patterns with "*" and "?" without regexp.
	componentGlob segmentPattern
	// componentRE matches basename patterns with char classes or escapes.
	componentRE *regexp.Regexp
	// pathExact matches slash patterns without glob meta.
	pathExact string
	// pathSegments matches slash patterns without "**", char classes, escapes.
	pathSegments []segmentPattern
	// pathPrefixSegments matches slash patterns with trailing "/**".
	pathPrefixSegments []segmentPattern
	// pathRE is the regexp fallback for the remaining path patterns.
	pathRE *regexp.Regexp
	// anchored means the source pattern starts with "/".
	anchored bool
	// dirOnly means the source pattern ends with "/".
	dirOnly bool
	// hasSlash means the pattern addresses a path, not a bare component.
	hasSlash bool
}

// segmentPattern is one precompiled component/path segment matcher.
type segmentPattern struct {
	// text is the raw segment pattern source.
	text string
	// wildcard reports whether text contains "*" or "?".
	wildcard bool
}

// compilePattern compiles one source pattern into a matcher.
func compilePattern(raw string) (*patternMatcher, error) {
	pattern := strings.TrimSpace(raw)
	if pattern == "" {
		return nil, ErrEmptyPattern
	}

	m := &patternMatcher{
		anchored: strings.HasPrefix(pattern, "/"),
		dirOnly:  strings.HasSuffix(pattern, "/"),
	}

	pattern = strings.Trim(pattern, "/")
	if pattern == "" {
		return nil, fmt.Errorf("%w: nothing left of %q", ErrEmptyPattern, raw)
	}

	// Anchored patterns ("/name") must be matched against the full path from
	// the document root even without an explicit inner slash.
	m.hasSlash = strings.Contains(pattern, "/") || m.anchored
	hasEscape := strings.ContainsRune(pattern, '\\')
	hasMeta := patternHasGlobMeta(pattern)
	hasClass := patternHasCharClass(pattern)

	if !m.hasSlash {
		// Component-only rules can avoid regexp for exact and simple wildcard cases.
		if !hasMeta {
			m.componentExact = unescapePattern(pattern)
			return m, nil
		}

		if !hasClass && !hasEscape {
			m.componentGlob = newSegmentPattern(pattern)
			return m, nil
		}

		re, err := regexp.Compile("^" + globToRegexComponent(pattern) + "$")
		if err != nil {
			return nil, fmt.Errorf("compile component pattern %q: %w", raw, err)
		}

		m.componentRE = re
		return m, nil
	}

	// Path rules get the same ladder: exact, then segmented, then regexp.
	if !hasMeta {
		m.pathExact = unescapePattern(pattern)
		return m, nil
	}

	if prefix, ok := strings.CutSuffix(pattern, "/**"); ok {
		// Trailing "/**" is common and matches as "prefix directory + any descendant".
		if prefix != "" && canUseSimpleSegments(prefix) {
			m.pathPrefixSegments = compilePathSegments(prefix)
			return m, nil
		}
	}

	if !hasEscape && canUseSimpleSegments(pattern) {
		m.pathSegments = compilePathSegments(pattern)
		return m, nil
	}

	// Fallback for char classes, escapes and complex "**" combinations.
	body := globToRegexPath(pattern)
	prefix := `(?:^|.*/)`
	if m.anchored {
		prefix = `^`
	}

	suffix := `$`
	if m.dirOnly {
		suffix = `/.+$`
	}

	re, err := regexp.Compile(prefix + body + suffix)
	if err != nil {
		return nil, fmt.Errorf("compile path pattern %q: %w", raw, err)
	}

	m.pathRE = re
	return m, nil
}

// matches reports whether the compiled pattern matches a normalized file path.
func (m *patternMatcher) matches(candidate string) bool {
	if candidate == "" {
		return false
	}

	if m.hasSlash {
		// Strategy priority mirrors compile-time selection.
		if m.pathExact != "" {
			return matchExactPath(m.pathExact, candidate, m.anchored, m.dirOnly)
		}

		if len(m.pathPrefixSegments) > 0 {
			return matchPathPrefixDoubleStar(m.pathPrefixSegments, candidate, m.anchored)
		}

		if len(m.pathSegments) > 0 {
			return matchPathSegments(m.pathSegments, candidate, m.anchored, m.dirOnly)
		}

		return m.pathRE != nil && m.pathRE.MatchString(candidate)
	}

	if m.componentExact != "" {
		if m.dirOnly {
			return matchParentComponent(candidate, func(seg string) bool {
				return seg == m.componentExact
			})
		}

		return pathBase(candidate) == m.componentExact
	}

	if m.componentGlob.text != "" {
		if m.dirOnly {
			return matchParentComponent(candidate, func(seg string) bool {
				return matchSegmentPattern(m.componentGlob, seg)
			})
		}

		return matchSegmentPattern(m.componentGlob, pathBase(candidate))
	}

	if m.componentRE == nil {
		return false
	}

	if m.dirOnly {
		return matchParentComponent(candidate, m.componentRE.MatchString)
	}

	return m.componentRE.MatchString(pathBase(candidate))
}

// unescapePattern resolves "\x" escapes to the literal escaped byte.
func unescapePattern(pattern string) string {
	if !strings.ContainsRune(pattern, '\\') {
		return pattern
	}

	var b strings.Builder
	b.Grow(len(pattern))
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == '\\' && i+1 < len(pattern) {
			i++
		}

		b.WriteByte(pattern[i])
	}

	return b.String()
}

// patternHasGlobMeta reports whether the pattern contains unescaped glob meta.
func patternHasGlobMeta(pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			// The escaped byte is literal.
			i++
		case '*', '?':
			return true
		case '[':
			if findCharClassEnd(pattern, i) >= 0 {
				return true
			}
		}
	}

	return false
}

// patternHasCharClass reports whether the pattern contains at least one
// unescaped valid "[...]" class.
func patternHasCharClass(pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			i++
		case '[':
			if findCharClassEnd(pattern, i) >= 0 {
				return true
			}
		}
	}

	return false
}

// canUseSimpleSegments reports whether a slash pattern can use lightweight
// segment matching.
func canUseSimpleSegments(pattern string) bool {
	if pattern == "" {
		return false
	}

	if strings.Contains(pattern, "**") || strings.ContainsRune(pattern, '\\') {
		return false
	}

	return !patternHasCharClass(pattern)
}

// newSegmentPattern precompiles one segment pattern.
func newSegmentPattern(pattern string) segmentPattern {
	return segmentPattern{
		text:     pattern,
		wildcard: strings.ContainsAny(pattern, "*?"),
	}
}

// compilePathSegments precompiles slash-separated path pattern segments.
func compilePathSegments(pattern string) []segmentPattern {
	segments := make([]segmentPattern, 0, strings.Count(pattern, "/")+1)
	start := 0

	for i := 0; i <= len(pattern); i++ {
		if i != len(pattern) && pattern[i] != '/' {
			continue
		}

		segments = append(segments, newSegmentPattern(pattern[start:i]))
		start = i + 1
	}

	return segments
}

// matchSegmentPattern matches one precompiled segment pattern.
func matchSegmentPattern(pattern segmentPattern, segment string) bool {
	if !pattern.wildcard {
		return segment == pattern.text
	}

	return matchSimpleWildcard(pattern.text, segment)
}

// matchSimpleWildcard matches a "*" and "?" wildcard pattern against one segment.
func matchSimpleWildcard(pattern string, input string) bool {
	pIdx := 0
	sIdx := 0
	starPattern := -1
	starInput := 0

	for sIdx < len(input) {
		if pIdx < len(pattern) && (pattern[pIdx] == '?' || pattern[pIdx] == input[sIdx]) {
			pIdx++
			sIdx++
			continue
		}

		if pIdx < len(pattern) && pattern[pIdx] == '*' {
			// Remember star position and continue greedily from here.
			starPattern = pIdx
			pIdx++
			starInput = sIdx
			continue
		}

		if starPattern >= 0 {
			// Mismatch after a previous star: backtrack the pattern to the
			// token after '*' and let '*' consume one more input byte.
			pIdx = starPattern + 1
			starInput++
			sIdx = starInput
			continue
		}

		return false
	}

	for pIdx < len(pattern) && pattern[pIdx] == '*' {
		pIdx++
	}

	return pIdx == len(pattern)
}

// matchPathSegments matches slash patterns without "**" and char classes.
func matchPathSegments(pattern []segmentPattern, candidate string, anchored bool, dirOnly bool) bool {
	if len(pattern) == 0 || candidate == "" {
		return false
	}

	if anchored {
		end, ok := matchPathSegmentsAt(pattern, candidate, 0)
		if !ok {
			return false
		}

		if dirOnly {
			return end < len(candidate) && candidate[end] == '/'
		}

		return end == len(candidate)
	}

	for start := 0; ; {
		end, ok := matchPathSegmentsAt(pattern, candidate, start)
		if ok {
			if dirOnly {
				if end < len(candidate) && candidate[end] == '/' {
					return true
				}
			} else if end == len(candidate) {
				return true
			}
		}

		nextSlash := strings.IndexByte(candidate[start:], '/')
		if nextSlash < 0 {
			return false
		}

		// Shift to the next segment boundary and retry, emulating "(^|.*/)".
		start += nextSlash + 1
	}
}

// matchPathSegmentsAt matches precompiled path segments starting at a
// candidate boundary index, returning the end position on success.
func matchPathSegmentsAt(pattern []segmentPattern, candidate string, start int) (int, bool) {
	if start < 0 || start >= len(candidate) {
		return 0, false
	}

	index := start
	for seg := range pattern {
		end := index
		for end < len(candidate) && candidate[end] != '/' {
			end++
		}

		if end == index {
			return 0, false
		}

		if !matchSegmentPattern(pattern[seg], candidate[index:end]) {
			return 0, false
		}

		index = end
		if seg == len(pattern)-1 {
			// The caller validates the terminal constraint (full match vs
			// directory-subtree match).
			return index, true
		}

		if index >= len(candidate) || candidate[index] != '/' {
			return 0, false
		}

		index++
	}

	return index, true
}

// matchPathPrefixDoubleStar matches a path pattern with trailing "/**".
func matchPathPrefixDoubleStar(prefix []segmentPattern, candidate string, anchored bool) bool {
	if len(prefix) == 0 || candidate == "" {
		return false
	}

	if anchored {
		end, ok := matchPathSegmentsAt(prefix, candidate, 0)
		// "/prefix/**" matches descendants only; the directory alone does not.
		return ok && end < len(candidate) && candidate[end] == '/'
	}

	for start := 0; ; {
		end, ok := matchPathSegmentsAt(prefix, candidate, start)
		if ok && end < len(candidate) && candidate[end] == '/' {
			return true
		}

		nextSlash := strings.IndexByte(candidate[start:], '/')
		if nextSlash < 0 {
			return false
		}

		start += nextSlash + 1
	}
}

// matchExactPath matches a slash-containing literal pattern without regexp.
func matchExactPath(pattern string, candidate string, anchored bool, dirOnly bool) bool {
	if pattern == "" || candidate == "" {
		return false
	}

	if anchored {
		if !dirOnly {
			return candidate == pattern
		}

		return strings.HasPrefix(candidate, pattern+"/")
	}

	if !dirOnly {
		return candidate == pattern || strings.HasSuffix(candidate, "/"+pattern)
	}

	return containsDirPath(pattern, candidate)
}

// containsDirPath reports whether the candidate contains the pattern as a
// directory path run with at least one descendant component after it.
func containsDirPath(pattern string, candidate string) bool {
	for start := 0; start < len(candidate); {
		idx := strings.Index(candidate[start:], pattern)
		if idx < 0 {
			return false
		}

		idx += start
		beforeOK := idx == 0 || candidate[idx-1] == '/'
		after := idx + len(pattern)
		if beforeOK && after < len(candidate) && candidate[after] == '/' {
			return true
		}

		start = idx + 1
	}

	return false
}

// matchParentComponent reports whether any non-final path segment satisfies
// match. Candidates are file paths, so the basename never counts.
func matchParentComponent(candidate string, match func(string) bool) bool {
	start := 0
	for i := 0; i < len(candidate); i++ {
		if candidate[i] != '/' {
			continue
		}

		if i > start && match(candidate[start:i]) {
			return true
		}

		start = i + 1
	}

	return false
}

// globToRegexComponent converts a component pattern to a regex body.
func globToRegexComponent(pat string) string {
	var b strings.Builder

	for i := 0; i < len(pat); i++ {
		if pat[i] == '\\' {
			if i+1 < len(pat) {
				i++
				b.WriteString(regexEscapeByte(pat[i]))
			} else {
				b.WriteString(`\\`)
			}
			continue
		}

		if next, ok := appendCharClassRegex(pat, i, &b); ok {
			i = next
			continue
		}

		c := pat[i]
		switch c {
		case '*':
			// Treat ** as * when matching a single path component.
			if i+1 < len(pat) && pat[i+1] == '*' {
				i++
			}
			b.WriteString(`[^/]*`)
		case '?':
			b.WriteString(`[^/]`)
		default:
			b.WriteString(regexEscapeByte(c))
		}
	}

	return b.String()
}

// globToRegexPath converts a path pattern to a regex body.
func globToRegexPath(pat string) string {
	var b strings.Builder

	for i := 0; i < len(pat); i++ {
		if pat[i] == '\\' {
			if i+1 < len(pat) {
				i++
				b.WriteString(regexEscapeByte(pat[i]))
			} else {
				b.WriteString(`\\`)
			}
			continue
		}

		// "**/" matches zero or more directories.
		if pat[i] == '*' && i+2 < len(pat) && pat[i+1] == '*' && pat[i+2] == '/' {
			b.WriteString(`(?:.*/)?`)
			i += 2
			continue
		}

		if next, ok := appendCharClassRegex(pat, i, &b); ok {
			i = next
			continue
		}

		c := pat[i]
		switch c {
		case '*':
			if i+1 < len(pat) && pat[i+1] == '*' {
				b.WriteString(`.*`)
				i++
				continue
			}
			b.WriteString(`[^/]*`)
		case '?':
			b.WriteString(`[^/]`)
		default:
			b.WriteString(regexEscapeByte(c))
		}
	}

	return b.String()
}

// appendCharClassRegex appends a parsed glob char class ("[...]") as a regex class.
func appendCharClassRegex(pat string, start int, b *strings.Builder) (int, bool) {
	if start < 0 || start >= len(pat) || pat[start] != '[' {
		return start, false
	}

	end := findCharClassEnd(pat, start)
	if end < 0 {
		return start, false
	}

	b.WriteByte('[')

	idx := start + 1
	if idx < end && pat[idx] == '!' {
		// gitignore-style class negation "[!x]" maps to regex "[^x]".
		b.WriteByte('^')
		idx++
	} else if idx < end && pat[idx] == '^' {
		// A literal leading '^' must be escaped in a regex char class.
		b.WriteString(`\^`)
		idx++
	}

	if idx < end && pat[idx] == ']' {
		// A leading ']' is literal in both glob and regex classes.
		b.WriteByte(']')
		idx++
	}

	for ; idx < end; idx++ {
		if pat[idx] == '\\' {
			b.WriteString(`\\`)
			continue
		}

		b.WriteByte(pat[idx])
	}

	b.WriteByte(']')
	return end, true
}

// findCharClassEnd locates the closing bracket of a glob char class.
func findCharClassEnd(pat string, start int) int {
	if start < 0 || start >= len(pat) || pat[start] != '[' {
		return -1
	}

	idx := start + 1
	if idx < len(pat) && (pat[idx] == '!' || pat[idx] == '^') {
		idx++
	}

	if idx < len(pat) && pat[idx] == ']' {
		idx++
	}

	for ; idx < len(pat); idx++ {
		if pat[idx] == ']' {
			return idx
		}
	}

	return -1
}

// regexEscapeByte escapes one byte for regexp source.
func regexEscapeByte(c byte) string {
	switch c {
	case '.', '+', '(', ')', '|', '{', '}', '[', ']', '^', '$', '\\', '*', '?':
		return `\` + string(c)
	default:
		return string(c)
	}
}
