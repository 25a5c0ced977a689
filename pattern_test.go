// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FileOwners
// Source: github.com/fileowners/codeowners

package codeowners

import "testing"

// mustCompile compiles a pattern or fails the test.
func mustCompile(t *testing.T, pattern string) *patternMatcher {
	t.Helper()

	m, err := compilePattern(pattern)
	if err != nil {
		t.Fatalf("compilePattern(%q): %v", pattern, err)
	}

	return m
}

func TestPatternBasenameAtAnyDepth(t *testing.T) {
	t.Parallel()

	m := mustCompile(t, "*.go")
	if !m.matches("main.go") {
		t.Fatalf("main.go must match")
	}

	if !m.matches("src/deep/tree/main.go") {
		t.Fatalf("nested main.go must match")
	}

	if m.matches("main.gox") {
		t.Fatalf("main.gox must not match")
	}
}

func TestPatternAnchored(t *testing.T) {
	t.Parallel()

	m := mustCompile(t, "/build.sh")
	if !m.matches("build.sh") {
		t.Fatalf("build.sh at root must match")
	}

	if m.matches("scripts/build.sh") {
		t.Fatalf("nested build.sh must not match anchored pattern")
	}
}

func TestPatternDirOnly(t *testing.T) {
	t.Parallel()

	m := mustCompile(t, "docs/")
	if !m.matches("docs/intro.md") {
		t.Fatalf("file inside docs must match")
	}

	if !m.matches("a/docs/b/c.txt") {
		t.Fatalf("file under nested docs must match")
	}

	if m.matches("docs") {
		t.Fatalf("a plain file named docs must not match a dir-only pattern")
	}
}

func TestPatternDirOnlyPath(t *testing.T) {
	t.Parallel()

	m := mustCompile(t, "src/vendor/")
	if !m.matches("src/vendor/a.go") {
		t.Fatalf("descendant must match")
	}

	if !m.matches("x/src/vendor/a.go") {
		t.Fatalf("unanchored dir path must match at any boundary")
	}

	if m.matches("src/vendor") {
		t.Fatalf("the directory path itself must not match without a descendant")
	}
}

func TestPatternAnchoredDoubleStar(t *testing.T) {
	t.Parallel()

	m := mustCompile(t, "/src/**")
	if !m.matches("src/gen/x.go") {
		t.Fatalf("descendant must match")
	}

	if !m.matches("src/a") {
		t.Fatalf("direct child must match")
	}

	if m.matches("src") {
		t.Fatalf("the prefix itself must not match trailing /**")
	}

	if m.matches("other/src/a") {
		t.Fatalf("anchored pattern must not match below other directories")
	}
}

func TestPatternInnerDoubleStar(t *testing.T) {
	t.Parallel()

	m := mustCompile(t, "a/**/b.txt")
	if !m.matches("a/b.txt") {
		t.Fatalf("** must match zero directories")
	}

	if !m.matches("a/x/y/b.txt") {
		t.Fatalf("** must match many directories")
	}

	if m.matches("a/x/c.txt") {
		t.Fatalf("different basename must not match")
	}
}

func TestPatternLeadingDoubleStar(t *testing.T) {
	t.Parallel()

	m := mustCompile(t, "**/bar")
	if !m.matches("bar") {
		t.Fatalf("bar at root must match")
	}

	if !m.matches("a/b/bar") {
		t.Fatalf("nested bar must match")
	}

	if m.matches("a/bar/c") {
		t.Fatalf("bar as a directory must not match a file pattern")
	}
}

func TestPatternSingleStarStaysInSegment(t *testing.T) {
	t.Parallel()

	m := mustCompile(t, "src/*.go")
	if !m.matches("src/a.go") {
		t.Fatalf("direct child must match")
	}

	if m.matches("src/sub/a.go") {
		t.Fatalf("* must not cross segment boundaries")
	}

	if !m.matches("vendor/src/a.go") {
		t.Fatalf("unanchored path pattern must match at any segment boundary")
	}
}

func TestPatternCharClass(t *testing.T) {
	t.Parallel()

	m := mustCompile(t, "file[0-2].txt")
	if !m.matches("file1.txt") {
		t.Fatalf("file1.txt must match")
	}

	if m.matches("file9.txt") {
		t.Fatalf("file9.txt must not match")
	}
}

func TestPatternEscapedMeta(t *testing.T) {
	t.Parallel()

	m := mustCompile(t, `star\*.txt`)
	if !m.matches("star*.txt") {
		t.Fatalf("escaped star must match the literal star")
	}

	if m.matches("starX.txt") {
		t.Fatalf("escaped star must not act as a wildcard")
	}
}

func TestPatternEscapedSpace(t *testing.T) {
	t.Parallel()

	m := mustCompile(t, `my\ file.txt`)
	if !m.matches("docs/my file.txt") {
		t.Fatalf("escaped space must match the literal space at any depth")
	}

	if m.matches("docs/my-file.txt") {
		t.Fatalf("different basename must not match")
	}
}

func TestPatternEmpty(t *testing.T) {
	t.Parallel()

	if _, err := compilePattern("   "); err == nil {
		t.Fatalf("blank pattern must not compile")
	}

	if _, err := compilePattern("/"); err == nil {
		t.Fatalf("bare slash must not compile")
	}
}
