// Package stringtest builds multi-line strings for test fixtures.
package stringtest

import "strings"

// Input dedents a raw string literal so fixtures can be indented along with
// the surrounding test code.
//
// One leading and one trailing newline are removed, the longest whitespace
// prefix shared by all non-blank lines is stripped, and whitespace-only lines
// become empty.
//
// Example:
//
//	src := stringtest.Input(`
//		pub enum EV_KEY {
//		    KEY_A = 30,
//		}`,
//	) // -> "pub enum EV_KEY {\n    KEY_A = 30,\n}"
func Input(s string) string {
	s = strings.TrimPrefix(s, "\n")
	s = strings.TrimSuffix(s, "\n")

	lines := strings.Split(s, "\n")

	var (
		prefix string
		seen   bool
	)

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		lead := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if !seen {
			prefix = lead
			seen = true

			continue
		}

		prefix = commonPrefix(prefix, lead)
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""

			continue
		}

		lines[i] = strings.TrimPrefix(line, prefix)
	}

	return strings.Join(lines, "\n")
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return a[:i]
		}
	}

	return a[:n]
}

// JoinLF joins multiple strings with LF line endings.
// Use this to construct expected test output with explicit line endings.
//
// Example:
//
//	want := stringtest.JoinLF(
//		"| key | alias |",
//		"| --- | --- |",
//	) // -> "| key | alias |\n| --- | --- |"
func JoinLF(ss ...string) string {
	return strings.Join(ss, "\n")
}

// JoinCRLF joins multiple strings with CRLF line endings, for sources that
// were checked out on Windows.
func JoinCRLF(ss ...string) string {
	return strings.Join(ss, "\r\n")
}
