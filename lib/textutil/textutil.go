package textutil

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// CapitalizeFirst upper-cases the first rune of s.
func CapitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// DropRunes removes the first n runes of s.
func DropRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[i:]
		}
		n--
	}
	return ""
}

// BreakBefore inserts a newline before the first occurrence of label.
func BreakBefore(s, label string) string {
	return strings.Replace(s, label, "\n"+label, 1)
}

// BreakAfterFirst inserts a newline after the first match of re.
func BreakAfterFirst(s string, re *regexp.Regexp) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[1]] + "\n" + s[loc[1]:]
}

var whitespaceRegex = regexp.MustCompile(`\s+`)

// CollapseWhitespace replaces every run of whitespace, newlines included, with a single space.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// TrimLines trims every line of s and drops the empty ones.
func TrimLines(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
