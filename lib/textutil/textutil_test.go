package textutil

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCapitalizeFirst(t *testing.T) {
	require.Equal(t, "Matematika", CapitalizeFirst("matematika"))
	require.Equal(t, "Čakavski", CapitalizeFirst("čakavski"))
	require.Equal(t, "", CapitalizeFirst(""))
}

func TestDropRunes(t *testing.T) {
	require.Equal(t, "c", DropRunes("abc", 2))
	require.Equal(t, "đe", DropRunes("ščđe", 2))
	require.Equal(t, "", DropRunes("ab", 3))
	require.Equal(t, "ab", DropRunes("ab", 0))
}

func TestBreaks(t *testing.T) {
	yearRange := regexp.MustCompile(`\d{4}\./\d{4}\.`)

	s := "Gimnazija 2019./2020. Razrednik: Ivo Ivić"
	s = BreakBefore(s, "Razrednik")
	s = BreakAfterFirst(s, yearRange)
	require.Equal(t, "Gimnazija 2019./2020.\n \nRazrednik: Ivo Ivić", s)
	require.Equal(t, "Gimnazija 2019./2020.\nRazrednik: Ivo Ivić", TrimLines(s))

	require.Equal(t, "no match", BreakAfterFirst("no match", yearRange))
}

func TestCollapseWhitespace(t *testing.T) {
	require.Equal(t, "4.b Gimnazija 2019./2020.", CollapseWhitespace("\n\t4.b   Gimnazija\n  2019./2020.  "))
}
