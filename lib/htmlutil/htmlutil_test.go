package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parse(t testing.TB, body string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestCellValue(t *testing.T) {
	doc := parse(t, `<table><tbody><tr>
		<td><img src="ok.png" alt="Opravdano"></td>
		<td>  Matematika  </td>
		<td><span>nested</span> text</td>
		<td><img src="x.png" alt=""> fallback</td>
	</tr></tbody></table>`)

	values := CellValues(doc.Find("tr").First())
	require.Equal(t, []string{"Opravdano", "Matematika", "nested text", "fallback"}, values)
}

func TestCellTexts(t *testing.T) {
	doc := parse(t, `<table><tr><td><img alt="X">a</td><td>b</td></tr></table>`)
	require.Equal(t, []string{"a", "b"}, CellTexts(doc.Find("tr")))
}

func TestClean(t *testing.T) {
	require.Equal(t, "a b\nc", Clean("  a    b\nc\u0007  "))
}

func TestTrailingSegments(t *testing.T) {
	table := []struct {
		href     string
		n        int
		expected []string
		err      bool
	}{
		{href: "/pregled/predmeti/1234", n: 1, expected: []string{"1234"}},
		{href: "https://ocjene.skole.hr/pregled/predmet/42/7", n: 2, expected: []string{"42", "7"}},
		{href: "/pregled/predmet/42/7/", n: 2, expected: []string{"42", "7"}},
		{href: "7", n: 2, err: true},
	}

	for _, row := range table {
		segments, err := TrailingSegments(row.href, row.n)
		if row.err {
			require.Error(t, err, row.href)
			continue
		}
		require.NoError(t, err, row.href)
		require.Equal(t, row.expected, segments, row.href)
	}
}
