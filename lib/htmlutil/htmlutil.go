package htmlutil

import (
	"bytes"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// GetText concatenates every text node under node in document order.
func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

var innerWhitespace = regexp.MustCompile(`[ \t]{2,}`)

func removeNonPrintable(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || unicode.IsPrint(r) {
			return r
		}
		return -1
	}, s)
}

// Clean drops non-printable characters (except newlines), collapses runs of
// blanks and trims the result.
func Clean(s string) string {
	s = removeNonPrintable(s)
	s = innerWhitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Text is the cleaned text of every node in the selection.
func Text(sel *goquery.Selection) string {
	var out strings.Builder
	for _, n := range sel.Nodes {
		out.WriteString(GetText(n))
	}
	return Clean(out.String())
}

// CellValue is what a table cell displays: the alt text of its first child element
// when it has one (status icons are rendered as images), otherwise its text.
func CellValue(cell *goquery.Selection) string {
	alt := cell.Children().First().AttrOr("alt", "")
	if alt != "" {
		return Clean(alt)
	}
	return Text(cell)
}

// CellValues maps CellValue over the direct <td> children of a row.
func CellValues(row *goquery.Selection) []string {
	cells := row.ChildrenFiltered("td")
	values := make([]string, 0, cells.Length())
	cells.Each(func(_ int, cell *goquery.Selection) {
		values = append(values, CellValue(cell))
	})
	return values
}

// CellTexts is CellValues without the image alt lookup.
func CellTexts(row *goquery.Selection) []string {
	cells := row.ChildrenFiltered("td")
	values := make([]string, 0, cells.Length())
	cells.Each(func(_ int, cell *goquery.Selection) {
		values = append(values, Text(cell))
	})
	return values
}

// TrailingSegments returns the last n segments of the path of href, in path order.
// A trailing slash does not count as an empty segment.
func TrailingSegments(href string, n int) ([]string, error) {
	link, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return nil, err
	}
	segments := strings.Split(strings.TrimSuffix(link.Path, "/"), "/")
	if len(segments) < n {
		return nil, fmt.Errorf("href '%s' has less than %d path segments", href, n)
	}
	return segments[len(segments)-n:], nil
}
