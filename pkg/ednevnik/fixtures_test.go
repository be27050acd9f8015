package ednevnik

import (
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	_ "embed"
)

//go:embed testdata/login.html
var loginPage string

//go:embed testdata/classes.html
var classesPage string

//go:embed testdata/courses.html
var coursesPage string

//go:embed testdata/course_details.html
var courseDetailsPage string

//go:embed testdata/exams.html
var examsPage string

//go:embed testdata/absences.html
var absencesPage string

//go:embed testdata/student_info.html
var studentInfoPage string

func parseDoc(t testing.TB, body string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

type notesPageSections struct {
	classmaster     string
	extracurricular string
	outOfSchool     string
	manners         string
	measureRows     [][3]string
}

// the notes page is a flat list of blocks under #content where the position of
// a block is the only thing that says what it is.
func notesPage(s notesPageSections) string {
	texts := map[int]string{
		7:  s.classmaster,
		10: s.extracurricular,
		13: s.outOfSchool,
		16: s.manners,
	}

	var out strings.Builder
	out.WriteString(`<!DOCTYPE html><html><body><div id="content">`)
	for i := 1; i <= 19; i++ {
		text, isSection := texts[i]
		switch {
		case isSection:
			fmt.Fprintf(&out, "<div class=\"section\"><div>%s</div></div>\n", text)
		case i == 19:
			out.WriteString(`<div class="measures"><table><tbody>`)
			out.WriteString(`<tr><td colspan="3">Pedagoške mjere</td></tr>`)
			out.WriteString(`<tr><td>Mjera</td><td>Opis</td><td>Datum</td></tr>`)
			for _, row := range s.measureRows {
				fmt.Fprintf(&out, "<tr><td>%s</td><td>%s</td><td>%s</td></tr>", row[0], row[1], row[2])
			}
			out.WriteString(`</tbody></table></div>`)
		default:
			fmt.Fprintf(&out, "<div class=\"heading\">block %d</div>\n", i)
		}
	}
	out.WriteString(`</div></body></html>`)
	return out.String()
}
