package ednevnik

import (
	"fmt"
	"strings"

	"ednevnik/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// ExtractStudentInfo reads the personal data page (/pregled/osobni_podaci/{class}).
// A table with fewer rows than StudentInfoFields is treated as a changed page
// rather than filled in partially.
func ExtractStudentInfo(doc *goquery.Document) (StudentInfo, error) {
	rows := doc.Find("#content > div:nth-child(4) > div > table > tbody").ChildrenFiltered("tr")
	if rows.Length() < len(StudentInfoFields) {
		return StudentInfo{}, extractionError(pageStudentInfo, fmt.Errorf(
			"expected %d rows (%v), got %d",
			len(StudentInfoFields), StudentInfoFields, rows.Length(),
		))
	}

	var info StudentInfo
	fields := info.fields()
	rows.EachWithBreak(func(i int, row *goquery.Selection) bool {
		if i >= len(fields) {
			return false
		}
		*fields[i] = htmlutil.Text(row.ChildrenFiltered("td").First())
		return true
	})
	return info, nil
}

// sentinels the portal renders in place of an empty section
const (
	noClassmasterNotes          = "Nema bilježaka razrednika!"
	noExtracurricularActivities = "Nema zabilježenih izvannastavnih školskih aktivnosti!"
	noOutOfSchoolActivities     = "Nema zabilježenih izvanškolskih aktivnosti!"
)

// unlessSentinel returns nil when text is exactly the sentinel.
func unlessSentinel(text, sentinel string) *string {
	if text == sentinel {
		return nil
	}
	return &text
}

// ExtractStudentNotes reads the notes page (/pregled/biljeske/{class}).
func ExtractStudentNotes(doc *goquery.Document) (StudentNotes, error) {
	section := func(n int) *goquery.Selection {
		return doc.Find(fmt.Sprintf("#content > div:nth-child(%d) > div", n))
	}
	// free text written by teachers, only the surrounding blanks are dropped
	note := func(n int, sentinel string) *string {
		return unlessSentinel(strings.TrimSpace(section(n).Text()), sentinel)
	}

	notes := StudentNotes{
		ClassmasterNotes:          note(7, noClassmasterNotes),
		ExtracurricularActivities: note(10, noExtracurricularActivities),
		OutOfSchoolActivities:     note(13, noOutOfSchoolActivities),
		Manners:                   htmlutil.Text(section(16)),
		PedagogicalMeasures:       []PedagogicalMeasure{},
	}

	// the first two rows are the table title and the column headers
	rows := doc.Find("#content > div:nth-child(19) > table > tbody").ChildrenFiltered("tr")
	rows.Each(func(i int, row *goquery.Selection) {
		if i < 2 {
			return
		}
		cells := htmlutil.CellTexts(row)
		notes.PedagogicalMeasures = append(notes.PedagogicalMeasures, PedagogicalMeasure{
			Type: cellAt(cells, 0),
			Info: cellAt(cells, 1),
			Date: cellAt(cells, 2),
		})
	})

	return notes, nil
}
