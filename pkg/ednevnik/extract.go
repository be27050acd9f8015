package ednevnik

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"ednevnik/lib/htmlutil"
	"ednevnik/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

// Extractor turns one portal page into records. Extractors only look at the
// document, so they can be run against saved pages.
type Extractor[T any] func(doc *goquery.Document) (T, error)

const (
	pageClassYears    = "Class Years"
	pageCourses       = "Courses"
	pageCourseDetails = "Course Details"
	pageExams         = "Exams"
	pageAbsences      = "Absences"
	pageStudentInfo   = "Student Info"
	pageStudentNotes  = "Student Notes"
)

func extractionError(page string, err error) error {
	return &ExtractionError{Page: page, Err: err}
}

// cellAt tolerates short rows the same way the portal's own rendering does,
// a missing cell is just empty.
func cellAt(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}

// oddRows calls fn for rows 1, 3, 5, ..., the even rows of the portal's
// listing tables are headers and spacers.
func oddRows(rows *goquery.Selection, fn func(row *goquery.Selection)) {
	rows.Each(func(i int, row *goquery.Selection) {
		if i%2 == 0 {
			return
		}
		fn(row)
	})
}

func parseId(segment string) (int, error) {
	id, err := strconv.Atoi(segment)
	if err != nil {
		return 0, fmt.Errorf("parse id '%s': %w", segment, err)
	}
	return id, nil
}

// ExtractClasses reads the class year picker (/razredi/odabir).
func ExtractClasses(doc *goquery.Document) ([]ClassYear, error) {
	classes := []ClassYear{}
	var err error
	doc.Find(".class-wrap").EachWithBreak(func(_ int, wrap *goquery.Selection) bool {
		var segments []string
		segments, err = htmlutil.TrailingSegments(wrap.AttrOr("href", ""), 1)
		if err != nil {
			return false
		}
		var id int
		id, err = parseId(segments[0])
		if err != nil {
			return false
		}

		class := wrap.ChildrenFiltered(".class")
		classes = append(classes, ClassYear{
			Id:      id,
			Name:    htmlutil.Text(class.ChildrenFiltered(".school-class")),
			Info:    classInfo(class),
			Average: classAverage(wrap.ChildrenFiltered(".overall-score")),
		})
		return true
	})
	if err != nil {
		return nil, extractionError(pageClassYears, err)
	}
	return classes, nil
}

var yearRangeRegex = regexp.MustCompile(`\d{4}\./\d{4}\.`)

// the info block starts with the 3 character class name (ex. "4.b") followed by
// the school, the year range and the class master on a single line.
func classInfo(class *goquery.Selection) string {
	info := strings.TrimSpace(class.Text())
	info = textutil.DropRunes(info, 3)
	info = textutil.CollapseWhitespace(info)
	info = textutil.BreakBefore(info, "Razrednik")
	info = textutil.BreakAfterFirst(info, yearRangeRegex)
	return textutil.TrimLines(info)
}

func classAverage(score *goquery.Selection) string {
	average := strings.Replace(score.Text(), "Opći uspjeh:", "", 1)
	return textutil.CollapseWhitespace(average)
}

// ExtractCourses reads the subject list of a class year (/pregled/predmeti/{class}).
func ExtractCourses(doc *goquery.Document) ([]Course, error) {
	courses := []Course{}
	var err error
	doc.Find("#courses").ChildrenFiltered("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		var segments []string
		// .../{courseId}/{subId}
		segments, err = htmlutil.TrailingSegments(a.AttrOr("href", ""), 2)
		if err != nil {
			return false
		}
		var subId, courseId int
		subId, err = parseId(segments[1])
		if err != nil {
			return false
		}
		courseId, err = parseId(segments[0])
		if err != nil {
			return false
		}

		name := strings.Replace(a.AttrOr("name", ""), "-", " ", 1)
		courses = append(courses, Course{
			CourseId: courseId,
			SubId:    subId,
			Name:     textutil.CapitalizeFirst(strings.TrimSpace(name)),
			Info:     htmlutil.Text(a.ChildrenFiltered(".course").ChildrenFiltered(".course-info")),
		})
		return true
	})
	if err != nil {
		return nil, extractionError(pageCourses, err)
	}
	return courses, nil
}

// ExtractCourseDetails reads the grades and notes of one subject (/pregled/predmet/{course}/{sub}).
func ExtractCourseDetails(doc *goquery.Document) (CourseDetails, error) {
	details := CourseDetails{
		Grades: []Grade{},
		Notes:  []Note{},
	}

	oddRows(doc.Find("#grade_notes > tbody").ChildrenFiltered("tr"), func(row *goquery.Selection) {
		details.Grades = append(details.Grades, Grade{
			Grade: htmlutil.Text(row.ChildrenFiltered(".ocjena")),
			Info:  htmlutil.Text(row.ChildrenFiltered(".biljeska")),
			Date:  htmlutil.Text(row.ChildrenFiltered(".datum")),
		})
	})

	oddRows(doc.Find("#notes > tbody").ChildrenFiltered("tr"), func(row *goquery.Selection) {
		cells := htmlutil.CellTexts(row)
		details.Notes = append(details.Notes, Note{
			Info: cellAt(cells, 1),
			Date: cellAt(cells, 0),
		})
	})

	return details, nil
}

// ExtractExams reads the exam schedule (/pregled/ispiti/{class}/all).
func ExtractExams(doc *goquery.Document) ([]Exam, error) {
	exams := []Exam{}
	oddRows(doc.Find("tr"), func(row *goquery.Selection) {
		cells := htmlutil.CellTexts(row)
		exams = append(exams, Exam{
			Course: cellAt(cells, 0),
			Info:   cellAt(cells, 1),
			Date:   cellAt(cells, 2),
		})
	})
	return exams, nil
}
