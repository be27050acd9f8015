package ednevnik

import (
	"regexp"

	"ednevnik/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// period rows have exactly this many cells: period, course, status, reason
const absencePeriodCells = 4

// "Ponedjeljak12.10.2020" -> "Ponedjeljak 12.10.2020"
var absenceDateRegex = regexp.MustCompile(`(\w+)(\d{2}\.\d{2}\.\d{4})`)

func normalizeAbsenceDate(date string) string {
	loc := absenceDateRegex.FindStringSubmatchIndex(date)
	if loc == nil {
		return date
	}
	return date[:loc[3]] + " " + date[loc[4]:]
}

// ExtractAbsences reads the absence table (/pregled/izostanci/{class}).
//
// The table groups periods by day: the first row of a day starts with a date cell
// that spans the following rows, so those only have the 4 period cells and take
// the date of the last day row above them.
func ExtractAbsences(doc *goquery.Document) ([]Absence, error) {
	absences := []Absence{}
	date := ""

	rows := doc.Find("#absent > div.hours > table > tbody").ChildrenFiltered("tr")
	rows.Each(func(_ int, row *goquery.Selection) {
		cells := htmlutil.CellValues(row)
		if len(cells) == 0 {
			return
		}

		if len(cells) == absencePeriodCells {
			cells = append([]string{date}, cells...)
		} else {
			date = cells[0]
			if len(cells) < absencePeriodCells+1 {
				return
			}
		}

		absences = append(absences, Absence{
			Date:   normalizeAbsenceDate(cells[0]),
			Period: cells[1],
			Course: cells[2],
			Status: cells[3],
			Reason: cells[4],
		})
	})

	return absences, nil
}
