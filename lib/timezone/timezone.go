package timezone

import (
	"regexp"
	"strconv"
	"time"

	// zoneinfo is missing on windows and slim containers
	_ "time/tzdata"
)

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("Europe/Zagreb")
	if err != nil {
		panic(err)
	}
}

// the portal renders dates in the school's local time with no zone, so
// they must be read in Zagreb time no matter where this runs.
func Now() time.Time {
	return time.Now().In(Location)
}

var dateRegex = regexp.MustCompile(`(\d{1,2})\.(\d{1,2})\.(\d{4})`)

// ParseDate finds the first "dd.mm.yyyy" date in s, ex. "12.10.2019." or
// "Ponedjeljak 12.10.2020", and returns the start of that day.
func ParseDate(s string) (time.Time, bool) {
	match := dateRegex.FindStringSubmatch(s)
	if match == nil {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(match[1])
	month, _ := strconv.Atoi(match[2])
	year, _ := strconv.Atoi(match[3])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, Location)
	// time.Date normalizes overflow (31.02. -> 03.03.), which is not a real date
	if date.Day() != day {
		return time.Time{}, false
	}
	return date, true
}
