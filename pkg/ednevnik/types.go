package ednevnik

// ClassYear is one school year the student was enrolled in.
type ClassYear struct {
	Id      int    `json:"id"`
	Name    string `json:"name"`
	Info    string `json:"info"`
	Average string `json:"average"`
}

// Course is one subject of a class year, CourseId and SubId together address its detail page.
type Course struct {
	CourseId int    `json:"course_id"`
	SubId    int    `json:"sub_id"`
	Name     string `json:"name"`
	Info     string `json:"info"`
}

type CourseDetails struct {
	Grades []Grade `json:"grades"`
	Notes  []Note  `json:"notes"`
}

type Grade struct {
	Grade string `json:"grade"`
	Info  string `json:"info"`
	Date  string `json:"date"`
}

type Note struct {
	Info string `json:"info"`
	Date string `json:"date"`
}

type Exam struct {
	Course string `json:"course"`
	Info   string `json:"info"`
	Date   string `json:"date"`
}

type Absence struct {
	Date   string `json:"date"`
	Period string `json:"period"`
	Course string `json:"course"`
	Status string `json:"status"`
	Reason string `json:"reason"`
}

// StudentInfo is the personal data page, its rows carry no labels so fields
// are assigned by row position, see StudentInfoFields.
type StudentInfo struct {
	Ordinal      string `json:"ordinal"`
	FullName     string `json:"full_name"`
	OIB          string `json:"oib"`
	DateOfBirth  string `json:"date_of_birth"`
	PlaceOfBirth string `json:"place_of_birth"`
	MOIB         string `json:"moib"`
	Address      string `json:"address"`
	Program      string `json:"program"`
}

// StudentInfoFields is the row order of the personal data table.
var StudentInfoFields = []string{
	"Ordinal",
	"FullName",
	"OIB",
	"DateOfBirth",
	"PlaceOfBirth",
	"MOIB",
	"Address",
	"Program",
}

func (s *StudentInfo) fields() []*string {
	return []*string{
		&s.Ordinal,
		&s.FullName,
		&s.OIB,
		&s.DateOfBirth,
		&s.PlaceOfBirth,
		&s.MOIB,
		&s.Address,
		&s.Program,
	}
}

// StudentNotes holds the notes page, a nil section means the portal
// rendered its "nothing recorded" text.
type StudentNotes struct {
	ClassmasterNotes          *string              `json:"classmaster_notes"`
	ExtracurricularActivities *string              `json:"extracurricular_activities"`
	OutOfSchoolActivities     *string              `json:"out_of_school_activities"`
	Manners                   string               `json:"manners"`
	PedagogicalMeasures       []PedagogicalMeasure `json:"pedagogical_measures"`
}

type PedagogicalMeasure struct {
	Type string `json:"type"`
	Info string `json:"info"`
	Date string `json:"date"`
}
