package db

import "database/sql"

type ClassYear struct {
	ID         int64
	Name       string
	Info       string
	Average    string
	ExportedAt int64
}

type Course struct {
	ClassID  int64
	CourseID int64
	SubID    int64
	Name     string
	Info     string
}

type Grade struct {
	ClassID  int64
	CourseID int64
	SubID    int64
	Grade    string
	Info     string
	Date     string
	Day      sql.NullInt64
}

type Note struct {
	ClassID  int64
	CourseID int64
	SubID    int64
	Info     string
	Date     string
	Day      sql.NullInt64
}

type Exam struct {
	ClassID int64
	Course  string
	Info    string
	Date    string
	Day     sql.NullInt64
}

type Absence struct {
	ClassID int64
	Date    string
	Period  string
	Course  string
	Status  string
	Reason  string
	Day     sql.NullInt64
}
