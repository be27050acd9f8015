package db

import (
	"context"
)

const deleteAbsences = `-- name: DeleteAbsences :exec
delete from absence where class_id = ?
`

func (q *Queries) DeleteAbsences(ctx context.Context, classID int64) error {
	_, err := q.db.ExecContext(ctx, deleteAbsences, classID)
	return err
}

const deleteExams = `-- name: DeleteExams :exec
delete from exam where class_id = ?
`

func (q *Queries) DeleteExams(ctx context.Context, classID int64) error {
	_, err := q.db.ExecContext(ctx, deleteExams, classID)
	return err
}

const deleteNotes = `-- name: DeleteNotes :exec
delete from note where class_id = ?
`

func (q *Queries) DeleteNotes(ctx context.Context, classID int64) error {
	_, err := q.db.ExecContext(ctx, deleteNotes, classID)
	return err
}

const deleteGrades = `-- name: DeleteGrades :exec
delete from grade where class_id = ?
`

func (q *Queries) DeleteGrades(ctx context.Context, classID int64) error {
	_, err := q.db.ExecContext(ctx, deleteGrades, classID)
	return err
}

const deleteCourses = `-- name: DeleteCourses :exec
delete from course where class_id = ?
`

func (q *Queries) DeleteCourses(ctx context.Context, classID int64) error {
	_, err := q.db.ExecContext(ctx, deleteCourses, classID)
	return err
}

const deleteClassYear = `-- name: DeleteClassYear :exec
delete from class_year where id = ?
`

func (q *Queries) DeleteClassYear(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteClassYear, id)
	return err
}

const createClassYear = `-- name: CreateClassYear :exec
insert into class_year (id, name, info, average, exported_at) values (?, ?, ?, ?, ?)
`

type CreateClassYearParams struct {
	ID         int64
	Name       string
	Info       string
	Average    string
	ExportedAt int64
}

func (q *Queries) CreateClassYear(ctx context.Context, arg CreateClassYearParams) error {
	_, err := q.db.ExecContext(ctx, createClassYear,
		arg.ID,
		arg.Name,
		arg.Info,
		arg.Average,
		arg.ExportedAt,
	)
	return err
}

const getClassYear = `-- name: GetClassYear :one
select id, name, info, average, exported_at from class_year where id = ?
`

func (q *Queries) GetClassYear(ctx context.Context, id int64) (ClassYear, error) {
	row := q.db.QueryRowContext(ctx, getClassYear, id)
	var i ClassYear
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Info,
		&i.Average,
		&i.ExportedAt,
	)
	return i, err
}

const createCourse = `-- name: CreateCourse :exec
insert into course (class_id, course_id, sub_id, name, info) values (?, ?, ?, ?, ?)
`

type CreateCourseParams struct {
	ClassID  int64
	CourseID int64
	SubID    int64
	Name     string
	Info     string
}

func (q *Queries) CreateCourse(ctx context.Context, arg CreateCourseParams) error {
	_, err := q.db.ExecContext(ctx, createCourse,
		arg.ClassID,
		arg.CourseID,
		arg.SubID,
		arg.Name,
		arg.Info,
	)
	return err
}

const getCourses = `-- name: GetCourses :many
select class_id, course_id, sub_id, name, info from course
where class_id = ?
order by rowid
`

func (q *Queries) GetCourses(ctx context.Context, classID int64) ([]Course, error) {
	rows, err := q.db.QueryContext(ctx, getCourses, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Course
	for rows.Next() {
		var i Course
		if err := rows.Scan(
			&i.ClassID,
			&i.CourseID,
			&i.SubID,
			&i.Name,
			&i.Info,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createGrade = `-- name: CreateGrade :exec
insert into grade (class_id, course_id, sub_id, grade, info, date, day) values (?, ?, ?, ?, ?, ?, ?)
`

type CreateGradeParams = Grade

func (q *Queries) CreateGrade(ctx context.Context, arg CreateGradeParams) error {
	_, err := q.db.ExecContext(ctx, createGrade,
		arg.ClassID,
		arg.CourseID,
		arg.SubID,
		arg.Grade,
		arg.Info,
		arg.Date,
		arg.Day,
	)
	return err
}

const getGrades = `-- name: GetGrades :many
select class_id, course_id, sub_id, grade, info, date, day from grade
where class_id = ? and course_id = ? and sub_id = ?
order by rowid
`

type GetGradesParams struct {
	ClassID  int64
	CourseID int64
	SubID    int64
}

func (q *Queries) GetGrades(ctx context.Context, arg GetGradesParams) ([]Grade, error) {
	rows, err := q.db.QueryContext(ctx, getGrades, arg.ClassID, arg.CourseID, arg.SubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Grade
	for rows.Next() {
		var i Grade
		if err := rows.Scan(
			&i.ClassID,
			&i.CourseID,
			&i.SubID,
			&i.Grade,
			&i.Info,
			&i.Date,
			&i.Day,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createNote = `-- name: CreateNote :exec
insert into note (class_id, course_id, sub_id, info, date, day) values (?, ?, ?, ?, ?, ?)
`

type CreateNoteParams = Note

func (q *Queries) CreateNote(ctx context.Context, arg CreateNoteParams) error {
	_, err := q.db.ExecContext(ctx, createNote,
		arg.ClassID,
		arg.CourseID,
		arg.SubID,
		arg.Info,
		arg.Date,
		arg.Day,
	)
	return err
}

const getNotes = `-- name: GetNotes :many
select class_id, course_id, sub_id, info, date, day from note
where class_id = ? and course_id = ? and sub_id = ?
order by rowid
`

type GetNotesParams = GetGradesParams

func (q *Queries) GetNotes(ctx context.Context, arg GetNotesParams) ([]Note, error) {
	rows, err := q.db.QueryContext(ctx, getNotes, arg.ClassID, arg.CourseID, arg.SubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Note
	for rows.Next() {
		var i Note
		if err := rows.Scan(
			&i.ClassID,
			&i.CourseID,
			&i.SubID,
			&i.Info,
			&i.Date,
			&i.Day,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createExam = `-- name: CreateExam :exec
insert into exam (class_id, course, info, date, day) values (?, ?, ?, ?, ?)
`

type CreateExamParams = Exam

func (q *Queries) CreateExam(ctx context.Context, arg CreateExamParams) error {
	_, err := q.db.ExecContext(ctx, createExam,
		arg.ClassID,
		arg.Course,
		arg.Info,
		arg.Date,
		arg.Day,
	)
	return err
}

const getExams = `-- name: GetExams :many
select class_id, course, info, date, day from exam
where class_id = ?
order by rowid
`

func (q *Queries) GetExams(ctx context.Context, classID int64) ([]Exam, error) {
	rows, err := q.db.QueryContext(ctx, getExams, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Exam
	for rows.Next() {
		var i Exam
		if err := rows.Scan(
			&i.ClassID,
			&i.Course,
			&i.Info,
			&i.Date,
			&i.Day,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createAbsence = `-- name: CreateAbsence :exec
insert into absence (class_id, date, period, course, status, reason, day) values (?, ?, ?, ?, ?, ?, ?)
`

type CreateAbsenceParams = Absence

func (q *Queries) CreateAbsence(ctx context.Context, arg CreateAbsenceParams) error {
	_, err := q.db.ExecContext(ctx, createAbsence,
		arg.ClassID,
		arg.Date,
		arg.Period,
		arg.Course,
		arg.Status,
		arg.Reason,
		arg.Day,
	)
	return err
}

const getAbsences = `-- name: GetAbsences :many
select class_id, date, period, course, status, reason, day from absence
where class_id = ?
order by rowid
`

func (q *Queries) GetAbsences(ctx context.Context, classID int64) ([]Absence, error) {
	rows, err := q.db.QueryContext(ctx, getAbsences, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Absence
	for rows.Next() {
		var i Absence
		if err := rows.Scan(
			&i.ClassID,
			&i.Date,
			&i.Period,
			&i.Course,
			&i.Status,
			&i.Reason,
			&i.Day,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
