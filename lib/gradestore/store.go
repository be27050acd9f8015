package gradestore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ednevnik/lib/gradestore/db"
	"ednevnik/lib/timezone"
	"ednevnik/pkg/ednevnik"

	_ "modernc.org/sqlite"
)

func wrapOpen(err error) error {
	return fmt.Errorf("open grade store: %w", err)
}

// Open opens (or creates) the sqlite database at path and makes sure the schema exists.
func Open(path string) (*sql.DB, error) {
	if path != ":memory:" {
		err := os.MkdirAll(filepath.Dir(path), 0777)
		if err != nil {
			return nil, wrapOpen(err)
		}
	}

	database, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, wrapOpen(err)
	}

	// see this stackoverflow post for information on why the following
	// lines exist: https://stackoverflow.com/questions/35804884/sqlite-concurrent-writing-performance
	database.SetMaxOpenConns(1)
	_, err = database.Exec("PRAGMA journal_mode=WAL")
	if err != nil {
		database.Close()
		return nil, wrapOpen(err)
	}

	_, err = database.Exec(db.Schema)
	if err != nil {
		database.Close()
		return nil, wrapOpen(err)
	}
	return database, nil
}

// Store keeps one snapshot per class year, pushing a class again replaces
// everything that was stored for it.
type Store struct {
	db  *sql.DB
	qry *db.Queries
}

func NewStore(database *sql.DB) Store {
	return Store{
		db:  database,
		qry: db.New(database),
	}
}

type CourseSnapshot struct {
	Course  ednevnik.Course
	Details ednevnik.CourseDetails
}

type Snapshot struct {
	Time     time.Time
	Class    ednevnik.ClassYear
	Courses  []CourseSnapshot
	Exams    []ednevnik.Exam
	Absences []ednevnik.Absence
}

func day(date string) sql.NullInt64 {
	parsed, ok := timezone.ParseDate(date)
	if !ok {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: parsed.Unix(), Valid: true}
}

func (s Store) clear(ctx context.Context, qry *db.Queries, classId int64) error {
	deletes := []func(context.Context, int64) error{
		qry.DeleteAbsences,
		qry.DeleteExams,
		qry.DeleteNotes,
		qry.DeleteGrades,
		qry.DeleteCourses,
		qry.DeleteClassYear,
	}
	for _, del := range deletes {
		err := del(ctx, classId)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s Store) Push(ctx context.Context, snapshot Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	classId := int64(snapshot.Class.Id)
	err = s.clear(ctx, txqry, classId)
	if err != nil {
		return err
	}

	err = txqry.CreateClassYear(ctx, db.CreateClassYearParams{
		ID:         classId,
		Name:       snapshot.Class.Name,
		Info:       snapshot.Class.Info,
		Average:    snapshot.Class.Average,
		ExportedAt: snapshot.Time.Unix(),
	})
	if err != nil {
		return err
	}

	for _, c := range snapshot.Courses {
		courseId := int64(c.Course.CourseId)
		subId := int64(c.Course.SubId)
		err = txqry.CreateCourse(ctx, db.CreateCourseParams{
			ClassID:  classId,
			CourseID: courseId,
			SubID:    subId,
			Name:     c.Course.Name,
			Info:     c.Course.Info,
		})
		if err != nil {
			return fmt.Errorf("course %d/%d: %w", courseId, subId, err)
		}

		for _, g := range c.Details.Grades {
			err = txqry.CreateGrade(ctx, db.CreateGradeParams{
				ClassID:  classId,
				CourseID: courseId,
				SubID:    subId,
				Grade:    g.Grade,
				Info:     g.Info,
				Date:     g.Date,
				Day:      day(g.Date),
			})
			if err != nil {
				return err
			}
		}
		for _, n := range c.Details.Notes {
			err = txqry.CreateNote(ctx, db.CreateNoteParams{
				ClassID:  classId,
				CourseID: courseId,
				SubID:    subId,
				Info:     n.Info,
				Date:     n.Date,
				Day:      day(n.Date),
			})
			if err != nil {
				return err
			}
		}
	}

	for _, e := range snapshot.Exams {
		err = txqry.CreateExam(ctx, db.CreateExamParams{
			ClassID: classId,
			Course:  e.Course,
			Info:    e.Info,
			Date:    e.Date,
			Day:     day(e.Date),
		})
		if err != nil {
			return err
		}
	}

	for _, a := range snapshot.Absences {
		err = txqry.CreateAbsence(ctx, db.CreateAbsenceParams{
			ClassID: classId,
			Date:    a.Date,
			Period:  a.Period,
			Course:  a.Course,
			Status:  a.Status,
			Reason:  a.Reason,
			Day:     day(a.Date),
		})
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Pull reads back the snapshot of a class year, it returns sql.ErrNoRows
// when the class was never pushed.
func (s Store) Pull(ctx context.Context, classId int) (Snapshot, error) {
	id := int64(classId)
	class, err := s.qry.GetClassYear(ctx, id)
	if err != nil {
		return Snapshot{}, err
	}

	snapshot := Snapshot{
		Time: time.Unix(class.ExportedAt, 0).In(timezone.Location),
		Class: ednevnik.ClassYear{
			Id:      int(class.ID),
			Name:    class.Name,
			Info:    class.Info,
			Average: class.Average,
		},
		Courses:  []CourseSnapshot{},
		Exams:    []ednevnik.Exam{},
		Absences: []ednevnik.Absence{},
	}

	courses, err := s.qry.GetCourses(ctx, id)
	if err != nil {
		return Snapshot{}, err
	}
	for _, c := range courses {
		key := db.GetGradesParams{ClassID: id, CourseID: c.CourseID, SubID: c.SubID}
		grades, err := s.qry.GetGrades(ctx, key)
		if err != nil {
			return Snapshot{}, err
		}
		notes, err := s.qry.GetNotes(ctx, key)
		if err != nil {
			return Snapshot{}, err
		}

		course := CourseSnapshot{
			Course: ednevnik.Course{
				CourseId: int(c.CourseID),
				SubId:    int(c.SubID),
				Name:     c.Name,
				Info:     c.Info,
			},
			Details: ednevnik.CourseDetails{
				Grades: make([]ednevnik.Grade, len(grades)),
				Notes:  make([]ednevnik.Note, len(notes)),
			},
		}
		for i, g := range grades {
			course.Details.Grades[i] = ednevnik.Grade{Grade: g.Grade, Info: g.Info, Date: g.Date}
		}
		for i, n := range notes {
			course.Details.Notes[i] = ednevnik.Note{Info: n.Info, Date: n.Date}
		}
		snapshot.Courses = append(snapshot.Courses, course)
	}

	exams, err := s.qry.GetExams(ctx, id)
	if err != nil {
		return Snapshot{}, err
	}
	for _, e := range exams {
		snapshot.Exams = append(snapshot.Exams, ednevnik.Exam{Course: e.Course, Info: e.Info, Date: e.Date})
	}

	absences, err := s.qry.GetAbsences(ctx, id)
	if err != nil {
		return Snapshot{}, err
	}
	for _, a := range absences {
		snapshot.Absences = append(snapshot.Absences, ednevnik.Absence{
			Date:   a.Date,
			Period: a.Period,
			Course: a.Course,
			Status: a.Status,
			Reason: a.Reason,
		})
	}

	return snapshot, nil
}
