package gradestore

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"ednevnik/lib/gradestore/db"
	"ednevnik/lib/telemetry"
	"ednevnik/lib/timezone"
	"ednevnik/pkg/ednevnik"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func testSnapshot() Snapshot {
	return Snapshot{
		Time: time.Date(2020, time.October, 20, 18, 30, 0, 0, timezone.Location),
		Class: ednevnik.ClassYear{
			Id:      1234,
			Name:    "4.b",
			Info:    "Gimnazija Lucijana Vranjanina, Zagreb 2019./2020.\nRazrednik: Ivo Ivić",
			Average: "4.50",
		},
		Courses: []CourseSnapshot{
			{
				Course: ednevnik.Course{CourseId: 42, SubId: 7, Name: "Hrvatski jezik", Info: "Ana Anić"},
				Details: ednevnik.CourseDetails{
					Grades: []ednevnik.Grade{
						{Grade: "5", Info: "Usmeni ispit", Date: "12.10.2019."},
						{Grade: "4", Info: "Pisana provjera", Date: "nepoznato"},
					},
					Notes: []ednevnik.Note{{Info: "Aktivan na satu", Date: "15.10.2019."}},
				},
			},
			{
				Course: ednevnik.Course{CourseId: 43, SubId: 7, Name: "Matematika", Info: "Marko Marić"},
				Details: ednevnik.CourseDetails{
					Grades: []ednevnik.Grade{},
					Notes:  []ednevnik.Note{},
				},
			},
		},
		Exams: []ednevnik.Exam{
			{Course: "Matematika", Info: "Derivacije", Date: "20.11.2019."},
		},
		Absences: []ednevnik.Absence{
			{Date: "Ponedjeljak 12.10.2020", Period: "1.", Course: "Matematika", Status: "Opravdano", Reason: "Bolest"},
		},
	}
}

func openTestStore(t testing.TB) (Store, *sql.DB) {
	database, err := Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database), database
}

func TestStore(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:gradestore")
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	store, database := openTestStore(t)

	_, err := store.Pull(ctx, 1234)
	require.True(t, errors.Is(err, sql.ErrNoRows))

	snapshot := testSnapshot()
	require.NoError(t, store.Push(ctx, snapshot))

	pulled, err := store.Pull(ctx, 1234)
	require.NoError(t, err)
	require.True(t, snapshot.Time.Equal(pulled.Time))
	pulled.Time = snapshot.Time
	if diff := cmp.Diff(snapshot, pulled); diff != "" {
		t.Fatalf("snapshot mismatch (-pushed +pulled):\n%s", diff)
	}

	grades, err := db.New(database).GetGrades(ctx, db.GetGradesParams{ClassID: 1234, CourseID: 42, SubID: 7})
	require.NoError(t, err)
	require.Len(t, grades, 2)
	require.True(t, grades[0].Day.Valid)
	require.Equal(t, time.Date(2019, time.October, 12, 0, 0, 0, 0, timezone.Location).Unix(), grades[0].Day.Int64)
	require.False(t, grades[1].Day.Valid)
}

func TestStoreReplacesClass(t *testing.T) {
	ctx := context.Background()
	store, _ := openTestStore(t)

	require.NoError(t, store.Push(ctx, testSnapshot()))

	other := testSnapshot()
	other.Class.Id = 987
	require.NoError(t, store.Push(ctx, other))

	updated := testSnapshot()
	updated.Courses = updated.Courses[:1]
	updated.Exams = []ednevnik.Exam{}
	require.NoError(t, store.Push(ctx, updated))

	pulled, err := store.Pull(ctx, 1234)
	require.NoError(t, err)
	require.Len(t, pulled.Courses, 1)
	require.Empty(t, pulled.Exams)
	require.Len(t, pulled.Absences, 1)

	// other classes are left alone
	untouched, err := store.Pull(ctx, 987)
	require.NoError(t, err)
	require.Len(t, untouched.Courses, 2)
	require.Len(t, untouched.Exams, 1)
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "export.db")

	database, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, NewStore(database).Push(context.Background(), testSnapshot()))
	require.NoError(t, database.Close())

	// reopening keeps the data, the schema is only created when missing
	database, err = Open(path)
	require.NoError(t, err)
	defer database.Close()
	pulled, err := NewStore(database).Pull(context.Background(), 1234)
	require.NoError(t, err)
	require.Equal(t, "4.b", pulled.Class.Name)
}
