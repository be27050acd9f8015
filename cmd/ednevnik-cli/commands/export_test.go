package commands

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"ednevnik/lib/gradestore"
	"ednevnik/lib/telemetry"
	"ednevnik/lib/timezone"
	"ednevnik/pkg/ednevnik"

	"github.com/stretchr/testify/require"
)

func miniPortal(t testing.TB) *httptest.Server {
	pages := map[string]string{
		"/pocetna/prijava":  `<form></form>`,
		"/pocetna/posalji/": `<p>ok</p>`,
		"/razredi/odabir": `<a class="class-wrap" href="/pregled/predmeti/5">
			<div class="class"><span class="school-class">1.a</span><span class="class-school">Škola 2020./2021. Razrednik: X</span></div>
			<div class="overall-score">Opći uspjeh: 5.00</div></a>`,
		"/pregled/predmeti/5": `<div id="courses">
			<a href="/pregled/predmet/10/1" name="fizika"></a>
			<a href="/pregled/predmet/11/1" name="kemija"></a></div>`,
		"/pregled/predmet/10/1": `<table id="grade_notes"><tbody><tr><td>h</td></tr>
			<tr><td class="ocjena">5</td><td class="biljeska">a</td><td class="datum">1.2.2021.</td></tr></tbody></table>`,
		"/pregled/predmet/11/1": `<table id="grade_notes"><tbody></tbody></table>`,
		"/pregled/ispiti/5/all": `<table><tr><td>h</td></tr><tr><td>Fizika</td><td>Test</td><td>3.3.2021.</td></tr></table>`,
		"/pregled/izostanci/5":  `<div></div>`,
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := pages[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "csrf_cookie", Value: "T", Path: "/"})
		fmt.Fprint(w, "<html><body>"+body+"</body></html>")
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetchSnapshot(t *testing.T) {
	server := miniPortal(t)
	ctx := context.Background()

	client, err := ednevnik.NewClient(ednevnik.ClientOptions{
		Email:     "a@skole.hr",
		Password:  "b",
		BaseUrl:   server.URL,
		Telemetry: telemetry.SlogAPI{},
	})
	require.NoError(t, err)
	require.NoError(t, client.Login(ctx))

	snapshot, err := fetchSnapshot(ctx, client, 5)
	require.NoError(t, err)
	require.Equal(t, "1.a", snapshot.Class.Name)
	require.Len(t, snapshot.Courses, 2)
	require.Equal(t, "Fizika", snapshot.Courses[0].Course.Name)
	require.Len(t, snapshot.Courses[0].Details.Grades, 1)
	require.Empty(t, snapshot.Courses[1].Details.Grades)
	require.Len(t, snapshot.Exams, 1)
	require.Empty(t, snapshot.Absences)

	database, err := gradestore.Open(":memory:")
	require.NoError(t, err)
	defer database.Close()
	store := gradestore.NewStore(database)
	require.NoError(t, store.Push(ctx, snapshot))

	pulled, err := store.Pull(ctx, 5)
	require.NoError(t, err)
	require.Len(t, pulled.Courses, 2)

	_, err = fetchSnapshot(ctx, client, 6)
	require.ErrorContains(t, err, "class year 6")
}

func TestWriteSnapshot(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "out", "export.db")
	snapshot := gradestore.Snapshot{
		Time:  timezone.Now(),
		Class: ednevnik.ClassYear{Id: 5, Name: "1.a"},
		Courses: []gradestore.CourseSnapshot{
			{Course: ednevnik.Course{Name: "Fizika", CourseId: 10, SubId: 1}},
		},
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	require.Error(t, writeSnapshot(cancelled, path, snapshot))

	// the failed write released the file, so the next one can take it
	require.NoError(t, writeSnapshot(ctx, path, snapshot))
	snapshot.Class.Name = "2.a"
	require.NoError(t, writeSnapshot(ctx, path, snapshot))

	database, err := gradestore.Open(path)
	require.NoError(t, err)
	defer database.Close()
	pulled, err := gradestore.NewStore(database).Pull(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, "2.a", pulled.Class.Name)
	require.Len(t, pulled.Courses, 1)
}
