package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ednevnik/lib/gradestore"
	"ednevnik/lib/osutil"
	"ednevnik/lib/timezone"
	"ednevnik/pkg/ednevnik"

	"github.com/spf13/cobra"
)

var exportDb string

func init() {
	exportCmd.Flags().StringVar(&exportDb, "db", "ednevnik.db", "The sqlite database to write the snapshot to.")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <class_id> [--db <path/to/output.db>]",
	Short: "Fetches everything about a class year and writes it to a sqlite database.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		classId := intArgs(args)[0]
		ctx := cmd.Context()
		client := login(ctx)

		t1 := time.Now()
		snapshot, err := fetchSnapshot(ctx, client, classId)
		if err != nil {
			osutil.Fatal("failed to fetch class year", err)
		}
		slog.Info("fetching time", "seconds", time.Since(t1).Seconds())

		err = writeSnapshot(ctx, exportDb, snapshot)
		if err != nil {
			osutil.Fatal("failed to write snapshot", err)
		}
		tel.ReportCount("export.courses", int64(len(snapshot.Courses)))
		slog.Info("exported class year", "class", snapshot.Class.Name, "db", exportDb)
	},
}

// writeSnapshot has closed the database by the time it returns, the caller
// may exit the process right after.
func writeSnapshot(ctx context.Context, path string, snapshot gradestore.Snapshot) error {
	database, err := gradestore.Open(path)
	if err != nil {
		return err
	}
	err = gradestore.NewStore(database).Push(ctx, snapshot)
	closeErr := database.Close()
	if err != nil {
		return errors.Join(err, closeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close %s: %w", path, closeErr)
	}
	return nil
}

// fetchSnapshot requests one page after another, the session token rotates
// on every response so requests cannot overlap.
func fetchSnapshot(ctx context.Context, client *ednevnik.Client, classId int) (gradestore.Snapshot, error) {
	classes, err := client.FetchClasses(ctx)
	if err != nil {
		return gradestore.Snapshot{}, err
	}
	snapshot := gradestore.Snapshot{Time: timezone.Now()}
	found := false
	for _, c := range classes {
		if c.Id == classId {
			snapshot.Class = c
			found = true
			break
		}
	}
	if !found {
		return gradestore.Snapshot{}, fmt.Errorf("class year %d is not one of the account's %d class years", classId, len(classes))
	}

	courses, err := client.FetchCourses(ctx, classId)
	if err != nil {
		return gradestore.Snapshot{}, err
	}
	for _, course := range courses {
		details, err := client.FetchCourseDetails(ctx, course.CourseId, course.SubId)
		if err != nil {
			return gradestore.Snapshot{}, err
		}
		snapshot.Courses = append(snapshot.Courses, gradestore.CourseSnapshot{
			Course:  course,
			Details: details,
		})
	}

	snapshot.Exams, err = client.FetchExams(ctx, classId)
	if err != nil {
		return gradestore.Snapshot{}, err
	}
	snapshot.Absences, err = client.FetchAbsences(ctx, classId)
	if err != nil {
		return gradestore.Snapshot{}, err
	}
	return snapshot, nil
}
