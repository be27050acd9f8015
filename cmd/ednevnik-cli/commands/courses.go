package commands

import (
	"ednevnik/lib/osutil"
	"ednevnik/pkg/ednevnik"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(detailsCmd)
}

var coursesCmd = classCommand(
	"courses",
	"Lists the courses of a class year.",
	func(cmd *cobra.Command, classId int) ([]ednevnik.Course, error) {
		return login(cmd.Context()).FetchCourses(cmd.Context(), classId)
	},
	func(courses []ednevnik.Course) table.Writer {
		t := newTable(table.Row{"Course", "Sub", "Name", "Teachers"})
		for _, c := range courses {
			t.AppendRow(table.Row{c.CourseId, c.SubId, c.Name, c.Info})
		}
		return t
	},
)

var detailsCmd = &cobra.Command{
	Use:   "details <course_id> <sub_id>",
	Short: "Prints the grades and notes of a course.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ids := intArgs(args)
		client := login(cmd.Context())
		details, err := client.FetchCourseDetails(cmd.Context(), ids[0], ids[1])
		if err != nil {
			osutil.Fatal("failed to fetch course details", err)
		}
		if jsonOutput {
			printJson(details)
			return
		}

		grades := newTable(table.Row{"Grade", "Note", "Date"})
		for _, g := range details.Grades {
			grades.AppendRow(table.Row{g.Grade, g.Info, g.Date})
		}
		grades.Render()

		notes := newTable(table.Row{"Date", "Note"})
		for _, n := range details.Notes {
			notes.AppendRow(table.Row{n.Date, n.Info})
		}
		notes.Render()
	},
}
