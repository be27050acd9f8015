package commands

import (
	"ednevnik/pkg/ednevnik"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(examsCmd)
	rootCmd.AddCommand(absencesCmd)
}

var examsCmd = classCommand(
	"exams",
	"Lists the scheduled exams of a class year.",
	func(cmd *cobra.Command, classId int) ([]ednevnik.Exam, error) {
		return login(cmd.Context()).FetchExams(cmd.Context(), classId)
	},
	func(exams []ednevnik.Exam) table.Writer {
		t := newTable(table.Row{"Date", "Course", "Info"})
		for _, e := range exams {
			t.AppendRow(table.Row{e.Date, e.Course, e.Info})
		}
		return t
	},
)

var absencesCmd = classCommand(
	"absences",
	"Lists the absences of a class year.",
	func(cmd *cobra.Command, classId int) ([]ednevnik.Absence, error) {
		return login(cmd.Context()).FetchAbsences(cmd.Context(), classId)
	},
	func(absences []ednevnik.Absence) table.Writer {
		t := newTable(table.Row{"Date", "Period", "Course", "Status", "Reason"})
		for _, a := range absences {
			t.AppendRow(table.Row{a.Date, a.Period, a.Course, a.Status, a.Reason})
		}
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 1, AutoMerge: true},
		})
		return t
	},
)
