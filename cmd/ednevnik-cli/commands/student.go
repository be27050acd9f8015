package commands

import (
	"ednevnik/pkg/ednevnik"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(notesCmd)
}

var infoCmd = classCommand(
	"info",
	"Prints the personal data recorded for a class year.",
	func(cmd *cobra.Command, classId int) (ednevnik.StudentInfo, error) {
		return login(cmd.Context()).FetchStudentInfo(cmd.Context(), classId)
	},
	func(info ednevnik.StudentInfo) table.Writer {
		t := newTable(table.Row{"Field", "Value"})
		values := []string{
			info.Ordinal,
			info.FullName,
			info.OIB,
			info.DateOfBirth,
			info.PlaceOfBirth,
			info.MOIB,
			info.Address,
			info.Program,
		}
		for i, field := range ednevnik.StudentInfoFields {
			t.AppendRow(table.Row{field, values[i]})
		}
		return t
	},
)

var notesCmd = classCommand(
	"notes",
	"Prints the class master's notes, activities and pedagogical measures.",
	func(cmd *cobra.Command, classId int) (ednevnik.StudentNotes, error) {
		return login(cmd.Context()).FetchStudentNotes(cmd.Context(), classId)
	},
	func(notes ednevnik.StudentNotes) table.Writer {
		t := newTable(table.Row{"Section", "Value"})
		t.AppendRow(table.Row{"Class master notes", orDash(notes.ClassmasterNotes)})
		t.AppendRow(table.Row{"Extracurricular activities", orDash(notes.ExtracurricularActivities)})
		t.AppendRow(table.Row{"Out of school activities", orDash(notes.OutOfSchoolActivities)})
		t.AppendRow(table.Row{"Manners", notes.Manners})
		for _, m := range notes.PedagogicalMeasures {
			t.AppendRow(table.Row{"Pedagogical measure", m.Date + " " + m.Type + ": " + m.Info})
		}
		return t
	},
)
