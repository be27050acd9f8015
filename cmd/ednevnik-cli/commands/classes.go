package commands

import (
	"ednevnik/lib/osutil"
	"ednevnik/pkg/ednevnik"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(classesCmd)
}

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "Lists the class years of the account.",
	Run: func(cmd *cobra.Command, args []string) {
		client := login(cmd.Context())
		classes, err := client.FetchClasses(cmd.Context())
		if err != nil {
			osutil.Fatal("failed to fetch classes", err)
		}
		render(classes, func(classes []ednevnik.ClassYear) table.Writer {
			t := newTable(table.Row{"Id", "Class", "Info", "Average"})
			for _, c := range classes {
				t.AppendRow(table.Row{c.Id, c.Name, c.Info, c.Average})
			}
			return t
		})
	},
}
