package commands

import (
	"encoding/json"
	"os"
	"strconv"

	"ednevnik/lib/osutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newTable(header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(header)
	return t
}

func printJson(v any) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	err := encoder.Encode(v)
	if err != nil {
		osutil.Fatal("failed to encode json", err)
	}
}

// render prints v as json when --json is set, otherwise it prints the table
// built by toTable.
func render[T any](v T, toTable func(T) table.Writer) {
	if jsonOutput {
		printJson(v)
		return
	}
	toTable(v).Render()
}

func intArgs(args []string) []int {
	out := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			osutil.Fatal("arguments must be numeric ids", err)
		}
		out[i] = n
	}
	return out
}

func orDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

// classCommand builds a command that takes a class year id, logs in and
// prints what fetch returns.
func classCommand[T any](
	use, short string,
	fetch func(cmd *cobra.Command, classId int) (T, error),
	toTable func(T) table.Writer,
) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <class_id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			classId := intArgs(args)[0]
			out, err := fetch(cmd, classId)
			if err != nil {
				osutil.Fatal("failed to fetch "+use, err)
			}
			render(out, toTable)
		},
	}
}
