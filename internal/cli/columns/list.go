package columns

import (
	"github.com/spf13/cobra"
)

// ListCmd returns the columns command
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "columns FILE",
		Short: "List the effective column order of a data file",
		Long: `List the columns of a data file in their effective order, after any
saved order has been applied. Visible data columns are numbered by slot;
slots are what "colgrid move" takes.

Examples:
  # Human-readable list
  colgrid columns people.csv

  # JSON output for agents
  colgrid columns people.csv --json

  # Quiet mode (one column id per line, slot order)
  colgrid columns people.csv --quiet
`,
		Args: cobra.ExactArgs(1),
		RunE: runList,
	}

	addOutputFlags(cmd, "Minimal output (column ids only)")
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	formatter := formatterFor(cmd)

	cliInstance, ws, err := openWorkspace(cmd, formatter, args[0])
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	return formatter.Success(ColumnList{
		Grid:     string(ws.Name),
		Restored: ws.Restored,
		Columns:  describe(ws.Grid.Columns()),
	})
}
