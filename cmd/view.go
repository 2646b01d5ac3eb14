package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/colgrid/internal/app"
	"github.com/thenoetrevino/colgrid/internal/cli"
	"github.com/thenoetrevino/colgrid/internal/launcher"
	"github.com/thenoetrevino/colgrid/internal/types"
)

func viewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view FILE",
		Short: "Open a data file in the interactive grid",
		Long: `Open a data file in the interactive grid. Drag a header cell to move its
column; the new order is saved when the move completes.

Examples:
  colgrid view people.csv

  # Share one saved order between files
  colgrid view march.csv --grid sales

  # Right-to-left layout
  colgrid view people.csv --rtl
`,
		Args: cobra.ExactArgs(1),
		RunE: runView,
	}

	cmd.Flags().String("grid", "", "Grid name (defaults to the file name without extension)")
	cmd.Flags().Bool("rtl", false, "Lay the grid out right to left")
	return cmd
}

func runView(cmd *cobra.Command, args []string) error {
	formatter := &cli.OutputFormatter{Out: cmd.OutOrStdout(), ErrOut: cmd.ErrOrStderr()}

	name, _ := cmd.Flags().GetString("grid")
	req := app.OpenRequest{Path: args[0], GridName: types.GridName(name)}
	if cmd.Flags().Changed("rtl") {
		rtl, _ := cmd.Flags().GetBool("rtl")
		req.RTL = &rtl
	}

	if err := launcher.Launch(cmd.Context(), req); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cli.Fail(formatter, cli.ExitNotFound, "FILE_NOT_FOUND", err, "Check the path of the data file")
		}
		return cli.Fail(formatter, cli.ExitError, "VIEW_ERROR", err, "")
	}
	return nil
}
