package columns

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/colgrid/internal/cli"
	"github.com/thenoetrevino/colgrid/internal/dataset"
	"github.com/thenoetrevino/colgrid/internal/services/layout"
	"github.com/thenoetrevino/colgrid/internal/types"
)

// ResetCmd returns the reset command
func ResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset FILE",
		Short: "Forget the saved column order of a data file",
		Long: `Delete the saved column order so the file opens in its own column order.

Examples:
  colgrid reset people.csv
  colgrid reset people.csv --grid people-2024
`,
		Args: cobra.ExactArgs(1),
		RunE: runReset,
	}

	addOutputFlags(cmd, "Minimal output (grid name only)")
	return cmd
}

func runReset(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := formatterFor(cmd)

	name, _ := cmd.Flags().GetString("grid")
	if name == "" {
		name = string(dataset.GridNameFor(args[0]))
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer closeCLI(cliInstance)

	if err := cliInstance.App.LayoutService.Reset(ctx, types.GridName(name)); err != nil {
		if errors.Is(err, layout.ErrLayoutNotFound) {
			return cli.Fail(formatter, cli.ExitNotFound, "LAYOUT_NOT_FOUND", err, `List saved layouts with "colgrid layouts"`)
		}
		return cli.Fail(formatter, cli.ExitError, "RESET_ERROR", err, "")
	}

	return formatter.Success(ResetResult{Grid: name})
}
