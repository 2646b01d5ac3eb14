// Package columns implements the headless column commands: list the
// effective order, move a column, forget a saved order.
package columns

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/colgrid/internal/app"
	"github.com/thenoetrevino/colgrid/internal/cli"
	"github.com/thenoetrevino/colgrid/internal/types"
)

// addOutputFlags registers the agent-friendly flags shared by every command
func addOutputFlags(cmd *cobra.Command, quietHelp string) {
	cmd.Flags().String("grid", "", "Grid name (defaults to the file name without extension)")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, quietHelp)
}

func formatterFor(cmd *cobra.Command) *cli.OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode, Out: cmd.OutOrStdout(), ErrOut: cmd.ErrOrStderr()}
}

// openWorkspace initializes the CLI and opens path as a grid. On success the
// caller must close the returned CLI.
func openWorkspace(cmd *cobra.Command, formatter *cli.OutputFormatter, path string) (*cli.CLI, *app.Workspace, error) {
	ctx := cmd.Context()

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, nil, cli.Fail(formatter, cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}

	name, _ := cmd.Flags().GetString("grid")
	ws, err := cliInstance.App.Open(ctx, app.OpenRequest{Path: path, GridName: types.GridName(name)})
	if err != nil {
		closeCLI(cliInstance)
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, cli.Fail(formatter, cli.ExitNotFound, "FILE_NOT_FOUND", err, "Check the path of the data file")
		}
		return nil, nil, cli.Fail(formatter, cli.ExitDataErr, "DATA_ERROR", err, "")
	}
	return cliInstance, ws, nil
}

func closeCLI(c *cli.CLI) {
	if err := c.Close(); err != nil {
		slog.Error("failed to close CLI", "error", err)
	}
}
