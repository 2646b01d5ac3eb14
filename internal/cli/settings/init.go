// Package settings holds the commands that manage the config file
package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/colgrid/internal/cli"
	"github.com/thenoetrevino/colgrid/internal/cli/styles"
	"github.com/thenoetrevino/colgrid/internal/config"
)

// ConfigCmd returns the config command group
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the colgrid config file",
	}
	cmd.AddCommand(InitCmd())
	return cmd
}

// InitCmd returns the config init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Long: `Write the default grid, key mapping and theme settings to the config file
so they can be edited.

Examples:
  colgrid config init
  colgrid config init --force
`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (path only)")
	return cmd
}

// InitResult is the result of the config init command
type InitResult struct {
	Path string `json:"path"`
}

func (r InitResult) QuietString() string {
	return r.Path
}

func (r InitResult) HumanString() string {
	return styles.SuccessStyle.Render("Wrote default config to " + r.Path)
}

func runInit(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	force, _ := cmd.Flags().GetBool("force")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode, Out: cmd.OutOrStdout(), ErrOut: cmd.ErrOrStderr()}

	path, err := config.Path()
	if err != nil {
		return cli.Fail(formatter, cli.ExitError, "CONFIG_PATH_ERROR", err, "Set XDG_CONFIG_HOME")
	}

	if _, err := os.Stat(path); err == nil && !force {
		return cli.Fail(formatter, cli.ExitValidation, "CONFIG_EXISTS",
			fmt.Errorf("config file %s already exists", path), "Pass --force to overwrite it")
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return cli.Fail(formatter, cli.ExitError, "CONFIG_WRITE_ERROR", err, "")
	}

	if err := config.Default().Save(); err != nil {
		return cli.Fail(formatter, cli.ExitError, "CONFIG_WRITE_ERROR", err, "Check that the config directory is writable")
	}

	return formatter.Success(InitResult{Path: path})
}
