// Package cmd wires colgrid's commands into one cobra tree
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/colgrid/internal/cli/columns"
	"github.com/thenoetrevino/colgrid/internal/cli/settings"
	"github.com/thenoetrevino/colgrid/internal/cli/styles"
	"github.com/thenoetrevino/colgrid/internal/config"
	"github.com/thenoetrevino/colgrid/internal/logging"
	"github.com/thenoetrevino/colgrid/internal/tui/theme"
)

var rootCmd = &cobra.Command{
	Use:   "colgrid",
	Short: "Colgrid - a terminal data grid with draggable columns",
	Long: `Colgrid opens CSV and TSV files as a grid in the terminal. Columns can be
dragged with the mouse or moved from the command line, and the order is
remembered per grid.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.AddCommand(viewCmd())
	rootCmd.AddCommand(columns.ListCmd())
	rootCmd.AddCommand(columns.MoveCmd())
	rootCmd.AddCommand(columns.ResetCmd())
	rootCmd.AddCommand(columns.LayoutsCmd())
	rootCmd.AddCommand(settings.ConfigCmd())
}

// setup applies the logging level and color scheme from the config file
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logging.Init(cfg.Logging.Level); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	styles.Init(cfg.ColorScheme)
	theme.Init(cfg.ColorScheme)
	return nil
}

// Execute runs the command tree
func Execute() error {
	return rootCmd.Execute()
}
