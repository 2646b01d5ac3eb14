package columns

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/colgrid/internal/cli"
	"github.com/thenoetrevino/colgrid/internal/cli/styles"
)

// LayoutSummary describes one saved layout
type LayoutSummary struct {
	Grid      string   `json:"grid"`
	Source    string   `json:"source"`
	Columns   []string `json:"columns"`
	UpdatedAt string   `json:"updated_at"`
}

// LayoutList is the result of the layouts command
type LayoutList []LayoutSummary

func (l LayoutList) QuietString() string {
	names := make([]string, len(l))
	for i, s := range l {
		names[i] = s.Grid
	}
	return strings.Join(names, "\n")
}

func (l LayoutList) HumanString() string {
	if len(l) == 0 {
		return styles.SubtitleStyle.Render("No saved layouts")
	}
	lines := make([]string, len(l))
	for i, s := range l {
		lines[i] = fmt.Sprintf("%s %s\n   %s",
			styles.TitleStyle.Render(s.Grid),
			styles.SubtitleStyle.Render(s.Source),
			styles.ValueStyle.Render(strings.Join(s.Columns, " | ")))
	}
	return strings.Join(lines, "\n")
}

// LayoutsCmd returns the layouts command
func LayoutsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layouts",
		Short: "List saved column orders",
		Long: `List every grid with a saved column order.

Examples:
  colgrid layouts
  colgrid layouts --json
`,
		Args: cobra.NoArgs,
		RunE: runLayouts,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (grid names only)")
	return cmd
}

func runLayouts(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := formatterFor(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer closeCLI(cliInstance)

	layouts, err := cliInstance.App.LayoutService.ListLayouts(ctx)
	if err != nil {
		return cli.Fail(formatter, cli.ExitError, "LIST_ERROR", err, "")
	}

	list := make(LayoutList, 0, len(layouts))
	for _, l := range layouts {
		cols := make([]string, len(l.ColumnIDs))
		for i, id := range l.ColumnIDs {
			cols[i] = string(id)
		}
		list = append(list, LayoutSummary{
			Grid:      string(l.GridName),
			Source:    l.Source,
			Columns:   cols,
			UpdatedAt: l.UpdatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return formatter.Success(list)
}
