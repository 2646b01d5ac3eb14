package columns

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/colgrid/internal/cli"
	"github.com/thenoetrevino/colgrid/internal/grid"
	"github.com/thenoetrevino/colgrid/internal/types"
)

// MoveCmd returns the move command
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move FILE FROM TO",
		Short: "Move a column to another slot and save the order",
		Long: `Move a column of a data file and save the resulting order.

FROM and TO are zero-based slots counting only visible data columns (see
"colgrid columns"). FROM may also be a column id. Put "--" before the
slots when one is negative, or it is read as a flag.

Examples:
  # Move the first column to the third slot
  colgrid move people.csv 0 2

  # Move by column id
  colgrid move people.csv city 0

  # JSON output for agents
  colgrid move people.csv 0 2 --json

  # Quiet mode (new order, comma separated)
  colgrid move people.csv 0 2 --quiet
`,
		Args: cobra.ExactArgs(3),
		RunE: runMove,
	}

	addOutputFlags(cmd, "Minimal output (new order only)")
	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	formatter := formatterFor(cmd)

	cliInstance, ws, err := openWorkspace(cmd, formatter, args[0])
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	set := ws.Grid.Columns()
	from, err := resolveSlot(set, "FROM", args[1])
	if err != nil {
		return failSlot(formatter, err)
	}
	to, err := cli.ParseSlot("TO", args[2])
	if err != nil {
		return cli.Fail(formatter, cli.ExitUsage, "INVALID_ARGUMENT", err, "")
	}

	before := describe(set)
	moving := columnAtSlot(before, from)

	if err := ws.Grid.MoveColumn(from, to); err != nil {
		return failMove(formatter, err, set.MovableVisibleCount())
	}
	// Runs the deferred notification, which saves the order
	ws.Settle()
	if err := ws.TakeSaveError(); err != nil {
		return cli.Fail(formatter, cli.ExitError, "PERSIST_ERROR", err, "Check that the layout database is writable")
	}

	return formatter.Success(MoveResult{
		Grid:   string(ws.Name),
		Column: moving,
		From:   from,
		To:     to,
		Moved:  from != to,
		Order:  visibleIDs(describe(set)),
	})
}

var errUnknownColumn = errors.New("unknown column")

// resolveSlot accepts a slot number or the id of a visible data column
func resolveSlot(set *grid.ColumnSet, name, arg string) (int, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		return n, nil
	}
	for _, info := range describe(set) {
		if info.ID == arg && info.Slot != nil {
			return *info.Slot, nil
		}
	}
	if set.IndexOf(types.ColumnID(arg)) >= 0 {
		return 0, fmt.Errorf("%s: column %q is hidden or fixed: %w", name, arg, grid.ErrInvalidArgument)
	}
	return 0, fmt.Errorf("%s: %q: %w", name, arg, errUnknownColumn)
}

func columnAtSlot(infos []ColumnInfo, slot int) string {
	for _, info := range infos {
		if info.Slot != nil && *info.Slot == slot {
			return info.ID
		}
	}
	return ""
}

func failSlot(formatter *cli.OutputFormatter, err error) error {
	if errors.Is(err, errUnknownColumn) {
		return cli.Fail(formatter, cli.ExitNotFound, "COLUMN_NOT_FOUND", err, `List columns with "colgrid columns FILE"`)
	}
	return cli.Fail(formatter, cli.ExitValidation, "INVALID_SLOT", err, "")
}

func failMove(formatter *cli.OutputFormatter, err error, slots int) error {
	switch {
	case errors.Is(err, grid.ErrInvalidArgument):
		return cli.Fail(formatter, cli.ExitValidation, "INVALID_SLOT", err,
			fmt.Sprintf("Slots run from 0 to %d", slots-1))
	case errors.Is(err, grid.ErrNotMovable):
		return cli.Fail(formatter, cli.ExitValidation, "NOT_MOVABLE", err,
			"Set enable_column_moving for the column in the config file")
	case errors.Is(err, grid.ErrNoVisibleTarget):
		return cli.Fail(formatter, cli.ExitValidation, "NO_VISIBLE_TARGET", err, "")
	}
	return cli.Fail(formatter, cli.ExitError, "MOVE_ERROR", err, "")
}
