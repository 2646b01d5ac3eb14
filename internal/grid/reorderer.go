package grid

import (
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/colgrid/internal/models"
	"github.com/thenoetrevino/colgrid/internal/types"
)

// PositionChange is the payload of the column-position-changed notification.
// Positions are absolute indices in the column set.
type PositionChange struct {
	ColumnID         types.ColumnID
	Column           *models.ColumnDef
	OriginalPosition int
	NewPosition      int
}

// PositionChangedFunc receives a PositionChange after the deferred tick
type PositionChangedFunc func(PositionChange)

// Reorderer is the only writer of a ColumnSet's order. It validates and
// commits moves, keeps the order cache current and notifies listeners.
type Reorderer struct {
	columns   *ColumnSet
	cache     *OrderCache
	scheduler Scheduler
	refresh   func()
	listeners []PositionChangedFunc
	logger    *slog.Logger

	// notifying is set while listeners run; moves requested then are deferred
	notifying bool
}

// ReordererOption configures a Reorderer
type ReordererOption func(*Reorderer)

// WithScheduler sets the scheduler used for the deferred notification
func WithScheduler(s Scheduler) ReordererOption {
	return func(r *Reorderer) {
		r.scheduler = s
	}
}

// WithRefresh sets the render-refresh requester invoked after each commit
func WithRefresh(fn func()) ReordererOption {
	return func(r *Reorderer) {
		r.refresh = fn
	}
}

// WithLogger sets the logger used for reporting rejected moves
func WithLogger(logger *slog.Logger) ReordererOption {
	return func(r *Reorderer) {
		r.logger = logger
	}
}

// NewReorderer creates a Reorderer for set. Without WithScheduler the
// notification is deferred onto a private Queue that the caller can reach
// through Queue().
func NewReorderer(set *ColumnSet, cache *OrderCache, opts ...ReordererOption) *Reorderer {
	r := &Reorderer{
		columns: set,
		cache:   cache,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.scheduler == nil {
		r.scheduler = NewQueue()
	}
	return r
}

// Queue returns the reorderer's scheduler when it is a *Queue, else nil
func (r *Reorderer) Queue() *Queue {
	q, _ := r.scheduler.(*Queue)
	return q
}

// OnColumnPositionChanged registers fn for every committed move
func (r *Reorderer) OnColumnPositionChanged(fn PositionChangedFunc) {
	r.listeners = append(r.listeners, fn)
}

// MoveColumn moves a column using slot numbering, where slots count only the
// visible non-fixed columns. Rejected input leaves everything unchanged.
func (r *Reorderer) MoveColumn(originalSlot, finalSlot int) error {
	if r.notifying {
		r.scheduler.Defer(func() { _ = r.MoveColumn(originalSlot, finalSlot) })
		return nil
	}

	count := r.columns.MovableVisibleCount()
	if originalSlot < 0 || finalSlot < 0 || originalSlot >= count || finalSlot >= count {
		r.logger.Error("MoveColumn: invalid values for original and final position",
			"original", originalSlot, "final", finalSlot, "slots", count)
		return fmt.Errorf("move %d -> %d with %d slots: %w", originalSlot, finalSlot, count, ErrInvalidArgument)
	}

	from, err := FindLogicalIndexForVisualSlot(originalSlot, r.columns)
	if err != nil {
		return err
	}
	to, err := FindLogicalIndexForVisualSlot(finalSlot, r.columns)
	if err != nil {
		return err
	}
	return r.RedrawColumnAtPosition(from, to)
}

// RedrawColumnAtPosition moves the column at originalIndex to targetIndex
// (absolute indices). Columns in between shift one place toward the origin.
func (r *Reorderer) RedrawColumnAtPosition(originalIndex, targetIndex int) error {
	if r.notifying {
		r.scheduler.Defer(func() { _ = r.RedrawColumnAtPosition(originalIndex, targetIndex) })
		return nil
	}
	if originalIndex == targetIndex {
		return nil
	}

	n, fixed := r.columns.Len(), r.columns.FixedCount()
	if originalIndex < fixed || targetIndex < fixed || originalIndex >= n || targetIndex >= n {
		r.logger.Error("RedrawColumnAtPosition: index out of range",
			"original", originalIndex, "target", targetIndex, "columns", n, "fixed", fixed)
		return fmt.Errorf("redraw %d -> %d: %w", originalIndex, targetIndex, ErrInvalidArgument)
	}

	if !r.visibleBetween(originalIndex, targetIndex) {
		r.logger.Debug("column move skipped, no visible column in range",
			"original", originalIndex, "target", targetIndex)
		return ErrNoVisibleTarget
	}

	moved := r.columns.At(originalIndex)
	if !moved.Movable {
		r.logger.Debug("column move skipped, column not movable", "column", moved.ID)
		return ErrNotMovable
	}

	r.columns.rotate(originalIndex, targetIndex)
	r.cache.Snapshot(r.columns)
	if r.refresh != nil {
		r.refresh()
	}

	change := PositionChange{
		ColumnID:         moved.ID,
		Column:           moved.Def,
		OriginalPosition: originalIndex,
		NewPosition:      targetIndex,
	}
	r.scheduler.Defer(func() { r.notify(change) })
	return nil
}

// visibleBetween reports whether any column from the origin's neighbour
// toward target up to target itself is visible.
func (r *Reorderer) visibleBetween(originalIndex, targetIndex int) bool {
	pos := originalIndex - 1
	if originalIndex < targetIndex {
		pos = originalIndex + 1
	}
	lo, hi := min(pos, targetIndex), max(pos, targetIndex)
	for i := lo; i <= hi; i++ {
		if r.columns.At(i).Visible {
			return true
		}
	}
	return false
}

func (r *Reorderer) notify(change PositionChange) {
	r.notifying = true
	defer func() { r.notifying = false }()

	for _, fn := range r.listeners {
		fn(change)
	}
}
