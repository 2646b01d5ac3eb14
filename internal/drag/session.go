package drag

import (
	"log/slog"

	"github.com/thenoetrevino/colgrid/internal/grid"
	"github.com/thenoetrevino/colgrid/internal/types"
)

// DefaultScrollMultiplier scales the pointer delta into an edge-scroll request
const DefaultScrollMultiplier = 8

// Phase is the state of a drag Session.
type Phase int

const (
	Idle      Phase = iota // No pointer interaction
	Armed                  // Pointer is down, nothing has moved yet
	Dragging               // At least one move, proxy is shown
	Committed              // Released after moving, move handed to the reorderer
	Cancelled              // Released without moving (a plain click)
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Armed:
		return "armed"
	case Dragging:
		return "dragging"
	case Committed:
		return "committed"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// State is the transient data of one drag. It is never shared between sessions.
type State struct {
	OriginX   int // Pointer x at pointer-down
	PreviousX int // Pointer x the next delta is measured from

	// PointerMovement is the raw pointer travel since pointer-down
	PointerMovement int
	// TotalMovement is the displacement used to resolve the target: pointer
	// travel clamped at the grid's left edge plus any scroll since pointer-down
	TotalMovement int

	ScrollAtDown int
	MoveOccurred bool
	ProxyCreated bool
	TargetIndex  int

	ProxyOffset  int // Relative to the viewport's left edge
	ProxyWidth   int // May be clipped when the cell overflows the viewport
	NaturalWidth int // Unclipped header cell width

	GridLeft       int
	RightMoveLimit int
	LeftMoveLimit  int
}

// Session is the drag state machine of one movable header cell.
type Session struct {
	columnID         types.ColumnID
	columns          *grid.ColumnSet
	committer        Committer
	env              Env
	rtl              bool
	scrollMultiplier int
	logger           *slog.Logger

	phase Phase
	state State
	last  Phase
}

// Options configure sessions created by a Controller
type Options struct {
	RTL              bool
	ScrollMultiplier int
	Logger           *slog.Logger
}

// NewSession creates an idle session for the header cell of columnID
func NewSession(columnID types.ColumnID, columns *grid.ColumnSet, committer Committer, env Env, opts Options) *Session {
	s := &Session{
		columnID:         columnID,
		columns:          columns,
		committer:        committer,
		env:              env,
		rtl:              opts.RTL,
		scrollMultiplier: opts.ScrollMultiplier,
		logger:           opts.Logger,
	}
	if s.scrollMultiplier <= 0 {
		s.scrollMultiplier = DefaultScrollMultiplier
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// ColumnID returns the column this session drags
func (s *Session) ColumnID() types.ColumnID {
	return s.columnID
}

// Phase returns the current phase
func (s *Session) Phase() Phase {
	return s.phase
}

// State returns a copy of the drag state
func (s *Session) State() State {
	return s.state
}

// LastOutcome returns how the most recent drag ended: Committed, Cancelled,
// or Idle when it was torn down or never ran
func (s *Session) LastOutcome() Phase {
	return s.last
}

// Open reports whether the session is armed or dragging
func (s *Session) Open() bool {
	return s.phase == Armed || s.phase == Dragging
}

// Down arms the session at pointer x. Ignored unless idle.
func (s *Session) Down(x int) bool {
	if s.phase != Idle {
		return false
	}

	vp := s.env.Viewport
	gridLeft := vp.Left()
	if vp.HasLeftContainer() {
		gridLeft += vp.LeftContainerWidth()
	}

	s.state = State{
		OriginX:        x,
		PreviousX:      x,
		ScrollAtDown:   vp.ScrollLeft(),
		GridLeft:       gridLeft,
		RightMoveLimit: gridLeft + vp.Width(),
		LeftMoveLimit:  x - gridLeft,
		TargetIndex:    s.columns.IndexOf(s.columnID),
	}
	s.phase = Armed
	return true
}

// Move feeds a pointer position. The first non-zero move only brings up the
// proxy; displacement is tracked from the following moves.
func (s *Session) Move(x int) {
	if !s.Open() {
		return
	}
	change := x - s.state.PreviousX
	if change == 0 {
		return
	}
	s.state.MoveOccurred = true

	if !s.state.ProxyCreated {
		s.createProxy()
		s.phase = Dragging
		return
	}
	s.moveProxy(change)
	s.state.PreviousX = x
}

// Up releases the pointer and ends the drag. It returns Committed when the
// column was dragged (whether or not the resolved target differs) and
// Cancelled for a plain click. err is whatever the reorderer reported.
func (s *Session) Up(x int) (Phase, error) {
	if !s.Open() {
		return Idle, nil
	}
	s.releaseProxy()

	if !s.state.MoveOccurred {
		s.finish(Cancelled)
		return Cancelled, nil
	}

	var err error
	origin := s.columns.IndexOf(s.columnID)
	if target, ok := grid.ResolveTargetFromDisplacement(origin, s.state.TotalMovement, s.columns, s.rtl); ok {
		err = s.committer.RedrawColumnAtPosition(origin, target)
		s.logger.Debug("column drag released",
			"column", s.columnID, "origin", origin, "target", target,
			"movement", s.state.TotalMovement, "pointer_x", x, "error", err)
	}
	s.finish(Committed)
	return Committed, err
}

// Teardown abandons any drag in progress without committing
func (s *Session) Teardown() {
	s.releaseProxy()
	s.finish(Idle)
}

// finish records the terminal phase and returns the session to Idle
func (s *Session) finish(outcome Phase) {
	s.last = outcome
	s.state = State{}
	s.phase = Idle
}

func (s *Session) releaseProxy() {
	if s.state.ProxyCreated {
		s.env.Proxy.Destroy()
		s.state.ProxyCreated = false
	}
}

func (s *Session) createProxy() {
	left, right, ok := s.env.Viewport.CellBounds(s.columnID)
	if !ok {
		left, right = 0, 0
	}
	width := right - left
	s.state.NaturalWidth = width

	// Clip the proxy when the cell overflows the viewport's right edge
	if vw := s.env.Viewport.Width(); right > vw {
		width += vw - right
	}

	s.state.ProxyOffset = left
	s.state.ProxyWidth = max(width, 0)
	s.state.ProxyCreated = true
	s.env.Proxy.Create(s.columnID, s.state.ProxyOffset, s.state.ProxyWidth)
}

func (s *Session) moveProxy(change int) {
	st := &s.state
	vp := s.env.Viewport
	viewWidth := vp.Width()

	st.PointerMovement += change
	outOfBounds := st.PointerMovement <= -st.LeftMoveLimit

	newOffset := st.ProxyOffset + change
	atLeft := newOffset < 0
	atRight := newOffset+st.ProxyWidth > viewWidth

	switch {
	case outOfBounds:
		st.ProxyOffset = 0
	case !atLeft && !atRight:
		st.ProxyOffset = newOffset
	default:
		st.ProxyOffset = min(max(newOffset, 0), max(viewWidth-st.ProxyWidth, 0))
		if s.columns.TotalVisibleWidth() > viewWidth {
			s.env.Scroller.RequestScroll(change * s.scrollMultiplier)
		}
	}

	pointer := st.PointerMovement
	if outOfBounds {
		pointer = -st.LeftMoveLimit
	}
	st.TotalMovement = pointer + vp.ScrollLeft() - st.ScrollAtDown

	// A proxy clipped at the right edge grows back as it moves
	if st.ProxyWidth < st.NaturalWidth {
		st.ProxyWidth = min(st.ProxyWidth+abs(change), st.NaturalWidth)
	}

	origin := s.columns.IndexOf(s.columnID)
	st.TargetIndex = origin
	if target, ok := grid.ResolveTargetFromDisplacement(origin, st.TotalMovement, s.columns, s.rtl); ok {
		st.TargetIndex = target
	}
	s.env.Proxy.Update(st.ProxyOffset, st.ProxyWidth, st.TargetIndex)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
