package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/thenoetrevino/colgrid/internal/dataset"
	"github.com/thenoetrevino/colgrid/internal/grid"
	"github.com/thenoetrevino/colgrid/internal/models"
	"github.com/thenoetrevino/colgrid/internal/services/layout"
	"github.com/thenoetrevino/colgrid/internal/types"
)

// maxSettleRounds bounds Settle when listeners keep deferring work
const maxSettleRounds = 64

// OpenRequest describes a file to open as a grid
type OpenRequest struct {
	Path     string
	GridName types.GridName // Empty derives the name from the file name
	RTL      *bool          // Overrides the configured direction when set
}

// Workspace is an opened file: its rows, the grid built from it and the
// queue that carries the grid's deferred notifications.
type Workspace struct {
	Name     types.GridName
	Path     string
	Dataset  *dataset.Dataset
	Grid     *grid.Grid
	Queue    *grid.Queue
	Restored bool // A stored order was applied on open

	app     *App
	saveErr error
}

// Open loads req.Path, builds its grid and attaches the stored layout
func (a *App) Open(ctx context.Context, req OpenRequest, ropts ...grid.ReordererOption) (*Workspace, error) {
	ws := &Workspace{Name: req.GridName, Path: req.Path, Queue: grid.NewQueue(), app: a}
	if ws.Name == "" {
		ws.Name = dataset.GridNameFor(req.Path)
	}

	ds, err := a.loadDataset(ws.Name, req.Path)
	if err != nil {
		return nil, err
	}
	ws.Dataset = ds

	opts := a.Config.Grid.Options()
	if req.RTL != nil {
		opts.RTL = *req.RTL
	}

	ropts = append([]grid.ReordererOption{grid.WithScheduler(ws.Queue), grid.WithLogger(a.logger)}, ropts...)
	g, err := grid.New(ds.Columns, opts, ropts...)
	if err != nil {
		return nil, err
	}
	ws.Grid = g

	if ws.Restored, err = a.LayoutService.Attach(ctx, ws.Name, req.Path, g,
		layout.WithSaveErrorHandler(func(err error) { ws.saveErr = err })); err != nil {
		return nil, fmt.Errorf("failed to attach layout: %w", err)
	}
	a.logger.Info("grid opened", "grid", ws.Name, "path", req.Path,
		"columns", len(ds.Columns), "rows", len(ds.Rows), "restored", ws.Restored)
	return ws, nil
}

func (a *App) loadDataset(name types.GridName, path string) (*dataset.Dataset, error) {
	ds, err := dataset.Load(path, a.Config.Grid.LoadOptions())
	if err != nil {
		return nil, err
	}
	if err := ds.ApplyOverrides(a.Config.ColumnOverrides(string(name))); err != nil {
		if !errors.Is(err, dataset.ErrUnknownOverride) {
			return nil, err
		}
		a.logger.Warn("ignoring column overrides", "grid", name, "error", err)
	}
	return ds, nil
}

// Settle drains the deferred queue until it is empty
func (ws *Workspace) Settle() int {
	ran := 0
	for i := 0; i < maxSettleRounds && ws.Queue.Pending() > 0; i++ {
		ran += ws.Queue.Drain()
	}
	if n := ws.Queue.Pending(); n > 0 {
		ws.app.logger.Warn("deferred work still pending", "grid", ws.Name, "tasks", n)
	}
	return ran
}

// TakeSaveError returns the last failure to save a moved order since the
// previous call, and clears it
func (ws *Workspace) TakeSaveError() error {
	err := ws.saveErr
	ws.saveErr = nil
	return err
}

// Reload re-reads the file and rebuilds the grid from the fresh definitions.
// Visibility toggled in this session survives unless the file's overrides
// set it. Reports whether the cached order had to be re-applied.
func (ws *Workspace) Reload() (bool, error) {
	ds, err := ws.app.loadDataset(ws.Name, ws.Path)
	if err != nil {
		return false, err
	}

	previous := make(map[string]*bool)
	for _, def := range ws.Grid.Definitions() {
		previous[def.Name] = def.Visible
	}
	for i := range ds.Columns {
		if ds.Columns[i].Visible == nil {
			if v := previous[ds.Columns[i].Name]; v != nil {
				ds.Columns[i].Visible = models.BoolPtr(*v)
			}
		}
	}

	ws.Dataset = ds
	return ws.Grid.Rebuild(ds.Columns)
}

// ShowAll makes every column visible
func (ws *Workspace) ShowAll() error {
	defs := ws.Grid.Definitions()
	for i := range defs {
		defs[i].Visible = nil
	}
	_, err := ws.Grid.Rebuild(defs)
	return err
}

// Reset forgets any stored order and returns the grid to file order
func (ws *Workspace) Reset(ctx context.Context) error {
	if err := ws.app.LayoutService.Reset(ctx, ws.Name); err != nil && !errors.Is(err, layout.ErrLayoutNotFound) {
		return err
	}
	ws.Grid.Cache().Restore(nil)
	_, err := ws.Grid.Rebuild(ws.Grid.Definitions())
	return err
}
