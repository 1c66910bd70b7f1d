// Package view ties a matrix file to a drawing surface.
//
// A Viewer loads its matrix once, when it is created, and draws it
// on every call to Render. Load failures are logged and leave the
// Viewer empty rather than failing: an empty Viewer has side 0 and
// renders nothing, so a host window can still be shown.
package view

import (
	"errors"
	"image"
	"io"

	"github.com/heatmatrix/viewmatrix/matrix"
	"github.com/heatmatrix/viewmatrix/runlen"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// A Viewer displays one matrix.
// Its methods may be called concurrently.
type Viewer struct {
	grid *matrix.Grid
	err  error
	log  zerolog.Logger
}

// An Option configures a Viewer.
type Option func(*Viewer)

// WithLogger sets the logger for load diagnostics.
// The default is the global zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(v *Viewer) {
		v.log = l
	}
}

func newViewer(opts []Option) *Viewer {
	v := &Viewer{log: log.Logger}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// New returns a Viewer for the named matrix file.
func New(name string, opts ...Option) *Viewer {
	v := newViewer(opts)
	g, err := matrix.Open(name)
	v.loaded(name, g, err)
	return v
}

// FromReader returns a Viewer for the matrix read from r.
func FromReader(r io.Reader, opts ...Option) *Viewer {
	v := newViewer(opts)
	g, err := matrix.Load(r)
	v.loaded("", g, err)
	return v
}

func (v *Viewer) loaded(name string, g *matrix.Grid, err error) {
	if err != nil {
		v.err = err
		l := v.log.Error().Err(err)
		if name != "" {
			l = l.Str("path", name)
		}
		if errors.Is(err, matrix.ErrSourceNotFound) {
			l.Msg("could not open matrix file")
		} else {
			l.Msg("could not read matrix")
		}
		return
	}
	v.grid = g
	l := v.log.Debug()
	if name != "" {
		l = l.Str("path", name)
	}
	l.Int("size", g.SourceSize()).
		Int("step", g.Step()).
		Int("side", g.Side()).
		Msg("loaded matrix")
}

// Err returns the error that kept the matrix from loading, if any.
func (v *Viewer) Err() error {
	return v.err
}

// Grid returns the loaded grid, or nil.
func (v *Viewer) Grid() *matrix.Grid {
	return v.grid
}

// Side returns the side of the displayed grid in pixels.
func (v *Viewer) Side() int {
	return v.grid.Side()
}

// Size returns the preferred display size, Side by Side pixels.
func (v *Viewer) Size() image.Point {
	return image.Pt(v.Side(), v.Side())
}

// Render draws the matrix on s and returns the number of fills issued.
func (v *Viewer) Render(s runlen.Surface) int {
	return runlen.Render(s, v.grid)
}
