// Package runlen draws a matrix.Grid as horizontal runs of color.
//
// Each row is split into maximal runs of identical adjacent cells and each
// run is drawn with a single one-pixel-high fill, so a row costs one draw
// call per color transition rather than one per cell.
package runlen

import "github.com/heatmatrix/viewmatrix/matrix"

// A Surface is something runs can be drawn on.
type Surface interface {
	// SetColor sets the color used by subsequent calls to HLine.
	SetColor(c matrix.Color)

	// HLine fills the one-pixel-high span of row from column x0
	// through column x1 inclusive.
	HLine(row, x0, x1 int)
}

// A Run is a maximal span of same-colored cells in one row.
// X0 and X1 are inclusive.
type Run struct {
	Row    int
	X0, X1 int
	Color  matrix.Color
}

// Len returns the number of cells in r.
func (r Run) Len() int {
	return r.X1 - r.X0 + 1
}

// Scan calls fn for each run of g, in row order and left to right within
// a row. The runs of a row cover all of its columns exactly once.
// An empty or nil grid has no runs.
func Scan(g *matrix.Grid, fn func(Run)) {
	n := g.Side()
	for i := 0; i < n; i++ {
		row := g.Row(i)
		start := 0
		for j := 1; j < n; j++ {
			if row[j] != row[start] {
				fn(Run{Row: i, X0: start, X1: j - 1, Color: row[start]})
				start = j
			}
		}
		fn(Run{Row: i, X0: start, X1: n - 1, Color: row[start]})
	}
}

// Runs returns all the runs of g.
func Runs(g *matrix.Grid) []Run {
	var runs []Run
	Scan(g, func(r Run) {
		runs = append(runs, r)
	})
	return runs
}

// Render draws g on s and returns the number of HLine calls made.
// SetColor is called only when the color differs from the previous run's.
// Render draws nothing for an empty or nil grid.
func Render(s Surface, g *matrix.Grid) int {
	var (
		fills int
		cur   matrix.Color
		set   bool
	)
	Scan(g, func(r Run) {
		if !set || r.Color != cur {
			s.SetColor(r.Color)
			cur, set = r.Color, true
		}
		s.HLine(r.Row, r.X0, r.X1)
		fills++
	})
	return fills
}

// Expand paints runs onto an n×n array of cells, the inverse of Runs.
// Cells not covered by any run are left as the zero Color.
// Runs outside the array are clipped.
func Expand(n int, runs []Run) [][]matrix.Color {
	rows := make([][]matrix.Color, n)
	for i := range rows {
		rows[i] = make([]matrix.Color, n)
	}
	for _, r := range runs {
		if r.Row < 0 || r.Row >= n {
			continue
		}
		for x := max(r.X0, 0); x <= r.X1 && x < n; x++ {
			rows[r.Row][x] = r.Color
		}
	}
	return rows
}
