package matrix

import "fmt"

// A Grid is a square, row-major array of cell colors.
// A Grid is never modified after it is built, so it may be read
// from multiple goroutines.
// The nil *Grid is a valid, empty grid.
type Grid struct {
	side int
	size int // side of the source matrix
	step int
	pix  []Color
}

func newGrid(size int) *Grid {
	step, n := Stride(size)
	return &Grid{
		side: n,
		size: size,
		step: step,
		pix:  make([]Color, n*n),
	}
}

// FromRows returns a Grid holding a copy of rows.
// Rows must be square: len(rows[i]) == len(rows) for every i.
func FromRows(rows [][]Color) (*Grid, error) {
	n := len(rows)
	g := &Grid{side: n, size: n, step: 1, pix: make([]Color, 0, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("matrix: row %d has %d cells, want %d", i, len(row), n)
		}
		g.pix = append(g.pix, row...)
	}
	return g, nil
}

// Side returns the number of rows (and columns) in g.
func (g *Grid) Side() int {
	if g == nil {
		return 0
	}
	return g.side
}

// SourceSize returns the side of the matrix g was sampled from.
func (g *Grid) SourceSize() int {
	if g == nil {
		return 0
	}
	return g.size
}

// Step returns the sampling step used to build g.
func (g *Grid) Step() int {
	if g == nil {
		return 1
	}
	return g.step
}

// At returns the color of the cell at row, col.
func (g *Grid) At(row, col int) Color {
	return g.pix[row*g.side+col]
}

// Row returns the cells of row i.
// The slice aliases the grid and must not be modified.
func (g *Grid) Row(i int) []Color {
	lo, hi := i*g.side, (i+1)*g.side
	return g.pix[lo:hi:hi]
}

// Rows returns a copy of g as a slice of rows.
func (g *Grid) Rows() [][]Color {
	rows := make([][]Color, g.Side())
	for i := range rows {
		rows[i] = append([]Color(nil), g.Row(i)...)
	}
	return rows
}

func (g *Grid) set(row, col int, c Color) {
	g.pix[row*g.side+col] = c
}
