package runlen

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/heatmatrix/viewmatrix/matrix"
)

var (
	blue   = matrix.Color{B: 0xFF}
	red    = matrix.Color{R: 0xFF}
	purple = matrix.Gray(0.5)
)

// A recorder is a Surface that logs the runs drawn on it.
type recorder struct {
	cur  matrix.Color
	sets int
	runs []Run
}

func (r *recorder) SetColor(c matrix.Color) {
	r.cur = c
	r.sets++
}

func (r *recorder) HLine(row, x0, x1 int) {
	r.runs = append(r.runs, Run{Row: row, X0: x0, X1: x1, Color: r.cur})
}

func mustGrid(t *testing.T, rows [][]matrix.Color) *matrix.Grid {
	t.Helper()
	g, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

type renderTest struct {
	name string
	rows [][]matrix.Color
	runs []Run
	sets int
}

var renderTests = []renderTest{
	{"empty", [][]matrix.Color{}, nil, 0},
	{"single", [][]matrix.Color{{red}}, []Run{{0, 0, 0, red}}, 1},
	{
		"checkerboard",
		[][]matrix.Color{{blue, red}, {red, blue}},
		[]Run{{0, 0, 0, blue}, {0, 1, 1, red}, {1, 0, 0, red}, {1, 1, 1, blue}},
		3,
	},
	{
		"uniform",
		[][]matrix.Color{
			{purple, purple, purple},
			{purple, purple, purple},
			{purple, purple, purple},
		},
		[]Run{{0, 0, 2, purple}, {1, 0, 2, purple}, {2, 0, 2, purple}},
		1,
	},
	{
		"mixed",
		[][]matrix.Color{
			{blue, blue, red, red},
			{red, red, red, red},
			{blue, red, red, blue},
			{purple, purple, purple, blue},
		},
		[]Run{
			{0, 0, 1, blue}, {0, 2, 3, red},
			{1, 0, 3, red},
			{2, 0, 0, blue}, {2, 1, 2, red}, {2, 3, 3, blue},
			{3, 0, 2, purple}, {3, 3, 3, blue},
		},
		7,
	},
}

func TestRender(t *testing.T) {
	for _, tt := range renderTests {
		g := mustGrid(t, tt.rows)
		var rec recorder
		fills := Render(&rec, g)
		if fills != len(tt.runs) {
			t.Errorf("%s: Render returned %d fills; want %d", tt.name, fills, len(tt.runs))
		}
		if diff := cmp.Diff(tt.runs, rec.runs); diff != "" {
			t.Errorf("%s: runs mismatch (-want +got):\n%s", tt.name, diff)
		}
		if rec.sets != tt.sets {
			t.Errorf("%s: %d SetColor calls; want %d", tt.name, rec.sets, tt.sets)
		}
		if diff := cmp.Diff(tt.runs, Runs(g)); diff != "" {
			t.Errorf("%s: Runs mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestRenderNil(t *testing.T) {
	var rec recorder
	if n := Render(&rec, nil); n != 0 || rec.sets != 0 || len(rec.runs) != 0 {
		t.Errorf("Render(nil grid) = %d, with %d SetColor and %d HLine calls; want none", n, rec.sets, len(rec.runs))
	}
}

func TestRenderLoaded(t *testing.T) {
	g, err := matrix.Load(strings.NewReader("2\n0.0\n1.0\n1.0\n0.0\n"))
	if err != nil {
		t.Fatal(err)
	}
	var rec recorder
	if n := Render(&rec, g); n != 4 {
		t.Errorf("checkerboard: %d fills; want 4", n)
	}
}

// randomGrid returns an n×n grid drawn from a palette of k colors,
// with runs of average length about span.
func randomGrid(t *testing.T, rnd *rand.Rand, n, k, span int) *matrix.Grid {
	palette := make([]matrix.Color, k)
	for i := range palette {
		palette[i] = matrix.Gray(float64(i) / float64(k))
	}
	rows := make([][]matrix.Color, n)
	for i := range rows {
		rows[i] = make([]matrix.Color, n)
		c := palette[rnd.Intn(k)]
		for j := range rows[i] {
			if rnd.Intn(span) == 0 {
				c = palette[rnd.Intn(k)]
			}
			rows[i][j] = c
		}
	}
	return mustGrid(t, rows)
}

func transitions(g *matrix.Grid) int {
	k := 0
	for i := 0; i < g.Side(); i++ {
		row := g.Row(i)
		for j := 1; j < len(row); j++ {
			if row[j] != row[j-1] {
				k++
			}
		}
	}
	return k
}

func TestRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for iter := 0; iter < 200; iter++ {
		n := 1 + rnd.Intn(40)
		g := randomGrid(t, rnd, n, 1+rnd.Intn(6), 1+rnd.Intn(8))

		var rec recorder
		fills := Render(&rec, g)
		if diff := cmp.Diff(g.Rows(), Expand(n, rec.runs)); diff != "" {
			t.Fatalf("n=%d: expanded runs differ from grid (-grid +runs):\n%s", n, diff)
		}
		if want := transitions(g) + n; fills != want {
			t.Fatalf("n=%d: %d fills; want transitions+n = %d", n, fills, want)
		}
		checkCoverage(t, n, rec.runs)
	}
}

// checkCoverage checks that every row is covered exactly once, left to right.
func checkCoverage(t *testing.T, n int, runs []Run) {
	t.Helper()
	next := make([]int, n)
	for _, r := range runs {
		if r.X0 != next[r.Row] || r.X1 < r.X0 {
			t.Fatalf("run %+v: want to start at column %d", r, next[r.Row])
		}
		next[r.Row] = r.X1 + 1
	}
	for i, x := range next {
		if x != n {
			t.Fatalf("row %d covered up to column %d; want %d", i, x, n)
		}
	}
}

func TestRunsMaximal(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	g := randomGrid(t, rnd, 64, 3, 4)
	runs := Runs(g)
	for i := 1; i < len(runs); i++ {
		a, b := runs[i-1], runs[i]
		if a.Row == b.Row && a.Color == b.Color {
			t.Fatalf("adjacent runs %+v and %+v share a color", a, b)
		}
	}
}

func TestExpandClips(t *testing.T) {
	runs := []Run{{-1, 0, 1, red}, {0, -2, 0, red}, {1, 1, 5, blue}, {4, 0, 1, red}}
	want := [][]matrix.Color{{red, {}}, {{}, blue}}
	if diff := cmp.Diff(want, Expand(2, runs)); diff != "" {
		t.Errorf("Expand mismatch (-want +got):\n%s", diff)
	}
}

func TestRunLen(t *testing.T) {
	if n := (Run{X0: 3, X1: 3}).Len(); n != 1 {
		t.Errorf("Len() = %d; want 1", n)
	}
	if n := (Run{X0: 0, X1: 9}).Len(); n != 10 {
		t.Errorf("Len() = %d; want 10", n)
	}
}
