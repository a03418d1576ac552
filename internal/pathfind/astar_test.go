package pathfind

import (
	"testing"

	"github.com/vovakirdan/hexstar/internal/hexgrid"
)

func newGrid(t *testing.T, height, width int) *hexgrid.Grid {
	t.Helper()
	g, err := hexgrid.New(height, width, hexgrid.NewMetrics(64, 5))
	if err != nil {
		t.Fatalf("hexgrid.New() failed: %v", err)
	}
	return g
}

func coords(path []*hexgrid.Cell) []hexgrid.Coordinate {
	out := make([]hexgrid.Coordinate, len(path))
	for i, c := range path {
		out[i] = c.Coord
	}
	return out
}

func assertContiguous(t *testing.T, g *hexgrid.Grid, path []*hexgrid.Cell) {
	t.Helper()
	for i := 1; i < len(path); i++ {
		adjacent := false
		for n := range g.Neighbors(path[i-1]) {
			if n == path[i] {
				adjacent = true
				break
			}
		}
		if !adjacent {
			t.Errorf("path hop %v -> %v is not an adjacency", path[i-1].Coord, path[i].Coord)
		}
	}
}

func TestFindSameCell(t *testing.T) {
	g := newGrid(t, 3, 3)
	c := g.At(1, 1)

	path := Find(g, c, c)
	if len(path) != 1 || path[0] != c {
		t.Errorf("Find(c, c) = %v, expected the single-element path", coords(path))
	}
}

func TestFindStraightRow(t *testing.T) {
	g := newGrid(t, 3, 6)
	start := g.At(0, 0)
	goal := g.At(0, 5)

	path := Find(g, start, goal)
	if len(path) != 6 {
		t.Fatalf("path length = %d, expected 6 (Manhattan distance 5)", len(path))
	}
	for i, c := range path {
		want := hexgrid.Coordinate{Row: 0, Col: i}
		if c.Coord != want {
			t.Errorf("path[%d] = %v, expected %v", i, c.Coord, want)
		}
	}
}

func TestFindDeterministicDiagonal(t *testing.T) {
	// The reference case: 3x3 open grid from (0,0) to (2,2). Diagonal hops
	// change row and column at once, so the walk takes three steps, and the
	// FIFO tie-break pins down which three.
	g := newGrid(t, 3, 3)

	want := []hexgrid.Coordinate{
		{Row: 0, Col: 0},
		{Row: 1, Col: 0},
		{Row: 2, Col: 1},
		{Row: 2, Col: 2},
	}

	for run := 0; run < 10; run++ {
		path := Find(g, g.At(0, 0), g.At(2, 2))
		got := coords(path)
		if len(got) != len(want) {
			t.Fatalf("run %d: path = %v, expected %v", run, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("run %d: path = %v, expected %v", run, got, want)
			}
		}
	}
}

func TestFindRoutesAroundBlocked(t *testing.T) {
	g := newGrid(t, 3, 5)
	start := g.At(0, 0)
	goal := g.At(0, 4)

	// Cut the straight line; the search must detour through another row.
	blocked := g.At(0, 2)
	blocked.Blocked = true

	path := Find(g, start, goal)
	if len(path) == 0 {
		t.Fatal("expected a detour path, got none")
	}
	if path[0] != start || path[len(path)-1] != goal {
		t.Errorf("path endpoints = %v .. %v", path[0].Coord, path[len(path)-1].Coord)
	}
	for _, c := range path {
		if c == blocked {
			t.Errorf("path crosses the blocked cell %v", c.Coord)
		}
		if c.Blocked {
			t.Errorf("path contains blocked cell %v", c.Coord)
		}
	}
	assertContiguous(t, g, path)
	if len(path) < 6 {
		t.Errorf("detour length = %d nodes, cannot be shorter than the straight line", len(path))
	}
}

func TestFindEnclosedGoal(t *testing.T) {
	g := newGrid(t, 3, 3)
	goal := g.At(0, 2)

	// (0,2) touches only (0,1), (1,1) and (1,2)... which does not exist on
	// the narrow odd row, so two blocks seal it off.
	for n := range g.Neighbors(goal) {
		n.Blocked = true
	}

	path := Find(g, g.At(2, 0), goal)
	if path != nil {
		t.Errorf("expected no path to an enclosed goal, got %v", coords(path))
	}
}

func TestFindBlockedGoal(t *testing.T) {
	g := newGrid(t, 3, 3)
	goal := g.At(2, 2)
	goal.Blocked = true

	if path := Find(g, g.At(0, 0), goal); path != nil {
		t.Errorf("expected no path to a blocked goal, got %v", coords(path))
	}
}

func TestFindFullRecomputation(t *testing.T) {
	g := newGrid(t, 3, 5)
	start := g.At(0, 0)
	goal := g.At(0, 4)

	first := Find(g, start, goal)
	if len(first) != 5 {
		t.Fatalf("open grid path length = %d, expected 5", len(first))
	}

	// Block a cell on the cached path, search again: the new result must
	// avoid it.
	first[2].Blocked = true
	second := Find(g, start, goal)
	if len(second) == 0 {
		t.Fatal("expected a rerouted path")
	}
	for _, c := range second {
		if c == first[2] {
			t.Errorf("recomputed path still crosses %v", c.Coord)
		}
	}

	// Unblock, and the straight line comes back.
	first[2].Blocked = false
	third := Find(g, start, goal)
	if len(third) != 5 {
		t.Errorf("after unblocking, path length = %d, expected 5", len(third))
	}
}
