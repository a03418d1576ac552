package hexgrid

import (
	"testing"
)

func newTestGrid(t *testing.T) *Grid {
	t.Helper()
	g, err := New(6, 6, NewMetrics(64, 5))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g
}

func TestResolveCellCenters(t *testing.T) {
	g := newTestGrid(t)
	r := NewResolver(g.Metrics(), DefaultBoundaryShift)

	for c := range g.All() {
		got := r.Resolve(g, c.Center.X, c.Center.Y)
		if got != c {
			t.Errorf("Resolve(center of %v) = %v, expected %v", c.Coord, coordOf(got), c.Coord)
		}
	}
}

func TestResolveOutsideGrid(t *testing.T) {
	g := newTestGrid(t)
	r := NewResolver(g.Metrics(), DefaultBoundaryShift)
	w, h := g.Metrics().PixelBounds(g.Height(), g.Width())

	outside := []Point{
		{-20, -20},
		{w + 50, h / 2},
		{w / 2, h + 50},
		{-1, h / 2},
	}
	for _, p := range outside {
		if c := r.Resolve(g, p.X, p.Y); c != nil {
			t.Errorf("Resolve(%+v) = %v, expected nil", p, c.Coord)
		}
	}
}

// edgeDirs maps each vertex pair (edge i runs from vertex i to vertex i+1)
// to the neighbor that shares it.
var edgeDirs = [6]Direction{
	DirUpRight,   // top point to right-top
	DirRight,     // right side
	DirDownRight, // right-bottom to bottom point
	DirDownLeft,  // bottom point to left-bottom
	DirLeft,      // left side
	DirUpLeft,    // left-top to top point
}

func TestResolveSharedEdges(t *testing.T) {
	g := newTestGrid(t)
	r := NewResolver(g.Metrics(), DefaultBoundaryShift)

	for c := range g.All() {
		for i, d := range edgeDirs {
			n := g.Neighbor(c, d)
			if n == nil {
				continue
			}

			a := c.Vertices[i]
			b := c.Vertices[(i+1)%6]
			mid := Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}

			got := r.Resolve(g, mid.X, mid.Y)
			if got != c && got != n {
				t.Errorf("edge %s midpoint of %v resolved to %v, expected %v or %v",
					d, c.Coord, coordOf(got), c.Coord, n.Coord)
				continue
			}

			// Same pixel, same answer, every time.
			for range 5 {
				if again := r.Resolve(g, mid.X, mid.Y); again != got {
					t.Fatalf("edge %s midpoint of %v resolved inconsistently", d, c.Coord)
				}
			}
		}
	}
}

func TestResolveDiagonalBoundary(t *testing.T) {
	g := newTestGrid(t)
	m := g.Metrics()
	r := NewResolver(m, DefaultBoundaryShift)

	// Points clearly inside the band bodies on both sides of the diagonal
	// edge between (0,0) and (1,0): (1,0)'s top point region belongs to the
	// upper row, its center region to itself.
	upper := g.At(0, 0)
	lower := g.At(1, 0)

	// Just under the shared edge midpoint, past the correction cut.
	nearTop := Point{X: lower.Center.X - m.HalfWidth/2, Y: lower.Vertices[0].Y + m.Quarter/8}
	if got := r.Resolve(g, nearTop.X, nearTop.Y); got != upper {
		t.Errorf("point near top edge resolved to %v, expected %v", coordOf(got), upper.Coord)
	}

	// Deep inside the lower hexagon.
	if got := r.Resolve(g, lower.Center.X, lower.Center.Y); got != lower {
		t.Errorf("center of %v resolved to %v", lower.Coord, coordOf(got))
	}
}

func TestResolverShiftZeroStillCoversCenters(t *testing.T) {
	g := newTestGrid(t)
	r := NewResolver(g.Metrics(), 0)

	for c := range g.All() {
		if got := r.Resolve(g, c.Center.X, c.Center.Y); got != c {
			t.Errorf("shift 0: Resolve(center of %v) = %v", c.Coord, coordOf(got))
		}
	}
}
