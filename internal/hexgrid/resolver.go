package hexgrid

import "math"

// DefaultBoundaryShift is the correction constant that decides how pixels on
// the diagonal edges between two row bands are assigned. Tuned empirically;
// larger values pull the boundary down.
const DefaultBoundaryShift = 0.09

// Resolver maps pixel positions to grid cells. Hexagons interlock, so the
// rectangular band a pixel falls into is not enough: points near the top of a
// band may belong to one of the two hexes of the row above, across a
// diagonal edge.
type Resolver struct {
	metrics Metrics
	shift   float64
}

// NewResolver creates a resolver for grids laid out with the given metrics.
func NewResolver(m Metrics, shift float64) Resolver {
	return Resolver{metrics: m, shift: shift}
}

// Resolve returns the cell under the pixel (x, y), or nil when the position
// is outside the grid. Every pixel, including those exactly on a shared
// edge, resolves to at most one cell.
func (r Resolver) Resolve(g *Grid, x, y float64) *Cell {
	m := r.metrics
	x -= m.Margin
	y -= m.Margin

	relRow := y / m.ThreeQuarter
	row := int(math.Floor(relRow))
	rowFrac := relRow - math.Floor(relRow)
	oddRow := mod2(row)

	relCol := (x - float64(oddRow)*m.HalfWidth) / m.CellWidth
	col := int(math.Floor(relCol))
	// Signed distance from the column's center axis, in (-0.5, 0.5].
	colFrac := 0.5 - (relCol - math.Floor(relCol))

	// Points above the diagonal edges belong to the row above. The edge runs
	// from the hex's side points up to its top point, so the cut grows with
	// the distance from the column center.
	if 2*rowFrac < math.Abs(colFrac)+r.shift {
		oddRow = 1 - oddRow
		row--
		if colFrac < 0 {
			col++
		}
		col -= oddRow
	}

	return g.At(row, col)
}

// mod2 returns the row parity as 0 or 1, also for negative rows.
func mod2(v int) int {
	return ((v % 2) + 2) % 2
}
