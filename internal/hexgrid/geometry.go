// Package hexgrid implements the hexagonal playfield: cell geometry, the
// offset-coordinate grid with its neighbor graph, and the pointer resolver
// that maps pixel positions onto cells.
//
// The grid uses "offset" coordinates: (row, col) pairs where every odd row is
// shifted half a cell to the right and holds one cell less than an even row,
// like staggered brickwork.
package hexgrid

import "math"

// Point is a position in the continuous pixel space the grid is laid out in.
type Point struct {
	X, Y float64
}

// Metrics holds the derived measurements of a hex cell, fixed for the
// lifetime of a grid. All cells share the same metrics.
type Metrics struct {
	CellHeight   float64 // full height of a hexagon
	Quarter      float64 // CellHeight / 4
	ThreeQuarter float64 // 3 * Quarter; vertical distance between row bands
	CellWidth    float64 // CellHeight * sqrt(3) / 2
	HalfWidth    float64 // CellWidth / 2; horizontal shift of odd rows
	Margin       float64 // offset of the grid from the pixel-space origin
}

// NewMetrics derives cell metrics from a hexagon height and a grid margin.
func NewMetrics(cellHeight, margin float64) Metrics {
	quarter := cellHeight / 4
	cellWidth := cellHeight * math.Sqrt(3) / 2
	return Metrics{
		CellHeight:   cellHeight,
		Quarter:      quarter,
		ThreeQuarter: 3 * quarter,
		CellWidth:    cellWidth,
		HalfWidth:    cellWidth / 2,
		Margin:       margin,
	}
}

// template returns the six vertices of a pointed-top hexagon anchored at the
// origin, in clockwise order starting from the top point.
func (m Metrics) template() [6]Point {
	return [6]Point{
		{m.HalfWidth, 0},
		{m.CellWidth, m.Quarter},
		{m.CellWidth, m.ThreeQuarter},
		{m.HalfWidth, m.CellHeight},
		{0, m.ThreeQuarter},
		{0, m.Quarter},
	}
}

// VerticesAt returns the absolute vertices of the hexagon at the given
// offset coordinate. Odd rows shift right by half a cell width.
func (m Metrics) VerticesAt(c Coordinate) [6]Point {
	dx := m.Margin + float64(c.Col)*m.CellWidth + float64(c.Row%2)*m.HalfWidth
	dy := m.Margin + float64(c.Row)*m.ThreeQuarter

	verts := m.template()
	for i := range verts {
		verts[i].X += dx
		verts[i].Y += dy
	}
	return verts
}

// CenterOf returns the center point of a hexagon given its vertices:
// horizontally under the top point, vertically between the two right-edge
// vertices.
func CenterOf(verts [6]Point) Point {
	return Point{
		X: verts[0].X,
		Y: (verts[1].Y + verts[2].Y) / 2,
	}
}

// PixelBounds returns the total pixel extent of a grid with the given cell
// counts, margins included. Odd rows are narrower but shifted, so both row
// parities span the same width.
func (m Metrics) PixelBounds(height, width int) (w, h float64) {
	w = float64(width)*m.CellWidth + 2*m.Margin
	h = float64(height)*m.ThreeQuarter + m.Quarter + 2*m.Margin
	return w, h
}
