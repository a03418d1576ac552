package hexgrid

import (
	"fmt"
	"iter"
)

// absent marks an empty neighbor slot.
const absent = -1

// Cell is a single hexagon of the grid. Coordinate and geometry are fixed at
// construction; only Blocked and Highlighted change afterwards. Neighbor
// links are indices into the owning grid's cell slice, avoiding reference
// cycles between cells.
type Cell struct {
	Coord       Coordinate
	Vertices    [6]Point
	Center      Point
	Blocked     bool
	Highlighted bool

	neighbors [6]int
}

// Grid owns all cells of the playfield. The shape and the neighbor graph are
// immutable after New; lookups outside the bounds yield nil rather than an
// error.
type Grid struct {
	height  int
	width   int
	metrics Metrics
	cells   []Cell
	rowAt   []int // index of the first cell of each row
}

// New builds a grid with the given row and column counts. Odd rows hold one
// cell less than width. Non-positive dimensions are the one rejected
// precondition of the package.
func New(height, width int, m Metrics) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("hexgrid: dimensions must be positive, got %dx%d", height, width)
	}

	g := &Grid{
		height:  height,
		width:   width,
		metrics: m,
		rowAt:   make([]int, height),
	}

	for row := 0; row < height; row++ {
		g.rowAt[row] = len(g.cells)
		for col := 0; col < width-row%2; col++ {
			coord := Coordinate{Row: row, Col: col}
			verts := m.VerticesAt(coord)
			g.cells = append(g.cells, Cell{
				Coord:    coord,
				Vertices: verts,
				Center:   CenterOf(verts),
			})
		}
	}

	g.wireNeighbors()
	return g, nil
}

// wireNeighbors links every cell to its up to six neighbors. With
// oddRow = row%2, the diagonal columns are left = col+oddRow-1 and
// right = col+oddRow; boundary slots stay absent.
func (g *Grid) wireNeighbors() {
	for i := range g.cells {
		c := &g.cells[i]
		row, col := c.Coord.Row, c.Coord.Col
		oddRow := row % 2
		left := col + oddRow - 1
		right := col + oddRow

		c.neighbors[DirUpLeft] = g.index(row-1, left)
		c.neighbors[DirUpRight] = g.index(row-1, right)
		c.neighbors[DirDownLeft] = g.index(row+1, left)
		c.neighbors[DirDownRight] = g.index(row+1, right)
		c.neighbors[DirLeft] = g.index(row, col-1)
		c.neighbors[DirRight] = g.index(row, col+1)
	}
}

// index returns the flat index of (row, col), or absent when out of bounds.
func (g *Grid) index(row, col int) int {
	if row < 0 || row >= g.height {
		return absent
	}
	if col < 0 || col >= g.width-row%2 {
		return absent
	}
	return g.rowAt[row] + col
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Width returns the number of columns of an even row.
func (g *Grid) Width() int {
	return g.width
}

// RowWidth returns the number of cells in the given row.
func (g *Grid) RowWidth(row int) int {
	if row < 0 || row >= g.height {
		return 0
	}
	return g.width - row%2
}

// Metrics returns the cell measurements the grid was built with.
func (g *Grid) Metrics() Metrics {
	return g.metrics
}

// Len returns the total number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// At returns the cell at (row, col), or nil when out of bounds.
func (g *Grid) At(row, col int) *Cell {
	i := g.index(row, col)
	if i == absent {
		return nil
	}
	return &g.cells[i]
}

// AtCoord returns the cell at the given coordinate, or nil when out of bounds.
func (g *Grid) AtCoord(c Coordinate) *Cell {
	return g.At(c.Row, c.Col)
}

// IndexOf returns the flat index of a cell owned by this grid.
func (g *Grid) IndexOf(c *Cell) int {
	return g.index(c.Coord.Row, c.Coord.Col)
}

// ByIndex returns the cell at a flat index previously obtained from IndexOf.
func (g *Grid) ByIndex(i int) *Cell {
	if i < 0 || i >= len(g.cells) {
		return nil
	}
	return &g.cells[i]
}

// Neighbor returns the cell in the given slot of c, or nil when the slot is
// empty at a grid boundary.
func (g *Grid) Neighbor(c *Cell, d Direction) *Cell {
	i := c.neighbors[d]
	if i == absent {
		return nil
	}
	return &g.cells[i]
}

// Neighbors yields the present neighbors of c in canonical direction order.
func (g *Grid) Neighbors(c *Cell) iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for _, d := range Directions {
			i := c.neighbors[d]
			if i == absent {
				continue
			}
			if !yield(&g.cells[i]) {
				return
			}
		}
	}
}

// All yields every cell of the grid in row-major order.
func (g *Grid) All() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for i := range g.cells {
			if !yield(&g.cells[i]) {
				return
			}
		}
	}
}

// BlockedCount returns the number of currently blocked cells.
func (g *Grid) BlockedCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Blocked {
			n++
		}
	}
	return n
}
