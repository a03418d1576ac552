package hexgrid

// Coordinate addresses a cell in the offset layout.
type Coordinate struct {
	Row, Col int
}

// Direction identifies one of the six neighbor slots of a hexagon.
// The declaration order is the canonical expansion order used by the path
// finder, so path results are reproducible.
type Direction int

const (
	DirUpLeft Direction = iota
	DirUpRight
	DirRight
	DirDownRight
	DirDownLeft
	DirLeft
)

// Directions lists all six neighbor slots in canonical order.
var Directions = [6]Direction{
	DirUpLeft, DirUpRight, DirRight, DirDownRight, DirDownLeft, DirLeft,
}

// Opposite returns the structurally opposite slot: if B sits in slot d of A,
// then A sits in slot d.Opposite() of B.
func (d Direction) Opposite() Direction {
	return (d + 3) % 6
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUpLeft:
		return "up-left"
	case DirUpRight:
		return "up-right"
	case DirRight:
		return "right"
	case DirDownRight:
		return "down-right"
	case DirDownLeft:
		return "down-left"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}
