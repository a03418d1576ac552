package hexstar

import (
	"github.com/vovakirdan/hexstar/internal/hexgrid"
	"github.com/vovakirdan/hexstar/internal/pathfind"
)

// Agent is the walker on the grid: it holds the current cell, an optional
// destination, and the cached path between them. The path is informational -
// the agent never auto-follows it, movement happens one neighbor at a time
// through Move.
type Agent struct {
	grid        *hexgrid.Grid
	position    *hexgrid.Cell
	destination *hexgrid.Cell
	path        []*hexgrid.Cell
	center      hexgrid.Point
}

// NewAgent places an agent on the given start cell.
func NewAgent(g *hexgrid.Grid, start *hexgrid.Cell) *Agent {
	return &Agent{
		grid:     g,
		position: start,
		center:   start.Center,
	}
}

// Position returns the cell the agent currently occupies.
func (a *Agent) Position() *hexgrid.Cell {
	return a.position
}

// Destination returns the current destination, or nil when none is set.
func (a *Agent) Destination() *hexgrid.Cell {
	return a.destination
}

// Path returns the cached path from position to destination, both inclusive.
// Empty means no destination or no route.
func (a *Agent) Path() []*hexgrid.Cell {
	return a.path
}

// Center returns the pixel center of the agent's cell.
func (a *Agent) Center() hexgrid.Point {
	return a.center
}

// SetDestination assigns a new destination and recomputes the path.
// A blocked (or absent) target is a silent no-op reported through the return
// value; destination and path stay unchanged.
func (a *Agent) SetDestination(target *hexgrid.Cell) bool {
	if target == nil || target.Blocked {
		return false
	}
	a.destination = target
	a.repath()
	return true
}

// Move reassigns the agent to target, which callers pass as one of the
// current cell's neighbors. Absent or blocked targets are ignored. When a
// destination is set the path is recomputed from the new position.
func (a *Agent) Move(target *hexgrid.Cell) bool {
	if target == nil || target.Blocked {
		return false
	}
	a.position = target
	a.center = target.Center
	if a.destination != nil {
		a.repath()
	}
	return true
}

// Repath recomputes the cached path after grid blockage changed. Without a
// destination there is nothing to recompute.
func (a *Agent) Repath() {
	if a.destination != nil {
		a.repath()
	}
}

// ClearDestination drops the destination and the cached path.
func (a *Agent) ClearDestination() {
	a.destination = nil
	a.path = nil
}

func (a *Agent) repath() {
	a.path = pathfind.Find(a.grid, a.position, a.destination)
}
