package pathfind

import "container/heap"

// frontierNode is an entry of the open set: a cell index keyed by its
// f-score and a monotonically increasing insertion sequence.
type frontierNode struct {
	cell  int
	score int
	seq   int
}

// frontierHeap is a binary heap keyed on (score, seq). Generic heaps give no
// ordering guarantee between equal keys, so the insertion sequence makes
// expansion of equally scored cells first-in-first-out.
type frontierHeap struct {
	nodes []frontierNode
	seq   int
}

func (h *frontierHeap) Len() int { return len(h.nodes) }

func (h *frontierHeap) Less(i, j int) bool {
	if h.nodes[i].score != h.nodes[j].score {
		return h.nodes[i].score < h.nodes[j].score
	}
	return h.nodes[i].seq < h.nodes[j].seq
}

func (h *frontierHeap) Swap(i, j int) {
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
}

func (h *frontierHeap) Push(x any) {
	h.nodes = append(h.nodes, x.(frontierNode))
}

func (h *frontierHeap) Pop() any {
	old := h.nodes
	n := len(old)
	node := old[n-1]
	h.nodes = old[:n-1]
	return node
}

// push adds a cell with the given f-score, stamping the insertion sequence.
func (h *frontierHeap) push(cell, score int) {
	heap.Push(h, frontierNode{cell: cell, score: score, seq: h.seq})
	h.seq++
}

// pop removes and returns the cell with the lowest (score, seq) key.
func (h *frontierHeap) pop() int {
	return heap.Pop(h).(frontierNode).cell
}
