package hexstar

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Mode    string // "open" or "scatter"
	Score   int
	Reached int

	PosRow int
	PosCol int

	HasDestination bool
	DestRow        int
	DestCol        int
	PathLen        int
	StepsTaken     int

	BlockedCells int
	SelectedRow  int // -1 when no cell is under the pointer
	SelectedCol  int
	DrawEdges    bool
	Paused       bool
	TooSmall     bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:         g.tick,
		Mode:         string(g.mode),
		Score:        g.score,
		Reached:      g.reached,
		PosRow:       g.agent.Position().Coord.Row,
		PosCol:       g.agent.Position().Coord.Col,
		PathLen:      len(g.agent.Path()),
		StepsTaken:   g.stepsTaken,
		BlockedCells: g.grid.BlockedCount(),
		SelectedRow:  -1,
		SelectedCol:  -1,
		DrawEdges:    g.drawEdges,
		Paused:       g.paused,
		TooSmall:     g.tooSmall,
	}

	if dest := g.agent.Destination(); dest != nil {
		snap.HasDestination = true
		snap.DestRow = dest.Coord.Row
		snap.DestCol = dest.Coord.Col
	}
	if g.selected != nil {
		snap.SelectedRow = g.selected.Coord.Row
		snap.SelectedCol = g.selected.Coord.Col
	}
	return snap
}
