package hexstar

import (
	"strings"
	"testing"

	"github.com/vovakirdan/hexstar/internal/core"
	"github.com/vovakirdan/hexstar/internal/hexgrid"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:    12345,
		ScreenW: 80,
		ScreenH: 24,
	}
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(testConfig())
	if g.tooSmall {
		t.Fatal("80x24 should fit the default grid")
	}
	return g
}

// pointerFrame builds an input frame with a single pointer event aimed at the
// screen cell covering the given grid cell's center.
func pointerFrame(g *Game, cell *hexgrid.Cell, kind core.PointerKind) core.InputFrame {
	cx, cy := g.screenCellAt(cell.Center)
	input := core.NewInputFrame()
	input.AddPointer(core.PointerEvent{X: cx, Y: cy, Kind: kind})
	return input
}

func TestGameIDs(t *testing.T) {
	open := New()
	if open.ID() != "hexstar" {
		t.Errorf("Open ID should be 'hexstar', got %s", open.ID())
	}

	scatter := NewScatter()
	if scatter.ID() != "hexstar_scatter" {
		t.Errorf("Scatter ID should be 'hexstar_scatter', got %s", scatter.ID())
	}
}

func TestTitles(t *testing.T) {
	open := New()
	if open.Title() != "Hexstar" {
		t.Errorf("Open title should be 'Hexstar', got %s", open.Title())
	}

	scatter := NewScatter()
	if scatter.Title() != "Hexstar (Scatter)" {
		t.Errorf("Scatter title should be 'Hexstar (Scatter)', got %s", scatter.Title())
	}
}

func TestResetPlacesAgentAtOrigin(t *testing.T) {
	g := newTestGame(t)

	pos := g.agent.Position()
	if pos.Coord.Row != 0 || pos.Coord.Col != 0 {
		t.Errorf("Agent should start at (0,0), got (%d,%d)", pos.Coord.Row, pos.Coord.Col)
	}
	if g.agent.Destination() != nil {
		t.Error("No destination should be set after reset")
	}
	if g.grid.BlockedCount() != 0 {
		t.Errorf("Open mode should start without obstacles, got %d", g.grid.BlockedCount())
	}
}

func TestPrimaryClickSetsDestination(t *testing.T) {
	g := newTestGame(t)

	dest := g.grid.At(3, 4)
	g.Step(pointerFrame(g, dest, core.PointerPrimary))

	if g.agent.Destination() != dest {
		t.Fatal("Primary click should set the destination")
	}
	path := g.agent.Path()
	if len(path) < 2 {
		t.Fatalf("Path to (3,4) should have at least 2 cells, got %d", len(path))
	}
	if path[0] != g.agent.Position() || path[len(path)-1] != dest {
		t.Error("Path should run from the agent's cell to the destination")
	}
}

func TestPrimaryClickOnBlockedCellIgnored(t *testing.T) {
	g := newTestGame(t)

	target := g.grid.At(2, 2)
	target.Blocked = true

	g.Step(pointerFrame(g, target, core.PointerPrimary))

	if g.agent.Destination() != nil {
		t.Error("Clicking a blocked cell should not set a destination")
	}
	if len(g.agent.Path()) != 0 {
		t.Error("No path should exist without a destination")
	}
}

func TestSecondaryClickTogglesObstacle(t *testing.T) {
	g := newTestGame(t)

	target := g.grid.At(2, 2)
	g.Step(pointerFrame(g, target, core.PointerSecondary))
	if !target.Blocked {
		t.Fatal("Secondary click should block an open cell")
	}

	g.Step(pointerFrame(g, target, core.PointerSecondary))
	if target.Blocked {
		t.Error("Second secondary click should unblock the cell")
	}
}

func TestObstacleToggleReroutesPath(t *testing.T) {
	g := newTestGame(t)

	dest := g.grid.At(0, 4)
	g.Step(pointerFrame(g, dest, core.PointerPrimary))

	// The straight route along row 0 passes through (0,2).
	mid := g.grid.At(0, 2)
	onPath := false
	for _, c := range g.agent.Path() {
		if c == mid {
			onPath = true
		}
	}
	if !onPath {
		t.Fatal("Expected (0,2) on the straight path to (0,4)")
	}

	g.Step(pointerFrame(g, mid, core.PointerSecondary))

	path := g.agent.Path()
	if len(path) == 0 {
		t.Fatal("Detour around a single obstacle should exist")
	}
	for _, c := range path {
		if c == mid {
			t.Error("Recomputed path should avoid the blocked cell")
		}
	}
	if path[len(path)-1] != dest {
		t.Error("Destination should survive an obstacle toggle")
	}
}

func TestPointerMoveHighlights(t *testing.T) {
	g := newTestGame(t)

	cell := g.grid.At(2, 3)
	g.Step(pointerFrame(g, cell, core.PointerMove))

	if !cell.Highlighted {
		t.Fatal("Hovered cell should be highlighted")
	}
	for n := range g.grid.Neighbors(cell) {
		if !n.Highlighted {
			t.Errorf("Neighbor (%d,%d) should be highlighted", n.Coord.Row, n.Coord.Col)
		}
	}

	// Moving the pointer off the playfield clears everything.
	off := core.NewInputFrame()
	off.AddPointer(core.PointerEvent{X: 0, Y: 0, Kind: core.PointerMove})
	g.Step(off)

	for c := range g.grid.All() {
		if c.Highlighted {
			t.Errorf("Cell (%d,%d) should not stay highlighted", c.Coord.Row, c.Coord.Col)
		}
	}
}

func TestHighlightSkipsBlockedCells(t *testing.T) {
	g := newTestGame(t)

	cell := g.grid.At(2, 3)
	blocked := g.grid.Neighbor(cell, hexgrid.DirRight)
	blocked.Blocked = true

	g.Step(pointerFrame(g, cell, core.PointerMove))

	if blocked.Highlighted {
		t.Error("Blocked neighbors should not be highlighted")
	}
}

func TestMovementActions(t *testing.T) {
	g := newTestGame(t)

	input := core.NewInputFrame()
	input.Set(core.ActionStepRight)
	g.Step(input)

	pos := g.agent.Position()
	if pos.Coord.Row != 0 || pos.Coord.Col != 1 {
		t.Fatalf("Step right from (0,0) should reach (0,1), got (%d,%d)", pos.Coord.Row, pos.Coord.Col)
	}

	input.Clear()
	input.Set(core.ActionStepDownLeft)
	g.Step(input)

	pos = g.agent.Position()
	if pos.Coord.Row != 1 || pos.Coord.Col != 0 {
		t.Fatalf("Step down-left from (0,1) should reach (1,0), got (%d,%d)", pos.Coord.Row, pos.Coord.Col)
	}
}

func TestMovementIntoBlockedCellIgnored(t *testing.T) {
	g := newTestGame(t)

	g.grid.At(0, 1).Blocked = true

	input := core.NewInputFrame()
	input.Set(core.ActionStepRight)
	g.Step(input)

	pos := g.agent.Position()
	if pos.Coord.Row != 0 || pos.Coord.Col != 0 {
		t.Error("Agent should not enter a blocked cell")
	}
}

func TestMovementOffGridIgnored(t *testing.T) {
	g := newTestGame(t)

	input := core.NewInputFrame()
	input.Set(core.ActionStepUpLeft)
	g.Step(input)

	pos := g.agent.Position()
	if pos.Coord.Row != 0 || pos.Coord.Col != 0 {
		t.Error("Agent should stay put when stepping off the grid")
	}
}

func TestArrivalScoresRoute(t *testing.T) {
	g := newTestGame(t)

	dest := g.grid.At(0, 2)
	g.Step(pointerFrame(g, dest, core.PointerPrimary))
	if len(g.agent.Path()) != 3 {
		t.Fatalf("Path (0,0)->(0,2) should have 3 cells, got %d", len(g.agent.Path()))
	}

	input := core.NewInputFrame()
	input.Set(core.ActionStepRight)
	result := g.Step(input)
	if len(result.Routes) != 0 {
		t.Fatal("No route should complete before reaching the destination")
	}

	input.Clear()
	input.Set(core.ActionStepRight)
	result = g.Step(input)

	if len(result.Routes) != 1 {
		t.Fatalf("Arrival should report one completed route, got %d", len(result.Routes))
	}
	route := result.Routes[0]
	if route.PathLen != 3 || route.Steps != 2 {
		t.Errorf("Expected route {PathLen:3 Steps:2}, got %+v", route)
	}
	if result.State.Score != 1 {
		t.Errorf("Score should be 1 after arrival, got %d", result.State.Score)
	}
	if g.agent.Destination() != nil {
		t.Error("Destination should clear on arrival")
	}
}

func TestToggleEdges(t *testing.T) {
	g := newTestGame(t)

	if !g.drawEdges {
		t.Fatal("Edge drawing should start enabled")
	}

	input := core.NewInputFrame()
	input.Set(core.ActionToggleEdges)
	g.Step(input)
	if g.drawEdges {
		t.Error("Toggle should disable edge drawing")
	}

	g.Step(input)
	if !g.drawEdges {
		t.Error("Second toggle should re-enable edge drawing")
	}
}

func TestPauseBlocksInput(t *testing.T) {
	g := newTestGame(t)

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	g.Step(input)
	if !g.paused {
		t.Fatal("Pause action should pause the game")
	}

	input.Clear()
	input.Set(core.ActionStepRight)
	g.Step(input)
	pos := g.agent.Position()
	if pos.Coord.Col != 0 {
		t.Error("Movement should be ignored while paused")
	}
}

func TestRestartResetsState(t *testing.T) {
	g := newTestGame(t)

	dest := g.grid.At(0, 1)
	g.Step(pointerFrame(g, dest, core.PointerPrimary))
	input := core.NewInputFrame()
	input.Set(core.ActionStepRight)
	g.Step(input)
	if g.score != 1 {
		t.Fatalf("Setup should score one route, got %d", g.score)
	}

	input.Clear()
	input.Set(core.ActionRestart)
	g.Step(input)

	if g.score != 0 {
		t.Error("Restart should reset the score")
	}
	pos := g.agent.Position()
	if pos.Coord.Row != 0 || pos.Coord.Col != 0 {
		t.Error("Restart should move the agent back to (0,0)")
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{
		Seed:    1,
		ScreenW: 20,
		ScreenH: 8,
	})

	if !g.tooSmall {
		t.Fatal("Game should detect window is too small")
	}

	input := core.NewInputFrame()
	input.Set(core.ActionStepRight)
	g.Step(input)
	pos := g.agent.Position()
	if pos.Coord.Col != 0 {
		t.Error("Input should be ignored while the window is too small")
	}
}

func TestScatterDeterminism(t *testing.T) {
	cfg := testConfig()

	g1 := NewScatter()
	g1.Reset(cfg)
	g2 := NewScatter()
	g2.Reset(cfg)

	if g1.grid.BlockedCount() == 0 {
		t.Error("Scatter mode should place some obstacles at default density")
	}
	if g1.grid.BlockedCount() != g2.grid.BlockedCount() {
		t.Fatalf("Same seed should produce same obstacle count: %d vs %d",
			g1.grid.BlockedCount(), g2.grid.BlockedCount())
	}

	for c1 := range g1.grid.All() {
		c2 := g2.grid.AtCoord(c1.Coord)
		if c1.Blocked != c2.Blocked {
			t.Errorf("Obstacle mismatch at (%d,%d)", c1.Coord.Row, c1.Coord.Col)
		}
	}
}

func TestScatterKeepsStartOpen(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		g := NewScatter()
		cfg := testConfig()
		cfg.Seed = seed
		g.Reset(cfg)

		if g.grid.At(0, 0).Blocked {
			t.Fatalf("Start cell blocked with seed %d", seed)
		}
	}
}

func TestDeterminism(t *testing.T) {
	cfg := testConfig()

	g1 := NewScatter()
	g1.Reset(cfg)
	g2 := NewScatter()
	g2.Reset(cfg)

	dest := g1.grid.At(4, 3)
	for i := 0; i < 60; i++ {
		input := core.NewInputFrame()
		switch i {
		case 5:
			cx, cy := g1.screenCellAt(dest.Center)
			input.AddPointer(core.PointerEvent{X: cx, Y: cy, Kind: core.PointerPrimary})
		case 10, 20, 30:
			input.Set(core.ActionStepDownRight)
		case 15, 25:
			input.Set(core.ActionStepRight)
		}
		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()
	if snap1 != snap2 {
		t.Errorf("Snapshots diverged:\n%+v\n%+v", snap1, snap2)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	content := screen.String()
	if !strings.Contains(content, "Hexstar") {
		t.Error("HUD should contain the game title")
	}
	if !strings.Contains(content, "O") {
		t.Error("Rendered screen should show the agent marker")
	}
	if !strings.Contains(content, "█") {
		t.Error("Rendered screen should show hexagon faces")
	}
}

func TestRenderShowsPath(t *testing.T) {
	g := newTestGame(t)

	dest := g.grid.At(0, 4)
	g.Step(pointerFrame(g, dest, core.PointerPrimary))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	content := screen.String()
	if !strings.Contains(content, "◆") {
		t.Error("Destination marker should be drawn")
	}
	if !strings.Contains(content, "•") {
		t.Error("Intermediate path cells should be drawn")
	}
}

func TestRenderedCellsResolveBack(t *testing.T) {
	g := newTestGame(t)

	// The screen cell covering each hex center must resolve to that hex, or
	// clicks would land on the wrong cell.
	for cell := range g.grid.All() {
		cx, cy := g.screenCellAt(cell.Center)
		px, py := g.pixelAt(cx, cy)
		got := g.resolver.Resolve(g.grid, px, py)
		if got != cell {
			t.Errorf("Center of (%d,%d) maps to the wrong screen cell", cell.Coord.Row, cell.Coord.Col)
		}
	}
}
