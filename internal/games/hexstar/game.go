// Package hexstar implements the hex-grid pathfinding game: a pointer-driven
// field of hexagonal cells, an agent stepped one neighbor at a time, and an
// A* route preview that reacts to obstacles toggled at runtime.
package hexstar

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/hexstar/internal/config"
	"github.com/vovakirdan/hexstar/internal/core"
	"github.com/vovakirdan/hexstar/internal/hexgrid"
	"github.com/vovakirdan/hexstar/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeOpen    Mode = "open"    // every cell walkable at start
	ModeScatter Mode = "scatter" // seeded random obstacles
)

const hudHeight = 2

// Game implements the hexstar game.
type Game struct {
	mode Mode
	rng  *rand.Rand
	tick uint64

	cfg      config.HexstarConfig
	grid     *hexgrid.Grid
	resolver hexgrid.Resolver
	agent    *Agent

	// selected is the cell under the pointer; it and its neighbors are
	// highlighted until the pointer moves elsewhere.
	selected  *hexgrid.Cell
	drawEdges bool

	// Route bookkeeping for the current destination.
	plannedLen int
	stepsTaken int
	routes     []core.RouteStat

	score   int
	reached int

	// Playfield placement in screen cells.
	field   core.Rect
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// Package-level config overrides, applied on the next Reset.
var (
	configPath     string
	obstaclePreset config.ObstaclePreset
)

// SetConfigPath sets the config file path used by the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetObstaclePreset sets the obstacle density preset for scatter mode.
func SetObstaclePreset(preset config.ObstaclePreset) {
	obstaclePreset = preset
}

// New creates a new open-field game.
func New() *Game {
	return &Game{
		mode: ModeOpen,
	}
}

// NewScatter creates a new game with seeded random obstacles.
func NewScatter() *Game {
	return &Game{
		mode: ModeScatter,
	}
}

func init() {
	registry.Register("hexstar", func() registry.Game {
		return New()
	})
	registry.Register("hexstar_scatter", func() registry.Game {
		return NewScatter()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeScatter {
		return "hexstar_scatter"
	}
	return "hexstar"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeScatter {
		return "Hexstar (Scatter)"
	}
	return "Hexstar"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.reached = 0
	g.paused = false
	g.selected = nil
	g.drawEdges = true
	g.plannedLen = 0
	g.stepsTaken = 0
	g.routes = nil
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	hexCfg, err := config.LoadHexstar(configPath)
	if err != nil {
		hexCfg = config.DefaultHexstarConfig()
	}
	if g.mode == ModeScatter && obstaclePreset != "" {
		config.ApplyObstaclePreset(&hexCfg, obstaclePreset)
	}
	g.cfg = hexCfg

	metrics := hexgrid.NewMetrics(hexCfg.Geometry.CellHeight, hexCfg.Geometry.Margin)
	grid, err := hexgrid.New(hexCfg.Grid.Height, hexCfg.Grid.Width, metrics)
	if err != nil {
		// Bad dimensions from a user config file; fall back to defaults.
		def := config.DefaultHexstarConfig()
		metrics = hexgrid.NewMetrics(def.Geometry.CellHeight, def.Geometry.Margin)
		grid, _ = hexgrid.New(def.Grid.Height, def.Grid.Width, metrics)
		g.cfg = def
	}
	g.grid = grid
	g.resolver = hexgrid.NewResolver(metrics, g.cfg.Pointer.BoundaryShift)

	if g.mode == ModeScatter {
		g.scatterObstacles()
	}

	g.agent = NewAgent(g.grid, g.grid.At(0, 0))
	g.layout()
}

// scatterObstacles blocks random cells at the configured density. The start
// cell stays open so the agent always has a home.
func (g *Game) scatterObstacles() {
	density := g.cfg.Scatter.Density
	for cell := range g.grid.All() {
		if cell.Coord.Row == 0 && cell.Coord.Col == 0 {
			continue
		}
		if g.rng.Float64() < density {
			cell.Blocked = true
		}
	}
}

// layout places the playfield on screen. One screen column maps to one
// virtual pixel horizontally; one screen row covers two vertically.
func (g *Game) layout() {
	pxW, pxH := g.grid.Metrics().PixelBounds(g.grid.Height(), g.grid.Width())
	fieldW := int(math.Ceil(pxW))
	fieldH := int(math.Ceil(pxH / 2))

	if g.screenW < fieldW || g.screenH < fieldH+hudHeight {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.field = core.NewRect((g.screenW-fieldW)/2, hudHeight, fieldW, fieldH)
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	g.routes = nil

	if input.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, ev := range input.Pointers {
		g.handlePointer(ev)
	}

	if input.Has(core.ActionToggleEdges) {
		g.drawEdges = !g.drawEdges
	}

	g.processMovement(input)

	result := core.StepResult{State: g.State()}
	result.Routes = g.routes
	return result
}

// handlePointer resolves a pointer event to a cell and applies its effect:
// movement highlights, primary sets the destination, secondary toggles an
// obstacle.
func (g *Game) handlePointer(ev core.PointerEvent) {
	var cell *hexgrid.Cell
	if g.field.Contains(ev.X, ev.Y) {
		px, py := g.pixelAt(ev.X, ev.Y)
		cell = g.resolver.Resolve(g.grid, px, py)
	}
	g.updateSelection(cell)

	if cell == nil {
		return
	}
	switch ev.Kind {
	case core.PointerPrimary:
		if g.agent.SetDestination(cell) {
			g.plannedLen = len(g.agent.Path())
			g.stepsTaken = 0
		}
	case core.PointerSecondary:
		cell.Blocked = !cell.Blocked
		if cell.Blocked {
			cell.Highlighted = false
		}
		g.agent.Repath()
	}
}

// pixelAt maps a screen cell to the virtual pixel sampled at its center.
func (g *Game) pixelAt(cx, cy int) (float64, float64) {
	px := float64(cx-g.field.X) + 0.5
	py := float64(cy-g.field.Y)*2 + 1
	return px, py
}

// updateSelection moves the pointer highlight to cell, clearing the previous
// cell and its neighbors first. A nil cell just clears.
func (g *Game) updateSelection(cell *hexgrid.Cell) {
	if cell == g.selected {
		return
	}
	if g.selected != nil {
		g.selected.Highlighted = false
		for n := range g.grid.Neighbors(g.selected) {
			n.Highlighted = false
		}
	}
	g.selected = cell
	if cell == nil {
		return
	}
	if !cell.Blocked {
		cell.Highlighted = true
	}
	for n := range g.grid.Neighbors(cell) {
		if !n.Blocked {
			n.Highlighted = true
		}
	}
}

// stepActions in a fixed order so simultaneous presses resolve
// deterministically.
var stepActions = [6]struct {
	action core.Action
	dir    hexgrid.Direction
}{
	{core.ActionStepUpLeft, hexgrid.DirUpLeft},
	{core.ActionStepUpRight, hexgrid.DirUpRight},
	{core.ActionStepRight, hexgrid.DirRight},
	{core.ActionStepDownRight, hexgrid.DirDownRight},
	{core.ActionStepDownLeft, hexgrid.DirDownLeft},
	{core.ActionStepLeft, hexgrid.DirLeft},
}

// processMovement applies at most one step per tick.
func (g *Game) processMovement(input core.InputFrame) {
	for _, sa := range stepActions {
		if !input.Has(sa.action) {
			continue
		}
		target := g.grid.Neighbor(g.agent.Position(), sa.dir)
		if g.agent.Move(target) {
			if g.agent.Destination() != nil {
				g.stepsTaken++
			}
			g.checkArrival()
		}
		return
	}
}

// checkArrival scores a completed route when the agent reaches the
// destination and clears it.
func (g *Game) checkArrival() {
	dest := g.agent.Destination()
	if dest == nil || g.agent.Position() != dest {
		return
	}
	g.score++
	g.reached++
	g.routes = append(g.routes, core.RouteStat{
		PathLen: g.plannedLen,
		Steps:   g.stepsTaken,
	})
	g.agent.ClearDestination()
	g.plannedLen = 0
	g.stepsTaken = 0
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: false,
		Paused:   g.paused,
	}
}
