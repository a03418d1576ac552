package hexstar

import (
	"fmt"
	"math"

	"github.com/vovakirdan/hexstar/internal/core"
	"github.com/vovakirdan/hexstar/internal/hexgrid"
)

// Face colors cycle so no two touching hexes share a color.
var facePalette = [3]core.Color{core.ColorRed, core.ColorGreen, core.ColorBlue}

// brightOf maps a face color to its highlighted variant.
func brightOf(c core.Color) core.Color {
	switch c {
	case core.ColorRed:
		return core.ColorBrightRed
	case core.ColorGreen:
		return core.ColorBrightGreen
	case core.ColorBlue:
		return core.ColorBrightBlue
	default:
		return core.ColorBrightWhite
	}
}

func faceColor(c *hexgrid.Cell) core.Color {
	idx := (c.Coord.Col + 2*(c.Coord.Row%2)) % 3
	col := facePalette[idx]
	if c.Highlighted {
		return brightOf(col)
	}
	return col
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderField(dst)
	g.renderPath(dst)
	g.renderMarkers(dst)

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s — Score: %d  Blocked: %d", g.Title(), g.score, g.grid.BlockedCount())
	if g.agent != nil && g.agent.Destination() != nil {
		d := g.agent.Destination().Coord
		hud += fmt.Sprintf("  Dest: (%d,%d)", d.Row, d.Col)
		if len(g.agent.Path()) == 0 {
			hud += " unreachable"
		}
	}
	dst.DrawText(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// renderField rasterizes the hexagons. Every screen cell of the playfield is
// sampled at its virtual pixel center; samples whose screened neighbors
// resolve to a different hex sit on an edge.
func (g *Game) renderField(dst *core.Screen) {
	for cy := g.field.Y; cy < g.field.Bottom(); cy++ {
		for cx := g.field.X; cx < g.field.Right(); cx++ {
			px, py := g.pixelAt(cx, cy)
			cell := g.resolver.Resolve(g.grid, px, py)
			if cell == nil {
				continue
			}

			if cell.Blocked {
				dst.SetCell(cx, cy, '░', core.ColorGray)
				continue
			}

			r := '█'
			if g.drawEdges && g.onEdge(cell, px, py) {
				r = '▒'
			}
			dst.SetCell(cx, cy, r, faceColor(cell))
		}
	}
}

// onEdge reports whether a sample's screen neighbors resolve to a different
// hex. One screen cell spans two virtual pixels vertically, so the vertical
// probes sit one screen row away.
func (g *Game) onEdge(cell *hexgrid.Cell, px, py float64) bool {
	probes := [4][2]float64{
		{px - 1, py},
		{px + 1, py},
		{px, py - 2},
		{px, py + 2},
	}
	for _, p := range probes {
		if g.resolver.Resolve(g.grid, p[0], p[1]) != cell {
			return true
		}
	}
	return false
}

// renderPath marks the cells of the current route through their centers.
func (g *Game) renderPath(dst *core.Screen) {
	for _, cell := range g.agent.Path() {
		if cell == g.agent.Position() || cell == g.agent.Destination() {
			continue
		}
		cx, cy := g.screenCellAt(cell.Center)
		dst.SetCell(cx, cy, '•', core.ColorBrightYellow)
	}
}

// renderMarkers draws the destination and the agent, in that order so the
// agent stays visible when standing on its destination.
func (g *Game) renderMarkers(dst *core.Screen) {
	if dest := g.agent.Destination(); dest != nil {
		cx, cy := g.screenCellAt(dest.Center)
		dst.SetCell(cx, cy, '◆', core.ColorBrightMagenta)
	}

	cx, cy := g.screenCellAt(g.agent.Center())
	dst.SetCell(cx, cy, 'O', core.ColorBrightWhite)
}

// screenCellAt inverts pixelAt: the screen cell whose sample center is
// nearest to the given pixel position.
func (g *Game) screenCellAt(p hexgrid.Point) (int, int) {
	cx := g.field.X + int(math.Round(p.X-0.5))
	cy := g.field.Y + int(math.Round((p.Y-1)/2))
	return cx, cy
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(boxY+3, line2, core.ColorDefault)
}
