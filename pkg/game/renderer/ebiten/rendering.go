package ebiten

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"wumpushunt/pkg/engine/grid"
	"wumpushunt/pkg/game/world"
)

// Draw renders the cave grid and HUD (Ebiten interface)
func (e *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	w := e.session.World
	for row := 0; row < w.GridSize; row++ {
		for col := 0; col < w.GridSize; col++ {
			p := grid.Point{Col: col, Row: row}
			x := float32(gridMargin + col*(tileSize+tileGap))
			y := float32(gridMargin + row*(tileSize+tileGap))
			vector.DrawFilledRect(screen, x, y, tileSize, tileSize, cellColor(w, p), false)
		}
	}

	e.drawHUD(screen)
}

// cellColor classifies a cell the same way the terminal renderer picks
// icons: agent first, then hazards filtered through exploration, then
// player annotations, then floor.
func cellColor(w *world.World, p grid.Point) color.Color {
	switch {
	case w.AgentPos == p:
		return colorAgent
	case w.WumpusVisible() && w.WumpusPos == p:
		return colorWumpus
	case w.GoldVisible() && w.GoldPos == p:
		return colorGold
	case w.PitVisibleAt(p):
		return colorPit
	case w.Marked.Has(p):
		return colorMarked
	case w.Scout.Active && w.Scout.Revealed.Has(p):
		return colorScouted
	case w.Explored.Has(p):
		return colorExplored
	default:
		return colorUnexplored
	}
}

// drawHUD prints the status line, hazard cues, message log and game-over
// banner below the grid.
func (e *Renderer) drawHUD(screen *ebiten.Image) {
	w := e.session.World
	top := gridMargin + w.GridSize*(tileSize+tileGap) + 8
	line := func(n int, msg string) {
		ebitenutil.DebugPrintAt(screen, msg, gridMargin, top+n*14)
	}

	status := fmt.Sprintf("Moves: %d", w.MoveCount)
	if w.OptimalMoves > 0 {
		status += fmt.Sprintf(" (optimal %d)", w.OptimalMoves)
	}
	if w.HasArrow {
		status += "   Arrow: ready"
	} else {
		status += "   Arrow: spent"
	}
	if w.HasGold {
		status += "   Gold: carried"
	}
	if remaining := w.Scout.CooldownRemaining(time.Now()); remaining > 0 {
		status += fmt.Sprintf("   Scout: ready in %ds", int(remaining.Seconds())+1)
	} else {
		status += "   Scout: ready"
	}
	line(0, status)

	cues := ""
	if w.BreezeAt(w.AgentPos) {
		cues += "You feel a breeze. "
	}
	if w.StenchAt(w.AgentPos) {
		cues += "You smell a stench."
	}
	line(1, cues)

	for i, msg := range e.session.Messages {
		line(2+i, msg)
	}

	if w.GameOver {
		row := 2 + len(e.session.Messages)
		for i, msg := range w.GameOverMessage {
			line(row+i, msg)
		}
		if w.ContinueOffered() {
			line(row+len(w.GameOverMessage), "Press C to descend to a bigger cave.")
		}
	}
}
