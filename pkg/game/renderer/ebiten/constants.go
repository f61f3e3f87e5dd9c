// Package ebiten provides an Ebiten-based 2D graphical renderer for Wumpus Hunt.
package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"wumpushunt/pkg/engine/input"
	"wumpushunt/pkg/game/world"
)

// Tile and window sizing. The window is sized for the largest cave so the
// layout never changes between levels.
const (
	tileSize   = 48
	tileGap    = 2
	gridMargin = 24
	hudHeight  = 120

	windowWidth  = gridMargin*2 + world.MaxGridSize*(tileSize+tileGap)
	windowHeight = gridMargin*2 + world.MaxGridSize*(tileSize+tileGap) + hudHeight
)

// Color palette for the cave - brighter colors for visibility
var (
	colorBackground = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorUnexplored = color.RGBA{60, 60, 80, 255}    // Dark slate for unknown cells
	colorExplored   = color.RGBA{160, 160, 180, 255} // Light gray floor
	colorScouted    = color.RGBA{100, 150, 255, 255} // Bright blue scout reveal
	colorAgent      = color.RGBA{0, 255, 0, 255}     // Bright green
	colorWumpus     = color.RGBA{255, 80, 80, 255}   // Bright red
	colorGold       = color.RGBA{255, 215, 0, 255}   // Gold
	colorPit        = color.RGBA{10, 10, 16, 255}    // Near black
	colorMarked     = color.RGBA{0, 220, 220, 255}   // Cyan player marks
)

// keyBindings maps just-pressed keys to game actions
var keyBindings = map[ebiten.Key]input.Action{
	ebiten.KeyArrowUp:    input.ActionMoveNorth,
	ebiten.KeyK:          input.ActionMoveNorth,
	ebiten.KeyArrowDown:  input.ActionMoveSouth,
	ebiten.KeyJ:          input.ActionMoveSouth,
	ebiten.KeyArrowLeft:  input.ActionMoveWest,
	ebiten.KeyH:          input.ActionMoveWest,
	ebiten.KeyArrowRight: input.ActionMoveEast,
	ebiten.KeyL:          input.ActionMoveEast,

	ebiten.KeyF: input.ActionShoot,
	ebiten.KeyT: input.ActionScout,

	ebiten.KeyN: input.ActionNewGame,
	ebiten.KeyC: input.ActionContinue,

	ebiten.KeySlash:  input.ActionHelp,
	ebiten.KeyEscape: input.ActionQuit,
}
