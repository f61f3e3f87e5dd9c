package ebiten

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"wumpushunt/pkg/engine/grid"
	"wumpushunt/pkg/engine/input"
	"wumpushunt/pkg/game/gameplay"
	"wumpushunt/pkg/game/renderer"
	"wumpushunt/pkg/game/state"
)

// Renderer drives the game through Ebiten's update/draw loop. Unlike the
// TUI it never blocks on input; key presses are translated to intents
// inside Update.
type Renderer struct {
	session *state.Session

	windowOpenedLogged bool
}

// New creates a new Ebiten renderer for the given session
func New(s *state.Session) *Renderer {
	return &Renderer{session: s}
}

// Run opens the window and hands control to Ebiten. It blocks until the
// player quits.
func (e *Renderer) Run() error {
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Wumpus Hunt")

	if err := ebiten.RunGame(e); err != nil {
		return fmt.Errorf("running game window: %w", err)
	}
	return nil
}

// Update handles input and game logic (Ebiten interface)
func (e *Renderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	now := time.Now()
	gameplay.Tick(e.session, now)

	for key, action := range keyBindings {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if action == input.ActionQuit {
			return ebiten.Termination
		}
		gameplay.ProcessIntent(e.session, input.Intent{Action: action}, now)
	}

	// Right click toggles a danger mark on the cell under the cursor
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if p, ok := e.cellAtCursor(); ok {
			gameplay.ProcessIntent(e.session, input.Intent{
				Action:    input.ActionMark,
				Target:    p,
				HasTarget: true,
			}, now)
		}
	}

	return nil
}

// cellAtCursor maps the mouse position to a grid cell, if it is over one.
func (e *Renderer) cellAtCursor() (grid.Point, bool) {
	x, y := ebiten.CursorPosition()
	col := (x - gridMargin) / (tileSize + tileGap)
	row := (y - gridMargin) / (tileSize + tileGap)

	p := grid.Point{Col: col, Row: row}
	if x < gridMargin || y < gridMargin || !grid.InBounds(p, e.session.World.GridSize) {
		return grid.Point{}, false
	}
	return p, true
}

// Layout returns the fixed logical screen size (Ebiten interface)
func (e *Renderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowWidth, windowHeight
}

// Init initializes the Ebiten renderer. Window setup happens in Run, so
// there is nothing to do here.
func (e *Renderer) Init() {}

// Clear is a no-op; Ebiten clears the screen each Draw.
func (e *Renderer) Clear() {}

// RenderFrame is a no-op; Ebiten renders continuously via Draw.
func (e *Renderer) RenderFrame(s *state.Session) {}

// GetInput is a no-op; input is handled event-based inside Update.
func (e *Renderer) GetInput() input.Intent {
	return input.Intent{Action: input.ActionNone}
}

// StyleText applies a style to text. The HUD uses the debug text face,
// which carries no styling, so the text passes through unchanged.
func (e *Renderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// FormatText formats a message; markup is stripped of styling for the HUD
func (e *Renderer) FormatText(msg string, args ...any) string {
	return fmt.Sprintf(msg, args...)
}

// ShowMessage displays a message to the user via the session log
func (e *Renderer) ShowMessage(msg string) {
	e.session.AddMessage(msg)
}
