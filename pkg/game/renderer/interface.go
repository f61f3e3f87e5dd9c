package renderer

import (
	"wumpushunt/pkg/engine/input"
	"wumpushunt/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleCell
	StyleAgent
	StyleHazard
	StyleGold
	StyleMarked
	StyleScout
	StyleAction
	StyleActionShort
	StyleSubtle
	StyleDenied
)

// Renderer defines the interface for game rendering backends
// Implementations can include TUI (terminal), Ebiten, etc.
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame
	// This includes the cave grid, status bar, messages, and input prompt
	RenderFrame(s *state.Session)

	// GetInput gets the next player intent (blocking for TUI, event-based
	// for GUI)
	GetInput() input.Intent

	// StyleText applies a style to text and returns the styled string
	// For TUI this applies ANSI colors, for GUI it may return markup
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete game frame
func RenderFrame(s *state.Session) {
	if Current != nil {
		Current.RenderFrame(s)
	}
}

// GetInput gets user input from the current renderer
func GetInput() input.Intent {
	if Current != nil {
		return Current.GetInput()
	}
	return input.Intent{Action: input.ActionNone}
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// FormatText formats a message with markup
func FormatText(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return msg
}

// ShowMessage displays a message to the user
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}
