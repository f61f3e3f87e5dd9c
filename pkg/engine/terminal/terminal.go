// Package terminal reports terminal geometry for the text renderer.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const DefaultWidth = 80

// GetWidth returns the current terminal width in columns. Falls back to
// DefaultWidth when stdout is not a terminal.
func GetWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth
	}
	return width
}
