// Package input reads player input from the terminal and maps it to
// high-level intents through a small layered pipeline: raw device codes,
// debounced events, bindings, and finally Intents.
package input

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/term"
)

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence.
// Returns the arrow code string if successful, empty string otherwise.
func tryReadArrowKey(firstByte byte) string {
	if firstByte != 0x1b {
		return ""
	}

	b2, err := readByte()
	if err != nil {
		return ""
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return ""
	}

	b3, err := readByte()
	if err != nil {
		return ""
	}

	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	return ""
}

// GetInputWithArrows reads input with support for arrow keys.
// Arrow keys return immediately without needing Enter; text commands are
// collected until Enter as normal.
func GetInputWithArrows() string {
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("Cannot set terminal to raw mode: %v", err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	b1, err := readByte()
	if err != nil {
		log.Fatalf("Cannot read stdin: %v", err)
	}

	if b1 == 0x1b {
		if arrowKey := tryReadArrowKey(b1); arrowKey != "" {
			fmt.Println()
			return arrowKey
		}
		return ""
	}

	// Ctrl+C
	if b1 == 3 {
		fmt.Println()
		os.Exit(0)
	}

	if b1 == '\n' || b1 == '\r' {
		return ""
	}

	var line []byte
	if b1 >= 32 && b1 < 127 {
		line = append(line, b1)
		fmt.Print(string(b1)) // echo
	}

	for {
		b, err := readByte()
		if err != nil {
			break
		}

		// Arrow keys pressed mid-line are discarded rather than spliced in.
		if b == 0x1b {
			tryReadArrowKey(b)
			continue
		}

		if b == '\n' || b == '\r' {
			fmt.Println()
			break
		}

		// Backspace
		if b == 127 || b == 8 {
			if len(line) > 0 {
				line = line[:len(line)-1]
				fmt.Print("\b \b")
			}
			continue
		}

		if b == 3 {
			fmt.Println()
			os.Exit(0)
		}

		if b >= 32 && b < 127 {
			line = append(line, b)
			fmt.Print(string(b))
		}
	}

	return string(line)
}
