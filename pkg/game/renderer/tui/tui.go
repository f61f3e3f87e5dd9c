package tui

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"wumpushunt/pkg/engine/grid"
	"wumpushunt/pkg/engine/input"
	"wumpushunt/pkg/engine/terminal"
	"wumpushunt/pkg/game/renderer"
	"wumpushunt/pkg/game/state"
	"wumpushunt/pkg/game/world"
)

// Icon constants for the cave grid
const (
	AgentIcon      = "@"
	IconWumpus     = "W"
	IconGold       = "G"
	IconPit        = "▼"
	IconMarked     = "!"
	IconExplored   = "·"
	IconUnexplored = "▒"
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorEnabled bool

	colorCell        color.Style
	colorAgent       color.Style
	colorHazard      color.Style
	colorGold        color.Style
	colorMarked      color.Style
	colorScout       color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorSubtle      color.Style
	colorDenied      color.Style

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer
func New(colorEnabled bool) *TUIRenderer {
	return &TUIRenderer{colorEnabled: colorEnabled}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	if !t.colorEnabled {
		color.Disable()
	}

	t.colorCell = color.Style{color.FgGray}
	t.colorAgent = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorHazard = color.Style{color.FgRed, color.OpBold}
	t.colorGold = color.Style{color.FgYellow, color.OpBold}
	t.colorMarked = color.Style{color.FgCyan, color.OpBold}
	t.colorScout = color.Style{color.FgBlue, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`)
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// GetInput gets user input from the terminal and returns a high-level Intent.
func (t *TUIRenderer) GetInput() input.Intent {
	raw := input.RawInput{
		Device: input.DeviceTerminal,
		Code:   input.GetInputWithArrows(),
		// Timestamp left zero for now; terminal input is inherently low frequency.
	}
	debounced := input.NewDebouncedInput(raw)
	return input.MapToIntent(debounced)
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleCell:
		return t.colorCell.Sprint(text)
	case renderer.StyleAgent:
		return t.colorAgent.Sprint(text)
	case renderer.StyleHazard:
		return t.colorHazard.Sprint(text)
	case renderer.StyleGold:
		return t.colorGold.Sprint(text)
	case renderer.StyleMarked:
		return t.colorMarked.Sprint(text)
	case renderer.StyleScout:
		return t.colorScout.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		val := "blat"

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "GOLD":
			val = t.colorGold.Sprint(operand)
		case "HAZARD":
			val = t.colorHazard.Sprint(operand)
		case "CELL":
			val = t.colorCell.Sprint(operand)
		case "ACTION":
			val = t.colorActionShort.Sprint(operand[0:1]) + t.colorAction.Sprint(operand[1:])
		default:
			ret = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Println(msg)
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(s *state.Session) {
	w := s.World

	// Cave size indicator in top left
	t.colorAction.Printf("Cave %dx%d\n\n", w.GridSize, w.GridSize)

	t.printGrid(w)
	t.printPerception(w)
	t.printStatusBar(w)
	t.printPossibleActions(w)
	t.printMessagesPane(s)

	if w.GameOver {
		t.printGameOver(w)
	}

	fmt.Printf("\n> ")
}

// printBullet prints a bulleted item
func (t *TUIRenderer) printBullet(txt string) {
	fmt.Print("- " + t.FormatText("%s", txt) + "\n")
}

// renderCell returns the string representation of a cell
func (t *TUIRenderer) renderCell(w *world.World, p grid.Point) string {
	// Agent position
	if w.AgentPos == p {
		return t.colorAgent.Sprint(AgentIcon)
	}

	// The wumpus and the gold only render once their cell has been explored
	if w.WumpusVisible() && w.WumpusPos == p {
		return t.colorHazard.Sprint(IconWumpus)
	}
	if w.GoldVisible() && w.GoldPos == p {
		return t.colorGold.Sprint(IconGold)
	}
	if w.PitVisibleAt(p) {
		return t.colorHazard.Sprint(IconPit)
	}

	// Player annotations
	if w.Marked.Has(p) {
		return t.colorMarked.Sprint(IconMarked)
	}

	// Scout reveals render brighter than ordinary explored floor
	if w.Scout.Active && w.Scout.Revealed.Has(p) {
		return t.colorScout.Sprint(IconExplored)
	}

	if w.Explored.Has(p) {
		return t.colorCell.Sprint(IconExplored)
	}

	return t.colorSubtle.Sprint(IconUnexplored)
}

// printGrid renders the cave grid with coordinate labels, so mark commands
// can name cells directly.
func (t *TUIRenderer) printGrid(w *world.World) {
	fmt.Print("    ")
	for col := 0; col < w.GridSize; col++ {
		fmt.Printf("%d ", col)
	}
	fmt.Println()

	for row := 0; row < w.GridSize; row++ {
		fmt.Printf(" %d  ", row)
		for col := 0; col < w.GridSize; col++ {
			fmt.Print(t.renderCell(w, grid.Point{Col: col, Row: row}))
			fmt.Print(" ")
		}
		fmt.Println()
	}
	fmt.Println()
}

// printPerception prints the hazard cues for the agent's current cell.
func (t *TUIRenderer) printPerception(w *world.World) {
	if w.BreezeAt(w.AgentPos) {
		fmt.Println(t.colorHazard.Sprint(gotext.Get("You feel a breeze.")))
	}
	if w.StenchAt(w.AgentPos) {
		fmt.Println(t.colorHazard.Sprint(gotext.Get("You smell a stench.")))
	}
}

// printStatusBar renders the moves/equipment status line
func (t *TUIRenderer) printStatusBar(w *world.World) {
	fmt.Println()

	fmt.Print(t.colorSubtle.Sprint("Moves: "))
	if w.OptimalMoves > 0 {
		fmt.Printf("%d (optimal %d)", w.MoveCount, w.OptimalMoves)
	} else {
		fmt.Printf("%d", w.MoveCount)
	}

	fmt.Print(t.colorSubtle.Sprint("   Arrow: "))
	if w.HasArrow {
		fmt.Print("ready")
	} else {
		fmt.Print(t.colorSubtle.Sprint("spent"))
	}

	fmt.Print(t.colorSubtle.Sprint("   Gold: "))
	if w.HasGold {
		fmt.Print(t.colorGold.Sprint("carried"))
	} else {
		fmt.Print(t.colorSubtle.Sprint("none"))
	}

	fmt.Print(t.colorSubtle.Sprint("   Scout: "))
	if remaining := w.Scout.CooldownRemaining(time.Now()); remaining > 0 {
		fmt.Print(t.colorSubtle.Sprintf("ready in %ds", int(remaining.Seconds())+1))
	} else {
		fmt.Print("ready")
	}

	fmt.Println()
}

// printPossibleActions prints the available actions
func (t *TUIRenderer) printPossibleActions(w *world.World) {
	t.printBullet("ACTION{?}: \tShow help")
	if w.ContinueOffered() {
		t.printBullet("ACTION{continue}: \tDescend to a bigger cave")
	}
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(s *state.Session) {
	width := terminal.GetWidth()

	label := " Messages "
	labelLen := len(label)
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", width-sideLen-labelLen)

	fmt.Println()
	fmt.Println(t.colorSubtle.Sprint(leftDashes + label + rightDashes))

	if len(s.Messages) == 0 {
		fmt.Println(t.colorSubtle.Sprint("  (no messages)"))
	} else {
		for _, msg := range s.Messages {
			fmt.Printf("  %s\n", msg)
		}
	}

	fmt.Println(t.colorSubtle.Sprint(strings.Repeat("─", width)))
}

// printGameOver renders the end-of-game banner
func (t *TUIRenderer) printGameOver(w *world.World) {
	fmt.Println()
	for i, line := range w.GameOverMessage {
		if i == 0 && !w.Won {
			fmt.Println(t.colorDenied.Sprint(line))
			continue
		}
		if i == 0 {
			fmt.Println(t.colorGold.Sprint(line))
			continue
		}
		fmt.Println(t.colorSubtle.Sprint(line))
	}
}
