package input

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"

	"wumpushunt/pkg/engine/grid"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Abilities
	ActionShoot
	ActionScout
	ActionMark

	// Session control
	ActionNewGame
	ActionContinue

	// Meta / UI
	ActionHelp
	ActionQuit
)

// Intent is the 4th-layer, high-level description of what the player wants
// to do. Target carries the cell argument for actions that take one
// (marking); HasTarget distinguishes a real target from the zero point.
type Intent struct {
	Action    Action
	Target    grid.Point
	HasTarget bool
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "arrow_up", "shoot").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after deduplication. For a
// turn-based game each RawInput arrives already debounced by the terminal,
// but the distinct type keeps the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, full words, Vim)
	"arrow_up":    ActionMoveNorth,
	"north":       ActionMoveNorth,
	"k":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"south":       ActionMoveSouth,
	"j":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"west":        ActionMoveWest,
	"h":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"east":        ActionMoveEast,
	"l":           ActionMoveEast,

	// Arrow and scout
	"f":     ActionShoot,
	"shoot": ActionShoot,
	"fire":  ActionShoot,
	"t":     ActionScout,
	"scout": ActionScout,

	// Bare mark codes carry no target; "mark <col> <row>" is parsed
	// before the binding lookup.
	"m":    ActionMark,
	"mark": ActionMark,

	// Session control
	"n":        ActionNewGame,
	"new":      ActionNewGame,
	"restart":  ActionNewGame,
	"r":        ActionNewGame,
	"c":        ActionContinue,
	"continue": ActionContinue,

	// Help / quit
	"?":      ActionHelp,
	"help":   ActionHelp,
	"quit":   ActionQuit,
	"q":      ActionQuit,
	"escape": ActionQuit,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	return Interpret(ev.Code)
}

// Interpret converts a raw code or typed command line into an Intent.
// Unrecognized input yields ActionNone; the caller treats that as a no-op.
func Interpret(raw string) Intent {
	code := strings.ToLower(strings.TrimSpace(raw))
	if code == "" {
		return Intent{Action: ActionNone}
	}

	fields := strings.Fields(code)
	if fields[0] == "mark" || fields[0] == "m" {
		return parseMark(fields)
	}

	if act, ok := bindings[code]; ok {
		return Intent{Action: act}
	}
	if act, ok := fuzzyMatch(code); ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// parseMark handles "mark <col> <row>", flagging a suspected-dangerous cell.
func parseMark(fields []string) Intent {
	if len(fields) != 3 {
		return Intent{Action: ActionNone}
	}
	col, errCol := strconv.Atoi(fields[1])
	row, errRow := strconv.Atoi(fields[2])
	if errCol != nil || errRow != nil {
		return Intent{Action: ActionNone}
	}
	return Intent{
		Action:    ActionMark,
		Target:    grid.Point{Col: col, Row: row},
		HasTarget: true,
	}
}

// maxEditDistance is how many typos a word command may carry and still match.
const maxEditDistance = 2

// fuzzyMatch finds the closest word command within maxEditDistance edits, so
// "shooot" still shoots. Short bindings and device codes are excluded:
// one-character tokens are too easy to mistake for one another. Candidates
// are walked in sorted order so ties resolve deterministically.
func fuzzyMatch(code string) (Action, bool) {
	if len(code) < 3 {
		return ActionNone, false
	}

	candidates := make([]string, 0, len(bindings))
	for cand := range bindings {
		if len(cand) >= 3 && !strings.HasPrefix(cand, "arrow_") {
			candidates = append(candidates, cand)
		}
	}
	sort.Strings(candidates)

	best := ActionNone
	bestDist := maxEditDistance + 1
	for _, cand := range candidates {
		if dist := levenshtein.ComputeDistance(code, cand); dist < bestDist {
			best = bindings[cand]
			bestDist = dist
		}
	}
	if bestDist > maxEditDistance {
		return ActionNone, false
	}
	return best, true
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionShoot:
		return "Shoot"
	case ActionScout:
		return "Scout"
	case ActionMark:
		return "Mark Cell"
	case ActionNewGame:
		return "New Game"
	case ActionContinue:
		return "Continue"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
