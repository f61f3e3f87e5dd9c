// Package menu builds the player-facing help text from the live key bindings,
// so the help never drifts from what the input layer actually accepts.
package menu

import (
	"fmt"
	"strings"

	engineinput "wumpushunt/pkg/engine/input"
)

// helpGroups clusters actions into one help line each, to keep the help
// short enough for the message pane.
var helpGroups = [][]engineinput.Action{
	{
		engineinput.ActionMoveNorth,
		engineinput.ActionMoveSouth,
		engineinput.ActionMoveWest,
		engineinput.ActionMoveEast,
	},
	{
		engineinput.ActionShoot,
		engineinput.ActionScout,
		engineinput.ActionMark,
	},
	{
		engineinput.ActionNewGame,
		engineinput.ActionContinue,
		engineinput.ActionQuit,
	},
}

// BindingLine returns "Action: code, code" for one action.
func BindingLine(act engineinput.Action) string {
	codes := engineinput.GetBindingsByAction()[act]
	codeText := strings.Join(codes, ", ")
	if codeText == "" {
		codeText = "(unbound)"
	}
	return fmt.Sprintf("%s: %s", engineinput.ActionName(act), codeText)
}

// HelpLines returns the grouped binding summary shown by the help action.
func HelpLines() []string {
	lines := make([]string, 0, len(helpGroups))
	for _, group := range helpGroups {
		parts := make([]string, 0, len(group))
		for _, act := range group {
			parts = append(parts, BindingLine(act))
		}
		lines = append(lines, strings.Join(parts, " | "))
	}
	return lines
}
