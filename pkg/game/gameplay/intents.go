package gameplay

import (
	"time"

	"wumpushunt/pkg/engine/grid"
	"wumpushunt/pkg/engine/input"
	"wumpushunt/pkg/game/menu"
	"wumpushunt/pkg/game/state"
)

// ProcessIntent applies one high-level input intent to the session. Each
// action validates itself; anything the rules reject is a silent no-op.
// Quit is the caller's business, not the controller's.
func ProcessIntent(s *state.Session, in input.Intent, now time.Time) {
	switch in.Action {
	case input.ActionMoveNorth:
		Move(s, grid.North)
	case input.ActionMoveSouth:
		Move(s, grid.South)
	case input.ActionMoveEast:
		Move(s, grid.East)
	case input.ActionMoveWest:
		Move(s, grid.West)
	case input.ActionShoot:
		Shoot(s)
	case input.ActionScout:
		ActivateScout(s, now)
	case input.ActionMark:
		if in.HasTarget {
			ToggleMark(s, in.Target)
		}
	case input.ActionNewGame:
		NewGame(s)
	case input.ActionContinue:
		ContinueNextLevel(s)
	case input.ActionHelp:
		showHelp(s)
	}
}

func showHelp(s *state.Session) {
	for _, line := range menu.HelpLines() {
		s.AddMessage(line)
	}
	s.AddMessage("Breeze means a pit nearby; stench means the wumpus is close.")
}
