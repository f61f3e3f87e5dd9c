package gameplay

import (
	"fmt"

	"wumpushunt/pkg/game/state"
)

const restartPrompt = "Press N for a new game."

// evaluateOutcome applies the win/loss rules after a move or a shot, in
// fixed precedence: eaten by the wumpus, fallen into a pit, gold pickup,
// then victory on the start cell while carrying the gold. Gold pickup keeps
// the game live; the other three branches end it.
func evaluateOutcome(s *state.Session) {
	w := s.World
	if w.GameOver {
		return
	}

	switch {
	case w.WumpusAlive && w.AgentPos == w.WumpusPos:
		w.SetGameOver(false, "The wumpus ate you!", restartPrompt)

	case w.Pits.Has(w.AgentPos):
		w.SetGameOver(false, "You fell into a pit!", restartPrompt)

	case !w.HasGold && w.AgentPos == w.GoldPos:
		w.PickUpGold()
		s.AddMessage("You scoop up the gold! Now get back to where you started.")

	case w.HasGold && w.AgentPos == w.Start():
		w.SetGameOver(true,
			fmt.Sprintf("You escaped with the gold in %d moves!", w.MoveCount),
			restartPrompt)
	}
}
