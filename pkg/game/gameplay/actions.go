package gameplay

import (
	"time"

	"wumpushunt/pkg/engine/grid"
	"wumpushunt/pkg/game/state"
	"wumpushunt/pkg/game/world"
)

// Move walks the agent one cell in the given direction. Out-of-bounds moves
// and moves after game over are silent no-ops. Every third player move sends
// the wumpus wandering after the agent's step lands and before the outcome
// is evaluated.
func Move(s *state.Session, dir grid.Direction) {
	w := s.World
	if w == nil || w.GameOver {
		return
	}
	if !w.MoveAgent(dir) {
		return
	}
	if w.PlayerMoveCount%world.WumpusMoveInterval == 0 {
		w.MoveWumpus()
	}
	evaluateOutcome(s)
}

// Shoot fires the single arrow. Without an arrow the action is a silent
// no-op; otherwise the arrow is spent whether or not it connects.
func Shoot(s *state.Session) {
	w := s.World
	if w == nil || w.GameOver || !w.HasArrow {
		return
	}
	if w.FireArrow() {
		s.AddMessage("Your arrow strikes true. The wumpus is dead.")
	} else {
		s.AddMessage("The arrow clatters away into the dark.")
	}
	evaluateOutcome(s)
}

// ActivateScout requests a scout reveal at the given instant. Requests
// inside the reuse gate are ignored without comment.
func ActivateScout(s *state.Session, now time.Time) {
	w := s.World
	if w == nil || w.GameOver {
		return
	}
	if w.ActivateScout(now) {
		s.AddMessage("The scout darts out and sketches the cells around you.")
	}
}

// ToggleMark flips the player's advisory danger flag on a cell.
func ToggleMark(s *state.Session, cell grid.Point) {
	w := s.World
	if w == nil || w.GameOver {
		return
	}
	w.ToggleMark(cell)
}

// Tick advances time-driven state. Call once per frame with the current
// monotonic clock reading; the scout window and cooldown are recomputed
// from it rather than counted down.
func Tick(s *state.Session, now time.Time) {
	if s.World == nil {
		return
	}
	s.World.Scout.Tick(now)
}
