// Package gameplay implements the turn state machine: it interprets input
// intents against the session's world and applies movement, combat,
// scouting, marking and win/loss evaluation.
package gameplay

import (
	"fmt"
	"log"

	"wumpushunt/pkg/game/generator"
	"wumpushunt/pkg/game/state"
	"wumpushunt/pkg/game/world"
)

// BuildSession creates a session with a freshly generated base-size world.
func BuildSession() *state.Session {
	s := state.NewSession()
	regenerate(s, world.BaseGridSize)
	s.AddMessage("Welcome to the wumpus's cave.")
	s.AddMessage("Find the gold and carry it back to where you started.")
	return s
}

// NewGame discards the current world and starts over at the base grid size.
// Allowed at any time, terminal or not.
func NewGame(s *state.Session) {
	s.ClearMessages()
	s.AddMessage("A new cave. Find the gold and bring it home.")
	regenerate(s, world.BaseGridSize)
}

// ContinueNextLevel regenerates one grid size larger. It is a no-op unless
// the previous level was won and a larger grid exists.
func ContinueNextLevel(s *state.Session) {
	if s.World == nil || !s.World.ContinueOffered() {
		return
	}
	size := s.World.GridSize + 1
	s.ClearMessages()
	s.AddMessage(fmt.Sprintf("The cave grows to %dx%d. Watch your step.", size, size))
	regenerate(s, size)
}

func regenerate(s *state.Session, size int) {
	w, shortfall := generator.Generate(size, s.Rng)
	if shortfall > 0 {
		log.Printf("generator: %d pits under quota on a %dx%d grid", shortfall, size, size)
		s.AddMessage("The cave floor feels firmer than usual.")
	}
	s.World = w
}
