// Package state holds the per-session aggregate owned by the game controller.
package state

import (
	"math/rand"
	"time"

	"wumpushunt/pkg/game/world"
)

// Session is one player's run of the game: the live world plus the
// presentation-facing message log. The world is rebuilt wholesale on new
// game and on level continuation; the session object itself persists and
// keeps the random source.
type Session struct {
	World *world.World

	Messages []string

	// Rng drives every random decision in the session, generation and
	// wumpus wandering alike, so tests can substitute a fixed seed.
	Rng *rand.Rand
}

const maxMessages = 5

// NewSession creates a session with a time-seeded random source and no
// world; the gameplay lifecycle generates the first level.
func NewSession() *Session {
	return &Session{
		Rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		Messages: make([]string, 0),
	}
}

// AddMessage appends to the log, keeping only the most recent entries.
func (s *Session) AddMessage(msg string) {
	s.Messages = append(s.Messages, msg)
	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
}

// ClearMessages clears the message log.
func (s *Session) ClearMessages() {
	s.Messages = make([]string, 0)
}
