package world

import (
	"time"

	"github.com/zyedidia/generic/mapset"

	"wumpushunt/pkg/engine/grid"
)

// Scout ability timing. The reuse gate and the visual window are independent
// durations: the highlight fades after one second, the ability comes back
// after ten.
const (
	ScoutCooldown     = 10 * time.Second
	ScoutActiveWindow = time.Second
)

// Scout is the time-gated reveal ability. Every timing decision takes the
// current instant as an argument, so the state machine never reads the wall
// clock itself and stays deterministic under test.
type Scout struct {
	// Active is true during the short visual window after an activation.
	Active bool

	// Revealed holds the cells lit by the current activation. It is
	// transient display state; the permanent record goes into
	// World.Explored at activation time.
	Revealed CellSet

	lastActivation time.Time
}

// CanActivate reports whether the reuse gate is open at the given instant.
// A scout that has never been used is always ready.
func (s *Scout) CanActivate(now time.Time) bool {
	return s.lastActivation.IsZero() || now.Sub(s.lastActivation) >= ScoutCooldown
}

// CooldownRemaining returns the time left on the reuse gate, clamped at
// zero. Recomputed from the activation timestamp on every call rather than
// counted down, so a caller may poll it each tick.
func (s *Scout) CooldownRemaining(now time.Time) time.Duration {
	if s.lastActivation.IsZero() {
		return 0
	}
	remaining := ScoutCooldown - now.Sub(s.lastActivation)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Tick expires the active visual window. Cells explored by the activation
// stay explored; only the transient highlight is dropped.
func (s *Scout) Tick(now time.Time) {
	if s.Active && now.Sub(s.lastActivation) >= ScoutActiveWindow {
		s.Active = false
		s.Revealed = mapset.New[grid.Point]()
	}
}

// ActivateScout reveals the agent's in-bounds orthogonal neighbors, adding
// them both to the permanent explored set and to the transient reveal set.
// Requests inside the reuse gate are silently ignored; the return value only
// tells the caller whether anything happened.
func (w *World) ActivateScout(now time.Time) bool {
	if !w.Scout.CanActivate(now) {
		return false
	}

	w.Scout.Revealed = mapset.New[grid.Point]()
	for _, n := range grid.Neighbors(w.AgentPos, w.GridSize) {
		w.Scout.Revealed.Put(n)
		w.Explored.Put(n)
	}

	w.Scout.Active = true
	w.Scout.lastActivation = now
	return true
}
