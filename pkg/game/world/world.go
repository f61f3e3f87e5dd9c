// Package world owns the mutable state of a single wumpus hunt: hazard
// positions, the agent, the exploration record, ability timers and the
// game-over record. It exposes mutators for movement, combat, marking and
// hazard recomputation; the gameplay package decides when to call them.
package world

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"wumpushunt/pkg/engine/grid"
)

// Fixed rule parameters. These are design constants, not configuration.
const (
	// BaseGridSize is where a session starts; each won level grows the grid
	// by one up to MaxGridSize.
	BaseGridSize = 6
	MaxGridSize  = 10

	// Pit quota: 3 pits on a 6x6 grid, four more per extra size step.
	pitQuotaBase = 3
	pitQuotaStep = 4

	// WumpusMoveInterval is the player-move cadence of wumpus wandering.
	WumpusMoveInterval = 3

	// unexploredWeight biases wandering toward cells the agent has not seen.
	unexploredWeight = 3
)

// PitQuota returns the number of pits a freshly generated world should carry.
func PitQuota(size int) int {
	return pitQuotaBase + pitQuotaStep*(size-BaseGridSize)
}

// CellSet is a set of board coordinates.
type CellSet = mapset.Set[grid.Point]

// World is the single mutable aggregate for one level: every rule decision
// reads from or writes to it. It is rebuilt from scratch on new game and on
// level continuation, never incrementally reset.
type World struct {
	GridSize int

	AgentPos  grid.Point
	WumpusPos grid.Point
	GoldPos   grid.Point

	WumpusAlive bool

	// Pits and GoldPos are immutable once generation finishes.
	Pits CellSet

	// Explored grows monotonically: cells the agent has visited or scouted.
	Explored CellSet

	// Marked holds player-flagged suspected-dangerous cells. Purely
	// advisory; no rule reads it.
	Marked CellSet

	// Derived cue sets, rebuilt whenever hazard positions change.
	Stench CellSet
	Breeze CellSet

	HasGold  bool
	HasArrow bool

	// MoveCount is the player-visible score; PlayerMoveCount drives the
	// wumpus-movement cadence. They advance together.
	MoveCount       int
	PlayerMoveCount int

	// OptimalMoves is the precomputed round-trip start→gold→start length.
	// Zero means no path was found and efficiency reporting is suppressed.
	OptimalMoves int

	GameOver        bool
	Won             bool
	GameOverMessage []string

	Scout Scout

	rng *rand.Rand
}

// New returns an empty world of the given size: agent on the start cell,
// arrow in hand, nothing placed yet. The generator populates hazards.
func New(size int, rng *rand.Rand) *World {
	start := grid.Start(size)
	w := &World{
		GridSize:    size,
		AgentPos:    start,
		WumpusAlive: true,
		HasArrow:    true,
		Pits:        mapset.New[grid.Point](),
		Explored:    mapset.New[grid.Point](),
		Marked:      mapset.New[grid.Point](),
		Stench:      mapset.New[grid.Point](),
		Breeze:      mapset.New[grid.Point](),
		rng:         rng,
	}
	w.Explored.Put(start)
	w.Scout.Revealed = mapset.New[grid.Point]()
	return w
}

// Start returns the fixed start cell of this world.
func (w *World) Start() grid.Point {
	return grid.Start(w.GridSize)
}

// MoveAgent applies one step of agent movement: position, counters and the
// exploration record. Returns false without any state change when the
// destination is out of bounds.
func (w *World) MoveAgent(d grid.Direction) bool {
	dest := w.AgentPos.Add(d)
	if !grid.InBounds(dest, w.GridSize) {
		return false
	}
	w.AgentPos = dest
	w.MoveCount++
	w.PlayerMoveCount++
	w.Explored.Put(dest)
	return true
}

// FireArrow consumes the arrow and reports whether it killed the wumpus.
// The shot connects only against a live wumpus in an orthogonally adjacent
// cell; the arrow is spent either way. Firing without an arrow is a no-op.
func (w *World) FireArrow() bool {
	if !w.HasArrow {
		return false
	}
	w.HasArrow = false
	if w.WumpusAlive && w.AgentPos.Adjacent(w.WumpusPos) {
		w.KillWumpus()
		return true
	}
	return false
}

// KillWumpus marks the wumpus dead and clears its stench.
func (w *World) KillWumpus() {
	w.WumpusAlive = false
	w.RecomputeHazards()
}

// PickUpGold transfers the gold from the floor to the agent.
func (w *World) PickUpGold() {
	w.HasGold = true
}

// ToggleMark flips the advisory danger flag on an in-bounds cell.
func (w *World) ToggleMark(p grid.Point) {
	if !grid.InBounds(p, w.GridSize) {
		return
	}
	if w.Marked.Has(p) {
		w.Marked.Remove(p)
	} else {
		w.Marked.Put(p)
	}
}

// SetGameOver records the terminal result. The message lines are shown until
// the next regeneration.
func (w *World) SetGameOver(won bool, lines ...string) {
	w.GameOver = true
	w.Won = won
	w.GameOverMessage = lines
}

// ContinueOffered reports whether a larger follow-up level is on offer.
func (w *World) ContinueOffered() bool {
	return w.GameOver && w.Won && w.GridSize < MaxGridSize
}
