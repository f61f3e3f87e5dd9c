package world

import (
	"github.com/zyedidia/generic/mapset"

	"wumpushunt/pkg/engine/grid"
)

// RecomputeHazards rebuilds the stench and breeze cue sets from scratch.
// Called at generation time and whenever the wumpus moves or dies. A dead
// wumpus leaves no stench.
func (w *World) RecomputeHazards() {
	w.Stench = mapset.New[grid.Point]()
	w.Breeze = mapset.New[grid.Point]()

	if w.WumpusAlive {
		for _, n := range grid.Neighbors(w.WumpusPos, w.GridSize) {
			w.Stench.Put(n)
		}
	}

	w.Pits.Each(func(pit grid.Point) {
		for _, n := range grid.Neighbors(pit, w.GridSize) {
			w.Breeze.Put(n)
		}
	})
}

// StenchAt reports a perceivable stench cue at p. Cues exist only in cells
// the agent has already explored, even when the raw cue set is larger.
func (w *World) StenchAt(p grid.Point) bool {
	return w.Explored.Has(p) && w.Stench.Has(p)
}

// BreezeAt reports a perceivable breeze cue at p, filtered like StenchAt.
func (w *World) BreezeAt(p grid.Point) bool {
	return w.Explored.Has(p) && w.Breeze.Has(p)
}

// PitVisibleAt reports a pit the player can see: one on an explored cell.
// The scout can reveal a pit without anyone falling into it.
func (w *World) PitVisibleAt(p grid.Point) bool {
	return w.Explored.Has(p) && w.Pits.Has(p)
}

// GoldVisible reports whether the gold is on the floor of an explored cell.
func (w *World) GoldVisible() bool {
	return !w.HasGold && w.Explored.Has(w.GoldPos)
}

// WumpusVisible reports whether the live wumpus stands on an explored cell.
func (w *World) WumpusVisible() bool {
	return w.WumpusAlive && w.Explored.Has(w.WumpusPos)
}
