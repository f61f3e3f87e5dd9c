package world

import "wumpushunt/pkg/engine/grid"

// MoveWumpus relocates the wumpus one step using the wander policy:
// candidates are the in-bounds orthogonal non-pit neighbors of its cell,
// weighted 3:1 in favor of cells the agent has not explored. Returns true
// when the position actually changed, in which case the cue sets are
// rebuilt. A dead wumpus, or one with no legal candidate, stays put; that is
// a no-op, not an error.
func (w *World) MoveWumpus() bool {
	if !w.WumpusAlive {
		return false
	}

	var candidates []grid.Point
	var weights []int
	total := 0
	for _, n := range grid.Neighbors(w.WumpusPos, w.GridSize) {
		if w.Pits.Has(n) {
			continue
		}
		weight := 1
		if !w.Explored.Has(n) {
			weight = unexploredWeight
		}
		candidates = append(candidates, n)
		weights = append(weights, weight)
		total += weight
	}
	if len(candidates) == 0 {
		return false
	}

	pick := w.rng.Intn(total)
	for i, weight := range weights {
		if pick < weight {
			w.WumpusPos = candidates[i]
			w.RecomputeHazards()
			return true
		}
		pick -= weight
	}
	return false
}
