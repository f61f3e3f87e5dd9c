// Package generator builds random, guaranteed-solvable wumpus worlds.
package generator

import (
	"math/rand"

	"wumpushunt/pkg/engine/grid"
	"wumpushunt/pkg/engine/path"
	"wumpushunt/pkg/game/world"
)

// MaxPitAttempts bounds the rejection-sampling loop for pit placement. When
// the cap is hit the world ships with fewer pits than quota; that is a
// shortfall the caller may report, never a generation failure.
const MaxPitAttempts = 100

// Generate produces a populated world of the given size. The returned
// shortfall is the number of pits under quota, zero in the normal case.
//
// Placement order: wumpus (anywhere but the start), gold (anywhere but the
// start and the wumpus), then pits one at a time. A pit candidate is
// rejected when it collides with the agent, wumpus or gold, duplicates an
// existing pit, or sits orthogonally adjacent to the start cell. A
// tentatively placed pit that cuts off the start→gold path is reverted, so
// the reachability invariant holds for every generated world. Wumpus
// occupancy never blocks traversal, which is why reachability needs no
// re-validation when the wumpus later wanders.
func Generate(size int, rng *rand.Rand) (*world.World, int) {
	w := world.New(size, rng)
	start := w.Start()

	w.WumpusPos = randomCellExcluding(rng, size, start)
	w.GoldPos = randomCellExcluding(rng, size, start, w.WumpusPos)

	quota := world.PitQuota(size)
	for attempts := 0; attempts < MaxPitAttempts && w.Pits.Size() < quota; attempts++ {
		candidate := randomCell(rng, size)
		if candidate == start || candidate == w.WumpusPos || candidate == w.GoldPos {
			continue
		}
		if w.Pits.Has(candidate) || candidate.Adjacent(start) {
			continue
		}

		w.Pits.Put(candidate)
		if !path.Reachable(start, w.GoldPos, size, w.Pits.Has) {
			w.Pits.Remove(candidate)
		}
	}

	w.RecomputeHazards()

	if length, ok := path.Shortest(start, w.GoldPos, size, w.Pits.Has); ok {
		w.OptimalMoves = 2 * length
	}

	return w, quota - w.Pits.Size()
}

func randomCell(rng *rand.Rand, size int) grid.Point {
	return grid.Point{Col: rng.Intn(size), Row: rng.Intn(size)}
}

func randomCellExcluding(rng *rand.Rand, size int, exclude ...grid.Point) grid.Point {
	for {
		p := randomCell(rng, size)
		collides := false
		for _, e := range exclude {
			if p == e {
				collides = true
				break
			}
		}
		if !collides {
			return p
		}
	}
}
