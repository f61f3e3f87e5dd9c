package world

import (
	"math/rand"
	"testing"

	"wumpushunt/pkg/engine/grid"
)

func TestRecomputeHazardsStench(t *testing.T) {
	w := New(6, rand.New(rand.NewSource(1)))
	w.WumpusPos = grid.Point{Col: 2, Row: 2}
	w.GoldPos = grid.Point{Col: 5, Row: 0}
	w.RecomputeHazards()

	for _, n := range grid.Neighbors(w.WumpusPos, w.GridSize) {
		if !w.Stench.Has(n) {
			t.Errorf("stench missing at wumpus neighbor %v", n)
		}
	}
	if w.Stench.Has(w.WumpusPos) {
		t.Error("the wumpus's own cell carries no stench cue")
	}
	if w.Stench.Size() != 4 {
		t.Errorf("stench set has %d cells for an interior wumpus, want 4", w.Stench.Size())
	}
}

func TestRecomputeHazardsBreezeUnion(t *testing.T) {
	w := New(6, rand.New(rand.NewSource(1)))
	w.WumpusPos = grid.Point{Col: 5, Row: 0}
	w.GoldPos = grid.Point{Col: 4, Row: 0}
	w.Pits.Put(grid.Point{Col: 2, Row: 2})
	w.Pits.Put(grid.Point{Col: 3, Row: 2}) // shares neighbors with the first
	w.RecomputeHazards()

	// Union of the two neighborhoods: 4 + 4 - 2 shared cells (each pit is in
	// the other's neighborhood, both count as breeze cells).
	wantBreeze := []grid.Point{
		{Col: 2, Row: 1}, {Col: 2, Row: 3}, {Col: 1, Row: 2}, {Col: 3, Row: 2},
		{Col: 3, Row: 1}, {Col: 3, Row: 3}, {Col: 4, Row: 2}, {Col: 2, Row: 2},
	}
	for _, p := range wantBreeze {
		if !w.Breeze.Has(p) {
			t.Errorf("breeze missing at %v", p)
		}
	}
	if w.Breeze.Size() != len(wantBreeze) {
		t.Errorf("breeze set has %d cells, want %d", w.Breeze.Size(), len(wantBreeze))
	}
}

func TestEdgeWumpusStenchStaysInBounds(t *testing.T) {
	w := New(6, rand.New(rand.NewSource(1)))
	w.WumpusPos = grid.Point{Col: 0, Row: 0}
	w.GoldPos = grid.Point{Col: 5, Row: 5}
	w.RecomputeHazards()

	if w.Stench.Size() != 2 {
		t.Errorf("corner wumpus produces %d stench cells, want 2", w.Stench.Size())
	}
	w.Stench.Each(func(p grid.Point) {
		if !grid.InBounds(p, w.GridSize) {
			t.Errorf("stench cell %v is out of bounds", p)
		}
	})
}

func TestPerceptionFilteredThroughExplored(t *testing.T) {
	w := New(6, rand.New(rand.NewSource(1)))
	w.WumpusPos = grid.Point{Col: 2, Row: 2}
	w.GoldPos = grid.Point{Col: 5, Row: 0}
	w.RecomputeHazards()

	cue := grid.Point{Col: 1, Row: 2}
	if !w.Stench.Has(cue) {
		t.Fatalf("test setup: %v should carry a raw stench cue", cue)
	}
	if w.StenchAt(cue) {
		t.Error("unexplored cell must not report a perceivable cue")
	}

	w.Explored.Put(cue)
	if !w.StenchAt(cue) {
		t.Error("explored cell with a raw cue must report it")
	}
}

func TestPerceptionIdempotent(t *testing.T) {
	w := New(6, rand.New(rand.NewSource(1)))
	w.WumpusPos = grid.Point{Col: 2, Row: 2}
	w.GoldPos = grid.Point{Col: 5, Row: 0}
	w.Pits.Put(grid.Point{Col: 4, Row: 4})
	w.RecomputeHazards()
	w.Explored.Put(grid.Point{Col: 1, Row: 2})
	w.Explored.Put(grid.Point{Col: 4, Row: 3})

	type snapshot struct{ stench, breeze []bool }
	take := func() snapshot {
		var s snapshot
		for row := 0; row < w.GridSize; row++ {
			for col := 0; col < w.GridSize; col++ {
				p := grid.Point{Col: col, Row: row}
				s.stench = append(s.stench, w.StenchAt(p))
				s.breeze = append(s.breeze, w.BreezeAt(p))
			}
		}
		return s
	}

	first := take()
	second := take()
	for i := range first.stench {
		if first.stench[i] != second.stench[i] || first.breeze[i] != second.breeze[i] {
			t.Fatalf("perception changed between identical queries at index %d", i)
		}
	}
}

func TestVisibilityQueries(t *testing.T) {
	w := New(6, rand.New(rand.NewSource(1)))
	w.WumpusPos = grid.Point{Col: 2, Row: 2}
	w.GoldPos = grid.Point{Col: 3, Row: 3}
	w.Pits.Put(grid.Point{Col: 4, Row: 4})
	w.RecomputeHazards()

	if w.GoldVisible() || w.WumpusVisible() || w.PitVisibleAt(grid.Point{Col: 4, Row: 4}) {
		t.Error("nothing is visible before its cell is explored")
	}

	w.Explored.Put(w.GoldPos)
	w.Explored.Put(w.WumpusPos)
	w.Explored.Put(grid.Point{Col: 4, Row: 4})

	if !w.GoldVisible() {
		t.Error("gold on an explored cell must be visible")
	}
	if !w.WumpusVisible() {
		t.Error("live wumpus on an explored cell must be visible")
	}
	if !w.PitVisibleAt(grid.Point{Col: 4, Row: 4}) {
		t.Error("pit on an explored cell must be visible")
	}

	w.PickUpGold()
	if w.GoldVisible() {
		t.Error("carried gold is no longer on the floor")
	}

	w.KillWumpus()
	if w.WumpusVisible() {
		t.Error("a dead wumpus is not shown")
	}
}
