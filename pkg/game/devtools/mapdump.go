// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"os"

	"wumpushunt/pkg/engine/grid"
	"wumpushunt/pkg/game/world"
)

// cellSymbol returns the single-character symbol for a cell. If revealedOnly
// is true, unexplored cells hide their contents behind '#'.
func cellSymbol(w *world.World, p grid.Point, revealedOnly bool) rune {
	if revealedOnly && !w.Explored.Has(p) {
		return '#'
	}
	switch {
	case w.WumpusAlive && w.WumpusPos == p:
		return 'W'
	case !w.HasGold && w.GoldPos == p:
		return 'G'
	case w.Pits.Has(p):
		return 'P'
	case w.Marked.Has(p):
		return '!'
	case w.Explored.Has(p):
		return '.'
	default:
		return ' '
	}
}

// writeGrid writes one map view of the cave to f, agent overlaid as '@'.
func writeGrid(f *os.File, w *world.World, revealedOnly bool) {
	for row := 0; row < w.GridSize; row++ {
		for col := 0; col < w.GridSize; col++ {
			p := grid.Point{Col: col, Row: row}
			if w.AgentPos == p {
				fmt.Fprint(f, "@")
				continue
			}
			fmt.Fprintf(f, "%c", cellSymbol(w, p, revealedOnly))
		}
		fmt.Fprintln(f)
	}
}

// DumpWorldToFile writes a full debug dump of the cave: metadata, legend,
// the player-visible map, and the fully-revealed map. Format is human- and
// LLM-readable (sections, key: value, consistent structure).
func DumpWorldToFile(w *world.World, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating map dump: %w", err)
	}
	defer f.Close()

	fmt.Fprintln(f, "== METADATA ==")
	fmt.Fprintf(f, "grid size: %d\n", w.GridSize)
	fmt.Fprintf(f, "agent: %v\n", w.AgentPos)
	fmt.Fprintf(f, "wumpus: %v (alive: %v)\n", w.WumpusPos, w.WumpusAlive)
	fmt.Fprintf(f, "gold: %v (carried: %v)\n", w.GoldPos, w.HasGold)
	fmt.Fprintf(f, "pits: %d\n", w.Pits.Size())
	fmt.Fprintf(f, "optimal moves: %d\n", w.OptimalMoves)
	fmt.Fprintf(f, "moves: %d (player: %d)\n", w.MoveCount, w.PlayerMoveCount)
	fmt.Fprintln(f)

	fmt.Fprintln(f, "== LEGEND ==")
	fmt.Fprintln(f, "@ agent  W wumpus  G gold  P pit  ! marked  . explored  # hidden")
	fmt.Fprintln(f)

	fmt.Fprintln(f, "== REVEALED MAP ==")
	writeGrid(f, w, true)
	fmt.Fprintln(f)

	fmt.Fprintln(f, "== FULL MAP ==")
	writeGrid(f, w, false)

	return nil
}
