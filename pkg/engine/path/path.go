// Package path implements shortest-path search over square 4-connected
// grids. One parameterized A* routine backs both the boolean reachability
// check used during level generation and the path-length query used for
// scoring, so the traversal logic cannot diverge between the two.
package path

import (
	"github.com/zyedidia/generic/heap"

	"wumpushunt/pkg/engine/grid"
)

// node is a frontier entry: a cell, the cost paid to reach it, and the
// cost-plus-heuristic priority that orders the frontier.
type node struct {
	at       grid.Point
	cost     int
	priority int
}

// Shortest returns the length in moves of the cheapest 4-connected path from
// start to goal on a size×size board, stepping only on cells where blocked
// returns false. Edges cost one move each and the Manhattan distance serves
// as the admissible heuristic. The start cell itself is never tested against
// blocked. The second return is false when no path exists.
func Shortest(start, goal grid.Point, size int, blocked func(grid.Point) bool) (int, bool) {
	if !grid.InBounds(start, size) || !grid.InBounds(goal, size) {
		return 0, false
	}
	if start == goal {
		return 0, true
	}

	frontier := heap.New(func(a, b node) bool { return a.priority < b.priority })
	frontier.Push(node{at: start, priority: start.Manhattan(goal)})

	best := map[grid.Point]int{start: 0}

	for frontier.Size() > 0 {
		current, _ := frontier.Pop()
		if current.at == goal {
			return current.cost, true
		}
		if cost, seen := best[current.at]; seen && current.cost > cost {
			// Stale frontier entry; this cell was relaxed to a cheaper cost.
			continue
		}
		for _, d := range grid.AllDirections() {
			next := current.at.Add(d)
			if !grid.InBounds(next, size) || blocked(next) {
				continue
			}
			cost := current.cost + 1
			if prev, seen := best[next]; seen && cost >= prev {
				continue
			}
			best[next] = cost
			frontier.Push(node{at: next, cost: cost, priority: cost + next.Manhattan(goal)})
		}
	}

	return 0, false
}

// Reachable reports whether any path from start to goal exists under the
// same traversal rules as Shortest.
func Reachable(start, goal grid.Point, size int, blocked func(grid.Point) bool) bool {
	_, ok := Shortest(start, goal, size, blocked)
	return ok
}
