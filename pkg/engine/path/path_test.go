package path

import (
	"testing"

	"github.com/zyedidia/generic/mapset"

	"wumpushunt/pkg/engine/grid"
)

func open(grid.Point) bool { return false }

func blockedBy(cells ...grid.Point) func(grid.Point) bool {
	set := mapset.New[grid.Point]()
	for _, c := range cells {
		set.Put(c)
	}
	return set.Has
}

func TestShortestStraightLine(t *testing.T) {
	start := grid.Start(6) // {0 5}
	goal := grid.Point{Col: 3, Row: 5}
	length, ok := Shortest(start, goal, 6, open)
	if !ok {
		t.Fatalf("Shortest(%v, %v) not reachable, want reachable", start, goal)
	}
	if length != 3 {
		t.Errorf("Shortest(%v, %v) = %d, want 3", start, goal, length)
	}
}

func TestShortestSamePoint(t *testing.T) {
	p := grid.Point{Col: 2, Row: 2}
	length, ok := Shortest(p, p, 6, open)
	if !ok || length != 0 {
		t.Errorf("Shortest(p, p) = (%d, %v), want (0, true)", length, ok)
	}
}

func TestShortestDetoursAroundObstacles(t *testing.T) {
	// A vertical wall at col 2 with a single gap at the top row forces the
	// path up, through the gap and back down.
	var wall []grid.Point
	for row := 1; row < 6; row++ {
		wall = append(wall, grid.Point{Col: 2, Row: row})
	}
	start := grid.Point{Col: 0, Row: 5}
	goal := grid.Point{Col: 4, Row: 5}

	length, ok := Shortest(start, goal, 6, blockedBy(wall...))
	if !ok {
		t.Fatal("wall with a gap must remain passable")
	}
	// Up 5, across 4, down 5.
	if length != 14 {
		t.Errorf("detour length = %d, want 14", length)
	}
}

func TestShortestUnreachable(t *testing.T) {
	// Goal boxed in by obstacles on all four sides.
	goal := grid.Point{Col: 3, Row: 3}
	box := grid.Neighbors(goal, 6)
	if _, ok := Shortest(grid.Start(6), goal, 6, blockedBy(box...)); ok {
		t.Error("boxed-in goal reported reachable, want unreachable")
	}
	if Reachable(grid.Start(6), goal, 6, blockedBy(box...)) {
		t.Error("Reachable = true for boxed-in goal, want false")
	}
}

func TestShortestOutOfBoundsEndpoints(t *testing.T) {
	inside := grid.Point{Col: 1, Row: 1}
	outside := grid.Point{Col: 9, Row: 9}
	if _, ok := Shortest(inside, outside, 6, open); ok {
		t.Error("out-of-bounds goal must be unreachable")
	}
	if _, ok := Shortest(outside, inside, 6, open); ok {
		t.Error("out-of-bounds start must be unreachable")
	}
}

func TestReachableMatchesShortest(t *testing.T) {
	start := grid.Start(6)
	goal := grid.Point{Col: 5, Row: 0}
	if !Reachable(start, goal, 6, open) {
		t.Error("open board must be fully reachable")
	}
}
