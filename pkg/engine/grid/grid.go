// Package grid provides coordinate primitives for square, 4-connected game
// boards. These are engine-level constructs usable by any tile-based game.
package grid

// Point is a board coordinate. Col runs west to east, Row runs top to
// bottom, so the fixed start corner (0, size-1) sits at the bottom-left of
// the display. The inverted row axis is part of the coordinate semantics,
// not a rendering detail.
type Point struct {
	Col int
	Row int
}

// Add returns the point one step away in the given direction.
func (p Point) Add(d Direction) Point {
	colDelta, rowDelta := d.Delta()
	return Point{Col: p.Col + colDelta, Row: p.Row + rowDelta}
}

// Manhattan returns the Manhattan distance between two points.
func (p Point) Manhattan(q Point) int {
	return abs(p.Col-q.Col) + abs(p.Row-q.Row)
}

// Adjacent reports whether q is orthogonally adjacent to p: exactly one axis
// differs, by exactly one.
func (p Point) Adjacent(q Point) bool {
	return p.Manhattan(q) == 1
}

// InBounds reports whether p lies on a size×size board.
func InBounds(p Point, size int) bool {
	return p.Col >= 0 && p.Col < size && p.Row >= 0 && p.Row < size
}

// Neighbors returns the in-bounds orthogonal neighbors of p, in direction
// order (North, East, South, West).
func Neighbors(p Point, size int) []Point {
	neighbors := make([]Point, 0, 4)
	for _, d := range AllDirections() {
		n := p.Add(d)
		if InBounds(n, size) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// Start returns the fixed start corner of a size×size board.
func Start(size int) Point {
	return Point{Col: 0, Row: size - 1}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
