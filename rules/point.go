package rules

import "fmt"

// Point is a single board cell. Both coordinates are multiples of the grid
// unit of the board the point belongs to.
type Point struct {
	X int
	Y int
}

// Equals checks if 2 points are the same x,y coordinate
func (p Point) Equals(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// Add returns the point translated by the given offsets.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func containsPoint(points []Point, p Point) bool {
	for _, o := range points {
		if o.Equals(p) {
			return true
		}
	}
	return false
}
