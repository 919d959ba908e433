package geometry

import "fmt"

// Point is an integer position in the plane.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Dist returns the manhattan distance between p and o.
func (p Point) Dist(o Point) int {
	return absDiff(p.X, o.X) + absDiff(p.Y, o.Y)
}

// Less orders points by row, then by column.
func (p Point) Less(o Point) bool {
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.X < o.X
}

func absDiff(a, b int) int {
	v := a - b
	if v < 0 {
		v = -v
	}
	return v
}
