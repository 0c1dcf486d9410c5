package pix

import (
	"fmt"
	"math"
)

// Coordinate is an immutable point in screen space. Both components
// are non-negative: the origin is the top-left corner of the surface
// and there is no addressable area above or left of it.
type Coordinate struct {
	X, Y float64
}

// Coord creates a Coordinate, rejecting negative components.
func Coord(x, y float64) (Coordinate, error) {
	if x < 0 || y < 0 {
		return Coordinate{}, invalidf("coordinate", "components must be non-negative, got (%g, %g)", x, y)
	}
	return Coordinate{X: x, Y: y}, nil
}

// Distance returns the Euclidean distance to q.
func (c Coordinate) Distance(q Coordinate) float64 {
	dx := q.X - c.X
	dy := q.Y - c.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Add returns the coordinate offset by (dx, dy). The shape code only
// adds non-negative offsets, so the result stays in screen space.
func (c Coordinate) Add(dx, dy float64) Coordinate {
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("Coordinate(%g, %g)", c.X, c.Y)
}
