package bounce

import (
	"github.com/golang/geo/r2"

	"github.com/vova616/bounce/vect"
)

type DiscShape struct {
	// Center of the disc in world space.
	Position vect.Vect
	Radius   float64
}

// Returns ShapeType_Disc. Needed to implement the ShapeClass interface.
func (disc *DiscShape) ShapeType() ShapeType {
	return ShapeType_Disc
}

func (disc *DiscShape) Bounds() r2.Rect {
	return r2.RectFromCenterSize(
		r2.Point{X: disc.Position.X, Y: disc.Position.Y},
		r2.Point{X: 2 * disc.Radius, Y: 2 * disc.Radius},
	)
}

// Returns true if the given point is strictly inside the disc.
func (disc *DiscShape) TestPoint(point vect.Vect) bool {
	return vect.Dist(point, disc.Position) < disc.Radius
}

func (disc *DiscShape) Clone() ShapeClass {
	clone := *disc
	return &clone
}

func (disc *DiscShape) translate(delta vect.Vect) {
	disc.Position = vect.Add(disc.Position, delta)
}
