package bounce

import (
	"github.com/golang/geo/r2"

	"github.com/vova616/bounce/vect"
)

type ShapeType int

const (
	ShapeType_Disc    = ShapeType(0)
	ShapeType_Segment = ShapeType(1)
	numShapes         = 2
)

func (st ShapeType) String() string {
	switch st {
	case ShapeType_Disc:
		return "Disc"
	case ShapeType_Segment:
		return "Segment"
	default:
		return "Unknown"
	}
}

// ShapeClass is the closed set of collider shapes. Only DiscShape and
// SegmentShape implement it.
type ShapeClass interface {
	ShapeType() ShapeType
	// Bounding rectangle of the shape in world space.
	Bounds() r2.Rect
	// Returns if the given point is located inside the shape.
	TestPoint(point vect.Vect) bool

	Clone() ShapeClass

	// Moves the shape by delta.
	translate(delta vect.Vect)
}

// Returns body.Shape as DiscShape or nil.
func (body *Body) GetAsDisc() *DiscShape {
	if disc, ok := body.Shape.(*DiscShape); ok {
		return disc
	}

	return nil
}

// Returns body.Shape as SegmentShape or nil.
func (body *Body) GetAsSegment() *SegmentShape {
	if seg, ok := body.Shape.(*SegmentShape); ok {
		return seg
	}

	return nil
}
