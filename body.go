package bounce

import (
	"math"

	"github.com/vova616/bounce/vect"
)

var Inf = math.Inf(1)

const DefaultMass = 1.0

type Body struct {
	id    BodyID
	label string

	/// Mass of the body. Segments always carry Inf.
	m float64
	/// Mass inverse. Must agree with m, use setMass.
	m_inv float64

	/// Velocity of the body.
	v vect.Vect

	// Selected is owned by the host UI. The engine never reads it.
	Selected bool

	/// User definable data pointer.
	UserData interface{}

	Shape ShapeClass
}

// NewDisc creates a disc of mass DefaultMass at rest.
func NewDisc(alloc *Allocator, x, y, radius float64) *Body {
	body := &Body{
		id:    alloc.NextID(),
		label: alloc.NextLabel(),
		Shape: &DiscShape{Position: vect.Vect{X: x, Y: y}, Radius: radius},
	}
	body.setMass(DefaultMass)
	return body
}

// NewSegment creates an immovable segment from (x1, y1) to (x2, y2).
func NewSegment(alloc *Allocator, x1, y1, x2, y2 float64) *Body {
	body := &Body{
		id:    alloc.NextID(),
		label: alloc.NextSegmentLabel(),
		Shape: &SegmentShape{A: vect.Vect{X: x1, Y: y1}, B: vect.Vect{X: x2, Y: y2}},
	}
	body.m = Inf
	body.m_inv = 0
	return body
}

func (body *Body) ID() BodyID {
	return body.id
}

func (body *Body) Label() string {
	return body.label
}

func (body *Body) ShapeType() ShapeType {
	return body.Shape.ShapeType()
}

func (body *Body) Mass() float64 {
	return body.m
}

func (body *Body) InverseMass() float64 {
	return body.m_inv
}

func (body *Body) MassIsInf() bool {
	return math.IsInf(body.m, 1)
}

func (body *Body) Velocity() vect.Vect {
	return body.v
}

// Position returns the disc center, or the midpoint for a segment.
func (body *Body) Position() vect.Vect {
	switch shape := body.Shape.(type) {
	case *DiscShape:
		return shape.Position
	case *SegmentShape:
		return shape.Midpoint()
	}
	return vect.Vector_Zero
}

func (body *Body) KineticEnergy() float64 {
	if body.MassIsInf() {
		return 0
	}
	return 0.5 * body.m * vect.Dot(body.v, body.v)
}

func (body *Body) Clone() *Body {
	clone := *body
	clone.Shape = body.Shape.Clone()
	return &clone
}

// Segments keep their infinite mass whatever is asked.
func (body *Body) setMass(mass float64) {
	if body.Shape.ShapeType() == ShapeType_Segment {
		return
	}
	body.m = mass
	body.m_inv = 1 / mass
}

func (body *Body) UpdatePosition(dt float64) {
	body.Shape.translate(vect.Mult(body.v, dt))
}
