package bounce

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/vova616/bounce/transform"
	"github.com/vova616/bounce/vect"
)

const (
	// Half thickness used when picking a segment with a point.
	SegmentPickTolerance = 10
	// How far past either endpoint, as a fraction of the length, a pick still hits.
	SegmentPickOverhang = 0.05
)

type SegmentShape struct {
	//start/end points of the segment.
	A, B vect.Vect
}

// Returns ShapeType_Segment. Needed to implement the ShapeClass interface.
func (segment *SegmentShape) ShapeType() ShapeType {
	return ShapeType_Segment
}

func (segment *SegmentShape) Midpoint() vect.Vect {
	return vect.Lerp(segment.A, segment.B, 0.5)
}

func (segment *SegmentShape) Length() float64 {
	return vect.Dist(segment.A, segment.B)
}

// Degenerate segments (A == B) never collide.
func (segment *SegmentShape) Degenerate() bool {
	return vect.Equals(segment.A, segment.B)
}

// ClosestPoint returns the point of the segment nearest to p and its
// parameter t in [0, 1]. ok is false for a degenerate segment.
func (segment *SegmentShape) ClosestPoint(p vect.Vect) (closest vect.Vect, t float64, ok bool) {
	ab := vect.Sub(segment.B, segment.A)
	lenSqr := vect.Dot(ab, ab)
	if lenSqr == 0 {
		return segment.A, 0, false
	}
	t = vect.FClamp(vect.Dot(vect.Sub(p, segment.A), ab)/lenSqr, 0, 1)
	return vect.Add(segment.A, vect.Mult(ab, t)), t, true
}

func (segment *SegmentShape) Bounds() r2.Rect {
	return r2.RectFromPoints(
		r2.Point{X: segment.A.X, Y: segment.A.Y},
		r2.Point{X: segment.B.X, Y: segment.B.Y},
	)
}

// Returns true if point lies within SegmentPickTolerance of the segment line,
// allowing a small overhang past the endpoints.
func (segment *SegmentShape) TestPoint(point vect.Vect) bool {
	ab := vect.Sub(segment.B, segment.A)
	length := vect.Length(ab)
	if length == 0 {
		return false
	}
	t := vect.Dot(vect.Sub(point, segment.A), ab) / vect.Dot(ab, ab)
	if t < -SegmentPickOverhang || t > 1+SegmentPickOverhang {
		return false
	}
	d := math.Abs(vect.Cross(ab, vect.Sub(point, segment.A))) / length
	return d < SegmentPickTolerance
}

func (segment *SegmentShape) Clone() ShapeClass {
	clone := *segment
	return &clone
}

func (segment *SegmentShape) translate(delta vect.Vect) {
	segment.A = vect.Add(segment.A, delta)
	segment.B = vect.Add(segment.B, delta)
}

// moves A to p keeping the segment vector.
func (segment *SegmentShape) moveTo(p vect.Vect) {
	segment.translate(vect.Sub(p, segment.A))
}

// sets the direction of the segment to angle (radians) around its midpoint,
// keeping its length.
func (segment *SegmentShape) setAngle(angle float64) {
	mid := segment.Midpoint()
	half := segment.Length() / 2
	rot := transform.NewRotation(angle)
	offset := rot.RotateVect(vect.Vect{X: half})
	segment.A = vect.Sub(mid, offset)
	segment.B = vect.Add(mid, offset)
}
