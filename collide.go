package bounce

import (
	"github.com/vova616/bounce/vect"
)

// collisionHandler detects and resolves one overlapping pair in place.
// The bool result reports whether the shapes overlapped.
type collisionHandler func(rt *RestitutionTable, a, b *Body) (Contact, bool)

var collisionHandlers = [numShapes][numShapes]collisionHandler{
	ShapeType_Disc: {
		ShapeType_Disc:    disc2disc,
		ShapeType_Segment: disc2segment,
	},
	ShapeType_Segment: {
		ShapeType_Disc:    nil,
		ShapeType_Segment: nil,
	},
}

// collide orders the pair by shape type so a disc always comes first, then
// dispatches to the matching handler. Segment pairs never interact.
func collide(rt *RestitutionTable, a, b *Body) (Contact, bool) {
	stA := a.Shape.ShapeType()
	stB := b.Shape.ShapeType()

	if stA > stB {
		a, b = b, a
		stA, stB = stB, stA
	}

	handler := collisionHandlers[stA][stB]
	if handler == nil {
		return Contact{}, false
	}

	return handler(rt, a, b)
}

func disc2disc(rt *RestitutionTable, a, b *Body) (Contact, bool) {
	da, okA := a.Shape.(*DiscShape)
	db, okB := b.Shape.(*DiscShape)
	if !okA || !okB {
		return Contact{}, false
	}

	minDist := da.Radius + db.Radius
	delta := vect.Sub(db.Position, da.Position)
	dist := vect.Length(delta)
	if dist >= minDist {
		return Contact{}, false
	}

	n := vect.Normalize(delta)
	con := Contact{
		BodyA:  a.id,
		BodyB:  b.id,
		Kind:   ShapeType_Disc,
		Normal: n,
		Depth:  minDist - dist,
	}

	velAlongNormal := normalRelativeVelocity(a, b, n)
	if velAlongNormal > 0 {
		// already separating, let them pass without jitter
		con.Separating = true
		return con, true
	}

	e := rt.Get(a.id, b.id)
	j := -(1 + e) * velAlongNormal / (a.m_inv + b.m_inv)
	applyImpulses(a, b, n, j)

	// split the penetration evenly regardless of mass
	correction := vect.Mult(n, con.Depth/2)
	da.Position = vect.Sub(da.Position, correction)
	db.Position = vect.Add(db.Position, correction)

	con.Restitution = e
	con.Impulse = j
	return con, true
}

// disc2segment only ever moves the disc. The segment has infinite mass.
func disc2segment(rt *RestitutionTable, s, w *Body) (Contact, bool) {
	disc, okS := s.Shape.(*DiscShape)
	wall, okW := w.Shape.(*SegmentShape)
	if !okS || !okW {
		return Contact{}, false
	}

	closest, _, ok := wall.ClosestPoint(disc.Position)
	if !ok {
		return Contact{}, false
	}

	delta := vect.Sub(disc.Position, closest)
	dist := vect.Length(delta)
	if dist >= disc.Radius {
		return Contact{}, false
	}

	normal := vect.Normalize(delta)
	con := Contact{
		BodyA:  s.id,
		BodyB:  w.id,
		Kind:   ShapeType_Segment,
		Normal: normal,
		Depth:  disc.Radius - dist,
	}
	disc.Position = vect.Add(disc.Position, vect.Mult(normal, con.Depth))

	velAlongNormal := vect.Dot(s.v, normal)
	if velAlongNormal > 0 {
		con.Separating = true
		return con, true
	}

	e := rt.Get(s.id, w.id)
	dv := (1 + e) * velAlongNormal
	s.v = vect.Sub(s.v, vect.Mult(normal, dv))

	con.Restitution = e
	con.Impulse = -dv * s.m
	return con, true
}
