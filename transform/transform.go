package transform

import (
	"math"

	"github.com/vova616/bounce/vect"
)

type Rotation struct {
	//cosine and sine.
	C, S float64
}

func NewRotation(angle float64) Rotation {
	return Rotation{
		C: math.Cos(angle),
		S: math.Sin(angle),
	}
}

func (rot *Rotation) SetIdentity() {
	rot.S = 0
	rot.C = 1
}

func (rot *Rotation) SetAngle(angle float64) {
	rot.C = math.Cos(angle)
	rot.S = math.Sin(angle)
}

func (rot Rotation) Angle() float64 {
	return math.Atan2(rot.S, rot.C)
}

// rotates the input vector.
func (rot Rotation) RotateVect(v vect.Vect) vect.Vect {
	return vect.Vect{
		X: (v.X * rot.C) - (v.Y * rot.S),
		Y: (v.X * rot.S) + (v.Y * rot.C),
	}
}

func (rot Rotation) RotateVectInv(v vect.Vect) vect.Vect {
	return vect.Vect{
		X: (v.X * rot.C) + (v.Y * rot.S),
		Y: (-v.X * rot.S) + (v.Y * rot.C),
	}
}

func RotateVect(v vect.Vect, r Rotation) vect.Vect {
	return r.RotateVect(v)
}

func RotateVectInv(v vect.Vect, r Rotation) vect.Vect {
	return r.RotateVectInv(v)
}

// RotateAbout rotates p around pivot by r.
func RotateAbout(p, pivot vect.Vect, r Rotation) vect.Vect {
	return vect.Add(pivot, r.RotateVect(vect.Sub(p, pivot)))
}
