package vect

import (
	"math"
)

var (
	Vector_Zero = Vect{0, 0}
)

func FMin(a, b float64) float64 {
	if a > b {
		return b
	}
	return a
}

func FAbs(a float64) float64 {
	if a < 0 {
		return -a
	}
	return a
}

func FMax(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func FClamp(val, min, max float64) float64 {
	if val < min {
		return min
	} else if val > max {
		return max
	}
	return val
}

// basic 2d vector. Vectors are values, every operation returns a new one.
type Vect struct {
	X, Y float64
}

// returns the squared length of the vector.
func (v Vect) LengthSqr() float64 {
	return Dot(v, v)
}

// returns the length of the vector.
func (v Vect) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// reports whether both components are zero.
func (v Vect) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// compare two vectors by value.
func Equals(v1, v2 Vect) bool {
	return v1.X == v2.X && v1.Y == v2.Y
}

// adds the input vectors and returns the result.
func Add(v1, v2 Vect) Vect {
	return Vect{v1.X + v2.X, v1.Y + v2.Y}
}

// subtracts the input vectors and returns the result.
func Sub(v1, v2 Vect) Vect {
	return Vect{v1.X - v2.X, v1.Y - v2.Y}
}

// multiplies a vector by a scalar and returns the result.
func Mult(v1 Vect, s float64) Vect {
	return Vect{v1.X * s, v1.Y * s}
}

// returns the square distance between two vectors.
func DistSqr(v1, v2 Vect) float64 {
	return (v1.X-v2.X)*(v1.X-v2.X) + (v1.Y-v2.Y)*(v1.Y-v2.Y)
}

// returns the distance between two vectors.
func Dist(v1, v2 Vect) float64 {
	return Length(Sub(v1, v2))
}

// returns the squared length of the vector.
func LengthSqr(v Vect) float64 {
	return v.LengthSqr()
}

// returns the length of the vector.
func Length(v Vect) float64 {
	return v.Length()
}

// returns the normalized input vector.
// A zero length vector has no direction, the zero vector is returned for it.
func Normalize(v Vect) Vect {
	l := Length(v)
	if l == 0 {
		return Vect{}
	}
	return Vect{v.X / l, v.Y / l}
}

// dot product between two vectors.
func Dot(v1, v2 Vect) float64 {
	return (v1.X * v2.X) + (v1.Y * v2.Y)
}

// 2d cross product (z component of the 3d cross product).
func Cross(a, b Vect) float64 {
	return (a.X * b.Y) - (a.Y * b.X)
}

// linear interpolation between two vectors by the given scalar
func Lerp(v1, v2 Vect, s float64) Vect {
	return Vect{
		v1.X + (v2.X-v1.X)*s,
		v1.Y + (v2.Y-v1.Y)*s,
	}
}

// Returns v rotated by 90 degrees
func Perp(v Vect) Vect {
	return Vect{-v.Y, v.X}
}

func FromAngle(angle float64) Vect {
	return Vect{math.Cos(angle), math.Sin(angle)}
}

// FromPolar builds a vector from a speed and a direction in degrees.
// 0° points along +X and 90° along +Y (screen down).
func FromPolar(speed, degrees float64) Vect {
	return Mult(FromAngle(degrees*math.Pi/180), speed)
}

// ToPolar is the inverse of FromPolar. The direction is in [0, 360).
func ToPolar(v Vect) (speed, degrees float64) {
	speed = Length(v)
	degrees = math.Mod(math.Atan2(v.Y, v.X)*180/math.Pi+360, 360)
	return speed, degrees
}
