package bounce

import (
	"github.com/vova616/bounce/vect"
)

func relativeVelocity(a, b *Body) vect.Vect {
	return vect.Sub(b.v, a.v)
}

func normalRelativeVelocity(a, b *Body, n vect.Vect) float64 {
	return vect.Dot(relativeVelocity(a, b), n)
}

// applies j along n to b and the opposite impulse to a.
func applyImpulses(a, b *Body, n vect.Vect, j float64) {
	applyImpulse(a, n, -j)
	applyImpulse(b, n, j)
}

func applyImpulse(body *Body, n vect.Vect, j float64) {
	body.v = vect.Add(body.v, vect.Mult(n, j/body.m))
}
