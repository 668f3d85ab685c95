package bounce

import (
	"github.com/vova616/bounce/vect"
)

// Contact describes one overlap found and resolved during a step.
type Contact struct {
	// BodyA is always the disc. BodyB is the other disc or the segment.
	BodyA, BodyB BodyID
	Kind         ShapeType

	// Normal points from B towards A for disc/segment contacts and from A
	// towards B for disc/disc contacts, matching the resolver math.
	Normal vect.Vect
	// Penetration depth at detection time.
	Depth float64

	// Restitution used for the velocity response.
	Restitution float64
	// Scalar impulse applied along Normal. Zero when Separating.
	Impulse float64
	// The bodies were already moving apart, no velocity response was applied.
	Separating bool
}

// ContactHandler is called for each contact right after it is resolved.
// It must not add or remove bodies.
type ContactHandler func(con Contact)
