package bounce

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/golang/geo/r2"
	"github.com/google/uuid"

	"github.com/vova616/bounce/internal/log"
	"github.com/vova616/bounce/transform"
	"github.com/vova616/bounce/vect"
)

// Space owns the bodies and the restitution table and advances them with Step.
//
// A Space is not safe for concurrent use. The host is expected to alternate
// with the engine: mutate between steps, never during one.
type Space struct {
	session uuid.UUID
	config  Config

	alloc       *Allocator
	restitution *RestitutionTable

	// insertion order, never reordered by the engine
	bodies []*Body
	byID   map[BodyID]*Body

	contacts       []Contact
	contactHandler ContactHandler

	log log.Log

	stamp    uint64
	StepTime time.Duration
}

type Option func(*Space)

// WithConfig replaces DefaultConfig. The config is used as is, call
// Config.Validate first when it comes from user input.
func WithConfig(cfg Config) Option {
	return func(s *Space) { s.config = cfg }
}

func WithLogger(l log.Log) Option {
	return func(s *Space) { s.log = l }
}

// WithAllocator shares an allocator, e.g. with bodies built before the space.
func WithAllocator(a *Allocator) Option {
	return func(s *Space) { s.alloc = a }
}

func WithContactHandler(h ContactHandler) Option {
	return func(s *Space) { s.contactHandler = h }
}

func NewSpace(opts ...Option) *Space {
	space := &Space{
		session: uuid.New(),
		config:  DefaultConfig(),
		byID:    make(map[BodyID]*Body),
		log:     log.NewNop(),
	}
	for _, opt := range opts {
		opt(space)
	}
	if space.alloc == nil {
		space.alloc = NewAllocator()
	}
	space.restitution = NewRestitutionTable(space.config.DefaultRestitution)
	space.log = space.log.With(log.String("session", space.session.String()))

	return space
}

func (space *Space) Session() uuid.UUID {
	return space.session
}

func (space *Space) Config() Config {
	return space.config
}

func (space *Space) Allocator() *Allocator {
	return space.alloc
}

func (space *Space) RestitutionTable() *RestitutionTable {
	return space.restitution
}

// Stamp is the number of steps taken so far.
func (space *Space) Stamp() uint64 {
	return space.stamp
}

// AddBody appends body to the space and returns its id. Adding the same body
// twice is ignored.
func (space *Space) AddBody(body *Body) BodyID {
	if _, exists := space.byID[body.id]; exists {
		space.log.Warn("body already added", log.Uint64("id", uint64(body.id)), log.String("label", body.label))
		return body.id
	}

	space.bodies = append(space.bodies, body)
	space.byID[body.id] = body

	space.log.Info("body added",
		log.Uint64("id", uint64(body.id)),
		log.String("label", body.label),
		log.String("shape", body.ShapeType().String()),
	)
	return body.id
}

// AddDisc creates a disc with the configured default mass and adds it.
func (space *Space) AddDisc(x, y, radius float64) BodyID {
	body := NewDisc(space.alloc, x, y, radius)
	body.setMass(space.config.DefaultMass)
	return space.AddBody(body)
}

func (space *Space) AddSegment(x1, y1, x2, y2 float64) BodyID {
	return space.AddBody(NewSegment(space.alloc, x1, y1, x2, y2))
}

// RemoveBody drops a body keeping the order of the others. Its restitution
// entries are left in place, ids are never reused so they cannot leak onto
// another body.
func (space *Space) RemoveBody(id BodyID) error {
	if _, ok := space.byID[id]; !ok {
		return fmt.Errorf("remove %d: %w", id, ErrBodyNotFound)
	}
	delete(space.byID, id)
	for i, body := range space.bodies {
		if body.id == id {
			space.bodies = append(space.bodies[:i], space.bodies[i+1:]...)
			break
		}
	}
	space.log.Info("body removed", log.Uint64("id", uint64(id)))
	return nil
}

// Bodies returns the bodies in insertion order. The slice is a copy, the
// bodies are not.
func (space *Space) Bodies() []*Body {
	out := make([]*Body, len(space.bodies))
	copy(out, space.bodies)
	return out
}

func (space *Space) Len() int {
	return len(space.bodies)
}

func (space *Space) Body(id BodyID) (*Body, bool) {
	body, ok := space.byID[id]
	return body, ok
}

func (space *Space) Restitution(a, b BodyID) float64 {
	return space.restitution.Get(a, b)
}

func (space *Space) SetRestitution(a, b BodyID, e float64) {
	space.restitution.Set(a, b, e)
}

func (space *Space) lookup(id BodyID) (*Body, error) {
	body, ok := space.byID[id]
	if !ok {
		return nil, fmt.Errorf("body %d: %w", id, ErrBodyNotFound)
	}
	return body, nil
}

func (space *Space) lookupDisc(id BodyID) (*DiscShape, error) {
	body, err := space.lookup(id)
	if err != nil {
		return nil, err
	}
	disc := body.GetAsDisc()
	if disc == nil {
		return nil, fmt.Errorf("body %d (%s): %w", id, body.label, ErrNotDisc)
	}
	return disc, nil
}

func (space *Space) lookupSegment(id BodyID) (*SegmentShape, error) {
	body, err := space.lookup(id)
	if err != nil {
		return nil, err
	}
	seg := body.GetAsSegment()
	if seg == nil {
		return nil, fmt.Errorf("body %d (%s): %w", id, body.label, ErrNotSegment)
	}
	return seg, nil
}

// SetPosition moves a disc center to p.
func (space *Space) SetPosition(id BodyID, p vect.Vect) error {
	disc, err := space.lookupDisc(id)
	if err != nil {
		return err
	}
	disc.Position = p
	return nil
}

func (space *Space) SetVelocity(id BodyID, v vect.Vect) error {
	body, err := space.lookup(id)
	if err != nil {
		return err
	}
	body.v = v
	return nil
}

// SetVelocityPolar sets the velocity from a speed and a direction in degrees.
func (space *Space) SetVelocityPolar(id BodyID, speed, degrees float64) error {
	return space.SetVelocity(id, vect.FromPolar(speed, degrees))
}

// SetMass changes a disc mass. Segments always keep an infinite mass.
func (space *Space) SetMass(id BodyID, mass float64) error {
	body, err := space.lookup(id)
	if err != nil {
		return err
	}
	if body.GetAsDisc() == nil {
		return fmt.Errorf("set mass of %s: %w", body.label, ErrNotDisc)
	}
	if !isPositiveFinite(mass) {
		space.log.Warn("mass rejected", log.String("label", body.label), log.Float64("mass", mass))
		return fmt.Errorf("set mass of %s to %v: %w", body.label, mass, ErrInvalidMass)
	}
	body.setMass(mass)
	return nil
}

// MoveSegment replaces both endpoints.
func (space *Space) MoveSegment(id BodyID, a, b vect.Vect) error {
	seg, err := space.lookupSegment(id)
	if err != nil {
		return err
	}
	seg.A, seg.B = a, b
	return nil
}

// TranslateSegment moves the first endpoint to a, keeping the segment vector.
func (space *Space) TranslateSegment(id BodyID, a vect.Vect) error {
	seg, err := space.lookupSegment(id)
	if err != nil {
		return err
	}
	seg.moveTo(a)
	return nil
}

// RotateSegment points the segment at angle (radians) around its midpoint.
func (space *Space) RotateSegment(id BodyID, angle float64) error {
	seg, err := space.lookupSegment(id)
	if err != nil {
		return err
	}
	seg.setAngle(angle)
	return nil
}

// RotateSegmentToward aims the segment at target, the way a rotate handle
// dragged to target would.
func (space *Space) RotateSegmentToward(id BodyID, target vect.Vect) error {
	seg, err := space.lookupSegment(id)
	if err != nil {
		return err
	}
	seg.setAngle(transform.Rotation{
		C: target.X - seg.Midpoint().X,
		S: target.Y - seg.Midpoint().Y,
	}.Angle())
	return nil
}

// Step advances the simulation by dt: every body is moved by its velocity,
// then every pair is checked once in list order and resolved in place.
//
// A zero dt still resolves overlaps, a negative dt integrates backwards.
// Non-finite values of dt skip the step entirely.
func (space *Space) Step(dt float64) {
	if math.IsNaN(dt) || math.IsInf(dt, 0) {
		space.log.Warn("step skipped: non-finite dt", log.Float64("dt", dt))
		return
	}

	stepStart := time.Now()
	space.stamp++
	space.contacts = space.contacts[:0]

	bodies := space.bodies

	for _, body := range bodies {
		body.UpdatePosition(dt)
	}

	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			space.collideBodies(bodies[i], bodies[j])
		}
	}

	space.StepTime = time.Since(stepStart)
}

func (space *Space) collideBodies(a, b *Body) {
	con, ok := collide(space.restitution, a, b)
	if !ok {
		return
	}

	space.contacts = append(space.contacts, con)

	if space.log.Enabled(log.LevelDebug) {
		space.log.Debug("contact",
			log.Uint64("stamp", space.stamp),
			log.Uint64("a", uint64(con.BodyA)),
			log.Uint64("b", uint64(con.BodyB)),
			log.Object("normal", con.Normal),
			log.Float64("depth", con.Depth),
			log.Float64("impulse", con.Impulse),
			log.Bool("separating", con.Separating),
		)
	}

	if space.contactHandler != nil {
		space.contactHandler(con)
	}
}

// Contacts returns the contacts resolved by the last Step.
func (space *Space) Contacts() []Contact {
	out := make([]Contact, len(space.contacts))
	copy(out, space.contacts)
	return out
}

// PointQueryFirst returns the first body, in list order, whose shape
// contains point.
func (space *Space) PointQueryFirst(point vect.Vect) (*Body, bool) {
	p := r2.Point{X: point.X, Y: point.Y}
	for _, body := range space.bodies {
		bb := body.Shape.Bounds()
		if seg := body.GetAsSegment(); seg != nil {
			bb = bb.ExpandedByMargin(SegmentPickTolerance + SegmentPickOverhang*seg.Length())
		}
		if !bb.ContainsPoint(p) {
			continue
		}
		if body.Shape.TestPoint(point) {
			return body, true
		}
	}
	return nil, false
}

// KineticEnergy sums the kinetic energy of every finite-mass body.
func (space *Space) KineticEnergy() float64 {
	total := 0.0
	for _, body := range space.bodies {
		total += body.KineticEnergy()
	}
	return total
}

// Fingerprint hashes ids, shapes, masses and velocities of all bodies in
// order. Two spaces built and stepped the same way have equal fingerprints.
func (space *Space) Fingerprint() uint64 {
	h := xxhash.New()
	var buf [8]byte
	putU := func(u uint64) {
		binary.LittleEndian.PutUint64(buf[:], u)
		_, _ = h.Write(buf[:])
	}
	putF := func(f float64) {
		putU(math.Float64bits(f))
	}

	for _, body := range space.bodies {
		putU(uint64(body.id))
		putU(uint64(body.ShapeType()))
		putF(body.m)
		putF(body.v.X)
		putF(body.v.Y)
		switch shape := body.Shape.(type) {
		case *DiscShape:
			putF(shape.Position.X)
			putF(shape.Position.Y)
			putF(shape.Radius)
		case *SegmentShape:
			putF(shape.A.X)
			putF(shape.A.Y)
			putF(shape.B.X)
			putF(shape.B.Y)
		}
	}
	return h.Sum64()
}
