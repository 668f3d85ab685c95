package bounce

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/vova616/bounce/internal/log"
	"github.com/vova616/bounce/vect"
)

func observedSpace(level zapcore.Level, opts ...Option) (*Space, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	opts = append(opts, WithLogger(log.FromZap(zap.New(core))))
	return NewSpace(opts...), logs
}

func TestHeadOnElasticScenario(t *testing.T) {
	space := NewSpace()
	a := space.AddDisc(0, 0, 50)
	b := space.AddDisc(90, 0, 50)
	space.SetRestitution(a, b, 1)
	require.NoError(t, space.SetVelocity(a, vect.Vect{X: 10}))
	require.NoError(t, space.SetVelocity(b, vect.Vect{X: -10}))

	space.Step(0.1)

	bodyA, _ := space.Body(a)
	bodyB, _ := space.Body(b)
	assert.Equal(t, vect.Vect{X: -10}, bodyA.Velocity())
	assert.Equal(t, vect.Vect{X: 10}, bodyB.Velocity())

	contacts := space.Contacts()
	require.Len(t, contacts, 1)
	assert.Equal(t, a, contacts[0].BodyA)
	assert.Equal(t, b, contacts[0].BodyB)
	assert.Equal(t, 20.0, contacts[0].Impulse)
}

func TestDiscRestsOnWallScenario(t *testing.T) {
	space := NewSpace()
	disc := space.AddDisc(100, 100, 20)
	wall := space.AddSegment(0, 150, 200, 150)
	space.SetRestitution(disc, wall, 0.5)
	require.NoError(t, space.SetVelocity(disc, vect.Vect{Y: 50}))

	body, _ := space.Body(disc)
	for i := 0; i < 50 && body.Velocity().Y > 0; i++ {
		space.Step(0.1)
	}

	require.Less(t, body.Velocity().Y, 0.0)
	assert.InDelta(t, -25.0, body.Velocity().Y, 1e-9)

	seg := space.byID[wall].GetAsSegment()
	closest, _, ok := seg.ClosestPoint(body.Position())
	require.True(t, ok)
	assert.InDelta(t, 20.0, vect.Dist(body.Position(), closest), 1e-9)

	assert.Equal(t, vect.Vect{X: 0, Y: 150}, seg.A)
	assert.Equal(t, vect.Vect{X: 200, Y: 150}, seg.B)
}

func TestDefaultRestitution(t *testing.T) {
	space := NewSpace()
	a := space.AddDisc(0, 0, 10)
	b := space.AddSegment(0, 0, 1, 1)

	assert.Equal(t, 0.9, space.Restitution(a, b))
	assert.Equal(t, 0.9, space.Restitution(b, a))
}

func TestRestitutionFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultRestitution = 0.25
	space := NewSpace(WithConfig(cfg))
	a := space.AddDisc(0, 0, 10)
	b := space.AddDisc(0, 0, 10)

	assert.Equal(t, 0.25, space.Restitution(a, b))
}

func TestRestitutionSymmetry(t *testing.T) {
	space := NewSpace()
	a := space.AddDisc(0, 0, 10)
	b := space.AddDisc(50, 0, 10)
	c := space.AddSegment(0, 0, 10, 0)

	space.SetRestitution(b, a, 0.3)
	space.SetRestitution(a, c, math.NaN())

	assert.Equal(t, 0.3, space.Restitution(a, b))
	assert.Equal(t, 0.3, space.Restitution(b, a))
	assert.True(t, math.IsNaN(space.Restitution(c, a)))
	assert.Equal(t, 0.9, space.Restitution(b, c))
}

func TestBodiesInsertionOrder(t *testing.T) {
	space := NewSpace()
	ids := []BodyID{
		space.AddDisc(0, 0, 10),
		space.AddSegment(0, 0, 10, 0),
		space.AddDisc(100, 0, 10),
	}

	bodies := space.Bodies()
	require.Len(t, bodies, 3)
	for i, body := range bodies {
		assert.Equal(t, ids[i], body.ID())
	}
	assert.Equal(t, "A", bodies[0].Label())
	assert.Equal(t, "W1", bodies[1].Label())
	assert.Equal(t, "B", bodies[2].Label())

	// adding twice keeps a single entry
	space.AddBody(bodies[0])
	assert.Equal(t, 3, space.Len())
}

func TestRemoveBody(t *testing.T) {
	space := NewSpace()
	a := space.AddDisc(0, 0, 10)
	b := space.AddDisc(100, 0, 10)
	c := space.AddDisc(200, 0, 10)
	space.SetRestitution(a, b, 0.1)

	require.NoError(t, space.RemoveBody(b))
	bodies := space.Bodies()
	require.Len(t, bodies, 2)
	assert.Equal(t, a, bodies[0].ID())
	assert.Equal(t, c, bodies[1].ID())
	assert.Equal(t, 0.1, space.Restitution(a, b))

	err := space.RemoveBody(b)
	assert.True(t, errors.Is(err, ErrBodyNotFound))

	_, ok := space.Body(b)
	assert.False(t, ok)
}

func TestSetMass(t *testing.T) {
	space, logs := observedSpace(zapcore.WarnLevel)
	disc := space.AddDisc(0, 0, 10)
	wall := space.AddSegment(0, 0, 10, 0)

	require.NoError(t, space.SetMass(disc, 4))
	body, _ := space.Body(disc)
	assert.Equal(t, 4.0, body.Mass())
	assert.Equal(t, 0.25, body.InverseMass())

	for _, m := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		err := space.SetMass(disc, m)
		assert.ErrorIs(t, err, ErrInvalidMass, "mass %v", m)
	}
	assert.Equal(t, 4.0, body.Mass())
	assert.Equal(t, 4, logs.FilterMessage("mass rejected").Len())

	assert.ErrorIs(t, space.SetMass(wall, 2), ErrNotDisc)
	segment, _ := space.Body(wall)
	assert.True(t, segment.MassIsInf())
	assert.Equal(t, 0.0, segment.InverseMass())

	assert.ErrorIs(t, space.SetMass(BodyID(999), 2), ErrBodyNotFound)
}

func TestDefaultMassFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultMass = 2.5
	space := NewSpace(WithConfig(cfg))
	body, _ := space.Body(space.AddDisc(0, 0, 10))

	assert.Equal(t, 2.5, body.Mass())
	assert.Equal(t, 0.4, body.InverseMass())
}

func TestDiscMutators(t *testing.T) {
	space := NewSpace()
	disc := space.AddDisc(0, 0, 10)
	wall := space.AddSegment(0, 0, 10, 0)

	require.NoError(t, space.SetPosition(disc, vect.Vect{X: 3, Y: 4}))
	require.NoError(t, space.SetVelocityPolar(disc, 10, 90))

	body, _ := space.Body(disc)
	assert.Equal(t, vect.Vect{X: 3, Y: 4}, body.Position())
	assert.InDelta(t, 0.0, body.Velocity().X, 1e-9)
	assert.InDelta(t, 10.0, body.Velocity().Y, 1e-9)

	assert.ErrorIs(t, space.SetPosition(wall, vect.Vect{}), ErrNotDisc)
	assert.ErrorIs(t, space.SetVelocity(BodyID(42), vect.Vect{}), ErrBodyNotFound)
}

func TestSegmentMutators(t *testing.T) {
	space := NewSpace()
	wall := space.AddSegment(100, 300, 500, 300)
	disc := space.AddDisc(0, 0, 10)
	seg := space.byID[wall].GetAsSegment()

	require.NoError(t, space.TranslateSegment(wall, vect.Vect{}))
	assert.Equal(t, vect.Vect{}, seg.A)
	assert.Equal(t, vect.Vect{X: 400}, seg.B)

	require.NoError(t, space.MoveSegment(wall, vect.Vect{X: 100, Y: 300}, vect.Vect{X: 500, Y: 300}))

	require.NoError(t, space.RotateSegment(wall, math.Pi/2))
	assert.InDelta(t, 300.0, seg.A.X, 1e-9)
	assert.InDelta(t, 100.0, seg.A.Y, 1e-9)
	assert.InDelta(t, 300.0, seg.B.X, 1e-9)
	assert.InDelta(t, 500.0, seg.B.Y, 1e-9)
	assert.InDelta(t, 400.0, seg.Length(), 1e-9)

	require.NoError(t, space.RotateSegmentToward(wall, vect.Vect{X: 600, Y: 300}))
	assert.InDelta(t, 100.0, seg.A.X, 1e-9)
	assert.InDelta(t, 300.0, seg.A.Y, 1e-9)
	assert.InDelta(t, 500.0, seg.B.X, 1e-9)
	assert.InDelta(t, 300.0, seg.B.Y, 1e-9)

	assert.ErrorIs(t, space.RotateSegment(disc, 1), ErrNotSegment)
	assert.ErrorIs(t, space.MoveSegment(BodyID(77), vect.Vect{}, vect.Vect{}), ErrBodyNotFound)
}

func TestSegmentVelocityMovesBothEnds(t *testing.T) {
	space := NewSpace()
	wall := space.AddSegment(0, 0, 10, 0)
	require.NoError(t, space.SetVelocity(wall, vect.Vect{X: 1, Y: 2}))

	space.Step(2)

	seg := space.byID[wall].GetAsSegment()
	assert.Equal(t, vect.Vect{X: 2, Y: 4}, seg.A)
	assert.Equal(t, vect.Vect{X: 12, Y: 4}, seg.B)
}

func TestStepNonFiniteDtIsSkipped(t *testing.T) {
	space, logs := observedSpace(zapcore.WarnLevel)
	disc := space.AddDisc(0, 0, 10)
	require.NoError(t, space.SetVelocity(disc, vect.Vect{X: 1}))

	for _, dt := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		space.Step(dt)
	}

	body, _ := space.Body(disc)
	assert.Equal(t, vect.Vect{}, body.Position())
	assert.Equal(t, uint64(0), space.Stamp())
	assert.Equal(t, 3, logs.FilterMessage("step skipped: non-finite dt").Len())
}

func TestStepZeroAndNegativeDt(t *testing.T) {
	space := NewSpace()
	a := space.AddDisc(0, 0, 50)
	b := space.AddDisc(80, 0, 50)
	require.NoError(t, space.SetVelocity(a, vect.Vect{X: 1}))

	// zero dt does not move anything but still resolves overlaps
	space.Step(0)
	require.Len(t, space.Contacts(), 1)
	bodyA, _ := space.Body(a)
	bodyB, _ := space.Body(b)
	assert.Equal(t, vect.Vect{X: -10}, bodyA.Position())
	assert.Equal(t, vect.Vect{X: 90}, bodyB.Position())

	space.Step(-10)
	assert.Equal(t, uint64(2), space.Stamp())
	assert.Less(t, bodyA.Position().X, -10.0)
}

func TestContactHandler(t *testing.T) {
	var seen []Contact
	space, logs := observedSpace(zapcore.DebugLevel, WithContactHandler(func(con Contact) {
		seen = append(seen, con)
	}))
	a := space.AddDisc(0, 0, 50)
	wall := space.AddSegment(-100, 40, 100, 40)

	space.Step(0)

	require.Len(t, seen, 1)
	assert.Equal(t, a, seen[0].BodyA)
	assert.Equal(t, wall, seen[0].BodyB)
	assert.Equal(t, seen, space.Contacts())
	assert.Equal(t, 1, logs.FilterMessage("contact").Len())
	assert.Equal(t, 2, logs.FilterMessage("body added").Len())
}

func TestPointQueryFirst(t *testing.T) {
	space := NewSpace()
	disc := space.AddDisc(200, 200, 50)
	wall := space.AddSegment(100, 300, 500, 300)
	other := space.AddDisc(210, 200, 50)

	body, ok := space.PointQueryFirst(vect.Vect{X: 210, Y: 210})
	require.True(t, ok)
	assert.Equal(t, disc, body.ID())

	body, ok = space.PointQueryFirst(vect.Vect{X: 255, Y: 200})
	require.True(t, ok)
	assert.Equal(t, other, body.ID())

	body, ok = space.PointQueryFirst(vect.Vect{X: 300, Y: 305})
	require.True(t, ok)
	assert.Equal(t, wall, body.ID())

	// a little past the end still picks the segment
	body, ok = space.PointQueryFirst(vect.Vect{X: 95, Y: 300})
	require.True(t, ok)
	assert.Equal(t, wall, body.ID())

	_, ok = space.PointQueryFirst(vect.Vect{X: 300, Y: 320})
	assert.False(t, ok)
	_, ok = space.PointQueryFirst(vect.Vect{X: 50, Y: 300})
	assert.False(t, ok)
}

func buildFingerprintScene() *Space {
	space := NewSpace()
	a := space.AddDisc(0, 0, 30)
	b := space.AddDisc(50, 10, 30)
	space.AddSegment(-100, 60, 200, 60)
	_ = space.SetVelocity(a, vect.Vect{X: 3, Y: 4})
	_ = space.SetVelocity(b, vect.Vect{X: -2, Y: 5})
	return space
}

func TestFingerprintDeterministic(t *testing.T) {
	s1 := buildFingerprintScene()
	s2 := buildFingerprintScene()
	assert.Equal(t, s1.Fingerprint(), s2.Fingerprint())
	assert.NotEqual(t, s1.Session(), s2.Session())

	for i := 0; i < 100; i++ {
		s1.Step(0.5)
		s2.Step(0.5)
	}
	assert.Equal(t, s1.Fingerprint(), s2.Fingerprint())

	before := s1.Fingerprint()
	s1.Step(0.5)
	assert.NotEqual(t, before, s1.Fingerprint())
}

func TestKineticEnergyIgnoresSegments(t *testing.T) {
	space := NewSpace()
	disc := space.AddDisc(0, 0, 10)
	wall := space.AddSegment(500, 0, 600, 0)
	require.NoError(t, space.SetVelocity(disc, vect.Vect{X: 3, Y: 4}))
	require.NoError(t, space.SetVelocity(wall, vect.Vect{X: 100}))

	assert.Equal(t, 12.5, space.KineticEnergy())
}
