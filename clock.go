package bounce

import (
	"time"
)

// FrameClock turns host frame timestamps into simulation time deltas:
// dt = elapsed milliseconds / TimeScale.
type FrameClock struct {
	TimeScale float64
	// While paused, Tick keeps tracking time but tells the host not to step.
	Paused bool

	last    time.Time
	started bool
}

func NewFrameClock(timeScale float64) *FrameClock {
	return &FrameClock{TimeScale: timeScale}
}

// Tick records now and returns the delta since the previous tick. The first
// tick returns 0. ok is false while the clock is paused.
func (c *FrameClock) Tick(now time.Time) (dt float64, ok bool) {
	if c.started {
		dt = float64(now.Sub(c.last)) / float64(time.Millisecond) / c.TimeScale
	}
	c.last = now
	c.started = true
	if c.Paused {
		return 0, false
	}
	return dt, true
}

// Toggle flips Paused and returns the new running state.
func (c *FrameClock) Toggle() (running bool) {
	c.Paused = !c.Paused
	return !c.Paused
}

func (c *FrameClock) Reset() {
	c.started = false
	c.last = time.Time{}
}
