package bounce

import (
	"strconv"
	"sync/atomic"
)

// BodyID identifies a body for the lifetime of an Allocator. IDs are never reused.
type BodyID uint64

// Allocator hands out body ids and labels for one simulation session.
// Discs and segments share the id counter but use separate label sequences.
type Allocator struct {
	idCounter      uint64
	labelCounter   uint64
	segmentCounter uint64
}

func NewAllocator() *Allocator {
	return &Allocator{}
}

func (a *Allocator) NextID() BodyID {
	id := BodyID(atomic.AddUint64(&a.idCounter, 1))
	if id == 0 {
		panic("BodyID overflowed")
	}
	return id
}

// NextLabel returns A, B, ..., Z, AA, AB, ...
func (a *Allocator) NextLabel() string {
	return alphaLabel(atomic.AddUint64(&a.labelCounter, 1))
}

// NextSegmentLabel returns W1, W2, ...
func (a *Allocator) NextSegmentLabel() string {
	return "W" + strconv.FormatUint(atomic.AddUint64(&a.segmentCounter, 1), 10)
}

// bijective base-26, n starts at 1.
func alphaLabel(n uint64) string {
	var buf [16]byte
	i := len(buf)
	for n > 0 {
		n--
		i--
		buf[i] = byte('A' + n%26)
		n /= 26
	}
	return string(buf[i:])
}
