package bounce

import (
	"errors"
)

var (
	ErrBodyNotFound  = errors.New("body not found")
	ErrNotDisc       = errors.New("body is not a disc")
	ErrNotSegment    = errors.New("body is not a segment")
	ErrInvalidMass   = errors.New("mass must be positive and finite")
	ErrInvalidConfig = errors.New("invalid config")
)
