package vect

import (
	"go.uber.org/zap/zapcore"
)

// MarshalLogObject lets vectors be logged as {"x":..,"y":..} with zap.Object.
func (v Vect) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddFloat64("x", v.X)
	enc.AddFloat64("y", v.Y)
	return nil
}
