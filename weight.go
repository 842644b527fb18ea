package wswor

import (
	"errors"
	"math"
)

var (
	// ErrNaNWeight is returned when a weight is not-a-number.
	ErrNaNWeight = errors.New("wswor: cannot sample over values with NaN weights")
	// ErrInfiniteWeight is returned when a weight is positive or negative infinity.
	ErrInfiniteWeight = errors.New("wswor: cannot sample over values with infinite weights")
	// ErrNegativeWeight is returned when a weight's sign bit is set,
	// which includes negative zero.
	ErrNegativeWeight = errors.New("wswor: cannot sample over values with negative weights")
)

// CheckWeight reports whether w may participate in sampling. Zero and
// any positive finite value are valid. The negative check inspects the
// sign bit rather than comparing against zero, so -0.0 is rejected.
func CheckWeight(w float64) error {
	switch {
	case math.IsNaN(w):
		return ErrNaNWeight
	case math.IsInf(w, 0):
		return ErrInfiniteWeight
	case math.Signbit(w):
		return ErrNegativeWeight
	}
	return nil
}
