// Package keyframe schedules multi-stage interpolations. A sequence is
// an ordered list of weighted frames sharing one normalized timeline:
// an external driver supplies progress t ∈ [0, 1] and the sequence maps
// it to the active segment, rescales local progress, and blends between
// the previous frame's value and the segment target. Each segment moves
// linearly, through an easing curve, or on a physical spring.
package keyframe

import (
	"errors"

	"github.com/olivier-w/motion/ease"
	"github.com/olivier-w/motion/spring"
)

// Construction-time errors. Evaluation never fails.
var (
	ErrEmptySequence     = errors.New("keyframe sequence needs at least one frame")
	ErrZeroWeightSegment = errors.New("keyframe weight must be positive")
	ErrUnsupportedType   = errors.New("no blend function for value type")
)

// Frame is one segment of a sequence. Exactly one transition mode is
// active: a Spring if set, otherwise a Curve if set, otherwise linear.
// Setting both Spring and Curve is rejected at construction.
type Frame[T any] struct {
	// Value is the segment's target; the begin value is the previous
	// frame's target (or the sequence starting value for the first).
	Value T

	// Weight is the segment's share of the total timeline, relative to
	// the other frames rather than an absolute time. A sequence built
	// without WithDuration reads weights as whole seconds.
	Weight float64

	// Curve remaps local progress before blending.
	Curve ease.Func

	// Spring drives the segment with a damped spring instead of a
	// progress curve. Spring motion runs in the time domain: local
	// progress is converted back to elapsed seconds using the
	// segment's share of the sequence duration.
	Spring *spring.Params

	// Velocity is the spring's initial velocity, in fractions of the
	// segment's value range per second. Ignored unless Spring is set.
	Velocity float64
}
