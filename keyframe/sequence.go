package keyframe

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/olivier-w/motion/spring"
)

// Sequence is an immutable timeline built from weighted frames. All
// derived state (boundary table, per-frame spring simulations) is
// computed once at construction, so Evaluate is a pure read and safe
// for concurrent use.
type Sequence[T any] struct {
	start    T
	frames   []Frame[T]
	bounds   []float64 // cumulative normalized boundaries; last is exactly 1
	springs  []spring.Simulation
	total    float64 // weight sum
	duration float64 // timeline length in seconds
	durSet   bool
	lerp     Lerp[T]
}

// Option configures a sequence at construction.
type Option[T any] func(*Sequence[T])

// WithLerp supplies the blend function for value types without a
// built-in one, or overrides the built-in.
func WithLerp[T any](fn Lerp[T]) Option[T] {
	return func(s *Sequence[T]) { s.lerp = fn }
}

// WithDuration sets the timeline length in seconds. Without it the
// weight sum is the duration, i.e. weights are read as whole seconds.
// The duration only affects spring segments, whose motion is evaluated
// in elapsed seconds rather than normalized progress.
func WithDuration[T any](seconds float64) Option[T] {
	return func(s *Sequence[T]) { s.duration, s.durSet = seconds, true }
}

// NewSequence builds a timeline from a starting value and at least one
// frame. All validation happens here; the returned sequence never
// fails at evaluation time.
func NewSequence[T any](start T, frames []Frame[T], opts ...Option[T]) (*Sequence[T], error) {
	if len(frames) == 0 {
		return nil, ErrEmptySequence
	}

	s := &Sequence[T]{start: start, frames: slices.Clone(frames)}
	for _, opt := range opts {
		opt(s)
	}
	if s.lerp == nil {
		if s.lerp = builtinLerp[T](); s.lerp == nil {
			return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, start)
		}
	}

	total := 0.0
	for i, f := range s.frames {
		if !isFinite(f.Weight) || f.Weight <= 0 {
			return nil, fmt.Errorf("frame %d: %w, got %v", i, ErrZeroWeightSegment, f.Weight)
		}
		if f.Spring != nil && f.Curve != nil {
			return nil, fmt.Errorf("frame %d: %w: both Spring and Curve set", i, spring.ErrInvalidParameter)
		}
		total += f.Weight
	}
	if !isFinite(total) {
		return nil, fmt.Errorf("%w: weight sum %v is not finite", spring.ErrInvalidParameter, total)
	}
	s.total = total

	if !s.durSet {
		s.duration = total
	} else if !isFinite(s.duration) || s.duration <= 0 {
		return nil, fmt.Errorf("%w: duration %v must be a positive number of seconds", spring.ErrInvalidParameter, s.duration)
	}

	s.bounds = make([]float64, len(s.frames))
	acc := 0.0
	for i, f := range s.frames {
		acc += f.Weight / total
		s.bounds[i] = acc
	}
	// Force the final boundary so accumulated rounding can never leave
	// a gap at t = 1.
	s.bounds[len(s.bounds)-1] = 1

	prev := 0.0
	for i, b := range s.bounds {
		if b <= prev {
			return nil, fmt.Errorf("frame %d: %w, weight vanishes after normalization", i, ErrZeroWeightSegment)
		}
		prev = b
	}

	s.springs = make([]spring.Simulation, len(s.frames))
	for i, f := range s.frames {
		if f.Spring == nil {
			continue
		}
		// Spring segments run on the unit interval and the resulting
		// fraction is blended; for scalars this is identical to a
		// spring over (begin, end) with range-scaled velocity, and it
		// is what lets non-scalar value types ride a spring.
		sim, err := spring.NewSimulation(*f.Spring, 0, 1, f.Velocity)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		s.springs[i] = sim
	}

	return s, nil
}

// Duration returns the timeline length in seconds.
func (s *Sequence[T]) Duration() float64 {
	return s.duration
}

// Evaluate maps normalized progress t to an interpolated value. t is
// clamped to [0, 1]: 0 yields the starting value and 1 the last
// frame's value, both exactly. Interior segment boundaries are
// half-open (progress exactly at a boundary starts the next segment),
// with only the final segment closed at t = 1.
func (s *Sequence[T]) Evaluate(t float64) T {
	if t <= 0 || math.IsNaN(t) {
		return s.start
	}
	if t >= 1 {
		return s.frames[len(s.frames)-1].Value
	}

	i := sort.SearchFloat64s(s.bounds, t)
	if s.bounds[i] == t && i < len(s.frames)-1 {
		i++
	}
	lo := 0.0
	if i > 0 {
		lo = s.bounds[i-1]
	}
	localT := (t - lo) / (s.bounds[i] - lo)

	begin := s.start
	if i > 0 {
		begin = s.frames[i-1].Value
	}
	f := s.frames[i]

	switch {
	case f.Spring != nil:
		segSeconds := f.Weight / s.total * s.duration
		return s.lerp(begin, f.Value, s.springs[i].Position(localT*segSeconds))
	case f.Curve != nil:
		return s.lerp(begin, f.Value, f.Curve(localT))
	default:
		return s.lerp(begin, f.Value, localT)
	}
}

// ProgressSource is the minimal capability a driver needs: produce the
// current normalized progress. Any ticking mechanism (a frame
// callback, a timer loop, a manual scrubber) can implement it.
type ProgressSource interface {
	Progress() float64
}

// Sample evaluates the sequence at the driver's current progress.
func (s *Sequence[T]) Sample(src ProgressSource) T {
	return s.Evaluate(src.Progress())
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
