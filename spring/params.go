// Package spring evaluates damped harmonic oscillator motion in closed
// form. A spring is described either by raw physical constants (mass,
// stiffness, damping) or by the friendlier duration/bounce pair, and is
// evaluated exactly at any elapsed time (no numerical integration), so
// motion can be scrubbed backwards and forwards as well as driven
// incrementally by a clock.
package spring

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter reports a non-positive or non-finite physical
// parameter. It is returned at construction time; evaluation itself
// never fails.
var ErrInvalidParameter = errors.New("invalid spring parameter")

// Params is the immutable physical description of a damped oscillator.
// Construct with NewParams or FromDurationAndBounce so the values are
// validated once, then reuse across any number of evaluations.
type Params struct {
	Mass      float64
	Stiffness float64
	Damping   float64
}

// NewParams validates raw physical constants. Mass and stiffness must
// be strictly positive and damping non-negative.
func NewParams(mass, stiffness, damping float64) (Params, error) {
	p := Params{Mass: mass, Stiffness: stiffness, Damping: damping}
	if err := p.validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Denominator floor for the over-damped bounce conversion; bounce -1
// would otherwise mean infinite damping.
const minBounceDenominator = 1e-3

// FromDurationAndBounce converts a perceptual duration (seconds) and a
// bounce value in [-1, 1] into physical constants with unit mass.
// Bounce 0 yields critical damping, positive values under-damping
// (oscillation), negative values over-damping. Bounce is clamped to
// [-1, 1]; values at -1 are floored just above it so damping stays
// finite.
func FromDurationAndBounce(duration, bounce float64) (Params, error) {
	return FromDurationBounceMass(duration, bounce, 1)
}

// FromDurationBounceMass is FromDurationAndBounce with an explicit mass.
func FromDurationBounceMass(duration, bounce, mass float64) (Params, error) {
	if !isFinite(duration) || duration <= 0 {
		return Params{}, fmt.Errorf("%w: duration %v must be a positive number of seconds", ErrInvalidParameter, duration)
	}
	if math.IsNaN(bounce) {
		return Params{}, fmt.Errorf("%w: bounce is NaN", ErrInvalidParameter)
	}
	if !isFinite(mass) || mass <= 0 {
		return Params{}, fmt.Errorf("%w: mass %v must be positive", ErrInvalidParameter, mass)
	}

	bounce = math.Max(-1, math.Min(1, bounce))
	omega0 := 2 * math.Pi / duration

	var zeta float64
	if bounce >= 0 {
		zeta = 1 - bounce
	} else {
		den := 1 + bounce
		if den < minBounceDenominator {
			den = minBounceDenominator
		}
		zeta = 1 / den
	}

	return Params{
		Mass:      mass,
		Stiffness: mass * omega0 * omega0,
		Damping:   2 * zeta * mass * omega0,
	}, nil
}

// AngularFrequency returns the undamped natural frequency ω₀ = √(k/m)
// in radians per second.
func (p Params) AngularFrequency() float64 {
	return math.Sqrt(p.Stiffness / p.Mass)
}

// DampingRatio returns ζ = c / (2·√(m·k)). Values below 1 oscillate,
// 1 is critically damped, above 1 is over-damped.
func (p Params) DampingRatio() float64 {
	return p.Damping / (2 * math.Sqrt(p.Mass*p.Stiffness))
}

func (p Params) validate() error {
	if !isFinite(p.Mass) || p.Mass <= 0 {
		return fmt.Errorf("%w: mass %v must be positive", ErrInvalidParameter, p.Mass)
	}
	if !isFinite(p.Stiffness) || p.Stiffness <= 0 {
		return fmt.Errorf("%w: stiffness %v must be positive", ErrInvalidParameter, p.Stiffness)
	}
	if !isFinite(p.Damping) || p.Damping < 0 {
		return fmt.Errorf("%w: damping %v must be non-negative", ErrInvalidParameter, p.Damping)
	}
	return nil
}

// Named presets as (duration, bounce) pairs:
//
//	Smooth       0.50s  bounce 0.00   no oscillation
//	Snappy       0.30s  bounce 0.15   slight overshoot
//	Bouncy       0.30s  bounce 0.60   pronounced oscillation
//	Interactive  0.15s  bounce 0.10   tracks a dragging pointer
var (
	Smooth      = mustPreset(0.50, 0)
	Snappy      = mustPreset(0.30, 0.15)
	Bouncy      = mustPreset(0.30, 0.60)
	Interactive = mustPreset(0.15, 0.10)
)

func mustPreset(duration, bounce float64) Params {
	p, err := FromDurationAndBounce(duration, bounce)
	if err != nil {
		panic(err)
	}
	return p
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
