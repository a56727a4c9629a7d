package spring

import (
	"fmt"
	"math"
)

// Half-width of the damping-ratio band treated as critically damped.
// Selecting the critical branch deliberately near ζ = 1 keeps the
// under- and over-damped closed forms away from their ωd → 0 and
// r1 → r2 degeneracies.
const criticalBand = 1e-4

// Simulation is a stateless evaluator for one spring: parameters plus
// boundary conditions. Every method is a pure function of the elapsed
// time, so a Simulation can be shared freely across goroutines.
type Simulation struct {
	Params          Params
	Start           float64
	End             float64
	InitialVelocity float64
}

// NewSimulation validates the parameters and boundary conditions.
func NewSimulation(p Params, start, end, velocity float64) (Simulation, error) {
	if err := p.validate(); err != nil {
		return Simulation{}, err
	}
	for _, v := range [...]float64{start, end, velocity} {
		if !isFinite(v) {
			return Simulation{}, fmt.Errorf("%w: boundary condition %v is not finite", ErrInvalidParameter, v)
		}
	}
	return Simulation{Params: p, Start: start, End: end, InitialVelocity: velocity}, nil
}

// Tolerance bounds how close to rest a spring must be before it counts
// as settled. Position is in value units, Velocity in value units per
// second.
type Tolerance struct {
	Position float64
	Velocity float64
}

// DefaultTolerance is a thousandth of the start-to-end range, or an
// absolute epsilon when the range is zero.
func (s Simulation) DefaultTolerance() Tolerance {
	r := math.Abs(s.End - s.Start)
	if r == 0 {
		return Tolerance{Position: 1e-3, Velocity: 1e-3}
	}
	return Tolerance{Position: 1e-3 * r, Velocity: 1e-3 * r}
}

type regime int

const (
	underDamped regime = iota
	criticallyDamped
	overDamped
)

// solution carries the closed-form coefficients for the displacement
// d(t) = x(t) − End in the active damping regime:
//
//	under:    d(t) = e^(−σt)·(a·cos ωd·t + b·sin ωd·t)
//	critical: d(t) = (a + b·t)·e^(−ω₀t)
//	over:     d(t) = a·e^(r1·t) + b·e^(r2·t)
type solution struct {
	regime regime
	omega0 float64
	sigma  float64 // ζ·ω₀, exponential decay rate
	omegaD float64 // damped frequency (under-damped only)
	r1, r2 float64 // characteristic roots (over-damped only)
	a, b   float64
}

func (s Simulation) solve() solution {
	omega0 := s.Params.AngularFrequency()
	zeta := s.Params.DampingRatio()
	d0 := s.Start - s.End
	v0 := s.InitialVelocity

	sol := solution{omega0: omega0, sigma: zeta * omega0}
	switch {
	case zeta < 1-criticalBand:
		sol.regime = underDamped
		sol.omegaD = omega0 * math.Sqrt(1-zeta*zeta)
		sol.a = d0
		sol.b = (v0 + sol.sigma*d0) / sol.omegaD
	case zeta <= 1+criticalBand:
		sol.regime = criticallyDamped
		sol.a = d0
		sol.b = v0 + omega0*d0
	default:
		sol.regime = overDamped
		disc := omega0 * math.Sqrt(zeta*zeta-1)
		sol.r1 = -sol.sigma + disc
		sol.r2 = -sol.sigma - disc
		sol.b = (v0 - sol.r1*d0) / (sol.r2 - sol.r1)
		sol.a = d0 - sol.b
	}
	return sol
}

// Position returns the spring position at elapsed time t seconds.
// Negative t is treated as t = 0, where the result is Start exactly.
// There is no upper bound on t: the motion is asymptotic toward End.
func (s Simulation) Position(t float64) float64 {
	if t <= 0 {
		return s.Start
	}
	sol := s.solve()
	switch sol.regime {
	case underDamped:
		decay := math.Exp(-sol.sigma * t)
		return s.End + decay*(sol.a*math.Cos(sol.omegaD*t)+sol.b*math.Sin(sol.omegaD*t))
	case criticallyDamped:
		return s.End + (sol.a+sol.b*t)*math.Exp(-sol.omega0*t)
	default:
		return s.End + sol.a*math.Exp(sol.r1*t) + sol.b*math.Exp(sol.r2*t)
	}
}

// Velocity returns the closed-form derivative of Position at elapsed
// time t seconds. Negative t is treated as t = 0, where the result is
// InitialVelocity exactly.
func (s Simulation) Velocity(t float64) float64 {
	if t <= 0 {
		return s.InitialVelocity
	}
	sol := s.solve()
	switch sol.regime {
	case underDamped:
		decay := math.Exp(-sol.sigma * t)
		cos := math.Cos(sol.omegaD * t)
		sin := math.Sin(sol.omegaD * t)
		return decay * ((sol.b*sol.omegaD-sol.sigma*sol.a)*cos - (sol.a*sol.omegaD+sol.sigma*sol.b)*sin)
	case criticallyDamped:
		return (sol.b - sol.omega0*sol.a - sol.omega0*sol.b*t) * math.Exp(-sol.omega0*t)
	default:
		return sol.a*sol.r1*math.Exp(sol.r1*t) + sol.b*sol.r2*math.Exp(sol.r2*t)
	}
}

// Settled reports whether the spring has come to rest at time t under
// the default tolerance. See SettledWithin.
func (s Simulation) Settled(t float64) bool {
	return s.SettledWithin(t, s.DefaultTolerance())
}

// SettledWithin reports whether both the displacement from End and the
// velocity are bounded within tolerance for every time at or after t,
// not just at t itself. The bound comes from the decay envelope of the
// active damping regime, so a spring crossing its target mid-swing is
// never reported settled, and once SettledWithin returns true it stays
// true for all later t.
func (s Simulation) SettledWithin(t float64, tol Tolerance) bool {
	if t < 0 {
		t = 0
	}
	pos, vel := s.envelope(t)
	return pos <= tol.Position && vel <= tol.Velocity
}

// envelope returns suprema over [t, ∞) of |position − End| and
// |velocity|.
func (s Simulation) envelope(t float64) (pos, vel float64) {
	sol := s.solve()
	switch sol.regime {
	case underDamped:
		// |d| ≤ √(a²+b²)·e^(−σt); with σ = 0 the envelope is flat
		// and an undamped spring only settles when it never moved.
		decay := math.Exp(-sol.sigma * t)
		pos = math.Hypot(sol.a, sol.b) * decay
		vel = math.Hypot(sol.b*sol.omegaD-sol.sigma*sol.a, sol.a*sol.omegaD+sol.sigma*sol.b) * decay
	case criticallyDamped:
		pos = supLinExp(math.Abs(sol.a), math.Abs(sol.b), sol.omega0, t)
		vel = supLinExp(math.Abs(sol.b-sol.omega0*sol.a), sol.omega0*math.Abs(sol.b), sol.omega0, t)
	default:
		pos = math.Abs(sol.a)*math.Exp(sol.r1*t) + math.Abs(sol.b)*math.Exp(sol.r2*t)
		vel = math.Abs(sol.a*sol.r1)*math.Exp(sol.r1*t) + math.Abs(sol.b*sol.r2)*math.Exp(sol.r2*t)
	}
	return pos, vel
}

// supLinExp returns the supremum over τ ≥ t of (c0 + c1·τ)·e^(−k·τ)
// for c0, c1 ≥ 0 and k > 0. The curve has at most one interior peak,
// at τ = 1/k − c0/c1.
func supLinExp(c0, c1, k, t float64) float64 {
	at := func(tau float64) float64 { return (c0 + c1*tau) * math.Exp(-k*tau) }
	if c1 == 0 {
		return at(t)
	}
	peak := 1/k - c0/c1
	if peak > t {
		return at(peak)
	}
	return at(t)
}
