package spring

import "gonum.org/v1/gonum/spatial/r2"

// Simulation2D pairs two independent spring simulations, one per axis.
// The axes may use different parameters and may start at different
// moments: each axis evaluates at its own local time t − delay, clamped
// at zero, which gives a diagonal motion a staggered, springy feel.
type Simulation2D struct {
	X, Y   Simulation
	DelayX float64
	DelayY float64
}

// NewSimulation2D validates both axis simulations. Delays default to
// zero and can be set on the returned value.
func NewSimulation2D(x, y Simulation) (Simulation2D, error) {
	for _, axis := range [...]Simulation{x, y} {
		if _, err := NewSimulation(axis.Params, axis.Start, axis.End, axis.InitialVelocity); err != nil {
			return Simulation2D{}, err
		}
	}
	return Simulation2D{X: x, Y: y}, nil
}

// Position returns both axis positions at global time t. An axis whose
// delay has not elapsed yet sits at its start value.
func (s Simulation2D) Position(t float64) r2.Vec {
	return r2.Vec{X: s.X.Position(t - s.DelayX), Y: s.Y.Position(t - s.DelayY)}
}

// Velocity returns both axis velocities at global time t.
func (s Simulation2D) Velocity(t float64) r2.Vec {
	return r2.Vec{X: s.X.Velocity(t - s.DelayX), Y: s.Y.Velocity(t - s.DelayY)}
}

// Settled reports whether both axes are settled at global time t.
func (s Simulation2D) Settled(t float64) bool {
	return s.X.Settled(t-s.DelayX) && s.Y.Settled(t-s.DelayY)
}
