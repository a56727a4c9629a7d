package spring

// Safety cutoff for discrete stepping and settle-time searches. A
// spring that has not settled after this long (near-zero damping with
// near-zero stiffness, or no damping at all) is cut off rather than
// traced forever.
const maxTraceSeconds = 60.0

// Sample is one discrete observation of a spring.
type Sample struct {
	Time     float64
	Position float64
	Velocity float64
}

// Trace samples the spring at a fixed step (seconds) starting from
// t = 0. The result is always finite: it ends at the first settled
// sample, or at the safety cutoff for springs that never settle.
// A non-positive or non-finite step returns nil.
func (s Simulation) Trace(step float64) []Sample {
	if !isFinite(step) || step <= 0 {
		return nil
	}
	tol := s.DefaultTolerance()
	samples := make([]Sample, 0, 64)
	for i := 0; ; i++ {
		t := float64(i) * step
		samples = append(samples, Sample{Time: t, Position: s.Position(t), Velocity: s.Velocity(t)})
		if s.SettledWithin(t, tol) || t >= maxTraceSeconds {
			return samples
		}
	}
}

// SettleTime returns the earliest time at which the spring is settled
// under the default tolerance, found by bisection (Settled is monotone
// in t). Springs that outlast the safety cutoff report the cutoff.
func (s Simulation) SettleTime() float64 {
	tol := s.DefaultTolerance()
	if s.SettledWithin(0, tol) {
		return 0
	}
	if !s.SettledWithin(maxTraceSeconds, tol) {
		return maxTraceSeconds
	}
	lo, hi := 0.0, maxTraceSeconds
	for i := 0; i < 64 && hi-lo > 1e-9; i++ {
		mid := lo + (hi-lo)/2
		if s.SettledWithin(mid, tol) {
			hi = mid
		} else {
			lo = mid
		}
	}
	return hi
}
