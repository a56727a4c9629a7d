// Package ease provides monotonic progress-remapping functions for
// animation timing. Every function maps a normalized progress value
// t ∈ [0, 1] to an eased value with f(0) = 0 and f(1) = 1.
package ease

import "math"

// Func remaps normalized progress. Implementations must be monotonic
// on [0, 1] so that eased animations never run backwards.
type Func func(t float64) float64

// Linear returns t unchanged (constant speed).
func Linear(t float64) float64 {
	return t
}

// InQuad accelerates from zero: f(t) = t².
func InQuad(t float64) float64 {
	return t * t
}

// OutQuad decelerates to zero: f(t) = 1 - (1-t)².
func OutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// InOutQuad accelerates through the first half and decelerates
// through the second.
func InOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// InCubic accelerates from zero: f(t) = t³.
func InCubic(t float64) float64 {
	return t * t * t
}

// OutCubic starts fast and decelerates: f(t) = 1 - (1-t)³.
func OutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// InOutCubic is slow at both ends and fast in the middle.
func InOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// OutExpo starts very fast and tails off exponentially.
func OutExpo(t float64) float64 {
	if t >= 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

// SmoothStep is the cubic smoothstep 3t² - 2t³.
func SmoothStep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// Standard CSS timing curves.
var (
	EaseIn    = CubicBezier(0.42, 0, 1, 1)
	EaseOut   = CubicBezier(0, 0, 0.58, 1)
	EaseInOut = CubicBezier(0.42, 0, 0.58, 1)
)

// CubicBezier builds an easing function from a cubic Bézier curve that
// starts at (0,0) heading toward (x1,y1) and arrives at (1,1) coming
// from (x2,y2). x1 and x2 should lie in [0,1] so the curve is a
// function of progress.
//
// Given progress x, the curve parameter is recovered with a few Newton
// iterations on the x polynomial, then y is evaluated at that parameter.
func CubicBezier(x1, y1, x2, y2 float64) Func {
	return func(x float64) float64 {
		if x <= 0 {
			return 0
		}
		if x >= 1 {
			return 1
		}

		// B(t) = 3(1-t)²t·P1 + 3(1-t)t²·P2 + t³ per axis.
		t := x
		for i := 0; i < 8; i++ {
			t2 := t * t
			t3 := t2 * t
			d := 1 - t
			d2 := d * d

			bx := 3*d2*t*x1 + 3*d*t2*x2 + t3
			dxdt := 3*d2*x1 + 6*d*t*(x2-x1) + 3*t2*(1-x2)
			if dxdt == 0 {
				break
			}
			t -= (bx - x) / dxdt
			if t <= 0 || t >= 1 {
				break
			}
		}
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}

		t2 := t * t
		t3 := t2 * t
		d := 1 - t
		return 3*d*d*t*y1 + 3*d*t2*y2 + t3
	}
}
