package keyframe

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Lerp blends between two values at fraction t. t = 0 yields a and
// t = 1 yields b. Implementations must extrapolate for t outside
// [0, 1]: spring segments overshoot their targets.
type Lerp[T any] func(a, b T, t float64) T

func lerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

func lerpFloat32(a, b float32, t float64) float32 {
	return a + float32(float64(b-a)*t)
}

func lerpVec2(a, b r2.Vec, t float64) r2.Vec {
	return r2.Add(a, r2.Scale(t, r2.Sub(b, a)))
}

func lerpVec3(a, b r3.Vec, t float64) r3.Vec {
	return r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
}

// builtinLerp returns the built-in blend for T, or nil when T has none
// and the caller must supply one with WithLerp.
func builtinLerp[T any]() Lerp[T] {
	var fn Lerp[T]
	switch p := any(&fn).(type) {
	case *Lerp[float64]:
		*p = lerpFloat64
	case *Lerp[float32]:
		*p = lerpFloat32
	case *Lerp[r2.Vec]:
		*p = lerpVec2
	case *Lerp[r3.Vec]:
		*p = lerpVec3
	}
	return fn
}
