package spring

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestNewParamsInvalid(t *testing.T) {
	tests := []struct {
		name                     string
		mass, stiffness, damping float64
	}{
		{"zero mass", 0, 100, 10},
		{"negative mass", -1, 100, 10},
		{"zero stiffness", 1, 0, 10},
		{"negative stiffness", 1, -5, 10},
		{"negative damping", 1, 100, -0.1},
		{"NaN mass", math.NaN(), 100, 10},
		{"NaN stiffness", 1, math.NaN(), 10},
		{"NaN damping", 1, 100, math.NaN()},
		{"infinite stiffness", 1, math.Inf(1), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParams(tt.mass, tt.stiffness, tt.damping)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("NewParams(%v, %v, %v) error = %v, want ErrInvalidParameter", tt.mass, tt.stiffness, tt.damping, err)
			}
		})
	}
}

func TestNewParamsValid(t *testing.T) {
	p, err := NewParams(2, 50, 0)
	if err != nil {
		t.Fatalf("NewParams() error = %v", err)
	}
	if got, want := p.AngularFrequency(), math.Sqrt(25.0); !scalar.EqualWithinAbs(got, want, 1e-12) {
		t.Errorf("AngularFrequency() = %v, want %v", got, want)
	}
	if got := p.DampingRatio(); got != 0 {
		t.Errorf("DampingRatio() = %v, want 0", got)
	}
}

func TestFromDurationAndBounceRegimes(t *testing.T) {
	tests := []struct {
		name      string
		bounce    float64
		wantRatio float64
	}{
		{"zero bounce is critical", 0, 1},
		{"positive bounce is under-damped", 0.5, 0.5},
		{"negative bounce is over-damped", -0.5, 2},
		{"bounce clamped above", 2, 0}, // same as bounce 1: undamped
		{"full bounce is undamped", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := FromDurationAndBounce(0.5, tt.bounce)
			if err != nil {
				t.Fatalf("FromDurationAndBounce() error = %v", err)
			}
			if got := p.DampingRatio(); !scalar.EqualWithinAbs(got, tt.wantRatio, 1e-12) {
				t.Errorf("DampingRatio() = %v, want %v", got, tt.wantRatio)
			}
		})
	}
}

func TestFromDurationAndBounceStiffness(t *testing.T) {
	duration := 0.25
	p, err := FromDurationAndBounce(duration, 0.3)
	if err != nil {
		t.Fatalf("FromDurationAndBounce() error = %v", err)
	}
	omega0 := 2 * math.Pi / duration
	if got := p.Stiffness; !scalar.EqualWithinAbs(got, omega0*omega0, 1e-9) {
		t.Errorf("Stiffness = %v, want %v", got, omega0*omega0)
	}
	if got := p.AngularFrequency(); !scalar.EqualWithinAbs(got, omega0, 1e-9) {
		t.Errorf("AngularFrequency() = %v, want %v", got, omega0)
	}
}

func TestFromDurationAndBounceInvalid(t *testing.T) {
	tests := []struct {
		name             string
		duration, bounce float64
	}{
		{"zero duration", 0, 0},
		{"negative duration", -0.5, 0},
		{"NaN duration", math.NaN(), 0},
		{"infinite duration", math.Inf(1), 0},
		{"NaN bounce", 0.5, math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromDurationAndBounce(tt.duration, tt.bounce)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("FromDurationAndBounce(%v, %v) error = %v, want ErrInvalidParameter", tt.duration, tt.bounce, err)
			}
		})
	}
}

func TestFromDurationAndBounceExtremeNegative(t *testing.T) {
	// Bounce -1 would mean infinite damping; the conversion must still
	// produce finite, valid parameters.
	p, err := FromDurationAndBounce(0.5, -1)
	if err != nil {
		t.Fatalf("FromDurationAndBounce(0.5, -1) error = %v", err)
	}
	if err := p.validate(); err != nil {
		t.Fatalf("resulting params invalid: %v", err)
	}
	if ratio := p.DampingRatio(); math.IsInf(ratio, 0) || ratio <= 1 {
		t.Errorf("DampingRatio() = %v, want finite over-damped ratio", ratio)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name      string
		params    Params
		wantRatio float64
	}{
		{"Smooth", Smooth, 1},
		{"Snappy", Snappy, 0.85},
		{"Bouncy", Bouncy, 0.4},
		{"Interactive", Interactive, 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.params.validate(); err != nil {
				t.Fatalf("preset invalid: %v", err)
			}
			if got := tt.params.DampingRatio(); !scalar.EqualWithinAbs(got, tt.wantRatio, 1e-12) {
				t.Errorf("DampingRatio() = %v, want %v", got, tt.wantRatio)
			}
		})
	}
}
