package animation

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestCurveEndpoints(t *testing.T) {
	curves := map[string]func(float64) float64{
		"Linear":       Linear,
		"EaseOutBack":  EaseOutBack,
		"EaseInExpo":   EaseInExpo,
		"EaseOutCubic": EaseOutCubic,
	}
	for name, curve := range curves {
		if got := curve(0); math.Abs(got) > 1e-3 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := curve(1); math.Abs(got-1) > 1e-3 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}

func TestEaseOutBackOvershoots(t *testing.T) {
	overshot := false
	for tt := 0.5; tt < 1; tt += 0.01 {
		if EaseOutBack(tt) > 1 {
			overshot = true
			break
		}
	}
	if !overshot {
		t.Error("EaseOutBack never exceeded 1 on the back half")
	}
}

func TestImpulsePeak(t *testing.T) {
	if got := Impulse(0.25); math.Abs(got-1) > epsilon {
		t.Errorf("Impulse(0.25) = %v, want 1", got)
	}
	if got := Impulse(0); got != 0 {
		t.Errorf("Impulse(0) = %v, want 0", got)
	}
	// Decays after the peak.
	if Impulse(0.9) >= Impulse(0.25) {
		t.Error("Impulse did not decay after its peak")
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(10, 20, 0.5); got != 15 {
		t.Errorf("Lerp(10, 20, 0.5) = %v, want 15", got)
	}
	if got := Lerp(10, 20, 0); got != 10 {
		t.Errorf("Lerp(10, 20, 0) = %v, want 10", got)
	}
	// Not clamped: overshooting curves rely on t > 1 extrapolating.
	if got := Lerp(0, 10, 1.1); math.Abs(got-11) > epsilon {
		t.Errorf("Lerp(0, 10, 1.1) = %v, want 11", got)
	}
}

func TestClampUnit(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-1, 0}, {0, 0}, {0.5, 0.5}, {1, 1}, {2, 1},
	}
	for _, tt := range tests {
		if got := ClampUnit(tt.in); got != tt.want {
			t.Errorf("ClampUnit(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
