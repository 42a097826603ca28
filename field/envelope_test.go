package field

import (
	"math"
	"testing"
)

func TestFadeInOutBoundaries(t *testing.T) {
	for _, m := range []float64{0.5, 7, 100, 200} {
		if v := fadeInOut(0, m); math.Abs(v) > 1e-12 {
			t.Errorf("fadeInOut(0, %f) = %f, want 0", m, v)
		}
		if v := fadeInOut(m/2, m); math.Abs(v-1) > 1e-12 {
			t.Errorf("fadeInOut(%f, %f) = %f, want 1", m/2, m, v)
		}
		if v := fadeInOut(m, m); math.Abs(v) > 1e-12 {
			t.Errorf("fadeInOut(%f, %f) = %f, want 0", m, m, v)
		}
	}
}

func TestFadeInOutTriangular(t *testing.T) {
	const m = 100.0

	// Rising over the first half, falling over the second.
	prev := fadeInOut(0, m)
	for tt := 1.0; tt <= m/2; tt++ {
		v := fadeInOut(tt, m)
		if v < prev {
			t.Fatalf("envelope not rising at t=%f: %f < %f", tt, v, prev)
		}
		prev = v
	}
	for tt := m/2 + 1; tt <= m; tt++ {
		v := fadeInOut(tt, m)
		if v > prev {
			t.Fatalf("envelope not falling at t=%f: %f > %f", tt, v, prev)
		}
		prev = v
	}
}

func TestFadeInOutDegenerate(t *testing.T) {
	if v := fadeInOut(10, 0); v != 0 {
		t.Errorf("zero lifetime should be invisible, got %f", v)
	}
	if v := fadeInOut(10, -5); v != 0 {
		t.Errorf("negative lifetime should be invisible, got %f", v)
	}
	if v := fadeInOut(math.NaN(), 100); v != 0 {
		t.Errorf("NaN age should be invisible, got %f", v)
	}
}

func TestLerp(t *testing.T) {
	if v := lerp(0, 10, 0.5); v != 5 {
		t.Errorf("lerp(0, 10, 0.5) = %f, want 5", v)
	}
	if v := lerp(3, 3, 0.02); v != 3 {
		t.Errorf("lerp at target should stay put, got %f", v)
	}
	if v := lerp(10, 0, 1); v != 0 {
		t.Errorf("lerp with t=1 should reach target, got %f", v)
	}
}
