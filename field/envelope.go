package field

import "math"

// lerp interpolates from a toward b by factor t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// fadeInOut is a triangular envelope over a particle's lifetime: 0 at birth,
// 1 at the half-life, back to 0 at expiry. Non-positive lifetimes map to 0
// so degenerate particles stay invisible instead of rendering NaN alpha.
func fadeInOut(t, m float64) float64 {
	if m <= 0 {
		return 0
	}
	hm := 0.5 * m
	v := math.Abs(math.Mod(t+hm, m)-hm) / hm
	if math.IsNaN(v) {
		return 0
	}
	return v
}
