package renderer

import "testing"

func TestStrokeColorPrimaries(t *testing.T) {
	// hsl(0, 100%, 60%) = rgb(255, 51, 51)
	c := strokeColor(0, 1)
	if c.R != 255 || c.G != 51 || c.B != 51 {
		t.Errorf("hue 0: got rgb(%d, %d, %d), want rgb(255, 51, 51)", c.R, c.G, c.B)
	}
	if c.A != 255 {
		t.Errorf("hue 0: got alpha %d, want 255", c.A)
	}

	// hsl(120, 100%, 60%) = rgb(51, 255, 51)
	c = strokeColor(120, 1)
	if c.R != 51 || c.G != 255 || c.B != 51 {
		t.Errorf("hue 120: got rgb(%d, %d, %d), want rgb(51, 255, 51)", c.R, c.G, c.B)
	}

	// hsl(240, 100%, 60%) = rgb(51, 51, 255)
	c = strokeColor(240, 1)
	if c.R != 51 || c.G != 51 || c.B != 255 {
		t.Errorf("hue 240: got rgb(%d, %d, %d), want rgb(51, 51, 255)", c.R, c.G, c.B)
	}
}

func TestStrokeColorHueWraps(t *testing.T) {
	a := strokeColor(30, 1)
	b := strokeColor(390, 1)
	c := strokeColor(-330, 1)
	if a != b || a != c {
		t.Errorf("hue 30/390/-330 should match: %v %v %v", a, b, c)
	}
}

func TestStrokeColorAlphaClamped(t *testing.T) {
	if c := strokeColor(220, 0.5); c.A != 127 {
		t.Errorf("alpha 0.5: got %d, want 127", c.A)
	}
	if c := strokeColor(220, -1); c.A != 0 {
		t.Errorf("negative alpha: got %d, want 0", c.A)
	}
	if c := strokeColor(220, 2); c.A != 255 {
		t.Errorf("alpha > 1: got %d, want 255", c.A)
	}
}
