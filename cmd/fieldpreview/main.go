// Field preview tool - interactive parameter tuning with sliders.
//
// Usage: go run ./cmd/fieldpreview
package main

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/vortex/field"
	"github.com/pthm-cable/vortex/renderer"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	previewWidth = 900
	panelWidth   = windowWidth - previewWidth - 30
	previewSeed  = 12345
)

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	params := field.DefaultConfig()
	params.ParticleCount = 800 // lighter default for interactive tuning

	f := field.New(previewWidth, windowHeight, params, previewSeed, 0)
	glow := renderer.NewGlow(previewWidth, windowHeight, 8, 1.5)
	defer glow.Unload()

	needsRebuild := false

	for !rl.WindowShouldClose() {
		if needsRebuild {
			f = field.New(previewWidth, windowHeight, params, previewSeed, rl.GetTime()*1000)
			needsRebuild = false
		}

		glow.Begin()
		stats := f.Tick(rl.GetTime()*1000, glow)
		glow.End()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)

		glow.Present()
		rl.DrawRectangle(previewWidth, 0, windowWidth-previewWidth, windowHeight, rl.RayWhite)
		rl.DrawLine(previewWidth, 0, previewWidth, windowHeight, rl.DarkGray)

		// Stats under the preview
		rl.DrawText(fmt.Sprintf("tick %d  drawn %d  hue %.0f", f.Ticks(), stats.Drawn, f.CurrentHue()),
			10, windowHeight-24, 16, rl.RayWhite)

		// Control panel
		panelX := float32(previewWidth + 15)
		panelY := float32(10)

		rl.DrawText("Field Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		needsRebuild = intSlider(&panelX, &panelY, "Particle count", &params.ParticleCount, 0, 5000) || needsRebuild
		needsRebuild = floatSlider(&panelX, &panelY, "Range Y (spawn spread)", &params.RangeY, 0, 720) || needsRebuild
		needsRebuild = floatSlider(&panelX, &panelY, "Base speed", &params.BaseSpeed, 0, 3) || needsRebuild
		needsRebuild = floatSlider(&panelX, &panelY, "Range speed", &params.RangeSpeed, 0, 3) || needsRebuild
		needsRebuild = floatSlider(&panelX, &panelY, "Base radius", &params.BaseRadius, 0.5, 5) || needsRebuild
		needsRebuild = floatSlider(&panelX, &panelY, "Range radius", &params.RangeRadius, 0, 5) || needsRebuild
		needsRebuild = floatSlider(&panelX, &panelY, "Base hue", &params.BaseHue, 0, 359) || needsRebuild

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY + 10, Width: 120, Height: 28}, "Restart") {
			needsRebuild = true
		}

		rl.EndDrawing()
	}
}

// floatSlider draws a labeled slider and reports whether the value changed.
func floatSlider(x, y *float32, label string, value *float64, min, max float32) bool {
	rl.DrawText(label, int32(*x), int32(*y), 14, rl.Gray)
	*y += 18
	v := gui.SliderBar(
		rl.Rectangle{X: *x, Y: *y, Width: float32(panelWidth - 80), Height: 20},
		fmt.Sprintf("%.1f", min), fmt.Sprintf("%.1f", max),
		float32(*value), min, max,
	)
	rl.DrawText(fmt.Sprintf("%.2f", *value), int32(*x+float32(panelWidth-70)), int32(*y+2), 16, rl.DarkGray)
	*y += 35

	if float64(v) != *value {
		*value = float64(v)
		return true
	}
	return false
}

// intSlider is floatSlider for integer-valued parameters.
func intSlider(x, y *float32, label string, value *int, min, max float32) bool {
	rl.DrawText(label, int32(*x), int32(*y), 14, rl.Gray)
	*y += 18
	v := gui.SliderBar(
		rl.Rectangle{X: *x, Y: *y, Width: float32(panelWidth - 80), Height: 20},
		fmt.Sprintf("%.0f", min), fmt.Sprintf("%.0f", max),
		float32(*value), min, max,
	)
	rl.DrawText(fmt.Sprintf("%d", *value), int32(*x+float32(panelWidth-70)), int32(*y+2), 16, rl.DarkGray)
	*y += 35

	if int(v) != *value {
		*value = int(v)
		return true
	}
	return false
}
