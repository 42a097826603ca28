// Package renderer draws the particle field with raylib: additive strokes
// into an off-screen target, then a blurred, brightened self-composite for
// the glow/trail look.
package renderer

import (
	_ "embed"

	rl "github.com/gen2brain/raylib-go/raylib"
)

//go:embed glow.fs
var glowFS string

// GL constants for the custom "screen" blend of the glow pass:
// result = dst + src * (1 - dst).
const (
	glOne              = 1
	glOneMinusSrcColor = 0x0301
	glFuncAdd          = 0x8006
)

// Glow renders segments into a texture and composites it twice per frame.
// It implements field.Sink between Begin and End.
type Glow struct {
	target rl.RenderTexture2D
	shader rl.Shader

	resolutionLoc int32
	blurLoc       int32
	brightnessLoc int32

	width, height int32
}

// NewGlow creates the render target and glow shader for the given surface.
func NewGlow(width, height int32, blurPx, brightness float64) *Glow {
	g := &Glow{
		width:  width,
		height: height,
	}

	g.target = rl.LoadRenderTexture(width, height)

	g.shader = rl.LoadShaderFromMemory("", glowFS)
	g.resolutionLoc = rl.GetShaderLocation(g.shader, "resolution")
	g.blurLoc = rl.GetShaderLocation(g.shader, "blurPx")
	g.brightnessLoc = rl.GetShaderLocation(g.shader, "brightness")

	rl.SetShaderValue(g.shader, g.blurLoc, []float32{float32(blurPx)}, rl.ShaderUniformFloat)
	rl.SetShaderValue(g.shader, g.brightnessLoc, []float32{float32(brightness)}, rl.ShaderUniformFloat)
	g.setResolution()

	return g
}

func (g *Glow) setResolution() {
	resolution := []float32{float32(g.width), float32(g.height)}
	rl.SetShaderValue(g.shader, g.resolutionLoc, resolution, rl.ShaderUniformVec2)
}

// Begin clears the target and enables additive blending for the strokes.
// Every field.Tick emission between Begin and End lands in the target.
func (g *Glow) Begin() {
	rl.BeginTextureMode(g.target)
	rl.ClearBackground(rl.Black)
	rl.BeginBlendMode(rl.BlendAdditive)
}

// Segment strokes one particle step. Part of the field.Sink contract.
func (g *Glow) Segment(x1, y1, x2, y2, width, hue, alpha float64) {
	rl.DrawLineEx(
		rl.Vector2{X: float32(x1), Y: float32(y1)},
		rl.Vector2{X: float32(x2), Y: float32(y2)},
		float32(width),
		strokeColor(hue, alpha),
	)
}

// End finishes the stroke pass.
func (g *Glow) End() {
	rl.EndBlendMode()
	rl.EndTextureMode()
}

// Present composites the target onto the screen: once as-is, then again
// through the blur+brightness shader under a screen blend.
func (g *Glow) Present() {
	// Render textures are Y-flipped; a negative source height corrects it.
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(g.width), Height: -float32(g.height)}
	pos := rl.Vector2{}

	rl.DrawTextureRec(g.target.Texture, src, pos, rl.White)

	rl.SetBlendFactors(glOne, glOneMinusSrcColor, glFuncAdd)
	rl.BeginBlendMode(rl.BlendCustom)
	rl.BeginShaderMode(g.shader)
	rl.DrawTextureRec(g.target.Texture, src, pos, rl.White)
	rl.EndShaderMode()
	rl.EndBlendMode()
}

// Resize recreates the render target for a new surface size.
func (g *Glow) Resize(width, height int32) {
	if width == g.width && height == g.height {
		return
	}
	rl.UnloadRenderTexture(g.target)
	g.width = width
	g.height = height
	g.target = rl.LoadRenderTexture(width, height)
	g.setResolution()
}

// Unload releases GPU resources. No Segment calls may follow.
func (g *Glow) Unload() {
	rl.UnloadRenderTexture(g.target)
	rl.UnloadShader(g.shader)
}
