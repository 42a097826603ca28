// Package app hosts the particle field: it owns the render loop glue,
// resize forwarding, telemetry and teardown for one mounted effect.
package app

import (
	"fmt"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/vortex/config"
	"github.com/pthm-cable/vortex/field"
	"github.com/pthm-cable/vortex/renderer"
	"github.com/pthm-cable/vortex/telemetry"
)

// dt is the simulated seconds per tick in headless mode.
const dt = 1.0 / 60.0

// Options configures a new App.
type Options struct {
	Seed           int64
	Headless       bool
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	StepsPerUpdate int
}

// App drives one particle field instance. All methods must be called from
// the thread that owns the window; nothing runs after Unload.
type App struct {
	cfg  *config.Config
	opts Options

	field     *field.Field
	glow      *renderer.Glow
	collector *telemetry.Collector
	output    *telemetry.OutputManager
	perf      *PerfStats

	simNowMS  float64
	lastStats field.TickStats
	closed    bool
}

// New builds the field and, unless headless, the glow renderer for the
// current window. The window must already exist in graphical mode.
func New(opts Options) (*App, error) {
	cfg := config.Cfg()

	if opts.StepsPerUpdate < 1 {
		opts.StepsPerUpdate = 1
	}
	if opts.StatsWindowSec <= 0 {
		opts.StatsWindowSec = cfg.Telemetry.StatsWindow
	}

	width := float64(cfg.Screen.Width)
	height := float64(cfg.Screen.Height)
	if !opts.Headless {
		width = float64(rl.GetScreenWidth())
		height = float64(rl.GetScreenHeight())
	}

	a := &App{
		cfg:       cfg,
		opts:      opts,
		field:     field.New(width, height, cfg.Field, opts.Seed, 0),
		collector: telemetry.NewCollector(opts.StatsWindowSec, dt),
		perf:      NewPerfStats(),
	}

	if !opts.Headless {
		a.glow = renderer.NewGlow(int32(width), int32(height), cfg.Render.BlurPx, cfg.Render.Brightness)
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	a.output = output
	if err := a.output.WriteConfig(cfg); err != nil {
		return nil, err
	}

	return a, nil
}

// Tick returns the number of completed simulation ticks.
func (a *App) Tick() int64 {
	return a.field.Ticks()
}

// Step runs one graphical frame: resize handling, simulation with the glow
// sink, two-pass present, HUD, telemetry.
func (a *App) Step() {
	if a.closed {
		return
	}

	if rl.IsWindowResized() {
		w := rl.GetScreenWidth()
		h := rl.GetScreenHeight()
		a.field.Resize(float64(w), float64(h))
		a.glow.Resize(int32(w), int32(h))
	}

	nowMS := rl.GetTime() * 1000

	simStart := time.Now()
	a.glow.Begin()
	stats := a.field.Tick(nowMS, a.glow)
	a.glow.End()
	simDur := time.Since(simStart)
	a.perf.Record("sim", simDur)

	presentStart := time.Now()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	a.glow.Present()
	if a.cfg.Render.HUD {
		a.drawHUD(stats)
	}
	rl.EndDrawing()
	a.perf.Record("present", time.Since(presentStart))

	a.lastStats = stats
	a.record(stats, float64(simDur)/float64(time.Millisecond))
}

// StepHeadless advances the simulation without a drawing surface, running
// StepsPerUpdate ticks at a fixed 60 ticks/s simulated clock.
func (a *App) StepHeadless() {
	if a.closed {
		return
	}

	for i := 0; i < a.opts.StepsPerUpdate; i++ {
		a.simNowMS += dt * 1000

		start := time.Now()
		stats := a.field.Tick(a.simNowMS, nil)
		simDur := time.Since(start)
		a.perf.Record("sim", simDur)

		a.lastStats = stats
		a.record(stats, float64(simDur)/float64(time.Millisecond))
	}
}

// record feeds one tick into the collector and flushes completed windows.
func (a *App) record(stats field.TickStats, tickMS float64) {
	ws, ok := a.collector.Record(stats, tickMS, a.field.CurrentHue())
	if !ok {
		return
	}
	if a.opts.LogStats {
		ws.LogStats()
	}
	if err := a.output.WriteTelemetry(ws); err != nil {
		slog.Error("writing telemetry", "error", err)
	}
}

// drawHUD overlays frame stats on the composited effect.
func (a *App) drawHUD(stats field.TickStats) {
	rl.DrawFPS(10, 10)
	rl.DrawText(fmt.Sprintf("particles: %d", a.field.Count()), 10, 34, 18, rl.RayWhite)
	rl.DrawText(fmt.Sprintf("drawn: %d  skipped: %d", stats.Drawn, stats.Skipped), 10, 54, 18, rl.RayWhite)
	rl.DrawText(fmt.Sprintf("respawns: %d expired / %d oob", stats.Expired, stats.OutOfBounds), 10, 74, 18, rl.RayWhite)
	rl.DrawText(fmt.Sprintf("hue: %.0f", a.field.CurrentHue()), 10, 94, 18, rl.RayWhite)
	rl.DrawText(fmt.Sprintf("sim: %s  present: %s",
		a.perf.Avg("sim").Round(time.Microsecond),
		a.perf.Avg("present").Round(time.Microsecond)), 10, 114, 18, rl.RayWhite)
}

// Unload tears the instance down: no tick runs afterwards and all GPU and
// file resources are released.
func (a *App) Unload() {
	if a.closed {
		return
	}
	a.closed = true

	if a.glow != nil {
		a.glow.Unload()
		a.glow = nil
	}
	if err := a.output.Close(); err != nil {
		slog.Error("closing telemetry output", "error", err)
	}
}
