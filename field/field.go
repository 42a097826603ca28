// Package field implements the particle field simulation: a fixed-size flat
// buffer of noise-steered particles with per-particle aging and a globally
// eased hue.
package field

import (
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Stride is the number of float64 fields per particle slot.
const Stride = 9

// Per-slot field offsets within a particle's stride.
const (
	pX = iota
	pY
	pVX
	pVY
	pAge
	pTTL
	pSpeed
	pRadius
	pHue
)

// Simulation constants. These are part of the effect's identity and are not
// exposed through config.
const (
	baseTTL  = 50.0
	rangeTTL = 150.0
	rangeHue = 100.0

	xOff       = 0.00125
	yOff       = 0.00125
	zOff       = 0.0005
	noiseSteps = 3.0

	dirEase         = 0.5  // direction easing toward the noise angle
	hueEase         = 0.02 // global hue easing toward target
	particleHueEase = 0.1  // per-particle hue easing toward global

	boundsMargin        = 50.0
	hueChangeIntervalMS = 20000.0
	alphaFloor          = 0.01
)

// Config holds the public field parameters.
type Config struct {
	ParticleCount int     `yaml:"particle_count"`
	RangeY        float64 `yaml:"range_y"`
	BaseSpeed     float64 `yaml:"base_speed"`
	RangeSpeed    float64 `yaml:"range_speed"`
	BaseRadius    float64 `yaml:"base_radius"`
	RangeRadius   float64 `yaml:"range_radius"`
	BaseHue       float64 `yaml:"base_hue"`
}

// DefaultConfig returns the standard vortex parameters.
func DefaultConfig() Config {
	return Config{
		ParticleCount: 2000,
		RangeY:        400,
		BaseSpeed:     0.0,
		RangeSpeed:    1.5,
		BaseRadius:    1,
		RangeRadius:   2,
		BaseHue:       220,
	}
}

// Sink consumes the line segments a tick emits. Implementations must not
// retain the values past the call.
type Sink interface {
	// Segment draws a stroke from (x1,y1) to (x2,y2) with the given stroke
	// width, hue in degrees and alpha in [0,1].
	Segment(x1, y1, x2, y2, width, hue, alpha float64)
}

// TickStats reports what a single tick did.
type TickStats struct {
	Expired     int // respawns caused by age exceeding lifetime
	OutOfBounds int // respawns caused by leaving the margin box
	Drawn       int // segments emitted to the sink
	Skipped     int // segments below the alpha floor
}

// Field owns the particle buffer and global color state. All methods must be
// called from a single goroutine; Resize only writes scalar values read by
// Tick, so the host may forward resize events between ticks.
type Field struct {
	cfg   Config
	buf   []float64
	count int

	width, height    float64
	centerX, centerY float64

	ticks int64

	currentHue    float64
	targetHue     float64
	lastHueChange float64 // ms timestamp of the last target draw

	noise opensimplex.Noise
	rng   *rand.Rand
}

// New allocates the particle buffer and eagerly spawns every slot around the
// surface center. nowMS seeds the hue-change clock.
func New(width, height float64, cfg Config, seed int64, nowMS float64) *Field {
	count := cfg.ParticleCount
	if count < 0 {
		count = 0
	}

	f := &Field{
		cfg:           cfg,
		buf:           make([]float64, count*Stride),
		count:         count,
		width:         width,
		height:        height,
		centerX:       width / 2,
		centerY:       height / 2,
		currentHue:    cfg.BaseHue,
		targetHue:     cfg.BaseHue,
		lastHueChange: nowMS,
		noise:         opensimplex.New(seed),
		rng:           rand.New(rand.NewSource(seed)),
	}

	for i := 0; i < count; i++ {
		f.respawn(i * Stride)
	}

	return f
}

// respawn reinitializes the slot at buffer offset base in place.
func (f *Field) respawn(base int) {
	// Vertical spread keeps the documented rangeY - rangeY*2*rand() form.
	f.buf[base+pX] = f.rng.Float64() * f.width
	f.buf[base+pY] = f.centerY + (f.cfg.RangeY - f.cfg.RangeY*2*f.rng.Float64())
	f.buf[base+pVX] = 0
	f.buf[base+pVY] = 0
	f.buf[base+pAge] = 0
	f.buf[base+pTTL] = baseTTL + f.rng.Float64()*rangeTTL
	f.buf[base+pSpeed] = f.cfg.BaseSpeed + f.rng.Float64()*f.cfg.RangeSpeed
	f.buf[base+pRadius] = f.cfg.BaseRadius + f.rng.Float64()*f.cfg.RangeRadius
	f.buf[base+pHue] = f.currentHue + f.rng.Float64()*rangeHue
}

// Tick advances the whole field by one frame. nowMS drives the global hue
// clock; segments are emitted to sink, which may be nil to run headless.
func (f *Field) Tick(nowMS float64, sink Sink) TickStats {
	if nowMS-f.lastHueChange >= hueChangeIntervalMS {
		f.targetHue = f.rng.Float64() * 360
		f.lastHueChange = nowMS
	}
	f.currentHue = lerp(f.currentHue, f.targetHue, hueEase)

	f.ticks++

	var stats TickStats
	for i := 0; i < f.count; i++ {
		base := i * Stride

		x := f.buf[base+pX]
		y := f.buf[base+pY]
		if x < -boundsMargin || x > f.width+boundsMargin ||
			y < -boundsMargin || y > f.height+boundsMargin {
			f.respawn(base)
			stats.OutOfBounds++
			continue
		}

		n := f.noise.Eval3(x*xOff, y*yOff, float64(f.ticks)*zOff) * noiseSteps * 2 * math.Pi
		vx := lerp(f.buf[base+pVX], math.Cos(n), dirEase)
		vy := lerp(f.buf[base+pVY], math.Sin(n), dirEase)

		speed := f.buf[base+pSpeed]
		x2 := x + vx*speed
		y2 := y + vy*speed

		hue := f.buf[base+pHue]
		if math.Abs(hue-f.currentHue) > 1 {
			hue = lerp(hue, f.currentHue, particleHueEase)
		}

		age := f.buf[base+pAge]
		ttl := f.buf[base+pTTL]
		alpha := fadeInOut(age, ttl)
		if sink != nil && alpha >= alphaFloor {
			sink.Segment(x, y, x2, y2, f.buf[base+pRadius], hue, alpha)
			stats.Drawn++
		} else {
			stats.Skipped++
		}

		f.buf[base+pX] = x2
		f.buf[base+pY] = y2
		f.buf[base+pVX] = vx
		f.buf[base+pVY] = vy
		f.buf[base+pHue] = hue

		age++
		f.buf[base+pAge] = age
		if age > ttl {
			f.respawn(base)
			stats.Expired++
		}
	}

	return stats
}

// Resize updates the surface size and spawn center. The particle buffer is
// untouched; drifted particles are reclaimed by the out-of-bounds rule.
func (f *Field) Resize(width, height float64) {
	f.width = width
	f.height = height
	f.centerX = width / 2
	f.centerY = height / 2
}

// Count returns the number of particle slots.
func (f *Field) Count() int {
	return f.count
}

// Ticks returns the number of completed ticks.
func (f *Field) Ticks() int64 {
	return f.ticks
}

// CurrentHue returns the eased global hue in degrees.
func (f *Field) CurrentHue() float64 {
	return f.currentHue
}
