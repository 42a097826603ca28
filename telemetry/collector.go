package telemetry

import "github.com/pthm-cable/vortex/field"

// Collector accumulates per-tick counters and emits WindowStats when a
// window's worth of ticks has elapsed.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int64
	dt                  float64 // seconds per tick

	tick            int64
	windowStartTick int64

	expired     int
	outOfBounds int
	drawn       int
	skipped     int

	drawnPerTick []float64
	tickMS       []float64
	lastHue      float64
}

// NewCollector creates a stats collector.
// windowDurationSec: how long each window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec, dt float64) *Collector {
	ticksPerWindow := int64(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
		drawnPerTick:        make([]float64, 0, ticksPerWindow),
		tickMS:              make([]float64, 0, ticksPerWindow),
	}
}

// Record folds one tick's counters into the current window. When the window
// completes, the aggregated stats are returned with ok=true and a new window
// begins.
func (c *Collector) Record(s field.TickStats, tickMS, hue float64) (ws WindowStats, ok bool) {
	c.tick++
	c.expired += s.Expired
	c.outOfBounds += s.OutOfBounds
	c.drawn += s.Drawn
	c.skipped += s.Skipped
	c.drawnPerTick = append(c.drawnPerTick, float64(s.Drawn))
	c.tickMS = append(c.tickMS, tickMS)
	c.lastHue = hue

	if c.tick-c.windowStartTick < c.windowDurationTicks {
		return WindowStats{}, false
	}
	return c.endWindow(), true
}

// endWindow builds the stats record and resets the accumulators.
func (c *Collector) endWindow() WindowStats {
	drawnMean, drawnStd, _, _ := distribution(c.drawnPerTick)
	msMean, _, msP50, msP90 := distribution(c.tickMS)

	ws := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   c.tick,
		SimTimeSec:      float64(c.tick) * c.dt,
		Expired:         c.expired,
		OutOfBounds:     c.outOfBounds,
		SegmentsDrawn:   c.drawn,
		SegmentsSkipped: c.skipped,
		DrawnMean:       drawnMean,
		DrawnStd:        drawnStd,
		TickMsMean:      msMean,
		TickMsP50:       msP50,
		TickMsP90:       msP90,
		Hue:             c.lastHue,
	}

	c.windowStartTick = c.tick
	c.expired = 0
	c.outOfBounds = 0
	c.drawn = 0
	c.skipped = 0
	c.drawnPerTick = c.drawnPerTick[:0]
	c.tickMS = c.tickMS[:0]

	return ws
}
