// Package telemetry aggregates per-tick simulation counters into time
// windows and writes them to structured logs and CSV.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Respawn causes during the window
	Expired     int `csv:"expired"`
	OutOfBounds int `csv:"out_of_bounds"`

	// Emission counts during the window
	SegmentsDrawn   int `csv:"segments_drawn"`
	SegmentsSkipped int `csv:"segments_skipped"`

	// Per-tick distribution of drawn segments
	DrawnMean float64 `csv:"drawn_mean"`
	DrawnStd  float64 `csv:"drawn_std"`

	// Tick duration distribution in milliseconds
	TickMsMean float64 `csv:"tick_ms_mean"`
	TickMsP50  float64 `csv:"tick_ms_p50"`
	TickMsP90  float64 `csv:"tick_ms_p90"`

	// Global hue at window end
	Hue float64 `csv:"hue"`
}

// LogStats emits the window through the default slog logger.
func (ws WindowStats) LogStats() {
	slog.Info("window stats",
		"window_end", ws.WindowEndTick,
		"sim_time", ws.SimTimeSec,
		"expired", ws.Expired,
		"out_of_bounds", ws.OutOfBounds,
		"segments_drawn", ws.SegmentsDrawn,
		"segments_skipped", ws.SegmentsSkipped,
		"drawn_mean", ws.DrawnMean,
		"tick_ms_mean", ws.TickMsMean,
		"tick_ms_p90", ws.TickMsP90,
		"hue", ws.Hue,
	)
}

// distribution computes mean, stddev and the 50th/90th percentiles of values.
// The input slice is not modified.
func distribution(values []float64) (mean, std, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	mean = stat.Mean(values, nil)
	if len(values) > 1 {
		std = stat.StdDev(values, nil)
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)

	return mean, std, p50, p90
}
