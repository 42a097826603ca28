package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/vortex/field"
)

func TestCollectorWindowBoundary(t *testing.T) {
	// 1 second windows at 10 ticks/sec = 10 ticks per window
	c := NewCollector(1.0, 0.1)

	for i := 0; i < 9; i++ {
		if _, ok := c.Record(field.TickStats{Drawn: 5}, 1.0, 220); ok {
			t.Fatalf("window emitted early at tick %d", i+1)
		}
	}

	ws, ok := c.Record(field.TickStats{Drawn: 5, Expired: 2}, 1.0, 220)
	if !ok {
		t.Fatal("expected window to complete on tick 10")
	}
	if ws.WindowStartTick != 0 || ws.WindowEndTick != 10 {
		t.Errorf("unexpected window range: %d..%d", ws.WindowStartTick, ws.WindowEndTick)
	}
	if ws.SegmentsDrawn != 50 {
		t.Errorf("expected 50 drawn segments, got %d", ws.SegmentsDrawn)
	}
	if ws.Expired != 2 {
		t.Errorf("expected 2 expiries, got %d", ws.Expired)
	}
	if math.Abs(ws.SimTimeSec-1.0) > 1e-9 {
		t.Errorf("expected sim time 1.0s, got %f", ws.SimTimeSec)
	}
	if ws.DrawnMean != 5 {
		t.Errorf("expected drawn mean 5, got %f", ws.DrawnMean)
	}
	if ws.Hue != 220 {
		t.Errorf("expected hue 220, got %f", ws.Hue)
	}
}

func TestCollectorResetsBetweenWindows(t *testing.T) {
	c := NewCollector(1.0, 0.5) // 2 ticks per window

	c.Record(field.TickStats{Drawn: 10}, 1.0, 0)
	first, ok := c.Record(field.TickStats{Drawn: 10}, 1.0, 0)
	if !ok || first.SegmentsDrawn != 20 {
		t.Fatalf("unexpected first window: %+v ok=%v", first, ok)
	}

	c.Record(field.TickStats{Drawn: 1}, 1.0, 0)
	second, ok := c.Record(field.TickStats{Drawn: 1}, 1.0, 0)
	if !ok {
		t.Fatal("expected second window to complete")
	}
	if second.SegmentsDrawn != 2 {
		t.Errorf("window counters not reset: got %d drawn", second.SegmentsDrawn)
	}
	if second.WindowStartTick != 2 || second.WindowEndTick != 4 {
		t.Errorf("unexpected second window range: %d..%d", second.WindowStartTick, second.WindowEndTick)
	}
}

func TestCollectorMinimumWindow(t *testing.T) {
	// A window shorter than one tick still emits every tick.
	c := NewCollector(0.001, 1.0/60.0)
	if _, ok := c.Record(field.TickStats{}, 0.1, 0); !ok {
		t.Error("expected one-tick window to emit immediately")
	}
}

func TestDistribution(t *testing.T) {
	values := []float64{4, 1, 3, 2, 5}

	mean, std, p50, p90 := distribution(values)
	if mean != 3 {
		t.Errorf("expected mean 3, got %f", mean)
	}
	if math.Abs(std-math.Sqrt(2.5)) > 1e-9 {
		t.Errorf("expected stddev %f, got %f", math.Sqrt(2.5), std)
	}
	if p50 != 3 {
		t.Errorf("expected p50 3, got %f", p50)
	}
	if p90 != 5 {
		t.Errorf("expected p90 5, got %f", p90)
	}

	// Input must not be reordered
	if values[0] != 4 || values[4] != 5 {
		t.Error("distribution mutated its input")
	}
}

func TestDistributionEmpty(t *testing.T) {
	mean, std, p50, p90 := distribution(nil)
	if mean != 0 || std != 0 || p50 != 0 || p90 != 0 {
		t.Errorf("expected zeros for empty input, got %f %f %f %f", mean, std, p50, p90)
	}
}
