package main

import (
	"testing"

	"github.com/codesenberg/cannonade/internal"
)

var _ internal.LatencySummary = (*latencyStats)(nil)

func TestLatencyStatsEmpty(t *testing.T) {
	s := newLatencyStats()
	if s.Count() != 0 {
		t.Error(s.Count())
	}
	if s.Mean() != 0 || s.Stddev() != 0 {
		t.Fail()
	}
	if s.Min() != 0 || s.Max() != 0 {
		t.Fail()
	}
	for _, p := range []float64{0, 0.5, 0.95, 0.999, 1} {
		if v := s.Percentile(p); v != 0 {
			t.Errorf("Expected 0 at quantile %v, but got %v", p, v)
		}
	}
}

func TestLatencyStatsRecord(t *testing.T) {
	s := newLatencyStats()
	for _, ms := range []uint64{10, 20, 30} {
		s.record(ms)
	}
	if s.Count() != 3 {
		t.Error(s.Count())
	}
	if s.Mean() != 20 {
		t.Error(s.Mean())
	}
	if s.Min() != 10 {
		t.Error(s.Min())
	}
	if s.Max() != 30 {
		t.Error(s.Max())
	}
}

func TestLatencyStatsPercentiles(t *testing.T) {
	s := newLatencyStats()
	for i := uint64(1); i <= 10000; i++ {
		s.record(i)
	}
	median := s.Percentile(0.5)
	if median < 4950 || median > 5050 {
		t.Errorf("Expected the median of 1..10000 to be around 5000, but got %v", median)
	}
	if p0 := s.Percentile(0); p0 > s.Percentile(1) {
		t.Errorf("Quantiles should be monotonic, got %v > %v", p0, s.Percentile(1))
	}
	if top := s.Percentile(1); top < 9900 {
		t.Error(top)
	}
}

func TestLatencyStatsClampsOutliers(t *testing.T) {
	huge := uint64(highestTrackableLatency) + 5000
	s := newLatencyStats()
	s.record(huge)
	if s.Max() != huge {
		t.Errorf("The exact maximum should survive clamping, got %v", s.Max())
	}
	limit := uint64(highestTrackableLatency) + uint64(highestTrackableLatency)/1000
	if top := s.Percentile(1); top > limit {
		t.Errorf("Histogram values should stay near the trackable range, got %v", top)
	}
}

func TestLatencyStatsMinTracksFirstValue(t *testing.T) {
	s := newLatencyStats()
	s.record(50)
	if s.Min() != 50 || s.Max() != 50 {
		t.Fail()
	}
	s.record(5)
	if s.Min() != 5 {
		t.Error(s.Min())
	}
}
