package main

import (
	"time"

	hdrhistogram "github.com/HdrHistogram/hdrhistogram-go"
)

const (
	lowestTrackableLatency  = 1
	highestTrackableLatency = int64(10 * time.Minute / time.Millisecond)
	latencySigfigs          = 3
)

// latencyStats accumulates request durations, in milliseconds, as
// they arrive. Count, sum, min and max are tracked exactly, the HDR
// histogram answers percentile queries. A single goroutine records,
// so no locking.
type latencyStats struct {
	count uint64
	sum   uint64
	min   uint64
	max   uint64
	hist  *hdrhistogram.Histogram
}

func newLatencyStats() *latencyStats {
	return &latencyStats{
		hist: hdrhistogram.New(
			lowestTrackableLatency, highestTrackableLatency, latencySigfigs),
	}
}

func (s *latencyStats) record(ms uint64) {
	if s.count == 0 || ms < s.min {
		s.min = ms
	}
	if ms > s.max {
		s.max = ms
	}
	s.count++
	s.sum += ms
	v := int64(ms)
	if v > s.hist.HighestTrackableValue() {
		v = s.hist.HighestTrackableValue()
	}
	_ = s.hist.RecordValue(v)
}

// Count returns the number of recorded durations.
func (s *latencyStats) Count() uint64 {
	return s.count
}

// Mean returns the arithmetic mean, or 0 when nothing was recorded.
func (s *latencyStats) Mean() float64 {
	if s.count == 0 {
		return 0
	}
	return float64(s.sum) / float64(s.count)
}

// Min returns the smallest recorded duration, or 0 when nothing was
// recorded.
func (s *latencyStats) Min() uint64 {
	return s.min
}

// Max returns the largest recorded duration, or 0 when nothing was
// recorded.
func (s *latencyStats) Max() uint64 {
	return s.max
}

// Stddev returns the standard deviation as seen by the histogram, or
// 0 when nothing was recorded.
func (s *latencyStats) Stddev() float64 {
	if s.count == 0 {
		return 0
	}
	return s.hist.StdDev()
}

// Percentile returns the duration at quantile p, where p is in
// [0, 1], e.g. 0.95 for the 95'th percentile. Empty stats answer 0
// for every quantile.
func (s *latencyStats) Percentile(p float64) uint64 {
	if s.count == 0 {
		return 0
	}
	return uint64(s.hist.ValueAtQuantile(p * 100))
}
