package main

import (
	"testing"
	"time"
)

func TestEstimateShouldPanicOnZeroRate(t *testing.T) {
	defer func() {
		pv, ok := recover().(string)
		if !ok {
			t.Error("expected string value")
			return
		}
		if pv != panicZeroRate {
			t.Error(panicZeroRate, pv)
		}
	}()
	_, _ = estimate(0, 10*time.Second)
	t.Error("should fail with rate == 0")
}

func TestEstimateShouldPanicOnNegativeAdjustTo(t *testing.T) {
	defer func() {
		pv, ok := recover().(string)
		if !ok {
			t.Error("expected string value")
			return
		}
		if pv != panicNegativeAdjustTo {
			t.Error(panicNegativeAdjustTo, pv)
		}
	}()
	_, _ = estimate(10, -10*time.Second)
	t.Error("should fail with adjustTo <= 0")
}

func TestEstimateAccuracy(t *testing.T) {
	defer func() {
		if rv := recover(); rv != nil {
			t.Error(rv)
		}
	}()
	expectations := []struct {
		rate         uint64
		adjustTo     time.Duration
		quantum      uint64
		fillInterval time.Duration
	}{
		{1, 100 * time.Millisecond, 1, 1 * time.Second},
		{1, 1000 * time.Millisecond, 1, 1 * time.Second},
		{1, 2000 * time.Millisecond, 2, 2 * time.Second},
		{1, 3000 * time.Millisecond, 3, 3 * time.Second},
		{2, 1500 * time.Millisecond, 3, 1500 * time.Millisecond},
		{3, 100 * time.Millisecond, 3, 1 * time.Second},
		{3, 2500 * time.Millisecond, 6, 2 * time.Second},
		{4, 3000 * time.Millisecond, 12, 3 * time.Second},
		{7, 10 * time.Millisecond, 7, 1 * time.Second},
		{10000, 100 * time.Millisecond, 1000, 100 * time.Millisecond},
		{100000, 100 * time.Millisecond, 10000, 100 * time.Millisecond},
		{1000000, 100 * time.Millisecond, 100000, 100 * time.Millisecond},
	}
	for _, e := range expectations {
		fillInterval, quantum := estimate(e.rate, e.adjustTo)
		if fillInterval != e.fillInterval || quantum != e.quantum {
			t.Logf("For rate %v adjusted to %v:", e.rate, e.adjustTo)
			t.Log("Expected: ", e.quantum, e.fillInterval)
			t.Log("Actual: ", quantum, fillInterval)
			t.Fail()
		}
	}
}
