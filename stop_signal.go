package main

import "sync"

// stopSignal is the cancellation latch shared by every worker. It
// trips at most once per run and stays set afterwards, no matter how
// many goroutines call set concurrently.
type stopSignal struct {
	once     sync.Once
	doneChan chan struct{}
}

func newStopSignal() *stopSignal {
	return &stopSignal{doneChan: make(chan struct{})}
}

func (s *stopSignal) set() {
	s.once.Do(func() {
		close(s.doneChan)
	})
}

// done returns a channel closed once the signal is set, for use in
// select statements.
func (s *stopSignal) done() <-chan struct{} {
	return s.doneChan
}

func (s *stopSignal) isSet() bool {
	select {
	case <-s.doneChan:
		return true
	default:
		return false
	}
}
