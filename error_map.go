package main

import (
	"fmt"
	"sort"
	"sync"
)

// errorMap tallies request errors by message. Workers add
// concurrently, reads happen after the run is over.
type errorMap struct {
	mu sync.Mutex
	m  map[string]uint64
}

func newErrorMap() *errorMap {
	return &errorMap{m: map[string]uint64{}}
}

func (e *errorMap) add(err error) {
	e.mu.Lock()
	e.m[err.Error()]++
	e.mu.Unlock()
}

func (e *errorMap) get(err error) uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.m[err.Error()]
}

func (e *errorMap) sum() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	sum := uint64(0)
	for _, count := range e.m {
		sum += count
	}
	return sum
}

func (e *errorMap) byFrequency() errorsByFrequency {
	e.mu.Lock()
	byFreq := make(errorsByFrequency, 0, len(e.m))
	for err, count := range e.m {
		byFreq = append(byFreq, errorWithCount{err, count})
	}
	e.mu.Unlock()
	sort.Sort(byFreq)
	return byFreq
}

type errorWithCount struct {
	error string
	count uint64
}

func (ewc errorWithCount) String() string {
	return fmt.Sprintf("<%v:%v>", ewc.error, ewc.count)
}

type errorsByFrequency []errorWithCount

func (ebf errorsByFrequency) Len() int {
	return len(ebf)
}

// Less orders by descending count, ties alphabetically so the report
// is deterministic.
func (ebf errorsByFrequency) Less(i, j int) bool {
	if ebf[i].count != ebf[j].count {
		return ebf[i].count > ebf[j].count
	}
	return ebf[i].error < ebf[j].error
}

func (ebf errorsByFrequency) Swap(i, j int) {
	ebf[i], ebf[j] = ebf[j], ebf[i]
}
