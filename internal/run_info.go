// Package internal holds the types a finished run is reported
// through. Output templates are executed against RunInfo, so every
// field and method here is available to user-defined templates too.
package internal

import (
	"time"
)

// RunInfo carries the description of a run together with everything
// measured during it.
type RunInfo struct {
	Spec   Spec
	Result Results
}

// TestType tells counted and timed runs apart.
type TestType int

const (
	_ TestType = iota
	ByTime
	ByNumberOfIterations
)

// ClientType is the transport the run was performed with.
type ClientType int

const (
	NetHTTP2 ClientType = iota
	NetHTTP1
	FastHTTP
)

// Header is a single HTTP header.
type Header struct {
	Key, Value string
}

// Spec is the run description, as resolved after defaulting.
type Spec struct {
	NumberOfClients uint64

	TestType           TestType
	NumberOfIterations uint64
	TestDuration       time.Duration

	Method string
	URL    string

	Headers []Header

	Body         string
	BodyFilePath string

	CertPath string
	KeyPath  string

	Timeout    time.Duration
	ClientType ClientType

	Rate *uint64
}

// IsTimedTest tells if the run was limited by duration.
func (s Spec) IsTimedTest() bool {
	return s.TestType == ByTime
}

// IsCountedTest tells if the run was limited by number of iterations.
func (s Spec) IsCountedTest() bool {
	return s.TestType == ByNumberOfIterations
}

// IsFastHTTP tells if the fasthttp client was used.
func (s Spec) IsFastHTTP() bool {
	return s.ClientType == FastHTTP
}

// IsNetHTTPV1 tells if the net/http client with HTTP/1.x was used.
func (s Spec) IsNetHTTPV1() bool {
	return s.ClientType == NetHTTP1
}

// IsNetHTTPV2 tells if the net/http client with HTTP/2 was used.
func (s Spec) IsNetHTTPV2() bool {
	return s.ClientType == NetHTTP2
}

// RateLimit returns the request rate limit, or 0 when the run was
// unthrottled.
func (s Spec) RateLimit() uint64 {
	if s.Rate == nil {
		return 0
	}
	return *s.Rate
}

// LatencySummary is a read-only view over the recorded request
// durations, in milliseconds. An empty summary answers zero to every
// query.
type LatencySummary interface {
	Count() uint64
	Mean() float64
	Stddev() float64
	Min() uint64
	Max() uint64

	// Percentile takes a quantile in [0, 1], e.g. 0.999 for the
	// 99.9'th percentile.
	Percentile(p float64) uint64
}

// Results holds everything measured during a run.
type Results struct {
	BytesRead    int64
	BytesWritten int64
	TimeTaken    time.Duration

	Req1XX uint64
	Req2XX uint64
	Req3XX uint64
	Req4XX uint64
	Req5XX uint64
	Others uint64

	Latencies LatencySummary

	Errors []ErrorWithCount
}

// ErrorWithCount is an error message and the number of times requests
// failed with it.
type ErrorWithCount struct {
	Error string
	Count uint64
}

// Throughput is the average number of bytes on the wire per second,
// reads and writes combined.
func (r Results) Throughput() float64 {
	if r.TimeTaken <= 0 {
		return 0
	}
	return float64(r.BytesRead+r.BytesWritten) / r.TimeTaken.Seconds()
}

// AvgRequestsPerSec is the observed request rate over the whole run.
func (r Results) AvgRequestsPerSec() float64 {
	if r.TimeTaken <= 0 || r.Latencies == nil {
		return 0
	}
	return float64(r.Latencies.Count()) / r.TimeTaken.Seconds()
}

// LatenciesStats are aggregates over the recorded latencies at the
// given quantiles, each in [0, 1].
type LatenciesStats struct {
	Mean        float64
	Stddev      float64
	Max         float64
	Percentiles map[float64]uint64
}

// LatenciesStats returns nil when no latencies were recorded, which
// lets templates branch on data availability with a single "with".
func (r Results) LatenciesStats(percentiles []float64) *LatenciesStats {
	if r.Latencies == nil || r.Latencies.Count() < 1 {
		return nil
	}
	ps := make(map[float64]uint64)
	for _, p := range percentiles {
		if p < 0 || p > 1 {
			continue
		}
		ps[p] = r.Latencies.Percentile(p)
	}
	return &LatenciesStats{
		Mean:        r.Latencies.Mean(),
		Stddev:      r.Latencies.Stddev(),
		Max:         float64(r.Latencies.Max()),
		Percentiles: ps,
	}
}
