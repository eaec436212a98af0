// Package template documents modifiers and fields available for
// custom output templates, given with --format=path:<path>.
//
// Templates are executed with text/template against an
// internal.RunInfo value, so .Spec describes the run and .Result
// holds its measurements.
//
// Spec fields: NumberOfClients; TestType with helpers IsTimedTest and
// IsCountedTest; NumberOfIterations; TestDuration; Method; URL;
// Headers ([]Header with Key and Value); Body; BodyFilePath;
// CertPath; KeyPath; Timeout; ClientType with helpers IsFastHTTP,
// IsNetHTTPV1 and IsNetHTTPV2; RateLimit (0 when unthrottled).
//
// Result fields: BytesRead; BytesWritten; TimeTaken; Req1XX through
// Req5XX and Others; Latencies, a summary with Count, Mean, Stddev,
// Min, Max and Percentile (quantile in [0, 1], milliseconds out);
// Errors ([]ErrorWithCount with Error and Count); Throughput in bytes
// per second; AvgRequestsPerSec. Result.LatenciesStats takes a list
// of quantiles and returns Mean, Stddev, Max and a Percentiles map,
// or nil when nothing was recorded, which plays well with "with":
//
//	{{ with .Result.LatenciesStats (FloatsToArray 0.5 0.9 0.99) }}
//	{{ range $pc, $lat := .Percentiles }}
//	{{ Multiply $pc 100 }}'th: {{ FormatTimeMsUint64 $lat }}
//	{{ end }}{{ end }}
//
// Functions available inside templates:
//
//	WithLatencies      true when --latencies was given
//	FormatBinary       format a float as a binary size (KB, MB, ...)
//	FormatTimeMs       format a float of milliseconds, scaling units
//	FormatTimeMsUint64 same for unsigned integers
//	FloatsToArray      collect arguments into an array
//	Multiply           multiply two floats
//	StringToBytes      convert a string to a byte slice
//	StyleLabel         render a string the way report labels are styled
//	StyleValue         render a string the way report values are styled
//	UUIDV1 .. UUIDV5   generate UUIDs of the corresponding version
package template
