package main

import (
	"io/ioutil"
	"strings"
)

// format selects the template the report is rendered through.
type format interface {
	template() (string, error)
}

type knownFormat string

func (kf knownFormat) template() (string, error) {
	return templates[string(kf)], nil
}

// userDefinedTemplate is a path to a file containing the report
// template.
type userDefinedTemplate string

func (t userDefinedTemplate) template() (string, error) {
	b, err := ioutil.ReadFile(string(t))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func formatFromString(formatSpec string) format {
	switch formatSpec {
	case "plain-text", "pt":
		return knownFormat("plain-text")
	case "json", "j":
		return knownFormat("json")
	}
	if strings.HasPrefix(formatSpec, "path:") {
		return userDefinedTemplate(strings.TrimPrefix(formatSpec, "path:"))
	}
	return nil
}

var templates = map[string]string{
	"plain-text": plainTextTemplate,
	"json":       jsonTemplate,
}

const plainTextTemplate = `{{ with .Result -}}
{{ StyleLabel "Concurrency level" }}    {{ StyleValue (printf "%v" $.Spec.NumberOfClients) }}
{{ StyleLabel "Time taken" }}           {{ StyleValue (printf "%.2f seconds" .TimeTaken.Seconds) }}
{{ StyleLabel "Total requests" }}       {{ StyleValue (printf "%v" .Latencies.Count) }}
{{ StyleLabel "Mean request time" }}    {{ StyleValue (FormatTimeMs .Latencies.Mean) }}
{{ StyleLabel "Max request time" }}     {{ StyleValue (FormatTimeMsUint64 .Latencies.Max) }}
{{ StyleLabel "Min request time" }}     {{ StyleValue (FormatTimeMsUint64 .Latencies.Min) }}
{{ StyleLabel "95'th percentile" }}     {{ StyleValue (FormatTimeMsUint64 (.Latencies.Percentile 0.95)) }}
{{ StyleLabel "99.9'th percentile" }}   {{ StyleValue (FormatTimeMsUint64 (.Latencies.Percentile 0.999)) }}
{{ if WithLatencies -}}
{{ with .LatenciesStats (FloatsToArray 0.5 0.75 0.9 0.95 0.99) -}}
  Latency Distribution
{{ range $pc, $lat := .Percentiles -}}
{{ printf "    %3.0f%%  %v" (Multiply $pc 100.0) (FormatTimeMsUint64 $lat) }}
{{ end -}}
{{ else -}}
  There wasn't enough data to compute latency distribution.
{{ end -}}
{{ end -}}
  HTTP codes
    1xx - {{ .Req1XX }}, 2xx - {{ .Req2XX }}, 3xx - {{ .Req3XX }}, 4xx - {{ .Req4XX }}, 5xx - {{ .Req5XX }}
    others - {{ .Others }}
{{ with .Errors -}}
  Errors
{{ range . -}}
{{ printf "    %v - %v" .Error .Count }}
{{ end -}}
{{ end -}}
{{ StyleLabel "Throughput" }}           {{ StyleValue (printf "%v/s" (FormatBinary .Throughput)) }}
{{ StyleLabel "Reqs/sec" }}             {{ StyleValue (printf "%.2f" .AvgRequestsPerSec) }}
{{ end -}}`

const jsonTemplate = `{"spec":{"numberOfClients":{{ .Spec.NumberOfClients }},` +
	`"testType":"{{ if .Spec.IsTimedTest }}timed{{ else }}counted{{ end }}",` +
	`{{ if .Spec.IsTimedTest }}"testDurationSeconds":{{ .Spec.TestDuration.Seconds }}` +
	`{{ else }}"numberOfIterations":{{ .Spec.NumberOfIterations }}{{ end }},` +
	`"method":"{{ .Spec.Method }}","url":{{ .Spec.URL | printf "%q" }},` +
	`{{ with .Spec.Headers }}"headers":[{{ range $i, $h := . }}` +
	`{{ if $i }},{{ end }}{"key":{{ $h.Key | printf "%q" }},` +
	`"value":{{ $h.Value | printf "%q" }}}{{ end }}],{{ end }}` +
	`{{ if .Spec.BodyFilePath }}"bodyFilePath":{{ .Spec.BodyFilePath | printf "%q" }}` +
	`{{ else }}"body":{{ .Spec.Body | printf "%q" }}{{ end }},` +
	`{{ if .Spec.CertPath }}"certPath":{{ .Spec.CertPath | printf "%q" }},{{ end }}` +
	`{{ if .Spec.KeyPath }}"keyPath":{{ .Spec.KeyPath | printf "%q" }},{{ end }}` +
	`{{ if .Spec.Rate }}"rate":{{ .Spec.RateLimit }},{{ end }}` +
	`"timeoutSeconds":{{ .Spec.Timeout.Seconds }},` +
	`"client":"{{ if .Spec.IsFastHTTP }}fasthttp` +
	`{{ else if .Spec.IsNetHTTPV1 }}net/http.v1{{ else }}net/http.v2{{ end }}"},` +
	`"result":{"bytesRead":{{ .Result.BytesRead }},` +
	`"bytesWritten":{{ .Result.BytesWritten }},` +
	`"timeTakenSeconds":{{ .Result.TimeTaken.Seconds }},` +
	`"req1xx":{{ .Result.Req1XX }},"req2xx":{{ .Result.Req2XX }},` +
	`"req3xx":{{ .Result.Req3XX }},"req4xx":{{ .Result.Req4XX }},` +
	`"req5xx":{{ .Result.Req5XX }},"others":{{ .Result.Others }},` +
	`{{ with .Result.Errors }}"errors":[{{ range $i, $e := . }}` +
	`{{ if $i }},{{ end }}{"description":{{ $e.Error | printf "%q" }},` +
	`"count":{{ $e.Count }}}{{ end }}],{{ end }}` +
	`"latencies":{"count":{{ .Result.Latencies.Count }},` +
	`"mean":{{ .Result.Latencies.Mean }},"stddev":{{ .Result.Latencies.Stddev }},` +
	`"min":{{ .Result.Latencies.Min }},"max":{{ .Result.Latencies.Max }},` +
	`"percentiles":{"50":{{ .Result.Latencies.Percentile 0.5 }},` +
	`"75":{{ .Result.Latencies.Percentile 0.75 }},` +
	`"90":{{ .Result.Latencies.Percentile 0.9 }},` +
	`"95":{{ .Result.Latencies.Percentile 0.95 }},` +
	`"99":{{ .Result.Latencies.Percentile 0.99 }},` +
	`"99.9":{{ .Result.Latencies.Percentile 0.999 }}}},` +
	`"throughputBytesPerSecond":{{ .Result.Throughput }},` +
	`"avgRequestsPerSecond":{{ .Result.AvgRequestsPerSec }}}}` + "\n"
