// Command cannonade is a fast cross-platform HTTP load-testing tool.
//
// Usage:
//
//	cannonade [<flags>] [<target>]
//
// The target is given as "[<method> ]<url>", e.g. "POST
// https://somehost.somedomain/upload". Single-token targets are plain
// URLs hit with GET, and an unrecognized method token falls back to
// GET as well.
//
// Flags:
//
//	    --help                  Show context-sensitive help (also try
//	                            --help-long and --help-man).
//	    --version               Show application version.
//	-c, --clients=1             Number of concurrent clients
//	-n, --iterations=1          Total number of requests across all
//	                            clients
//	-d, --duration=10s          Duration of the run
//	-t, --timeout=0s            Per-request timeout, 0 means none
//	-H, --header="K: V" ...     HTTP header to send, as "key: value"
//	-b, --body=""               Request body
//	-f, --body-file=""          File to use as the request body
//	-k, --keepalive=1m          TCP keep-alive interval, probes are
//	                            off when omitted
//	-r, --rate=200              Rate limit in requests per second
//	-l, --latencies             Print latency distribution
//	-v, --verbose               Print every request outcome as it
//	                            happens
//	    --cert=""               Path to the client's TLS Certificate
//	    --key=""                Path to the client's TLS Certificate
//	                            Private Key
//	    --fasthttp              Use fasthttp client
//	    --http1                 Use net/http client with forced
//	                            HTTP/1.x
//	    --http2                 Use net/http client with enabled
//	                            HTTP/2.0
//	    --scenario=run.yaml     Path to a YAML run description,
//	                            replaces the target and run-shaping
//	                            flags
//	-q, --no-print              Don't output anything
//	-p, --print=<spec>          Comma-separated list of parts to
//	                            output, any of intro (i), progress
//	                            (p) and result (r)
//	-o, --format=<format>       Format of the result output, either
//	                            of plain-text, json or
//	                            path:<path-to-template>
//
// Exactly one of -n and -d shapes the run: -n runs a fixed volume of
// requests split evenly between clients, -d keeps all clients going
// until the duration elapses. With neither, a single request is
// issued. Ctrl-C stops the run early and still prints the report for
// whatever was measured up to that point.
package main
