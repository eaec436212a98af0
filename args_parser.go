package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/alecthomas/kingpin"
)

type argsParser interface {
	parse([]string) (config, error)
}

type kingpinParser struct {
	app *kingpin.Application

	target string

	clients      *nullableUint64
	iterations   *nullableUint64
	duration     *nullableDuration
	keepAlive    *nullableDuration
	rate         *nullableUint64
	headers      *headersList
	timeout      time.Duration
	latencies    bool
	verbose      bool
	body         string
	bodyFilePath string
	certPath     string
	keyPath      string
	scenarioPath string
	printSpec    string
	noPrint      bool
	formatSpec   string
	fasthttp     bool
	http1        bool
	http2        bool
}

func newKingpinParser() argsParser {
	kparser := &kingpinParser{
		clients:    new(nullableUint64),
		iterations: new(nullableUint64),
		duration:   new(nullableDuration),
		keepAlive:  new(nullableDuration),
		rate:       new(nullableUint64),
		headers:    new(headersList),
	}

	app := kingpin.New("", "Fast cross-platform HTTP load-testing tool").
		Version(version)
	app.Flag("clients", "Number of concurrent clients").
		Short('c').
		PlaceHolder("1").
		SetValue(kparser.clients)
	app.Flag("iterations", "Total number of requests across all clients").
		Short('n').
		PlaceHolder("1").
		SetValue(kparser.iterations)
	app.Flag("duration", "Duration of the run").
		Short('d').
		PlaceHolder("10s").
		SetValue(kparser.duration)
	app.Flag("timeout", "Per-request timeout, 0 means none").
		Short('t').
		Default("0s").
		DurationVar(&kparser.timeout)
	app.Flag("header", "HTTP header to send, as \"key: value\"").
		Short('H').
		PlaceHolder("\"K: V\"").
		SetValue(kparser.headers)
	app.Flag("body", "Request body").
		Short('b').
		Default("").
		StringVar(&kparser.body)
	app.Flag("body-file", "File to use as the request body").
		Short('f').
		Default("").
		StringVar(&kparser.bodyFilePath)
	app.Flag("keepalive", "TCP keep-alive interval, probes are off when omitted").
		Short('k').
		PlaceHolder("1m").
		SetValue(kparser.keepAlive)
	app.Flag("rate", "Rate limit in requests per second").
		Short('r').
		PlaceHolder("200").
		SetValue(kparser.rate)
	app.Flag("latencies", "Print latency distribution").
		Short('l').
		BoolVar(&kparser.latencies)
	app.Flag("verbose", "Print every request outcome as it happens").
		Short('v').
		BoolVar(&kparser.verbose)
	app.Flag("cert", "Path to the client's TLS Certificate").
		Default("").
		StringVar(&kparser.certPath)
	app.Flag("key", "Path to the client's TLS Certificate Private Key").
		Default("").
		StringVar(&kparser.keyPath)
	app.Flag("fasthttp", "Use fasthttp client").
		BoolVar(&kparser.fasthttp)
	app.Flag("http1", "Use net/http client with forced HTTP/1.x").
		BoolVar(&kparser.http1)
	app.Flag("http2", "Use net/http client with enabled HTTP/2.0").
		BoolVar(&kparser.http2)
	app.Flag("scenario", "Path to a YAML run description, replaces the target and run-shaping flags").
		PlaceHolder("run.yaml").
		StringVar(&kparser.scenarioPath)
	app.Flag("no-print", "Don't output anything").
		Short('q').
		BoolVar(&kparser.noPrint)
	app.Flag("print", "Comma-separated list of parts to output, any of intro (i), progress (p) and result (r)").
		Short('p').
		PlaceHolder("<spec>").
		StringVar(&kparser.printSpec)
	app.Flag("format", "Format of the result output, either of plain-text, json or path:<path-to-template>").
		Short('o').
		Default("plain-text").
		PlaceHolder("<format>").
		StringVar(&kparser.formatSpec)

	app.Arg("target", "Target to cannonade, as \"[<method> ]<url>\"").
		StringVar(&kparser.target)

	kparser.app = app
	return argsParser(kparser)
}

func (k *kingpinParser) parse(args []string) (config, error) {
	k.app.Name = args[0]
	_, err := k.app.Parse(args[1:])
	if err != nil {
		return emptyConf, err
	}
	pi, pp, pr := true, true, true
	if k.printSpec != "" {
		pi, pp, pr, err = parsePrintSpec(k.printSpec)
		if err != nil {
			return emptyConf, err
		}
	}
	if k.noPrint {
		pi, pp, pr = false, false, false
	}
	format := formatFromString(k.formatSpec)
	if format == nil {
		return emptyConf, fmt.Errorf(
			"unknown format or invalid format spec %q", k.formatSpec)
	}
	clientType, err := k.clientType()
	if err != nil {
		return emptyConf, err
	}
	if k.body != "" && k.bodyFilePath != "" {
		return emptyConf, errBodyProvidedTwice
	}
	numClients := defaultNumberOfClients
	if k.clients.val != nil {
		numClients = *k.clients.val
	}
	c := config{
		clients:        numClients,
		iterations:     k.iterations.val,
		duration:       k.duration.val,
		target:         k.target,
		headers:        k.headers,
		body:           k.body,
		bodyFilePath:   k.bodyFilePath,
		keepAlive:      k.keepAlive.val,
		timeout:        k.timeout,
		rate:           k.rate.val,
		clientType:     clientType,
		certPath:       k.certPath,
		keyPath:        k.keyPath,
		verbose:        k.verbose,
		printLatencies: k.latencies,
		printIntro:     pi,
		printProgress:  pp,
		printResult:    pr,
		format:         format,
	}
	if k.scenarioPath == "" {
		return c, nil
	}
	if k.shapingFlagsSet() {
		return emptyConf, errScenarioWithFlags
	}
	s, err := loadScenario(k.scenarioPath)
	if err != nil {
		return emptyConf, err
	}
	return s.apply(c)
}

// shapingFlagsSet reports whether any flag a scenario file would
// override was given explicitly.
func (k *kingpinParser) shapingFlagsSet() bool {
	return k.target != "" ||
		k.clients.val != nil ||
		k.iterations.val != nil ||
		k.duration.val != nil ||
		len(*k.headers) > 0 ||
		k.body != "" ||
		k.bodyFilePath != "" ||
		k.keepAlive.val != nil
}

func (k *kingpinParser) clientType() (clientTyp, error) {
	set := 0
	for _, b := range []bool{k.fasthttp, k.http1, k.http2} {
		if b {
			set++
		}
	}
	if set > 1 {
		return nhttp2, errAmbiguousClientType
	}
	switch {
	case k.fasthttp:
		return fhttp, nil
	case k.http1:
		return nhttp1, nil
	default:
		return nhttp2, nil
	}
}

func parsePrintSpec(spec string) (bool, bool, bool, error) {
	pi, pp, pr := false, false, false
	if spec == "" {
		return pi, pp, pr, errEmptyPrintSpec
	}
	for _, part := range strings.Split(spec, ",") {
		switch part {
		case "i", "intro":
			pi = true
		case "p", "progress":
			pp = true
		case "r", "result":
			pr = true
		default:
			return false, false, false,
				fmt.Errorf("%q is not a valid part of print spec", part)
		}
	}
	return pi, pp, pr, nil
}
