package main

import (
	"errors"
	"net/url"
	"sort"
	"time"

	"github.com/goware/urlx"
)

const (
	decBase = 10

	// outcomeBufferSize is the capacity of the channel between the
	// workers and the aggregator. It only smooths bursts: delivery is
	// deliberately lossy once the stop signal fires.
	outcomeBufferSize = 1024

	rateLimitInterval = 10 * time.Millisecond
	oneSecond         = 1 * time.Second

	maxTimeout = 10 * time.Minute

	exitFailure = 1
)

var version = "unspecified"

var (
	emptyConf = config{}
	parser    = newKingpinParser()

	defaultNumberOfClients    = uint64(1)
	defaultNumberOfIterations = uint64(1)

	httpMethods = []string{
		"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS",
		"PATCH",
	}
)

var (
	errMissingTarget = errors.New(
		"no target to cannonade, give one as [<method> ]<url>")
	errUnsupportedScheme = errors.New(
		"unsupported target scheme, only http and https are supported")
	errInvalidNumberOfClients = errors.New(
		"invalid number of clients(must be > 0)")
	errIterationsWithDuration = errors.New(
		"iterations and duration are mutually exclusive, give only one")
	errNegativeTimeout = errors.New("timeout can't be negative")
	errLargeTimeout    = errors.New("timeout is too big(more than 10m)")
	errNoPathToCert    = errors.New("no path to cert is specified")
	errNoPathToKey     = errors.New("no path to key is specified")
	errZeroRate        = errors.New("rate can't be less than 1")

	errBodyProvidedTwice = errors.New("use either --body or --body-file")
	errEmptyPrintSpec    = errors.New(
		"empty print spec is not a valid print spec")
	errScenarioWithFlags = errors.New(
		"--scenario can't be combined with the target or other run-shaping flags")
	errAmbiguousClientType = errors.New(
		"use at most one of --fasthttp, --http1 and --http2")
)

// ParseURLOrPanic parses the given URL or panics if it's impossible to
// parse it. Call it only on URLs that already went through validation.
func ParseURLOrPanic(u string) *url.URL {
	up, err := urlx.Parse(u)
	if err != nil {
		panic(err)
	}
	return up
}

func init() {
	sort.Strings(httpMethods)
}
