package main

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/goware/urlx"
)

type testType int

const (
	none testType = iota
	timed
	counted
)

type clientTyp int

const (
	nhttp2 clientTyp = iota
	nhttp1
	fhttp
)

type config struct {
	clients    uint64
	iterations *uint64
	duration   *time.Duration

	// target is the positional argument, "[<method> ]<url>".
	target  string
	headers *headersList

	body         string
	bodyFilePath string

	keepAlive *time.Duration
	timeout   time.Duration
	rate      *uint64

	clientType clientTyp

	certPath string
	keyPath  string

	verbose        bool
	printLatencies bool

	printIntro    bool
	printProgress bool
	printResult   bool

	format format
}

// checkArgs validates the configuration and fills in the default
// number of iterations when neither -n nor -d was given. Everything it
// rejects is a startup failure: no request is ever issued for a config
// that doesn't pass.
func (c *config) checkArgs() error {
	if strings.TrimSpace(c.target) == "" {
		return errMissingTarget
	}
	if c.clients < 1 {
		return errInvalidNumberOfClients
	}
	if c.iterations != nil && c.duration != nil {
		return errIterationsWithDuration
	}
	if c.iterations == nil && c.duration == nil {
		c.iterations = &defaultNumberOfIterations
	}
	url, err := urlx.Parse(c.url())
	if err != nil {
		return err
	}
	if url.Host == "" || (url.Scheme != "http" && url.Scheme != "https") {
		return errUnsupportedScheme
	}
	if c.timeout < 0 {
		return errNegativeTimeout
	}
	if c.timeout > maxTimeout {
		return errLargeTimeout
	}
	if c.certPath != "" && c.keyPath == "" {
		return errNoPathToKey
	}
	if c.certPath == "" && c.keyPath != "" {
		return errNoPathToCert
	}
	if c.rate != nil && *c.rate < 1 {
		return errZeroRate
	}
	return nil
}

func (c config) testType() testType {
	if c.iterations != nil {
		return counted
	}
	if c.duration != nil {
		return timed
	}
	return none
}

// requestsPerClient is the per-worker quota in counted mode. Integer
// division means up to clients-1 requested iterations are never run.
func (c config) requestsPerClient() uint64 {
	return *c.iterations / c.clients
}

// url returns the URL part of the target. With more than one token the
// first one is assumed to be a method and discarded, recognized or
// not. The remainder is kept verbatim, interior whitespace included.
func (c config) url() string {
	target := strings.TrimSpace(c.target)
	i := strings.IndexFunc(target, unicode.IsSpace)
	if i < 0 {
		return target
	}
	return strings.TrimSpace(target[i:])
}

// method returns the method part of the target, uppercased. Single
// token targets and unrecognized method tokens both fall back to GET.
func (c config) method() string {
	fields := strings.Fields(c.target)
	if len(fields) < 2 {
		return "GET"
	}
	if m := strings.ToUpper(fields[0]); allowedHTTPMethod(m) {
		return m
	}
	return "GET"
}

func allowedHTTPMethod(method string) bool {
	i := sort.SearchStrings(httpMethods, method)
	return i < len(httpMethods) && httpMethods[i] == method
}
