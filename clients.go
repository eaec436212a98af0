package main

import (
	"crypto/tls"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"golang.org/x/net/http2"
)

const maxRedirects = 10

// client is the per-worker HTTP client. do issues one request and
// reports the status code and the time until the response's status
// and headers were available, in milliseconds. A non-nil error with a
// positive code means the request produced a response but failed
// afterwards, e.g. while reading the body.
type client interface {
	do() (code int, msTaken uint64, err error)
}

type clientOpts struct {
	HTTP2 bool

	timeout   time.Duration
	tlsConfig *tls.Config
	keepAlive *time.Duration

	headers     *headersList
	url, method string

	body *string

	bytesRead, bytesWritten *int64
}

func newClient(clientType clientTyp, opts *clientOpts) client {
	switch clientType {
	case fhttp:
		return newFastHTTPClient(opts)
	case nhttp1:
		opts.HTTP2 = false
	case nhttp2:
		opts.HTTP2 = true
	}
	return newHTTPClient(opts)
}

type fasthttpClient struct {
	client *fasthttp.Client

	headers     *fasthttp.RequestHeader
	url, method string

	body *string
}

func newFastHTTPClient(opts *clientOpts) client {
	c := new(fasthttpClient)
	c.url = opts.url
	c.method = opts.method
	c.headers = headersToFastHTTPHeaders(opts.headers)
	c.body = opts.body
	c.client = &fasthttp.Client{
		ReadTimeout:                   opts.timeout,
		WriteTimeout:                  opts.timeout,
		DisableHeaderNamesNormalizing: true,
		TLSConfig:                     opts.tlsConfig,
		Dial: fasthttpDialFunc(
			opts.bytesRead, opts.bytesWritten,
			opts.timeout, dialerKeepAlive(opts.keepAlive),
		),
	}
	return c
}

func (c *fasthttpClient) do() (
	code int, msTaken uint64, err error,
) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer func() {
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(resp)
	}()

	c.headers.CopyTo(&req.Header)
	req.Header.SetMethod(c.method)
	req.SetRequestURI(c.url)
	if c.body != nil {
		req.SetBodyString(*c.body)
	}

	start := time.Now()
	err = c.client.DoRedirects(req, resp, maxRedirects)
	msTaken = uint64(time.Since(start).Milliseconds())
	if err != nil {
		code = -1
		return
	}
	code = resp.StatusCode()
	return
}

type httpClient struct {
	client *http.Client

	headers http.Header
	url     *url.URL
	method  string

	body *string
}

func newHTTPClient(opts *clientOpts) client {
	c := new(httpClient)
	tr := &http.Transport{
		TLSClientConfig:     opts.tlsConfig,
		MaxIdleConnsPerHost: 1,
		DialContext: httpDialContextFunc(
			opts.bytesRead, opts.bytesWritten,
			opts.timeout, dialerKeepAlive(opts.keepAlive),
		),
	}
	if opts.HTTP2 {
		_ = http2.ConfigureTransport(tr)
	} else {
		tr.TLSNextProto = make(
			map[string]func(string, *tls.Conn) http.RoundTripper)
	}
	c.client = &http.Client{
		Transport: tr,
		Timeout:   opts.timeout,
	}
	c.headers = headersToHTTPHeaders(opts.headers)
	c.url = ParseURLOrPanic(opts.url)
	c.method = opts.method
	c.body = opts.body
	return c
}

func (c *httpClient) do() (
	code int, msTaken uint64, err error,
) {
	req := &http.Request{}
	req.Header = c.headers
	req.Method = c.method
	req.URL = c.url
	if host := req.Header.Get("Host"); host != "" {
		req.Host = host
	}
	if c.body != nil {
		body := *c.body
		req.ContentLength = int64(len(body))
		req.Body = ioutil.NopCloser(strings.NewReader(body))
		req.GetBody = func() (io.ReadCloser, error) {
			return ioutil.NopCloser(strings.NewReader(body)), nil
		}
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	msTaken = uint64(time.Since(start).Milliseconds())
	if err != nil {
		code = -1
		// Redirect-policy failures still carry the last response.
		if resp != nil {
			code = resp.StatusCode
			resp.Body.Close()
		}
		return
	}
	code = resp.StatusCode
	if _, berr := io.Copy(ioutil.Discard, resp.Body); berr != nil {
		err = berr
	}
	if cerr := resp.Body.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return
}

func headersToFastHTTPHeaders(h *headersList) *fasthttp.RequestHeader {
	res := new(fasthttp.RequestHeader)
	for _, header := range *h {
		res.Set(header.key, header.value)
	}
	return res
}

func headersToHTTPHeaders(h *headersList) http.Header {
	headers := http.Header{}
	for _, header := range *h {
		headers[header.key] = []string{header.value}
	}
	return headers
}
