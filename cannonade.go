package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"os/signal"
	"sync"
	"text/template"
	"time"

	"github.com/cheggaaa/pb"
	uuid "github.com/satori/go.uuid"

	"github.com/codesenberg/cannonade/internal"
)

type cannonade struct {
	bytesRead, bytesWritten int64

	// HTTP code classes, tallied by the aggregator only.
	req1xx uint64
	req2xx uint64
	req3xx uint64
	req4xx uint64
	req5xx uint64
	others uint64

	conf    config
	clients []client

	stop        *stopSignal
	ratelimiter limiter
	wg          sync.WaitGroup

	// outcomes is closed once the last worker returns. Its capacity
	// only smooths bursts, the aggregator normally keeps up.
	outcomes chan requestOutcome

	start     time.Time
	timeTaken time.Duration
	latencies *latencyStats
	errors    *errorMap

	bar      *pb.ProgressBar
	barDone  chan struct{}
	doneChan chan struct{}

	out      io.Writer
	template *template.Template
}

// newCannonade validates the config and prepares everything needed
// for a run, including one client instance per virtual client. Any
// error here is fatal: no request has been issued yet.
func newCannonade(c config) (*cannonade, error) {
	if err := c.checkArgs(); err != nil {
		return nil, err
	}
	b := new(cannonade)
	b.conf = c
	b.latencies = newLatencyStats()
	b.errors = newErrorMap()
	b.stop = newStopSignal()
	b.start = time.Now()

	if c.testType() == counted {
		b.bar = pb.New64(int64(c.clients * c.requestsPerClient()))
		b.bar.ShowSpeed = true
	} else {
		b.bar = pb.New64(c.duration.Nanoseconds() / int64(oneSecond))
	}
	b.bar.ManualUpdate = true

	if c.rate != nil {
		b.ratelimiter = newBucketLimiter(*c.rate)
	} else {
		b.ratelimiter = &nooplimiter{}
	}

	b.out = os.Stdout

	tlsConfig, err := generateTLSConfig(c)
	if err != nil {
		return nil, err
	}

	pbody := &c.body
	if c.bodyFilePath != "" {
		body, err := ioutil.ReadFile(c.bodyFilePath)
		if err != nil {
			return nil, err
		}
		sbody := string(body)
		pbody = &sbody
	}

	cc := &clientOpts{
		timeout:   c.timeout,
		tlsConfig: tlsConfig,
		keepAlive: c.keepAlive,

		headers: c.headers,
		url:     c.url(),
		method:  c.method(),

		body: pbody,

		bytesRead:    &b.bytesRead,
		bytesWritten: &b.bytesWritten,
	}
	b.clients = make([]client, 0, c.clients)
	for i := uint64(0); i < c.clients; i++ {
		b.clients = append(b.clients, newClient(c.clientType, cc))
	}

	if !c.printProgress || c.verbose {
		b.bar.Output = ioutil.Discard
		b.bar.NotPrint = true
	}

	b.template, err = b.prepareTemplate()
	if err != nil {
		return nil, err
	}

	b.wg.Add(int(c.clients))
	b.outcomes = make(chan requestOutcome, outcomeBufferSize)
	b.barDone = make(chan struct{})
	b.doneChan = make(chan struct{}, 1)
	return b, nil
}

func (b *cannonade) prepareTemplate() (*template.Template, error) {
	templateString, err := b.conf.format.template()
	if err != nil {
		return nil, err
	}
	outputTemplate, err := template.New("output-template").
		Funcs(template.FuncMap{
			"WithLatencies": func() bool {
				return b.conf.printLatencies
			},
			"FormatBinary":       formatBinary,
			"FormatTimeMs":       formatTimeMs,
			"FormatTimeMsUint64": formatTimeMsUint64,
			"FloatsToArray": func(ps ...float64) []float64 {
				return ps
			},
			"Multiply": func(num, coeff float64) float64 {
				return num * coeff
			},
			"StringToBytes": func(s string) []byte {
				return []byte(s)
			},
			"StyleLabel": func(s string) string {
				return summaryLabelStyle.Render(s)
			},
			"StyleValue": func(s string) string {
				return summaryValueStyle.Render(s)
			},
			"UUIDV1": uuid.NewV1,
			"UUIDV2": uuid.NewV2,
			"UUIDV3": uuid.NewV3,
			"UUIDV4": uuid.NewV4,
			"UUIDV5": uuid.NewV5,
		}).Parse(templateString)
	if err != nil {
		return nil, err
	}
	return outputTemplate, nil
}

// fire runs the whole test: spawns one worker per client, drains
// their outcomes and leaves the final numbers in place for
// printStats. It returns once every worker finished or obeyed the
// stop signal.
func (b *cannonade) fire() {
	if b.conf.printIntro {
		b.printIntro()
	}
	b.bar.Start()
	for i, c := range b.clients {
		go func(id uint64, cl client) {
			defer b.wg.Done()
			b.worker(id, cl)
		}(uint64(i), c)
	}
	go func() {
		b.wg.Wait()
		close(b.outcomes)
	}()
	go b.barUpdater()
	for o := range b.outcomes {
		b.recordOutcome(o)
	}
	b.timeTaken = time.Since(b.start)
	close(b.barDone)
	<-b.doneChan
}

func (b *cannonade) worker(id uint64, cl client) {
	if b.conf.testType() == counted {
		b.workerCounted(id, cl)
		return
	}
	b.workerTimed(id, cl)
}

func (b *cannonade) workerCounted(id uint64, cl client) {
	n := b.conf.requestsPerClient()
	for i := uint64(0); i < n; i++ {
		if !b.requestCycle(id, i, cl) {
			return
		}
	}
}

func (b *cannonade) workerTimed(id uint64, cl client) {
	d := *b.conf.duration
	begin := time.Now()
	for i := uint64(0); time.Since(begin) < d; i++ {
		if !b.requestCycle(id, i, cl) {
			return
		}
	}
}

// requestCycle runs one iteration of a worker's loop: obey the stop
// signal, pace, perform the request, then race handing the outcome
// over against cancellation. False means the worker must stop. An
// outcome losing the race is dropped, never retried.
func (b *cannonade) requestCycle(id, iteration uint64, cl client) bool {
	if b.stop.isSet() {
		return false
	}
	if b.ratelimiter.pace(b.stop.done()) == brk {
		return false
	}
	o := b.performSingleRequest(id, iteration, cl)
	select {
	case b.outcomes <- o:
		return true
	case <-b.stop.done():
		return false
	}
}

// performSingleRequest turns whatever the client did into exactly one
// outcome. Failures that carry a status keep it, the rest get the
// sentinel.
func (b *cannonade) performSingleRequest(id, iteration uint64, cl client) requestOutcome {
	code, msTaken, err := cl.do()
	status := statusLine(code)
	if err != nil {
		b.errors.add(err)
		if code <= 0 {
			status = connectionFailed
		}
	}
	return requestOutcome{
		status:     status,
		durationMs: msTaken,
		iteration:  iteration,
		client:     id,
	}
}

// recordOutcome is the aggregation step, run on a single goroutine.
func (b *cannonade) recordOutcome(o requestOutcome) {
	if b.conf.verbose {
		fmt.Fprintln(b.out, o)
	} else if b.conf.testType() == counted {
		b.bar.Increment()
	}
	b.latencies.record(o.durationMs)
	switch statusClass(o.status) {
	case 1:
		b.req1xx++
	case 2:
		b.req2xx++
	case 3:
		b.req3xx++
	case 4:
		b.req4xx++
	case 5:
		b.req5xx++
	default:
		b.others++
	}
}

// barUpdater owns all bar rendering, so the final render and "Done!"
// never interleave with regular refreshes.
func (b *cannonade) barUpdater() {
	begin := time.Now()
	for {
		select {
		case <-b.barDone:
			b.bar.Set64(b.bar.Total)
			b.bar.Update()
			b.bar.Finish()
			if b.conf.printProgress && !b.conf.verbose {
				fmt.Fprintln(b.out, doneStyle.Render("Done!"))
			}
			b.doneChan <- struct{}{}
			return
		default:
			if b.conf.testType() == timed {
				current := int64(time.Since(begin).Seconds())
				if current > b.bar.Total {
					current = b.bar.Total
				}
				b.bar.Set64(current)
			}
			b.bar.Update()
			time.Sleep(b.bar.RefreshRate)
		}
	}
}

func (b *cannonade) printIntro() {
	if b.conf.testType() == timed {
		fmt.Fprintf(b.out,
			"Cannonading %v for %v using %v client(s)\n",
			introTargetStyle.Render(b.conf.url()),
			*b.conf.duration, b.conf.clients)
		return
	}
	fmt.Fprintf(b.out,
		"Cannonading %v with %v request(s) using %v client(s)\n",
		introTargetStyle.Render(b.conf.url()),
		*b.conf.iterations, b.conf.clients)
}

func (b *cannonade) gatherInfo() internal.RunInfo {
	info := internal.RunInfo{
		Spec: internal.Spec{
			NumberOfClients: b.conf.clients,
			Method:          b.conf.method(),
			URL:             b.conf.url(),
			Body:            b.conf.body,
			BodyFilePath:    b.conf.bodyFilePath,
			CertPath:        b.conf.certPath,
			KeyPath:         b.conf.keyPath,
			Timeout:         b.conf.timeout,
			ClientType:      internal.ClientType(b.conf.clientType),
			Rate:            b.conf.rate,
		},
		Result: internal.Results{
			BytesRead:    b.bytesRead,
			BytesWritten: b.bytesWritten,
			TimeTaken:    b.timeTaken,
			Req1XX:       b.req1xx,
			Req2XX:       b.req2xx,
			Req3XX:       b.req3xx,
			Req4XX:       b.req4xx,
			Req5XX:       b.req5xx,
			Others:       b.others,
			Latencies:    b.latencies,
		},
	}
	if b.conf.testType() == timed {
		info.Spec.TestType = internal.ByTime
		info.Spec.TestDuration = *b.conf.duration
	} else {
		info.Spec.TestType = internal.ByNumberOfIterations
		info.Spec.NumberOfIterations = *b.conf.iterations
	}
	for _, h := range *b.conf.headers {
		info.Spec.Headers = append(info.Spec.Headers,
			internal.Header{Key: h.key, Value: h.value})
	}
	for _, ewc := range b.errors.byFrequency() {
		info.Result.Errors = append(info.Result.Errors,
			internal.ErrorWithCount{Error: ewc.error, Count: ewc.count})
	}
	return info
}

func (b *cannonade) printStats() {
	if err := b.template.Execute(b.out, b.gatherInfo()); err != nil {
		fmt.Fprintln(b.out, err)
	}
}

func (b *cannonade) redirectOutputTo(out io.Writer) {
	b.bar.Output = ioutil.Discard
	b.out = out
}

func (b *cannonade) disableOutput() {
	b.redirectOutputTo(ioutil.Discard)
	b.bar.Output = ioutil.Discard
	b.bar.NotPrint = true
}

func main() {
	cfg, err := parser.parse(os.Args)
	if err != nil {
		fmt.Println(err)
		os.Exit(exitFailure)
	}
	cannonade, err := newCannonade(cfg)
	if err != nil {
		fmt.Println(err)
		os.Exit(exitFailure)
	}
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	go func() {
		<-sigs
		cannonade.stop.set()
	}()
	cannonade.fire()
	if cannonade.conf.printResult {
		cannonade.printStats()
	}
}
