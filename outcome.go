package main

import (
	"net/http"
	"strconv"
	"strings"
)

// connectionFailed is the status recorded for attempts that never got
// as far as a response.
const connectionFailed = "connection failed"

// requestOutcome is the result of a single request attempt. Exactly
// one is produced per attempt, successful or not, though outcomes
// produced after the stop signal fires may be dropped.
type requestOutcome struct {
	status     string
	durationMs uint64
	iteration  uint64
	client     uint64
}

// statusLine renders a status code the way servers phrase it, e.g.
// "200 OK". Codes without a known reason phrase come out bare.
func statusLine(code int) string {
	text := http.StatusText(code)
	if text == "" {
		return strconv.Itoa(code)
	}
	return strconv.Itoa(code) + " " + text
}

// statusClass recovers the code class (1-5) from a status. Sentinel
// statuses have no leading code and map to class 0.
func statusClass(status string) int {
	code, err := strconv.Atoi(strings.SplitN(status, " ", 2)[0])
	if err != nil {
		return 0
	}
	return code / 100
}
