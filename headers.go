package main

import (
	"fmt"
	"strings"
)

type header struct {
	key, value string
}

// headersList is an ordered list of request headers. It satisfies
// kingpin's Value so that -H can be given multiple times.
type headersList []header

func (h *headersList) String() string {
	return fmt.Sprint(*h)
}

func (h *headersList) IsCumulative() bool {
	return true
}

// Set records a "key: value" pair with both sides trimmed. Entries
// that don't split into exactly one key and one value are dropped
// silently instead of failing the whole run.
func (h *headersList) Set(value string) error {
	res := strings.Split(value, ":")
	if len(res) != 2 {
		return nil
	}
	*h = append(*h, header{
		strings.TrimSpace(res[0]), strings.TrimSpace(res[1])})
	return nil
}
