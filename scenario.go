package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// scenario is the YAML form of the run-shaping part of a config.
// Durations are strings in Go duration syntax ("10s", "1m30s").
type scenario struct {
	Target     string           `yaml:"target"`
	Clients    *uint64          `yaml:"clients"`
	Iterations *uint64          `yaml:"iterations"`
	Duration   string           `yaml:"duration"`
	Headers    []scenarioHeader `yaml:"headers"`
	Body       string           `yaml:"body"`
	KeepAlive  string           `yaml:"keepalive"`
}

type scenarioHeader struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// loadScenario reads a run description. Unknown fields are rejected so
// that a typo doesn't silently turn into a default.
func loadScenario(path string) (scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return scenario{}, err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	var s scenario
	if err := dec.Decode(&s); err != nil {
		return scenario{}, fmt.Errorf("invalid scenario file %v: %v", path, err)
	}
	return s, nil
}

// apply overlays the scenario onto a config carrying the CLI-only
// settings. Shaping fields always come from the scenario, even when
// empty.
func (s scenario) apply(c config) (config, error) {
	c.target = s.Target
	c.clients = defaultNumberOfClients
	if s.Clients != nil {
		c.clients = *s.Clients
	}
	c.iterations = s.Iterations
	c.duration = nil
	if s.Duration != "" {
		d, err := time.ParseDuration(s.Duration)
		if err != nil {
			return emptyConf, err
		}
		c.duration = &d
	}
	headers := new(headersList)
	for _, h := range s.Headers {
		*headers = append(*headers, header{h.Key, h.Value})
	}
	c.headers = headers
	c.body = s.Body
	c.keepAlive = nil
	if s.KeepAlive != "" {
		ka, err := time.ParseDuration(s.KeepAlive)
		if err != nil {
			return emptyConf, err
		}
		c.keepAlive = &ka
	}
	return c, nil
}
