package main

import (
	"testing"
)

func TestStatusLine(t *testing.T) {
	expectations := []struct {
		in  int
		out string
	}{
		{200, "200 OK"},
		{302, "302 Found"},
		{404, "404 Not Found"},
		{418, "418 I'm a teapot"},
		{500, "500 Internal Server Error"},
		{599, "599"},
	}
	for _, e := range expectations {
		if actual := statusLine(e.in); actual != e.out {
			t.Errorf("Expected %q, but got %q", e.out, actual)
		}
	}
}

func TestStatusClass(t *testing.T) {
	expectations := []struct {
		in  string
		out int
	}{
		{"101 Switching Protocols", 1},
		{"200 OK", 2},
		{"302 Found", 3},
		{"404 Not Found", 4},
		{"500 Internal Server Error", 5},
		{"599", 5},
		{connectionFailed, 0},
		{"", 0},
	}
	for _, e := range expectations {
		if actual := statusClass(e.in); actual != e.out {
			t.Errorf("Expected class %v for %q, but got %v", e.out, e.in, actual)
		}
	}
}
