package main

import (
	"testing"
	"time"
)

func TestNullableUint64String(t *testing.T) {
	ten := uint64(10)
	expectations := []struct {
		in  nullableUint64
		out string
	}{
		{nullableUint64{nil}, "nil"},
		{nullableUint64{&ten}, "10"},
	}
	for _, e := range expectations {
		if actual := e.in.String(); actual != e.out {
			t.Errorf("Expected %v, but got %v", e.out, actual)
		}
	}
}

func TestNullableUint64Set(t *testing.T) {
	n := new(nullableUint64)
	if err := n.Set("abc"); err == nil {
		t.Error("Should fail on garbage input")
	}
	if err := n.Set("-1"); err == nil {
		t.Error("Should fail on negative numbers")
	}
	if err := n.Set("100"); err != nil {
		t.Error(err)
	}
	if n.val == nil || *n.val != 100 {
		t.Fail()
	}
}

func TestNullableDurationString(t *testing.T) {
	tenSeconds := 10 * time.Second
	expectations := []struct {
		in  nullableDuration
		out string
	}{
		{nullableDuration{nil}, "nil"},
		{nullableDuration{&tenSeconds}, "10s"},
	}
	for _, e := range expectations {
		if actual := e.in.String(); actual != e.out {
			t.Errorf("Expected %v, but got %v", e.out, actual)
		}
	}
}

func TestNullableDurationSet(t *testing.T) {
	d := new(nullableDuration)
	if err := d.Set("what"); err == nil {
		t.Error("Should fail on garbage input")
	}
	if err := d.Set("1m30s"); err != nil {
		t.Error(err)
	}
	if d.val == nil || *d.val != 90*time.Second {
		t.Fail()
	}
}
