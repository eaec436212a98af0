package main

import (
	"strconv"
)

type units struct {
	scale float64
	base  string
	units []string
}

var (
	binaryUnits = &units{1024, "", []string{"KB", "MB", "GB", "TB", "PB"}}
	timeUnitsMs = &units{1000, "ms", []string{"s"}}
	timeUnitsS  = &units{60, "s", []string{"m", "h"}}
)

func formatUnits(n float64, m *units, prec int) string {
	amt := n
	unit := m.base

	scale := m.scale * 0.85

	for i := 0; i < len(m.units) && amt >= scale; i++ {
		amt /= m.scale
		unit = m.units[i]
	}
	return strconv.FormatFloat(amt, 'f', prec, 64) + unit
}

func formatBinary(n float64) string {
	return formatUnits(n, binaryUnits, 2)
}

// formatTimeMs renders a duration given in milliseconds, switching to
// seconds, minutes and hours as it grows.
func formatTimeMs(n float64) string {
	units := timeUnitsMs
	if n >= 1000.0 {
		n /= 1000.0
		units = timeUnitsS
	}
	return formatUnits(n, units, 2)
}

func formatTimeMsUint64(n uint64) string {
	return formatTimeMs(float64(n))
}
