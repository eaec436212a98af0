package main

import (
	"math/big"
	"time"
)

const (
	panicZeroRate         = "rate must be greater than zero"
	panicNegativeAdjustTo = "adjustTo must be greater than zero"
)

// estimate translates a rate in requests per second into a token
// bucket's fill interval and quantum. The interval is stretched to at
// least adjustTo so the bucket isn't refilled more often than the
// scheduler can keep up with, keeping the long-run rate exact.
func estimate(rate uint64, adjustTo time.Duration) (time.Duration, uint64) {
	if rate == 0 {
		panic(panicZeroRate)
	}
	if adjustTo <= 0 {
		panic(panicNegativeAdjustTo)
	}
	quantum := big.NewInt(int64(rate))
	interval := big.NewInt(oneSecond.Nanoseconds())
	gcd := new(big.Int).GCD(nil, nil, quantum, interval)
	quantum.Div(quantum, gcd)
	interval.Div(interval, gcd)
	adjustInt := big.NewInt(adjustTo.Nanoseconds())
	if interval.Cmp(adjustInt) < 0 {
		coef := new(big.Int).Div(adjustInt, interval)
		quantum.Mul(quantum, coef)
		interval.Mul(interval, coef)
	}
	return time.Duration(interval.Int64()), quantum.Uint64()
}
