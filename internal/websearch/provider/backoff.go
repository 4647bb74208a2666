package provider

import (
	"math/rand"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	defaultMaxRetries = 3
	retryDelayBase    = 2 // seconds, exponent base
)

// exponentialFullJitter returns a backoff of base^attempt seconds plus a
// uniform random fraction of a second. The random offset spreads retry
// storms across concurrent callers that failed at the same instant.
//
// The stateful closure is consumed by a single retry.Do loop; retry.Do
// makes the waits context-cancellable, so an overall request deadline can
// abort the loop mid-backoff.
func exponentialFullJitter() retry.Backoff {
	attempt := 0
	return retry.BackoffFunc(func() (time.Duration, bool) {
		delay := time.Duration(pow(retryDelayBase, attempt)) * time.Second
		delay += time.Duration(rand.Float64() * float64(time.Second))
		attempt++
		return delay, false
	})
}

func pow(base, exp int) int {
	result := 1
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}
