package main

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrInvalidWorkerCount reports a negative --workers value.
var ErrInvalidWorkerCount = errors.New("invalid worker count")

// maxWorkers caps the batch worker count. Conversions are CPU-bound and
// brief; more workers than this only adds scheduling overhead.
const maxWorkers = 16

// resolveWorkers determines the worker count for a batch of n files.
// 0 means auto (GOMAXPROCS, which automaxprocs corrects for container CPU
// limits). The result never exceeds n or maxWorkers.
func resolveWorkers(configured, n int) int {
	w := configured
	if w <= 0 {
		w = runtime.GOMAXPROCS(0)
	}
	if w > maxWorkers {
		w = maxWorkers
	}
	if w > n {
		w = n
	}
	if w < 1 {
		w = 1
	}
	return w
}

// validateWorkers rejects negative worker counts. Values above maxWorkers
// are not an error; resolveWorkers caps them.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	return nil
}
