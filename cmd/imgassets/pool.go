package main

import (
	"fmt"
	"runtime"

	"github.com/alnah/go-imgassets/internal/config"
)

// Bounds for the automatic inspect pool size.
const (
	minAutoWorkers = 1
	maxAutoWorkers = 8
)

// resolvePoolSize determines how many files inspect reads at once.
// Priority: explicit value > GOMAXPROCS-based calculation.
func resolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers.
	n := runtime.GOMAXPROCS(0) / 2

	if n < minAutoWorkers {
		return minAutoWorkers
	}
	if n > maxAutoWorkers {
		return maxAutoWorkers
	}
	return n
}

// validateWorkers rejects worker counts outside 0..config.MaxWorkers.
func validateWorkers(n int) error {
	if n < 0 || n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (must be 0-%d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}
