// Package parallel provides chunked parallel versions of the element-wise
// combinators for large slices.
package parallel

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid parallel config")

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 4096,
	}
}

// Validate reports whether cfg can drive For.
func (cfg Config) Validate() error {
	if cfg.NumWorkers < 0 {
		return fmt.Errorf("%w: negative worker count %d", ErrInvalidConfig, cfg.NumWorkers)
	}
	if cfg.MinChunkSize < 0 {
		return fmt.Errorf("%w: negative min chunk size %d", ErrInvalidConfig, cfg.MinChunkSize)
	}
	return nil
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n < cfg.MinChunkSize {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// Map is the parallel form of operators.Map. fn must be safe for concurrent
// use; the result is identical to the sequential version.
func Map[T, U any](fn func(T) U, xs []T, cfg Config) []U {
	out := make([]U, len(xs))
	For(len(xs), func(i int) {
		out[i] = fn(xs[i])
	}, cfg)
	return out
}

// ZipWith is the parallel form of operators.ZipWith, truncating to the
// shorter input.
func ZipWith[A, B, C any](fn func(A, B) C, xs []A, ys []B, cfg Config) []C {
	out := make([]C, min(len(xs), len(ys)))
	For(len(out), func(i int) {
		out[i] = fn(xs[i], ys[i])
	}, cfg)
	return out
}
