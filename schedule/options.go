package schedule

import (
	"fmt"
	"time"
)

// Options configures a Search or Solve run.
//
// TimeLimit – wall-clock budget spanning both passes; 0 means unlimited.
// On expiry the best-known feasible selection is returned, Optimal=false.
//
// MaxNodes  – cap on explored search nodes across both passes; 0 means
// unlimited. Expiry behaves like TimeLimit.
//
// Workers   – number of goroutines the root of each pass is split across.
// Values ≤ 1 run serially. A complete (uncapped) parallel run returns the
// same selection as the serial one, bit for bit.
//
// OnImprove – optional hook observing every new incumbent. With Workers > 1
// it may be invoked from multiple goroutines concurrently.
type Options struct {
	TimeLimit time.Duration
	MaxNodes  int64
	Workers   int
	OnImprove func(Improvement)
}

// DefaultOptions returns the documented defaults: unlimited budgets, serial
// search, no progress hook.
func DefaultOptions() Options { return Options{} }

// validateOptions rejects configurations with no defined meaning.
func validateOptions(opts Options) error {
	if opts.TimeLimit < 0 {
		return fmt.Errorf("%w: negative time limit %s", ErrInvalidOptions, opts.TimeLimit)
	}
	if opts.MaxNodes < 0 {
		return fmt.Errorf("%w: negative node cap %d", ErrInvalidOptions, opts.MaxNodes)
	}
	if opts.Workers < 0 {
		return fmt.Errorf("%w: negative worker count %d", ErrInvalidOptions, opts.Workers)
	}

	return nil
}
