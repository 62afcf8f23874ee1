package testutil

import (
	"sync"
	"sync/atomic"

	dErrors "bitaqa/pkg/domain-errors"
)

// ConcurrentResult tracks outcomes of concurrent test operations.
type ConcurrentResult struct {
	Successes  int32
	Rejections int32
	Errors     int32
}

// Total returns the total number of operations executed.
func (r *ConcurrentResult) Total() int32 {
	return r.Successes + r.Rejections + r.Errors
}

// RunConcurrent executes fn in parallel goroutines and buckets the outcomes
// into success, domain rejection, or unexpected error. This replaces the
// WaitGroup-plus-atomic-counters pattern in tests that hammer the decoder
// from many goroutines.
func RunConcurrent(goroutines int, fn func(idx int) error) *ConcurrentResult {
	var wg sync.WaitGroup
	var successes, rejections, errs atomic.Int32

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			err := fn(idx)
			switch {
			case err == nil:
				successes.Add(1)
			case dErrors.IsRejection(err):
				rejections.Add(1)
			default:
				errs.Add(1)
			}
		}(i)
	}

	wg.Wait()

	return &ConcurrentResult{
		Successes:  successes.Load(),
		Rejections: rejections.Load(),
		Errors:     errs.Load(),
	}
}
