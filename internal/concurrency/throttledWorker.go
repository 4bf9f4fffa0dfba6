package concurrency

import (
	"time"
)

// ThrottledWorker runs a job for each argument, spacing the calls so the
// gateway isn't flooded when every switch is refreshed at once.
type ThrottledWorker[T any] struct {
	interval    time.Duration
	jobCallback func(arg T) error
	onError     func(arg T, err error)
}

func NewThrottledWorker[T any](interval time.Duration, jobCallback func(arg T) error, onError func(arg T, err error)) ThrottledWorker[T] {
	return ThrottledWorker[T]{interval: interval, jobCallback: jobCallback, onError: onError}
}

func (w *ThrottledWorker[T]) Run(jobArgs []T) {
	if len(jobArgs) == 0 {
		return
	}

	jobArgsChannel := make(chan T, len(jobArgs))
	for _, arg := range jobArgs {
		jobArgsChannel <- arg
	}
	close(jobArgsChannel)

	// no spacing without a positive interval
	var tick <-chan time.Time
	if w.interval > 0 {
		limiter := time.NewTicker(w.interval)
		defer limiter.Stop()
		tick = limiter.C
	}

	first := true
	for arg := range jobArgsChannel {
		if !first && tick != nil {
			<-tick
		}
		first = false
		if err := w.jobCallback(arg); err != nil && w.onError != nil {
			w.onError(arg, err)
		}
	}
}
