// Package clock provides the timing sources the timer engine runs on: a
// periodic tick and a one-shot deferred action, both cancellable.
package clock

import (
	"sync"
	"time"
)

// CancelFunc stops a scheduled action. Calling it more than once is safe.
type CancelFunc func()

// Scheduler schedules callbacks. Callbacks may run on any goroutine.
type Scheduler interface {
	// Every calls fn once per interval until cancelled
	Every(interval time.Duration, fn func()) CancelFunc

	// After calls fn once after delay unless cancelled first
	After(delay time.Duration, fn func()) CancelFunc
}

type realScheduler struct{}

// Real returns a Scheduler backed by the time package
func Real() Scheduler {
	return realScheduler{}
}

func (realScheduler) Every(interval time.Duration, fn func()) CancelFunc {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				fn()
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
		})
	}
}

func (realScheduler) After(delay time.Duration, fn func()) CancelFunc {
	t := time.AfterFunc(delay, fn)
	return func() { t.Stop() }
}
