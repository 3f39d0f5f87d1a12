package clock

import (
	"sync"
	"time"
)

// Fake is a manually advanced Scheduler. Nothing fires until Advance is
// called; callbacks then run synchronously on the caller's goroutine in
// due-time order.
type Fake struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*fakeTimer
}

type fakeTimer struct {
	id       int
	due      time.Duration
	interval time.Duration // zero for one-shot timers
	fn       func()
	stopped  bool
}

// NewFake returns a fake scheduler positioned at time zero
func NewFake() *Fake {
	return &Fake{}
}

func (f *Fake) Every(interval time.Duration, fn func()) CancelFunc {
	return f.add(interval, interval, fn)
}

func (f *Fake) After(delay time.Duration, fn func()) CancelFunc {
	return f.add(delay, 0, fn)
}

func (f *Fake) add(delay, interval time.Duration, fn func()) CancelFunc {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	t := &fakeTimer{
		id:       f.seq,
		due:      f.now + delay,
		interval: interval,
		fn:       fn,
	}
	f.timers = append(f.timers, t)

	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		t.stopped = true
	}
}

// Advance moves the fake clock forward by d, firing every callback that
// comes due along the way.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now + d

	for {
		next := f.nextDue(target)
		if next == nil {
			break
		}
		f.now = next.due
		if next.interval > 0 {
			next.due += next.interval
		} else {
			next.stopped = true
		}
		f.prune()

		f.mu.Unlock()
		next.fn()
		f.mu.Lock()
	}

	f.now = target
	f.prune()
	f.mu.Unlock()
}

// Elapsed returns how far the clock has been advanced
func (f *Fake) Elapsed() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Pending returns the number of live timers
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, t := range f.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// nextDue returns the earliest live timer due at or before target.
// Ties go to the timer scheduled first.
func (f *Fake) nextDue(target time.Duration) *fakeTimer {
	var best *fakeTimer
	for _, t := range f.timers {
		if t.stopped || t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.id < best.id) {
			best = t
		}
	}
	return best
}

func (f *Fake) prune() {
	live := f.timers[:0]
	for _, t := range f.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	f.timers = live
}
