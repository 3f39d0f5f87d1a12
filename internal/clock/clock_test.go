package clock

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFakeEvery(t *testing.T) {
	f := NewFake()
	count := 0
	cancel := f.Every(time.Second, func() { count++ })

	f.Advance(999 * time.Millisecond)
	assert.Equal(t, 0, count)

	f.Advance(time.Millisecond)
	assert.Equal(t, 1, count)

	f.Advance(5 * time.Second)
	assert.Equal(t, 6, count)

	cancel()
	f.Advance(10 * time.Second)
	assert.Equal(t, 6, count)
	assert.Equal(t, 0, f.Pending())
}

func TestFakeAfterFiresOnce(t *testing.T) {
	f := NewFake()
	count := 0
	f.After(100*time.Millisecond, func() { count++ })

	f.Advance(time.Second)
	f.Advance(time.Second)
	assert.Equal(t, 1, count)
}

func TestFakeCancelBeforeDue(t *testing.T) {
	f := NewFake()
	fired := false
	cancel := f.After(100*time.Millisecond, func() { fired = true })
	f.Advance(50 * time.Millisecond)
	cancel()
	cancel()
	f.Advance(time.Second)
	assert.False(t, fired)
}

func TestFakeOrdersByDueTime(t *testing.T) {
	f := NewFake()
	var order []string
	f.Every(time.Second, func() { order = append(order, "tick") })
	f.After(1500*time.Millisecond, func() { order = append(order, "once") })

	f.Advance(2 * time.Second)
	assert.Equal(t, []string{"tick", "once", "tick"}, order)
}

func TestFakeCallbackMaySchedule(t *testing.T) {
	f := NewFake()
	fired := false
	f.After(time.Second, func() {
		f.After(100*time.Millisecond, func() { fired = true })
	})

	f.Advance(1100 * time.Millisecond)
	assert.True(t, fired)
	assert.Equal(t, 1100*time.Millisecond, f.Elapsed())
}

func TestRealSchedulerCancel(t *testing.T) {
	var n atomic.Int32
	cancel := Real().Every(5*time.Millisecond, func() { n.Add(1) })

	assert.Eventually(t, func() bool { return n.Load() >= 2 }, time.Second, time.Millisecond)
	cancel()
	cancel()

	settled := n.Load()
	time.Sleep(30 * time.Millisecond)
	// at most one in-flight tick may land after cancel
	assert.LessOrEqual(t, n.Load(), settled+1)
}

func TestRealSchedulerAfter(t *testing.T) {
	done := make(chan struct{})
	Real().After(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("deferred action never fired")
	}
}
