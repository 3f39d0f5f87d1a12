package service

import (
	"sync"

	"github.com/andy/dualtimer/internal/clock"
	"github.com/andy/dualtimer/internal/domain"
	"github.com/sirupsen/logrus"
)

// TimerService is the countdown / count-up state machine.
//
// Commands never fail: a command that does not apply to the current state
// is a no-op. Every command, tick and auto-reset publishes the resulting
// snapshot to subscribers.
type TimerService interface {
	// Start runs the timer from Stopped or Paused
	Start()

	// Stop pauses a running timer, keeping the counter where it is
	Stop()

	// Reset stops the timer and returns the active counter to its initial bound
	Reset()

	// SwitchMode selects a mode, stopping and resetting it (even if already selected)
	SwitchMode(mode domain.TimerMode)

	Snapshot() domain.TimerSnapshot
	Mode() domain.TimerMode
	State() domain.TimerState
	DisplaySeconds() int
	ProgressFraction() float64

	// Subscribe registers fn to receive snapshots. fn runs outside the
	// engine lock and may call back into the service.
	Subscribe(fn func(domain.TimerSnapshot)) (unsubscribe func())

	// Close cancels any scheduled work and drops subscribers
	Close()
}

type timerService struct {
	sched clock.Scheduler
	log   logrus.FieldLogger

	mu   sync.Mutex
	snap domain.TimerSnapshot

	// gen invalidates callbacks that were already in flight when their
	// schedule was cancelled
	gen         uint64
	cancelTick  clock.CancelFunc
	cancelReset clock.CancelFunc

	subs    map[int]func(domain.TimerSnapshot)
	nextSub int
	closed  bool
}

// NewTimerService creates a stopped countdown timer driven by sched
func NewTimerService(sched clock.Scheduler, log logrus.FieldLogger) TimerService {
	return &timerService{
		sched: sched,
		log:   componentLogger(log, "timer"),
		snap:  domain.NewTimerSnapshot(),
		subs:  make(map[int]func(domain.TimerSnapshot)),
	}
}

func (s *timerService) Start() {
	s.mu.Lock()
	if !s.closed && s.snap.State != domain.TimerStateRunning {
		s.snap.State = domain.TimerStateRunning
		gen := s.gen
		s.cancelTick = s.sched.Every(domain.TickInterval, func() { s.onTick(gen) })
		s.logTransition("timer started")
	}
	s.publishLocked()
}

func (s *timerService) Stop() {
	s.mu.Lock()
	if !s.closed && s.snap.State == domain.TimerStateRunning {
		s.cancelScheduledLocked()
		s.snap.State = domain.TimerStatePaused
		s.logTransition("timer paused")
	}
	s.publishLocked()
}

func (s *timerService) Reset() {
	s.mu.Lock()
	if !s.closed {
		s.cancelScheduledLocked()
		s.snap.State = domain.TimerStateStopped
		s.resetCounterLocked(s.snap.Mode)
		s.logTransition("timer reset")
	}
	s.publishLocked()
}

func (s *timerService) SwitchMode(mode domain.TimerMode) {
	s.mu.Lock()
	if !s.closed {
		s.cancelScheduledLocked()
		s.snap.Mode = mode
		s.snap.State = domain.TimerStateStopped
		s.resetCounterLocked(mode)
		s.logTransition("timer mode switched")
	}
	s.publishLocked()
}

func (s *timerService) Snapshot() domain.TimerSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

func (s *timerService) Mode() domain.TimerMode {
	return s.Snapshot().Mode
}

func (s *timerService) State() domain.TimerState {
	return s.Snapshot().State
}

func (s *timerService) DisplaySeconds() int {
	return s.Snapshot().DisplaySeconds()
}

func (s *timerService) ProgressFraction() float64 {
	return s.Snapshot().ProgressFraction()
}

func (s *timerService) Subscribe(fn func(domain.TimerSnapshot)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return func() {}
	}
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *timerService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.cancelScheduledLocked()
	s.closed = true
	s.subs = make(map[int]func(domain.TimerSnapshot))
	s.log.Debug("timer closed")
}

// onTick advances the active counter by one second
func (s *timerService) onTick(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || s.snap.State != domain.TimerStateRunning {
		s.mu.Unlock()
		return
	}

	switch s.snap.Mode {
	case domain.TimerModeCountdown:
		if s.snap.CountdownRemaining > 1 {
			s.snap.CountdownRemaining--
			break
		}
		// Hold 00:00 on screen briefly, then reset
		s.snap.CountdownRemaining = 0
		if s.cancelReset == nil {
			s.cancelReset = s.sched.After(domain.AutoResetDelay, func() { s.onAutoReset(gen) })
			s.log.Debug("countdown reached zero")
		}
	case domain.TimerModeCountUp:
		if s.snap.CountUpElapsed < domain.CountUpCeiling {
			s.snap.CountUpElapsed++
		}
	}

	s.publishLocked()
}

// onAutoReset finishes a countdown that reached zero
func (s *timerService) onAutoReset(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || s.snap.Mode != domain.TimerModeCountdown {
		s.mu.Unlock()
		return
	}

	s.cancelScheduledLocked()
	s.snap.CountdownRemaining = domain.CountdownDuration
	s.snap.State = domain.TimerStateStopped
	s.logTransition("countdown finished")
	s.publishLocked()
}

// cancelScheduledLocked cancels the tick source and any pending
// auto-reset together, and bumps gen so in-flight callbacks are dropped.
func (s *timerService) cancelScheduledLocked() {
	s.gen++
	if s.cancelTick != nil {
		s.cancelTick()
		s.cancelTick = nil
	}
	if s.cancelReset != nil {
		s.cancelReset()
		s.cancelReset = nil
	}
}

func (s *timerService) resetCounterLocked(mode domain.TimerMode) {
	if mode == domain.TimerModeCountUp {
		s.snap.CountUpElapsed = 0
	} else {
		s.snap.CountdownRemaining = domain.CountdownDuration
	}
}

func (s *timerService) logTransition(msg string) {
	s.log.WithFields(logrus.Fields{
		"mode":    s.snap.Mode,
		"state":   s.snap.State,
		"display": s.snap.Display(),
	}).Debug(msg)
}

// publishLocked copies the snapshot and subscribers, releases the lock and
// notifies. Callers must hold s.mu; it is released on return.
func (s *timerService) publishLocked() {
	snap := s.snap
	subs := make([]func(domain.TimerSnapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}
