package domain

import (
	"fmt"
	"time"
)

type TimerMode string

const (
	TimerModeCountdown TimerMode = "countdown"
	TimerModeCountUp   TimerMode = "countup"
)

// Label returns the human name shown under the clock
func (m TimerMode) Label() string {
	if m == TimerModeCountUp {
		return "Count Up"
	}
	return "Countdown"
}

// ParseTimerMode accepts the stored string form of a mode
func ParseTimerMode(s string) (TimerMode, error) {
	switch TimerMode(s) {
	case TimerModeCountdown, TimerModeCountUp:
		return TimerMode(s), nil
	}
	return "", fmt.Errorf("unknown timer mode %q", s)
}

type TimerState string

const (
	TimerStateStopped TimerState = "stopped"
	TimerStateRunning TimerState = "running"
	TimerStatePaused  TimerState = "paused"
)

// Label returns the capitalized state name
func (s TimerState) Label() string {
	switch s {
	case TimerStateRunning:
		return "Running"
	case TimerStatePaused:
		return "Paused"
	default:
		return "Stopped"
	}
}

const (
	// CountdownDuration is where a countdown starts and returns to (25 minutes)
	CountdownDuration = 25 * 60

	// CountUpCeiling is the largest elapsed value a count-up reaches (24 hours)
	CountUpCeiling = 24 * 60 * 60

	TickInterval   = time.Second
	AutoResetDelay = 100 * time.Millisecond
)

// TimerSnapshot is the full read model of the timer engine
type TimerSnapshot struct {
	Mode               TimerMode
	State              TimerState
	CountdownRemaining int
	CountUpElapsed     int
}

// NewTimerSnapshot returns the startup state: a stopped, full countdown
func NewTimerSnapshot() TimerSnapshot {
	return TimerSnapshot{
		Mode:               TimerModeCountdown,
		State:              TimerStateStopped,
		CountdownRemaining: CountdownDuration,
		CountUpElapsed:     0,
	}
}

// DisplaySeconds returns the value of the counter selected by Mode
func (s TimerSnapshot) DisplaySeconds() int {
	if s.Mode == TimerModeCountUp {
		return s.CountUpElapsed
	}
	return s.CountdownRemaining
}

// ProgressFraction returns how far the active counter is through its range, in [0,1]
func (s TimerSnapshot) ProgressFraction() float64 {
	if s.Mode == TimerModeCountUp {
		return float64(s.CountUpElapsed) / CountUpCeiling
	}
	return float64(CountdownDuration-s.CountdownRemaining) / CountdownDuration
}

// Display formats the active counter for the clock face
func (s TimerSnapshot) Display() string {
	return FormatClock(s.DisplaySeconds(), s.Mode == TimerModeCountUp)
}

// FormatClock renders seconds as MM:SS, or HH:MM:SS when showHours is set
func FormatClock(seconds int, showHours bool) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if showHours {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}
