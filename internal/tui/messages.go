package tui

import "github.com/andy/dualtimer/internal/domain"

// snapshotMsg carries the timer state after an engine notification
type snapshotMsg struct {
	snap domain.TimerSnapshot
}

// ErrorMsg carries error information
type ErrorMsg struct {
	Err error
}

// copiedMsg reports a successful clipboard write
type copiedMsg struct {
	text string
}
