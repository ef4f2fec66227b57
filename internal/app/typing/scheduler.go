package typing

import (
	"time"

	"github.com/benbjohnson/clock"
)

// Timer is a pending one-shot callback.
type Timer interface {
	// Stop prevents the callback from firing. It returns false if the
	// callback already fired or the timer was already stopped.
	Stop() bool
}

// Scheduler arms one-shot timers.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// ClockScheduler schedules on a clock.Clock.
type ClockScheduler struct {
	clock clock.Clock
}

// NewClockScheduler creates a scheduler backed by clk.
// A nil clk uses the wall clock.
func NewClockScheduler(clk clock.Clock) *ClockScheduler {
	if clk == nil {
		clk = clock.New()
	}
	return &ClockScheduler{clock: clk}
}

// AfterFunc implements Scheduler.
func (s *ClockScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return s.clock.AfterFunc(d, f)
}
