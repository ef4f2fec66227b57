// Package typing provides the typing text animator.
package typing

import (
	"time"

	"github.com/osa030/typewriter/internal/domain/phrase"
)

// Mode represents the animation phase.
type Mode int

const (
	ModeGrowing   Mode = iota // Characters are being added
	ModeShrinking             // Characters are being removed
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeGrowing:
		return "growing"
	case ModeShrinking:
		return "shrinking"
	default:
		return "unknown"
	}
}

// State is the mutable animation state.
// The zero value is the initial state: first phrase, nothing shown, growing.
type State struct {
	PhraseIndex int
	CharCount   int
	Mode        Mode
}

// Delays holds the wait applied after each kind of step.
type Delays struct {
	Grow       time.Duration // after a normal growing step
	Shrink     time.Duration // after a normal shrinking step
	PauseFull  time.Duration // after a phrase has been fully typed
	PauseEmpty time.Duration // after a phrase has been fully deleted
}

// DefaultDelays returns the standard typing rhythm.
func DefaultDelays() Delays {
	return Delays{
		Grow:       150 * time.Millisecond,
		Shrink:     100 * time.Millisecond,
		PauseFull:  2000 * time.Millisecond,
		PauseEmpty: 500 * time.Millisecond,
	}
}

// Frame is the outcome of a single step.
type Frame struct {
	State State         // State after the step
	Text  string        // Text to display
	Delay time.Duration // Wait before the next step
}

// Advance performs one transition from s. It is total over valid states of
// a non-empty list and never mutates its inputs.
func Advance(s State, phrases phrase.List, d Delays) Frame {
	i := s.PhraseIndex
	length := phrases.RuneLen(i)
	next := s

	var delay time.Duration
	switch s.Mode {
	case ModeShrinking:
		next.CharCount--
		delay = d.Shrink
		if next.CharCount <= 0 {
			next.CharCount = 0
			next.Mode = ModeGrowing
			next.PhraseIndex = phrases.Next(i)
			delay = d.PauseEmpty
		}
	default:
		next.CharCount++
		delay = d.Grow
		if next.CharCount >= length {
			next.CharCount = length
			next.Mode = ModeShrinking
			delay = d.PauseFull
		}
	}

	return Frame{
		State: next,
		Text:  phrases.Prefix(i, next.CharCount),
		Delay: delay,
	}
}

// CycleDuration returns the wall time of one full rotation through phrases,
// excluding any initial delay.
func CycleDuration(phrases phrase.List, d Delays) time.Duration {
	var total time.Duration
	s := State{}
	for range phrases.CycleSteps() {
		f := Advance(s, phrases, d)
		total += f.Delay
		s = f.State
	}
	return total
}
