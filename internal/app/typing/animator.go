package typing

import (
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/typewriter/internal/domain/phrase"
)

// Errors
var (
	ErrNoPhrases      = phrase.ErrNoPhrases
	ErrNoSurface      = errors.New("display surface is missing")
	ErrAlreadyRunning = errors.New("animator already running")
)

// Option configures an Animator.
type Option func(*Animator)

// WithScheduler sets the timer source. Defaults to the wall clock.
func WithScheduler(s Scheduler) Option {
	return func(a *Animator) {
		a.scheduler = s
	}
}

// WithDelays sets the step delays. Defaults to DefaultDelays.
func WithDelays(d Delays) Option {
	return func(a *Animator) {
		a.delays = d
	}
}

// Animator types and deletes each phrase of a rotation on a surface,
// forever, until stopped. Exactly one step is pending while running.
type Animator struct {
	mu sync.Mutex

	id        string
	phrases   phrase.List
	surface   Surface
	scheduler Scheduler
	delays    Delays

	// Animation state, mutated only by step
	state State
	text  string
	steps uint64

	// Pending step
	timer      Timer
	running    bool
	generation uint64 // bumped on Start/Stop; stale callbacks are dropped

	eventCh chan Event
}

// New creates an animator. It fails if phrases is empty or surface is nil.
func New(phrases phrase.List, surface Surface, opts ...Option) (*Animator, error) {
	a := &Animator{
		id:      uuid.New().String(),
		phrases: phrases,
		surface: surface,
		delays:  DefaultDelays(),
		eventCh: make(chan Event, 10),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.scheduler == nil {
		a.scheduler = NewClockScheduler(nil)
	}

	if err := a.validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Animator) validate() error {
	if a.phrases.Empty() {
		return errors.Wrap(ErrNoPhrases, "invalid animator config")
	}
	if a.surface == nil {
		return errors.Wrap(ErrNoSurface, "invalid animator config")
	}
	return nil
}

// ID returns the animator's unique id.
func (a *Animator) ID() string {
	return a.id
}

// Events returns the event channel. Events are dropped when it is full.
func (a *Animator) Events() <-chan Event {
	return a.eventCh
}

// Start schedules the first step after initialDelay.
// A stopped animator resumes from the state it was stopped in.
func (a *Animator) Start(initialDelay time.Duration) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.validate(); err != nil {
		return err
	}
	if a.running {
		return ErrAlreadyRunning
	}

	a.running = true
	a.generation++
	a.armLocked(initialDelay)

	zlog.Debug().Msgf("typing: animator started: id=%s phrases=%d initial_delay=%v",
		a.id, a.phrases.Len(), initialDelay)
	return nil
}

// Stop cancels the pending step. No surface write happens after Stop
// returns. It reports whether the animator was running.
func (a *Animator) Stop() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.running {
		return false
	}

	a.running = false
	a.generation++
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}

	zlog.Debug().Msgf("typing: animator stopped: id=%s steps=%d state=%+v", a.id, a.steps, a.state)
	return true
}

// Running reports whether a step is pending.
func (a *Animator) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

// State returns a snapshot of the animation state.
func (a *Animator) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Text returns the text last written to the surface.
func (a *Animator) Text() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.text
}

// Steps returns the number of steps performed so far.
func (a *Animator) Steps() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.steps
}

// armLocked schedules the next step. Must be called with lock held.
func (a *Animator) armLocked(d time.Duration) {
	gen := a.generation
	a.timer = a.scheduler.AfterFunc(d, func() {
		a.step(gen)
	})
}

// step performs one transition, writes the surface and re-arms.
func (a *Animator) step(gen uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Stopped, or restarted since this timer was armed
	if !a.running || gen != a.generation {
		return
	}
	a.timer = nil

	prev := a.state
	frame := Advance(prev, a.phrases, a.delays)
	a.state = frame.State
	a.text = frame.Text
	a.steps++

	if err := a.surface.SetText(frame.Text); err != nil {
		zlog.Warn().Err(err).Msgf("typing: surface write failed: id=%s", a.id)
	}

	switch {
	case prev.Mode == ModeGrowing && frame.State.Mode == ModeShrinking:
		a.sendEventLocked(Event{Type: EventPhraseTyped, PhraseIndex: prev.PhraseIndex, Phrase: a.phrases.At(prev.PhraseIndex)})
	case prev.Mode == ModeShrinking && frame.State.Mode == ModeGrowing:
		a.sendEventLocked(Event{Type: EventPhraseCleared, PhraseIndex: prev.PhraseIndex, Phrase: a.phrases.At(prev.PhraseIndex)})
	}

	a.armLocked(frame.Delay)
}

// sendEventLocked sends an event without blocking.
// Must be called with lock held.
func (a *Animator) sendEventLocked(e Event) {
	select {
	case a.eventCh <- e:
	default:
		zlog.Debug().Msgf("typing: event channel full, dropping event: type=%s", e.Type)
	}
}
