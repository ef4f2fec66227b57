package terminal

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	zlog "github.com/rs/zerolog/log"
)

// ScreenConfig represents the configuration for the full-screen surface.
type ScreenConfig struct {
	Prefix string `mapstructure:"prefix"`
	Color  string `mapstructure:"color" default:"#8b5cf6"`
	Cursor string `mapstructure:"cursor" default:"▌" validate:"max=1"`
}

// Screen renders text centered on a full-screen terminal.
type Screen struct {
	mu     sync.Mutex
	screen tcell.Screen
	cfg    ScreenConfig
	style  tcell.Style
	text   string

	done      chan struct{}
	doneOnce  sync.Once
	closeOnce sync.Once
	pollDone  chan struct{}
}

// NewScreen opens the terminal in full-screen mode.
func NewScreen(cfg ScreenConfig) (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create screen")
	}
	return openScreen(screen, cfg)
}

// openScreen initializes screen and starts reading its input.
func openScreen(screen tcell.Screen, cfg ScreenConfig) (*Screen, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize screen")
	}
	screen.HideCursor()
	screen.Clear()

	s := &Screen{
		screen:   screen,
		cfg:      cfg,
		style:    tcell.StyleDefault.Foreground(tcell.GetColor(cfg.Color)).Bold(true),
		done:     make(chan struct{}),
		pollDone: make(chan struct{}),
	}
	go s.pollEvents()
	return s, nil
}

// SetText implements typing.Surface.
func (s *Screen) SetText(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.text = text
	s.drawLocked()
	return nil
}

// drawLocked renders the current text. Must be called with lock held.
func (s *Screen) drawLocked() {
	s.screen.Clear()

	line := s.cfg.Prefix + s.text
	w, h := s.screen.Size()
	x := (w - runewidth.StringWidth(line+s.cfg.Cursor)) / 2
	if x < 0 {
		x = 0
	}
	y := h / 2

	for _, r := range line {
		s.screen.SetContent(x, y, r, nil, s.style)
		x += runewidth.RuneWidth(r)
	}
	for _, r := range s.cfg.Cursor {
		s.screen.SetContent(x, y, r, nil, s.style)
	}

	s.screen.Show()
}

// pollEvents watches for quit keys and resizes until the screen is closed.
func (s *Screen) pollEvents() {
	defer close(s.pollDone)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				zlog.Debug().Msg("screen: quit requested")
				s.doneOnce.Do(func() { close(s.done) })
			}
		case *tcell.EventResize:
			s.mu.Lock()
			s.screen.Sync()
			s.drawLocked()
			s.mu.Unlock()
		}
	}
}

// Done implements Display.
func (s *Screen) Done() <-chan struct{} {
	return s.done
}

// Close restores the terminal.
func (s *Screen) Close() error {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.screen.Fini()
		s.mu.Unlock()
		<-s.pollDone
	})
	return nil
}

// Text returns the text last drawn.
func (s *Screen) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}
