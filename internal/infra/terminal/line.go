package terminal

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
	"github.com/mattn/go-isatty"
)

// Line modes
const (
	ModeAuto    = "auto"    // rewrite on a terminal, append otherwise
	ModeRewrite = "rewrite" // redraw a single line in place
	ModeAppend  = "append"  // one line per frame
)

// eraseLine returns the cursor to column 0 and clears the line.
const eraseLine = "\r\x1b[K"

// LineConfig represents the configuration for the line surface.
type LineConfig struct {
	Prefix string `mapstructure:"prefix"`
	Cursor string `mapstructure:"cursor" default:"|"`
	Color  string `mapstructure:"color" validate:"omitempty,hexcolor|numeric"`
	Bold   bool   `mapstructure:"bold"`
	Mode   string `mapstructure:"mode" default:"auto" validate:"oneof=auto rewrite append"`
}

// Line renders text on a single terminal line.
type Line struct {
	mu      sync.Mutex
	out     io.Writer
	cfg     LineConfig
	rewrite bool
	styled  bool
	style   lipgloss.Style
	dirty   bool // a rewritten line is pending a newline
}

// NewLine creates a line surface writing to out.
func NewLine(out io.Writer, cfg LineConfig) *Line {
	if cfg.Mode == "" {
		cfg.Mode = ModeAuto
	}

	l := &Line{
		out:   out,
		cfg:   cfg,
		style: lipgloss.NewStyle(),
	}

	switch cfg.Mode {
	case ModeRewrite:
		l.rewrite = true
	case ModeAuto:
		l.rewrite = IsTerminal(out)
	}

	if cfg.Color != "" {
		l.style = l.style.Foreground(lipgloss.Color(cfg.Color))
		l.styled = true
	}
	if cfg.Bold {
		l.style = l.style.Bold(true)
		l.styled = true
	}
	return l
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Render returns the frame as it is written, without control sequences.
func (l *Line) Render(text string) string {
	if l.styled {
		text = l.style.Render(text)
	}
	return l.cfg.Prefix + text + l.cfg.Cursor
}

// SetText implements typing.Surface.
func (l *Line) SetText(text string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	frame := l.Render(text)
	if l.rewrite {
		frame = eraseLine + frame
		l.dirty = true
	} else {
		frame += "\n"
	}

	if _, err := io.WriteString(l.out, frame); err != nil {
		return errors.Wrap(err, "failed to write line")
	}
	return nil
}

// Done implements Display. A line surface takes no input.
func (l *Line) Done() <-chan struct{} {
	return nil
}

// Close terminates a rewritten line so the shell prompt starts clean.
func (l *Line) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.dirty {
		return nil
	}
	l.dirty = false
	if _, err := io.WriteString(l.out, "\n"); err != nil {
		return errors.Wrap(err, "failed to write line")
	}
	return nil
}
