// Package terminal provides terminal display surfaces for the typing animator.
package terminal

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	zlog "github.com/rs/zerolog/log"
)

// Surface types
const (
	TypeLine   = "line"
	TypeScreen = "screen"
)

// Display is a surface that owns terminal resources.
type Display interface {
	// SetText replaces the displayed text.
	SetText(text string) error
	// Done is closed when the user asks to quit. Nil if the display takes no input.
	Done() <-chan struct{}
	// Close releases the terminal.
	Close() error
}

// New creates a display of the given type. settings is the raw settings
// block from the config file; out is used by the line surface.
func New(surfaceType string, settings map[string]any, out io.Writer) (Display, error) {
	zlog.Debug().Msgf("creating display surface: type=%s settings=%+v", surfaceType, settings)

	switch surfaceType {
	case TypeLine, "":
		var cfg LineConfig
		if err := decodeSettings(settings, &cfg); err != nil {
			return nil, errors.Wrapf(err, "invalid %s surface settings", TypeLine)
		}
		return NewLine(out, cfg), nil

	case TypeScreen:
		var cfg ScreenConfig
		if err := decodeSettings(settings, &cfg); err != nil {
			return nil, errors.Wrapf(err, "invalid %s surface settings", TypeScreen)
		}
		screen, err := NewScreen(cfg)
		if err != nil {
			return nil, err
		}
		return screen, nil

	default:
		return nil, errors.Newf("unsupported surface type: %s", surfaceType)
	}
}

// decodeSettings decodes a settings map into out, then applies defaults and
// validates it.
func decodeSettings(settings map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "mapstructure",
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create decoder")
	}

	if err := decoder.Decode(settings); err != nil {
		return errors.Wrap(err, "failed to decode settings")
	}

	if err := defaults.Set(out); err != nil {
		return errors.Wrap(err, "failed to set defaults")
	}

	if err := validator.New().Struct(out); err != nil {
		return errors.Wrap(err, "validation failed")
	}

	return nil
}
