// Package logger provides structured logging using zerolog.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

// Config represents logger configuration.
type Config struct {
	Output string    // "stderr" (default), "stdout", "discard", or a file path
	Level  string    // "debug", "info", "warn", "error"
	Writer io.Writer // overrides Output when set
}

// Init initializes the global zerolog logger with the given configuration
// and returns the logger it installed.
func Init(cfg Config) (zerolog.Logger, error) {
	level := ParseLevel(cfg.Level)

	writer, console, err := openWriter(cfg)
	if err != nil {
		return zerolog.Nop(), err
	}

	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.TimeOnly
	zerolog.TimestampFieldName = "time"
	zerolog.LevelFieldName = "level"
	zerolog.MessageFieldName = "message"
	zerolog.CallerMarshalFunc = shortCaller

	var ctx zerolog.Context
	if console {
		cw := zerolog.ConsoleWriter{
			Out:        writer,
			TimeFormat: time.TimeOnly,
		}
		if level == zerolog.DebugLevel {
			cw.PartsOrder = []string{"time", "level", "message", "caller"}
			cw.FormatCaller = func(i interface{}) string {
				return "(" + i.(string) + ")"
			}
		}
		ctx = zerolog.New(cw).With().Timestamp()
	} else {
		ctx = zerolog.New(writer).With().Timestamp()
	}
	// Caller only at DEBUG level
	if level == zerolog.DebugLevel {
		ctx = ctx.Caller()
	}

	logger := ctx.Logger()
	zerolog.DefaultContextLogger = &logger
	zlog.Logger = logger

	return logger, nil
}

// openWriter resolves the output destination. Console destinations get the
// colored console writer, files and custom writers get JSON.
func openWriter(cfg Config) (io.Writer, bool, error) {
	if cfg.Writer != nil {
		return cfg.Writer, false, nil
	}

	switch strings.ToLower(cfg.Output) {
	case "stderr", "":
		return os.Stderr, true, nil
	case "stdout":
		return os.Stdout, true, nil
	case "discard":
		return io.Discard, false, nil
	default:
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, false, errors.Wrapf(err, "failed to open log file %s", cfg.Output)
		}
		return f, false, nil
	}
}

// shortCaller renders the caller as "dir/file.go:line".
func shortCaller(pc uintptr, file string, line int) string {
	parts := strings.Split(file, string(filepath.Separator))
	if len(parts) > 1 {
		return filepath.Join(parts[len(parts)-2:]...) + ":" + strconv.Itoa(line)
	}
	return filepath.Base(file) + ":" + strconv.Itoa(line)
}

// ParseLevel parses the log level string. Unknown levels map to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
