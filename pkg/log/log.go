// Package log provides the process-wide zerolog logger for the noise tools.
// The default logger is a no-op; binaries call Init (or MustInit) once at
// startup and every package logs through the helpers below.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var pkgLogger = zerolog.Nop()

// Init configures the package logger. level is one of trace, debug, info,
// warn, error, fatal. With console true events render human-readable on
// stderr; otherwise they are emitted as JSON lines.
func Init(level string, console bool) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("log: unknown level %q: %w", level, err)
	}
	var w io.Writer = os.Stderr
	if console {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	pkgLogger = zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	return nil
}

// MustInit is Init for main functions that cannot run unlogged.
func MustInit(level string, console bool) {
	if err := Init(level, console); err != nil {
		panic(err)
	}
}

// Logger returns the configured logger for components that attach their own
// fields.
func Logger() zerolog.Logger { return pkgLogger }

func Debug() *zerolog.Event { return pkgLogger.Debug() }
func Info() *zerolog.Event  { return pkgLogger.Info() }
func Warn() *zerolog.Event  { return pkgLogger.Warn() }
func Error() *zerolog.Event { return pkgLogger.Error() }
func Fatal() *zerolog.Event { return pkgLogger.Fatal() }
func Log() *zerolog.Event   { return pkgLogger.Log() }

// Printf sends an info-level event. Arguments are handled in the manner of
// fmt.Printf.
func Printf(format string, v ...interface{}) {
	pkgLogger.Info().CallerSkipFrame(1).Msgf(format, v...)
}

func Fatalf(format string, v ...any) {
	pkgLogger.Fatal().Msgf(format, v...)
}
