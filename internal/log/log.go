// Package log provides the structured logger used across Arbor.
//
// It is a thin facade over zerolog: a package-level logger with leveled
// event constructors, writing human-readable console output by default.
// Library code logs sparingly - the one warning-level event the engine
// emits in normal operation is a hydration mismatch.
package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = newDefault()
)

func newDefault() zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(zerolog.InfoLevel).With().Timestamp().Logger()
}

// SetOutput redirects log output, e.g. to a buffer in tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = logger.Output(w)
}

// SetLevel adjusts the global log level.
func SetLevel(level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	logger = logger.Level(level)
}

// SetLevelName adjusts the global log level from its name ("debug",
// "info", "warn", "error"). Unknown names are ignored.
func SetLevelName(name string) {
	if lvl, err := zerolog.ParseLevel(name); err == nil {
		SetLevel(lvl)
	}
}

// SetDebug enables or disables debug-level output.
func SetDebug(on bool) {
	if on {
		SetLevel(zerolog.DebugLevel)
	} else {
		SetLevel(zerolog.InfoLevel)
	}
}

func current() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Debug starts a debug-level event.
func Debug() *zerolog.Event { l := current(); return l.Debug() }

// Info starts an info-level event.
func Info() *zerolog.Event { l := current(); return l.Info() }

// Warn starts a warning-level event.
func Warn() *zerolog.Event { l := current(); return l.Warn() }

// Error starts an error-level event.
func Error() *zerolog.Event { l := current(); return l.Error() }
