package api

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Boundary call tracing. Disabled unless a logger with a Debug level (or
// lower) is installed; the default logger discards everything, so tracing
// costs one branch per call.

var logger = zerolog.New(os.Stderr).Level(zerolog.Disabled)

// SetLogger installs the logger used for boundary call tracing and returns
// the previous one. Pass a debug-level zerolog.Logger to see one event per
// boundary call with its duration.
func SetLogger(l zerolog.Logger) zerolog.Logger {
	prev := logger
	logger = l
	return prev
}

// Trace records entry into a boundary operation and returns the function
// to defer for the exit event.
func Trace(op string) func() {
	if logger.GetLevel() > zerolog.DebugLevel {
		return func() {}
	}
	start := time.Now()
	return func() {
		logger.Debug().
			Str("op", op).
			Dur("took", time.Since(start)).
			Msg("boundary call")
	}
}
