package squares

import (
	"log/slog"
	"os"
)

// logLevel controls the package log level.
// Default is LevelInfo, which suppresses Debug messages.
var logLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// logger is the default logger for setup and state transitions.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// Logger returns the package logger. Its level follows SetVerbose.
func Logger() *slog.Logger { return logger }
