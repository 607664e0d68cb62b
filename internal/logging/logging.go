// Package logging configures the structured logger used by the bspline
// command.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Level aliases for slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// Logger wraps slog.Logger.
type Logger struct {
	*slog.Logger
}

// Config contains logger configuration options.
type Config struct {
	Level   slog.Level
	Output  io.Writer
	Enabled bool
}

// DefaultConfig logs warnings and errors to stderr.
func DefaultConfig() Config {
	return Config{
		Level:   LevelWarn,
		Output:  os.Stderr,
		Enabled: true,
	}
}

// ConfigForVerbosity returns the default configuration writing to w, at
// debug level when verbose is set.
func ConfigForVerbosity(w io.Writer, verbose bool) Config {
	cfg := DefaultConfig()
	cfg.Output = w
	if verbose {
		cfg.Level = LevelDebug
	}
	return cfg
}

// New creates a logger with the given configuration. A disabled logger
// discards everything.
func New(cfg Config) *Logger {
	if !cfg.Enabled {
		return &Logger{Logger: slog.New(slog.DiscardHandler)}
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	handler := slog.NewTextHandler(output, &slog.HandlerOptions{
		Level: cfg.Level,
	})
	return &Logger{Logger: slog.New(handler)}
}

// WithPrefix returns a logger that nests its attributes under prefix.
func (l *Logger) WithPrefix(prefix string) *Logger {
	return &Logger{Logger: l.WithGroup(prefix)}
}
