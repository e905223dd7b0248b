// Package log provides context-aware diagnostic logging for ggo.
//
// Diagnostics go to stderr so stdout stays clean for data (see the output
// package). Debug and Command lines only appear with --verbose; everything
// else is suppressed by --quiet.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

type ctxKey struct{}

// Logger writes diagnostics and verbose command traces.
type Logger struct {
	out     io.Writer
	verbose bool
	quiet   bool
	debug   *slog.Logger
}

// New creates a new logger.
func New(out io.Writer, verbose, quiet bool) *Logger {
	l := &Logger{out: out, verbose: verbose, quiet: quiet}
	if verbose {
		l.debug = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
			Level: slog.LevelDebug,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey && len(groups) == 0 {
					return slog.Attr{}
				}
				return a
			},
		}))
	}
	return l
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{out: io.Discard}
}

// Printf writes formatted output.
func (l *Logger) Printf(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, format, args...)
}

// Println writes a line of output.
func (l *Logger) Println(args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintln(l.out, args...)
}

// Warnf writes a "Warning: " prefixed line.
func (l *Logger) Warnf(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, "Warning: "+format+"\n", args...)
}

// Debug logs a structured message with key/value pairs in verbose mode.
func (l *Logger) Debug(msg string, args ...any) {
	if l.debug == nil {
		return
	}
	l.debug.Debug(msg, args...)
}

// Command logs an external command execution in verbose mode.
// The returned func prints the elapsed time once the command finishes.
func (l *Logger) Command(dir, name string, args ...string) func(time.Duration) {
	if !l.verbose {
		return func(time.Duration) {}
	}
	line := fmt.Sprintf("$ %s %s", name, strings.Join(args, " "))
	if dir != "" {
		line = fmt.Sprintf("[%s] %s", dir, line)
	}
	return func(d time.Duration) {
		fmt.Fprintf(l.out, "%s (%s)\n", line, d.Round(time.Millisecond))
	}
}

// Verbose returns true if verbose mode is enabled.
func (l *Logger) Verbose() bool {
	return l.verbose
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}
