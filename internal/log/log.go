// Package log provides context-aware logging for tuikit.
//
// The interactive widgets own the terminal while they run, so diagnostics
// go to whatever writer the caller supplies (usually a file opened via
// --log-file). Debug records are structured key/value pairs rendered by
// charmbracelet/log.
package log

import (
	"context"
	"fmt"
	"io"

	charmlog "github.com/charmbracelet/log"
)

type ctxKey struct{}

// Logger provides output and verbose debug logging.
type Logger struct {
	out     io.Writer
	verbose bool
	quiet   bool
	backend *charmlog.Logger
}

// New creates a new logger. Debug records are only written when verbose is
// set; quiet suppresses everything.
func New(out io.Writer, verbose, quiet bool) *Logger {
	level := charmlog.InfoLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	backend := charmlog.NewWithOptions(out, charmlog.Options{
		Level:  level,
		Prefix: "tuikit",
	})
	return &Logger{out: out, verbose: verbose, quiet: quiet, backend: backend}
}

// Discard returns a logger that writes nothing.
func Discard() *Logger {
	return New(io.Discard, false, true)
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
	return Discard()
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

// Debug writes a structured debug record. Only complete key/value pairs
// are kept.
func (l *Logger) Debug(msg string, keyvals ...any) {
	if l == nil || !l.IsVerbose() {
		return
	}
	l.backend.Debug(msg, evenPairs(keyvals)...)
}

// Warn writes a structured warning unless quiet.
func (l *Logger) Warn(msg string, keyvals ...any) {
	if l == nil || l.quiet {
		return
	}
	l.backend.Warn(msg, evenPairs(keyvals)...)
}

// With returns a logger that adds keyvals to every debug record.
func (l *Logger) With(keyvals ...any) *Logger {
	if l == nil {
		return Discard()
	}
	return &Logger{
		out:     l.out,
		verbose: l.verbose,
		quiet:   l.quiet,
		backend: l.backend.With(evenPairs(keyvals)...),
	}
}

// IsVerbose returns true if debug records are written.
func (l *Logger) IsVerbose() bool {
	return l.verbose && !l.quiet
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}

func evenPairs(keyvals []any) []any {
	if len(keyvals)%2 != 0 {
		return keyvals[:len(keyvals)-1]
	}
	return keyvals
}
