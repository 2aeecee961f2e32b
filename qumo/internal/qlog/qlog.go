// Package qlog is the ambient structured-logging wrapper shared by the
// qumo packages. It narrows github.com/joeycumines/logiface's generic
// Logger[E] down to the handful of calls the solver actually needs
// (warning-level recovery notices and informational phase/engine events),
// so call sites never have to spell out the stumpy.Event type parameter.
package qlog

import (
	"io"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// Logger is a leveled, structured logger over zero or more key/value fields.
// The zero value (as returned by Discard) drops everything, and a nil
// *Logger is also safe to call.
type Logger struct {
	l *logiface.Logger[*stumpy.Event]
}

// New builds a Logger writing newline-delimited JSON to the configured
// writer. With no options it writes to os.Stderr, matching stumpy's default.
func New(opts ...Option) *Logger {
	var c config
	for _, o := range opts {
		o(&c)
	}
	logifaceOpts := []logiface.Option[*stumpy.Event]{stumpy.L.WithStumpy(stumpy.WithTimeField("ts"))}
	if c.writer != nil {
		logifaceOpts = append(logifaceOpts, stumpy.L.WithWriter(logiface.WriterFunc[*stumpy.Event](func(e *stumpy.Event) error {
			_, err := c.writer.Write(append(append([]byte(nil), e.Bytes()...), '\n'))
			return err
		})))
	}
	return &Logger{l: stumpy.L.New(logifaceOpts...)}
}

// Discard is a Logger that drops every event, useful as a zero-cost default
// for callers that never pass WithWriter.
func Discard() *Logger { return &Logger{} }

type (
	config struct {
		writer io.Writer
	}
	Option func(*config)
)

// WithWriter directs output at w instead of stderr.
func WithWriter(w io.Writer) Option {
	return func(c *config) { c.writer = w }
}

// Warn logs a warning-level event, used for the solver's documented
// recovery paths (degenerate eigenvalue solves, the lambda floor, a deep
// search with no runs) that are handled internally and never surfaced as an
// error to the caller.
func (l *Logger) Warn(msg string, fields ...Field) {
	if l == nil || l.l == nil {
		return
	}
	b := l.l.Warning()
	for _, f := range fields {
		f(b)
	}
	b.Log(msg)
}

// Info logs an informational event, used for phase transitions and engine
// selection.
func (l *Logger) Info(msg string, fields ...Field) {
	if l == nil || l.l == nil {
		return
	}
	b := l.l.Info()
	for _, f := range fields {
		f(b)
	}
	b.Log(msg)
}

// Field is a deferred key/value attachment applied to whichever level's
// builder ends up being used.
type Field func(*logiface.Builder[*stumpy.Event])

func Str(key, val string) Field {
	return func(b *logiface.Builder[*stumpy.Event]) { b.Str(key, val) }
}

func Int(key string, val int) Field {
	return func(b *logiface.Builder[*stumpy.Event]) { b.Int(key, val) }
}

func Float64(key string, val float64) Field {
	return func(b *logiface.Builder[*stumpy.Event]) { b.Float64(key, val) }
}

func Err(err error) Field {
	return func(b *logiface.Builder[*stumpy.Event]) { b.Err(err) }
}
