package log

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"time"
)

// Logger wraps [slog.Logger] with leveled convenience methods and a
// [LevelTrace] severity below [slog.LevelDebug].
//
// The zero value discards all messages. Loggers are values; derive
// reconfigured copies with [Logger.With].
type Logger struct {
	*slog.Logger

	config config
}

// Make creates a new Logger writing to w with the given options applied
// over the defaults.
func Make(w io.Writer, opts ...Option) Logger {
	cfg := makeConfig(w, opts...)

	return Logger{
		Logger: slog.New(cfg.handler()),
		config: cfg,
	}
}

// Wrap creates a Logger from an existing [slog.Logger].
// Configuration options that affect handler construction are ignored,
// since the wrapped logger's handler is used as-is.
func Wrap(logger *slog.Logger) Logger {
	if logger == nil {
		return Logger{}
	}

	return Logger{Logger: logger}
}

// With returns a copy of the Logger with additional options applied.
// The underlying handler is rebuilt from the merged configuration.
func (l Logger) With(opts ...Option) Logger {
	if len(opts) == 0 {
		return l
	}

	cfg := apply(l.config, opts...)

	return Logger{
		Logger: slog.New(cfg.handler()),
		config: cfg,
	}
}

// Enabled reports whether messages at the given level would be emitted.
func (l Logger) Enabled(ctx context.Context, level Level) bool {
	if l.Logger == nil {
		return false
	}

	return l.Logger.Enabled(ctx, slog.Level(level))
}

// Trace logs at [LevelTrace].
func (l Logger) Trace(msg string, attrs ...slog.Attr) {
	l.log(context.Background(), LevelTrace, msg, attrs...)
}

// TraceContext logs at [LevelTrace] with the given context.
func (l Logger) TraceContext(
	ctx context.Context, msg string, attrs ...slog.Attr,
) {
	l.log(ctx, LevelTrace, msg, attrs...)
}

// Debug logs at [LevelDebug].
func (l Logger) Debug(msg string, attrs ...slog.Attr) {
	l.log(context.Background(), LevelDebug, msg, attrs...)
}

// DebugContext logs at [LevelDebug] with the given context.
func (l Logger) DebugContext(
	ctx context.Context, msg string, attrs ...slog.Attr,
) {
	l.log(ctx, LevelDebug, msg, attrs...)
}

// Info logs at [LevelInfo].
func (l Logger) Info(msg string, attrs ...slog.Attr) {
	l.log(context.Background(), LevelInfo, msg, attrs...)
}

// InfoContext logs at [LevelInfo] with the given context.
func (l Logger) InfoContext(
	ctx context.Context, msg string, attrs ...slog.Attr,
) {
	l.log(ctx, LevelInfo, msg, attrs...)
}

// Warn logs at [LevelWarn].
func (l Logger) Warn(msg string, attrs ...slog.Attr) {
	l.log(context.Background(), LevelWarn, msg, attrs...)
}

// WarnContext logs at [LevelWarn] with the given context.
func (l Logger) WarnContext(
	ctx context.Context, msg string, attrs ...slog.Attr,
) {
	l.log(ctx, LevelWarn, msg, attrs...)
}

// Error logs at [LevelError].
func (l Logger) Error(msg string, attrs ...slog.Attr) {
	l.log(context.Background(), LevelError, msg, attrs...)
}

// ErrorContext logs at [LevelError] with the given context.
func (l Logger) ErrorContext(
	ctx context.Context, msg string, attrs ...slog.Attr,
) {
	l.log(ctx, LevelError, msg, attrs...)
}

// log constructs and dispatches a record with the caller's program counter
// so that AddSource reports the user's call site, not this package.
func (l Logger) log(
	ctx context.Context, level Level, msg string, attrs ...slog.Attr,
) {
	if l.Logger == nil || !l.Logger.Enabled(ctx, slog.Level(level)) {
		return
	}

	var pcs [1]uintptr

	// Skip runtime.Callers, log, and the exported wrapper.
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), slog.Level(level), msg, pcs[0])
	r.AddAttrs(attrs...)

	_ = l.Logger.Handler().Handle(ctx, r)
}

// sourceFrame resolves the call site recorded in r.
func sourceFrame(r slog.Record) runtime.Frame {
	frames := runtime.CallersFrames([]uintptr{r.PC})
	frame, _ := frames.Next()

	return frame
}
