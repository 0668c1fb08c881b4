// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// The package offers configurable log levels (including a Trace level below
// slog's Debug), output formats, timestamp layouts, and optional caller
// information, all applied with functional options at logger creation time:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithCaller(true))
//
//	logger.Debug("parse starting", slog.Int("capacity", 1024))
//
// A package-level default logger writes to standard error and is
// reconfigured with [Config]; the package-level logging functions
// ([Trace], [Debug], [Info], [Warn], [Error], and their Context variants)
// use it. The zero [Logger] value silently discards all messages, so
// library code can accept a Logger without nil checks.
package log
