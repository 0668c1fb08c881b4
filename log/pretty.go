package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
)

// ANSI escape sequences for colorized terminal output.
const (
	ansiReset  = "\x1b[0m"
	ansiFaint  = "\x1b[2m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
	ansiCyan   = "\x1b[36m"
)

// levelColor maps severities to their display color.
func levelColor(l Level) string {
	switch {
	case l >= LevelError:
		return ansiRed
	case l >= LevelWarn:
		return ansiYellow
	case l >= LevelInfo:
		return ansiGreen
	case l >= LevelDebug:
		return ansiBlue
	default:
		return ansiCyan
	}
}

// prettyTextHandler renders records as colorized, human-readable lines:
//
//	15:04:05 INFO  compile complete input=a+b postfix=ab+
type prettyTextHandler struct {
	opts       *slog.HandlerOptions
	formatTime FormatTime
	mutex      *sync.Mutex
	output     io.Writer
	attrs      []slog.Attr
	groups     []string
}

func newPrettyTextHandler(
	w io.Writer, opts *slog.HandlerOptions, formatTime FormatTime,
) *prettyTextHandler {
	return &prettyTextHandler{
		opts:       opts,
		formatTime: formatTime,
		mutex:      &sync.Mutex{},
		output:     w,
	}
}

func (h *prettyTextHandler) Enabled(_ context.Context, l slog.Level) bool {
	min := slog.LevelInfo
	if h.opts.Level != nil {
		min = h.opts.Level.Level()
	}

	return l >= min
}

func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder

	if stamp := h.formatTime(r.Time); stamp != "" {
		sb.WriteString(ansiFaint)
		sb.WriteString(stamp)
		sb.WriteString(ansiReset)
		sb.WriteByte(' ')
	}

	level := Level(r.Level)
	sb.WriteString(levelColor(level))
	sb.WriteString(fmt.Sprintf("%-5s", strings.ToUpper(level.String())))
	sb.WriteString(ansiReset)
	sb.WriteByte(' ')

	if h.opts.AddSource && r.PC != 0 {
		if src := sourceOf(r); src != "" {
			sb.WriteString(ansiFaint)
			sb.WriteString(src)
			sb.WriteString(ansiReset)
			sb.WriteByte(' ')
		}
	}

	sb.WriteString(r.Message)

	prefix := strings.Join(h.groups, ".")
	for _, a := range h.attrs {
		h.appendAttr(&sb, prefix, a)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(&sb, prefix, a)

		return true
	})

	sb.WriteByte('\n')

	h.mutex.Lock()
	defer h.mutex.Unlock()

	_, err := io.WriteString(h.output, sb.String())

	return err
}

func (h *prettyTextHandler) appendAttr(
	sb *strings.Builder, prefix string, a slog.Attr,
) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if prefix != "" {
		key = prefix + "." + key
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, member := range a.Value.Group() {
			h.appendAttr(sb, key, member)
		}

		return
	}

	sb.WriteByte(' ')
	sb.WriteString(ansiCyan)
	sb.WriteString(key)
	sb.WriteString(ansiReset)
	sb.WriteByte('=')
	sb.WriteString(fmt.Sprintf("%v", a.Value.Any()))
}

func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)

	return &clone
}

func (h *prettyTextHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.groups = append(append([]string{}, h.groups...), name)

	return &clone
}

func sourceOf(r slog.Record) string {
	frame := sourceFrame(r)
	if frame.File == "" {
		return ""
	}

	return fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
}
