package lang

import "log/slog"

// DefaultCapacity is the default output sink capacity in characters.
const DefaultCapacity = 1024

// Sink is an append-only output buffer with a fixed capacity.
// It accumulates the postfix translation as the parser emits it.
type Sink struct {
	buf []byte
	max int
}

// NewSink creates a sink that accepts at most capacity characters.
// A non-positive capacity falls back to [DefaultCapacity].
func NewSink(capacity int) *Sink {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Sink{
		buf: make([]byte, 0, capacity),
		max: capacity,
	}
}

// Emit appends one character to the sink.
// It returns [ErrOutputOverflow] if the sink is already full.
func (s *Sink) Emit(ch byte) error {
	if len(s.buf) >= s.max {
		return ErrOutputOverflow.
			With(slog.Int("capacity", s.max)).
			With(slog.String("char", string(ch)))
	}

	s.buf = append(s.buf, ch)

	return nil
}

// Len returns the number of characters emitted so far.
func (s *Sink) Len() int { return len(s.buf) }

// Cap returns the configured capacity.
func (s *Sink) Cap() int { return s.max }

// String returns the accumulated output.
func (s *Sink) String() string { return string(s.buf) }
