package lang

import (
	"context"
	"io"
	"log/slog"

	"github.com/ardnew/rpn/log"
)

// ParseReader compiles an infix expression read from r into postfix form.
func ParseReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", ErrReadInput.Wrap(err)
	}

	return ParseString(ctx, string(data), opts...)
}

// ParseString compiles the infix expression s into postfix form.
//
// The entire input must form exactly one expression. On failure the returned
// error matches one of the package sentinels under errors.Is and carries the
// input position where parsing stopped; no partial output is returned.
func ParseString(ctx context.Context, s string, opts ...Option) (string, error) {
	cfg := makeConfig(opts...)

	p := &parser{
		input:  []byte(s),
		out:    NewSink(cfg.capacity),
		logger: cfg.logger,
	}

	err := p.parseExpr(0)
	if err != nil {
		return "", err
	}

	if !p.eof() {
		return "", ErrTrailingInput.
			WithPosition(p.pos).
			With(slog.String("char", string(p.peek())))
	}

	p.logger.TraceContext(ctx, "parse complete",
		slog.Int("input_length", len(p.input)),
		slog.Int("output_length", p.out.Len()))

	return p.out.String(), nil
}

// Option configures a single parse invocation.
type Option func(config) config

// config holds per-invocation parser settings.
type config struct {
	capacity int
	logger   log.Logger
}

func makeConfig(opts ...Option) config {
	cfg := config{capacity: DefaultCapacity}

	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

// WithCapacity sets the output sink capacity in characters.
// A non-positive value falls back to [DefaultCapacity].
func WithCapacity(n int) Option {
	return func(cfg config) config {
		cfg.capacity = n

		return cfg
	}
}

// WithLogger sets the logger used for parse tracing.
// The zero Logger discards all messages.
func WithLogger(logger log.Logger) Option {
	return func(cfg config) config {
		cfg.logger = logger

		return cfg
	}
}

// parser holds the input cursor and output sink for one parse invocation.
// The cursor advances strictly left to right and never rewinds.
type parser struct {
	input  []byte
	pos    int
	out    *Sink
	logger log.Logger
}

// next consumes and returns the next input character.
// At end of input it returns 0 without advancing.
func (p *parser) next() byte {
	if p.eof() {
		return 0
	}

	ch := p.input[p.pos]
	p.pos++

	return ch
}

// peek returns the next input character without consuming it.
// At end of input it returns 0.
func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}

	return p.input[p.pos]
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

// parsePrimary consumes one primary expression and emits its postfix form.
func (p *parser) parsePrimary() error {
	pos := p.pos

	switch ch := p.next(); {
	case ch == Prefix:
		// Prefix operators nest and emit innermost first: ~~a is a~~.
		err := p.parsePrimary()
		if err != nil {
			return err
		}

		return p.out.Emit(Prefix)

	case ch == '(':
		err := p.parseExpr(0)
		if err != nil {
			return err
		}

		at := p.pos
		if p.next() != ')' {
			return ErrUnclosedGroup.
				WithPosition(at).
				With(slog.String("expected", ")")).
				With(slog.Int("opened", pos))
		}

		return nil

	case isVariable(ch):
		return p.out.Emit(ch)

	default:
		return ErrUnexpectedChar.
			WithPosition(pos).
			With(slog.String("char", string(ch)))
	}
}

// parseExpr parses an expression whose binary operators all bind more
// tightly than min, emitting postfix output as operands and operators
// complete. The left operand is emitted before the first operator is even
// inspected, so operand order is always preserved.
func (p *parser) parseExpr(min int) error {
	err := p.parsePrimary()
	if err != nil {
		return err
	}

	for {
		ch := p.peek()

		op, ok := OperatorInfo(ch)
		if !ok || min >= op.Precedence {
			// The pending operator, if any, belongs to an enclosing call.
			return nil
		}

		p.next()

		// A right-associative operator recurses one below its own
		// precedence so an equal-precedence operator on the right is
		// claimed by the recursive call instead of this loop.
		floor := op.Precedence
		if op.RightAssoc {
			floor--
		}

		err := p.parseExpr(floor)
		if err != nil {
			return err
		}

		err = p.out.Emit(ch)
		if err != nil {
			return err
		}
	}
}
