package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/rpn/lang"
	"github.com/ardnew/rpn/log"
)

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// Compile translates infix expressions to postfix notation.
//
// Each non-empty line of every source is compiled as one expression.
// With --keep-going, lines that fail to compile are logged and skipped;
// otherwise the first failure aborts without producing output.
type Compile struct {
	Capacity  int    `default:"1024"  help:"Maximum postfix output length per expression."`
	Format    string `default:"plain" enum:"plain,json,yaml"                               help:"Output format." short:"f"`
	KeepGoing bool   `help:"Continue past expressions that fail to compile."               short:"k"`

	Source []string `arg:"" default:"-" help:"Expression file(s) or '-' for stdin." optional:""`
}

// Record is one compiled expression in structured output formats.
type Record struct {
	Input   string `json:"input"   yaml:"input"`
	Postfix string `json:"postfix" yaml:"postfix"`
}

// Run executes the compile command.
func (c *Compile) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	return c.compile(ctx, os.Stdout)
}

func (c *Compile) compile(ctx context.Context, w io.Writer) error {
	var records []Record

	for _, src := range c.Source {
		recs, err := c.compileSource(ctx, src)

		records = append(records, recs...)

		if err != nil {
			return err
		}
	}

	return c.render(w, records)
}

func (c *Compile) compileSource(
	ctx context.Context, src string,
) ([]Record, error) {
	if src == stdinSource {
		return c.compileLines(ctx, src, os.Stdin)
	}

	file, err := os.Open(src)
	if err != nil {
		return nil, ErrReadSource.
			With(slog.String("source", src)).
			Wrap(err)
	}
	defer file.Close()

	return c.compileLines(ctx, src, file)
}

// compileLines compiles each non-empty line of r as one expression.
func (c *Compile) compileLines(
	ctx context.Context, name string, r io.Reader,
) ([]Record, error) {
	var records []Record

	scanner := bufio.NewScanner(r)

	for line := 1; scanner.Scan(); line++ {
		input := scanner.Text()
		if input == "" {
			continue
		}

		postfix, err := lang.ParseString(ctx, input,
			lang.WithCapacity(c.Capacity))
		if err != nil {
			err = ErrCompile.
				With(slog.String("source", name)).
				With(slog.Int("line", line)).
				Wrap(err)

			if !c.KeepGoing {
				return records, err
			}

			log.ErrorContext(ctx, "compile failed", slog.Any("error", err))

			continue
		}

		log.TraceContext(ctx, "compiled expression",
			slog.String("input", input),
			slog.String("postfix", postfix),
		)

		records = append(records, Record{Input: input, Postfix: postfix})
	}

	err := scanner.Err()
	if err != nil {
		return records, ErrReadSource.
			With(slog.String("source", name)).
			Wrap(err)
	}

	return records, nil
}

func (c *Compile) render(w io.Writer, records []Record) error {
	switch c.Format {
	case "json":
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return ErrJSONMarshal.Wrap(err)
		}

		_, err = fmt.Fprintf(w, "%s\n", data)

		return err

	case "yaml":
		data, err := yaml.Marshal(records)
		if err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}

		_, err = w.Write(data)

		return err

	default:
		for _, rec := range records {
			_, err := fmt.Fprintln(w, rec.Postfix)
			if err != nil {
				return err
			}
		}

		return nil
	}
}
