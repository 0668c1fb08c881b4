package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/rpn/lang"
)

func TestCompileLines(t *testing.T) {
	c := &Compile{Capacity: 1024, Format: "plain"}

	input := "a+b\n\na*(b+c)\n~x\n"

	records, err := c.compileLines(t.Context(), "test", strings.NewReader(input))
	if err != nil {
		t.Fatalf("compileLines() error: %v", err)
	}

	want := []Record{
		{Input: "a+b", Postfix: "ab+"},
		{Input: "a*(b+c)", Postfix: "abc+*"},
		{Input: "~x", Postfix: "x~"},
	}

	if len(records) != len(want) {
		t.Fatalf("compileLines() = %v, want %v", records, want)
	}

	for i, rec := range records {
		if rec != want[i] {
			t.Errorf("record %d = %v, want %v", i, rec, want[i])
		}
	}
}

func TestCompileLinesAbortsOnError(t *testing.T) {
	c := &Compile{Capacity: 1024, Format: "plain"}

	input := "a+b\na+\nb*c\n"

	records, err := c.compileLines(t.Context(), "test", strings.NewReader(input))
	if !errors.Is(err, ErrCompile) {
		t.Fatalf("compileLines() error = %v, want %v", err, ErrCompile)
	}

	if !errors.Is(err, lang.ErrUnexpectedChar) {
		t.Errorf("compileLines() error does not wrap parse error: %v", err)
	}

	// Only the line preceding the failure compiled.
	if len(records) != 1 || records[0].Postfix != "ab+" {
		t.Errorf("records = %v, want only ab+", records)
	}
}

func TestCompileLinesKeepGoing(t *testing.T) {
	c := &Compile{Capacity: 1024, Format: "plain", KeepGoing: true}

	input := "a+b\na+\nb*c\n"

	records, err := c.compileLines(t.Context(), "test", strings.NewReader(input))
	if err != nil {
		t.Fatalf("compileLines() error: %v", err)
	}

	want := []Record{
		{Input: "a+b", Postfix: "ab+"},
		{Input: "b*c", Postfix: "bc*"},
	}

	if len(records) != len(want) {
		t.Fatalf("compileLines() = %v, want %v", records, want)
	}

	for i, rec := range records {
		if rec != want[i] {
			t.Errorf("record %d = %v, want %v", i, rec, want[i])
		}
	}
}

func TestCompileLinesCapacity(t *testing.T) {
	c := &Compile{Capacity: 2, Format: "plain"}

	_, err := c.compileLines(t.Context(), "test", strings.NewReader("a+b\n"))
	if !errors.Is(err, lang.ErrOutputOverflow) {
		t.Fatalf("compileLines() error = %v, want %v",
			err, lang.ErrOutputOverflow)
	}
}

func TestRenderPlain(t *testing.T) {
	c := &Compile{Format: "plain"}

	var buf bytes.Buffer

	records := []Record{
		{Input: "a+b", Postfix: "ab+"},
		{Input: "~x", Postfix: "x~"},
	}

	if err := c.render(&buf, records); err != nil {
		t.Fatalf("render() error: %v", err)
	}

	if got, want := buf.String(), "ab+\nx~\n"; got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}
}

func TestRenderJSON(t *testing.T) {
	c := &Compile{Format: "json"}

	var buf bytes.Buffer

	records := []Record{{Input: "a+b", Postfix: "ab+"}}

	if err := c.render(&buf, records); err != nil {
		t.Fatalf("render() error: %v", err)
	}

	var decoded []Record
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("render() produced invalid JSON: %v: %q", err, buf.String())
	}

	if len(decoded) != 1 || decoded[0] != records[0] {
		t.Errorf("decoded = %v, want %v", decoded, records)
	}
}

func TestRenderYAML(t *testing.T) {
	c := &Compile{Format: "yaml"}

	var buf bytes.Buffer

	records := []Record{{Input: "a+b", Postfix: "ab+"}}

	if err := c.render(&buf, records); err != nil {
		t.Fatalf("render() error: %v", err)
	}

	var decoded []Record
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("render() produced invalid YAML: %v: %q", err, buf.String())
	}

	if len(decoded) != 1 || decoded[0] != records[0] {
		t.Errorf("decoded = %v, want %v", decoded, records)
	}
}

func TestCompileNoOutputOnError(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "exprs.txt")
	if err := os.WriteFile(path, []byte("a+b\n)\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	c := &Compile{Capacity: 1024, Format: "plain", Source: []string{path}}

	var buf bytes.Buffer

	err := c.compile(t.Context(), &buf)
	if !errors.Is(err, ErrCompile) {
		t.Fatalf("compile() error = %v, want %v", err, ErrCompile)
	}

	if buf.Len() != 0 {
		t.Errorf("compile() wrote output despite error: %q", buf.String())
	}
}

func TestCompileMissingSource(t *testing.T) {
	c := &Compile{
		Capacity: 1024,
		Format:   "plain",
		Source:   []string{"/nonexistent/exprs.txt"},
	}

	var buf bytes.Buffer

	err := c.compile(t.Context(), &buf)
	if !errors.Is(err, ErrReadSource) {
		t.Fatalf("compile() error = %v, want %v", err, ErrReadSource)
	}
}
