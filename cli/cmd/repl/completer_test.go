package repl

import (
	"slices"
	"testing"

	"github.com/ardnew/rpn/log"
)

// testLogger returns a logger that discards everything.
func testLogger() log.Logger { return log.Logger{} }

func newTestModel(t *testing.T, entries ...string) model {
	t.Helper()

	h := newTestHistory(t)
	for _, entry := range entries {
		if _, err := h.Write(entry); err != nil {
			t.Fatal(err)
		}
	}

	return newModel(t.Context(), 1024, h, testLogger())
}

func matchStrings(m model) []string {
	matches, _ := m.computeMatches()

	result := make([]string, len(matches))
	for i, match := range matches {
		result[i] = match.Str
	}

	return result
}

func TestComputeMatchesCommands(t *testing.T) {
	m := newTestModel(t)

	m.input.SetValue(":he")

	got := matchStrings(m)
	if !slices.Contains(got, "help") {
		t.Errorf("matches for %q = %v, want to contain help", ":he", got)
	}

	_, prefix := m.computeMatches()
	if prefix != ":" {
		t.Errorf("prefix = %q, want %q", prefix, ":")
	}
}

func TestComputeMatchesBareColon(t *testing.T) {
	m := newTestModel(t)

	m.input.SetValue(":")

	got := matchStrings(m)
	if len(got) != len(ctrlCommands) {
		t.Errorf("matches for bare colon = %v, want all of %v",
			got, ctrlCommands)
	}
}

func TestComputeMatchesHistory(t *testing.T) {
	m := newTestModel(t, "a+b", "a*b", "x=y")

	m.input.SetValue("a+")

	got := matchStrings(m)
	if !slices.Contains(got, "a+b") {
		t.Errorf("matches for %q = %v, want to contain a+b", "a+", got)
	}

	if slices.Contains(got, "x=y") {
		t.Errorf("matches for %q = %v, must not contain x=y", "a+", got)
	}
}

func TestComputeMatchesEmptyInput(t *testing.T) {
	m := newTestModel(t, "a+b")

	m.input.SetValue("")

	if got := matchStrings(m); len(got) != 0 {
		t.Errorf("matches for empty input = %v, want none", got)
	}
}

func TestRenderCandidateBarTruncates(t *testing.T) {
	m := newTestModel(t,
		"aaaaaaaaaa+b", "aaaaaaaaaa*b", "aaaaaaaaaa-b", "aaaaaaaaaa/b")

	m.input.SetValue("aaaaaaaaaa")

	matches, _ := m.computeMatches()
	if len(matches) == 0 {
		t.Fatal("no matches to render")
	}

	bar := renderCandidateBar(matches, 0, true, 20)
	if bar == "" {
		t.Fatal("renderCandidateBar() returned empty string")
	}

	if got := renderCandidateBar(matches, 0, true, 0); got != "" {
		t.Errorf("renderCandidateBar() with zero width = %q, want empty", got)
	}
}
