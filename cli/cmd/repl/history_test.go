package repl

import (
	"errors"
	"path/filepath"
	"testing"
)

func newTestHistory(t *testing.T) *History {
	t.Helper()

	return NewHistory(filepath.Join(t.TempDir(), baseHistory))
}

func TestHistoryWriteAndGet(t *testing.T) {
	h := newTestHistory(t)

	for _, entry := range []string{"a+b", "a*b", "~x"} {
		if _, err := h.Write(entry); err != nil {
			t.Fatalf("Write(%q) error: %v", entry, err)
		}
	}

	if got := h.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}

	got, err := h.Get(0)
	if err != nil || got != "a+b" {
		t.Errorf("Get(0) = %q, %v, want a+b", got, err)
	}

	if _, err := h.Get(3); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Get(3) error = %v, want %v", err, ErrOutOfBounds)
	}

	if _, err := h.Get(-1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Get(-1) error = %v, want %v", err, ErrOutOfBounds)
	}
}

func TestHistoryDeduplicates(t *testing.T) {
	h := newTestHistory(t)

	for _, entry := range []string{"a+b", "a*b", "a+b"} {
		if _, err := h.Write(entry); err != nil {
			t.Fatalf("Write(%q) error: %v", entry, err)
		}
	}

	want := []string{"a*b", "a+b"}

	got := h.Entries()
	if len(got) != len(want) {
		t.Fatalf("Entries() = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestHistorySkipsRepeatedLast(t *testing.T) {
	h := newTestHistory(t)

	for range 3 {
		if _, err := h.Write("a+b"); err != nil {
			t.Fatal(err)
		}
	}

	if got := h.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

func TestHistoryIgnoresBlank(t *testing.T) {
	h := newTestHistory(t)

	if _, err := h.Write("   "); err != nil {
		t.Fatal(err)
	}

	if got := h.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
}

func TestHistoryPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	h := NewHistory(path)
	for _, entry := range []string{"a+b", "(a+b)*c"} {
		if _, err := h.Write(entry); err != nil {
			t.Fatal(err)
		}
	}

	reloaded := NewHistory(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want := []string{"a+b", "(a+b)*c"}

	got := reloaded.Entries()
	if len(got) != len(want) {
		t.Fatalf("Entries() = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestHistoryLoadMissingFile(t *testing.T) {
	h := newTestHistory(t)

	if err := h.Load(); err != nil {
		t.Errorf("Load() of missing file error: %v", err)
	}

	if got := h.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
}
