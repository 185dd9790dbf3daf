package repl

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestHistory_WriteLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	h := NewHistory(path)
	if err := h.Load(); err != nil {
		t.Fatalf("Load() of missing file: %v", err)
	}

	for _, e := range []HistoryEntry{
		{"(a b)", modeCheck},
		{"grammar arith", modeCtrl},
		{"  ", modeCheck},
		{"1 + 2", modeCheck},
		{"1 + 2", modeCheck},
		{"(a b)", modeCheck},
	} {
		if err := h.Write(e.Line, e.Mode); err != nil {
			t.Fatalf("Write(%q) error = %v", e.Line, err)
		}
	}

	want := []HistoryEntry{
		{"grammar arith", modeCtrl},
		{"1 + 2", modeCheck},
		{"(a b)", modeCheck},
	}

	reloaded := NewHistory(path)
	if err := reloaded.Load(); err != nil {
		t.Fatal(err)
	}

	for _, hist := range []*History{h, reloaded} {
		if hist.Len() != len(want) {
			t.Fatalf("Len() = %d, want %d", hist.Len(), len(want))
		}

		for i, w := range want {
			if got, err := hist.Entry(i); err != nil || got != w {
				t.Errorf("Entry(%d) = %+v, %v, want %+v", i, got, err, w)
			}
		}
	}

	if _, err := h.Entry(len(want)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Entry() past end error = %v", err)
	}
}

func TestHistory_LoadUnprefixed(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)
	if err := os.WriteFile(path, []byte("(x)\nC:quit\n\nK:y\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	h := NewHistory(path)
	if err := h.Load(); err != nil {
		t.Fatal(err)
	}

	want := []HistoryEntry{{"(x)", modeCheck}, {"quit", modeCtrl}, {"y", modeCheck}}
	for i, w := range want {
		if got, _ := h.Entry(i); got != w {
			t.Errorf("Entry(%d) = %+v, want %+v", i, got, w)
		}
	}
}

func TestHistory_InMemory(t *testing.T) {
	h := NewHistory("")

	if err := h.Load(); err != nil {
		t.Fatal(err)
	}

	if err := h.Write("atom", modeCheck); err != nil {
		t.Fatal(err)
	}

	if h.Len() != 1 {
		t.Errorf("Len() = %d, want 1", h.Len())
	}
}
