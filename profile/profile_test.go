package profile

import (
	"slices"
	"testing"
)

func TestProfiler_EmptyMode(t *testing.T) {
	s := Profiler{Dir: t.TempDir()}.Start()
	if _, ok := s.(ignore); !ok {
		t.Fatalf("Start() = %T, want no-op", s)
	}

	s.Stop()
	s.Stop()
}

func TestProfiler_UnknownMode(t *testing.T) {
	s := Profiler{Mode: "bogus", Dir: t.TempDir()}.Start()
	if _, ok := s.(ignore); !ok {
		t.Fatalf("Start() = %T, want no-op", s)
	}

	s.Stop()
}

func TestModes(t *testing.T) {
	modes := Modes()

	if !slices.IsSorted(modes) {
		t.Errorf("Modes() = %v, want sorted", modes)
	}

	if Enabled() != (len(modes) > 0) {
		t.Errorf("Enabled() = %v with %d modes", Enabled(), len(modes))
	}
}
