package edit

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"flaw", "lawn", 2},
		{"(", ")", 1},
		{"gumbo", "gambol", 2},
		{"héllo", "hello", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			if got := Levenshtein(tt.a, tt.b); got != tt.want {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestLevenshtein_Metric(t *testing.T) {
	words := []string{"", "a", "ab", "kitten", "sitting", "saturday", "sunday", "(foo)"}

	for _, a := range words {
		if d := Levenshtein(a, a); d != 0 {
			t.Errorf("Levenshtein(%q, %q) = %d, want 0", a, a, d)
		}

		if d := Levenshtein("", a); d != len([]rune(a)) {
			t.Errorf("Levenshtein(\"\", %q) = %d, want %d", a, d, len(a))
		}

		for _, b := range words {
			if Levenshtein(a, b) != Levenshtein(b, a) {
				t.Errorf("Levenshtein not symmetric for %q, %q", a, b)
			}

			for _, c := range words {
				if Levenshtein(a, c) > Levenshtein(a, b)+Levenshtein(b, c) {
					t.Errorf("triangle inequality violated for %q, %q, %q", a, b, c)
				}
			}
		}
	}
}

func TestLCS(t *testing.T) {
	tests := []struct {
		a, b   string
		lcs    int
		dist   int
		metric float64
	}{
		{"", "", 0, 0, 0},
		{"abc", "abc", 3, 0, 0},
		{"ABCBDAB", "BDCABA", 4, 3, 1 - 4.0/7},
		{"abc", "xyz", 0, 3, 1},
		{"ab", "", 0, 2, 1},
	}

	for _, tt := range tests {
		if got := LCS(tt.a, tt.b); got != tt.lcs {
			t.Errorf("LCS(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.lcs)
		}

		if got := LCSDistance(tt.a, tt.b); got != tt.dist {
			t.Errorf("LCSDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.dist)
		}

		if got := MetricLCS(tt.a, tt.b); math.Abs(got-tt.metric) > 1e-9 {
			t.Errorf("MetricLCS(%q, %q) = %f, want %f", tt.a, tt.b, got, tt.metric)
		}
	}
}

func TestMinFix(t *testing.T) {
	digits := strings.Split("0123456789", "")

	tests := []struct {
		name     string
		input    string
		space    []string
		dist     Distance
		prev     int
		wantDist int
		wantFix  string
	}{
		{"exact match", "7", digits, Levenshtein, 0, 0, "7"},
		{"substitution", "x", digits, nil, 0, 1, "0"},
		{"accumulates", "x", digits, Levenshtein, 4, 5, "0"},
		{"closest string", "fo", []string{"quux", "bar", "foo"}, Levenshtein, 0, 1, "foo"},
		{"first wins ties", "zz", []string{"aa", "bb"}, Levenshtein, 0, 2, "aa"},
		{"lcs distance", "abd", []string{"xyz", "abcd"}, LCSDistance, 0, 1, "abcd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, fix := MinFix(tt.input, tt.space, tt.dist, tt.prev)
			if d != tt.wantDist || fix != tt.wantFix {
				t.Errorf("MinFix() = (%d, %q), want (%d, %q)",
					d, fix, tt.wantDist, tt.wantFix)
			}
		})
	}
}

func TestMinFix_EarlyExit(t *testing.T) {
	calls := 0
	counting := func(a, b string) int {
		calls++

		return Levenshtein(a, b)
	}

	space := []string{"zzzz", "b", "c", "d", "e"}

	d, fix := MinFix("a", space, counting, 0)
	if d != 1 || fix != "b" {
		t.Errorf("MinFix() = (%d, %q), want (1, \"b\")", d, fix)
	}

	if calls != 2 {
		t.Errorf("distance evaluated %d times, want 2", calls)
	}
}

func TestMinFix_EmptySpace(t *testing.T) {
	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, ErrEmptySpace) {
			t.Fatalf("expected panic with ErrEmptySpace, got %v", err)
		}
	}()

	MinFix("a", nil, nil, 0)
}

func BenchmarkLevenshtein(b *testing.B) {
	x := strings.Repeat("parser combinator ", 8)
	y := strings.Repeat("parsec combinators ", 8)

	for b.Loop() {
		Levenshtein(x, y)
	}
}

func BenchmarkLCS(b *testing.B) {
	x := strings.Repeat("parser combinator ", 8)
	y := strings.Repeat("parsec combinators ", 8)

	for b.Loop() {
		LCS(x, y)
	}
}
