package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/mend/cli/report"
	"github.com/ardnew/mend/grammar"
)

func TestCheck_Text(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.txt", "(define  (sq x)\n (* x x))")
	bad := writeFile(t, dir, "bad.txt", "(a\n  b]")

	tests := []struct {
		name    string
		sources []string
		wantErr error
		want    []string
	}{
		{
			name:    "success",
			sources: []string{good},
			want:    []string{good + ": (define (sq x) (* x x))"},
		},
		{
			name:    "failure",
			sources: []string{good, bad},
			wantErr: ErrCheckFailed,
			want: []string{
				good + ": (define (sq x) (* x x))",
				bad + ":2:4: error:",
				` 2 |   b]`,
				`   = fix: replace "]" with ")"`,
			},
		},
		{
			name:    "missing",
			sources: []string{dir + "/missing.txt"},
			wantErr: ErrReadSource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			c := Check{Grammar: grammar.Default, Metric: MetricLevenshtein, Output: "text", Source: tt.sources}

			err := c.Run(context.Background(), &out)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
			}

			for _, w := range tt.want {
				if !strings.Contains(out.String(), w) {
					t.Errorf("output is missing %q:\n%s", w, out.String())
				}
			}
		})
	}
}

func TestCheck_UnknownGrammar(t *testing.T) {
	c := Check{Grammar: "arth", Output: "text", Source: []string{"-"}}

	err := c.Run(context.Background(), &bytes.Buffer{})
	if !errors.Is(err, grammar.ErrUnknownGrammar) {
		t.Errorf("Run() error = %v, want %v", err, grammar.ErrUnknownGrammar)
	}
}

func TestCheck_YAML(t *testing.T) {
	withStdin(t, "1 + (2")

	var out bytes.Buffer

	c := Check{Grammar: "arith", Metric: MetricLCS, Output: "yaml", Source: []string{"-", "-"}}
	if err := c.Run(context.Background(), &out); !errors.Is(err, ErrCheckFailed) {
		t.Fatalf("Run() error = %v", err)
	}

	var r report.Result
	if err := yaml.Unmarshal(out.Bytes(), &r); err != nil {
		t.Fatalf("output is not one YAML result: %v\n%s", err, out.String())
	}

	if r.Source != report.Stdin || r.OK || r.Problem == nil {
		t.Fatalf("result = %+v", r)
	}

	if r.Problem.Fix != ")" || r.Problem.Pos != 6 {
		t.Errorf("problem = %+v", *r.Problem)
	}
}

func TestCheck_Watch(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "watched.txt", "(a b)")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out syncBuffer

	ready := make(chan struct{})
	done := make(chan error, 1)

	c := Check{
		Grammar: grammar.Default,
		Output:  "text",
		Watch:   true,
		Source:  []string{path},
		ready:   func() { close(ready) },
	}

	go func() { done <- c.Run(ctx, &out) }()

	select {
	case <-ready:
	case err := <-done:
		t.Fatalf("Run() returned before watching: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watch")
	}

	if err := os.WriteFile(path, []byte("(a b"), 0o600); err != nil {
		t.Fatal(err)
	}

	want := path + ":1:5: error:"

	deadline := time.Now().Add(5 * time.Second)
	for !strings.Contains(out.String(), want) {
		if time.Now().After(deadline) {
			t.Fatalf("change was not checked again; output:\n%s", out.String())
		}

		time.Sleep(10 * time.Millisecond)
	}

	cancel()

	if err := <-done; err != nil {
		t.Errorf("Run() error = %v after cancel", err)
	}
}

func TestCheck_WatchStdin(t *testing.T) {
	withStdin(t, "x")

	c := Check{Grammar: grammar.Default, Output: "text", Watch: true, Source: []string{"-"}}

	err := c.Run(context.Background(), &bytes.Buffer{})
	if !errors.Is(err, ErrNoWatchable) {
		t.Errorf("Run() error = %v, want %v", err, ErrNoWatchable)
	}
}
