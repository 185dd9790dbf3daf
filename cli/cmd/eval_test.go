package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestEval(t *testing.T) {
	tests := []struct {
		name    string
		expr    []string
		stdin   string
		want    string
		wantErr error
	}{
		{name: "joined", expr: []string{"2", "*", "(3", "+", "4)"}, want: "14\n"},
		{name: "single", expr: []string{"10 - 2 - 3"}, want: "5\n"},
		{name: "stdin", expr: []string{"-"}, stdin: "8 / 2 / 2\n", want: "2\n"},
		{
			name:    "missing_operand",
			expr:    []string{"1 +"},
			want:    `<expr>:1:4: error:`,
			wantErr: ErrEvalFailed,
		},
		{
			name:    "stdin_failure",
			expr:    []string{"-"},
			stdin:   "(1 + 2]",
			want:    `<stdin>:1:7: error:`,
			wantErr: ErrEvalFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withStdin(t, tt.stdin)

			var out bytes.Buffer

			e := Eval{Metric: MetricLevenshtein, Expr: tt.expr}

			err := e.Run(context.Background(), &out)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
			}

			if tt.wantErr == nil && out.String() != tt.want {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}

			if tt.wantErr != nil && !strings.Contains(out.String(), tt.want) {
				t.Errorf("output is missing %q:\n%s", tt.want, out.String())
			}
		})
	}
}
