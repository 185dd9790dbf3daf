package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ardnew/mend/cli/report"
	"github.com/ardnew/mend/grammar"
	"github.com/ardnew/mend/log"
)

// Eval evaluates an arithmetic expression.
type Eval struct {
	Metric Metric   `default:"levenshtein" help:"Distance used to rank fixes." enum:"levenshtein,lcs"`
	Expr   []string `                      help:"Expression, or '-' to read it from stdin." arg:"" name:"expr"`
}

// exprSource names command-line expressions in diagnostics.
const exprSource = "<expr>"

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context, out io.Writer) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	name, text := exprSource, strings.Join(e.Expr, " ")
	if text == stdinSource {
		name, text, err = readSource(ctx, stdinSource)
		if err != nil {
			return err
		}
	}

	v, err := grammar.Eval(text, e.Metric.options(0)...)
	if err != nil {
		r, ok := report.Make(name, "arith", "", err)
		if !ok {
			return err
		}

		if werr := report.Write(out, report.FormatText, r); werr != nil {
			return ErrWriteOutput.Wrap(werr)
		}

		return ErrEvalFailed.With(slog.String("source", name))
	}

	log.DebugContext(ctx, "evaluated expression",
		slog.String("source", name),
		slog.Any("value", v),
	)

	_, err = fmt.Fprintln(out, v)
	if err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
