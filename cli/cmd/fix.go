package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/ardnew/mend/cli/report"
	"github.com/ardnew/mend/diag"
	"github.com/ardnew/mend/grammar"
)

// Fix searches the candidates of an error kind for the best replacement of
// some offending text.
type Fix struct {
	Kind     string `default:"char"        help:"Kind of error to repair."                      enum:"char,digit,letter,upper,lower,space,string,keyword" short:"k"`
	Expected string `                      help:"Expected text for the char and string kinds."                                                              short:"e"`
	Metric   Metric `default:"levenshtein" help:"Distance used to rank fixes."                  enum:"levenshtein,lcs"`
	PrevEdit int    `                      help:"Cost already spent by earlier repairs."`
	Actual   string `                      help:"Offending text."                               arg:""`
}

// Run executes the fix command.
func (f *Fix) Run(_ context.Context, out io.Writer) error {
	k, err := kindOf(f.Kind, f.Expected)
	if err != nil {
		return err
	}

	fix := diag.Suggest(k, f.Actual, f.Metric.options(f.PrevEdit)...)

	advice := report.Advice(report.Problem{Text: fix.Actual, Fix: fix.Candidate})

	_, err = fmt.Fprintf(out, "%s\n%s (distance %d)\n",
		strings.TrimSpace(diag.Translate(k)), advice, fix.Distance)
	if err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}

// kindOf returns the error kind named name.
func kindOf(name, expected string) (diag.Kind, error) {
	switch name {
	case "char":
		if utf8.RuneCountInString(expected) != 1 {
			return nil, ErrBadExpected.With(
				slog.String("kind", name),
				slog.String("expected", expected),
			)
		}

		r, _ := utf8.DecodeRuneInString(expected)

		return diag.CharError{Expected: r}, nil
	case "string":
		if expected == "" {
			return nil, ErrBadExpected.With(slog.String("kind", name))
		}

		return diag.StringError{Expected: expected}, nil
	case "digit":
		return diag.DigitError{}, nil
	case "letter":
		return diag.LetterError{}, nil
	case "upper":
		return diag.LetterError{Case: diag.UpperCase}, nil
	case "lower":
		return diag.LetterError{Case: diag.LowerCase}, nil
	case "space":
		return diag.WhitespaceError{}, nil
	case "keyword":
		return diag.SatError{Candidates: grammar.Keywords}, nil
	default:
		return nil, ErrUnknownKind.With(slog.String("kind", name))
	}
}
