package parser

import (
	"log/slog"
	"strconv"

	"github.com/ardnew/mend/diag"
	"github.com/ardnew/mend/input"
)

// Diagnostic explains a [Failure] in terms of the source it occurred in.
type Diagnostic struct {
	// Kind is the cause of the failure; never nil.
	Kind diag.Kind
	// Fix is the closest replacement for Text found in the search space of
	// Kind.
	Fix diag.Fix
	// Msg is the failure's own message.
	Msg string
	// Sentence is the translated explanation of Kind.
	Sentence string
	// Text is the offending input at Pos, as wide as the widest candidate of
	// Kind.
	Text string
	// Source is the full line of input containing Pos.
	Source string
	// Pos is the offset of the failure; Line and Col locate it, 1-based.
	Pos, Line, Col int
	// Critical mirrors [Failure.Critical].
	Critical bool
}

// Diagnose builds the [Diagnostic] for f, which must have been produced by a
// parser applied to src or to a slice derived from it. opts tune the fix
// search as in [diag.Suggest].
func Diagnose(src input.Slice, f *Failure, opts ...diag.Option) Diagnostic {
	k := f.Cause
	if k == nil {
		k = diag.ItemError{}
	}

	text := src.Seek(f.Pos - src.Start()).Peek(diag.Width(k)).String()
	line, col := src.Position(f.Pos)

	return Diagnostic{
		Kind:     k,
		Fix:      diag.Suggest(k, text, opts...),
		Msg:      f.Msg,
		Sentence: diag.Translate(k),
		Text:     text,
		Source:   src.Line(line),
		Pos:      f.Pos,
		Line:     line,
		Col:      col,
		Critical: f.Critical,
	}
}

// Error implements the error interface as "line:col: sentence".
func (d Diagnostic) Error() string {
	return strconv.Itoa(d.Line) + ":" + strconv.Itoa(d.Col) + ": " + d.Sentence
}

// LogValue implements [slog.LogValuer].
func (d Diagnostic) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("line", d.Line),
		slog.Int("col", d.Col),
		slog.String("kind", d.Kind.String()),
		slog.String("msg", d.Msg),
		slog.String("fix", d.Fix.Candidate),
		slog.Bool("critical", d.Critical),
	)
}

// Run applies p to the whole of text.
func Run[T any](p Parser[T], text string) Outcome[T] {
	return p(input.Make(text))
}

// Parse applies p to text and returns its value. If p fails, the error wraps
// [ErrParse] and the [Diagnostic] of the furthest failure observed.
func Parse[T any](p Parser[T], text string, opts ...diag.Option) (T, error) {
	src := input.Make(text)

	o := p(src)
	if o.OK() {
		return o.Value, nil
	}

	d := Diagnose(src, o.Report(), opts...)

	return o.Value, ErrParse.Wrap(d)
}
