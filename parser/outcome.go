package parser

import (
	"strconv"

	"github.com/ardnew/mend/diag"
	"github.com/ardnew/mend/input"
	"github.com/ardnew/mend/pkg"
)

// Programmer errors raised with panic. They indicate a malformed grammar, not
// malformed input.
var (
	ErrInfiniteLoop   = pkg.NewError("parser succeeded without consuming input inside a loop")
	ErrNoAlternatives = pkg.NewError("choice requires at least one parser")
)

// ErrParse is returned by [Parse] when input does not match a grammar.
var ErrParse = pkg.NewError("parse error")

// Parser consumes a prefix of its input and reports the [Outcome].
// Parsers are pure: the same input always yields the same outcome.
type Parser[T any] func(input.Slice) Outcome[T]

// EOFMark is the value produced by [EOF].
type EOFMark struct{}

// Failure describes why a parser did not match.
//
// A Failure is never modified once created; combinators that need to change
// one build a new value.
type Failure struct {
	// Cause describes what was expected at Pos. It may be nil.
	Cause diag.Kind
	// Msg is a short human-readable reason.
	Msg string
	// Pos is the offset in the backing buffer where the mismatch occurred.
	Pos int
	// Critical failures stop [Choice] from trying further alternatives.
	Critical bool
}

// Error implements the error interface.
func (f *Failure) Error() string {
	msg := f.Msg
	if msg == "" && f.Cause != nil {
		msg = "expected " + f.Cause.String()
	}

	if f.Critical {
		msg += " (critical)"
	}

	return "offset " + strconv.Itoa(f.Pos) + ": " + msg
}

// Outcome is the result of applying a [Parser].
//
// On success Fail is nil, Value holds the result and Rest the unconsumed
// input. On failure Fail is set and Rest is the input the parser was given,
// unmodified. In both cases Far is the furthest failure observed while
// producing the outcome, including failures that were recovered from; it is
// threaded through the combinators instead of being recorded on the input.
type Outcome[T any] struct {
	Value T
	Fail  *Failure
	Far   *Failure
	Rest  input.Slice
}

// OK reports whether the outcome is a success.
func (o Outcome[T]) OK() bool { return o.Fail == nil }

// Report returns the failure that best explains o: the furthest of Fail and
// Far, preferring Fail when both are at the same offset. It returns nil for a
// success that recovered from no failures.
func (o Outcome[T]) Report() *Failure {
	if o.Fail != nil && o.Far != nil && o.Far.Pos > o.Fail.Pos {
		return o.Far
	}

	if o.Fail != nil {
		return o.Fail
	}

	return o.Far
}

// further returns whichever of a and b is at the greater offset; b wins ties.
func further(a, b *Failure) *Failure {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case b.Pos >= a.Pos:
		return b
	default:
		return a
	}
}

func succeed[T any](rest input.Slice, v T, far *Failure) Outcome[T] {
	return Outcome[T]{Rest: rest, Value: v, Far: far}
}

// fail returns a failure outcome anchored at in.
func fail[T any](in input.Slice, f *Failure, far *Failure) Outcome[T] {
	return Outcome[T]{Rest: in, Fail: f, Far: further(far, f)}
}
