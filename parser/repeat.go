package parser

import (
	"log/slog"

	"github.com/ardnew/mend/input"
)

// Many applies p until it fails or the input is exhausted and returns every
// result in order. Many never fails; a failure of p, critical or not, only ends
// the repetition.
//
// A success of p that consumes nothing would repeat forever, so Many panics
// with [ErrInfiniteLoop] instead.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(in input.Slice) Outcome[[]T] {
		var far *Failure

		values := make([]T, 0)
		rest := in

		for !rest.IsEmpty() {
			o := p(rest)
			far = further(far, o.Far)

			if !o.OK() {
				break
			}

			if o.Rest.Start() == rest.Start() {
				panic(ErrInfiniteLoop.With(slog.Int("offset", rest.Start())))
			}

			values = append(values, o.Value)
			rest = o.Rest
		}

		return succeed(rest, values, far)
	}
}

// Many1 is like [Many] but fails if the first application of p fails.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return Seq(p, Many(p), func(x T, xs []T) []T {
		return append([]T{x}, xs...)
	})
}

// SepBy parses zero or more occurrences of p separated by sep and returns the
// results of p. Like [Many] it never fails. A trailing separator is not
// consumed.
func SepBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	some := SepBy1(p, sep)

	return func(in input.Slice) Outcome[[]T] {
		o := some(in)
		if o.OK() {
			return o
		}

		return succeed(in, []T{}, o.Far)
	}
}

// SepBy1 is like [SepBy] but requires at least one occurrence of p.
func SepBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Seq(p, Many(Right(sep, p)), func(x T, xs []T) []T {
		return append([]T{x}, xs...)
	})
}
