package parser

import (
	"sync"

	"github.com/ardnew/mend/diag"
	"github.com/ardnew/mend/input"
)

// Result succeeds with v without consuming input.
func Result[T any](v T) Parser[T] {
	return func(in input.Slice) Outcome[T] {
		return succeed(in, v, nil)
	}
}

// Zero fails with msg without consuming input.
func Zero[T any](msg string) Parser[T] {
	return func(in input.Slice) Outcome[T] {
		return fail[T](in, &Failure{Pos: in.Start(), Msg: msg}, nil)
	}
}

// Item consumes one character and returns it as a slice of length one.
// On empty input it fails critically: there is nothing left for an
// alternative to match either.
func Item() Parser[input.Slice] {
	return item
}

func item(in input.Slice) Outcome[input.Slice] {
	if in.IsEmpty() {
		return fail[input.Slice](in, &Failure{
			Pos:      in.Start(),
			Msg:      "no more characters",
			Critical: true,
			Cause:    diag.ItemError{},
		}, nil)
	}

	return succeed(in.Tail(), in.Head(), nil)
}

// Bind runs p and then the parser f builds from its result on the remaining
// input.
//
// If either stage fails, Bind backtracks: the failure is anchored at the
// original input while the position, message, criticality and cause of the
// failing stage are kept. No parser built from Bind leaks partial
// consumption.
func Bind[T, U any](p Parser[T], f func(T) Parser[U]) Parser[U] {
	return func(in input.Slice) Outcome[U] {
		r := p(in)
		if !r.OK() {
			return fail[U](in, r.Fail, r.Far)
		}

		o := f(r.Value)(r.Rest)
		far := further(r.Far, o.Far)

		if !o.OK() {
			return fail[U](in, o.Fail, far)
		}

		o.Far = far

		return o
	}
}

// Seq runs p then q and combines their results with f.
func Seq[T, U, V any](p Parser[T], q Parser[U], f func(T, U) V) Parser[V] {
	return Bind(p, func(x T) Parser[V] {
		return Bind(q, func(y U) Parser[V] {
			return Result(f(x, y))
		})
	})
}

// Map applies f to the result of p when p succeeds.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(in input.Slice) Outcome[U] {
		o := p(in)
		if !o.OK() {
			return Outcome[U]{Rest: o.Rest, Fail: o.Fail, Far: o.Far}
		}

		return succeed(o.Rest, f(o.Value), o.Far)
	}
}

// Lazy defers building a parser until it is first applied, which lets a
// grammar refer to itself.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	get := sync.OnceValue(build)

	return func(in input.Slice) Outcome[T] {
		return get()(in)
	}
}

// Expect marks a point of no return. A non-critical failure of p becomes a
// critical failure with message msg, keeping its position and cause. Critical
// failures and successes pass through unchanged.
func Expect[T any](p Parser[T], msg string) Parser[T] {
	return func(in input.Slice) Outcome[T] {
		o := p(in)
		if o.OK() || o.Fail.Critical {
			return o
		}

		return fail[T](in, &Failure{
			Pos:      o.Fail.Pos,
			Msg:      msg,
			Critical: true,
			Cause:    o.Fail.Cause,
		}, o.Far)
	}
}

// Label replaces the cause of any failure of p with k.
func Label[T any](p Parser[T], k diag.Kind) Parser[T] {
	return recause(p, func(diag.Kind) diag.Kind { return k })
}

// recause rewrites the cause of any failure of p with fn.
func recause[T any](p Parser[T], fn func(diag.Kind) diag.Kind) Parser[T] {
	return func(in input.Slice) Outcome[T] {
		o := p(in)
		if o.OK() {
			return o
		}

		far := o.Far
		if far == o.Fail {
			far = nil
		}

		return fail[T](o.Rest, &Failure{
			Pos:      o.Fail.Pos,
			Msg:      o.Fail.Msg,
			Critical: o.Fail.Critical,
			Cause:    fn(o.Fail.Cause),
		}, far)
	}
}
