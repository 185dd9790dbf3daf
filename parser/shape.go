package parser

import "github.com/ardnew/mend/diag"

// FResult runs p and replaces its result with x.
func FResult[T, U any](p Parser[T], x U) Parser[U] {
	return Bind(p, func(T) Parser[U] { return Result(x) })
}

// Left runs p then q and keeps the result of p.
func Left[T, U any](p Parser[T], q Parser[U]) Parser[T] {
	return Seq(p, q, func(x T, _ U) T { return x })
}

// Right runs p then q and keeps the result of q.
func Right[T, U any](p Parser[T], q Parser[U]) Parser[U] {
	return Seq(p, q, func(_ T, y U) U { return y })
}

// Between runs opening, p and closing in sequence and keeps the result of p.
// A failure of either delimiter is reported with a [diag.BetweenLeftError] or
// [diag.BetweenRightError] wrapping the delimiter's own cause.
func Between[O, C, T any](opening Parser[O], closing Parser[C], p Parser[T]) Parser[T] {
	left := recause(opening, func(k diag.Kind) diag.Kind {
		return diag.BetweenLeftError{Cause: k}
	})
	right := recause(closing, func(k diag.Kind) diag.Kind {
		return diag.BetweenRightError{Cause: k}
	})

	return Right(left, Left(p, right))
}
