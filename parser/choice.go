package parser

import "github.com/ardnew/mend/input"

// Choice tries p1 and, if it fails non-critically, p2 on the same input.
//
// A critical failure of p1 is returned as is and p2 is never applied. When
// both alternatives fail, the failure that reached further wins; a tie, or a
// critical failure of p2, goes to p2.
func Choice[T any](p1, p2 Parser[T]) Parser[T] {
	return func(in input.Slice) Outcome[T] {
		o1 := p1(in)
		if o1.OK() || o1.Fail.Critical {
			return o1
		}

		o2 := p2(in)
		far := further(o1.Far, o2.Far)

		if o2.OK() {
			o2.Far = far

			return o2
		}

		if o2.Fail.Critical || o2.Fail.Pos >= o1.Fail.Pos {
			return fail[T](in, o2.Fail, far)
		}

		return fail[T](in, o1.Fail, far)
	}
}

// Choices folds [Choice] over ps from the right, so the first alternative is
// tried first. It panics with [ErrNoAlternatives] if ps is empty.
func Choices[T any](ps ...Parser[T]) Parser[T] {
	if len(ps) == 0 {
		panic(ErrNoAlternatives)
	}

	p := ps[len(ps)-1]
	for i := len(ps) - 2; i >= 0; i-- {
		p = Choice(ps[i], p)
	}

	return p
}
