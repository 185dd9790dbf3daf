package parser

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/ardnew/mend/diag"
	"github.com/ardnew/mend/input"
)

const (
	lowerLetters = "abcdefghijklmnopqrstuvwxyz"
	upperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	decimal      = "0123456789"
	blanks       = " \t"
)

// Sat consumes one character that is a member of class. Any other character
// fails non-critically at its own position with a [diag.SatError] listing the
// class.
func Sat(class string) Parser[input.Slice] {
	members := make([]string, 0, len(class))
	for _, r := range class {
		members = append(members, string(r))
	}

	return sat(class, diag.SatError{Candidates: members})
}

func sat(class string, k diag.Kind) Parser[input.Slice] {
	check := func(c input.Slice) Parser[input.Slice] {
		return func(rest input.Slice) Outcome[input.Slice] {
			r, _ := c.Rune()
			if strings.ContainsRune(class, r) {
				return succeed(rest, c, nil)
			}

			return fail[input.Slice](rest, &Failure{
				Pos: c.Start(),
				Msg: "unexpected " + strconv.QuoteRune(r),
			}, nil)
		}
	}

	return Label(Bind(Item(), check), k)
}

// Char consumes the character c.
func Char(c rune) Parser[input.Slice] {
	return sat(string(c), diag.CharError{Expected: c})
}

// Digit consumes one decimal digit.
func Digit() Parser[input.Slice] {
	return sat(decimal, diag.DigitError{})
}

// Letter consumes one ASCII letter of either case.
func Letter() Parser[input.Slice] {
	return sat(lowerLetters+upperLetters, diag.LetterError{Case: diag.AnyCase})
}

// Upper consumes one uppercase ASCII letter. Every failure, whether or not the
// offending character is a letter, is reported as an uppercase
// [diag.LetterError].
func Upper() Parser[input.Slice] {
	return sat(upperLetters, diag.LetterError{Case: diag.UpperCase})
}

// Lower consumes one lowercase ASCII letter. Every failure, whether or not the
// offending character is a letter, is reported as a lowercase
// [diag.LetterError].
func Lower() Parser[input.Slice] {
	return sat(lowerLetters, diag.LetterError{Case: diag.LowerCase})
}

// Str consumes the characters of s in order and returns the consumed window.
// A mismatch anywhere fails at the offending character with a
// [diag.StringError] for the whole of s and consumes nothing.
func Str(s string) Parser[input.Slice] {
	chars := make([]Parser[input.Slice], 0, len(s))
	for _, r := range s {
		chars = append(chars, Char(r))
	}

	k := diag.StringError{Expected: s}

	return func(in input.Slice) Outcome[input.Slice] {
		rest := in

		for _, c := range chars {
			o := c(rest)
			if !o.OK() {
				return fail[input.Slice](in, &Failure{
					Pos:      o.Fail.Pos,
					Msg:      o.Fail.Msg,
					Critical: o.Fail.Critical,
					Cause:    k,
				}, nil)
			}

			rest = o.Rest
		}

		return succeed(rest, in.Substring(0, rest.Start()-in.Start()), nil)
	}
}

// EOF succeeds without consuming input if and only if in is at the true end
// of input.
func EOF() Parser[EOFMark] {
	return eof
}

func eof(in input.Slice) Outcome[EOFMark] {
	if in.IsEOF() {
		return succeed(in, EOFMark{}, nil)
	}

	msg := "expected end of input"
	if r, ok := in.Rune(); ok {
		msg = "unexpected " + strconv.QuoteRune(r)
	}

	return fail[EOFMark](in, &Failure{
		Pos:   in.Start(),
		Msg:   msg,
		Cause: diag.EOFError{},
	}, nil)
}

// NL consumes a line break, either "\n" or "\r\n".
func NL() Parser[input.Slice] {
	return Choice(Str("\n"), Str("\r\n"))
}

// blank consumes one space, tab or line break.
func blank() Parser[input.Slice] {
	return Choice(Sat(blanks), NL())
}

// WS consumes zero or more spaces, tabs and line breaks and returns them as a
// single slice. It never fails.
func WS() Parser[input.Slice] {
	many := Many(blank())

	return func(in input.Slice) Outcome[input.Slice] {
		o := many(in)
		if len(o.Value) == 0 {
			return succeed(o.Rest, in.Peek(0), o.Far)
		}

		return succeed(o.Rest, input.Concat(o.Value...), o.Far)
	}
}

// WS1 is like [WS] but requires at least one character of white space.
func WS1() Parser[input.Slice] {
	return Label(
		Map(Many1(blank()), func(ws []input.Slice) input.Slice {
			return input.Concat(ws...)
		}),
		diag.WhitespaceError{},
	)
}

// StrSat consumes the shortest member of candidates found at the current
// position. Candidates of equal length are compared in lexicographic order.
// If none match, StrSat fails non-critically with a [diag.SatError] listing
// every candidate, shortest first.
func StrSat(candidates []string) Parser[input.Slice] {
	sorted := slices.Clone(candidates)
	slices.SortFunc(sorted, func(a, b string) int {
		return cmp.Or(
			cmp.Compare(len([]rune(a)), len([]rune(b))),
			cmp.Compare(a, b),
		)
	})
	sorted = slices.Compact(sorted)

	groups := make(map[int][]string)
	sizes := make([]int, 0)

	for _, c := range sorted {
		n := len([]rune(c))
		if _, ok := groups[n]; !ok {
			sizes = append(sizes, n)
		}

		groups[n] = append(groups[n], c)
	}

	k := diag.SatError{Candidates: sorted}

	return func(in input.Slice) Outcome[input.Slice] {
		for _, n := range sizes {
			w := in.Peek(n)
			if w.Len() < n {
				break
			}

			if _, ok := slices.BinarySearch(groups[n], w.String()); ok {
				return succeed(in.Seek(n), w, nil)
			}
		}

		msg := "no candidate matches"
		if r, ok := in.Rune(); ok {
			msg = "unexpected " + strconv.QuoteRune(r)
		}

		return fail[input.Slice](in, &Failure{
			Pos:   in.Start(),
			Msg:   msg,
			Cause: k,
		}, nil)
	}
}
