package grammar

import (
	"github.com/ardnew/mend/input"
	"github.com/ardnew/mend/parser"
)

// Keywords are the reserved words recognized by [Keyword].
var Keywords = []string{"cond", "define", "if", "lambda", "let", "quote"}

// Ident returns a parser for a single identifier: a letter followed by
// letters, digits and underscores.
func Ident() parser.Parser[string] {
	ident := parser.Seq(
		parser.Letter(),
		parser.Many(parser.Choices(parser.Letter(), parser.Digit(), parser.Char('_'))),
		func(first input.Slice, rest []input.Slice) string {
			return input.Concat(append([]input.Slice{first}, rest...)...).String()
		},
	)

	return parser.Left(parser.Right(parser.WS(), ident), parser.Right(parser.WS(), parser.EOF()))
}

// Keyword returns a parser for exactly one of [Keywords].
func Keyword() parser.Parser[string] {
	kw := parser.Map(parser.StrSat(Keywords), input.Slice.String)

	return parser.Left(parser.Right(parser.WS(), kw), parser.Right(parser.WS(), parser.EOF()))
}
