package grammar

import (
	"log/slog"

	"github.com/expr-lang/expr"

	"github.com/ardnew/mend/diag"
	"github.com/ardnew/mend/input"
	"github.com/ardnew/mend/parser"
	"github.com/ardnew/mend/pkg"
)

// ErrEval is returned when a well-formed arithmetic expression cannot be
// evaluated.
var ErrEval = pkg.NewError("evaluate expression")

// Arith returns a parser for integer arithmetic with + - * /, parentheses and
// unary minus. The result is the expression in canonical, fully
// parenthesized form, for example "((1 + 2) * (-3))".
func Arith() parser.Parser[string] {
	var sum parser.Parser[string]

	ws := parser.WS()
	token := func(p parser.Parser[input.Slice]) parser.Parser[string] {
		return parser.Left(parser.Map(p, input.Slice.String), ws)
	}

	number := parser.Label(
		parser.Map(parser.Many1(parser.Digit()), func(ds []input.Slice) string {
			return input.Concat(ds...).String()
		}),
		diag.DigitError{},
	)

	var factor parser.Parser[string]

	paren := parser.Between(
		token(parser.Char('(')),
		parser.Expect(parser.Char(')'), "unbalanced parenthesis"),
		parser.Lazy(func() parser.Parser[string] { return sum }),
	)

	negate := parser.Map(
		parser.Right(token(parser.Char('-')), parser.Lazy(func() parser.Parser[string] { return factor })),
		func(x string) string { return "(-" + x + ")" },
	)

	factor = parser.Left(operand(parser.Choices(number, paren, negate)), ws)

	term := chain(factor, token(parser.Sat("*/")))
	sum = chain(term, token(parser.Sat("+-")))

	return parser.Left(parser.Right(ws, sum), parser.EOF())
}

// operand reports any failure of p that made no progress as a missing digit.
// Failures further in, such as an unbalanced parenthesis, keep their cause.
func operand(p parser.Parser[string]) parser.Parser[string] {
	return func(in input.Slice) parser.Outcome[string] {
		o := p(in)
		if o.OK() || o.Fail.Pos != in.Start() {
			return o
		}

		f := *o.Fail
		f.Cause = diag.DigitError{}

		if o.Far == nil || o.Far.Pos <= f.Pos {
			o.Far = &f
		}

		o.Fail = &f

		return o
	}
}

// chain parses p (op p)* and folds it to the left.
func chain(p, op parser.Parser[string]) parser.Parser[string] {
	type step struct{ op, rhs string }

	rest := parser.Many(parser.Seq(op, p, func(o, r string) step {
		return step{op: o, rhs: r}
	}))

	return parser.Seq(p, rest, func(lhs string, steps []step) string {
		for _, s := range steps {
			lhs = "(" + lhs + " " + s.op + " " + s.rhs + ")"
		}

		return lhs
	})
}

// Eval parses text with [Arith] and evaluates it. Parse failures are returned
// as from [parser.Parse].
func Eval(text string, opts ...diag.Option) (any, error) {
	canon, err := parser.Parse(Arith(), text, opts...)
	if err != nil {
		return nil, err
	}

	program, err := expr.Compile(canon)
	if err != nil {
		return nil, ErrEval.Wrap(err).With(slog.String("expr", canon))
	}

	out, err := expr.Run(program, nil)
	if err != nil {
		return nil, ErrEval.Wrap(err).With(slog.String("expr", canon))
	}

	return out, nil
}
