package grammar

import (
	"strings"

	"github.com/ardnew/mend/diag"
	"github.com/ardnew/mend/input"
	"github.com/ardnew/mend/parser"
)

// atomChars are the characters an s-expression atom may contain.
const atomChars = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	"+-*/<>=!?_.:&%$#@^~"

// Node is an s-expression: an atom or a list of nodes.
type Node struct {
	Atom   string
	List   []Node
	IsList bool
}

// String renders n in canonical form: atoms verbatim and lists parenthesized
// with single spaces between elements.
func (n Node) String() string {
	if !n.IsList {
		return n.Atom
	}

	var sb strings.Builder

	sb.WriteByte('(')

	for i, child := range n.List {
		if i > 0 {
			sb.WriteByte(' ')
		}

		sb.WriteString(child.String())
	}

	sb.WriteByte(')')

	return sb.String()
}

// SExpr returns a parser for exactly one s-expression surrounded by optional
// white space. Once a list is opened its closing parenthesis is required.
func SExpr() parser.Parser[Node] {
	var node parser.Parser[Node]

	atom := parser.Label(
		parser.Map(parser.Many1(parser.Sat(atomChars)), func(cs []input.Slice) Node {
			return Node{Atom: input.Concat(cs...).String()}
		}),
		diag.LetterError{},
	)

	list := parser.Between(
		parser.Left(parser.Char('('), parser.WS()),
		parser.Expect(parser.Char(')'), "unclosed list"),
		parser.Map(
			parser.Many(parser.Left(parser.Lazy(func() parser.Parser[Node] { return node }), parser.WS())),
			func(ns []Node) Node { return Node{List: ns, IsList: true} },
		),
	)

	node = parser.Choice(atom, list)

	return parser.Left(parser.Right(parser.WS(), parser.Left(node, parser.WS())), parser.EOF())
}
