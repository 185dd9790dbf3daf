// Package parser is a backtracking parser-combinator engine over
// [input.Slice].
//
// A [Parser] is a pure function from a slice to an [Outcome]. Grammars are
// built by composing the primitives [Result], [Zero] and [Item] with [Bind],
// or with the derived combinators that are defined in terms of it:
//
//	list := parser.Between(
//		parser.Char('('),
//		parser.Expect(parser.Char(')'), "unclosed list"),
//		parser.SepBy(parser.Many1(parser.Letter()), parser.WS1()),
//	)
//
// # Backtracking
//
// A failed parser never consumes input: the Rest of a failed [Outcome] is
// always the slice the parser was given. [Choice] can therefore retry the
// next alternative from the same place.
//
// # Critical failures
//
// A [Failure] may be critical. [Item] fails critically when input is
// exhausted, and [Expect] upgrades an ordinary failure to a critical one to
// mark a point of no return. [Choice] returns a critical failure immediately
// without trying the remaining alternatives.
//
// # Diagnostics
//
// Each failure carries a [diag.Kind] describing what was expected. Every
// outcome also records the furthest failure seen while producing it, even one
// that was recovered from, and [Outcome.Report] selects the failure that best
// explains a parse. [Diagnose] turns it into a located [Diagnostic] with an
// English sentence and the closest fix from the kind's search space.
//
// Parsing is single-threaded and synchronous; parsers hold no mutable state
// and may be shared freely between goroutines.
package parser
