// Package grammar collects the sample grammars built from package parser.
//
// Each grammar parses a complete input and produces its canonical form:
//
//   - sexpr: one s-expression, rendered with single spaces between elements
//   - arith: integer arithmetic, rendered fully parenthesized and evaluated
//     with [Eval]
//   - ident: a single identifier
//   - keyword: one of [Keywords]
//
// Grammars are registered by name and retrieved with [Lookup]. An unknown
// name yields [ErrUnknownGrammar] along with the closest registered names.
package grammar
