// Package diag describes why a parse failed and what would have fixed it.
//
// A failed parser attaches a [Kind] to its failure. Kinds form a small closed
// taxonomy of leaf expectations (a character, a digit, a letter, white space,
// a string, any of a set, or any input) and two wrappers recording which side
// of a delimited construct broke. [Translator] turns a kind into a sentence,
// and [Suggest] searches the kind's finite search space for the nearest
// replacement of the offending input:
//
//	k := diag.BetweenRightError{Cause: diag.CharError{Expected: ')'}}
//	diag.Translate(k)
//	// Hey, you're missing the closing delimiter, character ' ) '
//	diag.Suggest(k, "]").Candidate
//	// )
package diag
