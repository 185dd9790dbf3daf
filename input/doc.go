// Package input provides [Slice], the immutable character window every parser
// consumes.
//
// A Slice is created once per parse with [Make] and then only derived from:
//
//	s := input.Make("helloworld")
//	s.Seek(5).String()        // "world"
//	s.Peek(5).String()        // "hello"
//	s.Substring(2, 4).String() // "ll"
//
// Derived slices share the backing buffer; only [Slice.Concat] and [Concat]
// allocate. Misuse that indicates a broken grammar, such as taking the head of
// an empty slice, panics with one of the package's sentinel errors.
package input
