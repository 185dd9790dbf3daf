package repl

import "github.com/ardnew/mend/pkg"

// Sentinel errors.
var (
	ErrOutOfBounds = pkg.NewError("index out of range")
	ErrNoFix       = pkg.NewError("no failed input to fix")
)
