package cmd

import "github.com/ardnew/mend/pkg"

var (
	ErrReadSource   = pkg.NewError("read source")
	ErrCheckFailed  = pkg.NewError("check failed")
	ErrEvalFailed   = pkg.NewError("evaluation failed")
	ErrWatch        = pkg.NewError("watch sources")
	ErrNoWatchable  = pkg.NewError("no files to watch (stdin cannot be watched)")
	ErrUnknownKind  = pkg.NewError("unknown error kind")
	ErrBadExpected  = pkg.NewError("invalid expected text")
	ErrYAMLMarshal  = pkg.NewError("marshal YAML")
	ErrWriteConfig  = pkg.NewError("write configuration file")
	ErrFileExists   = pkg.NewError("file exists (use --force to overwrite)")
	ErrWriteOutput  = pkg.NewError("write output")
)
