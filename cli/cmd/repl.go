package cmd

import (
	"context"
	"io"

	"github.com/ardnew/mend/cli/cmd/repl"
	"github.com/ardnew/mend/grammar"
	"github.com/ardnew/mend/log"
)

// Repl checks input interactively as it is typed.
type Repl struct {
	Grammar string `default:"${grammarDefault}" help:"Grammar to parse with (${grammarNames})." short:"g"`
	Metric  Metric `default:"levenshtein"       help:"Distance used to rank fixes."             enum:"levenshtein,lcs"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context, _ io.Writer) error {
	g, err := grammar.Lookup(r.Grammar)
	if err != nil {
		return err
	}

	var cacheDir string
	if ktx := kongContextFrom(ctx); ktx != nil {
		cacheDir = ktx.Model.Vars()[CacheIdentifier]
	}

	return repl.Run(ctx, g, cacheDir, log.Default(), r.Metric.options(0)...)
}
