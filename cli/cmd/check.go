package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/ardnew/mend/cli/report"
	"github.com/ardnew/mend/grammar"
	"github.com/ardnew/mend/log"
)

// Check parses sources with a grammar and reports each one's canonical form
// or the diagnostic of its failure.
type Check struct {
	Grammar string   `default:"${grammarDefault}" help:"Grammar to parse with (${grammarNames})."     short:"g"`
	Metric  Metric   `default:"levenshtein"       help:"Distance used to rank fixes."                 enum:"levenshtein,lcs"`
	Output  string   `default:"text"              help:"Output format."                               enum:"${reportFormats}" short:"o"`
	Watch   bool     `                            help:"Check again whenever a source file changes."  short:"w"`
	Source  []string `default:"-"                 help:"Source file(s) or '-' for stdin."             arg:"" name:"source"`

	ready func() // called once sources are watched
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context, out io.Writer) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	g, err := grammar.Lookup(c.Grammar)
	if err != nil {
		return err
	}

	sources := uniqueSources(c.Source)

	failed, err := c.checkAll(ctx, out, g, sources)
	if err != nil {
		return err
	}

	if c.Watch {
		return c.watch(ctx, out, g, sources)
	}

	if failed > 0 {
		return ErrCheckFailed.With(
			slog.String("grammar", g.Name),
			slog.Int("failed", failed),
			slog.Int("sources", len(sources)),
		)
	}

	return nil
}

// checkAll checks every source and writes the results together, so that
// structured output forms one document.
func (c *Check) checkAll(
	ctx context.Context,
	out io.Writer,
	g grammar.Grammar,
	sources []string,
) (failed int, err error) {
	rs := make([]report.Result, 0, len(sources))

	for _, src := range sources {
		r, err := c.check(ctx, g, src)
		if err != nil {
			return failed, err
		}

		if !r.OK {
			failed++
		}

		rs = append(rs, r)
	}

	err = report.Write(out, report.ParseFormat(c.Output), rs...)
	if err != nil {
		return failed, ErrWriteOutput.Wrap(err)
	}

	return failed, nil
}

func (c *Check) check(
	ctx context.Context,
	g grammar.Grammar,
	src string,
) (report.Result, error) {
	name, text, err := readSource(ctx, src)
	if err != nil {
		return report.Result{}, err
	}

	canon, err := g.Check(text, c.Metric.options(0)...)

	log.DebugContext(ctx, "checked source",
		slog.String("source", name),
		slog.String("grammar", g.Name),
		slog.Bool("ok", err == nil),
	)

	r, ok := report.Make(name, g.Name, canon, err)
	if !ok {
		return r, ErrCheckFailed.Wrap(err).With(slog.String("source", name))
	}

	return r, nil
}
