package parser

import (
	"context"
	"log/slog"

	"github.com/ardnew/mend/input"
	"github.com/ardnew/mend/log"
)

// Debug traces every application of p to logger at [log.LevelTrace] under
// the given name. The outcome is returned unchanged. A zero [log.Logger], or
// one with a higher level, makes Debug free of output.
func Debug[T any](p Parser[T], name string, logger log.Logger) Parser[T] {
	return func(in input.Slice) Outcome[T] {
		if !logger.Enabled(context.TODO(), log.LevelTrace) {
			return p(in)
		}

		attrs := []slog.Attr{
			slog.String("parser", name),
			slog.Int("start", in.Start()),
		}

		logger.Trace("apply", attrs...)

		o := p(in)
		if o.OK() {
			logger.Trace("success", append(attrs,
				slog.Int("end", o.Rest.Start()),
				slog.Any("value", o.Value),
			)...)

			return o
		}

		logger.Trace("failure", append(attrs,
			slog.Int("pos", o.Fail.Pos),
			slog.String("msg", o.Fail.Msg),
			slog.Bool("critical", o.Fail.Critical),
		)...)

		return o
	}
}
