package cmd

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ardnew/mend/grammar"
	"github.com/ardnew/mend/log"
)

// debounceInterval is how long a source must be quiet after a change before
// it is checked again.
const debounceInterval = 100 * time.Millisecond

// watch checks sources again as they change until ctx is done. The parent
// directory of each file is watched rather than the file itself, so that
// editors which replace a file on save are still followed.
func (c *Check) watch(
	ctx context.Context,
	out io.Writer,
	g grammar.Grammar,
	sources []string,
) error {
	files := slices.DeleteFunc(slices.Clone(sources), func(s string) bool {
		return s == stdinSource
	})
	if len(files) == 0 {
		return ErrWatch.Wrap(ErrNoWatchable)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return ErrWatch.Wrap(err)
	}
	defer w.Close()

	watched := make(map[string]string, len(files))

	for _, src := range files {
		abs, err := filepath.Abs(src)
		if err != nil {
			return ErrWatch.Wrap(err).With(slog.String("source", src))
		}

		if err := w.Add(filepath.Dir(abs)); err != nil {
			return ErrWatch.Wrap(err).With(slog.String("source", src))
		}

		watched[abs] = src
	}

	log.InfoContext(ctx, "watching sources",
		slog.String("grammar", g.Name),
		slog.Int("count", len(files)),
	)

	if c.ready != nil {
		c.ready()
	}

	pending := make(map[string]struct{})

	var settle <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			log.DebugContext(ctx, "watch stopped")

			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			src, ok := watched[filepath.Clean(ev.Name)]
			if !ok || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}

			log.TraceContext(ctx, "source changed",
				slog.String("source", src),
				slog.String("op", ev.Op.String()),
			)

			pending[src] = struct{}{}
			settle = time.After(debounceInterval)

		case <-settle:
			settle = nil

			changed := make([]string, 0, len(pending))
			for src := range pending {
				changed = append(changed, src)
			}

			clear(pending)
			slices.Sort(changed)

			if _, err := c.checkAll(ctx, out, g, changed); err != nil {
				log.WarnContext(ctx, "check failed", slog.Any("error", err))
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}

			log.WarnContext(ctx, "watch error", slog.Any("error", err))
		}
	}
}
