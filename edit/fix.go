package edit

import (
	"log/slog"

	"github.com/ardnew/mend/pkg"
)

// ErrEmptySpace is raised with panic when [MinFix] is given no candidates.
var ErrEmptySpace = pkg.NewError("empty search space")

// MinFix returns the candidate in space closest to input under dist, together
// with its distance plus prevEdit, the cost already spent by an enclosing
// repair attempt.
//
// The scan stops at the first candidate within distance 1, which cannot be
// improved upon by a single-character repair. Otherwise the first of several
// equally close candidates wins. A nil dist selects [Levenshtein].
//
// MinFix panics with [ErrEmptySpace] if space is empty.
func MinFix(input string, space []string, dist Distance, prevEdit int) (int, string) {
	if len(space) == 0 {
		panic(ErrEmptySpace.With(slog.String("input", input)))
	}

	if dist == nil {
		dist = Levenshtein
	}

	best, closest := dist(input, space[0]), space[0]

	for _, candidate := range space[1:] {
		if best <= 1 {
			break
		}

		if d := dist(input, candidate); d < best {
			best, closest = d, candidate
		}
	}

	return best + prevEdit, closest
}
