package diag

import (
	"github.com/ardnew/mend/edit"
)

// Fix is the closest replacement found for some offending input.
type Fix struct {
	// Actual is the offending input the fix replaces.
	Actual string
	// Candidate is the replacement that would satisfy the failed kind.
	Candidate string
	// Distance is the cost of the replacement plus any accumulated cost.
	Distance int
}

// Option configures [Suggest].
type Option func(suggest) suggest

type suggest struct {
	dist     edit.Distance
	prevEdit int
}

// WithDistance selects the distance used to rank candidates. By default each
// kind ranks with its own [Kind.ProposeFix].
func WithDistance(d edit.Distance) Option {
	return func(s suggest) suggest {
		s.dist = d

		return s
	}
}

// WithPrevEdit adds n, the cost already spent by an enclosing repair, to the
// reported distance.
func WithPrevEdit(n int) Option {
	return func(s suggest) suggest {
		s.prevEdit = n

		return s
	}
}

// Suggest searches the search space of k for the replacement of actual with
// minimum cost. Every kind has a non-empty search space, so Suggest always
// returns a candidate.
func Suggest(k Kind, actual string, opts ...Option) Fix {
	k = cause(k)

	var s suggest
	for _, opt := range opts {
		s = opt(s)
	}

	if s.dist == nil {
		s.dist = k.ProposeFix
	}

	d, candidate := edit.MinFix(actual, k.SearchSpace(), s.dist, s.prevEdit)

	return Fix{Actual: actual, Candidate: candidate, Distance: d}
}

// Width returns how many characters of offending input a fix for k should
// replace: the length of its longest candidate, and at least one.
func Width(k Kind) int {
	n := 1
	for _, c := range cause(k).SearchSpace() {
		n = max(n, len([]rune(c)))
	}

	return n
}
