package cmd

import (
	"github.com/ardnew/mend/diag"
	"github.com/ardnew/mend/edit"
)

// Metric names the distance used to rank candidate fixes.
type Metric string

const (
	MetricLevenshtein Metric = "levenshtein"
	MetricLCS         Metric = "lcs"
)

// options returns the fix search options for m. Levenshtein is what every
// kind ranks with already, so it needs none.
func (m Metric) options(prevEdit int) []diag.Option {
	var opts []diag.Option

	if m == MetricLCS {
		opts = append(opts, diag.WithDistance(edit.LCSDistance))
	}

	if prevEdit > 0 {
		opts = append(opts, diag.WithPrevEdit(prevEdit))
	}

	return opts
}
