package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/ardnew/mend/edit"
)

// Distance prints the edit distance between two strings.
type Distance struct {
	Metric string `default:"levenshtein" help:"Distance to compute." enum:"levenshtein,lcs,lcs-length,metric-lcs" short:"m"`
	A      string `                      help:"First string."  arg:""`
	B      string `                      help:"Second string." arg:""`
}

// Run executes the distance command.
func (d *Distance) Run(_ context.Context, out io.Writer) error {
	var s string

	switch d.Metric {
	case "lcs":
		s = strconv.Itoa(edit.LCSDistance(d.A, d.B))
	case "lcs-length":
		s = strconv.Itoa(edit.LCS(d.A, d.B))
	case "metric-lcs":
		s = strconv.FormatFloat(edit.MetricLCS(d.A, d.B), 'g', 4, 64)
	default:
		s = strconv.Itoa(edit.Levenshtein(d.A, d.B))
	}

	_, err := fmt.Fprintln(out, s)
	if err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
