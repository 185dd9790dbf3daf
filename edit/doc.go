// Package edit implements the string distances used to rank candidate fixes
// for a failed parse.
//
// [Levenshtein] is the Wagner–Fischer edit distance with unit costs. [LCS]
// and its derived forms [MetricLCS] and [LCSDistance] measure distance through
// the longest common subsequence instead. [MinFix] searches a finite candidate
// space for the closest replacement:
//
//	d, fix := edit.MinFix("x", []string{"0", "1", "2"}, edit.Levenshtein, 0)
//	// d == 1, fix == "0"
package edit
