package edit

// Distance measures how far apart two strings are. Smaller is closer and zero
// means equal.
type Distance func(a, b string) int

// Levenshtein returns the minimum number of single-character insertions,
// deletions and substitutions needed to turn a into b.
//
// It fills the Wagner–Fischer table T[j][i] over b-index j and a-index i, with
// T[0][i] = i and T[j][0] = j. Only two rows are kept live.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			sub := 1
			if ra[i-1] == rb[j-1] {
				sub = 0
			}

			curr[i] = min(
				curr[i-1]+1,   // insertion
				prev[i]+1,     // deletion
				prev[i-1]+sub, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// LCS returns the length of the longest common subsequence of a and b.
func LCS(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	// c[i][j] is the LCS length of ra[:i] and rb[:j].
	c := make([][]int, len(ra)+1)
	for i := range c {
		c[i] = make([]int, len(rb)+1)
	}

	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				c[i][j] = c[i-1][j-1] + 1
			} else {
				c[i][j] = max(c[i-1][j], c[i][j-1])
			}
		}
	}

	return c[len(ra)][len(rb)]
}

// MetricLCS returns 1 - LCS(a, b) / max(|a|, |b|), a normalised distance in
// [0, 1]. Two empty strings are at distance 0.
func MetricLCS(a, b string) float64 {
	n := max(len([]rune(a)), len([]rune(b)))
	if n == 0 {
		return 0
	}

	return 1 - float64(LCS(a, b))/float64(n)
}

// LCSDistance is the integer form of [MetricLCS]: the number of characters
// of the longer string that lie outside a longest common subsequence.
func LCSDistance(a, b string) int {
	return max(len([]rune(a)), len([]rune(b))) - LCS(a, b)
}
