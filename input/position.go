package input

import "strings"

// Position returns the 1-based line and column of the character at offset in
// the backing buffer of s. Offsets outside the buffer are clamped.
// Lines are terminated by '\n'; a preceding '\r' counts as a column.
func (s Slice) Position(offset int) (line, col int) {
	offset = min(max(offset, 0), len(s.buf))
	line, col = 1, 1

	for _, r := range s.buf[:offset] {
		if r == '\n' {
			line++
			col = 1

			continue
		}

		col++
	}

	return line, col
}

// Line returns the text of the given 1-based line of the backing buffer of s,
// without its terminator, or "" if no such line exists.
func (s Slice) Line(n int) string {
	if n < 1 {
		return ""
	}

	for i, line := range strings.Split(string(s.buf), "\n") {
		if i+1 == n {
			return strings.TrimSuffix(line, "\r")
		}
	}

	return ""
}
