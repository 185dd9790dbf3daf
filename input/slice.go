package input

import (
	"log/slog"

	"github.com/ardnew/mend/pkg"
)

// Programmer errors. These are raised with panic, never returned, because they
// indicate a malformed grammar rather than malformed input.
var (
	ErrEmptySlice  = pkg.NewError("empty slice has no head or tail")
	ErrEmptyConcat = pkg.NewError("concat requires at least one slice")
)

// Slice is an immutable window over a shared backing buffer of runes.
//
// Derived slices alias the same buffer and only recompute their bounds, so
// composing parsers never copies the input. The eof flag records whether the
// window logically extends to the true end of input, which a bounded sub-view
// created with [Slice.Substring] or [Slice.Peek] generally does not.
//
// The zero Slice is an empty view that is not at end of input.
type Slice struct {
	buf   []rune
	start int
	end   int
	eof   bool
}

// Make returns a Slice over all of text that ends at end of input.
func Make(text string) Slice {
	buf := []rune(text)

	return Slice{buf: buf, start: 0, end: len(buf), eof: true}
}

// window returns a slice over the same buffer with the given bounds, clamped
// so that s.start <= start <= end <= s.end. The eof flag survives only when the
// new window reaches the end of s.
func (s Slice) window(start, end int) Slice {
	end = min(max(end, s.start), s.end)
	start = min(max(start, s.start), end)

	return Slice{
		buf:   s.buf,
		start: start,
		end:   end,
		eof:   s.eof && end == s.end,
	}
}

// IsEOF reports whether s is positioned at the true end of input.
func (s Slice) IsEOF() bool { return s.eof && s.start == len(s.buf) }

// HasEOF reports whether s logically extends to the true end of input.
func (s Slice) HasEOF() bool { return s.eof }

// IsEmpty reports whether s contains no characters. An empty slice is not
// necessarily at end of input.
func (s Slice) IsEmpty() bool { return s.start == s.end }

// Len returns the number of characters in s.
func (s Slice) Len() int { return s.end - s.start }

// Start returns the offset of the first character of s in the backing buffer.
func (s Slice) Start() int { return s.start }

// End returns the offset one past the last character of s in the backing
// buffer.
func (s Slice) End() int { return s.end }

// String returns the characters of s.
func (s Slice) String() string { return string(s.buf[s.start:s.end]) }

// Rune returns the first character of s and true, or false if s is empty.
func (s Slice) Rune() (rune, bool) {
	if s.IsEmpty() {
		return 0, false
	}

	return s.buf[s.start], true
}

// Head returns the first character of s as a slice of length one.
// It panics with [ErrEmptySlice] if s is empty.
func (s Slice) Head() Slice {
	if s.IsEmpty() {
		panic(ErrEmptySlice.With(slog.String("op", "head"), slog.Int("pos", s.start)))
	}

	return s.window(s.start, s.start+1)
}

// Tail returns s advanced by one character.
// It panics with [ErrEmptySlice] if s is empty.
func (s Slice) Tail() Slice {
	if s.IsEmpty() {
		panic(ErrEmptySlice.With(slog.String("op", "tail"), slog.Int("pos", s.start)))
	}

	return s.window(s.start+1, s.end)
}

// Seek returns s advanced by n characters, clamped to the end of s.
func (s Slice) Seek(n int) Slice {
	return s.window(s.start+max(n, 0), s.end)
}

// Peek returns the first n characters of s, clamped to the end of s, without
// advancing s itself.
func (s Slice) Peek(n int) Slice {
	return s.window(s.start, s.start+max(n, 0))
}

// Substring returns the window [a, b) relative to the start of s. Bounds are
// clamped to s. The result keeps the eof flag only if b reaches the end of s.
func (s Slice) Substring(a, b int) Slice {
	return s.window(s.start+max(a, 0), s.start+max(b, 0))
}

// Concat returns a new slice over a freshly allocated buffer holding the
// characters of s followed by those of other. The result ends at end of input
// if and only if other does.
func (s Slice) Concat(other Slice) Slice {
	buf := make([]rune, 0, s.Len()+other.Len())
	buf = append(buf, s.buf[s.start:s.end]...)
	buf = append(buf, other.buf[other.start:other.end]...)

	return Slice{buf: buf, start: 0, end: len(buf), eof: other.eof}
}

// Concat folds [Slice.Concat] left over ss.
// It panics with [ErrEmptyConcat] if ss is empty.
func Concat(ss ...Slice) Slice {
	if len(ss) == 0 {
		panic(ErrEmptyConcat)
	}

	if len(ss) == 1 {
		// Copy so the result never aliases its argument.
		return ss[0].Concat(Slice{eof: ss[0].eof})
	}

	acc := ss[0]
	for _, s := range ss[1:] {
		acc = acc.Concat(s)
	}

	return acc
}
