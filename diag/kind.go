package diag

import (
	"strconv"
	"strings"

	"github.com/ardnew/mend/edit"
)

// Kind describes what a failed parse expected to find.
//
// The set of kinds is closed. Leaf kinds name a terminal expectation; wrapper
// kinds ([BetweenLeftError], [BetweenRightError]) record which side of a
// delimited construct failed and link to the kind that caused it. Following
// [Kind.RootCause] from any kind therefore reaches a leaf.
type Kind interface {
	// Explanation returns the fragment of a diagnostic sentence describing
	// this kind, for example "character ' ( ' ".
	Explanation() string
	// RootCause returns the wrapped kind, or false for leaf kinds.
	RootCause() (Kind, bool)
	// ProposeFix returns the cost of replacing actual with candidate.
	ProposeFix(actual, candidate string) int
	// SearchSpace returns the finite set of strings that would have satisfied
	// this kind, in preference order.
	SearchSpace() []string
	// String returns a compact debugging representation.
	String() string

	kind()
}

// Case restricts the letters accepted by a [LetterError].
type Case int

const (
	AnyCase   Case = iota // letter
	UpperCase             // uppercase letter
	LowerCase             // lowercase letter
)

// String returns the name of c.
func (c Case) String() string {
	switch c {
	case UpperCase:
		return "uppercase letter"
	case LowerCase:
		return "lowercase letter"
	default:
		return "letter"
	}
}

const (
	lowerLetters = "abcdefghijklmnopqrstuvwxyz"
	upperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	decimal      = "0123456789"
)

func runes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}

	return out
}

// quote renders s the way diagnostic sentences show literal input, with
// control characters escaped.
func quote(s string) string {
	q := strconv.Quote(s)

	return "' " + q[1:len(q)-1] + " ' "
}

// leaf provides the parts shared by every leaf kind.
type leaf struct{}

func (leaf) RootCause() (Kind, bool) { return nil, false }

func (leaf) ProposeFix(actual, candidate string) int {
	return edit.Levenshtein(actual, candidate)
}

func (leaf) kind() {}

type (
	// CharError expects one specific character.
	CharError struct {
		leaf

		Expected rune
	}

	// DigitError expects a decimal digit.
	DigitError struct{ leaf }

	// LetterError expects an ASCII letter, optionally of one case.
	LetterError struct {
		leaf

		Case Case
	}

	// WhitespaceError expects a space, tab or newline.
	WhitespaceError struct{ leaf }

	// StringError expects one specific string.
	StringError struct {
		leaf

		Expected string
	}

	// SatError expects any one of a set of strings, such as the members of a
	// character class or the candidates of a keyword set.
	SatError struct {
		leaf

		Candidates []string
	}

	// ItemError expects any character at all; it is the terminal kind used
	// when input ran out or a chain of wrappers ends without a leaf.
	ItemError struct{ leaf }

	// EOFError expects the end of input where more text remained.
	EOFError struct{ leaf }
)

// Explanation implements [Kind].
func (e CharError) Explanation() string {
	return "character " + quote(string(e.Expected))
}

// SearchSpace implements [Kind].
func (e CharError) SearchSpace() []string { return []string{string(e.Expected)} }

func (e CharError) String() string { return "CharError(" + strconv.QuoteRune(e.Expected) + ")" }

// Explanation implements [Kind].
func (DigitError) Explanation() string { return "digit " }

// SearchSpace implements [Kind].
func (DigitError) SearchSpace() []string { return runes(decimal) }

func (DigitError) String() string { return "DigitError" }

// Explanation implements [Kind].
func (e LetterError) Explanation() string { return e.Case.String() + " " }

// SearchSpace implements [Kind].
func (e LetterError) SearchSpace() []string {
	if e.Case == UpperCase {
		return runes(upperLetters)
	}

	return runes(lowerLetters)
}

func (e LetterError) String() string {
	switch e.Case {
	case UpperCase:
		return "LetterError(upper)"
	case LowerCase:
		return "LetterError(lower)"
	default:
		return "LetterError"
	}
}

// Explanation implements [Kind].
func (WhitespaceError) Explanation() string { return "white space " }

// SearchSpace implements [Kind].
func (WhitespaceError) SearchSpace() []string { return []string{" ", "\t", "\n"} }

func (WhitespaceError) String() string { return "WhitespaceError" }

// Explanation implements [Kind].
func (e StringError) Explanation() string { return "string " + quote(e.Expected) }

// SearchSpace implements [Kind].
func (e StringError) SearchSpace() []string { return []string{e.Expected} }

func (e StringError) String() string { return "StringError(" + strconv.Quote(e.Expected) + ")" }

// Explanation implements [Kind].
func (e SatError) Explanation() string {
	if len(e.Candidates) == 1 {
		return quote(e.Candidates[0])
	}

	var sb strings.Builder

	sb.WriteString("one of ")

	for _, c := range e.Candidates {
		sb.WriteString(quote(c))
	}

	return sb.String()
}

// SearchSpace implements [Kind].
func (e SatError) SearchSpace() []string {
	if len(e.Candidates) == 0 {
		return []string{""}
	}

	return append([]string(nil), e.Candidates...)
}

func (e SatError) String() string {
	q := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		q[i] = strconv.Quote(c)
	}

	return "SatError(" + strings.Join(q, ", ") + ")"
}

// Explanation implements [Kind].
func (ItemError) Explanation() string { return "more input " }

// SearchSpace implements [Kind].
func (ItemError) SearchSpace() []string { return []string{""} }

func (ItemError) String() string { return "ItemError" }

// Explanation implements [Kind].
func (EOFError) Explanation() string { return "the end of input " }

// SearchSpace implements [Kind].
func (EOFError) SearchSpace() []string { return []string{""} }

func (EOFError) String() string { return "EOFError" }

type (
	// BetweenLeftError reports that the opening delimiter of a bracketed
	// construct failed to parse because of Cause.
	BetweenLeftError struct{ Cause Kind }

	// BetweenRightError reports that the closing delimiter of a bracketed
	// construct failed to parse because of Cause.
	BetweenRightError struct{ Cause Kind }
)

// cause returns k, or the terminal [ItemError] if k is nil.
func cause(k Kind) Kind {
	if k == nil {
		return ItemError{}
	}

	return k
}

// Explanation implements [Kind].
func (BetweenLeftError) Explanation() string { return "the opening delimiter, " }

// RootCause implements [Kind].
func (e BetweenLeftError) RootCause() (Kind, bool) { return cause(e.Cause), true }

// ProposeFix implements [Kind].
func (e BetweenLeftError) ProposeFix(actual, candidate string) int {
	return cause(e.Cause).ProposeFix(actual, candidate)
}

// SearchSpace implements [Kind].
func (e BetweenLeftError) SearchSpace() []string { return cause(e.Cause).SearchSpace() }

func (e BetweenLeftError) String() string {
	return "BetweenLeftError -> " + cause(e.Cause).String()
}

func (BetweenLeftError) kind() {}

// Explanation implements [Kind].
func (BetweenRightError) Explanation() string { return "the closing delimiter, " }

// RootCause implements [Kind].
func (e BetweenRightError) RootCause() (Kind, bool) { return cause(e.Cause), true }

// ProposeFix implements [Kind].
func (e BetweenRightError) ProposeFix(actual, candidate string) int {
	return cause(e.Cause).ProposeFix(actual, candidate)
}

// SearchSpace implements [Kind].
func (e BetweenRightError) SearchSpace() []string { return cause(e.Cause).SearchSpace() }

func (e BetweenRightError) String() string {
	return "BetweenRightError -> " + cause(e.Cause).String()
}

func (BetweenRightError) kind() {}

// Root follows the cause chain of k down to its leaf. A nil k yields
// [ItemError].
func Root(k Kind) Kind {
	k = cause(k)

	for {
		next, ok := k.RootCause()
		if !ok {
			return k
		}

		k = next
	}
}
