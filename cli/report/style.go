package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles renders results as styled text for one output.
type Styles struct {
	source, ok, bad, warn, gutter, caret, fix, dim lipgloss.Style
}

// NewStyles returns the styles for w. Color is dropped when w is not a
// terminal.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return Styles{
		source: r.NewStyle().Bold(true),
		ok:     fg("2"),
		bad:    fg("1").Bold(true),
		warn:   fg("3").Bold(true),
		gutter: fg("4"),
		caret:  fg("1").Bold(true),
		fix:    fg("2").Bold(true),
		dim:    fg("8"),
	}
}

// Result renders r. A successful check is one line holding the canonical
// form; a failed one is a located diagnostic with the offending line, a caret
// under the failure and the suggested fix.
func (s Styles) Result(r Result) string {
	if r.Problem == nil {
		return s.source.Render(r.Source+":") + " " + s.ok.Render(r.Canonical) + "\n"
	}

	p := r.Problem
	loc := r.Source + ":" + strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Col) + ":"

	severity := s.warn.Render("error:")
	if p.Critical {
		severity = s.bad.Render("error:")
	}

	num := strconv.Itoa(p.Line)
	pad := strings.Repeat(" ", len(num))

	var b strings.Builder

	b.WriteString(s.source.Render(loc) + " " + severity + " " + strings.TrimSpace(p.Sentence) + "\n")
	b.WriteString(s.gutter.Render(" "+num+" | ") + p.Context + "\n")
	b.WriteString(s.gutter.Render(" "+pad+" | ") + Caret(p.Context, p.Col, p.Text))

	if p.Msg != "" {
		b.WriteString(" " + s.caret.Render(p.Msg))
	}

	b.WriteString("\n")
	b.WriteString(s.gutter.Render(" "+pad+" = ") + s.dim.Render("fix: ") + s.fix.Render(Advice(*p)) + "\n")

	return b.String()
}

// Hint renders p on one line for interactive use.
func (s Styles) Hint(p Problem) string {
	return s.caret.Render(strconv.Itoa(p.Line)+":"+strconv.Itoa(p.Col)) + " " +
		strings.TrimSpace(strings.TrimPrefix(p.Sentence, sentencePrefix)) + " " +
		s.dim.Render("(") + s.fix.Render(Advice(p)) + s.dim.Render(")")
}

const sentencePrefix = "Hey, you're "

// Caret returns the marker line placed under line to point at column col
// (1-based), as wide as text. Tabs in the prefix are kept so the caret lines
// up with the source.
func Caret(line string, col int, text string) string {
	var b strings.Builder

	i := 0
	for _, r := range line {
		if i >= col-1 {
			break
		}

		if r == '\t' {
			b.WriteRune('\t')
		} else {
			b.WriteRune(' ')
		}

		i++
	}

	for ; i < col-1; i++ {
		b.WriteRune(' ')
	}

	text, _, _ = strings.Cut(text, "\n")
	b.WriteString(strings.Repeat("^", max(1, len([]rune(text)))))

	return b.String()
}

// Advice describes the fix of p as an edit.
func Advice(p Problem) string {
	switch {
	case p.Text == "" && p.Fix == "":
		return "no change"
	case p.Text == "":
		return "insert " + strconv.Quote(p.Fix)
	case p.Fix == "":
		return "delete " + strconv.Quote(p.Text)
	default:
		return "replace " + strconv.Quote(p.Text) + " with " + strconv.Quote(p.Fix)
	}
}
