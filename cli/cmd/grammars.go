package cmd

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/mend/grammar"
)

// Grammars lists the registered grammars.
type Grammars struct{}

// Run executes the grammars command.
func (*Grammars) Run(_ context.Context, out io.Writer) error {
	r := lipgloss.NewRenderer(out)
	nameStyle := r.NewStyle().Bold(true)
	dimStyle := r.NewStyle().Foreground(lipgloss.Color("8"))

	width := 0
	for _, name := range grammar.Names() {
		width = max(width, len(name))
	}

	var b strings.Builder

	for _, g := range grammar.All() {
		b.WriteString(nameStyle.Render(g.Name))
		b.WriteString(strings.Repeat(" ", width-len(g.Name)+2))
		b.WriteString(g.Summary)

		if g.Name == grammar.Default {
			b.WriteString(dimStyle.Render(" (default)"))
		}

		b.WriteString("\n")
	}

	_, err := io.WriteString(out, b.String())
	if err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
