package repl

import (
	"context"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/mend/cli/report"
	"github.com/ardnew/mend/grammar"
	"github.com/ardnew/mend/log"
)

func testModel(t *testing.T) model {
	t.Helper()

	return newModel(
		context.Background(),
		mustGrammar(t, grammar.Default),
		NewHistory(""),
		log.Make(io.Discard),
		newMemo(),
		io.Discard,
	)
}

func typeText(t *testing.T, m model, text string) model {
	t.Helper()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})

	return next.(model)
}

func press(t *testing.T, m model, key tea.KeyType) model {
	t.Helper()

	next, _ := m.Update(tea.KeyMsg{Type: key})

	return next.(model)
}

func TestApplyFix(t *testing.T) {
	tests := []struct {
		name string
		text string
		p    report.Problem
		want string
	}{
		{"replace", "(a b]", report.Problem{Pos: 4, Text: "]", Fix: ")"}, "(a b)"},
		{"insert_at_end", "(a b", report.Problem{Pos: 4, Fix: ")"}, "(a b)"},
		{"replace_word", "lamda", report.Problem{Pos: 0, Text: "lamda", Fix: "lambda"}, "lambda"},
		{"delete", "a b", report.Problem{Pos: 1, Text: " b"}, "a"},
		{"multibyte", "(λ b]", report.Problem{Pos: 4, Text: "]", Fix: ")"}, "(λ b)"},
		{"clamped", "(a", report.Problem{Pos: 9, Text: "x", Fix: ")"}, "(a)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := applyFix(tt.text, tt.p); got != tt.want {
				t.Errorf("applyFix(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestModel_LiveOutcome(t *testing.T) {
	m := typeText(t, testModel(t), "(a b")

	if m.live == nil || m.live.OK() {
		t.Fatalf("live = %+v, want a failure", m.live)
	}

	m = typeText(t, m, ")")

	if m.live == nil || !m.live.OK() || m.live.canon != "(a b)" {
		t.Errorf("live = %+v, want canonical (a b)", m.live)
	}

	if m.View() == "" {
		t.Error("View() is empty")
	}
}

func TestModel_SubmitAndFix(t *testing.T) {
	m := typeText(t, testModel(t), "(a b]")
	m = press(t, m, tea.KeyEnter)

	if m.input.Value() != "" || m.history.Len() != 1 {
		t.Fatalf("after submit: input %q, history %d", m.input.Value(), m.history.Len())
	}

	if m.last == nil {
		t.Fatal("failed input was not remembered")
	}

	m = press(t, m, tea.KeyEsc)
	if m.mode != modeCtrl {
		t.Fatal("Esc did not switch to control mode")
	}

	m = typeText(t, m, "fix")
	m = press(t, m, tea.KeyEnter)

	if m.mode != modeCheck {
		t.Fatal("fix did not return to check mode")
	}

	if got := m.input.Value(); got != "(a b)" {
		t.Errorf("fixed input = %q, want %q", got, "(a b)")
	}

	if m.live == nil || !m.live.OK() {
		t.Errorf("fixed input does not parse: %+v", m.live)
	}
}

func TestModel_GrammarCommand(t *testing.T) {
	m := press(t, testModel(t), tea.KeyEsc)

	m = typeText(t, m, "grammar arith")
	m = press(t, m, tea.KeyEnter)

	if m.grammar.Name != "arith" {
		t.Errorf("grammar = %q, want arith", m.grammar.Name)
	}

	m = typeText(t, m, "grammar arth")
	m = press(t, m, tea.KeyEnter)

	if m.grammar.Name != "arith" {
		t.Errorf("unknown grammar replaced the active one: %q", m.grammar.Name)
	}
}

func TestModel_TabCompletion(t *testing.T) {
	m := press(t, testModel(t), tea.KeyEsc)
	m = typeText(t, m, "gram")

	m = press(t, m, tea.KeyTab)
	if got := m.input.Value(); got != "grammar" {
		t.Errorf("first tab = %q, want grammar", got)
	}

	m = press(t, m, tea.KeyTab)
	if got := m.input.Value(); got != "grammars" {
		t.Errorf("second tab = %q, want grammars", got)
	}

	m = press(t, m, tea.KeyEsc)
	if got := m.input.Value(); got != "gram" || m.mode != modeCtrl {
		t.Errorf("Esc while cycling = %q in mode %d", got, m.mode)
	}
}

func TestModel_History(t *testing.T) {
	m := testModel(t)

	for _, line := range []string{"a", "(b)"} {
		m = typeText(t, m, line)
		m = press(t, m, tea.KeyEnter)
	}

	m = press(t, m, tea.KeyEsc)
	m = typeText(t, m, "help")
	m = press(t, m, tea.KeyEnter)

	m = press(t, m, tea.KeyUp)
	if m.input.Value() != "help" || m.mode != modeCtrl {
		t.Errorf("Up = %q mode %d", m.input.Value(), m.mode)
	}

	m = press(t, m, tea.KeyUp)
	if m.input.Value() != "(b)" || m.mode != modeCheck {
		t.Errorf("Up = %q mode %d", m.input.Value(), m.mode)
	}

	m = press(t, m, tea.KeyDown)
	m = press(t, m, tea.KeyDown)

	if m.input.Value() != "" || m.historyIdx != m.history.Len() {
		t.Errorf("Down past newest = %q at %d", m.input.Value(), m.historyIdx)
	}
}

func TestModel_Quit(t *testing.T) {
	m := press(t, testModel(t), tea.KeyCtrlD)

	if !m.quitting || m.View() != "" {
		t.Error("Ctrl+D on empty input did not quit")
	}
}
