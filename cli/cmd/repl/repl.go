package repl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/mend/cli/report"
	"github.com/ardnew/mend/diag"
	"github.com/ardnew/mend/grammar"
	"github.com/ardnew/mend/log"
)

// editDoneMsg is sent when an edit finished; result is nil if it was
// cancelled.
type editDoneMsg struct{ result *outcome }

// editErrorMsg is sent when the edit process encounters an error.
type editErrorMsg struct{ err error }

const (
	checkPrompt = "➜ "
	ctrlPrompt  = " :"

	// replSource names REPL input in diagnostics.
	replSource = "<repl>"
)

func helpMessage() string {
	return `
: Commands (press Esc to toggle mode):

  help           Print this cruft
  grammar [name] Show or switch the active grammar
  grammars       List grammars
  fix            Apply the suggested fix to the last failed input
  edit           Edit the input in external $EDITOR
  clear          Clear screen
  quit           Exit REPL

Usage:
  Type input to check it against the active grammar
  The line below the input shows the outcome as you type
  Press Enter to print the full result
  Press Esc to toggle between check and command modes
  Press Tab / Shift-Tab to cycle through command completions
  Use Up/Down arrows for history navigation (mode switches automatically)
  Press Ctrl+C on empty line or Ctrl+D to exit
`
}

// inputMode represents the current input mode.
type inputMode int

const (
	modeCheck inputMode = iota
	modeCtrl
)

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	ctrlPromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Bold(true)
	inputStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	selectedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

// formatCommand formats the echo line of a submitted input.
func formatCommand(mode inputMode, input string) string {
	if mode == modeCtrl {
		return ctrlPromptStyle.Render(ctrlPrompt) + inputStyle.Render(input)
	}

	return promptStyle.Render(checkPrompt) + inputStyle.Render(input)
}

// model is the Bubble Tea model for the REPL.
type model struct {
	ctxFunc      func() context.Context
	input        textinput.Model
	grammar      grammar.Grammar
	memo         *memo
	styles       report.Styles
	logger       log.Logger
	history      *History
	historyIdx   int
	live         *outcome      // outcome of the current check-mode input
	last         *outcome      // last submitted input that failed
	matches      fuzzy.Matches // current fuzzy match results
	wordStart    int           // byte offset of current word start
	wordEnd      int           // byte offset of current word end
	suggIdx      int           // selected candidate index
	tabActive    bool          // whether user is tab-cycling
	preTabText   string        // input text before tab-cycling began
	preTabCursor int           // cursor position before tab-cycling began
	width        int           // terminal width for ellipsization
	quitting     bool
	mode         inputMode
	checkText    string
	checkCursor  int
	ctrlText     string
	ctrlCursor   int
}

// Run starts the REPL checking input against g. History is kept in cacheDir
// unless it is empty. opts tune the fix search.
func Run(
	ctx context.Context,
	g grammar.Grammar,
	cacheDir string,
	logger log.Logger,
	opts ...diag.Option,
) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	logger.TraceContext(
		ctx,
		"repl start",
		slog.String("cache_dir", cacheDir),
		slog.String("grammar", g.Name),
	)

	var path string
	if cacheDir != "" {
		path = filepath.Join(cacheDir, baseHistory)
	}

	history := NewHistory(path)
	if err := history.Load(); err != nil {
		logger.WarnContext(ctx, "could not load history", slog.Any("error", err))
	}

	logger.TraceContext(
		ctx,
		"repl history loaded",
		slog.Int("entry_count", history.Len()),
	)

	m := newModel(ctx, g, history, logger, newMemo(opts...), os.Stdout)

	p := tea.NewProgram(m, tea.WithContext(ctx))
	_, err = p.Run()

	logger.TraceContext(ctx, "repl stop", slog.Int("memo_hits", m.memo.hits))

	return err
}

const defaultWidth = 80

func newModel(
	ctx context.Context,
	g grammar.Grammar,
	history *History,
	logger log.Logger,
	memo *memo,
	out io.Writer,
) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(checkPrompt)
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = defaultWidth

	return model{
		ctxFunc:    func() context.Context { return ctx },
		input:      ti,
		grammar:    g,
		memo:       memo,
		styles:     report.NewStyles(out),
		logger:     logger,
		history:    history,
		historyIdx: history.Len(),
		width:      defaultWidth,
		mode:       modeCheck,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(checkPrompt) - 2

		return m, nil

	case editDoneMsg:
		if msg.result == nil {
			return m, tea.Println(hintStyle.Render("edit cancelled"))
		}

		if !strings.Contains(msg.result.text, "\n") {
			m, _ = m.switchToMode(modeCheck)
			m.input.SetValue(msg.result.text)
			m.input.SetCursor(len(msg.result.text))
			m.refresh(false)
		}

		return m.printOutcome(*msg.result)

	case editErrorMsg:
		return m, tea.Println(errorStyle.Render("error: " + msg.err.Error()))
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	input := m.input.Value()

	switch {
	case m.historyIdx < m.history.Len():
		hint := fmt.Sprintf("%s/%d",
			lipgloss.NewStyle().Bold(true).Render(strconv.Itoa(m.historyIdx+1)),
			m.history.Len())
		b.WriteString(hintStyle.Render(hint))

	case strings.TrimSpace(input) == "" && m.mode == modeCheck:
		b.WriteString(hintStyle.Render(
			"Type " + m.grammar.Name + " input or press Esc for commands"))

	case strings.TrimSpace(input) == "":
		b.WriteString(hintStyle.Render(
			"Type: help, grammar, fix, edit, clear, quit (press Esc to return)"))

	case m.mode == modeCtrl:
		b.WriteString(renderCandidateBar(m.matches, m.suggIdx, m.tabActive, m.width))

	case m.live != nil && m.live.OK():
		b.WriteString(resultStyle.Render("✔ " + m.live.canon))

	case m.live != nil:
		b.WriteString(m.styles.Hint(*m.live.problem))
	}

	b.WriteString("\n")

	return b.String()
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	m.logger.TraceContext(
		m.ctxFunc(),
		"repl keypress",
		slog.String("key", msg.String()),
		slog.Int("type", int(msg.Type)),
	)

	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.tabActive = false
		m.historyIdx = m.history.Len()
		m.refresh(false)

		return m, nil

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		return m, nil

	case tea.KeyEnter:
		if !m.tabActive || len(m.matches) == 0 {
			return m.executeInput()
		}
		// Lock in the current tab candidate without executing.
		m.tabActive = false
		m.refresh(true)

		return m, nil

	case tea.KeyTab:
		return m.cycle(1), nil

	case tea.KeyShiftTab:
		return m.cycle(-1), nil

	case tea.KeyUp:
		return m.historyStep(-1), nil

	case tea.KeyDown:
		return m.historyStep(1), nil

	case tea.KeyEsc:
		if m.tabActive {
			m.tabActive = false
			m.input.SetValue(m.preTabText)
			m.input.SetCursor(m.preTabCursor)
			m.refresh(false)

			return m, nil
		}

		if m.mode == modeCheck {
			return m.switchToMode(modeCtrl)
		}

		return m.switchToMode(modeCheck)

	case tea.KeyRunes:
		// Space is a "breaking" key while tab-cycling.
		if m.tabActive && msg.String() == " " {
			m.tabActive = false
		}

		var cmd tea.Cmd

		m.historyIdx = m.history.Len()
		m.input, cmd = m.input.Update(msg)
		m.refresh(true)

		return m, cmd
	}

	// For any other key (backspace, delete, arrows, etc.),
	// update input and recompute matches without auto-confirm.
	var cmd tea.Cmd

	m.tabActive = false
	m.historyIdx = m.history.Len()
	m.input, cmd = m.input.Update(msg)
	m.refresh(false)

	return m, cmd
}

// cycle moves the tab selection by step through the current matches.
func (m model) cycle(step int) model {
	n := len(m.matches)
	if n == 0 {
		return m
	}

	// Single candidate: complete and confirm immediately.
	if n == 1 {
		replaceCurrentWord(&m, m.matches[0].Str)
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil

		return m
	}

	if m.tabActive {
		m.suggIdx = (m.suggIdx + step + n) % n
	} else {
		m.tabActive = true
		m.preTabText = m.input.Value()
		m.preTabCursor = m.input.Position()
		m.suggIdx = 0

		if step < 0 {
			m.suggIdx = n - 1
		}
	}

	replaceCurrentWord(&m, m.matches[m.suggIdx].Str)

	return m
}

// replaceCurrentWord replaces the current word boundaries in the input with
// the given replacement text and repositions the cursor.
func replaceCurrentWord(m *model, replacement string) {
	input := m.input.Value()
	newInput := input[:m.wordStart] + replacement + input[m.wordEnd:]
	newCursor := m.wordStart + len(replacement)

	m.input.SetValue(newInput)
	m.input.SetCursor(newCursor)

	m.wordEnd = newCursor
}

// refresh recomputes the live outcome in check mode and the completion
// matches in control mode. When autoConfirm is true it also confirms the
// completion when exactly one candidate remains and the typed word already
// equals it.
func (m *model) refresh(autoConfirm bool) {
	m.live = nil

	if m.mode == modeCheck && strings.TrimSpace(m.input.Value()) != "" {
		o := m.memo.check(m.grammar, m.input.Value())
		m.live = &o
	}

	m.matches, m.wordStart, m.wordEnd = m.computeMatches()

	if !m.tabActive {
		m.suggIdx = -1
	}

	if !autoConfirm || len(m.matches) != 1 {
		return
	}

	candidate := m.matches[0].Str
	if m.input.Value()[m.wordStart:m.wordEnd] == candidate {
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil
	}
}

func (m model) executeInput() (model, tea.Cmd) {
	input := m.input.Value()
	if strings.TrimSpace(input) == "" {
		return m, nil
	}

	mode := m.mode

	m.checkText, m.checkCursor = "", 0
	m.ctrlText, m.ctrlCursor = "", 0
	m.input.SetValue("")
	m.live = nil

	if err := m.history.Write(input, mode); err != nil {
		m.logger.WarnContext(m.ctxFunc(), "could not write history", slog.Any("error", err))
	}

	m.historyIdx = m.history.Len()

	if mode == modeCtrl {
		return m.executeCommand(strings.TrimSpace(input))
	}

	m.logger.TraceContext(m.ctxFunc(), "repl check", slog.String("input", input))

	echo := tea.Println(formatCommand(modeCheck, input))
	m, show := m.printOutcome(m.memo.check(m.grammar, input))

	return m, tea.Sequence(echo, show)
}

// printOutcome prints the full result of o and remembers it for fix if it
// failed.
func (m model) printOutcome(o outcome) (model, tea.Cmd) {
	r := report.Result{
		Source:    replSource,
		Grammar:   m.grammar.Name,
		OK:        o.OK(),
		Canonical: o.canon,
		Problem:   o.problem,
	}

	m.last = nil
	if !o.OK() {
		m.last = &o
	}

	return m, tea.Println(strings.TrimRight(m.styles.Result(r), "\n"))
}

func (m model) executeCommand(input string) (model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}

	echo := tea.Println(formatCommand(modeCtrl, input))

	cmd, args := parts[0], parts[1:]

	m.logger.TraceContext(
		m.ctxFunc(),
		"repl exec command",
		slog.String("command", cmd),
		slog.Any("args", args),
	)

	switch cmd {
	case "q", "quit", "exit":
		m.quitting = true

		return m, tea.Sequence(echo, tea.Quit)

	case "h", "help":
		return m, tea.Sequence(echo, tea.Println(helpMessage()))

	case "g", "grammar":
		if len(args) == 0 {
			return m, tea.Sequence(echo, tea.Println(m.grammar.Name+": "+m.grammar.Summary))
		}

		g, err := grammar.Lookup(args[0])
		if err != nil {
			return m, tea.Sequence(echo, tea.Println(errorStyle.Render(err.Error())))
		}

		m.grammar = g
		m.last = nil

		return m, tea.Sequence(echo, tea.Println(resultStyle.Render("grammar: "+g.Name)))

	case "grammars":
		return m, tea.Sequence(echo, tea.Println(m.listGrammars()))

	case "f", "fix":
		if m.last == nil {
			return m, tea.Sequence(echo, tea.Println(errorStyle.Render(ErrNoFix.Error())))
		}

		p := *m.last.problem
		fixed := applyFix(m.last.text, p)

		m, _ = m.switchToMode(modeCheck)
		m.input.SetValue(fixed)
		m.input.SetCursor(len(fixed))
		m.refresh(false)

		return m, tea.Sequence(echo, tea.Println(hintStyle.Render(report.Advice(p))))

	case "c", "clear":
		return m, tea.ClearScreen

	case "e", "edit":
		return m, tea.Sequence(echo, m.edit())

	default:
		return m, tea.Println(
			errorStyle.Render("Unknown command: " + cmd + " (try 'help')"),
		)
	}
}

// edit opens the pending check input, or the last failed input, in the
// user's editor.
func (m model) edit() tea.Cmd {
	text := m.checkText
	if text == "" && m.last != nil {
		text = m.last.text
	}

	cmd := &editCommand{
		text:    text,
		grammar: m.grammar,
		memo:    m.memo,
		ctxFunc: m.ctxFunc,
		logger:  m.logger,
	}

	return tea.Exec(cmd, func(err error) tea.Msg {
		if err != nil {
			return editErrorMsg{err: err}
		}

		return editDoneMsg{result: cmd.result}
	})
}

func (m model) listGrammars() string {
	var b strings.Builder

	for _, g := range grammar.All() {
		marker := "  "
		if g.Name == m.grammar.Name {
			marker = "* "
		}

		b.WriteString(marker + g.Name + " " + hintStyle.Render(g.Summary) + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// historyStep moves through history by step, switching mode to match the
// entry. Stepping past the newest entry clears the input.
func (m model) historyStep(step int) model {
	i := m.historyIdx + step
	if i < 0 {
		return m
	}

	entry, err := m.history.Entry(i)
	if err != nil {
		m.historyIdx = m.history.Len()
		m.input.SetValue("")
		m.refresh(false)

		return m
	}

	m.historyIdx = i

	if m.mode != entry.Mode {
		m, _ = m.switchToMode(entry.Mode)
	}

	m.input.SetValue(entry.Line)
	m.input.SetCursor(len(entry.Line))
	m.refresh(false)

	return m
}

// switchToMode switches to the specified mode, preserving each mode's input.
func (m model) switchToMode(mode inputMode) (model, tea.Cmd) {
	if m.mode == modeCheck {
		m.checkText = m.input.Value()
		m.checkCursor = m.input.Position()
	} else {
		m.ctrlText = m.input.Value()
		m.ctrlCursor = m.input.Position()
	}

	m.mode = mode
	if mode == modeCheck {
		m.input.Prompt = promptStyle.Render(checkPrompt)
		m.input.SetValue(m.checkText)
		m.input.SetCursor(m.checkCursor)
	} else {
		m.input.Prompt = ctrlPromptStyle.Render(ctrlPrompt)
		m.input.SetValue(m.ctrlText)
		m.input.SetCursor(m.ctrlCursor)
	}

	m.refresh(false)

	return m, nil
}

// applyFix returns text with the offending text of p replaced by its fix.
func applyFix(text string, p report.Problem) string {
	runes := []rune(text)

	start := min(p.Pos, len(runes))
	end := min(start+len([]rune(p.Text)), len(runes))

	return string(runes[:start]) + p.Fix + string(runes[end:])
}
