package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/ardnew/mend/grammar"
	"github.com/ardnew/mend/log"
)

const defaultEditor = "vi"

// editCommand implements [tea.ExecCommand] for the edit-check-retry loop. It
// writes the current input to a temp file, opens the user's editor, and
// checks the result. On a parse failure the user is offered another edit;
// declining keeps the last text anyway.
type editCommand struct {
	text    string
	grammar grammar.Grammar
	memo    *memo
	ctxFunc func() context.Context
	logger  log.Logger
	result  *outcome
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

// SetStdin sets the stdin reader for the command.
func (c *editCommand) SetStdin(r io.Reader) { c.stdin = r }

// SetStdout sets the stdout writer for the command.
func (c *editCommand) SetStdout(w io.Writer) { c.stdout = w }

// SetStderr sets the stderr writer for the command.
func (c *editCommand) SetStderr(w io.Writer) { c.stderr = w }

// Run executes the edit loop. An emptied file cancels the edit and leaves
// c.result nil.
func (c *editCommand) Run() error {
	ctx := c.ctxFunc()

	f, err := os.CreateTemp(os.TempDir(), "mend-repl-*."+c.grammar.Name)
	if err != nil {
		return err
	}

	tmpPath := f.Name()

	defer os.Remove(tmpPath)

	if err := f.Chmod(0o600); err != nil {
		f.Close()

		return err
	}

	f.Close()

	content := c.text

	for {
		if err := os.WriteFile(tmpPath, []byte(content), 0o600); err != nil {
			return err
		}

		if err := runEditor(ctx, c.stdin, c.stdout, c.stderr, tmpPath); err != nil {
			return err
		}

		data, err := os.ReadFile(tmpPath)
		if err != nil {
			return err
		}

		content = strings.TrimRight(string(data), "\n")
		if strings.TrimSpace(content) == "" {
			return nil
		}

		o := c.memo.check(c.grammar, content)
		c.result = &o

		c.logger.TraceContext(ctx, "editor check attempt",
			slog.Int("content_length", len(content)),
			slog.Bool("success", o.OK()),
		)

		if o.OK() {
			return nil
		}

		fmt.Fprintf(c.stderr, "\n%s\n", strings.TrimSpace(o.problem.Sentence))
		fmt.Fprintf(c.stdout, "Re-edit? [Y/n] ")

		scanner := bufio.NewScanner(c.stdin)
		if !scanner.Scan() {
			return nil
		}

		response := strings.TrimSpace(strings.ToLower(scanner.Text()))
		if response == "n" || response == "no" {
			return nil
		}
	}
}

// runEditor launches the user's editor on the given file path.
func runEditor(
	ctx context.Context,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
	path string,
) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = defaultEditor
	}

	cmd := exec.CommandContext(ctx, editor, path)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	return cmd.Run()
}
