package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/ardnew/mend/cli/report"
)

// syncBuffer is a bytes.Buffer safe for concurrent use.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

// withStdin replaces the standard input read for "-" until the test ends.
func withStdin(t *testing.T, text string) {
	t.Helper()

	old := stdin
	stdin = strings.NewReader(text)

	t.Cleanup(func() { stdin = old })
}

func writeFile(t *testing.T, dir, name, text string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

// kongContext returns a context carrying a kong context with vars.
func kongContext(t *testing.T, model any, vars kong.Vars, args ...string) context.Context {
	t.Helper()

	parser, err := kong.New(model, vars)
	if err != nil {
		t.Fatal(err)
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		t.Fatal(err)
	}

	return WithContext(context.Background(), ktx)
}

func TestUniqueSources(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "real.txt", "x")
	other := writeFile(t, dir, "other.txt", "y")

	link := filepath.Join(dir, "link.txt")
	if err := os.Symlink(target, link); err != nil {
		t.Fatal(err)
	}

	missing := filepath.Join(dir, "missing.txt")

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	rel, err := filepath.Rel(wd, target)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		sources []string
		want    []string
	}{
		{"empty", nil, []string{}},
		{"same_path", []string{target, target, target}, []string{target}},
		{"relative_absolute", []string{rel, target}, []string{rel}},
		{"symlink", []string{target, link}, []string{target}},
		{"stdin_last", []string{"-", other, "-", target}, []string{other, target, "-"}},
		{"missing_kept", []string{missing, target, missing}, []string{missing, target, missing}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := uniqueSources(tt.sources); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("uniqueSources(%q) = %q, want %q", tt.sources, got, tt.want)
			}
		})
	}
}

func TestReadSource(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "in.txt", "(a b)")

	name, text, err := readSource(context.Background(), path)
	if err != nil || name != path || text != "(a b)" {
		t.Errorf("readSource(file) = %q, %q, %v", name, text, err)
	}

	withStdin(t, "from stdin")

	name, text, err = readSource(context.Background(), stdinSource)
	if err != nil || name != report.Stdin || text != "from stdin" {
		t.Errorf("readSource(stdin) = %q, %q, %v", name, text, err)
	}

	_, _, err = readSource(context.Background(), filepath.Join(dir, "missing"))
	if !errors.Is(err, ErrReadSource) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("readSource(missing) error = %v", err)
	}
}
