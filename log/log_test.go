package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestLogger_Make_Defaults(t *testing.T) {
	l := Make(nil)

	if l.Level() != DefaultLevel {
		t.Errorf("Level() = %v, want %v", l.Level(), DefaultLevel)
	}

	if l.Format() != DefaultFormat {
		t.Errorf("Format() = %v, want %v", l.Format(), DefaultFormat)
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithLevel(LevelWarn), WithPretty(false))

	l.Trace("trace message")
	l.Debug("debug message")
	l.Info("info message")

	if buf.Len() > 0 {
		t.Fatalf("messages below warn were logged: %q", buf.String())
	}

	l.Warn("warn message")
	l.Error("error message")

	for _, want := range []string{"level=WARN", "level=ERROR", "warn message", "error message"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output lacks %q: %q", want, buf.String())
		}
	}
}

func TestLogger_Trace(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithLevel(LevelTrace), WithPretty(false))
	l.Trace("enter", slog.Int("offset", 3))

	if !strings.Contains(buf.String(), "level=TRACE") {
		t.Errorf("trace level rendered as %q", buf.String())
	}

	if !strings.Contains(buf.String(), "offset=3") {
		t.Errorf("attribute missing: %q", buf.String())
	}
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithFormat(FormatJSON), WithPretty(false))
	l.Info("parsed", slog.String("grammar", "sexpr"))

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v: %q", err, buf.String())
	}

	if rec["msg"] != "parsed" || rec["grammar"] != "sexpr" || rec["level"] != "INFO" {
		t.Errorf("unexpected record %v", rec)
	}
}

func TestLogger_Caller(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithCaller(true), WithPretty(false), WithFormat(FormatJSON))
	l.Info("here")

	if !strings.Contains(buf.String(), "log_test.go") {
		t.Errorf("caller does not point at the test: %q", buf.String())
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithPretty(false)).With(slog.String("grammar", "arith"))
	l.Info("checked")

	if !strings.Contains(buf.String(), "grammar=arith") {
		t.Errorf("With attribute missing: %q", buf.String())
	}
}

func TestLogger_Wrap(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithPretty(false)).Wrap(WithLevel(LevelDebug))
	l.Debug("visible")

	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("wrapped level not applied: %q", buf.String())
	}
}

func TestLogger_ZeroValue(t *testing.T) {
	var l Logger

	l.Trace("nothing")
	l.Info("nothing")
	l.ErrorContext(context.Background(), "nothing")

	if l.Enabled(context.Background(), LevelError) {
		t.Error("zero logger reports enabled")
	}

	if got := l.With(slog.Int("a", 1)); got.Logger != nil {
		t.Error("With on zero logger allocated a handler")
	}
}

func TestLogger_Pretty(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		want   []string
	}{
		{"text", FormatText, []string{"level=INFO", "msg=ready", "n=7", "ok=true", "req.id=r1"}},
		{"json", FormatJSON, []string{`"level": INFO`, `"msg": ready`, `"n": 7`, `"req.id": r1`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			l := Make(&buf, WithFormat(tt.format), WithTimeLayout("none"))
			l.Logger = l.Logger.WithGroup("req")
			l.Info("ready", slog.String("id", "r1"), slog.Int("n", 7), slog.Bool("ok", true))

			out := buf.String()
			for _, want := range tt.want {
				if tt.format == FormatText && strings.HasPrefix(want, "n=") {
					want = "req." + want
				}

				if tt.format == FormatJSON && strings.HasPrefix(want, `"n"`) {
					want = `"req.n": 7`
				}

				if !strings.Contains(out, want) {
					t.Errorf("output lacks %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestLogger_ConcurrentUse(t *testing.T) {
	var buf safeBuffer

	l := Make(&buf, WithPretty(false))

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			l.With(slog.Int("worker", i)).Info("tick")
		}()
	}

	wg.Wait()

	if got := strings.Count(buf.String(), "tick"); got != 8 {
		t.Errorf("logged %d lines, want 8", got)
	}
}

func TestPackage_DefaultLogger(t *testing.T) {
	original := defaultLog
	defer func() { defaultLog = original }()

	var buf bytes.Buffer

	defaultLog = Make(&buf, WithPretty(false))
	Config(WithLevel(LevelTrace), WithFormat(FormatJSON))

	tests := []struct {
		fn    func(string, ...slog.Attr)
		level string
	}{
		{Trace, "TRACE"},
		{Debug, "DEBUG"},
		{Info, "INFO"},
		{Warn, "WARN"},
		{Error, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			buf.Reset()
			tt.fn("message", slog.String("key", "value"))

			if !strings.Contains(buf.String(), `"level":"`+tt.level+`"`) {
				t.Errorf("output lacks level %s: %s", tt.level, buf.String())
			}

			if !strings.Contains(buf.String(), `"key":"value"`) {
				t.Errorf("output lacks attribute: %s", buf.String())
			}
		})
	}

	buf.Reset()
	With(slog.String("scope", "test")).Info("scoped")

	if !strings.Contains(buf.String(), `"scope":"test"`) {
		t.Errorf("With on default logger lost attribute: %s", buf.String())
	}
}

type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func BenchmarkLogger_Info(b *testing.B) {
	l := Make(&bytes.Buffer{}, WithPretty(false))

	for b.Loop() {
		l.Info("benchmark", slog.Int("n", 1))
	}
}

func BenchmarkLogger_Disabled(b *testing.B) {
	l := Make(&bytes.Buffer{}, WithLevel(LevelError))

	for b.Loop() {
		l.Trace("dropped", slog.Int("n", 1))
	}
}
