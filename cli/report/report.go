package report

import (
	"errors"
	"io"
	"iter"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/mend/parser"
	"github.com/ardnew/mend/pkg"
)

// Stdin is the source name used for input read from standard input.
const Stdin = "<stdin>"

// ErrEncode is returned when results cannot be encoded.
var ErrEncode = pkg.NewError("encode report")

// Format selects how results are written.
type Format int

const (
	FormatText Format = iota // text
	FormatJSON               // json
	FormatYAML               // yaml
)

var formats = []Format{FormatText, FormatJSON, FormatYAML}

// String returns the name of f.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "text"
	}
}

// Formats returns an iterator over the names of all formats.
func Formats() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, f := range formats {
			if !yield(f.String()) {
				return
			}
		}
	}
}

// ParseFormat returns the format named s, or [FormatText] if s names none.
func ParseFormat(s string) Format {
	for _, f := range formats {
		if strings.EqualFold(strings.TrimSpace(s), f.String()) {
			return f
		}
	}

	return FormatText
}

// Result is the outcome of checking one source against a grammar.
type Result struct {
	Source    string   `yaml:"source"`
	Grammar   string   `yaml:"grammar"`
	OK        bool     `yaml:"ok"`
	Canonical string   `yaml:"canonical,omitempty"`
	Problem   *Problem `yaml:"problem,omitempty"`
}

// Problem is the serializable form of a [parser.Diagnostic].
type Problem struct {
	Line     int    `yaml:"line"`
	Col      int    `yaml:"col"`
	Pos      int    `yaml:"pos"`
	Kind     string `yaml:"kind"`
	Sentence string `yaml:"sentence"`
	Msg      string `yaml:"msg"`
	Text     string `yaml:"text"`
	Fix      string `yaml:"fix"`
	Distance int    `yaml:"distance"`
	Critical bool   `yaml:"critical"`
	Context  string `yaml:"context"`
}

// MakeProblem converts d.
func MakeProblem(d parser.Diagnostic) Problem {
	return Problem{
		Line:     d.Line,
		Col:      d.Col,
		Pos:      d.Pos,
		Kind:     d.Kind.String(),
		Sentence: d.Sentence,
		Msg:      d.Msg,
		Text:     d.Text,
		Fix:      d.Fix.Candidate,
		Distance: d.Fix.Distance,
		Critical: d.Critical,
		Context:  d.Source,
	}
}

// Make builds the result of a check that produced canon and err. It returns
// false if err is neither nil nor a parse error, in which case the caller
// should report err itself.
func Make(source, grammar, canon string, err error) (Result, bool) {
	r := Result{Source: source, Grammar: grammar}

	if err == nil {
		r.OK = true
		r.Canonical = canon

		return r, true
	}

	var d parser.Diagnostic
	if !errors.As(err, &d) {
		return r, false
	}

	p := MakeProblem(d)
	r.Problem = &p

	return r, true
}

// Write writes rs to w in format f. Text output is styled for w.
func Write(w io.Writer, f Format, rs ...Result) error {
	switch f {
	case FormatJSON, FormatYAML:
		opts := []yaml.EncodeOption{yaml.Indent(2)}
		if f == FormatJSON {
			opts = append(opts, yaml.JSON())
		}

		var v any = rs
		if len(rs) == 1 {
			v = rs[0]
		}

		b, err := yaml.MarshalWithOptions(v, opts...)
		if err != nil {
			return ErrEncode.Wrap(err)
		}

		_, err = w.Write(b)
		if err != nil {
			return ErrEncode.Wrap(err)
		}

		if f == FormatJSON {
			_, err = io.WriteString(w, "\n")
		}

		return err

	default:
		s := NewStyles(w)

		for _, r := range rs {
			_, err := io.WriteString(w, s.Result(r))
			if err != nil {
				return err
			}
		}

		return nil
	}
}
