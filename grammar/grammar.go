package grammar

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/mend/diag"
	"github.com/ardnew/mend/edit"
	"github.com/ardnew/mend/input"
	"github.com/ardnew/mend/parser"
	"github.com/ardnew/mend/pkg"
)

// ErrUnknownGrammar is returned by [Lookup] for a name that is not
// registered.
var ErrUnknownGrammar = pkg.NewError("unknown grammar")

// Grammar is a named parser whose result is the canonical form of its input.
type Grammar struct {
	Name    string
	Summary string
	Parser  parser.Parser[string]
}

// Run applies g to text.
func (g Grammar) Run(text string) parser.Outcome[string] {
	return g.Parser(input.Make(text))
}

// Check parses text and returns its canonical form, or an error wrapping
// [parser.ErrParse] and the [parser.Diagnostic] of the failure.
func (g Grammar) Check(text string, opts ...diag.Option) (string, error) {
	return parser.Parse(g.Parser, text, opts...)
}

// Default is the grammar used when none is named.
const Default = "sexpr"

var registry = sync.OnceValue(func() map[string]Grammar {
	gs := []Grammar{
		{
			Name:    "sexpr",
			Summary: "one s-expression of atoms and parenthesized lists",
			Parser:  parser.Map(SExpr(), Node.String),
		},
		{
			Name:    "arith",
			Summary: "integer arithmetic with + - * / and parentheses",
			Parser:  Arith(),
		},
		{
			Name:    "ident",
			Summary: "a single identifier",
			Parser:  Ident(),
		},
		{
			Name:    "keyword",
			Summary: "one of " + strings.Join(Keywords, ", "),
			Parser:  Keyword(),
		},
	}

	m := make(map[string]Grammar, len(gs))
	for _, g := range gs {
		m[g.Name] = g
	}

	return m
})

// Names returns the names of all registered grammars in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry()))
	for name := range registry() {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// All returns every registered grammar ordered by name.
func All() []Grammar {
	gs := make([]Grammar, 0, len(registry()))
	for _, name := range Names() {
		gs = append(gs, registry()[name])
	}

	return gs
}

// Lookup returns the grammar registered under name. For an unknown name the
// error suggests the registered names that match it best.
func Lookup(name string) (Grammar, error) {
	if g, ok := registry()[name]; ok {
		return g, nil
	}

	err := ErrUnknownGrammar.With(slog.String("name", name))

	s := Suggest(name)
	if len(s) == 0 {
		return Grammar{}, err.Wrap(fmt.Errorf("%q", name))
	}

	quoted := make([]string, len(s))
	for i, n := range s {
		quoted[i] = strconv.Quote(n)
	}

	return Grammar{}, err.
		Wrap(fmt.Errorf("%q (did you mean %s?)", name, strings.Join(quoted, " or "))).
		With(slog.Any("suggestions", s))
}

// Suggest returns registered names resembling name, best match first. Fuzzy
// subsequence matches are preferred; otherwise the nearest name by edit
// distance is returned if it is at most two edits away.
func Suggest(name string) []string {
	if name == "" {
		return nil
	}

	names := Names()

	if matches := fuzzy.Find(name, names); len(matches) > 0 {
		out := make([]string, len(matches))
		for i, m := range matches {
			out[i] = m.Str
		}

		return out
	}

	if d, best := edit.MinFix(name, names, edit.Levenshtein, 0); d <= 2 {
		return []string{best}
	}

	return nil
}
