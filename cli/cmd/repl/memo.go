package repl

import (
	"github.com/zeebo/xxh3"

	"github.com/ardnew/mend/cli/report"
	"github.com/ardnew/mend/diag"
	"github.com/ardnew/mend/grammar"
)

// memoLimit bounds the number of outcomes kept by a [memo].
const memoLimit = 256

// outcome is the memoised result of checking one input.
type outcome struct {
	text    string
	canon   string
	problem *report.Problem
}

// OK reports whether the input parsed.
func (o outcome) OK() bool { return o.problem == nil }

// memo caches check outcomes keyed by an xxh3 hash of the grammar name and
// input. The REPL checks its input on every keystroke, and editing often
// returns to text it has already seen. The oldest entry is evicted first.
type memo struct {
	opts    []diag.Option
	entries map[uint64]outcome
	order   []uint64
	hits    int
}

func newMemo(opts ...diag.Option) *memo {
	return &memo{opts: opts, entries: make(map[uint64]outcome)}
}

func memoKey(g grammar.Grammar, text string) uint64 {
	return xxh3.HashString(g.Name + "\x00" + text)
}

// check returns the outcome of checking text with g.
func (m *memo) check(g grammar.Grammar, text string) outcome {
	key := memoKey(g, text)

	if o, ok := m.entries[key]; ok && o.text == text {
		m.hits++

		return o
	}

	o := outcome{text: text}

	canon, err := g.Check(text, m.opts...)
	if r, ok := report.Make("", g.Name, canon, err); ok {
		o.canon = r.Canonical
		o.problem = r.Problem
	}

	if len(m.order) >= memoLimit {
		delete(m.entries, m.order[0])
		m.order = m.order[1:]
	}

	if _, ok := m.entries[key]; !ok {
		m.order = append(m.order, key)
	}

	m.entries[key] = o

	return o
}

// len returns the number of cached outcomes.
func (m *memo) len() int { return len(m.entries) }
