package diag

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ardnew/mend/edit"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want string
	}{
		{"char", CharError{Expected: '('}, "Hey, you're missing character ' ( ' "},
		{"digit", DigitError{}, "Hey, you're missing digit "},
		{"letter", LetterError{}, "Hey, you're missing letter "},
		{"upper", LetterError{Case: UpperCase}, "Hey, you're missing uppercase letter "},
		{"space", WhitespaceError{}, "Hey, you're missing white space "},
		{"string", StringError{Expected: "foo"}, "Hey, you're missing string ' foo ' "},
		{"escaped", CharError{Expected: '\n'}, `Hey, you're missing character ' \n ' `},
		{"set", SatError{Candidates: []string{"if", "do"}}, "Hey, you're missing one of ' if ' ' do ' "},
		{"nil", nil, "Hey, you're missing more input "},
		{"eof", EOFError{}, "Hey, you're missing the end of input "},
		{
			"left",
			BetweenLeftError{Cause: CharError{Expected: '('}},
			"Hey, you're missing the opening delimiter, character ' ( ' ",
		},
		{
			"nested",
			BetweenRightError{Cause: BetweenLeftError{Cause: StringError{Expected: "[["}}},
			"Hey, you're missing the closing delimiter, the opening delimiter, string ' [[ ' ",
		},
		{
			"malformed",
			BetweenRightError{},
			"Hey, you're missing the closing delimiter, more input ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (Translator{Kind: tt.kind}).String(); got != tt.want {
				t.Errorf("Translator.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTranslate_CharSuffix(t *testing.T) {
	got := Translate(CharError{Expected: '('})

	if !strings.HasPrefix(got, Prefix) {
		t.Errorf("%q lacks prefix %q", got, Prefix)
	}

	if !strings.HasSuffix(got, "character ' ( ' ") {
		t.Errorf("%q lacks the character explanation", got)
	}
}

func TestTranslate_DeepChain(t *testing.T) {
	var k Kind = DigitError{}
	for range maxChain * 2 {
		k = BetweenLeftError{Cause: k}
	}

	got := Translate(k)
	if !strings.HasSuffix(got, "more input ") {
		t.Errorf("over-long chain should end with the terminal kind: %q", got[len(got)-40:])
	}
}

func TestRoot(t *testing.T) {
	k := BetweenLeftError{Cause: BetweenRightError{Cause: DigitError{}}}

	if _, ok := Root(k).(DigitError); !ok {
		t.Errorf("Root() = %v, want DigitError", Root(k))
	}

	if _, ok := Root(nil).(ItemError); !ok {
		t.Errorf("Root(nil) = %v, want ItemError", Root(nil))
	}
}

func TestSearchSpace(t *testing.T) {
	tests := []struct {
		kind Kind
		size int
	}{
		{CharError{Expected: 'x'}, 1},
		{DigitError{}, 10},
		{LetterError{}, 26},
		{LetterError{Case: UpperCase}, 26},
		{WhitespaceError{}, 3},
		{StringError{Expected: "abc"}, 1},
		{SatError{Candidates: []string{"a", "b"}}, 2},
		{SatError{}, 1},
		{ItemError{}, 1},
		{EOFError{}, 1},
		{BetweenLeftError{Cause: DigitError{}}, 10},
	}

	for _, tt := range tests {
		if got := len(tt.kind.SearchSpace()); got != tt.size {
			t.Errorf("%v search space size = %d, want %d", tt.kind, got, tt.size)
		}
	}

	if got := (LetterError{Case: UpperCase}).SearchSpace()[0]; got != "A" {
		t.Errorf("upper search space starts with %q", got)
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name   string
		kind   Kind
		actual string
		opts   []Option
		want   Fix
	}{
		{
			"digit",
			DigitError{},
			"x",
			nil,
			Fix{Actual: "x", Candidate: "0", Distance: 1},
		},
		{
			"wrapped char",
			BetweenRightError{Cause: CharError{Expected: ')'}},
			"]",
			nil,
			Fix{Actual: "]", Candidate: ")", Distance: 1},
		},
		{
			"string typo",
			StringError{Expected: "lambda"},
			"lamda",
			nil,
			Fix{Actual: "lamda", Candidate: "lambda", Distance: 1},
		},
		{
			"keyword set",
			SatError{Candidates: []string{"define", "lambda", "let"}},
			"lamb",
			[]Option{WithDistance(edit.LCSDistance)},
			Fix{Actual: "lamb", Candidate: "lambda", Distance: 2},
		},
		{
			"accumulated",
			LetterError{Case: LowerCase},
			"a",
			[]Option{WithPrevEdit(3)},
			Fix{Actual: "a", Candidate: "a", Distance: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Suggest(tt.kind, tt.actual, tt.opts...); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Suggest() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestWidth(t *testing.T) {
	if got := Width(StringError{Expected: "foo("}); got != 4 {
		t.Errorf("Width(string) = %d, want 4", got)
	}

	if got := Width(ItemError{}); got != 1 {
		t.Errorf("Width(item) = %d, want 1", got)
	}
}

func TestProposeFix(t *testing.T) {
	kinds := []Kind{
		CharError{Expected: 'a'},
		DigitError{},
		BetweenLeftError{Cause: StringError{Expected: "x"}},
	}

	for _, k := range kinds {
		if got := k.ProposeFix("kitten", "sitting"); got != 3 {
			t.Errorf("%v.ProposeFix() = %d, want 3", k, got)
		}
	}
}
