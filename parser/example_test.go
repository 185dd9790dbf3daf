package parser_test

import (
	"fmt"

	"github.com/ardnew/mend/diag"
	"github.com/ardnew/mend/input"
	"github.com/ardnew/mend/parser"
)

func ExampleBetween() {
	call := parser.Between(parser.Str("foo("), parser.Char(')'), parser.Str("bar"))

	o := call(input.Make("foo(bar)"))
	fmt.Println(o.Value, o.Rest.IsEOF())

	o = call(input.Make("foo(bar"))
	fmt.Println(diag.Translate(o.Fail.Cause))
	// Output:
	// bar true
	// Hey, you're missing the closing delimiter, character ' ) '
}

func ExampleChoice() {
	open := parser.Expect(parser.Char('('), "need open")
	p := parser.Choice(open, parser.Char('x'))

	o := p(input.Make("y"))
	fmt.Println(o.Fail.Msg, o.Fail.Critical)
	// Output: need open true
}

func ExampleMany() {
	o := parser.Many(parser.Item())(input.Make("abc"))
	fmt.Println(o.Value, o.Rest.IsEOF())
	// Output: [a b c] true
}

func ExampleParse() {
	keyword := parser.Left(parser.Str("lambda"), parser.EOF())

	_, err := parser.Parse(keyword, "lamda")
	fmt.Println(err)
	// Output: parse error: 1:4: Hey, you're missing string ' lambda '
}
