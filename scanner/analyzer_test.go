package scanner

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/lexan/symtab"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func tokenStrings(a *Analyzer) []string {
	var s []string
	for _, token := range ScanAll(a) {
		s = append(s, TokenString(token))
	}
	return s
}

func TestAnalyzerScenarios(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexan.scanner")
	defer teardown()
	//
	for i, test := range []struct {
		input  string
		tokens []string
		errors int
	}{
		{
			input:  "x = 3 + 4;",
			tokens: []string{"id(x)", "assignOp(=)", "num(3)", "arithOp(+)", "num(4)", "semicolon(;)"},
		},
		{
			input: "if (x >= 10) { y = y - 1; }",
			tokens: []string{"keyword(if)", "opParenthes(()", "id(x)", "relOp(>=)", "num(10)",
				"clParenthes())", "opCurlyBracket({)", "id(y)", "assignOp(=)", "id(y)",
				"arithOp(-)", "num(1)", "semicolon(;)", "clCurlyBracket(})"},
		},
		{
			input:  "a != b",
			tokens: []string{"id(a)", "relOp(!=)", "id(b)"},
		},
		{
			input:  "a ! b",
			tokens: []string{"id(a)", "unknown(!)", "id(b)"},
			errors: 1,
		},
		{
			input:  "3.14e-10",
			tokens: []string{"num(3.14e-10)"},
		},
		{
			input:  "@",
			tokens: []string{"unknown(@)"},
			errors: 1,
		},
		{
			input:  "a==b=c",
			tokens: []string{"id(a)", "relOp(==)", "id(b)", "assignOp(=)", "id(c)"},
		},
		{
			input:  "x = y / 2 // halve it\nz: [a, b]",
			tokens: []string{"id(x)", "assignOp(=)", "id(y)", "arithOp(/)", "num(2)", "comment(// halve it)",
				"id(z)", "colon(:)", "opBracket([)", "id(a)", "comma(,)", "id(b)", "clBracket(])"},
		},
		{
			input:  "-5",
			tokens: []string{"arithOp(-)", "num(5)"},
		},
		{
			input:  "3.x",
			tokens: []string{"unknown(3)", "unknown(.)", "id(x)"},
			errors: 2,
		},
		{
			input:  "x = 3.",
			tokens: []string{"id(x)", "assignOp(=)", "num(3.)"},
		},
		{
			input:  "y = 3e",
			tokens: []string{"id(y)", "assignOp(=)", "num(3e)"},
		},
		{
			input:  "while x <= 2e3 return",
			tokens: []string{"keyword(while)", "id(x)", "relOp(<=)", "num(2e3)", "keyword(return)"},
		},
		{
			input:  "  \n\t ",
			tokens: nil,
		},
	} {
		a := NewAnalyzer(test.input)
		if diff := cmp.Diff(test.tokens, tokenStrings(a)); diff != "" {
			t.Errorf("test %d (%q): token mismatch (-want +got):\n%s", i, test.input, diff)
		}
		if len(a.Errors()) != test.errors || a.HasErrors() != (test.errors > 0) {
			t.Errorf("test %d (%q): expected %d errors, have %v", i, test.input, test.errors, a.Errors())
		}
	}
}

func TestUnknownCharacter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexan.scanner")
	defer teardown()
	//
	var handled []error
	a := NewAnalyzer("a ! b", WithErrorHandler(func(e error) {
		handled = append(handled, e)
	}))
	ScanAll(a)
	if len(a.Errors()) != 1 {
		t.Fatalf("expected 1 lexical error, have %d", len(a.Errors()))
	}
	lexerr := a.Errors()[0]
	if lexerr.Char != '!' || lexerr.Message != "Lexical error: Unknown character '!'" {
		t.Errorf("unexpected lexical error %q", lexerr.Message)
	}
	if lexerr.Span.From() != 2 || lexerr.Span.To() != 3 {
		t.Errorf("expected error span (2…3), have %v", lexerr.Span)
	}
	if len(handled) != 1 {
		t.Fatalf("expected error handler to be called once, was called %d times", len(handled))
	}
	var le LexicalError
	if !errors.As(handled[0], &le) || le.Char != '!' {
		t.Errorf("expected handler to receive a LexicalError, got %v", handled[0])
	}
}

func TestUnknownLeavesSymbolTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexan.scanner")
	defer teardown()
	//
	a := NewAnalyzer("@")
	ScanAll(a)
	if a.SymbolTable().Size() != 0 {
		t.Errorf("expected symbol table to be unchanged, has %d rows", a.SymbolTable().Size())
	}
}

func TestSymbolTableAddresses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexan.scanner")
	defer teardown()
	//
	a := NewAnalyzer("if x { y = x; } else { z = y + x; } if")
	ScanAll(a)
	want := []symtab.Row{
		{Index: 0, Lexeme: "if", Kind: symtab.Keyword, Address: 0},
		{Index: 1, Lexeme: "x", Kind: symtab.Identifier, Address: 1},
		{Index: 2, Lexeme: "y", Kind: symtab.Identifier, Address: 2},
		{Index: 3, Lexeme: "else", Kind: symtab.Keyword, Address: 3},
		{Index: 4, Lexeme: "z", Kind: symtab.Identifier, Address: 4},
	}
	if diff := cmp.Diff(want, a.SymbolTable().Rows()); diff != "" {
		t.Errorf("symbol table mismatch (-want +got):\n%s", diff)
	}
}

func TestSharedSymbolTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexan.scanner")
	defer teardown()
	//
	st := symtab.NewSymbolTable()
	ScanAll(NewAnalyzer("a b", WithSymbolTable(st)))
	ScanAll(NewAnalyzer("b c", WithSymbolTable(st)))
	if st.Size() != 3 {
		t.Errorf("expected 3 rows in shared table, have %d", st.Size())
	}
	if row, _ := st.Resolve("b"); row.Address != 1 {
		t.Errorf("expected 'b' to keep address 1, has %d", row.Address)
	}
}

func TestSkipComments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexan.scanner")
	defer teardown()
	//
	input := "x // first\n// second\ny"
	with := tokenStrings(NewAnalyzer(input))
	if len(with) != 4 {
		t.Errorf("expected comments to be passed by default, have %v", with)
	}
	without := tokenStrings(NewAnalyzer(input, SkipComments(true)))
	if diff := cmp.Diff([]string{"id(x)", "id(y)"}, without); diff != "" {
		t.Errorf("comments not skipped (-want +got):\n%s", diff)
	}
}

func TestTokenSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexan.scanner")
	defer teardown()
	//
	a := NewAnalyzer("ab >= 1.5")
	want := [][2]uint64{{0, 2}, {3, 5}, {6, 9}}
	for i, token := range ScanAll(a) {
		if s := token.Span(); s.From() != want[i][0] || s.To() != want[i][1] {
			t.Errorf("token %v: expected span %v, have %v", token, want[i], s)
		}
	}
	eof := a.NextToken()
	if eof.TokType() != EOF || eof.Span().From() != 9 {
		t.Errorf("expected EOF at 9, have %v at %v", eof, eof.Span())
	}
	if a.NextToken().TokType() != EOF {
		t.Errorf("expected EOF to be sticky")
	}
}

// NextToken advances by at least one character unless it returns EOF.
func TestProgress(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexan.scanner")
	defer teardown()
	//
	for _, input := range []string{
		"!!!===", "3.e+.-", "#$%^&", "a1b2 3c4", "// only comment", "+-*/", "€ ü x",
		"1e", "1.", "=", "!", "x!=!y",
	} {
		a := NewAnalyzer(input)
		runes := len([]rune(input))
		for calls := 0; ; calls++ {
			if calls > runes {
				t.Fatalf("%q: analyzer does not terminate", input)
			}
			before := a.Pos()
			token := a.NextToken()
			if token.TokType() == EOF {
				break
			}
			if a.Pos() <= before {
				t.Errorf("%q: token %v did not advance input", input, token)
			}
		}
	}
}

func TestKindString(t *testing.T) {
	if KindString(Semicolon) != "semicolon" || KindString(Comment) != "comment" {
		t.Errorf("kind names out of order")
	}
	if KindString(EOF) != "EOF" || KindString(99) != "<illegal>" {
		t.Errorf("unexpected names for special kinds")
	}
	if s := MakeToken(ArithOp, "+", [2]uint64{}).String(); s != "arithOp(+)" {
		t.Errorf("expected arithOp(+), have %s", s)
	}
	if s := MakeToken(EOF, "", [2]uint64{}).String(); s != "EOF" {
		t.Errorf("expected EOF, have %s", s)
	}
}
