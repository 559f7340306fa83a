package lexmach

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/lexan"
	"github.com/npillmayer/lexan/scanner"
	"github.com/npillmayer/lexan/symtab"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'lexan.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lexan.scanner")
}

// Literal is a fixed lexeme together with its token category.
type Literal struct {
	Lexeme string
	Kind   lexan.TokType
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ('[', ';', …) and a list of keywords ("if", "for", …). Literals and
// keywords are added to the lexer before init is called. Lexmachine prefers
// the pattern added first if two patterns match a lexeme of the same length,
// thus keywords win over identifier patterns.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []Literal, keywords []string) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit.Lexeme, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit.Kind))
	}
	for _, name := range keywords {
		adapter.Lexer.Add([]byte(strings.ToLower(name)), MakeToken(scanner.Keyword))
	}
	init(adapter.Lexer)
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, fmt.Errorf("cannot compile lexmachine DFA: %w", err)
	}
	return adapter, nil
}

// The literals of the lexan language.
var literals = []Literal{
	{"(", scanner.OpParenthes}, {")", scanner.ClParenthes},
	{"[", scanner.OpBracket}, {"]", scanner.ClBracket},
	{"{", scanner.OpCurlyBracket}, {"}", scanner.ClCurlyBracket},
	{";", scanner.Semicolon}, {",", scanner.Comma}, {":", scanner.Colon},
	{">=", scanner.RelOp}, {"<=", scanner.RelOp}, {"==", scanner.RelOp}, {"!=", scanner.RelOp},
	{">", scanner.RelOp}, {"<", scanner.RelOp},
	{"=", scanner.AssignOp},
	{"+", scanner.ArithOp}, {"-", scanner.ArithOp}, {"*", scanner.ArithOp}, {"/", scanner.ArithOp},
}

var (
	initOnce  sync.Once // monitors one-time compilation
	lmAdapter *LMAdapter
	lmErr     error
)

// Lexer returns a lexmachine adapter for the lexan token language.
// The DFA is compiled once and shared by all scanners.
func Lexer() (*LMAdapter, error) {
	initOnce.Do(func() {
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`//[^\n]*`), makeComment)
			lexer.Add([]byte(`[0-9]+(\.[0-9]+)?([eE][\+\-]?[0-9]+)?`), MakeToken(scanner.Num))
			lexer.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9])*`), MakeToken(scanner.ID))
			lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
		}
		lmAdapter, lmErr = NewLMAdapter(init, literals, symtab.DefaultKeywords().Words())
	})
	return lmAdapter, lmErr
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, Error: logError, length: len(input)}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
	length  int // of input in bytes
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// NextToken is part of the Tokenizer interface.
//
// Input lexmachine cannot match is handled like the hand-rolled analyzer does:
// a single character is wrapped into an 'unknown' token and reported to the
// error handler.
func (lms *LMScanner) NextToken() lexan.Token {
	if lms.scanner == nil {
		return scanner.MakeToken(scanner.EOF, "", lexan.Span{})
	}
	tok, err, eof := lms.scanner.Next()
	if err != nil {
		if ui, is := err.(*machines.UnconsumedInput); is {
			return lms.unknown(ui)
		}
		lms.Error(err)
		eof = true
	}
	if eof {
		pos := uint64(lms.length)
		return scanner.MakeToken(scanner.EOF, "", lexan.Span{pos, pos})
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	return tok.(scanner.Token)
}

func (lms *LMScanner) unknown(ui *machines.UnconsumedInput) lexan.Token {
	r, size := utf8.DecodeRune(ui.Text[ui.StartTC:])
	span := lexan.Span{uint64(ui.StartTC), uint64(ui.StartTC + size)}
	lms.scanner.TC = ui.StartTC + size
	lms.Error(scanner.UnknownCharacter(r, span))
	return scanner.MakeToken(scanner.Unknown, string(r), span)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(kind lexan.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		if kind == scanner.Num {
			return scanner.MakeNumToken(string(m.Bytes), matchSpan(m)), nil
		}
		return scanner.MakeToken(kind, string(m.Bytes), matchSpan(m)), nil
	}
}

func makeComment(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	text := strings.TrimSpace(string(m.Bytes))
	return scanner.MakeToken(scanner.Comment, text, matchSpan(m)), nil
}

func matchSpan(m *machines.Match) lexan.Span {
	return lexan.Span{uint64(m.TC), uint64(m.TC + len(m.Bytes))}
}
