package scanner

import (
	"github.com/npillmayer/lexan"
	"github.com/npillmayer/lexan/symtab"
	"github.com/npillmayer/schuko/gconf"
)

// Analyzer is the hand-rolled lexical analyzer. It owns a cursor over its input
// and a symbol table. Create one with NewAnalyzer.
//
// An analyzer is not safe for concurrent use.
type Analyzer struct {
	cursor       *Cursor
	symbols      *symtab.SymbolTable
	recognizers  []recognizer // in order of priority
	errors       []LexicalError
	Error        func(error) // error handler
	skipComments bool
}

var _ Tokenizer = (*Analyzer)(nil)

// NewAnalyzer creates an analyzer for an input text. Unless configured otherwise
// with WithSymbolTable, it records identifiers into a fresh symbol table.
func NewAnalyzer(input string, opts ...Option) *Analyzer {
	a := &Analyzer{
		cursor: NewCursor(input),
		Error:  logError,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.symbols == nil {
		a.symbols = symtab.NewSymbolTable()
	}
	a.recognizers = priorities(a.symbols)
	return a
}

// priorities lists the recognizers in the order they are tried. The relational
// operator recognizer has to precede the assignment recognizer, and the
// arithmetic operator recognizer has to precede the numeric literal recognizer,
// which would otherwise claim signs.
func priorities(st *symtab.SymbolTable) []recognizer {
	rs := []recognizer{recognizeComment}
	for _, p := range punctuationMarks {
		rs = append(rs, punctuation(p.char, p.kind))
	}
	return append(rs,
		recognizeRelOp,
		recognizeArithOp,
		recognizeAssignOp,
		recognizeNumber,
		identifiers(st),
	)
}

// SetErrorHandler sets an error handler for the scanner.
func (a *Analyzer) SetErrorHandler(h func(error)) {
	if h == nil {
		a.Error = logError
		return
	}
	a.Error = h
}

// NextToken is part of the Tokenizer interface. It returns a token of type EOF at
// the end of input.
//
// Every call not returning EOF advances the input by at least one character.
func (a *Analyzer) NextToken() lexan.Token {
	for {
		token := a.nextToken()
		if a.skipComments && token.TokType() == Comment {
			tracer().Debugf("skipping comment %q", token.Lexeme())
			continue
		}
		return token
	}
}

func (a *Analyzer) nextToken() lexan.Token {
	skipWhitespace(a.cursor)
	if a.cursor.IsAtEnd() {
		tracer().Debugf("analyzer reached end of input")
		return eofToken(uint64(a.cursor.Pos()))
	}
	for _, recognize := range a.recognizers {
		if token, ok := recognize(a.cursor); ok {
			tracer().Debugf("token %v at %v", token, token.Span())
			return token
		}
	}
	mark := a.cursor.Pos()
	r, _ := a.cursor.Next()
	token := a.cursor.token(Unknown, mark)
	err := UnknownCharacter(r, token.Span())
	a.errors = append(a.errors, err)
	a.Error(err)
	if gconf.GetBool("panic-on-lexical-error") {
		panic(err)
	}
	return token
}

// Errors returns the lexical errors in order of occurrence.
func (a *Analyzer) Errors() []LexicalError {
	return a.errors
}

// HasErrors is a predicate: did the analyzer encounter any lexical errors?
func (a *Analyzer) HasErrors() bool {
	return len(a.errors) > 0
}

// SymbolTable returns the symbol table of the analyzer.
func (a *Analyzer) SymbolTable() *symtab.SymbolTable {
	return a.symbols
}

// Pos returns the current input position of the analyzer.
func (a *Analyzer) Pos() int {
	return a.cursor.Pos()
}
