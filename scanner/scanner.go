/*
Package scanner implements a hand-rolled lexical analyzer for a small imperative
language.

The analyzer is built from a backtracking input cursor and a family of
recognizers, one per token category. Recognizers are tried in a fixed priority
order against the current cursor position. Every recognizer either produces a
token or restores the cursor to exactly the position it started from, so the
next recognizer in line sees the same input:

	comment, ( ) [ ] { } ; , :, relational op, arithmetic op, assignment,
	numeric literal, identifier/keyword

If no recognizer matches, the analyzer consumes a single character, produces an
'unknown' token for it and records a LexicalError. Scanning therefore always
makes progress and never aborts.

	a := scanner.NewAnalyzer("if (x >= 10) { y = y - 1; }")
	for token := a.NextToken(); token.TokType() != scanner.EOF; token = a.NextToken() {
		fmt.Println(token)
	}

An alternative tokenizer for the same token language, driven by lexmachine,
lives in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/lexan"
	"github.com/npillmayer/lexan/symtab"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexan.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lexan.scanner")
}

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() lexan.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// --- Token categories ------------------------------------------------------

// EOF is the token type of the end-of-input sentinel.
const EOF lexan.TokType = -1

// Token categories of the language. Punctuation marks are named individually.
const (
	Unknown lexan.TokType = iota
	OpParenthes
	ClParenthes
	OpBracket
	ClBracket
	OpCurlyBracket
	ClCurlyBracket
	Semicolon
	Comma
	Colon
	ArithOp
	RelOp
	AssignOp
	Num
	ID
	Keyword
	Comment
)

var kindNames = []string{
	"unknown",
	"opParenthes", "clParenthes",
	"opBracket", "clBracket",
	"opCurlyBracket", "clCurlyBracket",
	"semicolon", "comma", "colon",
	"arithOp", "relOp", "assignOp",
	"num", "id", "keyword", "comment",
}

// KindString returns the name of a token category.
func KindString(k lexan.TokType) string {
	if k == EOF {
		return "EOF"
	}
	if k < 0 || int(k) >= len(kindNames) {
		return "<illegal>"
	}
	return kindNames[k]
}

var _ lexan.TokTypeStringer = KindString

// --- Tokens ----------------------------------------------------------------

// Token is the token type produced by the scanners of this package. A token's
// attribute is its lexeme: the matched text, or the normalized operator text.
// Tokens are immutable.
type Token struct {
	kind   lexan.TokType
	lexeme string
	val    interface{}
	span   lexan.Span
}

var _ lexan.Token = Token{}

// MakeToken creates a token without a value.
func MakeToken(typ lexan.TokType, lexeme string, span lexan.Span) Token {
	return Token{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

// MakeNumToken creates a numeric literal token. Its value is the lexeme converted
// to float64.
func MakeNumToken(lexeme string, span lexan.Span) Token {
	t := MakeToken(Num, lexeme, span)
	if v, ok := numericValue(lexeme); ok {
		t.val = v
	}
	return t
}

func eofToken(pos uint64) Token {
	return Token{kind: EOF, span: lexan.Span{pos, pos}}
}

func (t Token) TokType() lexan.TokType {
	return t.kind
}

func (t Token) Value() interface{} {
	return t.val
}

func (t Token) Lexeme() string {
	return t.lexeme
}

func (t Token) Span() lexan.Span {
	return t.span
}

// String prints a token as kind or kind(attribute).
func (t Token) String() string {
	return TokenString(t)
}

// TokenString formats any token as kind or kind(attribute).
func TokenString(t lexan.Token) string {
	if t.Lexeme() == "" {
		return KindString(t.TokType())
	}
	return KindString(t.TokType()) + "(" + t.Lexeme() + ")"
}

// ScanAll reads tokens from a tokenizer until EOF. The EOF token is not part of the
// result.
func ScanAll(t Tokenizer) []lexan.Token {
	var tokens []lexan.Token
	for token := t.NextToken(); token.TokType() != EOF; token = t.NextToken() {
		tokens = append(tokens, token)
	}
	return tokens
}

// --- Analyzer options ------------------------------------------------------

// Option configures an analyzer.
type Option func(a *Analyzer)

// SkipComments sets or clears mode-flag SkipComments. With SkipComments set, comment
// tokens are recognized but not passed to the client.
func SkipComments(b bool) Option {
	return func(a *Analyzer) {
		a.skipComments = b
	}
}

// WithSymbolTable lets an analyzer record identifiers into an existing symbol table.
func WithSymbolTable(st *symtab.SymbolTable) Option {
	return func(a *Analyzer) {
		if st != nil {
			a.symbols = st
		}
	}
}

// WithErrorHandler sets an error handler for lexical errors.
func WithErrorHandler(h func(error)) Option {
	return func(a *Analyzer) {
		a.SetErrorHandler(h)
	}
}
