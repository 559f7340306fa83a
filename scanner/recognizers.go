package scanner

import (
	"strings"

	"github.com/npillmayer/lexan"
)

// A recognizer tries to match a token of its category at the current cursor
// position. On failure it must leave the cursor where it found it.
type recognizer func(c *Cursor) (Token, bool)

// skipWhitespace consumes delimiters. If it stops at a significant rune, that rune
// is un-read again; at end of input there is nothing to un-read.
func skipWhitespace(c *Cursor) {
	for {
		r, ok := c.Next()
		if !ok {
			return
		}
		if !isDelimiter(r) {
			c.Retract(1)
			return
		}
	}
}

// --- Punctuation -----------------------------------------------------------

type punctuationMark struct {
	char rune
	kind lexan.TokType
}

// Order is irrelevant, as punctuation marks never overlap with other categories.
var punctuationMarks = []punctuationMark{
	{'(', OpParenthes},
	{')', ClParenthes},
	{'[', OpBracket},
	{']', ClBracket},
	{'{', OpCurlyBracket},
	{'}', ClCurlyBracket},
	{';', Semicolon},
	{',', Comma},
	{':', Colon},
}

// punctuation creates a recognizer for a single punctuation character.
func punctuation(ch rune, kind lexan.TokType) recognizer {
	return func(c *Cursor) (Token, bool) {
		mark := c.Pos()
		if r, ok := c.Next(); ok && r == ch {
			return c.token(kind, mark), true
		}
		c.restore(mark)
		return Token{}, false
	}
}

// --- Comments --------------------------------------------------------------

// recognizeComment matches line comments starting with "//". A single '/' is
// un-read, leaving it to the arithmetic operator recognizer.
func recognizeComment(c *Cursor) (Token, bool) {
	mark := c.Pos()
	if r, ok := c.Next(); !ok || r != '/' {
		c.restore(mark)
		return Token{}, false
	}
	if r, ok := c.Next(); !ok || r != '/' {
		c.restore(mark)
		return Token{}, false
	}
	for {
		r, ok := c.Next()
		if !ok {
			break
		}
		if r == '\n' {
			c.Retract(1)
			break
		}
	}
	text := strings.TrimSpace(c.since(mark))
	return MakeToken(Comment, text, c.spanSince(mark)), true
}

// --- Operators -------------------------------------------------------------

// recognizeArithOp matches one of + - * /. There are no multi-character
// arithmetic operators.
func recognizeArithOp(c *Cursor) (Token, bool) {
	mark := c.Pos()
	r, ok := c.Next()
	if ok {
		switch r {
		case '+', '-', '*', '/':
			return c.token(ArithOp, mark), true
		}
	}
	c.restore(mark)
	return Token{}, false
}

// recognizeAssignOp matches a lone '='. It is tried after the relational operator
// recognizer, which will already have claimed "==".
func recognizeAssignOp(c *Cursor) (Token, bool) {
	mark := c.Pos()
	if r, ok := c.Next(); ok && r == '=' {
		return c.token(AssignOp, mark), true
	}
	c.restore(mark)
	return Token{}, false
}
