package scanner

import "github.com/npillmayer/lexan"

// Cursor is a re-windable character stream over an in-memory text.
// Positions count runes, not bytes.
//
// Invariant: 0 ≤ pos ≤ len(text).
type Cursor struct {
	text []rune
	pos  int
}

// NewCursor creates a cursor positioned at the start of text.
func NewCursor(text string) *Cursor {
	return &Cursor{text: []rune(text)}
}

// Next reads the rune at the current position and advances by one.
// At end of input it returns false and the position is left unchanged.
func (c *Cursor) Next() (rune, bool) {
	if c.pos >= len(c.text) {
		return 0, false
	}
	r := c.text[c.pos]
	c.pos++
	return r, true
}

// Retract moves the position back by n runes, clamped at 0.
// Negative values of n are ignored.
func (c *Cursor) Retract(n int) {
	if n <= 0 {
		return
	}
	c.pos -= n
	if c.pos < 0 {
		c.pos = 0
	}
}

// IsAtEnd is a predicate: is the cursor positioned at the end of input?
func (c *Cursor) IsAtEnd() bool {
	return c.pos >= len(c.text)
}

// Pos returns the current position.
func (c *Cursor) Pos() int {
	return c.pos
}

// restore un-reads everything consumed since mark. A recognizer passes the
// position it started from, so it never retracts more than it has read itself.
func (c *Cursor) restore(mark int) {
	c.Retract(c.pos - mark)
}

// text between mark and the current position.
func (c *Cursor) since(mark int) string {
	return string(c.text[mark:c.pos])
}

func (c *Cursor) spanSince(mark int) lexan.Span {
	return lexan.Span{uint64(mark), uint64(c.pos)}
}

// token wraps everything consumed since mark into a token of type typ.
func (c *Cursor) token(typ lexan.TokType, mark int) Token {
	if typ == Num {
		return MakeNumToken(c.since(mark), c.spanSince(mark))
	}
	return MakeToken(typ, c.since(mark), c.spanSince(mark))
}
