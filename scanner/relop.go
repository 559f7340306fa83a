package scanner

// States of the relational operator DFA.
type relState int8

const (
	relStart   relState = iota
	relGreater          // >
	relLess             // <
	relEqual            // =
	relBang             // !
	relDouble           // >= <= == !=
)

// final is a predicate: may the DFA stop in state s without reading '='?
// A lone '=' is an assignment, a lone '!' is no token at all.
func (s relState) final() bool {
	return s == relGreater || s == relLess || s == relDouble
}

func (s relState) step(r rune) (relState, bool) {
	switch s {
	case relStart:
		switch r {
		case '>':
			return relGreater, true
		case '<':
			return relLess, true
		case '=':
			return relEqual, true
		case '!':
			return relBang, true
		}
	case relGreater, relLess, relEqual, relBang:
		if r == '=' {
			return relDouble, true
		}
	}
	return s, false
}

// recognizeRelOp matches > >= < <= == !=.
//
// If the DFA gets stuck after a single '>' or '<', only the lookahead is un-read.
// If it gets stuck after '=' or '!', everything it has read is un-read and the
// match fails.
func recognizeRelOp(c *Cursor) (Token, bool) {
	mark := c.Pos()
	state := relStart
	for state != relDouble {
		r, ok := c.Next()
		if !ok {
			break
		}
		next, moved := state.step(r)
		if !moved {
			c.Retract(1)
			break
		}
		state = next
	}
	if !state.final() {
		c.restore(mark)
		return Token{}, false
	}
	return c.token(RelOp, mark), true
}
