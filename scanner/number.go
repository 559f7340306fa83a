package scanner

// States of the numeric literal DFA, which accepts
//
//     [+-]? digit+ ('.' digit+)? ([eE] [+-]? digit+)?
//
type numState int8

const (
	numStart     numState = iota
	numSign               // sign read
	numInt                // integer part
	numDot                // '.' read
	numFrac               // fractional part
	numExp                // exponent marker read
	numExpSign            // exponent sign read
	numExpDigits          // exponent digits
)

var numStateNames = []string{
	"start", "sign", "int", "dot", "frac", "exp", "exp-sign", "exp-digits",
}

func (s numState) String() string {
	return numStateNames[s]
}

// accepting is a predicate: does the input read so far form a complete literal?
func (s numState) accepting() bool {
	return s == numInt || s == numFrac || s == numExpDigits
}

// step performs a transition, returning false if there is none.
func (s numState) step(r rune) (numState, bool) {
	c := cat(r)
	switch s {
	case numStart:
		switch c {
		case catDigit:
			return numInt, true
		case catSign:
			return numSign, true
		}
	case numSign:
		if c == catDigit {
			return numInt, true
		}
	case numInt:
		switch c {
		case catDigit:
			return numInt, true
		case catDot:
			return numDot, true
		case catExp:
			return numExp, true
		}
	case numDot:
		if c == catDigit {
			return numFrac, true
		}
	case numFrac:
		switch c {
		case catDigit:
			return numFrac, true
		case catExp:
			return numExp, true
		}
	case numExp:
		switch c {
		case catDigit:
			return numExpDigits, true
		case catSign:
			return numExpSign, true
		}
	case numExpSign, numExpDigits:
		if c == catDigit {
			return numExpDigits, true
		}
	}
	return s, false
}

// unfinished is a predicate: may the DFA stop in state s at end of input,
// although s is not accepting? A bare sign never is a number.
func (s numState) unfinished() bool {
	return s == numDot || s == numExp || s == numExpSign
}

// recognizeNumber matches a numeric literal, greedily.
//
// When the DFA gets stuck in an accepting state, the lookahead is un-read and the
// literal is emitted. When it gets stuck anywhere else (e.g., "1.x", "1e+x") no
// partial literal is salvaged: all of the input read is un-read and the match fails.
// At end of input the prefix read so far is emitted as a literal ("3.", "1e-"),
// though without a value, unless it is empty or a bare sign.
func recognizeNumber(c *Cursor) (Token, bool) {
	mark := c.Pos()
	state := numStart
	for {
		r, ok := c.Next()
		if !ok {
			if state.unfinished() {
				tracer().Debugf("numeric literal finalized at end of input in state %s", state)
				return MakeToken(Num, c.since(mark), c.spanSince(mark)), true
			}
			break
		}
		next, moved := state.step(r)
		if !moved {
			c.Retract(1)
			break
		}
		state = next
	}
	if !state.accepting() {
		tracer().Debugf("numeric literal dead end in state %s", state)
		c.restore(mark)
		return Token{}, false
	}
	return c.token(Num, mark), true
}
