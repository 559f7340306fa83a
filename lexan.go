package lexan

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Package scanner defines the token
// categories of the lexan language.
type TokType int

// TokTypeStringer is a type to be provided by a scanner to be able to print
// out token categories.
type TokTypeStringer func(TokType) string

// Tokens represent classified input. They are produced by a scanner.
//
// An example would be a token for a numeric literal:
//
//    TokType = Num         // category of this token
//    Lexeme  = "3.14e-10"  // lexeme as it appeared in the input, the token's attribute
//    Value   = 3.14e-10    // a float64 value
//    Span    = 67…75       // occurred from rune position 67 in the input
//
// Tokens are immutable once produced.
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span captures a run of input positions. A span denotes a start position and
// the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
