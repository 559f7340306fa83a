package scanner

import (
	"fmt"

	"github.com/npillmayer/lexan"
)

// LexicalError reports a character no recognizer accepts. Lexical errors are not
// fatal: the analyzer produces an 'unknown' token for the character and carries on.
type LexicalError struct {
	Message string
	Char    rune
	Span    lexan.Span
}

// UnknownCharacter creates the lexical error for a character no recognizer accepts.
func UnknownCharacter(r rune, span lexan.Span) LexicalError {
	return LexicalError{
		Message: fmt.Sprintf("Lexical error: Unknown character '%c'", r),
		Char:    r,
		Span:    span,
	}
}

func (e LexicalError) Error() string {
	return e.Message
}
