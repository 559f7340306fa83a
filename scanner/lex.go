package scanner

import (
	"strconv"
	"unicode"
)

// --- Category codes --------------------------------------------------------

// CatCode is a character category, as seen by the recognizers.
type CatCode int16

const (
	catOther CatCode = iota
	catLetter
	catDigit
	catSpace // delimiters between tokens
	catSign  // + -
	catDot   // .
	catExp   // e E
)

// cat returns the category of a rune. Exponent markers are letters, too; isLetter
// accounts for that.
func cat(r rune) CatCode {
	switch r {
	case ' ', '\t', '\n', '\r':
		return catSpace
	case '+', '-':
		return catSign
	case '.':
		return catDot
	case 'e', 'E':
		return catExp
	}
	if unicode.IsDigit(r) {
		return catDigit
	}
	if unicode.IsLetter(r) {
		return catLetter
	}
	return catOther
}

func isLetter(r rune) bool {
	c := cat(r)
	return c == catLetter || c == catExp
}

func isDigit(r rune) bool {
	return cat(r) == catDigit
}

func isAlnum(r rune) bool {
	return isLetter(r) || isDigit(r)
}

func isDelimiter(r rune) bool {
	return cat(r) == catSpace
}

// --- Utilities -------------------------------------------------------------

// numericValue converts the lexeme of a numeric literal to a float.
// Lexemes with non-ASCII digits are valid literals but have no value.
func numericValue(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return f, true // ±Inf or 0
		}
		tracer().Debugf("numeric literal %q has no float value: %v", s, err)
		return 0, false
	}
	return f, true
}
