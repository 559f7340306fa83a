package scanner

import "github.com/npillmayer/lexan/symtab"

// identifiers creates the identifier/keyword recognizer. Keywords are registered
// in the symbol table as keywords, all other identifiers are looked up or
// inserted.
func identifiers(st *symtab.SymbolTable) recognizer {
	return func(c *Cursor) (Token, bool) {
		mark := c.Pos()
		if r, ok := c.Next(); !ok || !isLetter(r) {
			c.restore(mark)
			return Token{}, false
		}
		for {
			r, ok := c.Next()
			if !ok {
				break
			}
			if !isAlnum(r) {
				c.Retract(1)
				break
			}
		}
		lexeme := c.since(mark)
		if st.IsKeyword(lexeme) {
			st.RegisterKeyword(lexeme)
			return c.token(Keyword, mark), true
		}
		addr := st.LookupOrInsert(lexeme)
		tracer().Debugf("identifier %q has address %d", lexeme, addr)
		return c.token(ID, mark), true
	}
}
