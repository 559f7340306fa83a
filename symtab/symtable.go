package symtab

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// --- Rows ------------------------------------------------------------------

// Kind is the category of a symbol table row.
type Kind int8

// Row kinds.
const (
	Identifier Kind = iota
	Keyword
)

func (k Kind) String() string {
	if k == Keyword {
		return "keyword"
	}
	return "id"
}

// Row is an entry of a symbol table. Rows are never changed after insertion.
type Row struct {
	Index   int    // position in the table dump
	Lexeme  string // unique within a table
	Kind    Kind   // identifier or keyword
	Address int    // insertion index
}

// String is a debug Stringer for rows.
func (r Row) String() string {
	return fmt.Sprintf("<row %d '%s':%s @%d>", r.Index, r.Lexeme, r.Kind, r.Address)
}

// --- Keywords --------------------------------------------------------------

// The keyword tokens of the language.
var keywordList = []interface{}{
	"if", "else", "while", "return", "int", "float", "bool", "for",
}

// KeywordSet is an immutable set of keywords.
type KeywordSet struct {
	set *treeset.Set
}

// NewKeywordSet creates a keyword set from a list of lexemes.
func NewKeywordSet(words ...string) KeywordSet {
	set := treeset.NewWith(utils.StringComparator)
	for _, w := range words {
		set.Add(w)
	}
	return KeywordSet{set: set}
}

// DefaultKeywords returns the keyword set of the language.
func DefaultKeywords() KeywordSet {
	set := treeset.NewWith(utils.StringComparator)
	set.Add(keywordList...)
	return KeywordSet{set: set}
}

// Contains is a predicate: is lexeme a keyword?
func (ks KeywordSet) Contains(lexeme string) bool {
	if ks.set == nil {
		return false
	}
	return ks.set.Contains(lexeme)
}

// Words returns the keywords in lexical order.
func (ks KeywordSet) Words() []string {
	if ks.set == nil {
		return nil
	}
	vals := ks.set.Values()
	words := make([]string, len(vals))
	for i, v := range vals {
		words[i] = v.(string)
	}
	return words
}

// === Symbol Tables =========================================================

// SymbolTable is a symbol table to store identifiers and keywords, in order of
// their first appearance. Lookup is by lexeme.
//
// A symbol table is not safe for concurrent use.
type SymbolTable struct {
	rows     *arraylist.List
	keywords KeywordSet
}

// NewSymbolTable creates an empty symbol table, using the default keywords of the
// language.
//
func NewSymbolTable() *SymbolTable {
	return NewSymbolTableWithKeywords(DefaultKeywords())
}

// NewSymbolTableWithKeywords creates an empty symbol table for a custom keyword set.
func NewSymbolTableWithKeywords(keywords KeywordSet) *SymbolTable {
	return &SymbolTable{
		rows:     arraylist.New(),
		keywords: keywords,
	}
}

// Resolve checks for a lexeme in the symbol table.
// Returns the row and a flag, signalling whether the lexeme has been found.
//
func (t *SymbolTable) Resolve(lexeme string) (Row, bool) {
	i, r := t.rows.Find(func(index int, value interface{}) bool {
		return value.(Row).Lexeme == lexeme
	})
	if i < 0 {
		return Row{}, false
	}
	return r.(Row), true
}

// LookupOrInsert finds a lexeme in the table, inserts a new identifier row if not found.
// Returns the address of the row.
//
func (t *SymbolTable) LookupOrInsert(lexeme string) int {
	if row, found := t.Resolve(lexeme); found {
		return row.Address
	}
	return t.insert(lexeme, Identifier).Address
}

// RegisterKeyword inserts a keyword row, if the lexeme is not already present.
// Registering a known lexeme is a no-op.
//
func (t *SymbolTable) RegisterKeyword(lexeme string) {
	if _, found := t.Resolve(lexeme); found {
		return
	}
	t.insert(lexeme, Keyword)
}

// IsKeyword is a predicate: is lexeme one of the keywords of this table?
// The test does not depend on the contents of the table.
func (t *SymbolTable) IsKeyword(lexeme string) bool {
	return t.keywords.Contains(lexeme)
}

// Keywords returns the keyword set of this table.
func (t *SymbolTable) Keywords() KeywordSet {
	return t.keywords
}

func (t *SymbolTable) insert(lexeme string, kind Kind) Row {
	addr := t.rows.Size()
	row := Row{
		Index:   addr,
		Lexeme:  lexeme,
		Kind:    kind,
		Address: addr,
	}
	t.rows.Add(row)
	tracer().Debugf("symbol table: inserted %v", row)
	return row
}

// Size counts the rows in a symbol table.
func (t *SymbolTable) Size() int {
	return t.rows.Size()
}

// Each iterates over each row in the table in insertion order, executing a mapper function.
func (t *SymbolTable) Each(mapper func(Row)) {
	t.rows.Each(func(_ int, value interface{}) {
		mapper(value.(Row))
	})
}

// Rows returns a dump of the table in insertion order.
func (t *SymbolTable) Rows() []Row {
	rows := make([]Row, 0, t.rows.Size())
	t.Each(func(r Row) {
		rows = append(rows, r)
	})
	return rows
}
