/*
Package symtab implements the symbol table of the lexical analyzer.

The table is an append-only registry of identifiers and keywords. Rows are
created on first sighting of a lexeme and are never mutated or deleted
afterwards. Every row carries an address, which equals its insertion index.
Addresses are assigned monotonically and are never reused or renumbered.

Keywords are a closed set, independent of the contents of any table.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package symtab

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexan.symtab'.
func tracer() tracing.Trace {
	return tracing.Select("lexan.symtab")
}
