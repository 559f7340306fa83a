/*
Package lexan is a small lexical analyzer toolbox.

It converts source text of a small imperative language into a sequence of
classified tokens (identifiers, keywords, numeric literals, operators,
punctuation and comments), tracking identifiers in a symbol table and
reporting unrecognized characters as recoverable errors. Package structure is
as follows:

■ scanner: Package scanner implements the hand-rolled analyzer, a backtracking
cursor and a family of recognizer state machines, one per token category.

■ scanner/lexmach: Package lexmach implements a reference tokenizer for the same
token language, driven by lexmachine.

■ symtab: Package symtab provides the symbol table for identifiers and keywords.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexan
