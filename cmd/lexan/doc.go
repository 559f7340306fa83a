/*
Package main provides a console driver for the lexan lexical analyzer.

The driver reads source lines until it receives a blank line (or end of
input), feeds the whole text to the analyzer and prints each token as
'kind' or 'kind(attribute)'. Then it prints the lexical errors, if any, and
the symbol table.

	lexan [-trace Debug|Info|Error] [-skip-comments] [-digest] [-ref]

With -ref, the lexmachine reference tokenizer is used instead of the hand-rolled
analyzer. With -digest, a fingerprint of the token sequence is printed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexan.cli'
func tracer() tracing.Trace {
	return tracing.Select("lexan.cli")
}
