/*
Package lexmach provides a reference tokenizer for the lexan token language,
driven by the lexmachine scanner generator.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

The hand-rolled analyzer of package scanner is the tokenizer of record. The
lexmachine tokenizer compiles the same token categories into a single DFA and
resolves ambiguities by longest match. It serves as a second opinion for
well-formed input: both tokenizers agree on the token categories and attributes
they produce. They differ in some corner cases of malformed input, e.g. "3.x",
where lexmachine salvages "3" as a number, or "3." at the end of input, which
lexmachine splits into "3" and an unknown ".". Identifiers are ASCII-only for
lexmachine, while the analyzer accepts any Unicode letters and digits: "ü" is an
identifier for the one and an unknown character for the other. Spans count bytes
instead of runes. The reference tokenizer does not maintain a symbol table.

	LM, err := lexmach.Lexer()
	if err != nil {
		// do error handling
	}

A scanner is instantiated for each concrete input sequence.
The scanner implements the scanner.Tokenizer interface.

	scan, err := LM.Scanner("input string to tokenize")
	if err != nil {
		// do error handling
	}
	for token := scan.NextToken(); token.TokType() != scanner.EOF; token = scan.NextToken() {
		…
	}

Clients who need a different token language may set up their own adapter with
NewLMAdapter.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
