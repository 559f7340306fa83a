package scanner

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/npillmayer/lexan"
)

type digestRecord struct {
	Kind      string
	Attribute string
}

type digestInput struct {
	Tokens []digestRecord
}

// Digest computes a fingerprint of a token sequence. Only token categories and
// attributes contribute, spans and values do not. Two tokenizers agree on an input
// if the digests of their token sequences are equal.
func Digest(tokens []lexan.Token) (string, error) {
	in := digestInput{Tokens: make([]digestRecord, len(tokens))}
	for i, t := range tokens {
		in.Tokens[i] = digestRecord{
			Kind:      KindString(t.TokType()),
			Attribute: t.Lexeme(),
		}
	}
	h, err := structhash.Hash(in, 1)
	if err != nil {
		return "", fmt.Errorf("cannot compute token digest: %w", err)
	}
	return h, nil
}
