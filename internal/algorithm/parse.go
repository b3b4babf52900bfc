// Package algorithm turns free-form move notation into move tokens.
package algorithm

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Vocabulary is the move set of a puzzle.
type Vocabulary interface {
	Moves() []string
	NormalizesPrimes() bool
}

// Parse splits raw into tokens of v.
//
// Whitespace is removed first. For vocabularies that normalize primes,
// "2'" and "3'" are rewritten to "'2" and "'3". The remaining text is
// consumed greedily by the longest matching token; a position that matches
// nothing loses one character. Parse never fails, unparseable text simply
// yields fewer tokens.
func Parse(raw string, v Vocabulary) []string {
	text := stripSpace(raw)
	if v.NormalizesPrimes() {
		text = strings.NewReplacer("2'", "'2", "3'", "'3").Replace(text)
	}

	moves := byLength(v.Moves())
	var out []string
	for text != "" {
		matched := false
		for _, m := range moves {
			if strings.HasPrefix(text, m) {
				out = append(out, m)
				text = text[len(m):]
				matched = true
				break
			}
		}
		if !matched {
			_, size := utf8.DecodeRuneInString(text)
			text = text[size:]
		}
	}
	return out
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// byLength returns the tokens sorted longest first. Ties keep the
// vocabulary order.
func byLength(moves []string) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		if m != "" {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i]) > len(out[j])
	})
	return out
}

// Format joins tokens with single spaces.
func Format(tokens []string) string {
	return strings.Join(tokens, " ")
}

// ErrNoInverse is returned by Invert when a token has no inverse.
var ErrNoInverse = errors.New("algorithm: token has no inverse")

// Invert returns the sequence undoing tokens: reversed, each token replaced
// by its inverse.
func Invert(tokens []string, inverse func(string) (string, bool)) ([]string, error) {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		inv, ok := inverse(tok)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNoInverse, tok)
		}
		out[len(tokens)-1-i] = inv
	}
	return out, nil
}
