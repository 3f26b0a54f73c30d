// Package plid guesses which programming language a code snippet is
// written in. It votes on keyword/operator frequency and can additionally
// consult an external classification model over a sliding window of the
// text. The result is a registry name consumable by pkg/scanner; the
// extraction core itself knows nothing about plid.
package plid

import (
	"sort"
	"unicode"
)

// TokenKind separates the two feature classes that carry votes.
type TokenKind int

const (
	Keyword TokenKind = iota
	Operator
)

// Token is one candidate feature extracted from a snippet.
type Token struct {
	Text string
	Kind TokenKind
}

// Identify counts, per language, how many tokens hit that language's
// feature tables and returns the name with the most votes. Ties go to
// the earlier language in voteOrder, mirroring the original insertion
// order of the feature tables.
func Identify(tokens []Token) string {
	votes := make(map[string]int, len(features))
	for name, fs := range features {
		for _, tok := range tokens {
			switch tok.Kind {
			case Keyword:
				if _, ok := fs.Keywords[tok.Text]; ok {
					votes[name]++
				}
			case Operator:
				if _, ok := fs.Operators[tok.Text]; ok {
					votes[name]++
				}
			}
		}
	}

	best := voteOrder[0]
	for _, name := range voteOrder {
		if votes[name] > votes[best] {
			best = name
		}
	}
	return best
}

// operatorTokens is the union of all known operators, longest first, so
// that carving a symbol run prefers ":=" over ":" and "===" over "==".
var operatorTokens = func() []string {
	seen := map[string]struct{}{}
	var ops []string
	for _, fs := range features {
		for op := range fs.Operators {
			if _, ok := seen[op]; !ok {
				seen[op] = struct{}{}
				ops = append(ops, op)
			}
		}
	}
	sort.Slice(ops, func(i, j int) bool {
		if len(ops[i]) != len(ops[j]) {
			return len(ops[i]) > len(ops[j])
		}
		return ops[i] < ops[j]
	})
	return ops
}()

// Tokenize splits a snippet into keyword and operator candidates.
// Identifier runs become keyword candidates; runs of symbol characters
// are carved into known operators, longest match first.
func Tokenize(code string) []Token {
	var tokens []Token
	runes := []rune(code)

	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsLetter(r) || r == '_':
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '_') {
				i++
			}
			tokens = append(tokens, Token{Text: string(runes[start:i]), Kind: Keyword})
		case isSymbol(r):
			start := i
			for i < len(runes) && isSymbol(runes[i]) {
				i++
			}
			tokens = append(tokens, carveOperators(string(runes[start:i]))...)
		default:
			i++
		}
	}
	return tokens
}

// carveOperators splits a symbol run into known operators, preferring the
// longest at each position. Unknown leading symbols are dropped one at a
// time.
func carveOperators(run string) []Token {
	var tokens []Token
	for len(run) > 0 {
		matched := false
		for _, op := range operatorTokens {
			if len(op) <= len(run) && run[:len(op)] == op {
				tokens = append(tokens, Token{Text: op, Kind: Operator})
				run = run[len(op):]
				matched = true
				break
			}
		}
		if !matched {
			run = run[1:]
		}
	}
	return tokens
}

func isSymbol(r rune) bool {
	switch r {
	case '-', '>', '<', '=', '!', '?', ':', '.', '&', '^', '*', '@', '$', '`', '/', '%', '+', '|', '~':
		return true
	}
	return false
}

// Guess tokenizes the snippet and votes. It is total and always returns
// one of the registry names.
func Guess(code string) string {
	return Identify(Tokenize(code))
}
