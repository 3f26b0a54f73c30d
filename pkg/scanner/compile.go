package scanner

import (
	"strings"
	"sync"

	"github.com/tidemark-labs/commentscan/pkg/lang"
)

// matchFunc reports whether the rule matches at pos in text. On success
// it returns the offset just past the match; every successful match
// consumes at least one byte.
type matchFunc func(text string, pos int) (end int, ok bool)

// Matcher is a dialect's rule set compiled into a priority-ordered list
// of match functions. Skip alternatives are always tried before keep
// alternatives at a given offset; within each class, registration order
// decides ties.
//
// A Matcher is immutable and safe for concurrent use.
type Matcher struct {
	dialect *lang.Dialect
	skip    []matchFunc
	keep    []matchFunc
}

// Compiled matchers, one per lowercase language name. A concurrent first
// compile of the same dialect produces equal matchers, so the race on
// first population is harmless; the lock keeps it cheap.
var (
	matchersMu sync.RWMutex
	matchers   = make(map[string]*Matcher)
)

// Compile translates a dialect's rules into a Matcher.
func Compile(d *lang.Dialect) *Matcher {
	m := &Matcher{dialect: d}
	for _, r := range d.Skip {
		m.skip = append(m.skip, compileRule(r))
	}
	for _, r := range d.Keep {
		m.keep = append(m.keep, compileRule(r))
	}
	return m
}

// ForLanguage resolves a language name and returns its compiled matcher,
// reusing a cached one when present.
func ForLanguage(name string) (*Matcher, error) {
	key := strings.ToLower(name)

	matchersMu.RLock()
	m := matchers[key]
	matchersMu.RUnlock()
	if m != nil {
		return m, nil
	}

	d, err := lang.Lookup(name)
	if err != nil {
		return nil, err
	}
	m = Compile(d)

	matchersMu.Lock()
	matchers[key] = m
	matchersMu.Unlock()
	return m, nil
}

// Dialect returns the dialect this matcher was compiled from.
func (m *Matcher) Dialect() *lang.Dialect {
	return m.dialect
}

func compileRule(r lang.Rule) matchFunc {
	switch r.Kind {
	case lang.KindQuoted:
		return matchQuoted(r.Delim, r.ExcludeTriple)
	case lang.KindTripleQuoted:
		return matchTriple(r.Delim)
	case lang.KindLineComment:
		return matchLine(r.Open)
	case lang.KindBlockComment:
		return matchBlock(r.Open, r.Close)
	default:
		return func(string, int) (int, bool) { return 0, false }
	}
}

// matchQuoted matches a quoted literal. A backslash consumes exactly the
// next byte, so an escaped delimiter never terminates. An unterminated
// literal does not match at all; the opening quote is then ordinary text.
func matchQuoted(delim byte, excludeTriple bool) matchFunc {
	return func(text string, pos int) (int, bool) {
		if text[pos] != delim {
			return 0, false
		}
		if excludeTriple && pos+2 < len(text) && text[pos+1] == delim && text[pos+2] == delim {
			return 0, false
		}
		for i := pos + 1; i < len(text); {
			switch text[i] {
			case '\\':
				i += 2
			case delim:
				return i + 1, true
			default:
				i++
			}
		}
		return 0, false
	}
}

// matchTriple matches a triple-quoted block through the first closing
// triple. A block left open extends to end of input.
func matchTriple(delim byte) matchFunc {
	return func(text string, pos int) (int, bool) {
		if pos+3 > len(text) || text[pos] != delim || text[pos+1] != delim || text[pos+2] != delim {
			return 0, false
		}
		for i := pos + 3; i+3 <= len(text); i++ {
			if text[i] == delim && text[i+1] == delim && text[i+2] == delim {
				return i + 3, true
			}
		}
		return len(text), true
	}
}

// matchLine matches a line comment up to, but not including, the line
// terminator.
func matchLine(open string) matchFunc {
	return func(text string, pos int) (int, bool) {
		if !strings.HasPrefix(text[pos:], open) {
			return 0, false
		}
		if i := strings.IndexByte(text[pos:], '\n'); i >= 0 {
			return pos + i, true
		}
		return len(text), true
	}
}

// matchBlock matches a block comment through the first close token,
// non-greedily. A comment left open extends to end of input.
func matchBlock(open, close string) matchFunc {
	return func(text string, pos int) (int, bool) {
		if !strings.HasPrefix(text[pos:], open) {
			return 0, false
		}
		if i := strings.Index(text[pos+len(open):], close); i >= 0 {
			return pos + len(open) + i + len(close), true
		}
		return len(text), true
	}
}
