package lang

// RuleKind identifies the syntactic form a rule describes.
type RuleKind int

const (
	// KindQuoted is a single-line-delimiter quoted literal ("...", '...', `...`).
	// A backslash escapes exactly the next character, so an escaped delimiter
	// never terminates the literal.
	KindQuoted RuleKind = iota
	// KindTripleQuoted is a triple-quoted block ("""...""" or '''...''').
	KindTripleQuoted
	// KindLineComment runs from its start token to end of line, excluding
	// the line terminator.
	KindLineComment
	// KindBlockComment runs from its open token to the first close token.
	KindBlockComment
)

// Rule describes one literal (skip) or comment (keep) form of a dialect.
// Rules are pure data; the scanner package compiles them into match
// functions.
type Rule struct {
	Kind  RuleKind
	Delim byte   // quote character for KindQuoted/KindTripleQuoted
	Open  string // start token for comment kinds
	Close string // close token for KindBlockComment

	// ExcludeTriple makes a KindQuoted rule refuse to match when the
	// opening quote is immediately followed by two more of the same quote,
	// so it never consumes the start of a triple-quoted block.
	ExcludeTriple bool
}

// Quoted returns a quoted-literal rule for the given delimiter.
func Quoted(delim byte) Rule {
	return Rule{Kind: KindQuoted, Delim: delim}
}

// QuotedNoTriple returns a quoted-literal rule that carries the
// triple-quote exclusion. Used by Python, where '"' must not consume the
// opening of '"""'.
func QuotedNoTriple(delim byte) Rule {
	return Rule{Kind: KindQuoted, Delim: delim, ExcludeTriple: true}
}

// Triple returns a triple-quoted block rule for the given quote character.
func Triple(delim byte) Rule {
	return Rule{Kind: KindTripleQuoted, Delim: delim}
}

// Line returns a line-comment rule starting at the given token.
func Line(open string) Rule {
	return Rule{Kind: KindLineComment, Open: open}
}

// Block returns a block-comment rule delimited by the given tokens.
func Block(open, close string) Rule {
	return Rule{Kind: KindBlockComment, Open: open, Close: close}
}
