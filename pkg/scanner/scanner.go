// Package scanner compiles dialect rule sets into priority-ordered
// matchers and runs them over source text, skipping literal regions and
// collecting comment regions in source order.
package scanner

// Match is one region found during a scan. Keep marks a comment match;
// skip matches cover literals and are discarded by Extract. Matches never
// outlive the extraction call that produced them.
type Match struct {
	Keep  bool
	Start int
	End   int
}

// Next returns the earliest-starting match at or after from. At a tied
// offset every skip alternative beats every keep alternative, and within
// a class earlier-registered rules win. Offsets where nothing matches are
// stepped over one byte at a time.
func (m *Matcher) Next(text string, from int) (Match, bool) {
	for pos := from; pos < len(text); pos++ {
		for _, f := range m.skip {
			if end, ok := f(text, pos); ok {
				return Match{Start: pos, End: end}, true
			}
		}
		for _, f := range m.keep {
			if end, ok := f(text, pos); ok {
				return Match{Keep: true, Start: pos, End: end}, true
			}
		}
	}
	return Match{}, false
}

// Scan runs one forward pass over text and returns the comment regions,
// delimiters included, in source order. It is total: any input yields a
// (possibly empty) result.
func (m *Matcher) Scan(text string) []string {
	var comments []string
	for pos := 0; pos < len(text); {
		match, ok := m.Next(text, pos)
		if !ok {
			break
		}
		if match.Keep {
			comments = append(comments, text[match.Start:match.End])
		}
		pos = match.End
	}
	return comments
}

// Extract resolves the dialect for language (case-insensitively), then
// scans code and returns its comments in source order, each including its
// original delimiter characters. The only failure mode is
// *lang.UnsupportedDialectError for an unknown language; malformed input
// degrades to a best-effort result instead of erroring.
func Extract(code, language string) ([]string, error) {
	m, err := ForLanguage(language)
	if err != nil {
		return nil, err
	}
	return m.Scan(code), nil
}
