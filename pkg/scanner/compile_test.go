package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidemark-labs/commentscan/pkg/lang"
	"github.com/tidemark-labs/commentscan/pkg/scanner"
)

func TestForLanguageCachesMatcher(t *testing.T) {
	first, err := scanner.ForLanguage("go")
	require.NoError(t, err)
	second, err := scanner.ForLanguage("go")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestForLanguageAliasSharesDialect(t *testing.T) {
	js, err := scanner.ForLanguage("js")
	require.NoError(t, err)
	alias, err := scanner.ForLanguage("javascript")
	require.NoError(t, err)
	assert.Same(t, js.Dialect(), alias.Dialect())
}

func TestForLanguageUnknown(t *testing.T) {
	_, err := scanner.ForLanguage("fortran")
	require.Error(t, err)
}

// Skip alternatives win over keep alternatives at a tied offset: a '#'
// that opens a quoted literal in a synthetic dialect is never a comment.
func TestSkipBeatsKeepAtTiedOffset(t *testing.T) {
	d := lang.NewDialect("hashquoted").
		Skip(lang.Quoted('#')).
		Keep(lang.Line("#")).
		Build()

	m := scanner.Compile(d)
	got := m.Scan("#quoted# plain # open comment")
	assert.Equal(t, []string{"# open comment"}, got)
}

func TestNextReportsEarliestMatch(t *testing.T) {
	m, err := scanner.ForLanguage("c")
	require.NoError(t, err)

	text := `x = "s"; // c`
	match, ok := m.Next(text, 0)
	require.True(t, ok)
	assert.False(t, match.Keep)
	assert.Equal(t, `"s"`, text[match.Start:match.End])

	match, ok = m.Next(text, match.End)
	require.True(t, ok)
	assert.True(t, match.Keep)
	assert.Equal(t, "// c", text[match.Start:match.End])
}

func TestNextNoMatch(t *testing.T) {
	m, err := scanner.ForLanguage("c")
	require.NoError(t, err)
	_, ok := m.Next("plain text only", 0)
	assert.False(t, ok)
}
