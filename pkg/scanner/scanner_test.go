package scanner_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidemark-labs/commentscan/pkg/lang"
	"github.com/tidemark-labs/commentscan/pkg/scanner"
)

func extract(t *testing.T, code, language string) []string {
	t.Helper()
	got, err := scanner.Extract(code, language)
	require.NoError(t, err)
	return got
}

func TestPythonHashInsideString(t *testing.T) {
	code := "# top comment\nx = \"has # not a comment\"\n"
	assert.Equal(t, []string{"# top comment"}, extract(t, code, "python"))
}

func TestCppLineAndBlock(t *testing.T) {
	code := "// line\nchar* s = \"http://x.com\"; // trailing\n/* block\n   comment */\n"
	want := []string{"// line", "// trailing", "/* block\n   comment */"}
	assert.Equal(t, want, extract(t, code, "C++"))
}

func TestJSTemplateLiteralSkipped(t *testing.T) {
	code := "// JS Comment\nconst s = `template // not a comment`;\n/* Block */\n"
	want := []string{"// JS Comment", "/* Block */"}
	assert.Equal(t, want, extract(t, code, "js"))
}

func TestPHPBothLineStyles(t *testing.T) {
	code := "// c-style\n# shell-style\n$u = \"http://x.com\";\n/* block */\n"
	want := []string{"// c-style", "# shell-style", "/* block */"}
	assert.Equal(t, want, extract(t, code, "php"))
}

func TestUnsupportedLanguage(t *testing.T) {
	_, err := scanner.Extract("anything", "cobol")
	require.Error(t, err)

	var uerr *lang.UnsupportedDialectError
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, "cobol", uerr.Name)
}

func TestCaseInsensitiveLanguageNames(t *testing.T) {
	code := "# one\nx = 1 # two\n"
	want := extract(t, code, "python")
	for _, name := range []string{"Python", "PYTHON", "pYThOn"} {
		assert.Equal(t, want, extract(t, code, name), "language %q", name)
	}
}

func TestIdempotence(t *testing.T) {
	code := "// a\nvar x = \"// b\";\n/* c */\n"
	first := extract(t, code, "go")
	second := extract(t, code, "go")
	assert.Equal(t, first, second)
}

func TestOrderPreservation(t *testing.T) {
	code := "# first\nx = 1\n# second\ny = 2\n# third\n"
	assert.Equal(t, []string{"# first", "# second", "# third"}, extract(t, code, "python"))
}

// String-safety: comment-start characters inside a well-formed literal
// never contribute to an emitted comment.
func TestStringSafety(t *testing.T) {
	tests := []struct {
		name string
		lang string
		code string
	}{
		{name: "double quoted url", lang: "c", code: `s = "http://x.com // # /*";`},
		{name: "single quoted", lang: "java", code: `c = '/'; d = '#';`},
		{name: "backtick", lang: "go", code: "s := `// not /* a # comment`"},
		{name: "python string", lang: "python", code: `x = "# nope ''' // /*"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, extract(t, tt.code, tt.lang))
		})
	}
}

func TestEscapedDelimiterDoesNotTerminate(t *testing.T) {
	// The escaped quote keeps the literal open, so the trailing // # text
	// is still inside it.
	code := `s = "say \" // not a comment"; // real` + "\n"
	assert.Equal(t, []string{"// real"}, extract(t, code, "c"))

	// The escape consumes exactly one character, whatever it is.
	code = `s = "a\\"; // after backslash pair` + "\n"
	assert.Equal(t, []string{"// after backslash pair"}, extract(t, code, "c"))
}

func TestPythonDocstrings(t *testing.T) {
	code := "'''\nmodule docstring\n'''\nx = 10\n\"\"\" second \"\"\"\n# tail\n"
	want := []string{"'''\nmodule docstring\n'''", "\"\"\" second \"\"\"", "# tail"}
	assert.Equal(t, want, extract(t, code, "python"))
}

func TestPythonTripleQuoteExclusion(t *testing.T) {
	// The single-quote skip rule must not consume the opening of the
	// triple quote; the whole block is reported as a comment.
	code := "'''inner ' quote'''\n"
	assert.Equal(t, []string{"'''inner ' quote'''"}, extract(t, code, "python"))
}

func TestLineCommentExcludesNewline(t *testing.T) {
	got := extract(t, "// one\n// two\n", "go")
	require.Len(t, got, 2)
	for _, c := range got {
		assert.False(t, strings.ContainsRune(c, '\n'))
	}
}

func TestLineCommentAtEndOfInput(t *testing.T) {
	assert.Equal(t, []string{"// no newline"}, extract(t, "// no newline", "go"))
}

func TestBlockCommentNonGreedy(t *testing.T) {
	// Terminates at the first */, not the last.
	code := "/* a */ x /* b */"
	assert.Equal(t, []string{"/* a */", "/* b */"}, extract(t, code, "c"))
}

func TestUnterminatedBlockExtendsToEnd(t *testing.T) {
	code := "x = 1; /* never closed\nstill comment"
	assert.Equal(t, []string{"/* never closed\nstill comment"}, extract(t, code, "c"))
}

func TestUnterminatedTripleExtendsToEnd(t *testing.T) {
	code := "# lead\n''' left open\ntail"
	assert.Equal(t, []string{"# lead", "''' left open\ntail"}, extract(t, code, "python"))
}

func TestUnterminatedStringIsPlainText(t *testing.T) {
	// An unclosed quote never matches as a literal, so the comment after
	// it is still found.
	code := "s = \"unclosed\n// visible\n"
	assert.Equal(t, []string{"// visible"}, extract(t, code, "go"))
}

func TestEmptyAndCommentlessInput(t *testing.T) {
	assert.Empty(t, extract(t, "", "python"))
	assert.Empty(t, extract(t, "x = 1\ny = 2\n", "python"))
}

func TestCommentsNotOnlyAtLineStart(t *testing.T) {
	code := "int x = 1; // inline\nint y = 2; /* mid */ int z = 3;\n"
	assert.Equal(t, []string{"// inline", "/* mid */"}, extract(t, code, "c"))
}

func TestConcurrentExtract(t *testing.T) {
	code := "# a\nx = \"# b\"\n# c\n"
	want := []string{"# a", "# c"}

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				got, err := scanner.Extract(code, "python")
				assert.NoError(t, err)
				assert.Equal(t, want, got)
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
