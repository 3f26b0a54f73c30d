package lang

func init() {
	Register(Python)
	Register(C)
	Register(CPP)
	Register(Java)
	Register(CSharp)
	Register(JS)
	Register(Go)
	Register(PHP)
}

// Python skips ordinary quoted strings (with the triple-quote exclusion,
// so '"' never consumes the opening of '"""') and keeps hash comments and
// triple-quoted blocks (docstrings).
var Python = NewDialect("python").
	Skip(QuotedNoTriple('"'), QuotedNoTriple('\'')).
	Keep(Line("#"), Triple('"'), Triple('\'')).
	Build()

// The C-style group: double/single quoted literals skipped, // and /* */
// comments kept.
var (
	C      = cStyle("c")
	CPP    = cStyle("c++")
	Java   = cStyle("java")
	CSharp = cStyle("c#")
)

// JS and Go additionally skip backtick literals (template literals, raw
// strings).
var (
	JS = NewDialect("js", "javascript").
		Skip(Quoted('"'), Quoted('\''), Quoted('`')).
		Keep(Line("//"), Block("/*", "*/")).
		Build()

	Go = NewDialect("go").
		Skip(Quoted('"'), Quoted('\''), Quoted('`')).
		Keep(Line("//"), Block("/*", "*/")).
		Build()
)

// PHP keeps both comment styles alongside block comments.
var PHP = NewDialect("php").
	Skip(Quoted('"'), Quoted('\'')).
	Keep(Line("//"), Line("#"), Block("/*", "*/")).
	Build()

func cStyle(name string) *Dialect {
	return NewDialect(name).
		Skip(Quoted('"'), Quoted('\'')).
		Keep(Line("//"), Block("/*", "*/")).
		Build()
}
