// Package lang defines the dialect rule model: per-language tables of
// literal syntax to skip and comment syntax to keep, plus the registry
// that resolves case-insensitive dialect names.
package lang

// Dialect is a named language profile. Skip rules describe string/char
// literal regions to exclude; Keep rules describe comment regions to
// report. Order within each slice fixes match priority at tied offsets
// (earlier wins); the scanner always tries every Skip rule before any
// Keep rule.
//
// A Dialect is immutable once built.
type Dialect struct {
	Name    string
	Aliases []string
	Skip    []Rule
	Keep    []Rule
}

// Builder constructs a Dialect.
type Builder struct {
	d Dialect
}

// NewDialect starts building a dialect with the given canonical name and
// optional aliases. Names are matched case-insensitively by the registry.
func NewDialect(name string, aliases ...string) *Builder {
	return &Builder{d: Dialect{Name: name, Aliases: aliases}}
}

// Skip appends literal rules, in priority order.
func (b *Builder) Skip(rules ...Rule) *Builder {
	b.d.Skip = append(b.d.Skip, rules...)
	return b
}

// Keep appends comment rules, in priority order.
func (b *Builder) Keep(rules ...Rule) *Builder {
	b.d.Keep = append(b.d.Keep, rules...)
	return b
}

// Build returns the finished dialect.
func (b *Builder) Build() *Dialect {
	return &b.d
}
