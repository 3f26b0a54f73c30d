package plid

// featureSet holds the high-signal keywords and operators of one language.
type featureSet struct {
	Keywords  map[string]struct{}
	Operators map[string]struct{}
}

// voteOrder fixes the tie-break between languages with equal votes:
// earlier entries win.
var voteOrder = []string{"python", "c++", "java", "go", "php", "c#", "c", "js"}

var features = map[string]featureSet{
	"python": {
		Keywords: set(
			"def", "elif", "if", "else", "import", "from", "as", "try", "except",
			"finally", "raise", "with", "assert", "lambda", "class", "pass",
			"yield", "global", "nonlocal", "del", "async", "await", "None",
			"True", "False", "and", "or", "not", "is", "in",
		),
		// -> type hints, ** power, // floor division, := walrus, @ decorator
		Operators: set("->", "**", "//", ":=", "@"),
	},
	"c++": {
		Keywords: set(
			"template", "typename", "class", "struct", "union", "virtual",
			"override", "final", "public:", "private:", "protected:", "friend",
			"using", "namespace", "inline", "constexpr", "consteval", "nullptr",
			"this", "new", "delete", "operator", "try", "catch", "throw",
			"include", "std",
		),
		Operators: set("::", "->", "<<", ">>", "&", "*"),
	},
	"java": {
		Keywords: set(
			"public", "private", "protected", "static", "final", "void", "class",
			"interface", "extends", "implements", "abstract", "native", "synchronized",
			"transient", "volatile", "throws", "package", "import", "new", "instanceof",
			"super", "this", "null", "boolean", "byte", "char",
		),
		Operators: set(">>>", "::", "@"),
	},
	"go": {
		Keywords: set(
			"func", "package", "import", "type", "struct", "interface", "map",
			"chan", "go", "defer", "range", "select", "case", "fallthrough",
			"var", "const", "nil",
		),
		Operators: set(":=", "<-", "...", "&^"),
	},
	"php": {
		Keywords: set(
			"function", "echo", "print", "array", "foreach", "as", "use", "namespace",
			"global", "public", "private", "protected", "static", "final", "trait",
			"clone", "include", "require", "isset", "empty", "die", "exit",
			"null", "__construct",
		),
		Operators: set("=>", "->", "::", "===", "!==", "<=>", "$"),
	},
	"c#": {
		Keywords: set(
			"namespace", "using", "class", "struct", "interface", "enum", "delegate",
			"event", "public", "private", "internal", "protected", "static", "readonly",
			"volatile", "virtual", "override", "sealed", "abstract", "async", "await",
			"var", "get", "set", "value", "out", "ref", "in", "params", "base", "this",
			"null", "true", "false", "checked", "unchecked", "fixed", "lock",
		),
		Operators: set("??", "??=", "?.", "=>"),
	},
	"c": {
		Keywords: set(
			"int", "char", "float", "double", "void", "long", "short", "signed",
			"unsigned", "struct", "union", "enum", "typedef", "sizeof", "static",
			"extern", "auto", "register", "const", "volatile", "return", "if",
			"else", "switch", "case", "default", "while", "do", "for", "break",
			"continue", "goto", "include", "define",
		),
		Operators: set("->", ".", "&", "*"),
	},
	"js": {
		Keywords: set(
			"function", "var", "let", "const", "if", "else", "switch", "for",
			"while", "do", "break", "continue", "return", "try", "catch", "finally",
			"throw", "new", "this", "delete", "typeof", "instanceof", "void",
			"in", "of", "class", "extends", "super", "import", "export", "default",
			"async", "await", "yield", "debugger", "undefined", "null", "NaN",
			"true", "false", "console", "window", "document",
		),
		Operators: set("===", "!==", "=>", "...", "`"),
	},
}

// classifierLabels maps external classifier labels onto registry names.
var classifierLabels = map[string]string{
	"python":     "python",
	"cpp":        "c++",
	"java":       "java",
	"go":         "go",
	"php":        "php",
	"cs":         "c#",
	"c":          "c",
	"javascript": "js",
}

func set(items ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}
