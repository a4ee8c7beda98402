package lang

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// WhileLexer tokenizes the While surface syntax. Keywords are not their own
// token kind: like the teacher's KansoLexer, they are plain Ident tokens
// matched against string literals in the grammar, so the lexer stays a
// small, fixed set of rules.
var WhileLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Whitespace (ignored)
		{"Whitespace", `[ \t\r\n]+`, nil},

		// Identifiers and keywords
		{"Ident", `[a-zA-Z][a-zA-Z0-9]*`, nil},

		// Integer literals
		{"Int", `[0-9]+`, nil},

		// Operators (longest-match alternatives must come first)
		{"Operator", `(:=|<=|[-+*/=!&;()])`, nil},
	},
})
