package lang

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
)

var whileParser = buildParser()

func buildParser() *participle.Parser[Program] {
	p, err := participle.Build[Program](
		participle.Lexer(WhileLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		panic(fmt.Errorf("while: failed to build parser: %w", err))
	}
	return p
}

// ParseSource parses While source text into a surface-syntax Program.
// sourceName is used only for position reporting in errors.
func ParseSource(sourceName, source string) (*Program, error) {
	return whileParser.ParseString(sourceName, source)
}

// ParseFile reads and parses a While source file.
func ParseFile(path string) (*Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseSource(path, string(source))
}
