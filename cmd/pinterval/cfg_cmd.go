package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"

	"pinterval/internal/cfg"
	"pinterval/internal/diag"
	"pinterval/internal/lang"
)

func runCfg(args []string) {
	if len(args) != 1 {
		diag.Report(os.Stderr, diag.New(diag.CodeUsage, "usage: pinterval cfg <source>"))
		os.Exit(1)
	}
	path := args[0]

	prog, _, err := parseSourceFile(path)
	if err != nil {
		os.Exit(1)
	}

	stmt := lang.ToAST(prog)
	graph := cfg.Build(stmt)
	fmt.Print(cfg.Dot(graph))
}

// parseSourceFile reads and parses a While source file, reporting a
// structured diagnostic (with caret, when position data is available) on
// failure.
func parseSourceFile(path string) (*lang.Program, string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		diag.Report(os.Stderr, diag.New(diag.CodeIO, fmt.Sprintf("cannot read %q: %v", path, err)))
		return nil, "", err
	}
	source := string(raw)

	prog, err := lang.ParseSource(path, source)
	if err != nil {
		d := diag.New(diag.CodeParse, err.Error())
		if perr, ok := err.(participle.Error); ok {
			d.Message = perr.Message()
			d = d.WithPos(perr.Position(), source)
		}
		diag.Report(os.Stderr, d)
		return nil, "", err
	}
	return prog, source, nil
}
