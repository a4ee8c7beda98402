package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"pinterval/internal/ast"
	"pinterval/internal/cfg"
	"pinterval/internal/config"
	"pinterval/internal/diag"
	"pinterval/internal/domain"
	"pinterval/internal/engine"
	"pinterval/internal/lang"
	"pinterval/internal/symtab"
)

type analyzeFlags struct {
	source   string
	m, n     domain.Bound
	wdelay   int
	dsteps   int
	initFile string
}

// runAnalyze implements `pinterval analyze pinterval <source> [flags]`, per
// spec.md §6.
func runAnalyze(args []string) {
	if len(args) < 2 || args[0] != "pinterval" {
		diag.Report(os.Stderr, diag.New(diag.CodeUsage, "usage: pinterval analyze pinterval <source> [--m INT] [--n INT] [--wdelay N] [--dsteps N] [--init FILE]"))
		os.Exit(1)
	}

	fl, err := parseAnalyzeFlags(args[1:])
	if err != nil {
		diag.Report(os.Stderr, diag.New(diag.CodeFlag, err.Error()))
		os.Exit(1)
	}

	prog, _, err := parseSourceFile(fl.source)
	if err != nil {
		os.Exit(1)
	}

	result, err := analyzeProgram(lang.ToAST(prog), fl)
	if err != nil {
		diag.Report(os.Stderr, diag.New(diag.CodeInitFile, fmt.Sprintf("cannot read %q: %v", fl.initFile, err)))
		os.Exit(1)
	}

	printBanner(fl)
	printStates(os.Stdout, result.tab, result.states)
}

type analysisResult struct {
	graph  *cfg.Graph
	tab    *symtab.Table
	states []domain.State
}

// analyzeProgram runs the whole pipeline (CFG, symbol table, threshold
// collection, fixpoint) for one parsed program, independent of the CLI I/O
// around it.
func analyzeProgram(stmt ast.Stmt, fl *analyzeFlags) (*analysisResult, error) {
	graph := cfg.Build(stmt)
	tab := symtab.Build(stmt)
	bd := domain.Bounds{M: fl.m, N: fl.n}

	var init *domain.State
	if fl.initFile != "" {
		st, err := config.ParseInitFile(fl.initFile, tab, bd, tab.Len())
		if err != nil {
			return nil, err
		}
		init = &st
	}

	thresholds := engine.CollectThresholds(stmt, graph, tab)
	dom := domain.NewIntervalDomain(bd, thresholds, tab, tab.Len())

	opts := engine.Options{
		WideningDelay:   fl.wdelay,
		DescendingSteps: fl.dsteps,
		Init:            init,
	}
	states := engine.Run(graph, dom, opts)
	return &analysisResult{graph: graph, tab: tab, states: states}, nil
}

func printStates(w io.Writer, tab *symtab.Table, states []domain.State) {
	for i, st := range states {
		fmt.Fprint(w, domain.Format(i, st, tab, tab.Len()))
	}
}

func printBanner(fl *analyzeFlags) {
	wdelay := "disabled"
	if fl.wdelay != engine.NoWidening {
		wdelay = strconv.Itoa(fl.wdelay)
	}
	diag.Banner(os.Stdout, fmt.Sprintf(
		"pinterval analyze: m=%s n=%s wdelay=%s dsteps=%d init=%s",
		fl.m, fl.n, wdelay, fl.dsteps, orNone(fl.initFile)))
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func parseAnalyzeFlags(args []string) (*analyzeFlags, error) {
	fl := &analyzeFlags{
		source: args[0],
		m:      domain.NegInfBound(),
		n:      domain.PosInfBound(),
		wdelay: engine.NoWidening,
		dsteps: 0,
	}
	seen := map[string]bool{}

	rest := args[1:]
	for i := 0; i < len(rest); i++ {
		name := rest[i]
		if seen[name] {
			return nil, fmt.Errorf("flag %s specified more than once", name)
		}
		switch name {
		case "--m", "--n":
			seen[name] = true
			i++
			if i >= len(rest) {
				return nil, fmt.Errorf("flag %s requires a value", name)
			}
			b, err := parseFlagBound(rest[i])
			if err != nil {
				return nil, fmt.Errorf("flag %s: %w", name, err)
			}
			if name == "--m" {
				fl.m = b
			} else {
				fl.n = b
			}
		case "--wdelay":
			seen[name] = true
			i++
			if i >= len(rest) {
				return nil, fmt.Errorf("flag --wdelay requires a value")
			}
			if rest[i] == "inf" || rest[i] == "disabled" {
				fl.wdelay = engine.NoWidening
				continue
			}
			v, err := strconv.Atoi(rest[i])
			if err != nil {
				return nil, fmt.Errorf("flag --wdelay: %w", err)
			}
			fl.wdelay = v
		case "--dsteps":
			seen[name] = true
			i++
			if i >= len(rest) {
				return nil, fmt.Errorf("flag --dsteps requires a value")
			}
			v, err := strconv.Atoi(rest[i])
			if err != nil {
				return nil, fmt.Errorf("flag --dsteps: %w", err)
			}
			fl.dsteps = v
		case "--init":
			seen[name] = true
			i++
			if i >= len(rest) {
				return nil, fmt.Errorf("flag --init requires a value")
			}
			fl.initFile = rest[i]
		default:
			return nil, fmt.Errorf("unknown flag %q", name)
		}
	}
	return fl, nil
}

func parseFlagBound(s string) (domain.Bound, error) {
	switch s {
	case "-inf", "-INF":
		return domain.NegInfBound(), nil
	case "+inf", "+INF":
		return domain.PosInfBound(), nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return domain.Bound{}, err
	}
	return domain.FiniteBound(v), nil
}
