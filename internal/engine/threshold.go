package engine

import (
	"pinterval/internal/ast"
	"pinterval/internal/cfg"
	"pinterval/internal/domain"
	"pinterval/internal/symtab"
)

// CollectThresholds builds the widening threshold set W, per spec.md §4.4:
// phase A scans the AST for integer literals; phase B re-enters Run with
// the constant-propagation domain (m=1, n=-1) and a trivial threshold set,
// collecting every singleton that analysis discovers. The pre-pass widens
// immediately (delay 0): the collapsed domain's chain height is already
// finite, so it terminates without needing real thresholds itself.
func CollectThresholds(s ast.Stmt, g *cfg.Graph, tab *symtab.Table) domain.Thresholds {
	var literals []int64
	collectLiterals(s, &literals)

	collapsed := domain.Bounds{M: domain.FiniteBound(1), N: domain.FiniteBound(-1)}
	trivial := domain.NewThresholds(nil)
	pre := domain.NewIntervalDomain(collapsed, trivial, tab, tab.Len())

	states := Run(g, pre, Options{WideningDelay: 0, DescendingSteps: 0})
	for _, st := range states {
		if st.IsBottom() {
			continue
		}
		for _, iv := range st.Values {
			if iv.IsBottom() || iv.IsTop() {
				continue
			}
			if iv.Lo.IsFinite() && iv.Hi.IsFinite() && iv.Lo.Equal(iv.Hi) {
				literals = append(literals, iv.Lo.Val)
			}
		}
	}

	return domain.NewThresholds(literals)
}

func collectLiterals(s ast.Stmt, out *[]int64) {
	var walkA func(ast.AExpr)
	walkA = func(a ast.AExpr) {
		switch e := a.(type) {
		case *ast.ANum:
			*out = append(*out, e.Value)
		case *ast.AVar:
		case *ast.ABin:
			walkA(e.Left)
			walkA(e.Right)
		}
	}
	var walkB func(ast.BExpr)
	walkB = func(b ast.BExpr) {
		switch e := b.(type) {
		case *ast.BTrue, *ast.BFalse:
		case *ast.BNot:
			walkB(e.Inner)
		case *ast.BAnd:
			walkB(e.Left)
			walkB(e.Right)
		case *ast.BRel:
			walkA(e.Left)
			walkA(e.Right)
		}
	}
	var walkS func(ast.Stmt)
	walkS = func(s ast.Stmt) {
		switch e := s.(type) {
		case *ast.Skip:
		case *ast.Assign:
			walkA(e.Value)
		case *ast.Seq:
			walkS(e.First)
			walkS(e.Second)
		case *ast.If:
			walkB(e.Cond)
			walkS(e.Then)
			walkS(e.Else)
		case *ast.While:
			walkB(e.Cond)
			walkS(e.Body)
		}
	}
	walkS(s)
}
