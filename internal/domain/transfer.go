package domain

import "pinterval/internal/ast"

// Env maps variable names to their stable indices into a State's Values
// slice, per spec.md §4.3's "variable table collected once" rule. Satisfied
// by internal/symtab.Table.
type Env interface {
	Index(name string) (int, bool)
}

// EvalA evaluates an arithmetic expression over an abstract state, per
// spec.md §4.2. An unknown variable (absent from Env) evaluates to Top:
// this only happens for malformed input that the parser should already have
// rejected.
func EvalA(bd Bounds, st State, env Env, e ast.AExpr) Interval {
	if st.IsBottom() {
		return Bot()
	}
	switch n := e.(type) {
	case *ast.ANum:
		return Singleton(n.Value)
	case *ast.AVar:
		idx, ok := env.Index(n.Name)
		if !ok {
			return Top()
		}
		return st.Get(idx)
	case *ast.ABin:
		l := EvalA(bd, st, env, n.Left)
		r := EvalA(bd, st, env, n.Right)
		switch n.Op {
		case ast.AAdd:
			return AddI(bd, l, r)
		case ast.ASub:
			return SubI(bd, l, r)
		case ast.AMul:
			return MulI(bd, l, r)
		case ast.ADiv:
			return DivI(bd, l, r)
		}
	}
	return Top()
}

// FilterB narrows st to the sub-state consistent with b evaluating to
// (!negate ? true : false), per spec.md §4.2's backward guard propagation.
// & applies both conjuncts in turn, the right one filtering the state the
// left one produced; its negation
// is a disjunction (De Morgan), which is unsound to meet, so the negated
// case instead joins the two negated branches.
func FilterB(bd Bounds, st State, env Env, b ast.BExpr, negate bool) State {
	if st.IsBottom() {
		return st
	}
	switch n := b.(type) {
	case *ast.BTrue:
		if negate {
			return BottomState(st.Bounds)
		}
		return st
	case *ast.BFalse:
		if negate {
			return st
		}
		return BottomState(st.Bounds)
	case *ast.BNot:
		return FilterB(bd, st, env, n.Inner, !negate)
	case *ast.BAnd:
		if !negate {
			left := FilterB(bd, st, env, n.Left, false)
			return FilterB(bd, left, env, n.Right, false)
		}
		leftNeg := FilterB(bd, st, env, n.Left, true)
		rightNeg := FilterB(bd, st, env, n.Right, true)
		return JoinState(leftNeg, rightNeg)
	case *ast.BRel:
		return filterRel(bd, st, env, n, negate)
	}
	return st
}

// filterRel narrows st for a single relational atom l op r (or its
// negation), per spec.md §4.2's table of backward-propagation rules:
//
//	l = r  ->  both sides meet to their intersection
//	l <= r ->  l is capped above by r's upper bound, r is floored below by
//	           l's lower bound
//	negated forms use the complementary half-lines: l != r leaves both
//	sides alone (no sound narrowing beyond Top for the not-equal case);
//	l > r floors l at r's lower bound + 1 and caps r at l's upper
//	bound - 1.
func filterRel(bd Bounds, st State, env Env, rel *ast.BRel, negate bool) State {
	lv := EvalA(bd, st, env, rel.Left)
	rv := EvalA(bd, st, env, rel.Right)
	if lv.IsBottom() || rv.IsBottom() {
		return BottomState(st.Bounds)
	}

	var nl, nr Interval
	switch {
	case rel.Op == ast.REq && !negate:
		m := Meet(bd, lv, rv)
		nl, nr = m, m
	case rel.Op == ast.REq && negate:
		nl, nr = lv, rv // l != r: no sound narrowing in this domain
	case rel.Op == ast.RLeq && !negate:
		nl = Meet(bd, lv, Interval{Lo: NegInfBound(), Hi: rv.Hi})
		nr = Meet(bd, rv, Interval{Lo: lv.Lo, Hi: PosInfBound()})
	case rel.Op == ast.RLeq && negate:
		// l > r over the integers is l >= r + 1: l is floored at r's
		// lower bound + 1 and r is capped at l's upper bound - 1; an
		// infinite bound stays infinite (saturating Add/Sub).
		nl = Meet(bd, lv, Interval{Lo: Add(rv.Lo, FiniteBound(1)), Hi: PosInfBound()})
		nr = Meet(bd, rv, Interval{Lo: NegInfBound(), Hi: Sub(lv.Hi, FiniteBound(1))})
	default:
		nl, nr = lv, rv
	}

	if nl.IsBottom() || nr.IsBottom() {
		return BottomState(st.Bounds)
	}

	out := FilterA(bd, st, env, rel.Left, nl)
	return FilterA(bd, out, env, rel.Right, nr)
}

// FilterA is the backward pass of spec.md §4.2 step 3: it propagates a
// refined interval for a whole arithmetic expression down to every variable
// leaf it mentions, recursing the same way EvalA recurses forward, and
// meets the refinement into st at each leaf. A compound root is unwound one
// operator at a time with the matching Back* operator, using EvalA to
// recover each operand's original forward interval.
func FilterA(bd Bounds, st State, env Env, e ast.AExpr, refined Interval) State {
	if st.IsBottom() {
		return st
	}
	switch n := e.(type) {
	case *ast.ANum:
		return st
	case *ast.AVar:
		idx, ok := env.Index(n.Name)
		if !ok {
			return st
		}
		m := Meet(bd, st.Get(idx), refined)
		if m.IsBottom() {
			return BottomState(st.Bounds)
		}
		return st.With(idx, m)
	case *ast.ABin:
		x := EvalA(bd, st, env, n.Left)
		y := EvalA(bd, st, env, n.Right)
		var nx, ny Interval
		switch n.Op {
		case ast.AAdd:
			nx, ny = BackAdd(bd, x, y, refined)
		case ast.ASub:
			nx, ny = BackSub(bd, x, y, refined)
		case ast.AMul:
			nx, ny = BackMul(bd, x, y, refined)
		case ast.ADiv:
			nx, ny = BackDiv(bd, x, y, refined)
		}
		if nx.IsBottom() || ny.IsBottom() {
			return BottomState(st.Bounds)
		}
		out := FilterA(bd, st, env, n.Left, nx)
		return FilterA(bd, out, env, n.Right, ny)
	}
	return st
}
