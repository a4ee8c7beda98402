package domain

import "pinterval/internal/ast"

// Domain is the generic-engine "vtable" spec.md §9 asks for: internal/engine
// drives a fixpoint over this interface, so it never depends on the
// interval representation directly and could in principle drive any other
// abstract domain built the same way.
type Domain interface {
	Bottom() State
	Top() State
	Leq(x, y State) bool
	Join(x, y State) State
	Meet(x, y State) State
	Widen(prev, next State) State
	TransferAssign(st State, varName string, value ast.AExpr) State
	TransferGuard(st State, cond ast.BExpr, negate bool) State
}

// IntervalDomain is the Domain implementation for Int(m,n), parametrized by
// the configured bounds, the widening threshold set, and the variable
// table used to resolve names to State slots.
type IntervalDomain struct {
	Bounds     Bounds
	Thresholds Thresholds
	Env        Env
	NumVars    int
}

func NewIntervalDomain(bd Bounds, w Thresholds, env Env, numVars int) IntervalDomain {
	return IntervalDomain{Bounds: bd, Thresholds: w, Env: env, NumVars: numVars}
}

func (d IntervalDomain) Bottom() State { return BottomState(d.Bounds) }
func (d IntervalDomain) Top() State    { return TopState(d.Bounds, d.NumVars) }

func (d IntervalDomain) Leq(x, y State) bool    { return LeqState(x, y) }
func (d IntervalDomain) Join(x, y State) State  { return JoinState(x, y) }
func (d IntervalDomain) Meet(x, y State) State  { return MeetState(x, y) }
func (d IntervalDomain) Widen(prev, next State) State {
	return WidenState(d.Thresholds, prev, next)
}

func (d IntervalDomain) TransferAssign(st State, varName string, value ast.AExpr) State {
	idx, ok := d.Env.Index(varName)
	if !ok {
		return st
	}
	v := EvalA(d.Bounds, st, d.Env, value)
	return st.With(idx, v)
}

func (d IntervalDomain) TransferGuard(st State, cond ast.BExpr, negate bool) State {
	return FilterB(d.Bounds, st, d.Env, cond, negate)
}
