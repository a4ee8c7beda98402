package domain

import "fmt"

// Interval is Bottom, or Std(Lo,Hi) with Lo <= Hi. The pair (-∞,-∞) and
// (+∞,+∞) never appear in a live Interval value: Mk maps them to Top
// before any Interval is constructed from them.
type Interval struct {
	Bottom bool
	Lo, Hi Bound
}

func Bot() Interval { return Interval{Bottom: true} }
func Top() Interval { return Interval{Lo: NegInfBound(), Hi: PosInfBound()} }

func Singleton(k int64) Interval {
	return Interval{Lo: FiniteBound(k), Hi: FiniteBound(k)}
}

func (i Interval) IsBottom() bool { return i.Bottom }
func (i Interval) IsTop() bool    { return !i.Bottom && i.Lo.IsNegInf() && i.Hi.IsPosInf() }

// Bounds is the pair (m,n) parametrizing the canonical domain Int(m,n).
type Bounds struct {
	M, N Bound
}

// Collapsed reports whether m > n, in which case Int(m,n) degenerates to
// the constant-propagation lattice (spec.md §3).
func (bd Bounds) Collapsed() bool { return bd.M.Greater(bd.N) }

// Mk canonicalizes the raw pair [a,b] to the smallest element of Int(m,n)
// containing it, per spec.md §4.1.
func Mk(bd Bounds, a, b Bound) Interval {
	if a.Greater(b) {
		return Bot()
	}
	if a.Equal(b) {
		if a.IsFinite() {
			return Interval{Lo: a, Hi: a}
		}
		// (-inf,-inf) or (+inf,+inf): forbidden tuples, collapse to Top.
		return Top()
	}
	if isCanonical(bd, a, b) {
		return Interval{Lo: a, Hi: b}
	}
	if bd.Collapsed() {
		// Only Bottom/singleton/Top are canonical; a<b can't be a
		// singleton, and half-lines/bounded ranges aren't canonical
		// either, so the only sound shape left is Top.
		return Top()
	}
	switch {
	case b.Less(bd.M):
		return Interval{Lo: NegInfBound(), Hi: bd.M}
	case a.Greater(bd.N):
		return Interval{Lo: bd.N, Hi: PosInfBound()}
	case a.Less(bd.M) && bd.M.LessEq(b) && b.LessEq(bd.N):
		return Interval{Lo: NegInfBound(), Hi: b}
	case bd.M.LessEq(a) && a.LessEq(bd.N) && bd.N.Less(b):
		return Interval{Lo: a, Hi: PosInfBound()}
	default:
		return Top()
	}
}

// isCanonical reports whether [a,b] (a<b, not an inf/inf pair) already
// belongs to Int(m,n) without further widening.
func isCanonical(bd Bounds, a, b Bound) bool {
	if a.IsNegInf() && b.IsPosInf() {
		return true // Top
	}
	if a.IsFinite() && b.IsFinite() {
		return bd.M.LessEq(a) && b.LessEq(bd.N)
	}
	if a.IsNegInf() && b.IsFinite() {
		return bd.M.LessEq(b) && b.LessEq(bd.N)
	}
	if a.IsFinite() && b.IsPosInf() {
		return bd.M.LessEq(a) && a.LessEq(bd.N)
	}
	return false
}

// Leq is the domain's inclusion test.
func Leq(x, y Interval) bool {
	if x.Bottom {
		return true
	}
	if y.Bottom {
		return false
	}
	return x.Lo.GreaterEq(y.Lo) && x.Hi.LessEq(y.Hi)
}

func (a Bound) GreaterEq(b Bound) bool { return Cmp(a, b) >= 0 }

// Join is ∪#.
func Join(bd Bounds, x, y Interval) Interval {
	if x.Bottom {
		return y
	}
	if y.Bottom {
		return x
	}
	return Mk(bd, MinBound(x.Lo, y.Lo), MaxBound(x.Hi, y.Hi))
}

// JoinAll folds Join over a non-empty slice, per spec.md §9's
// "acc := first; for t in rest: acc := acc ∪ t" rewrite of the original's
// initializing-union idiom.
func JoinAll(bd Bounds, is []Interval) Interval {
	if len(is) == 0 {
		return Bot()
	}
	acc := is[0]
	for _, t := range is[1:] {
		acc = Join(bd, acc, t)
	}
	return acc
}

// Meet is ∩#.
func Meet(bd Bounds, x, y Interval) Interval {
	if x.Bottom || y.Bottom {
		return Bot()
	}
	return Mk(bd, MaxBound(x.Lo, y.Lo), MinBound(x.Hi, y.Hi))
}

// Widen is ▽ with threshold set W.
func Widen(bd Bounds, w Thresholds, prev, next Interval) Interval {
	if prev.Bottom {
		return next
	}
	if next.Bottom {
		return prev
	}
	var lo Bound
	if prev.Lo.LessEq(next.Lo) {
		lo = prev.Lo
	} else {
		lo = w.MaxLessEq(next.Lo)
	}
	var hi Bound
	if prev.Hi.GreaterEq(next.Hi) {
		hi = prev.Hi
	} else {
		hi = w.MinGreaterEq(next.Hi)
	}
	return Mk(bd, lo, hi)
}

func (i Interval) String() string {
	switch {
	case i.Bottom:
		return "BOTTOM"
	case i.IsTop():
		return "TOP"
	case i.Lo.Equal(i.Hi):
		return fmt.Sprintf("[%s,%s]", i.Lo, i.Hi)
	case i.Lo.IsNegInf():
		return fmt.Sprintf("(-INF, %s]", i.Hi)
	case i.Hi.IsPosInf():
		return fmt.Sprintf("[%s, +INF)", i.Lo)
	default:
		return fmt.Sprintf("[%s,%s]", i.Lo, i.Hi)
	}
}
