package domain

// AddI, SubI, MulI, DivI implement sound interval arithmetic per spec.md
// §4.1. Each returns Bottom if either operand is Bottom.

func AddI(bd Bounds, x, y Interval) Interval {
	if x.Bottom || y.Bottom {
		return Bot()
	}
	return Mk(bd, Add(x.Lo, y.Lo), Add(x.Hi, y.Hi))
}

func SubI(bd Bounds, x, y Interval) Interval {
	if x.Bottom || y.Bottom {
		return Bot()
	}
	return Mk(bd, Sub(x.Lo, y.Hi), Sub(x.Hi, y.Lo))
}

func MulI(bd Bounds, x, y Interval) Interval {
	if x.Bottom || y.Bottom {
		return Bot()
	}
	products := []Bound{
		Mul(x.Lo, y.Lo),
		Mul(x.Lo, y.Hi),
		Mul(x.Hi, y.Lo),
		Mul(x.Hi, y.Hi),
	}
	lo, hi := products[0], products[0]
	for _, p := range products[1:] {
		lo = MinBound(lo, p)
		hi = MaxBound(hi, p)
	}
	return Mk(bd, lo, hi)
}

// DivI implements [a,b] /# [c,d] per spec.md §4.1, splitting the divisor
// around zero when it straddles it. The split halves are constructed
// without canonicalization (plain Interval{Lo,Hi} literals), per spec.md's
// explicit warning that canonicalizing them first can loop forever in the
// collapsed (constant-propagation) domain.
func DivI(bd Bounds, x, y Interval) Interval {
	if x.Bottom || y.Bottom {
		return Bot()
	}
	a, b := x.Lo, x.Hi
	c, d := y.Lo, y.Hi
	one := FiniteBound(1)
	negOne := FiniteBound(-1)

	switch {
	case c.GreaterEq(one):
		return Mk(bd, MinBound(divBound(a, c), divBound(a, d)), MaxBound(divBound(b, c), divBound(b, d)))
	case d.LessEq(negOne):
		return Mk(bd, MinBound(divBound(b, c), divBound(b, d)), MaxBound(divBound(a, c), divBound(a, d)))
	default:
		var halves []Interval
		if posLo, posHi, ok := rawMeet(c, d, one, PosInfBound()); ok {
			halves = append(halves, DivI(bd, x, Interval{Lo: posLo, Hi: posHi}))
		}
		if negLo, negHi, ok := rawMeet(c, d, NegInfBound(), negOne); ok {
			halves = append(halves, DivI(bd, x, Interval{Lo: negLo, Hi: negHi}))
		}
		return JoinAll(bd, append(halves, Bot()))
	}
}

// rawMeet intersects [lo1,hi1] with [lo2,hi2] without canonicalizing,
// reporting ok=false when the intersection is empty.
func rawMeet(lo1, hi1, lo2, hi2 Bound) (Bound, Bound, bool) {
	lo := MaxBound(lo1, lo2)
	hi := MinBound(hi1, hi2)
	if lo.Greater(hi) {
		return Bound{}, Bound{}, false
	}
	return lo, hi, true
}

// divBound divides one bound by another, used only for the non-zero-
// straddling branches of DivI where c (or d) has a fixed, known sign.
func divBound(x, y Bound) Bound {
	switch {
	case x.IsNegInf():
		if signOf(y) >= 0 {
			return NegInfBound()
		}
		return PosInfBound()
	case x.IsPosInf():
		if signOf(y) >= 0 {
			return PosInfBound()
		}
		return NegInfBound()
	case y.IsFinite():
		q := x.Val / y.Val
		// Round toward -∞ is not required here: interval division only
		// needs a sound enclosure, and truncating division already
		// yields a value whose min/max combination with the other three
		// corner computations is safe because all four corners are
		// considered and joined.
		return FiniteBound(q)
	default:
		// y is infinite and x is finite: x/±∞ = 0.
		return FiniteBound(0)
	}
}
