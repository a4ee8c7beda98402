package domain

// BackAdd, BackSub, BackMul, BackDiv are the four backward interval
// operators of spec.md §4.2 step 3: given the forward operand intervals
// (x,y) of a binary node and a refined interval r for the whole node, they
// return refined (x,y) consistent with "x op y constrained to r".

func BackAdd(bd Bounds, x, y, r Interval) (Interval, Interval) {
	return Meet(bd, x, SubI(bd, r, y)), Meet(bd, y, SubI(bd, r, x))
}

func BackSub(bd Bounds, x, y, r Interval) (Interval, Interval) {
	return Meet(bd, x, AddI(bd, r, y)), Meet(bd, y, SubI(bd, x, r))
}

// BackMul narrows through r/y (resp. r/x), except when both the other
// operand and r admit zero: x*0 = 0 is then consistent with r for any x, so
// routing that case through DivI (which treats a zero divisor as
// unreachable) would wrongly collapse a reachable state to Bottom.
func BackMul(bd Bounds, x, y, r Interval) (Interval, Interval) {
	return Meet(bd, x, backMulOperand(bd, y, r)), Meet(bd, y, backMulOperand(bd, x, r))
}

func backMulOperand(bd Bounds, other, r Interval) Interval {
	if containsZero(other) && containsZero(r) {
		return Top()
	}
	return DivI(bd, r, other)
}

func containsZero(i Interval) bool {
	if i.Bottom {
		return false
	}
	zero := FiniteBound(0)
	return i.Lo.LessEq(zero) && i.Hi.GreaterEq(zero)
}

// BackDiv implements back_÷ for x/y = r, per spec.md §4.2 step 3: x is
// refined by (r±[-1,1])·y to account for truncating integer division, and y
// is refined by x/(r±[-1,1]) ∪ [0,0].
func BackDiv(bd Bounds, x, y, r Interval) (Interval, Interval) {
	slack := Interval{Lo: FiniteBound(-1), Hi: FiniteBound(1)}
	rpm := AddI(bd, r, slack)
	nx := Meet(bd, x, MulI(bd, rpm, y))
	ny := Meet(bd, y, Join(bd, DivI(bd, x, rpm), Singleton(0)))
	return nx, ny
}
