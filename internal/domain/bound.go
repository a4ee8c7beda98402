// Package domain implements the parametric interval abstract domain
// Int(m,n) from spec.md §3/§4.1-4.2: interval arithmetic with explicit
// infinities and saturation, canonicalization against a pair of bounds, and
// the abstract-state transfer functions for assignment and boolean guards.
package domain

import (
	"math"
	"math/bits"
	"strconv"
)

// Kind discriminates the three shapes a Bound can take.
type Kind int

const (
	NegInf Kind = iota
	Finite
	PosInf
)

// Bound is one endpoint of an interval: a finite 64-bit integer, or one of
// the two sentinel infinities. -∞ and +∞ never carry a Val.
type Bound struct {
	Kind Kind
	Val  int64
}

func NegInfBound() Bound    { return Bound{Kind: NegInf} }
func PosInfBound() Bound    { return Bound{Kind: PosInf} }
func FiniteBound(v int64) Bound { return Bound{Kind: Finite, Val: v} }

func (b Bound) IsNegInf() bool { return b.Kind == NegInf }
func (b Bound) IsPosInf() bool { return b.Kind == PosInf }
func (b Bound) IsFinite() bool { return b.Kind == Finite }

func rank(b Bound) int {
	switch b.Kind {
	case NegInf:
		return 0
	case PosInf:
		return 2
	default:
		return 1
	}
}

// Cmp totally orders bounds: -∞ < every finite value < +∞.
func Cmp(a, b Bound) int {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	if ra != 1 {
		return 0 // both -∞ or both +∞
	}
	switch {
	case a.Val < b.Val:
		return -1
	case a.Val > b.Val:
		return 1
	default:
		return 0
	}
}

func (a Bound) Less(b Bound) bool    { return Cmp(a, b) < 0 }
func (a Bound) LessEq(b Bound) bool  { return Cmp(a, b) <= 0 }
func (a Bound) Equal(b Bound) bool   { return Cmp(a, b) == 0 }
func (a Bound) Greater(b Bound) bool { return Cmp(a, b) > 0 }

func MinBound(a, b Bound) Bound {
	if Cmp(a, b) <= 0 {
		return a
	}
	return b
}

func MaxBound(a, b Bound) Bound {
	if Cmp(a, b) >= 0 {
		return a
	}
	return b
}

// Neg saturates on negating math.MinInt64, whose negation does not fit in
// an int64.
func Neg(b Bound) Bound {
	switch b.Kind {
	case NegInf:
		return PosInfBound()
	case PosInf:
		return NegInfBound()
	default:
		if b.Val == math.MinInt64 {
			return PosInfBound()
		}
		return FiniteBound(-b.Val)
	}
}

func signOf(b Bound) int {
	switch b.Kind {
	case NegInf:
		return -1
	case PosInf:
		return 1
	default:
		switch {
		case b.Val < 0:
			return -1
		case b.Val > 0:
			return 1
		default:
			return 0
		}
	}
}

// Add saturates finite overflow to the matching infinity. The two infinite
// operands never have opposite sign in any call site reachable from
// Interval arithmetic (lower bounds are only ever -∞ or finite; upper
// bounds only ever +∞ or finite), so the indeterminate -∞+∞ combination is
// an internal-invariant violation, not a domain-level case to handle
// softly (spec.md §7 kind 2).
func Add(x, y Bound) Bound {
	if x.Kind == NegInf || y.Kind == NegInf {
		if x.Kind == PosInf || y.Kind == PosInf {
			panic("domain: indeterminate -inf + +inf (unreachable)")
		}
		return NegInfBound()
	}
	if x.Kind == PosInf || y.Kind == PosInf {
		return PosInfBound()
	}
	sum := x.Val + y.Val
	// Overflow check via sign comparison against one operand.
	if (y.Val > 0 && sum < x.Val) || (y.Val < 0 && sum > x.Val) {
		if y.Val > 0 {
			return PosInfBound()
		}
		return NegInfBound()
	}
	return FiniteBound(sum)
}

// Sub is Add(x, Neg(y)).
func Sub(x, y Bound) Bound { return Add(x, Neg(y)) }

// Mul implements saturating multiplication with the explicit rule
// +∞·0 = 0 required by spec.md §4.1, checked before any sign-based
// infinite-result shortcut.
func Mul(x, y Bound) Bound {
	if (x.Kind == Finite && x.Val == 0) || (y.Kind == Finite && y.Val == 0) {
		return FiniteBound(0)
	}
	sign := signOf(x) * signOf(y)
	if x.Kind != Finite || y.Kind != Finite {
		if sign >= 0 {
			return PosInfBound()
		}
		return NegInfBound()
	}
	result, ok := mulInt64(x.Val, y.Val)
	if !ok {
		if sign >= 0 {
			return PosInfBound()
		}
		return NegInfBound()
	}
	return FiniteBound(result)
}

// mulInt64 returns a*b and whether the exact mathematical product fits in
// an int64, computed via the unsigned 128-bit product (math/bits.Mul64) to
// avoid the intermediate overflow a naive int64 multiply would hit.
func mulInt64(a, b int64) (int64, bool) {
	neg := (a < 0) != (b < 0)
	ua, ub := absUint64(a), absUint64(b)
	hi, lo := bits.Mul64(ua, ub)
	if neg {
		if hi != 0 || lo > uint64(math.MaxInt64)+1 {
			return 0, false
		}
		if lo == uint64(math.MaxInt64)+1 {
			return math.MinInt64, true
		}
		return -int64(lo), true
	}
	if hi != 0 || lo > uint64(math.MaxInt64) {
		return 0, false
	}
	return int64(lo), true
}

func absUint64(v int64) uint64 {
	if v < 0 {
		if v == math.MinInt64 {
			return uint64(math.MaxInt64) + 1
		}
		return uint64(-v)
	}
	return uint64(v)
}

func (b Bound) String() string {
	switch b.Kind {
	case NegInf:
		return "-INF"
	case PosInf:
		return "+INF"
	default:
		return strconv.FormatInt(b.Val, 10)
	}
}
