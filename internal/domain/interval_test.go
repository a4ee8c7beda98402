package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func unbounded() Bounds { return Bounds{M: NegInfBound(), N: PosInfBound()} }
func bounded(m, n int64) Bounds {
	return Bounds{M: FiniteBound(m), N: FiniteBound(n)}
}
func collapsed() Bounds { return Bounds{M: FiniteBound(1), N: FiniteBound(-1)} }

func TestMkBottomOnEmptyRange(t *testing.T) {
	bd := unbounded()
	got := Mk(bd, FiniteBound(5), FiniteBound(3))
	assert.True(t, got.IsBottom())
}

func TestMkSingletonAlwaysCanonical(t *testing.T) {
	bd := bounded(0, 10)
	got := Mk(bd, FiniteBound(100), FiniteBound(100))
	assert.Equal(t, Interval{Lo: FiniteBound(100), Hi: FiniteBound(100)}, got)
}

func TestMkInfInfCollapsesToTop(t *testing.T) {
	bd := unbounded()
	assert.True(t, Mk(bd, NegInfBound(), NegInfBound()).IsTop())
	assert.True(t, Mk(bd, PosInfBound(), PosInfBound()).IsTop())
}

func TestMkWidensOutOfWindowRanges(t *testing.T) {
	bd := bounded(0, 10)

	got := Mk(bd, FiniteBound(-5), FiniteBound(5))
	assert.Equal(t, Interval{Lo: NegInfBound(), Hi: FiniteBound(5)}, got)

	got = Mk(bd, FiniteBound(5), FiniteBound(20))
	assert.Equal(t, Interval{Lo: FiniteBound(5), Hi: PosInfBound()}, got)

	got = Mk(bd, FiniteBound(-20), FiniteBound(-15))
	assert.Equal(t, Interval{Lo: NegInfBound(), Hi: FiniteBound(0)}, got)

	got = Mk(bd, FiniteBound(15), FiniteBound(20))
	assert.Equal(t, Interval{Lo: FiniteBound(10), Hi: PosInfBound()}, got)
}

func TestMkCollapsedDomainOnlyProducesConstantPropagationShapes(t *testing.T) {
	bd := collapsed()

	assert.True(t, Mk(bd, FiniteBound(3), FiniteBound(3)).Lo.Equal(FiniteBound(3)))
	assert.True(t, Mk(bd, NegInfBound(), PosInfBound()).IsTop())
	assert.True(t, Mk(bd, FiniteBound(3), FiniteBound(5)).IsTop())
	assert.True(t, Mk(bd, NegInfBound(), FiniteBound(5)).IsTop())
}

func TestLeqReflexiveAntisymmetricTransitive(t *testing.T) {
	bd := unbounded()
	i := Mk(bd, FiniteBound(1), FiniteBound(5))
	j := Mk(bd, FiniteBound(0), FiniteBound(6))
	k := Mk(bd, FiniteBound(-1), FiniteBound(10))

	assert.True(t, Leq(i, i))
	assert.True(t, Leq(i, j) && Leq(j, k))
	assert.True(t, Leq(i, k))

	assert.True(t, Leq(Bot(), i))
	assert.True(t, Leq(i, Top()))
}

func TestJoinMeetCommutativeAssociativeIdempotent(t *testing.T) {
	bd := unbounded()
	i := Mk(bd, FiniteBound(1), FiniteBound(5))
	j := Mk(bd, FiniteBound(3), FiniteBound(8))
	k := Mk(bd, FiniteBound(-2), FiniteBound(2))

	assert.Equal(t, Join(bd, i, j), Join(bd, j, i))
	assert.Equal(t, Join(bd, Join(bd, i, j), k), Join(bd, i, Join(bd, j, k)))
	assert.Equal(t, i, Join(bd, i, i))

	assert.Equal(t, Meet(bd, i, j), Meet(bd, j, i))
	assert.Equal(t, Meet(bd, Meet(bd, i, j), k), Meet(bd, i, Meet(bd, j, k)))
	assert.Equal(t, i, Meet(bd, i, i))
}

func TestArithmeticSoundness(t *testing.T) {
	bd := unbounded()
	i := Mk(bd, FiniteBound(1), FiniteBound(3))
	j := Mk(bd, FiniteBound(-2), FiniteBound(4))

	for x := int64(1); x <= 3; x++ {
		for y := int64(-2); y <= 4; y++ {
			sum := AddI(bd, i, j)
			assert.True(t, within(sum, x+y), "sum must enclose %d+%d", x, y)

			diff := SubI(bd, i, j)
			assert.True(t, within(diff, x-y), "diff must enclose %d-%d", x, y)

			prod := MulI(bd, i, j)
			assert.True(t, within(prod, x*y), "product must enclose %d*%d", x, y)

			if y != 0 {
				quot := DivI(bd, i, j)
				assert.True(t, within(quot, x/y), "quotient must enclose %d/%d", x, y)
			}
		}
	}
}

func within(i Interval, k int64) bool {
	if i.IsBottom() {
		return false
	}
	return i.Lo.LessEq(FiniteBound(k)) && FiniteBound(k).LessEq(i.Hi)
}

func TestWideningStabilizesMonotoneSequence(t *testing.T) {
	bd := unbounded()
	w := NewThresholds([]int64{0, 10})

	x := Bot()
	f := func(prev Interval) Interval {
		return Join(bd, prev, Singleton(0))
	}
	_ = f

	// A growing sequence x_{n+1} = x_n widen F(x_n), with F monotonically
	// extending the interval upward, must stabilize within a handful of
	// steps given a finite threshold set.
	next := Singleton(0)
	steps := 0
	for steps < 100 {
		widened := Widen(bd, w, x, next)
		if widened == x {
			break
		}
		x = widened
		next = Join(bd, x, Singleton(5))
		steps++
	}
	assert.Less(t, steps, 10)
}

func TestDivisionByZeroIntervalIsBottom(t *testing.T) {
	bd := unbounded()
	i := Mk(bd, FiniteBound(1), FiniteBound(10))
	zero := Singleton(0)
	assert.True(t, DivI(bd, i, zero).IsBottom())
}

func TestStringFormats(t *testing.T) {
	bd := unbounded()
	assert.Equal(t, "BOTTOM", Bot().String())
	assert.Equal(t, "TOP", Top().String())
	assert.Equal(t, "[5,5]", Singleton(5).String())
	assert.Equal(t, "(-INF, 5]", Mk(bd, NegInfBound(), FiniteBound(5)).String())
	assert.Equal(t, "[5, +INF)", Mk(bd, FiniteBound(5), PosInfBound()).String())
}
