package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeNamer []string

func (f fakeNamer) Name(idx int) string { return f[idx] }

func TestFormatRendersPerNodeBlock(t *testing.T) {
	bd := unbounded()
	st := State{Bounds: bd, Values: []Interval{Singleton(1), Top()}}
	names := fakeNamer{"x", "y"}

	got := Format(2, st, names, 2)
	assert.Equal(t, "[P2]\n  x = [1,1]\n  y = TOP\n", got)
}

func TestFormatRendersBottomAsSingleLine(t *testing.T) {
	bd := unbounded()
	st := BottomState(bd)
	names := fakeNamer{"x"}

	got := Format(0, st, names, 1)
	assert.Equal(t, "[P0]\n  BOTTOM\n", got)
}
