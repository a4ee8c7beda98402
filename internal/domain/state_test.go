package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBottomStateLeqEverything(t *testing.T) {
	bd := unbounded()
	bot := BottomState(bd)
	top := TopState(bd, 2)
	assert.True(t, LeqState(bot, top))
	assert.False(t, LeqState(top, bot))
}

func TestWithCollapsesToBottomOnBottomSlot(t *testing.T) {
	bd := unbounded()
	st := TopState(bd, 2)
	got := st.With(0, Bot())
	assert.True(t, got.IsBottom())
}

func TestCloneDoesNotAliasValues(t *testing.T) {
	bd := unbounded()
	st := TopState(bd, 1)
	clone := st.Clone()
	clone.Values[0] = Singleton(5)
	assert.True(t, st.Values[0].IsTop())
}

func TestJoinStateIsPointwise(t *testing.T) {
	bd := unbounded()
	x := State{Bounds: bd, Values: []Interval{Singleton(1), Singleton(2)}}
	y := State{Bounds: bd, Values: []Interval{Singleton(3), Singleton(2)}}
	got := JoinState(x, y)
	assert.Equal(t, Mk(bd, FiniteBound(1), FiniteBound(3)), got.Values[0])
	assert.Equal(t, Singleton(2), got.Values[1])
}

func TestMeetStateCollapsesWholeVectorOnContradiction(t *testing.T) {
	bd := unbounded()
	x := State{Bounds: bd, Values: []Interval{Singleton(1), Singleton(2)}}
	y := State{Bounds: bd, Values: []Interval{Singleton(9), Singleton(2)}}
	got := MeetState(x, y)
	assert.True(t, got.IsBottom())
}
