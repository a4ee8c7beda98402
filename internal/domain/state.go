package domain

// State is an abstract store: one Interval per program variable, indexed by
// the stable indices assigned by internal/symtab. A State whose Values
// slice is nil denotes Bottom for the whole vector (unreachable program point) rather than a
// slice of Bottom intervals, so engines can cheaply test reachability.
type State struct {
	Bounds Bounds
	Values []Interval
}

// BottomState reports the vector with no variables, representing an
// unreachable program point.
func BottomState(bd Bounds) State { return State{Bounds: bd, Values: nil} }

// TopState builds the vector mapping every one of n variables to Top.
func TopState(bd Bounds, n int) State {
	vs := make([]Interval, n)
	for i := range vs {
		vs[i] = Top()
	}
	return State{Bounds: bd, Values: vs}
}

func (s State) IsBottom() bool { return s.Values == nil }

// Get returns the interval bound to variable index i, or Bottom's
// single-variable identity (Bottom) if the whole state is unreachable.
func (s State) Get(i int) Interval {
	if s.IsBottom() {
		return Bot()
	}
	return s.Values[i]
}

// With returns a copy of s with variable i rebound to v. If the result is
// Bottom in every component because v is Bottom, the whole state collapses
// to BottomState: a program point where one variable has no possible value
// cannot be reached with any value for the others either, since the
// assignment that produced it executes unconditionally at that point.
func (s State) With(i int, v Interval) State {
	if s.IsBottom() {
		return s
	}
	if v.IsBottom() {
		return BottomState(s.Bounds)
	}
	next := s.Clone()
	next.Values[i] = v
	return next
}

func (s State) Clone() State {
	if s.IsBottom() {
		return s
	}
	vs := make([]Interval, len(s.Values))
	copy(vs, s.Values)
	return State{Bounds: s.Bounds, Values: vs}
}

// LeqState is the pointwise inclusion order, with Bottom below every state.
func LeqState(x, y State) bool {
	if x.IsBottom() {
		return true
	}
	if y.IsBottom() {
		return false
	}
	for i := range x.Values {
		if !Leq(x.Values[i], y.Values[i]) {
			return false
		}
	}
	return true
}

// JoinState is the pointwise join, with Bottom as the identity.
func JoinState(x, y State) State {
	if x.IsBottom() {
		return y
	}
	if y.IsBottom() {
		return x
	}
	vs := make([]Interval, len(x.Values))
	for i := range vs {
		vs[i] = Join(x.Bounds, x.Values[i], y.Values[i])
	}
	return State{Bounds: x.Bounds, Values: vs}
}

// MeetState is the pointwise meet. Any component collapsing to Bottom
// collapses the whole vector, per the same unreachability argument as With.
func MeetState(x, y State) State {
	if x.IsBottom() || y.IsBottom() {
		return BottomState(x.Bounds)
	}
	vs := make([]Interval, len(x.Values))
	for i := range vs {
		m := Meet(x.Bounds, x.Values[i], y.Values[i])
		if m.IsBottom() {
			return BottomState(x.Bounds)
		}
		vs[i] = m
	}
	return State{Bounds: x.Bounds, Values: vs}
}

// WidenState widens pointwise against a shared threshold set.
func WidenState(w Thresholds, prev, next State) State {
	if prev.IsBottom() {
		return next
	}
	if next.IsBottom() {
		return prev
	}
	vs := make([]Interval, len(prev.Values))
	for i := range vs {
		vs[i] = Widen(prev.Bounds, w, prev.Values[i], next.Values[i])
	}
	return State{Bounds: prev.Bounds, Values: vs}
}
