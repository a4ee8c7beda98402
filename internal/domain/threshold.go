package domain

import "sort"

// Thresholds is the widening threshold set W: a sorted, deduplicated
// sequence over ℤ∪{-∞,+∞}, always containing both infinities.
type Thresholds struct {
	values []Bound // sorted ascending, deduplicated
}

// NewThresholds builds W from a set of finite integers, per spec.md §3.
func NewThresholds(finite []int64) Thresholds {
	seen := make(map[int64]bool, len(finite))
	values := []Bound{NegInfBound()}
	sorted := make([]int64, 0, len(finite))
	for _, k := range finite {
		if !seen[k] {
			seen[k] = true
			sorted = append(sorted, k)
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	for _, k := range sorted {
		values = append(values, FiniteBound(k))
	}
	values = append(values, PosInfBound())
	return Thresholds{values: values}
}

// MaxLessEq returns the greatest threshold k with k <= x. Always defined
// since -∞ is always a member.
func (t Thresholds) MaxLessEq(x Bound) Bound {
	best := t.values[0]
	for _, k := range t.values {
		if k.LessEq(x) {
			best = k
		} else {
			break
		}
	}
	return best
}

// MinGreaterEq returns the least threshold k with k >= x. Always defined
// since +∞ is always a member.
func (t Thresholds) MinGreaterEq(x Bound) Bound {
	for _, k := range t.values {
		if k.GreaterEq(x) {
			return k
		}
	}
	return t.values[len(t.values)-1]
}

func (t Thresholds) Values() []Bound {
	out := make([]Bound, len(t.values))
	copy(out, t.values)
	return out
}
