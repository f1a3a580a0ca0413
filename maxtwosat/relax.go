package maxtwosat

import (
	"iter"

	"github.com/ryanjoneil/ddo/problem"
)

// Relaxation merges states by collapsing disagreeing assignment positions
// to a wildcard, and bounds the best possible completion by the combined
// weight of every clause not yet resolved.
type Relaxation struct {
	Inst *Instance
}

// NewRelaxation wraps inst as a problem.Relaxation.
func NewRelaxation(inst *Instance) Relaxation { return Relaxation{Inst: inst} }

// Merge collapses the given states to one: positions where every state
// agrees keep that value, positions where any two disagree become a
// wildcard. All merged states are assumed to share a depth, which holds by
// construction since merging only ever happens within one layer.
func (r Relaxation) Merge(states iter.Seq[problem.State]) problem.State {
	var depth int
	var merged []int8

	first := true
	for s := range states {
		cur := s.(State)
		if first {
			depth = cur.Depth
			merged = make([]int8, len(cur.assignment))
			copy(merged, cur.assignment)
			first = false
			continue
		}
		for i := 0; i < depth; i++ {
			if merged[i] != wildcard && merged[i] != cur.assignment[i] {
				merged[i] = wildcard
			}
		}
	}

	if first {
		return rootState(r.Inst)
	}
	return State{inst: r.Inst, Depth: depth, assignment: merged}
}

// Relax leaves the edge cost untouched: TransitionCost already computed an
// admissible cost from the source state alone, independent of which
// destination the edge is ultimately attached to.
func (Relaxation) Relax(_, _, _ problem.State, _ problem.Decision, cost int64) int64 {
	return cost
}

// FastUpperBound returns the combined weight of every clause not yet
// resolved at s's depth — a true completion can never add more than that,
// so the bound is admissible by construction.
func (r Relaxation) FastUpperBound(s problem.State) int64 {
	return r.Inst.remainingWeight[s.(State).Depth]
}

// Ranking breaks width-control ties by preferring states that retain more
// concrete (non-wildcard) assignments, on the theory that a more
// informative state is more likely to lead to a tight completion.
type Ranking struct{}

// Compare returns positive when a carries fewer wildcards than b.
func (Ranking) Compare(a, b problem.State) int {
	return wildcards(b.(State)) - wildcards(a.(State))
}

func wildcards(s State) int {
	n := 0
	for i := 0; i < s.Depth; i++ {
		if s.assignment[i] == wildcard {
			n++
		}
	}
	return n
}
