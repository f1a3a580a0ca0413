package maxtwosat

import (
	"iter"

	"github.com/ryanjoneil/ddo/problem"
)

// Problem adapts an Instance to problem.Problem: one variable per layer,
// branched in the Instance's precomputed order, domain {0, 1}.
type Problem struct {
	Inst *Instance
}

// NewProblem wraps inst as a problem.Problem.
func NewProblem(inst *Instance) Problem { return Problem{Inst: inst} }

// Root returns the empty-assignment subproblem diagram.Compile expands
// from for a fresh compile of the whole instance.
func (p Problem) Root() problem.SubProblem {
	return problem.SubProblem{
		State: rootState(p.Inst),
		Value: 0,
		UB:    p.Inst.remainingWeight[0],
	}
}

// NextVariable branches depth-by-depth through the instance's precomputed
// order; every state reaching the frontier is at the same depth by
// construction, so the first one seen settles it.
func (p Problem) NextVariable(frontier iter.Seq[problem.State]) (problem.Variable, bool) {
	for s := range frontier {
		depth := s.(State).Depth
		if depth >= p.Inst.nbVars {
			return 0, false
		}
		return problem.Variable(depth), true
	}
	return 0, false
}

// ForEachInDomain offers both truth values; maxtwosat never prunes a
// variable's domain ahead of transitioning.
func (p Problem) ForEachInDomain(v problem.Variable, _ problem.State, yield func(problem.Decision)) {
	yield(problem.Decision{Variable: v, Value: 0})
	yield(problem.Decision{Variable: v, Value: 1})
}

// Transition extends s with d's value at the next position and returns the
// copy; the source assignment is never mutated, since s may still be used
// to branch the other domain value.
func (p Problem) Transition(s problem.State, d problem.Decision) problem.State {
	cur := s.(State)
	next := make([]int8, len(cur.assignment))
	copy(next, cur.assignment)
	next[cur.Depth] = int8(d.Value)
	return State{inst: cur.inst, Depth: cur.Depth + 1, assignment: next}
}

// TransitionCost sums the weight of every clause resolved at this step:
// those whose later-ordered variable is the one now being decided. A
// clause touching a wildcard partner (only possible after a merge) is
// credited optimistically, since some choice for that partner could always
// satisfy the clause — the source of the relaxation's admissibility.
func (p Problem) TransitionCost(s problem.State, d problem.Decision) int64 {
	cur := s.(State)
	var total int64
	for _, c := range p.Inst.clausesAtStep[cur.Depth] {
		if c.weight == 0 {
			continue
		}
		curNeg := c.negA
		if c.varA != cur.inst.order[cur.Depth] {
			curNeg = c.negB
		}
		curTrue := litTrue(curNeg, int8(d.Value))

		if c.varB < 0 {
			if curTrue {
				total += c.weight
			}
			continue
		}

		other := c.varA
		otherNeg := c.negA
		if other == cur.inst.order[cur.Depth] {
			other, otherNeg = c.varB, c.negB
		}
		otherVal := cur.assignment[cur.inst.position[other]]

		switch otherVal {
		case wildcard:
			total += c.weight
		default:
			if curTrue || litTrue(otherNeg, otherVal) {
				total += c.weight
			}
		}
	}
	return total
}

func litTrue(negated bool, val int8) bool {
	if negated {
		return val == 0
	}
	return val == 1
}
