// Package problem defines the capability interfaces and plain value types
// through which the decision-diagram compiler in package diagram talks to
// the outside world: the discrete optimization problem being compiled, its
// relaxation, a state ranking used as a tie-breaker, and a cooperative
// cutoff predicate.
//
// None of these types know anything about arenas, layers, or width
// control — that is diagram's job. problem only fixes the contract:
//
//	State       — opaque problem state, identified by Key() for dedup.
//	Variable    — index of a decision variable.
//	Decision    — a (Variable, value) pair.
//	SubProblem  — a residual subproblem: state + accumulated value + path + ub.
//	Completion  — the result of compiling one diagram: exactness + best value.
//
//	Problem     — next_variable / is_impacted_by / for_each_in_domain / transition(_cost).
//	Relaxation  — merge / relax / fast_upper_bound.
//	Ranking     — compare, a total order used to break ties during width control.
//	Cutoff      — must_stop, consulted once per compile iteration.
//
// State identity mirrors the teacher's core.Vertex convention of a stable
// string ID rather than introducing generic type parameters: Key() is the
// map key package diagram uses to deduplicate nodes within a layer.
package problem
