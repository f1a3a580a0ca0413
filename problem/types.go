package problem

import "fmt"

// State is the opaque state of a discrete optimization problem. It is held
// by reference by the diagram's nodes; the same State value may back more
// than one node (e.g. the residual state and the diagram root).
//
// Key must be stable for the lifetime of a compile and must collide if and
// only if two states are meant to be deduplicated within the same layer
// (invariant 2 of spec.md §3). It plays the role that Eq + Hash play for
// the original Rust implementation's generic State parameter.
type State interface {
	Key() string
}

// Variable is the index of a decision variable.
type Variable int

// Decision pairs a Variable with the value assigned to it.
type Decision struct {
	Variable Variable
	Value    int
}

func (d Decision) String() string {
	return fmt.Sprintf("x%d=%d", d.Variable, d.Value)
}

// SubProblem is a residual subproblem: a state reached by a path of prior
// decisions, the accumulated objective value along that path, and an upper
// bound on the best completion from this state.
type SubProblem struct {
	State State
	Value int64
	Path  []Decision
	UB    int64
}

// Completion is the outcome of compiling one diagram.
type Completion struct {
	IsExact   bool
	BestValue *int64 // nil when the compiled subproblem is infeasible
}
