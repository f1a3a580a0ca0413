package maxtwosat

import (
	"fmt"
	"strconv"
	"strings"
)

// RawClause is one soft clause as read from a .wcnf file: a non-negative
// weight and one or two signed, 1-indexed literals (negative negates the
// variable). Lit2 is 0 for a unit clause.
type RawClause struct {
	Weight     int64
	Lit1, Lit2 int
}

type clause struct {
	weight             int64
	varA, varB         int // 0-indexed variable ids; varB == -1 for a unit clause
	negA, negB         bool
}

// Instance is a parsed, order-compiled MAX-2-SAT instance ready to drive a
// Problem/Relaxation pair. Build one with NewInstance or ReadWCNF.
type Instance struct {
	nbVars int

	// order[i] is the variable branched at depth i; position is its inverse.
	order    []int
	position []int

	// clausesAtStep[i] holds every clause whose later variable is order[i],
	// so each clause is credited exactly once, at the step of whichever of
	// its variables comes later in order.
	clausesAtStep [][]clause

	// remainingWeight[i] is the combined weight of every clause not yet
	// fully resolved at depth i (i.e. touching a variable at position >= i),
	// used as Relaxation.FastUpperBound's admissible bound.
	remainingWeight []int64
}

// NewInstance compiles raw clauses over nbVars variables (1-indexed in
// clauses, as in DIMACS) into an Instance. Variables are branched in
// descending order of how many clauses touch them (ties broken by lower
// variable id first), a static stand-in for "assign the most-constrained
// variable first".
func NewInstance(nbVars int, clauses []RawClause) (*Instance, error) {
	degree := make([]int, nbVars)
	parsed := make([]clause, 0, len(clauses))

	for _, rc := range clauses {
		c, err := compileClause(nbVars, rc)
		if err != nil {
			return nil, err
		}
		degree[c.varA]++
		if c.varB >= 0 {
			degree[c.varB]++
		}
		parsed = append(parsed, c)
	}

	order := make([]int, nbVars)
	for v := range order {
		order[v] = v
	}
	sortByDegreeDesc(order, degree)

	position := make([]int, nbVars)
	for i, v := range order {
		position[v] = i
	}

	clausesAtStep := make([][]clause, nbVars)
	remainingWeight := make([]int64, nbVars+1)
	for _, c := range parsed {
		step := c.posA(position)
		if c.varB >= 0 {
			if pb := position[c.varB]; pb > step {
				step = pb
			}
		}
		clausesAtStep[step] = append(clausesAtStep[step], c)
		for i := 0; i <= step; i++ {
			remainingWeight[i] += c.weight
		}
	}

	return &Instance{
		nbVars:          nbVars,
		order:           order,
		position:        position,
		clausesAtStep:   clausesAtStep,
		remainingWeight: remainingWeight,
	}, nil
}

func (c clause) posA(position []int) int { return position[c.varA] }

func compileClause(nbVars int, rc RawClause) (clause, error) {
	if rc.Lit1 == 0 {
		return clause{}, fmt.Errorf("%w: empty clause", ErrMalformedClause)
	}
	varA, negA := litToVar(rc.Lit1)
	if varA < 0 || varA >= nbVars {
		return clause{}, fmt.Errorf("%w: literal %d out of range", ErrMalformedClause, rc.Lit1)
	}
	c := clause{weight: rc.Weight, varA: varA, negA: negA, varB: -1}
	if rc.Lit2 != 0 {
		varB, negB := litToVar(rc.Lit2)
		if varB < 0 || varB >= nbVars {
			return clause{}, fmt.Errorf("%w: literal %d out of range", ErrMalformedClause, rc.Lit2)
		}
		c.varB, c.negB = varB, negB
	}
	return c, nil
}

func litToVar(lit int) (v int, negated bool) {
	if lit < 0 {
		return -lit - 1, true
	}
	return lit - 1, false
}

// sortByDegreeDesc sorts order by descending degree[v], ties broken by
// ascending v, without pulling in sort.Slice's reflection overhead for
// what's always a small, one-shot precompute.
func sortByDegreeDesc(order []int, degree []int) {
	for i := 1; i < len(order); i++ {
		v := order[i]
		j := i - 1
		for j >= 0 && less(degree, order[j], v) {
			order[j+1] = order[j]
			j--
		}
		order[j+1] = v
	}
}

// less reports whether order entry a should sort after candidate b, i.e.
// b has strictly higher degree, or equal degree and a lower id.
func less(degree []int, a, b int) bool {
	if degree[a] != degree[b] {
		return degree[a] < degree[b]
	}
	return a > b
}

const (
	unassigned = -2
	wildcard   = -1
)

// State is a partial MAX-2-SAT assignment: assignment[i] holds the
// value branched for variable inst.order[i] (0 or 1), wildcard if a merge
// collapsed disagreeing values at that position, or unassigned beyond
// Depth.
type State struct {
	inst       *Instance
	Depth      int
	assignment []int8
}

// rootState returns the empty assignment at depth 0.
func rootState(inst *Instance) State {
	a := make([]int8, inst.nbVars)
	for i := range a {
		a[i] = unassigned
	}
	return State{inst: inst, assignment: a}
}

// Key renders the decided prefix as a compact string, used by package
// diagram to deduplicate nodes within a layer.
func (s State) Key() string {
	var b strings.Builder
	b.Grow(s.Depth + 4)
	b.WriteString(strconv.Itoa(s.Depth))
	b.WriteByte(':')
	for i := 0; i < s.Depth; i++ {
		switch s.assignment[i] {
		case 0:
			b.WriteByte('0')
		case 1:
			b.WriteByte('1')
		default:
			b.WriteByte('*')
		}
	}
	return b.String()
}
