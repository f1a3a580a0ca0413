// Package maxtwosat models weighted MAX-2-SAT as a problem.Problem /
// problem.Relaxation pair, compiled by package diagram.
//
// An instance is a set of soft clauses, each with at most two literals and
// a non-negative weight; the goal is to choose a truth assignment
// maximizing the total weight of satisfied clauses. Variables are branched
// in a fixed order computed once at load time (assign the variable
// touching the most clauses first, a static stand-in for the frontier-
// driven "most-constrained-first" heuristic), which lets every clause's
// contribution be credited exactly once: at the step of whichever of its
// two variables comes later in that order.
//
// # State
//
// A State is a partial assignment over the fixed order's first Depth
// variables. Under Restricted/Exact compilation every assignment is
// concrete (true/false); under Relaxed compilation, merged nodes carry a
// wildcard at any position where the merged states disagree. A wildcard
// makes TransitionCost assume — optimistically, and therefore admissibly —
// that any clause touching it is satisfiable, which is what keeps the
// relaxation's value a valid dual bound.
//
// # Loading an instance
//
// ReadWCNF parses a DIMACS weighted-CNF (.wcnf) file: a header line
// "p wcnf <vars> <clauses> [top]" followed by one "<weight> <lit> [<lit>] 0"
// line per clause.
package maxtwosat
