// Package ddo is a decision-diagram based discrete optimizer: given a
// problem.Problem and a problem.Relaxation, package diagram compiles
// layered, arena-backed decision diagrams (Exact, Restricted, and Relaxed)
// from which a caller can read a best value, a best solution, and — for
// Relaxed compiles — a cutset of subproblems to expand further.
//
// Subpackages:
//
//	problem/   — the capability interfaces (Problem, Relaxation, Ranking,
//	             Cutoff) and plain value types (State, Decision, SubProblem,
//	             Completion) a caller implements and consumes.
//	diagram/   — the compilation core: arena, width control, Last Exact
//	             Layer capture, rough-upper-bound pruning, local bounds.
//	export/    — renders a compiled diagram as a Graphviz DOT file, for
//	             inspecting layer, cutset, and merge structure.
//	maxtwosat/ — a concrete Problem/Relaxation pair modeling weighted
//	             MAX-2-SAT, plus a DIMACS .wcnf reader.
//	cmd/ddosolve/ — a CLI driver that solves a .wcnf instance with a
//	             branch-and-bound loop around repeated diagram.Compile calls.
package ddo
