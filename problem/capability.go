package problem

import "iter"

// Problem is the discrete optimization problem being compiled. Every
// method operates on State values; Problem itself carries no mutable
// state of its own across calls (see spec.md §9 on the "global mutable
// state" smell — callers must thread all frontier information through
// NextVariable's argument, never through hidden counters).
type Problem interface {
	// NextVariable returns the variable to branch on next, given an
	// iterator over the states currently populating the frontier being
	// assembled. Returning ok=false ends compilation.
	NextVariable(frontier iter.Seq[State]) (v Variable, ok bool)

	// ForEachInDomain enumerates the decisions available for variable v
	// from state s, invoking yield once per decision.
	ForEachInDomain(v Variable, s State, yield func(Decision))

	// Transition computes the successor state reached from s by d.
	Transition(s State, d Decision) State

	// TransitionCost computes the edge cost of taking decision d from s.
	TransitionCost(s State, d Decision) int64
}

// ImpactAware is an optional extension of Problem. A state not impacted by
// the currently selected variable is routed onto a long arc instead of
// branching (spec.md §4.3). A Problem that does not implement ImpactAware
// is treated as if every state were impacted by every variable.
type ImpactAware interface {
	IsImpactedBy(v Variable, s State) bool
}

// IsImpactedBy applies p's ImpactAware implementation if present, else
// defaults to true.
func IsImpactedBy(p Problem, v Variable, s State) bool {
	if ia, ok := p.(ImpactAware); ok {
		return ia.IsImpactedBy(v, s)
	}
	return true
}

// Relaxation over-approximates sets of states so that width control can
// merge nodes instead of discarding them.
type Relaxation interface {
	// Merge returns a state that over-approximates the given set of states.
	Merge(states iter.Seq[State]) State

	// Relax computes the (possibly relaxed) cost to use when redirecting
	// the edge (src -> dstOriginal, d, cost) onto dstMerged.
	Relax(src, dstOriginal, dstMerged State, d Decision, cost int64) int64

	// FastUpperBound is a rough, admissible upper bound on the value of
	// any completion from s. Must never underestimate a true completion.
	FastUpperBound(s State) int64
}

// Ranking totally orders states; used as the width-control tie-breaker.
// Compare follows the cmp package convention: negative if a < b, zero if
// equal, positive if a > b.
type Ranking interface {
	Compare(a, b State) int
}

// Cutoff is consulted once per compile iteration; a true return aborts
// the compile with diagram.ErrCutoffOccurred.
type Cutoff interface {
	MustStop() bool
}

// NoCutoff never stops a compile.
type NoCutoff struct{}

// MustStop always returns false.
func (NoCutoff) MustStop() bool { return false }
