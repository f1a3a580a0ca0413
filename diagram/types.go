package diagram

import (
	"math"

	"github.com/ryanjoneil/ddo/problem"
)

// nodeID and edgeID are dense indices into Diagram.nodes and Diagram.edges.
// Both are stable for the lifetime of a compile: the arenas only grow.
type nodeID int32
type edgeID int32

// noNode and noEdge are the "absent" sentinels; zero is a valid id (the
// root node and the first edge both legitimately sit at index 0), so
// -1 is used rather than the zero value.
const noNode nodeID = -1
const noEdge edgeID = -1

// negInf and posInf are the saturating sentinels for node.value,
// node.valueBot and node.rub, matching isize::MIN / isize::MAX in the
// original implementation.
const negInf int64 = math.MinInt64
const posInf int64 = math.MaxInt64

// saturatingAdd adds a and b, clamping to [negInf, posInf] instead of
// wrapping on overflow. Mixing a sentinel with a finite cost via plain
// addition would wrap; this keeps negInf+x == negInf and posInf+x == posInf
// in the intended sense (spec.md §9).
func saturatingAdd(a, b int64) int64 {
	if a == negInf || b == negInf {
		// posInf + negInf never arises in this compiler (rub and value are
		// never combined while one is +inf and the other -inf), but favor
		// the more conservative (smaller) sentinel if it ever does.
		if a == posInf || b == posInf {
			return negInf
		}
		return negInf
	}
	if a == posInf || b == posInf {
		return posInf
	}
	sum := a + b
	if b > 0 && sum < a {
		return posInf
	}
	if b < 0 && sum > a {
		return negInf
	}
	return sum
}

// nodeFlags packs the four independent bits described in spec.md §3:
// Exact, Relaxed, Marked (reachable backward from the terminal frontier
// during the LocB pass), and Cutset (member of the captured LEL).
type nodeFlags uint8

const (
	flagExact nodeFlags = 1 << iota
	flagRelaxed
	flagMarked
	flagCutset
)

func (f nodeFlags) isExact() bool   { return f&flagExact != 0 }
func (f nodeFlags) isRelaxed() bool { return f&flagRelaxed != 0 }
func (f nodeFlags) isMarked() bool  { return f&flagMarked != 0 }
func (f nodeFlags) isCutset() bool  { return f&flagCutset != 0 }

func (f nodeFlags) withExact(v bool) nodeFlags   { return setBit(f, flagExact, v) }
func (f nodeFlags) withRelaxed(v bool) nodeFlags { return setBit(f, flagRelaxed, v) }
func (f nodeFlags) withMarked(v bool) nodeFlags  { return setBit(f, flagMarked, v) }
func (f nodeFlags) withCutset(v bool) nodeFlags  { return setBit(f, flagCutset, v) }

func setBit(f, bit nodeFlags, v bool) nodeFlags {
	if v {
		return f | bit
	}
	return f &^ bit
}

// newExactFlags is the flag word of a freshly created, not-yet-merged node.
func newExactFlags() nodeFlags { return flagExact }

// newRelaxedFlags is the flag word of a node produced by a merge.
func newRelaxedFlags() nodeFlags { return flagRelaxed }

// node is one vertex of the decision diagram (spec.md §3).
type node struct {
	state State // opaque problem state, shared by reference

	value    int64 // longest path length from the diagram root
	valueBot int64 // longest path length to a terminal (LocB), negInf until populated

	best    edgeID // inbound edge on the current longest root-to-node path
	inbound edgeID // head of the singly-linked inbound edge list

	rub int64 // rough upper bound on completions from this state; posInf until populated

	flags nodeFlags
}

// edge is one arc of the decision diagram (spec.md §3). The destination is
// implicit: an edge's destination is whichever node's inbound list it was
// appended to.
type edge struct {
	from     nodeID
	decision problem.Decision
	cost     int64
	next     edgeID // the prior head of the destination's inbound list
}

// State is an alias kept local to the package so internal code reads
// naturally; it is exactly problem.State.
type State = problem.State
