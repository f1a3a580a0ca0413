package diagram

import "github.com/ryanjoneil/ddo/problem"

// NodeView is a read-only snapshot of one arena node, exposed for debug
// tooling (see package export). It deliberately does not expose nodeID —
// callers address nodes by the dense index they're handed during a walk.
type NodeView struct {
	StateKey   string
	Value      int64
	ValueBot   int64
	RUB        int64
	IsExact    bool
	IsRelaxed  bool
	IsMarked   bool
	IsCutset   bool
}

// InboundView is a read-only snapshot of one arena edge, always reported
// from the perspective of its destination node.
type InboundView struct {
	FromIndex int
	Decision  problem.Decision
	Cost      int64
}

// NodeCount returns the number of nodes in the most recently compiled
// diagram's arena, including nodes dropped by restriction (never removed,
// only forgotten) and nodes produced by relaxation merges.
func (d *Diagram) NodeCount() int { return len(d.nodes) }

// Node returns a snapshot of the node at the given dense index.
func (d *Diagram) Node(index int) NodeView {
	n := d.nodes[index]
	return NodeView{
		StateKey:  n.state.Key(),
		Value:     n.value,
		ValueBot:  n.valueBot,
		RUB:       n.rub,
		IsExact:   n.flags.isExact(),
		IsRelaxed: n.flags.isRelaxed(),
		IsMarked:  n.flags.isMarked(),
		IsCutset:  n.flags.isCutset(),
	}
}

// Inbound calls yield once per inbound edge of the node at the given dense
// index, in the arena's LIFO order.
func (d *Diagram) Inbound(index int, yield func(InboundView) bool) {
	d.inboundEdges(nodeID(index), func(_ edgeID, e edge) bool {
		return yield(InboundView{FromIndex: int(e.from), Decision: e.decision, Cost: e.cost})
	})
}
