package diagram

import "github.com/ryanjoneil/ddo/problem"

// Diagram is a compiled decision diagram. The zero value is not usable;
// construct with New. A Diagram is reused across calls to Compile — the
// entire arena is cleared at the start of each call (spec.md §3,
// "Lifecycle").
type Diagram struct {
	rootPath []problem.Decision // decisions fixed upstream of this diagram's root

	nodes []node
	edges []edge

	// nextL maps a state's Key() to the node id being assembled as the
	// destination of the layer currently under construction. Cleared and
	// rebuilt every iteration; see compile.go.
	nextL map[string]nodeID
	// nextLState keeps the actual State value next to the id so iteration
	// over the frontier (NextVariable, width control) need not re-fetch it
	// through nodes[] each time; always kept in sync with nextL.
	nextLState map[string]State

	prevL []nodeID // node ids of the layer just closed

	lel       []nodeID // captured Last Exact Layer, nil until width control first triggers
	lelCaptured bool

	bestN nodeID // best terminal node, or noNode if infeasible
	exact bool   // EBPO result: true iff the compiled diagram is provably exact
}

// New returns an empty, ready-to-use Diagram.
func New() *Diagram {
	d := &Diagram{}
	d.reset()
	return d
}

// reset clears the arena and all per-compile bookkeeping. Called at the
// top of every Compile.
func (d *Diagram) reset() {
	d.rootPath = d.rootPath[:0]
	d.nodes = d.nodes[:0]
	d.edges = d.edges[:0]
	d.nextL = make(map[string]nodeID)
	d.nextLState = make(map[string]State)
	d.prevL = d.prevL[:0]
	d.lel = nil
	d.lelCaptured = false
	d.bestN = noNode
	d.exact = true
}

// pushNode appends a node to the arena and returns its id.
func (d *Diagram) pushNode(n node) nodeID {
	id := nodeID(len(d.nodes))
	d.nodes = append(d.nodes, n)
	return id
}

// pushEdge appends an edge to the arena and returns its id.
func (d *Diagram) pushEdge(e edge) edgeID {
	id := edgeID(len(d.edges))
	d.edges = append(d.edges, e)
	return id
}

// addInbound threads a new edge onto the head of dst's inbound list,
// returning the new edge's id. The edge's `next` field is set to the
// list's previous head, preserving LIFO order (spec.md §9 — the merge
// tie-break depends on this ordering being preserved exactly).
func (d *Diagram) addInbound(dst nodeID, e edge) edgeID {
	e.next = d.nodes[dst].inbound
	id := d.pushEdge(e)
	d.nodes[dst].inbound = id
	return id
}

// inboundEdges calls yield once per inbound edge of n, in LIFO (most
// recently added first) order, matching the original's linked-list walk.
func (d *Diagram) inboundEdges(n nodeID, yield func(edgeID, edge) bool) {
	cur := d.nodes[n].inbound
	for cur != noEdge {
		e := d.edges[cur]
		if !yield(cur, e) {
			return
		}
		cur = e.next
	}
}
