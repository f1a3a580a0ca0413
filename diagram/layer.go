package diagram

import (
	"iter"

	"github.com/ryanjoneil/ddo/problem"
)

// frontierEntry pairs a state with the node id currently representing it,
// used for curr_l / long_arc / prev_l bookkeeping in compile.go.
type frontierEntry struct {
	state State
	id    nodeID
}

// nextLSeq returns an iter.Seq over the states currently populating nextL,
// the shape Problem.NextVariable and Relaxation.Merge expect (spec.md §6:
// "iterator over &State").
func (d *Diagram) nextLSeq() iter.Seq[State] {
	return func(yield func(State) bool) {
		for _, s := range d.nextLState {
			if !yield(s) {
				return
			}
		}
	}
}

// statesSeq adapts a []frontierEntry slice into an iter.Seq[State], used to
// feed Relaxation.Merge the tail of a sorted curr_l during a relax.
func statesSeq(entries []frontierEntry) iter.Seq[State] {
	return func(yield func(State) bool) {
		for _, e := range entries {
			if !yield(e.state) {
				return
			}
		}
	}
}

// branchOn materializes the successor of (state, fromID) under decision d,
// deduplicating against whatever already occupies nextL for that successor
// state (spec.md §4.2).
func (d *Diagram) branchOn(state State, fromID nodeID, dec problem.Decision, prob problem.Problem) {
	nextState := prob.Transition(state, dec)
	cost := prob.TransitionCost(state, dec)
	key := nextState.Key()

	if existing, ok := d.nextL[key]; ok {
		from := d.nodes[fromID]
		exact := from.flags.isExact() && d.nodes[existing].flags.isExact()
		d.nodes[existing].flags = d.nodes[existing].flags.withExact(exact)

		eid := d.addInbound(existing, edge{from: fromID, decision: dec, cost: cost})

		value := saturatingAdd(from.value, cost)
		if value > d.nodes[existing].value {
			d.nodes[existing].value = value
			d.nodes[existing].best = eid
		}
		return
	}

	from := d.nodes[fromID]
	value := saturatingAdd(from.value, cost)

	id := d.pushNode(node{
		state:    nextState,
		value:    value,
		valueBot: negInf,
		best:     noEdge,
		inbound:  noEdge,
		rub:      posInf,
		flags:    from.flags,
	})
	eid := d.pushEdge(edge{from: fromID, decision: dec, cost: cost, next: noEdge})
	d.nodes[id].best = eid
	d.nodes[id].inbound = eid

	d.nextL[key] = id
	d.nextLState[key] = nextState
}
