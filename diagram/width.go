package diagram

import (
	"sort"

	"github.com/ryanjoneil/ddo/problem"
)

// widthLess orders frontierEntry so that the most worth keeping entries
// sort first: higher accumulated value wins, ties broken by Ranking.Compare
// (the state "greater" per Ranking wins). Both restrict and relax rely on
// this exact ordering.
func (d *Diagram) widthLess(ranking problem.Ranking, a, b frontierEntry) bool {
	av, bv := d.nodes[a.id].value, d.nodes[b.id].value
	if av != bv {
		return av > bv
	}
	return ranking.Compare(a.state, b.state) > 0
}

func (d *Diagram) sortByWidth(ranking problem.Ranking, entries []frontierEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return d.widthLess(ranking, entries[i], entries[j])
	})
}

// maybeSaveLEL captures prevL as the Last Exact Layer the first time width
// control activates; subsequent calls are no-ops. Returns true iff this
// call performed the capture (spec.md §4.6).
func (d *Diagram) maybeSaveLEL() bool {
	if d.lelCaptured {
		return false
	}
	d.lel = append([]nodeID(nil), d.prevL...)
	for _, id := range d.lel {
		d.nodes[id].flags = d.nodes[id].flags.withCutset(true)
	}
	d.lelCaptured = true
	return true
}

// restrict drops the least-promising entries of currL down to MaxWidth,
// sorted by widthLess. Dropped nodes are simply forgotten: their edges
// become unreachable garbage, harmless because the arena is never
// compacted (spec.md §4.4).
func (d *Diagram) restrict(input *problem.CompilationInput, currL []frontierEntry) []frontierEntry {
	d.sortByWidth(input.Ranking, currL)
	if len(currL) > input.MaxWidth {
		currL = currL[:input.MaxWidth]
	}
	return currL
}

// relax keeps the top MaxWidth-1 entries of currL and merges the
// remaining tail into one node (spec.md §4.4, "Merge protocol"). Tail
// edges are redirected onto the merged node with input.Relaxation.Relax
// applied to their cost; the merged node's value/best are updated on
// non-strict improvement (">="), so later-processed tail edges win ties —
// this is why the tail's own LIFO inbound-edge order must be preserved
// exactly (spec.md §9).
func (d *Diagram) relax(input *problem.CompilationInput, currL []frontierEntry) []frontierEntry {
	d.sortByWidth(input.Ranking, currL)

	keepCount := input.MaxWidth - 1
	keep := currL[:keepCount]
	tail := currL[keepCount:]

	merged := input.Relaxation.Merge(statesSeq(tail))
	mergedKey := merged.Key()

	recycled := noNode
	for _, k := range keep {
		if k.state.Key() == mergedKey {
			recycled = k.id
			break
		}
	}

	mergedID := recycled
	if mergedID == noNode {
		mergedID = d.pushNode(node{
			state:    merged,
			value:    negInf,
			valueBot: negInf,
			best:     noEdge,
			inbound:  noEdge,
			rub:      posInf,
			flags:    newRelaxedFlags(),
		})
	}
	d.nodes[mergedID].flags = d.nodes[mergedID].flags.withRelaxed(true)

	for _, t := range tail {
		// Snapshot the tail node's inbound edge ids before redirecting any
		// of them: addInbound below appends new edges to mergedID's list,
		// which is a different node unless t.id == mergedID (impossible:
		// mergedID is either freshly allocated or recycled from keep, and
		// keep and tail are disjoint).
		var tailEdges []edgeID
		d.inboundEdges(t.id, func(eid edgeID, _ edge) bool {
			tailEdges = append(tailEdges, eid)
			return true
		})

		for _, eid := range tailEdges {
			e := d.edges[eid]
			src := d.nodes[e.from].state
			rcost := input.Relaxation.Relax(src, t.state, merged, e.decision, e.cost)

			newEID := d.addInbound(mergedID, edge{from: e.from, decision: e.decision, cost: rcost})
			newValue := saturatingAdd(d.nodes[e.from].value, rcost)
			if newValue >= d.nodes[mergedID].value {
				d.nodes[mergedID].value = newValue
				d.nodes[mergedID].best = newEID
			}
		}
	}

	if recycled != noNode {
		// The merged state coincides with a kept node's state: rather than
		// append a new (merged, mergedID) tuple, the slot the merged tuple
		// would have occupied is produced by truncating the pre-merge
		// slice back to width. Mirrors the original implementation's
		// curr_l bookkeeping so the set of states a Relaxed compile
		// branches from next matches it exactly.
		if input.MaxWidth < len(currL) {
			currL = currL[:input.MaxWidth]
		}
		return currL
	}

	out := make([]frontierEntry, 0, keepCount+1)
	out = append(out, keep...)
	out = append(out, frontierEntry{state: merged, id: mergedID})
	return out
}
