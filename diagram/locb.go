package diagram

// computeLocalBounds runs a reverse BFS over the compiled (Relaxed) diagram,
// populating valueBot: the longest path length from each node to a
// terminal (spec.md §4.8). It seeds the wavefront at the final frontier
// (every node left in nextL when compilation ended) and propagates
// backward through inbound edges, stopping at the cutset — nodes beyond
// the cutset keep valueBot == negInf and are never drained, since
// DrainCutset only reports on cutset nodes.
func (d *Diagram) computeLocalBounds() {
	if d.exact {
		// no LEL, or the best path is exact (EBPO): no local bounds are
		// computed, so no LEL node is marked and DrainCutset yields nothing
		return
	}

	var visit []nodeID
	for _, id := range d.nextL {
		d.nodes[id].valueBot = 0
		d.nodes[id].flags = d.nodes[id].flags.withMarked(true)
		visit = append(visit, id)
	}

	for len(visit) > 0 {
		wave := visit
		visit = nil

		for _, id := range wave {
			vb := d.nodes[id].valueBot
			d.inboundEdges(id, func(_ edgeID, e edge) bool {
				lpFromBot := saturatingAdd(vb, e.cost)
				if lpFromBot > d.nodes[e.from].valueBot {
					d.nodes[e.from].valueBot = lpFromBot
				}
				if !d.nodes[e.from].flags.isMarked() {
					d.nodes[e.from].flags = d.nodes[e.from].flags.withMarked(true)
					if !d.nodes[e.from].flags.isCutset() {
						visit = append(visit, e.from)
					}
				}
				return true
			})
		}
	}
}
