package diagram

import "github.com/ryanjoneil/ddo/problem"

// Compile builds one decision diagram from input.Residual, driven by
// input.CompType. The entire arena is cleared first (spec.md §3,
// "Lifecycle"); the receiver may be reused across many Compile calls.
//
// Compile returns ErrCutoffOccurred the moment input.Cutoff.MustStop()
// is observed true at an iteration boundary. Apart from that, it only
// returns the input-validation errors ErrNilProblem, ErrNilRelaxation and
// ErrInvalidWidth, before any compilation starts. Every other terminal
// state, including an infeasible residual, is a successful Completion.
func (d *Diagram) Compile(input *problem.CompilationInput) (problem.Completion, error) {
	if err := validate(input); err != nil {
		return problem.Completion{}, err
	}

	d.reset()

	root := input.Residual
	rootID := d.pushNode(node{
		state:    root.State,
		value:    root.Value,
		valueBot: negInf,
		best:     noEdge,
		inbound:  noEdge,
		rub:      saturatingSub(root.UB, root.Value),
		flags:    newExactFlags(),
	})
	d.rootPath = append(d.rootPath, root.Path...)

	rootKey := root.State.Key()
	d.nextL[rootKey] = rootID
	d.nextLState[rootKey] = root.State

	var currL, longArc []frontierEntry
	depth := 0

	for {
		v, ok := input.Problem.NextVariable(d.nextLSeq())
		if !ok {
			break
		}
		if input.Cutoff.MustStop() {
			return problem.Completion{}, ErrCutoffOccurred
		}

		d.prevL = d.prevL[:0]
		for _, e := range currL {
			d.prevL = append(d.prevL, e.id)
		}
		currL = currL[:0]

		for key, id := range d.nextL {
			s := d.nextLState[key]
			if problem.IsImpactedBy(input.Problem, v, s) {
				currL = append(currL, frontierEntry{state: s, id: id})
			} else {
				longArc = append(longArc, frontierEntry{state: s, id: id})
			}
		}
		d.nextL = make(map[string]nodeID, len(d.nextL))
		d.nextLState = make(map[string]State, len(d.nextLState))

		if len(currL) == 0 && len(longArc) == 0 {
			break
		}

		switch input.CompType {
		case problem.Exact:
			// no width limit: explore everything
		case problem.Restricted:
			if len(currL) > input.MaxWidth {
				d.maybeSaveLEL()
				currL = d.restrict(input, currL)
			}
		case problem.Relaxed:
			if len(currL) > input.MaxWidth && depth > 1 {
				wasLEL := d.maybeSaveLEL()
				if wasLEL {
					for _, e := range currL {
						d.nodes[e.id].rub = input.Relaxation.FastUpperBound(e.state)
					}
				}
				currL = d.relax(input, currL)
			}
		}

		impacted := len(currL)
		currL = append(currL, longArc...)
		longArc = longArc[:0]

		// States not impacted by v do not branch: they are carried into the
		// next layer unchanged (same node id) and branch once a later
		// variable impacts them, which is what produces a long arc.
		for _, e := range currL[impacted:] {
			key := e.state.Key()
			d.nextL[key] = e.id
			d.nextLState[key] = e.state
		}

		for _, e := range currL[:impacted] {
			rub := input.Relaxation.FastUpperBound(e.state)
			d.nodes[e.id].rub = rub
			ub := saturatingAdd(rub, d.nodes[e.id].value)
			if ub > input.BestLB {
				input.Problem.ForEachInDomain(v, e.state, func(dec problem.Decision) {
					d.branchOn(e.state, e.id, dec, input.Problem)
				})
			}
		}

		depth++
	}

	d.bestN = noNode
	var bestVal int64
	for _, id := range d.nextL {
		if d.bestN == noNode || d.nodes[id].value > bestVal {
			bestVal = d.nodes[id].value
			d.bestN = id
		}
	}

	d.exact = d.isExactFor(input.CompType)
	if input.CompType == problem.Relaxed {
		d.computeLocalBounds()
	}

	return problem.Completion{IsExact: d.IsExact(), BestValue: d.BestValue()}, nil
}

func validate(input *problem.CompilationInput) error {
	if input.Problem == nil {
		return ErrNilProblem
	}
	if input.Relaxation == nil {
		// FastUpperBound is consulted for every node of every compilation
		// type (spec.md §4.5), so Relaxation is never optional.
		return ErrNilRelaxation
	}
	if input.CompType != problem.Exact && input.MaxWidth <= 0 {
		return ErrInvalidWidth
	}
	return nil
}

// isExactFor implements Exact Best-Path Optimization (spec.md §4.7): a
// compiled diagram is exact iff no width-induced LEL was ever captured, or
// (Relaxed mode only) the longest root-to-terminal path traverses no
// Relaxed node.
func (d *Diagram) isExactFor(compType problem.CompilationType) bool {
	return !d.lelCaptured || (compType == problem.Relaxed && d.hasExactBestPath(d.bestN))
}

func (d *Diagram) hasExactBestPath(id nodeID) bool {
	if id == noNode {
		return true
	}
	n := d.nodes[id]
	if n.flags.isExact() {
		return true
	}
	if n.flags.isRelaxed() {
		return false
	}
	next := noNode
	if n.best != noEdge {
		next = d.edges[n.best].from
	}
	return d.hasExactBestPath(next)
}

// IsExact reports whether the most recently compiled diagram's best value
// is provably optimal.
func (d *Diagram) IsExact() bool { return d.exact }

// BestValue returns the value of the best terminal node, or nil if the
// compiled subproblem was infeasible.
func (d *Diagram) BestValue() *int64 {
	if d.bestN == noNode {
		return nil
	}
	v := d.nodes[d.bestN].value
	return &v
}

// BestSolution returns the full decision path (root_pa ++ decisions along
// the best root-to-terminal path), or ok=false if infeasible.
func (d *Diagram) BestSolution() (sol []problem.Decision, ok bool) {
	if d.bestN == noNode {
		return nil, false
	}
	return d.bestPath(d.bestN), true
}

func (d *Diagram) bestPath(id nodeID) []problem.Decision {
	sol := append([]problem.Decision(nil), d.rootPath...)
	eid := d.nodes[id].best
	for eid != noEdge {
		e := d.edges[eid]
		sol = append(sol, e.decision)
		eid = d.nodes[e.from].best
	}
	return sol
}

// DrainCutset yields one SubProblem per marked LEL node: the exact
// frontier that, together, suffices to complete the search this diagram
// only approximated. Unmarked LEL nodes (reached forward but never
// reached backward by the LocB pass) are skipped. Yields nothing if the
// diagram was infeasible or no LEL was ever captured (spec.md §4.9).
func (d *Diagram) DrainCutset(yield func(problem.SubProblem)) {
	bv := d.BestValue()
	if bv == nil || d.lel == nil {
		return
	}

	for _, id := range d.lel {
		n := d.nodes[id]
		if !n.flags.isMarked() {
			continue
		}

		rub := saturatingAdd(n.value, n.rub)
		locb := saturatingAdd(n.value, n.valueBot)
		ub := min3(rub, locb, *bv)

		yield(problem.SubProblem{
			State: n.state,
			Value: n.value,
			Path:  d.bestPath(id),
			UB:    ub,
		})
	}
	d.lel = nil
}

func min3(a, b, c int64) int64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func saturatingSub(a, b int64) int64 {
	switch {
	case b == posInf:
		if a == posInf {
			return posInf
		}
		return negInf
	case b == negInf:
		if a == negInf {
			return negInf
		}
		return posInf
	default:
		return saturatingAdd(a, -b)
	}
}
