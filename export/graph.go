package export

import (
	"fmt"
	"strconv"

	"github.com/ryanjoneil/ddo/diagram"
)

// Vertex is one node of the exported view: its arena index (as a string
// ID, matching core.Vertex's ID string convention), accumulated value, and
// flag summary.
type Vertex struct {
	ID        string
	Value     int64
	ValueBot  int64
	RUB       int64
	IsExact   bool
	IsRelaxed bool
	IsMarked  bool
	IsCutset  bool
}

// Label renders a short multi-line node label for DOT/debug output.
func (v Vertex) Label() string {
	kind := "exact"
	switch {
	case v.IsRelaxed:
		kind = "relaxed"
	case v.IsCutset:
		kind = "cutset"
	}
	return fmt.Sprintf("#%s\\nvalue=%d\\n(%s)", v.ID, v.Value, kind)
}

// Edge is one arc of the exported view, annotated with the decision and
// cost it carries (core.Edge carries only a float64 Weight; this view
// keeps both the decision label and the cost since both matter for
// debugging a compiled diagram).
type Edge struct {
	From, To string
	Decision string
	Cost     int64
}

// Graph is the full exported view of one compiled diagram.
type Graph struct {
	Vertices []Vertex
	Edges    []Edge
}

// FromDiagram walks d's arena and builds a Graph snapshot of it. Safe to
// call only between compiles (the arena is cleared at the start of every
// Diagram.Compile).
func FromDiagram(d *diagram.Diagram) *Graph {
	g := &Graph{}
	n := d.NodeCount()
	g.Vertices = make([]Vertex, 0, n)

	for i := 0; i < n; i++ {
		nv := d.Node(i)
		id := strconv.Itoa(i)
		g.Vertices = append(g.Vertices, Vertex{
			ID:        id,
			Value:     nv.Value,
			ValueBot:  nv.ValueBot,
			RUB:       nv.RUB,
			IsExact:   nv.IsExact,
			IsRelaxed: nv.IsRelaxed,
			IsMarked:  nv.IsMarked,
			IsCutset:  nv.IsCutset,
		})

		d.Inbound(i, func(iv diagram.InboundView) bool {
			g.Edges = append(g.Edges, Edge{
				From:     strconv.Itoa(iv.FromIndex),
				To:       id,
				Decision: iv.Decision.String(),
				Cost:     iv.Cost,
			})
			return true
		})
	}

	return g
}

// HasVertex reports whether a vertex with the given id is present,
// mirroring the teacher's core.Graph.HasVertex query surface.
func (g *Graph) HasVertex(id string) bool {
	for _, v := range g.Vertices {
		if v.ID == id {
			return true
		}
	}
	return false
}
