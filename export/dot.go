package export

import (
	"io"
	"text/template"
)

var dotTemplate = template.Must(template.New("dot").Parse(`digraph diagram {
	rankdir=TB;
	node [shape=box, fontname="monospace"];
{{range .Vertices}}	{{.ID}} [label="{{.Label}}"{{if .IsCutset}}, style=filled, fillcolor=lightyellow{{else if .IsRelaxed}}, style=filled, fillcolor=lightgrey{{end}}];
{{end}}{{range .Edges}}	{{.From}} -> {{.To}} [label="{{.Decision}} ({{.Cost}})"];
{{end}}}
`))

// WriteDOT renders g as a Graphviz DOT document to w.
func WriteDOT(w io.Writer, g *Graph) error {
	return dotTemplate.Execute(w, g)
}
