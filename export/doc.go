// Package export renders a compiled *diagram.Diagram into a small
// string-keyed graph view and a Graphviz DOT file, for inspecting a
// diagram's layer, cutset, and merge structure while developing a
// problem.Problem / problem.Relaxation pair.
//
// The shape mirrors the teacher repo's core.Graph/Vertex/Edge trio (a
// string-identified vertex set plus a flat edge list) but is read-only and
// keyed by dense arena index converted to string, since a compiled diagram
// is never mutated through this package.
package export
