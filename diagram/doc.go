// Package diagram implements the compilation core of a decision-diagram
// based discrete optimizer: given a residual subproblem, it builds a
// layered directed acyclic graph approximating the solution space and
// extracts from it a primal bound (restriction), a dual bound
// (relaxation), and an exact frontier of subproblems still to explore
// (the Last Exact Layer cutset).
//
// # Data structure
//
// A Diagram stores nodes and edges in two append-only slices indexed by
// dense integer ids (nodeID, edgeID). Each node keeps a single "head" edge
// id for its inbound adjacency; each edge keeps a "next" id, forming a
// singly-linked LIFO list per destination node. No edge stores an explicit
// destination — it is implicit in which node's list the edge belongs to.
// This gives O(1) amortized append, good cache locality on dense
// traversals, and arenas that are only ever cleared in bulk, never
// individually freed or compacted.
//
// # Compilation modes
//
// One unrolling loop (Diagram.Compile) drives all three modes:
//
//	Exact      — no width limit; the full diagram is unrolled.
//	Restricted — drops the least-promising nodes beyond MaxWidth (primal bound).
//	Relaxed    — merges the least-promising nodes beyond MaxWidth (dual bound).
//
// Width control, together with the associated Last-Exact-Layer capture,
// RUB/LB pruning, bottom-up local-bound propagation, and long-arc routing,
// is described in width.go, locb.go, and compile.go respectively.
//
// # Concurrency
//
// Diagram is single-threaded and synchronous: one Compile call mutates one
// Diagram from start to finish without yielding. Cancellation is
// cooperative, checked once per iteration via problem.Cutoff.
package diagram
