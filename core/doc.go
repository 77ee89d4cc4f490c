// Package core defines the central Graph, Vertex, and Edge types used by the
// distance engine and provides thread-safe primitives for building and
// querying multigraphs.
//
// A Graph may be directed or undirected by default, may allow parallel edges
// between the same pair of vertices (multi-edges), self-loops, and, when
// mixed mode is enabled, per-edge directedness overrides. Edge weights are
// deliberately not stored as a first-class graph concern beyond the Weight
// convenience field: shortest-path algorithms consume weights through a
// caller-supplied weight function, so a single graph can be measured under
// several cost models without rebuilding it.
//
// Identity and determinism:
//
//   - Vertices are identified by caller-chosen string IDs.
//   - Edges receive monotonic textual IDs ("e1", "e2", ...) generated
//     atomically; IDs are stable for the lifetime of the graph, which is what
//     allows caches built against the graph to remain valid until the caller
//     mutates it.
//   - Vertices(), Edges(), Successors(), and EdgesConnecting() return sorted
//     slices, so iteration order is reproducible across runs.
//
// Concurrency: all methods are guarded by a single RWMutex, so a Graph may be
// built and read from multiple goroutines. Algorithms layered on top keep
// their own, separately documented, concurrency contracts.
//
// Errors (sentinel):
//
//	ErrEmptyVertexID        - vertex ID is the empty string.
//	ErrVertexNotFound       - requested vertex does not exist.
//	ErrEdgeNotFound         - requested edge does not exist.
//	ErrLoopNotAllowed       - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed  - parallel edge when multi-edges are disabled.
//	ErrMixedEdgesNotAllowed - per-edge override without mixed mode.
package core
