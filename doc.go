// Package graphdist provides single-source shortest-path distances over
// weighted multigraphs, built for repeated, overlapping queries against the
// same graph.
//
// The module is organized bottom-up:
//
//   - core: an in-memory multigraph (directed, undirected, or mixed,
//     with parallel edges and optional self-loops) that supplies the
//     successor and edge-connectivity views the engine consumes.
//   - frontier: a decrease-key min-priority structure over vertex IDs,
//     backed by a binary heap plus a vertex→position index.
//   - dijkstra: the incremental distance engine, per-source caches of
//     finalized and tentative distances that pause and resume Dijkstra
//     expansion across calls, with per-engine maximum-distance and
//     maximum-target bounds.
//
// A typical session asks for the distances to a handful of targets, then
// later for the twenty closest vertices; the second query continues the
// first one's expansion instead of starting over.
package graphdist
