// Package dijkstra implements an incremental, cached single-source
// shortest-path distance engine over weighted multigraphs with non-negative
// edge weights.
//
// Unlike a one-shot Dijkstra run, the Engine is built for repeated,
// overlapping queries against the same graph: it keeps one cache per queried
// source vertex (finalized distances in nondecreasing order, tentative
// distances, and a paused expansion frontier), and every later query against
// that source resumes expansion from where the previous one stopped. Asking
// for the 20 closest vertices after the 10 closest are known does not start
// over; it finalizes ten more vertices.
//
// Termination is governed by two independent, per-engine bounds in addition
// to each call's own limit:
//
//   - SetMaxDistance(d): vertices farther than d are never finalized; a
//     vertex popped beyond the bound is restored to the frontier, so raising
//     the bound later resumes the computation without losing progress.
//   - SetMaxTargets(k): at most k distances are finalized per source.
//
// Both setters re-evaluate every cached source against the new bound, so a
// source exhausted under an old bound is not left stale.
//
// Weights are supplied by a caller-provided WeightFunc, evaluated lazily at
// the moment an edge is relaxed. A negative result aborts the in-flight query
// with *WeightError; vertices finalized before the offending edge was
// examined remain valid in the cache. UnitWeight yields unweighted
// (hop-count) shortest paths.
//
// The engine never observes graph mutations: after edges or weights change,
// call ResetSource or Reset before the next query.
//
// Complexity: each query touches only the portion of the graph it actually
// expands: roughly O((R + F) log R) for R vertices reached and F edge
// relaxations performed in that call.
//
// Concurrency: a single Engine is NOT safe for concurrent use; queries
// mutate per-source state. Distinct Engine instances are independent.
//
// Errors:
//
//   - ErrNilGraph, ErrNilWeightFunc: construction with missing collaborators.
//   - ErrVertexNotFound: unknown source or target; detected before any
//     mutation.
//   - ErrTooManyTargets: a target set or destination count above the
//     MaxTargets bound; detected before any mutation.
//   - ErrBadNumDests: NearestMap count outside [1, |V|].
//   - *WeightError: negative weight discovered during relaxation.
//   - ErrNoPath, ErrPathsDisabled: path reconstruction (see Path).
package dijkstra
