package dijkstra

import (
	"errors"
	"fmt"

	"github.com/graphdist/graphdist/core"
)

// Sentinel errors returned by the distance engine.
var (
	// ErrNilGraph indicates that a nil graph was passed to New.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilWeightFunc indicates that a nil weight function was passed to New.
	ErrNilWeightFunc = errors.New("dijkstra: weight function is nil")

	// ErrVertexNotFound indicates that a source or target vertex does not
	// exist in the graph. Returned wrapped with the offending vertex ID.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrTooManyTargets indicates a target set or destination count that
	// exceeds the engine's MaxTargets bound.
	ErrTooManyTargets = errors.New("dijkstra: target count exceeds MaxTargets")

	// ErrBadNumDests indicates a NearestMap destination count outside
	// [1, number of vertices].
	ErrBadNumDests = errors.New("dijkstra: number of destinations out of range")

	// ErrNoPath indicates that the target is not reachable from the source
	// under the engine's current bounds.
	ErrNoPath = errors.New("dijkstra: no path to target")

	// ErrPathsDisabled indicates a path query on an engine constructed
	// without WithReturnPaths.
	ErrPathsDisabled = errors.New("dijkstra: path tracking not enabled")
)

// WeightError reports a negative edge weight discovered at the moment the
// edge was used in a relaxation step. Weights are never validated up front,
// so a negative weight elsewhere in the graph goes undetected until a query
// path reaches it. The query that hit the edge is aborted; distances
// finalized before the edge was examined remain valid in the cache.
type WeightError struct {
	EdgeID string  // ID of the offending edge
	From   string  // edge tail
	To     string  // edge head
	Weight float64 // the negative weight produced by the weight function
}

func (e *WeightError) Error() string {
	return fmt.Sprintf("dijkstra: negative weight %g on edge %s (%s→%s)", e.Weight, e.EdgeID, e.From, e.To)
}

// Graph is the collaborator contract the engine consumes. *core.Graph
// satisfies it; any structure with stable vertex identity and these four
// views can be plugged in. Stability matters: cached distances are keyed by
// vertex ID and stay valid only while identities do.
type Graph interface {
	// HasVertex reports whether the vertex exists.
	HasVertex(id string) bool

	// VertexCount returns the number of vertices.
	VertexCount() int

	// Successors returns the vertices reachable from id across one edge.
	Successors(id string) ([]string, error)

	// EdgesConnecting returns every edge traversable from u to v,
	// including parallel edges; possibly empty.
	EdgesConnecting(u, v string) []*core.Edge
}

// WeightFunc maps an edge to its traversal cost. It is consulted once per
// edge per relaxation; results must be non-negative for every edge that is
// ever relaxed.
type WeightFunc func(e *core.Edge) float64

// UnitWeight assigns every edge cost 1, yielding unweighted (hop-count)
// shortest paths.
func UnitWeight(*core.Edge) float64 { return 1 }

// EdgeWeight reads the cost stored on the edge itself.
func EdgeWeight(e *core.Edge) float64 { return e.Weight }

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithoutCaching disables persistence of per-source state across calls:
// each query computes what it needs and discards the partial results after
// assembling its return value.
func WithoutCaching() Option {
	return func(e *Engine) { e.caching = false }
}

// WithReturnPaths records the incoming edge of every improved vertex during
// relaxation, enabling Path and IncomingEdge at a small memory cost per
// reached vertex.
func WithReturnPaths() Option {
	return func(e *Engine) { e.paths = true }
}

// WithMaxDistance sets the initial maximum-distance bound, equivalent to
// calling SetMaxDistance before the first query. Default: +Inf.
func WithMaxDistance(d float64) Option {
	return func(e *Engine) { e.maxDistance = d }
}

// WithMaxTargets sets the initial maximum-targets bound, equivalent to
// calling SetMaxTargets before the first query. Default: unbounded.
func WithMaxTargets(k int) Option {
	return func(e *Engine) { e.maxTargets = k }
}

// Stats is a snapshot of the engine's cumulative work counters. Useful for
// verifying cache behavior: two identical consecutive queries on a cached
// source leave Relaxations unchanged on the second call.
type Stats struct {
	// Relaxations counts tentative-distance creations and improvements.
	Relaxations uint64

	// Finalized counts vertices whose distance was committed, across all
	// sources and queries.
	Finalized uint64

	// CachedSources is the number of per-source caches currently held.
	CachedSources int
}
