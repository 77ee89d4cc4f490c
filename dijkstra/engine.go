package dijkstra

import (
	"fmt"
	"math"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Engine computes and caches single-source shortest-path distances.
//
// One Engine owns one source→sourceIndex table; all cached state lives on
// the instance and is invalidated only through Reset/ResetSource. The engine
// never watches the graph for changes: after mutating the graph or the
// semantics of the weight function, reset before querying again.
//
// Not safe for concurrent use without external serialization.
type Engine struct {
	g      Graph
	weight WeightFunc

	caching     bool    // persist per-source state across calls
	paths       bool    // record incoming edges for Path/IncomingEdge
	maxDistance float64 // vertices farther than this are never finalized
	maxTargets  int     // at most this many distances per source

	sources map[string]*sourceIndex // source vertex → cached expansion state

	relaxations uint64 // cumulative tentative creations + improvements
	finalized   uint64 // cumulative committed distances
}

// New creates an Engine for the given graph and weight function.
// Results are cached per source unless WithoutCaching is given.
func New(g Graph, weight WeightFunc, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if weight == nil {
		return nil, ErrNilWeightFunc
	}

	e := &Engine{
		g:           g,
		weight:      weight,
		caching:     true,
		maxDistance: math.Inf(1),
		maxTargets:  math.MaxInt,
		sources:     make(map[string]*sourceIndex),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Distance returns the shortest-path distance from source to target, with
// ok == false when target is unreachable from source under the current
// bounds. Both vertices must exist in the graph (ErrVertexNotFound).
func (e *Engine) Distance(source, target string) (float64, bool, error) {
	if !e.g.HasVertex(target) {
		return 0, false, fmt.Errorf("%w: target %q", ErrVertexNotFound, target)
	}
	if !e.g.HasVertex(source) {
		return 0, false, fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}

	m, err := e.DistanceMapTargets(source, []string{target})
	if err != nil {
		return 0, false, err
	}
	d, ok := m[target]

	return d, ok, nil
}

// DistanceMap returns the distance from source to every vertex reachable
// under the current bounds, iterable in nondecreasing distance order.
// Unreachable vertices are absent, not present with an infinite value.
func (e *Engine) DistanceMap(source string) (*orderedmap.OrderedMap[string, float64], error) {
	if !e.g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}

	sd, err := e.expand(source, nil, e.defaultLimit())
	if err != nil {
		return nil, err
	}
	defer e.dropIfUncached(source)

	return snapshotOrdered(sd), nil
}

// DistanceMapTargets expands until every reachable member of targets has a
// committed distance (or a bound stops expansion) and returns all distances
// finalized so far for this source. Fails with ErrTooManyTargets before any
// mutation when the target set is larger than the MaxTargets bound.
func (e *Engine) DistanceMapTargets(source string, targets []string) (map[string]float64, error) {
	if !e.g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}
	if len(targets) > e.maxTargets {
		return nil, fmt.Errorf("%w: %d targets, bound %d", ErrTooManyTargets, len(targets), e.maxTargets)
	}
	if targets == nil {
		targets = []string{} // empty target set, not "expand everything"
	}

	sd, err := e.expand(source, targets, e.defaultLimit())
	if err != nil {
		return nil, err
	}
	defer e.dropIfUncached(source)

	out := make(map[string]float64, sd.finalized.Len())
	for pair := sd.finalized.Oldest(); pair != nil; pair = pair.Next() {
		out[pair.Key] = pair.Value
	}

	return out, nil
}

// NearestMap returns the numDests vertices closest to source (including
// source itself), iterable in nondecreasing distance order. The result is
// smaller than numDests when fewer vertices are reachable under the current
// bounds. numDests must lie in [1, |V|] (ErrBadNumDests) and may not exceed
// the MaxTargets bound (ErrTooManyTargets).
func (e *Engine) NearestMap(source string, numDests int) (*orderedmap.OrderedMap[string, float64], error) {
	if !e.g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}
	if n := e.g.VertexCount(); numDests < 1 || numDests > n {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrBadNumDests, numDests, n)
	}
	if numDests > e.maxTargets {
		return nil, fmt.Errorf("%w: %d destinations, bound %d", ErrTooManyTargets, numDests, e.maxTargets)
	}

	sd, err := e.expand(source, nil, numDests)
	if err != nil {
		return nil, err
	}
	defer e.dropIfUncached(source)

	return snapshotOrdered(sd), nil
}

// SetMaxDistance updates the maximum distance the engine will compute.
// Vertices farther than d are effectively unreachable in later queries.
// Distances beyond d that are already cached stay valid and available; the
// bound applies to subsequent expansion only. Every cached source is
// re-evaluated against the new bound, so a source truncated under a tighter
// bound resumes expanding once the bound loosens. A negative d stops all
// further expansion.
func (e *Engine) SetMaxDistance(d float64) {
	e.maxDistance = d
	e.refreshBounds()
}

// SetMaxTargets updates the maximum number of distances computed per source.
// Like SetMaxDistance, already cached results stay available, every cached
// source is re-evaluated, and a non-positive k stops all further expansion.
func (e *Engine) SetMaxTargets(k int) {
	e.maxTargets = k
	e.refreshBounds()
}

// SetCaching toggles persistence of per-source state across calls. Turning
// caching off does not clear caches already present; they are discarded as
// their sources are queried, or explicitly via Reset.
func (e *Engine) SetCaching(enabled bool) { e.caching = enabled }

// Reset drops every cached source. Call after any graph mutation.
func (e *Engine) Reset() { e.sources = make(map[string]*sourceIndex) }

// ResetSource drops the cache for one source; the next query against it
// rebuilds from scratch. Appropriate when a graph change is known to affect
// only some sources.
func (e *Engine) ResetSource(source string) { delete(e.sources, source) }

// Stats returns a snapshot of the engine's cumulative work counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Relaxations:   e.relaxations,
		Finalized:     e.finalized,
		CachedSources: len(e.sources),
	}
}

// defaultLimit is the finalization limit used when a query does not name an
// explicit destination count.
func (e *Engine) defaultLimit() int {
	if n := e.g.VertexCount(); n < e.maxTargets {
		return n
	}

	return e.maxTargets
}

// getOrCreate returns the cached index for source, building and registering
// a fresh one, seeded with source at distance 0, on first use.
func (e *Engine) getOrCreate(source string) (*sourceIndex, error) {
	if sd, ok := e.sources[source]; ok {
		return sd, nil
	}

	sd, err := newSourceIndex(source, e.paths)
	if err != nil {
		return nil, err
	}
	e.sources[source] = sd

	return sd, nil
}

// expand is the relaxation loop shared by every query. It drives the
// source's cached state forward until one of the stopping conditions holds:
//
//   - every requested target is finalized (targets mode), or
//   - limit distances are finalized, or
//   - a bound cuts expansion short (reachedBound), or
//   - the frontier empties (everything reachable is finalized).
//
// A nil targets slice means "closest limit vertices"; a non-nil slice makes
// the outstanding-target set a second continuation condition.
func (e *Engine) expand(source string, targets []string, limit int) (*sourceIndex, error) {
	sd, err := e.getOrCreate(source)
	if err != nil {
		return nil, err
	}

	// Outstanding targets: requested minus already finalized.
	var toGet map[string]struct{}
	if targets != nil {
		toGet = make(map[string]struct{}, len(targets))
		for _, t := range targets {
			if !sd.done(t) {
				toGet[t] = struct{}{}
			}
		}
	}

	// Short-circuit: a bound already truncated this source, or everything
	// asked for is already cached.
	if sd.reachedBound || (targets != nil && len(toGet) == 0) || sd.finalized.Len() >= limit {
		return sd, nil
	}

	for sd.front.Len() > 0 && (sd.finalized.Len() < limit || len(toGet) > 0) {
		v, vDist, err := sd.front.PopMin()
		if err != nil {
			return nil, err
		}

		// Beyond the distance bound: put v back so the computation can
		// resume if the bound is later raised, and stop. v is excluded
		// from results.
		if vDist > e.maxDistance {
			if err = sd.restore(v, vDist); err != nil {
				return nil, err
			}
			sd.reachedBound = true

			break
		}

		// Target-count bound, checked before committing v.
		if sd.finalized.Len() >= e.maxTargets {
			if err = sd.restore(v, vDist); err != nil {
				return nil, err
			}
			sd.reachedBound = true

			break
		}

		sd.finalize(v, vDist)
		e.finalized++
		delete(toGet, v)

		if err = e.relaxNeighbors(sd, v, vDist); err != nil {
			return nil, err
		}
	}

	return sd, nil
}

// relaxNeighbors offers v's committed distance plus each outgoing edge's
// weight to the edge's head, across all parallel edges. Finalized heads are
// skipped, so their edges are never weighed; a negative weight hides until
// some query actually relaxes its edge, and then aborts that query with
// *WeightError while keeping all distances committed so far.
func (e *Engine) relaxNeighbors(sd *sourceIndex, v string, vDist float64) error {
	succs, err := e.g.Successors(v)
	if err != nil {
		return fmt.Errorf("dijkstra: successors of %q: %w", v, err)
	}

	for _, w := range succs {
		if sd.done(w) {
			continue
		}
		for _, edge := range e.g.EdgesConnecting(v, w) {
			weight := e.weight(edge)
			if weight < 0 {
				return &WeightError{EdgeID: edge.ID, From: edge.From, To: edge.To, Weight: weight}
			}

			improved, rerr := sd.relax(w, edge, vDist+weight)
			if rerr != nil {
				return rerr
			}
			if improved {
				e.relaxations++
			}
		}
	}

	return nil
}

// refreshBounds recomputes reachedBound for every cached source under the
// current bounds: a source is exhausted when the distance bound sits at or
// below the farthest distance it has finalized, or when it already holds
// MaxTargets distances.
func (e *Engine) refreshBounds() {
	for _, sd := range e.sources {
		sd.reachedBound = e.maxDistance <= sd.lastFinalized || sd.finalized.Len() >= e.maxTargets
	}
}

// dropIfUncached discards source's state when caching is disabled; queries
// call it once their return value has been assembled.
func (e *Engine) dropIfUncached(source string) {
	if !e.caching {
		delete(e.sources, source)
	}
}

// snapshotOrdered copies the finalized table so callers cannot disturb
// cached state (and cached state cannot disturb callers).
func snapshotOrdered(sd *sourceIndex) *orderedmap.OrderedMap[string, float64] {
	out := orderedmap.New[string, float64](orderedmap.WithCapacity[string, float64](sd.finalized.Len()))
	for pair := sd.finalized.Oldest(); pair != nil; pair = pair.Next() {
		out.Set(pair.Key, pair.Value)
	}

	return out
}
