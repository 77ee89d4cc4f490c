package dijkstra

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/graphdist/graphdist/core"
	"github.com/graphdist/graphdist/frontier"
)

// sourceIndex holds everything the engine knows about one source vertex:
// distances finalized so far, tentative estimates, and the paused expansion
// frontier. It is created lazily on the first query for a source, mutated
// incrementally by every later query against the same source, and dropped by
// ResetSource/Reset or, when caching is disabled, right after a query's
// return value has been assembled.
//
// Invariants:
//   - finalized values are strictly nondecreasing in insertion order, which
//     equals nondecreasing distance order (the engine finalizes vertices in
//     nondecreasing popped-key order).
//   - front holds exactly the keys of tentative that are not yet finalized.
//   - a finalized distance is ≤ every tentative estimate the vertex ever had.
type sourceIndex struct {
	// finalized maps vertex → committed shortest distance, insertion-ordered.
	finalized *orderedmap.OrderedMap[string, float64]

	// tentative maps vertex → best-known, not yet committed estimate.
	tentative map[string]float64

	// front orders the tentative set by estimate.
	front *frontier.Frontier

	// incoming maps vertex → last edge that improved it; nil unless the
	// engine was built with WithReturnPaths.
	incoming map[string]*core.Edge

	// reachedBound is set once a stopping bound truncated expansion; while
	// set, no further expansion for this source is attempted.
	reachedBound bool

	// lastFinalized is the distance of the most recently finalized vertex,
	// used to decide whether a loosened MaxDistance bound makes further
	// expansion worthwhile.
	lastFinalized float64
}

// newSourceIndex builds a fresh index seeded with the source at distance 0.
func newSourceIndex(source string, trackPaths bool) (*sourceIndex, error) {
	sd := &sourceIndex{
		finalized: orderedmap.New[string, float64](),
		tentative: map[string]float64{source: 0},
		front:     frontier.New(),
	}
	if trackPaths {
		sd.incoming = make(map[string]*core.Edge)
	}
	if err := sd.front.Insert(source, 0); err != nil {
		return nil, err
	}

	return sd, nil
}

// relax offers candidate distance d to vertex w, reached via edge `via`.
// A vertex with no tentative entry gets one; an existing entry is improved
// only when d is strictly smaller. Finalized vertices are never offered
// (the engine filters them before calling). Reports whether the entry was
// created or improved.
func (sd *sourceIndex) relax(w string, via *core.Edge, d float64) (bool, error) {
	cur, ok := sd.tentative[w]
	switch {
	case !ok:
		sd.tentative[w] = d
		if err := sd.front.Insert(w, d); err != nil {
			return false, err
		}
	case d < cur:
		sd.tentative[w] = d
		if err := sd.front.DecreaseKey(w, d); err != nil {
			return false, err
		}
	default:
		return false, nil
	}

	if sd.incoming != nil {
		sd.incoming[w] = via
	}

	return true, nil
}

// finalize commits distance d for vertex v: the tentative entry is retired
// and (v, d) is appended to the finalized order. v must have been popped
// from the frontier by the caller.
func (sd *sourceIndex) finalize(v string, d float64) {
	delete(sd.tentative, v)
	sd.finalized.Set(v, d)
	sd.lastFinalized = d
}

// restore undoes a pop whose distance fell beyond a bound: v goes back into
// the frontier at the same key, its tentative entry untouched, so a later
// query under a looser bound resumes exactly where this one stopped.
func (sd *sourceIndex) restore(v string, d float64) error {
	return sd.front.Reinsert(v, d)
}

// done reports whether v already has a committed distance.
func (sd *sourceIndex) done(v string) bool {
	_, ok := sd.finalized.Get(v)

	return ok
}
