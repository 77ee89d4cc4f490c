package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix for generated edge identifiers,
// producing stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to with the given weight and returns its
// generated ID. Missing endpoints are created implicitly.
//
// Constraint checks, in order:
//   - empty endpoint IDs             → ErrEmptyVertexID
//   - from == to without WithLoops   → ErrLoopNotAllowed
//   - EdgeOptions without WithMixedEdges → ErrMixedEdgesNotAllowed
//   - existing from→to edge without WithMultiEdges → ErrMultiEdgeNotAllowed
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	// Per-edge overrides (WithEdgeDirected) are only legal in mixed graphs.
	if len(opts) > 0 && !g.allowMixed {
		return "", ErrMixedEdgesNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.allowMulti {
		if inner := g.adjacency[from][to]; len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	e := &Edge{ID: g.newEdgeID(), From: from, To: to, Weight: weight, Directed: g.directed}
	for _, opt := range opts {
		opt(e)
	}

	g.edges[e.ID] = e
	g.link(from, to, e.ID)
	if !e.Directed && from != to {
		g.link(to, from, e.ID) // mirror undirected edges
	}

	return e.ID, nil
}

// RemoveEdge deletes the edge with the given ID (and its undirected mirror).
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	g.unlink(e)
	delete(g.edges, eid)

	return nil
}

// HasEdge reports whether at least one edge traversable from→to exists.
// Undirected edges are mirrored, so HasEdge works in both directions for them.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// GetEdge returns the Edge with the given ID, or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only by callers.
// Complexity: O(1).
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges sorted by Edge.ID ascending.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// link records edge eid in the adjacency bucket from→to. Caller holds mu.
func (g *Graph) link(from, to, eid string) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]map[string]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
	g.adjacency[from][to][eid] = struct{}{}
}

// unlink removes edge e from its adjacency buckets. Caller holds mu.
func (g *Graph) unlink(e *Edge) {
	if bucket := g.adjacency[e.From][e.To]; bucket != nil {
		delete(bucket, e.ID)
		if len(bucket) == 0 {
			delete(g.adjacency[e.From], e.To)
		}
	}
	if !e.Directed && e.From != e.To {
		if bucket := g.adjacency[e.To][e.From]; bucket != nil {
			delete(bucket, e.ID)
			if len(bucket) == 0 {
				delete(g.adjacency[e.To], e.From)
			}
		}
	}
}

// newEdgeID returns a new unique textual edge ID ("e" + decimal).
// Monotonic and stable: no locale, time, or randomness involved.
func (g *Graph) newEdgeID() string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// sortEdges orders edges by ID ascending, numerically within the "e" prefix
// so that "e10" sorts after "e9".
func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool {
		if len(es[i].ID) != len(es[j].ID) {
			return len(es[i].ID) < len(es[j].ID)
		}

		return es[i].ID < es[j].ID
	})
}
