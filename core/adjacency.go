package core

import "sort"

// Successors returns the IDs of all vertices reachable from id by traversing
// a single edge, in ascending order. Directed edges contribute only their
// head; undirected edges contribute the opposite endpoint from either side.
// Returns ErrVertexNotFound if id does not exist.
// Complexity: O(D log D) for out-degree D.
func (g *Graph) Successors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	buckets := g.adjacency[id]
	out := make([]string, 0, len(buckets))
	for to, eids := range buckets {
		if len(eids) > 0 {
			out = append(out, to)
		}
	}
	sort.Strings(out)

	return out, nil
}

// EdgesConnecting returns every edge traversable from u to v, sorted by edge
// ID. Parallel edges are all included; undirected edges appear regardless of
// which endpoint was passed first. The result is empty (nil) when no such
// edge exists or either endpoint is unknown.
// Complexity: O(K log K) for K parallel edges.
func (g *Graph) EdgesConnecting(u, v string) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket := g.adjacency[u][v]
	if len(bucket) == 0 {
		return nil
	}

	out := make([]*Edge, 0, len(bucket))
	for eid := range bucket {
		out = append(out, g.edges[eid])
	}
	sortEdges(out)

	return out
}

// Degree returns the number of edges traversable out of id, counting each
// parallel edge once. Returns ErrVertexNotFound if id does not exist.
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	n := 0
	for _, eids := range g.adjacency[id] {
		n += len(eids)
	}

	return n, nil
}
