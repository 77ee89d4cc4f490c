package core

// Clone returns a structural copy of the graph: fresh vertex, edge, and
// adjacency tables sharing no mutable graph state with the receiver. Vertex
// Metadata maps are shared (shallow copy). The edge-ID sequence carries over
// so IDs remain unique across the original and the clone.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		directed:   g.directed,
		allowMulti: g.allowMulti,
		allowLoops: g.allowLoops,
		allowMixed: g.allowMixed,
		nextEdgeID: g.nextEdgeID,
		vertices:   make(map[string]*Vertex, len(g.vertices)),
		edges:      make(map[string]*Edge, len(g.edges)),
		adjacency:  make(map[string]map[string]map[string]struct{}, len(g.adjacency)),
	}

	for id, v := range g.vertices {
		c.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
	}
	for eid, e := range g.edges {
		cp := *e
		c.edges[eid] = &cp
	}
	for from, tos := range g.adjacency {
		c.adjacency[from] = make(map[string]map[string]struct{}, len(tos))
		for to, eids := range tos {
			bucket := make(map[string]struct{}, len(eids))
			for eid := range eids {
				bucket[eid] = struct{}{}
			}
			c.adjacency[from][to] = bucket
		}
	}

	return c
}

// Clear removes all vertices and edges, keeping configuration flags and the
// edge-ID sequence. Complexity: O(1) plus garbage collection.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacency = make(map[string]map[string]map[string]struct{})
}
