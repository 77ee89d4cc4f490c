package dijkstra

import (
	"fmt"

	"github.com/graphdist/graphdist/core"
)

// IncomingEdge returns the final edge on a shortest path from source to
// target, with ok == false when target is unreachable under the current
// bounds. Requires an engine built with WithReturnPaths (ErrPathsDisabled).
func (e *Engine) IncomingEdge(source, target string) (*core.Edge, bool, error) {
	if !e.paths {
		return nil, false, ErrPathsDisabled
	}
	if !e.g.HasVertex(target) {
		return nil, false, fmt.Errorf("%w: target %q", ErrVertexNotFound, target)
	}
	if !e.g.HasVertex(source) {
		return nil, false, fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}

	sd, err := e.expand(source, []string{target}, e.defaultLimit())
	if err != nil {
		return nil, false, err
	}
	defer e.dropIfUncached(source)

	if !sd.done(target) {
		return nil, false, nil
	}

	return sd.incoming[target], target != source, nil
}

// Path returns the edge sequence of a shortest path from source to target,
// empty when source == target. The expansion that discovers the path is
// shared with distance queries: a path asked for twice against a cached
// source is reconstructed from state the first call computed.
//
// Fails with ErrPathsDisabled on an engine built without WithReturnPaths and
// with ErrNoPath when target cannot be reached under the current bounds.
func (e *Engine) Path(source, target string) ([]*core.Edge, error) {
	if !e.paths {
		return nil, ErrPathsDisabled
	}
	if !e.g.HasVertex(target) {
		return nil, fmt.Errorf("%w: target %q", ErrVertexNotFound, target)
	}
	if !e.g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}

	sd, err := e.expand(source, []string{target}, e.defaultLimit())
	if err != nil {
		return nil, err
	}
	defer e.dropIfUncached(source)

	if !sd.done(target) {
		return nil, fmt.Errorf("%w: %q from %q", ErrNoPath, target, source)
	}

	// Walk incoming edges backward from target to source, then reverse.
	// Every finalized vertex other than the source has an incoming edge.
	path := make([]*core.Edge, 0)
	for v := target; v != source; {
		edge := sd.incoming[v]
		path = append(path, edge)
		if edge.From == v {
			v = edge.To // undirected edge traversed against its stored direction
		} else {
			v = edge.From
		}
	}
	reverseEdges(path)

	return path, nil
}

func reverseEdges(es []*core.Edge) {
	for i, j := 0, len(es)-1; i < j; i, j = i+1, j-1 {
		es[i], es[j] = es[j], es[i]
	}
}
