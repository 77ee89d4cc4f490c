package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/graphdist/graphdist/core"
)

func TestAddVertex_Basic(t *testing.T) {
	g := core.NewGraph()

	if err := g.AddVertex("A"); err != nil {
		t.Fatalf("AddVertex(A): %v", err)
	}
	// Idempotent: adding again is a no-op, not an error.
	if err := g.AddVertex("A"); err != nil {
		t.Fatalf("AddVertex(A) second time: %v", err)
	}
	if err := g.AddVertex(""); !errors.Is(err, core.ErrEmptyVertexID) {
		t.Fatalf("AddVertex(\"\") = %v; want ErrEmptyVertexID", err)
	}

	if !g.HasVertex("A") || g.HasVertex("B") || g.HasVertex("") {
		t.Fatalf("membership wrong: HasVertex(A)=%v HasVertex(B)=%v", g.HasVertex("A"), g.HasVertex("B"))
	}
	if got := g.VertexCount(); got != 1 {
		t.Fatalf("VertexCount() = %d; want 1", got)
	}
}

func TestAddEdge_CreatesEndpointsAndIDs(t *testing.T) {
	g := core.NewGraph()

	eid, err := g.AddEdge("A", "B", 2.5)
	if err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if eid != "e1" {
		t.Fatalf("first edge ID = %q; want e1", eid)
	}
	// Endpoints were created implicitly.
	if !g.HasVertex("A") || !g.HasVertex("B") {
		t.Fatal("AddEdge did not create endpoints")
	}

	e, err := g.GetEdge(eid)
	if err != nil {
		t.Fatalf("GetEdge(%q): %v", eid, err)
	}
	if e.From != "A" || e.To != "B" || e.Weight != 2.5 || e.Directed {
		t.Fatalf("edge fields wrong: %+v", e)
	}
}

func TestAddEdge_Constraints(t *testing.T) {
	g := core.NewGraph()

	if _, err := g.AddEdge("", "B", 0); !errors.Is(err, core.ErrEmptyVertexID) {
		t.Fatalf("empty endpoint: %v; want ErrEmptyVertexID", err)
	}
	if _, err := g.AddEdge("A", "A", 0); !errors.Is(err, core.ErrLoopNotAllowed) {
		t.Fatalf("loop: %v; want ErrLoopNotAllowed", err)
	}
	if _, err := g.AddEdge("A", "B", 0, core.WithEdgeDirected(true)); !errors.Is(err, core.ErrMixedEdgesNotAllowed) {
		t.Fatalf("override: %v; want ErrMixedEdgesNotAllowed", err)
	}

	if _, err := g.AddEdge("A", "B", 1); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if _, err := g.AddEdge("A", "B", 2); !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		t.Fatalf("parallel: %v; want ErrMultiEdgeNotAllowed", err)
	}

	// Loops and multi-edges become legal with the matching options.
	gl := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	if _, err := gl.AddEdge("A", "A", 1); err != nil {
		t.Fatalf("loop with WithLoops: %v", err)
	}
	if _, err := gl.AddEdge("A", "B", 1); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if _, err := gl.AddEdge("A", "B", 7); err != nil {
		t.Fatalf("parallel with WithMultiEdges: %v", err)
	}
}

func TestSuccessors_Directedness(t *testing.T) {
	// Directed by default: B is a successor of A, not vice versa.
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("A", "C", 1)

	succ, err := g.Successors("A")
	if err != nil {
		t.Fatalf("Successors(A): %v", err)
	}
	if want := []string{"B", "C"}; !reflect.DeepEqual(succ, want) {
		t.Fatalf("Successors(A) = %v; want %v", succ, want)
	}

	succ, err = g.Successors("B")
	if err != nil {
		t.Fatalf("Successors(B): %v", err)
	}
	if len(succ) != 0 {
		t.Fatalf("Successors(B) = %v; want empty", succ)
	}

	if _, err = g.Successors("Z"); !errors.Is(err, core.ErrVertexNotFound) {
		t.Fatalf("Successors(Z): %v; want ErrVertexNotFound", err)
	}

	// Undirected: the mirror is visible from both endpoints.
	u := core.NewGraph()
	_, _ = u.AddEdge("A", "B", 1)
	from, _ := u.Successors("B")
	if want := []string{"A"}; !reflect.DeepEqual(from, want) {
		t.Fatalf("undirected Successors(B) = %v; want %v", from, want)
	}
}

func TestEdgesConnecting_ParallelAndMixed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges(), core.WithMixedEdges())
	e1, _ := g.AddEdge("A", "B", 1)
	e2, _ := g.AddEdge("A", "B", 9)
	_, _ = g.AddEdge("B", "A", 4)
	// An undirected override is traversable both ways.
	eu, _ := g.AddEdge("A", "C", 2, core.WithEdgeDirected(false))

	es := g.EdgesConnecting("A", "B")
	if len(es) != 2 || es[0].ID != e1 || es[1].ID != e2 {
		t.Fatalf("EdgesConnecting(A,B) = %v; want [%s %s]", es, e1, e2)
	}
	if es = g.EdgesConnecting("C", "A"); len(es) != 1 || es[0].ID != eu {
		t.Fatalf("EdgesConnecting(C,A) = %v; want [%s]", es, eu)
	}
	if es = g.EdgesConnecting("A", "Z"); es != nil {
		t.Fatalf("EdgesConnecting(A,Z) = %v; want nil", es)
	}
}

func TestRemoveEdge_AndMirror(t *testing.T) {
	g := core.NewGraph()
	eid, _ := g.AddEdge("A", "B", 1)

	if err := g.RemoveEdge(eid); err != nil {
		t.Fatalf("RemoveEdge: %v", err)
	}
	if g.HasEdge("A", "B") || g.HasEdge("B", "A") {
		t.Fatal("edge or its mirror survived removal")
	}
	if err := g.RemoveEdge(eid); !errors.Is(err, core.ErrEdgeNotFound) {
		t.Fatalf("double remove: %v; want ErrEdgeNotFound", err)
	}
}

func TestRemoveVertex_DropsIncidentEdges(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("C", "A", 1)

	if err := g.RemoveVertex("B"); err != nil {
		t.Fatalf("RemoveVertex: %v", err)
	}
	if g.HasVertex("B") {
		t.Fatal("B still present")
	}
	if g.HasEdge("A", "B") || g.HasEdge("B", "C") {
		t.Fatal("incident edges survived")
	}
	if got := g.EdgeCount(); got != 1 {
		t.Fatalf("EdgeCount() = %d; want 1", got)
	}
	if err := g.RemoveVertex("B"); !errors.Is(err, core.ErrVertexNotFound) {
		t.Fatalf("double remove: %v; want ErrVertexNotFound", err)
	}
}

func TestEdges_DeterministicOrder(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	// Insert enough edges that lexicographic ID ordering would misplace "e10".
	for i := 0; i < 11; i++ {
		_, _ = g.AddEdge("A", "B", float64(i))
	}

	es := g.Edges()
	if len(es) != 11 {
		t.Fatalf("Edges() len = %d; want 11", len(es))
	}
	for i, e := range es {
		if e.Weight != float64(i) {
			t.Fatalf("Edges()[%d] = %s (weight %g); want insertion order", i, e.ID, e.Weight)
		}
	}
}

func TestClone_Independence(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 1)

	c := g.Clone()
	if !c.HasEdge("A", "B") || c.VertexCount() != 2 {
		t.Fatal("clone missing structure")
	}

	// Mutating the clone must not touch the original, and edge IDs minted by
	// the clone must not collide with the original's.
	eid, err := c.AddEdge("B", "C", 2)
	if err != nil {
		t.Fatalf("AddEdge on clone: %v", err)
	}
	if g.HasVertex("C") {
		t.Fatal("clone mutation leaked into original")
	}
	if _, err = g.GetEdge(eid); !errors.Is(err, core.ErrEdgeNotFound) {
		t.Fatalf("original sees clone's edge %q", eid)
	}

	c.Clear()
	if c.VertexCount() != 0 || c.EdgeCount() != 0 {
		t.Fatal("Clear left state behind")
	}
	if g.VertexCount() == 0 {
		t.Fatal("Clear on clone emptied original")
	}
}

func TestDegree(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("A", "C", 3)
	_, _ = g.AddEdge("B", "A", 4)

	if d, err := g.Degree("A"); err != nil || d != 3 {
		t.Fatalf("Degree(A) = %d, %v; want 3", d, err)
	}
	if _, err := g.Degree("Z"); !errors.Is(err, core.ErrVertexNotFound) {
		t.Fatalf("Degree(Z): %v; want ErrVertexNotFound", err)
	}
}
