package frontier

import (
	"container/heap"
	"errors"
)

// Sentinel errors for frontier contract violations.
var (
	// ErrEmptyFrontier indicates PopMin or Peek was called on an empty frontier.
	ErrEmptyFrontier = errors.New("frontier: frontier is empty")

	// ErrDuplicateVertex indicates Insert of a vertex that is already present.
	ErrDuplicateVertex = errors.New("frontier: vertex already present")

	// ErrVertexMissing indicates DecreaseKey of a vertex that is not present.
	ErrVertexMissing = errors.New("frontier: vertex not present")

	// ErrKeyIncrease indicates DecreaseKey with a key above the current one.
	ErrKeyIncrease = errors.New("frontier: new key exceeds current key")
)

// item is one frontier entry. index is the entry's current position in the
// heap slice and is kept in sync by the heap callbacks; it is what makes
// DecreaseKey O(log n) instead of O(n).
type item struct {
	id    string
	key   float64
	seq   uint64 // insertion sequence; breaks key ties first-inserted-wins
	index int    // position in Frontier.items, -1 once removed
}

// Frontier is a decrease-key min-priority structure over vertex IDs.
// The zero value is not usable; construct with New.
type Frontier struct {
	items ordered
	byID  map[string]*item // vertex ID → live heap entry
	seq   uint64           // monotonic insertion counter
}

// New returns an empty Frontier.
func New() *Frontier {
	return &Frontier{byID: make(map[string]*item)}
}

// Len returns the number of vertices currently in the frontier.
func (f *Frontier) Len() int { return len(f.items) }

// Contains reports whether id is currently in the frontier.
func (f *Frontier) Contains(id string) bool {
	_, ok := f.byID[id]

	return ok
}

// Key returns the current key of id, if present.
func (f *Frontier) Key(id string) (float64, bool) {
	it, ok := f.byID[id]
	if !ok {
		return 0, false
	}

	return it.key, true
}

// Insert adds a vertex with the given key.
// Returns ErrDuplicateVertex if the vertex is already present.
// Complexity: O(log n).
func (f *Frontier) Insert(id string, key float64) error {
	if _, ok := f.byID[id]; ok {
		return ErrDuplicateVertex
	}

	f.seq++
	it := &item{id: id, key: key, seq: f.seq}
	f.byID[id] = it
	heap.Push(&f.items, it)

	return nil
}

// Reinsert re-adds a previously popped vertex with the given key. It is the
// undo path for a pop that turned out to exceed a bound; semantically it is
// Insert under a name that documents intent at the call site.
// Complexity: O(log n).
func (f *Frontier) Reinsert(id string, key float64) error {
	return f.Insert(id, key)
}

// DecreaseKey lowers the key of a vertex already in the frontier.
// Returns ErrVertexMissing if absent, ErrKeyIncrease if newKey is larger
// than the current key. Equal keys are accepted (no-op reordering).
// Complexity: O(log n).
func (f *Frontier) DecreaseKey(id string, newKey float64) error {
	it, ok := f.byID[id]
	if !ok {
		return ErrVertexMissing
	}
	if newKey > it.key {
		return ErrKeyIncrease
	}

	it.key = newKey
	heap.Fix(&f.items, it.index)

	return nil
}

// PopMin removes and returns the vertex with the smallest key, ties broken
// by insertion order. Returns ErrEmptyFrontier if the frontier is empty.
// Complexity: O(log n).
func (f *Frontier) PopMin() (string, float64, error) {
	if len(f.items) == 0 {
		return "", 0, ErrEmptyFrontier
	}

	it := heap.Pop(&f.items).(*item)
	delete(f.byID, it.id)

	return it.id, it.key, nil
}

// Peek returns the vertex with the smallest key without removing it.
// Returns ErrEmptyFrontier if the frontier is empty. Complexity: O(1).
func (f *Frontier) Peek() (string, float64, error) {
	if len(f.items) == 0 {
		return "", 0, ErrEmptyFrontier
	}

	return f.items[0].id, f.items[0].key, nil
}

// ordered implements heap.Interface over frontier entries,
// keyed by (key, seq) ascending.
type ordered []*item

func (h ordered) Len() int { return len(h) }

func (h ordered) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}

	return h[i].seq < h[j].seq
}

func (h ordered) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *ordered) Push(x interface{}) {
	it := x.(*item)
	it.index = len(*h)
	*h = append(*h, it)
}

func (h *ordered) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*h = old[:n-1]

	return it
}
