// Package frontier provides a minimum-priority structure over vertex IDs
// with true decrease-key support, the expansion frontier of an incremental
// Dijkstra computation.
//
// A plain array heap supports PopMin but not arbitrary DecreaseKey: locating
// the entry to re-prioritize would cost O(n). Frontier therefore pairs the
// binary heap (container/heap) with a vertex→entry index, giving O(log n)
// Insert, DecreaseKey, and PopMin and O(1) Contains/Key. This matters for a
// pausable computation: the frontier must exactly mirror the set of vertices
// holding a tentative distance, so the lazy-duplicate trick (pushing stale
// entries and skipping them on pop) is not an option.
//
// Ordering is deterministic: entries are popped in ascending key order, equal
// keys first-inserted-first.
//
// Contract violations are reported as sentinel errors rather than panics:
//
//	ErrEmptyFrontier   - PopMin/Peek on an empty frontier.
//	ErrDuplicateVertex - Insert of a vertex already present.
//	ErrVertexMissing   - DecreaseKey of a vertex not present.
//	ErrKeyIncrease     - DecreaseKey with a key above the current one.
//
// From the distance engine's point of view these are fatal programming
// errors; correct driver logic never triggers them.
package frontier
