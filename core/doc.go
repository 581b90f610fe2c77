// Package core provides the mutable, undirected multigraph that backs every
// maze: an arena of nodes and weighted edges addressed by stable integer IDs.
//
// Model:
//
//   - NodeID / EdgeID are indices into the Graph's arena. Identity is the
//     index, never structural equality of the records.
//   - Each node owns an ordered adjacency list ([]EdgeID, insertion order).
//   - An Edge joins exactly two distinct nodes. From/To are labels only; the
//     graph is undirected.
//   - Edge weights are strictly positive (ErrBadWeight otherwise).
//   - Detaching an edge from its endpoints does not delete the record: the
//     catalogue keeps it so that callers holding an EdgeID can still resolve it.
//
// Adjacency lists store IDs, not pointers, so Node↔Edge back-references never
// form ownership cycles and every mutation is O(deg).
//
// Core Methods:
//
//	AddNode() NodeID                                   // O(1)
//	NewEdge(from, to NodeID, w int64) (EdgeID, error)  // O(1), record only
//	Connect(from, to NodeID, w int64) (EdgeID, error)  // NewEdge + AddEdge(from, e, true)
//	AddEdge(n NodeID, e EdgeID, notifyOther bool) error    // O(deg)
//	RemoveEdge(n NodeID, e EdgeID, notifyOther bool) error // O(deg)
//	SharesEdge(a, b NodeID) bool                       // O(deg(a)·deg(b))
//	Position(e EdgeID, n NodeID) Position              // O(1)
//
// Errors:
//
//	ErrNodeNotFound   – unknown NodeID
//	ErrEdgeNotFound   – unknown EdgeID, or edge absent from a node's list on removal
//	ErrBadWeight      – weight <= 0
//	ErrLoopNotAllowed – from == to
//	ErrNotEndpoint    – node is neither endpoint of the edge
//	ErrEdgeExists     – edge already present in the node's list
//
// Concurrency: a Graph is not safe for concurrent mutation. Each maze owns its
// own Graph and mutates it from a single goroutine.
package core
