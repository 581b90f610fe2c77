// Package disjointset provides the union-find structure that turns a fully
// connected grid graph into a perfect maze with a randomized Kruskal pass.
//
// What & Why
//
//   - The environment maps every node to its parent; a node that is its own
//     parent is the representative (root) of its component, or "blob".
//   - The worklist holds candidate edges sorted ascending by weight. The sort
//     is stable: among equal weights the edge discovered first is popped first.
//   - Kruskal pops edges from the front. An edge joining two different
//     components is accepted and its components are merged. An edge whose
//     endpoints already share a root would close a cycle: it is rejected and
//     physically detached from both endpoints in the core.Graph. That detach
//     is the step that carves a wall.
//   - When the input graph is connected, the accepted edges form a spanning
//     tree: exactly |nodes|-1 edges, one component, no cycles.
//
// Find follows parent pointers without path compression unless
// WithPathCompression is set. The structure is rebuilt for every maze, so chain
// length is a performance concern only. Find refuses to walk more hops than
// there are nodes and reports ErrCycle instead, which protects against
// hand-built environments whose parent pointers loop.
//
// Union is not by rank or size: the root of the edge's From endpoint becomes a
// child of the root of its To endpoint.
//
// Complexity:
//
//   - New:     O(E log E) for the stable sort.
//   - Find:    O(chain length).
//   - Kruskal: O(E · chain length) plus O(deg) per detach.
//
// Errors:
//
//   - ErrUnknownNode       – node has no entry in the environment.
//   - ErrCycle             – parent pointers loop without reaching a root.
//   - core.ErrEdgeNotFound – worklist edge unknown to the graph, or a rejected
//     edge that is no longer attached.
package disjointset
