// Package gridgraph lays a rectangular W×H grid of cells over a core.Graph.
//
// What:
//
//   - Every coordinate (x,y), 0≤x<Width, 0≤y<Height, owns exactly one Cell,
//     which wraps one core.NodeID. Cells are stored row-major: index = y*Width + x.
//   - New builds the full 4-connected lattice: in row-major order each cell is
//     linked to its left neighbour, then to its above neighbour, and every new
//     edge is recorded as a candidate edge.
//   - Edge weights come from a WeightFunc keyed by Axis, so callers can bias one
//     direction against the other.
//   - IsLinked and ConnectingCells answer "can I step directly from here to
//     there" from the live adjacency of the underlying graph.
//   - ConnectedRegions groups cells reachable from one another through links.
//   - ToGonum exports the live adjacency as a gonum weighted undirected graph.
//
// Neighbour order is fixed: left, right, up, down. Nothing wraps around and
// diagonals are never neighbours.
//
// Complexity:
//
//   - New:              O(W×H) time and memory.
//   - IsLinked:         O(1) (node degree ≤ 4).
//   - ConnectingCells:  O(1).
//   - ConnectedRegions: O(W×H).
//
// Errors:
//
//   - ErrInvalidDimension: width or height < 1.
//   - ErrOutOfBounds:      coordinate outside [0,Width)×[0,Height).
//   - ErrNotAdjacent:      Link on two cells that are not orthogonal neighbours.
//   - ErrBadWeight:        WeightFunc produced a non-positive weight.
package gridgraph
