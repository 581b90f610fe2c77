// Package maze builds perfect mazes and solves them.
//
// A maze starts as a fully 4-connected W×H lattice (gridgraph). Every lattice
// edge gets a random weight, and a Kruskal pass (disjointset) keeps a spanning
// tree and detaches every other edge. The result has exactly W·H−1 passages
// and exactly one simple path between any two cells.
//
// Weights are int64((r+1)·201·m) with r uniform in [0,1), so every weight is
// positive. The multiplier m is 1 unless a Bias applies:
//
//   - BiasVertical multiplies horizontal weights by BiasFactor. All vertical
//     edges sort first and survive, so the maze is made of long vertical
//     corridors joined by W−1 horizontal passages.
//   - BiasHorizontal is the mirror image: long horizontal corridors.
//
// Randomness comes from a *rand.Rand owned by each Maze. WithSeed makes a
// maze reproducible; without it a time-seeded source is used.
//
// The start cell is (0,0) and the goal is (W−1,H−1). DFS and BFS return the
// visitation trace and the goal's ancestor chain; on a perfect maze both
// report the same path.
package maze
