// Package lvmaze generates perfect mazes on rectangular grids and solves them.
//
// 🚀 What is lvmaze?
//
//	A small library built from five packages:
//		• core        – arena graph: nodes, weighted edges, ordered adjacency
//		• gridgraph   – W×H cells over a core.Graph, lattice construction, links
//		• disjointset – union-find and the Kruskal pass that carves the maze
//		• search      – one frontier-driven engine for DFS (Stack) and BFS (Queue)
//		• maze        – the public API: New, IsLinked, DFS, BFS
//
// ✨ Guarantees
//
//   - Perfect mazes: W·H−1 passages, exactly one path between any two cells.
//   - Reproducible: maze.WithSeed fixes every random weight.
//   - Quiet by default: zap logging is opt-in through WithLogger.
//
// Quick ASCII example (2×2, start S at (0,0), goal G at (1,1)):
//
//	+---+---+
//	| S     |
//	+   +   +
//	|   | G |
//	+---+---+
//
// Run the walkthrough:
//
//	go run ./examples -width 12 -height 8 -bias v -solver bfs
package lvmaze
