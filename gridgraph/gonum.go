package gridgraph

import (
	"math"

	"gonum.org/v1/gonum/graph/simple"
)

// ToGonum converts the live adjacency of the grid into a gonum weighted,
// undirected graph. Each cell becomes the node whose ID is its row-major
// index; each attached candidate edge becomes a weighted edge. Detached edges
// are left out, so on a finished maze the result is the spanning tree itself.
//
// Absent edges weigh +Inf, self weight is 0.
// Complexity: O(W×H + E) time and memory.
func (gg *Grid) ToGonum() *simple.WeightedUndirectedGraph {
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i := range gg.cells {
		g.AddNode(simple.Node(int64(i)))
	}

	// Cells are created in row-major order on a fresh graph, so a cell's
	// NodeID equals its index.
	for _, id := range gg.LiveEdges() {
		e, err := gg.graph.Edge(id)
		if err != nil {
			continue
		}
		g.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(int64(e.From)),
			T: simple.Node(int64(e.To)),
			W: float64(e.Weight),
		})
	}

	return g
}
