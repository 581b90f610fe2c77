package gridgraph

import (
	"github.com/katalvlaran/lvmaze/core"
)

// IsLinked reports whether one can move directly between a and b, i.e. the
// wrapped nodes share an edge. Returns ErrOutOfBounds if either point lies
// outside the grid.
// Complexity: O(1).
func (gg *Grid) IsLinked(a, b Point) (bool, error) {
	ca, err := gg.Cell(a)
	if err != nil {
		return false, err
	}
	cb, err := gg.Cell(b)
	if err != nil {
		return false, err
	}

	return gg.graph.SharesEdge(ca.Node, cb.Node), nil
}

// ConnectingCells returns the orthogonal neighbours of p that p is currently
// linked to, in the order left, right, up, down.
// Complexity: O(1).
func (gg *Grid) ConnectingCells(p Point) ([]Point, error) {
	c, err := gg.Cell(p)
	if err != nil {
		return nil, err
	}
	out := make([]Point, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		q := Point{X: p.X + d[0], Y: p.Y + d[1]}
		if !gg.InBounds(q) {
			continue
		}
		if gg.graph.SharesEdge(c.Node, gg.cells[gg.index(q.X, q.Y)].Node) {
			out = append(out, q)
		}
	}

	return out, nil
}

// LiveEdges returns the candidate edges that are still attached to both
// endpoints, in creation order.
// Complexity: O(E).
func (gg *Grid) LiveEdges() []core.EdgeID {
	out := make([]core.EdgeID, 0, len(gg.candidates))
	for _, e := range gg.candidates {
		if gg.graph.Attached(e) {
			out = append(out, e)
		}
	}

	return out
}

// ConnectedRegions finds every maximal set of cells reachable from one another
// through links. Each region is a slice of row-major indices in discovery
// order; regions are ordered by their smallest index.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (gg *Grid) ConnectedRegions() [][]int {
	total := len(gg.cells)
	seen := make([]bool, total)
	var regions [][]int

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		var region []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			region = append(region, u)
			// u is always in bounds, so the error is nil.
			next, _ := gg.ConnectingCells(gg.Coordinate(u))
			for _, q := range next {
				vi := gg.Index(q)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		regions = append(regions, region)
	}

	return regions
}
