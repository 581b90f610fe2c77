// Package gridgraph provides utilities to treat a rectangular grid of cells as
// a graph whose edges are the passages between orthogonally adjacent cells.
package gridgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmaze/core"
)

// Grid is a Width×Height lattice of cells over a core.Graph it owns.
// Cells are immutable once built; the graph's adjacency is not.
type Grid struct {
	Width, Height int

	graph      *core.Graph
	cells      []Cell
	candidates []core.EdgeID
}

// New builds a width×height grid. Unless WithoutEdges is given, cells are
// visited row-major and each one is connected to its left neighbour (if any)
// and then to its above neighbour (if any); every such edge is a candidate.
//
// Returns ErrInvalidDimension if width or height < 1, ErrBadWeight if the
// WeightFunc yields a non-positive weight.
// Complexity: O(W×H) time and memory.
func New(width, height int, opts ...Option) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := width * height
	edgeHint := 0
	if o.Lattice {
		edgeHint = (width-1)*height + width*(height-1)
	}
	gg := &Grid{
		Width:      width,
		Height:     height,
		graph:      core.NewGraph(core.WithCapacity(n, edgeHint)),
		cells:      make([]Cell, 0, n),
		candidates: make([]core.EdgeID, 0, edgeHint),
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			node := gg.graph.AddNode()
			gg.cells = append(gg.cells, Cell{Point: Point{X: x, Y: y}, Node: node})
			if !o.Lattice {
				continue
			}
			if x > 0 {
				if err := gg.connect(gg.cells[gg.index(x-1, y)].Node, node, o.Weight(AxisHorizontal)); err != nil {
					return nil, err
				}
			}
			if y > 0 {
				if err := gg.connect(gg.cells[gg.index(x, y-1)].Node, node, o.Weight(AxisVertical)); err != nil {
					return nil, err
				}
			}
		}
	}

	return gg, nil
}

// connect links from→to and records the edge as a candidate.
func (gg *Grid) connect(from, to core.NodeID, weight int64) error {
	e, err := gg.graph.Connect(from, to, weight)
	if errors.Is(err, core.ErrBadWeight) {
		return fmt.Errorf("%w: %w", ErrBadWeight, err)
	}
	if err != nil {
		return err
	}
	gg.candidates = append(gg.candidates, e)

	return nil
}

// Link connects two orthogonally adjacent cells with an edge of the given
// weight and records it as a candidate. Used for hand-built mazes on a grid
// created WithoutEdges.
func (gg *Grid) Link(a, b Point, weight int64) (core.EdgeID, error) {
	ca, err := gg.Cell(a)
	if err != nil {
		return 0, err
	}
	cb, err := gg.Cell(b)
	if err != nil {
		return 0, err
	}
	if abs(a.X-b.X)+abs(a.Y-b.Y) != 1 {
		return 0, fmt.Errorf("%w: %v and %v", ErrNotAdjacent, a, b)
	}
	if err = gg.connect(ca.Node, cb.Node, weight); err != nil {
		return 0, err
	}

	return gg.candidates[len(gg.candidates)-1], nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (gg *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < gg.Width && p.Y >= 0 && p.Y < gg.Height
}

// Cell returns the cell at p, or ErrOutOfBounds.
func (gg *Grid) Cell(p Point) (Cell, error) {
	if !gg.InBounds(p) {
		return Cell{}, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, gg.Width, gg.Height)
	}

	return gg.cells[gg.index(p.X, p.Y)], nil
}

// CellAt returns the cell at a row-major index, or ErrOutOfBounds.
func (gg *Grid) CellAt(idx int) (Cell, error) {
	if idx < 0 || idx >= len(gg.cells) {
		return Cell{}, fmt.Errorf("%w: index %d", ErrOutOfBounds, idx)
	}

	return gg.cells[idx], nil
}

// Cells returns a copy of every cell in row-major order.
func (gg *Grid) Cells() []Cell {
	out := make([]Cell, len(gg.cells))
	copy(out, gg.cells)

	return out
}

// Nodes returns the node of every cell in row-major order.
func (gg *Grid) Nodes() []core.NodeID {
	out := make([]core.NodeID, len(gg.cells))
	for i, c := range gg.cells {
		out[i] = c.Node
	}

	return out
}

// Candidates returns a copy of every edge created for this grid, in creation
// order, whether or not it is still attached.
func (gg *Grid) Candidates() []core.EdgeID {
	out := make([]core.EdgeID, len(gg.candidates))
	copy(out, gg.candidates)

	return out
}

// Graph exposes the underlying graph.
func (gg *Grid) Graph() *core.Graph {
	return gg.graph
}

// Len returns the number of cells.
func (gg *Grid) Len() int {
	return len(gg.cells)
}

// Start is the top-left cell coordinate.
func (gg *Grid) Start() Point {
	return Point{}
}

// Goal is the bottom-right cell coordinate.
func (gg *Grid) Goal() Point {
	return Point{X: gg.Width - 1, Y: gg.Height - 1}
}

// Index maps p to its row-major index: y*Width + x.
// The result is meaningless for points outside the grid.
// Complexity: O(1).
func (gg *Grid) Index(p Point) int {
	return gg.index(p.X, p.Y)
}

func (gg *Grid) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (gg *Grid) Coordinate(idx int) Point {
	return Point{X: idx % gg.Width, Y: idx / gg.Width}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
