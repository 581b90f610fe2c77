// Package gridgraph defines core types and options for the gridgraph
// subpackage of github.com/katalvlaran/lvmaze.
package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/core"
)

// DefaultEdgeWeight is the weight of every lattice edge when no WeightFunc is set.
const DefaultEdgeWeight int64 = 1

// Point is a grid coordinate: X is the column, Y the row.
type Point struct {
	X, Y int
}

// String renders the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Cell associates an immutable coordinate with the graph node it wraps.
type Cell struct {
	Point
	Node core.NodeID
}

// Axis tells a WeightFunc which kind of lattice edge it is weighing.
type Axis int

const (
	// AxisHorizontal is an edge between a cell and its left neighbour.
	AxisHorizontal Axis = iota
	// AxisVertical is an edge between a cell and the cell above it.
	AxisVertical
)

// String implements fmt.Stringer.
func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}

	return "horizontal"
}

// WeightFunc yields the weight of the next lattice edge on the given axis.
// It is called once per candidate edge, in construction order.
type WeightFunc func(a Axis) int64

// Options holds the tunables for New.
type Options struct {
	// Weight is called for each lattice edge.
	Weight WeightFunc
	// Lattice, when false, creates the cells only; edges are added with Link.
	Lattice bool
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns a full lattice with constant DefaultEdgeWeight.
func DefaultOptions() Options {
	return Options{
		Weight:  func(Axis) int64 { return DefaultEdgeWeight },
		Lattice: true,
	}
}

// WithWeightFunc sets the lattice weight generator. A nil fn is ignored.
func WithWeightFunc(fn WeightFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Weight = fn
		}
	}
}

// WithoutEdges skips lattice construction; the grid starts with every cell
// isolated.
func WithoutEdges() Option {
	return func(o *Options) {
		o.Lattice = false
	}
}

// neighborOffsets is the fixed neighbour order: left, right, up, down.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
