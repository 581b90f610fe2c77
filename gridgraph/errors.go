package gridgraph

import "errors"

var (
	// ErrInvalidDimension indicates a width or height below 1.
	ErrInvalidDimension = errors.New("gridgraph: width and height must be at least 1")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrNotAdjacent indicates two cells that are not orthogonal neighbours.
	ErrNotAdjacent = errors.New("gridgraph: cells are not adjacent")
	// ErrBadWeight indicates a WeightFunc produced a weight the graph rejects.
	ErrBadWeight = errors.New("gridgraph: invalid edge weight")
)
