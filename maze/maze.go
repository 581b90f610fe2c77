// SPDX-License-Identifier: MIT
//
// File: maze.go
// Role: perfect-maze construction (lattice + Kruskal) and the public query
//       and search surface.

package maze

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvmaze/core"
	"github.com/katalvlaran/lvmaze/disjointset"
	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/search"
)

// Maze is a grid whose passages form a spanning tree.
// A Maze is not safe for concurrent mutation; searches only read it.
type Maze struct {
	grid   *gridgraph.Grid
	edges  []core.EdgeID
	bias   Bias
	logger *zap.Logger
}

// New builds a random width×height perfect maze.
//
// Steps:
//  1. Build the full lattice with bias-weighted random edges.
//  2. Run Kruskal over all cells and candidate edges.
//  3. Keep the accepted edges; the rejected ones are already detached.
//
// Returns ErrInvalidDimension if width or height < 1.
// Complexity: O(E log E) with E ≈ 2·W·H.
func New(width, height int, opts ...Option) (*Maze, error) {
	o := newOptions(opts...)

	gg, err := gridgraph.New(width, height,
		gridgraph.WithWeightFunc(weightFunc(o.Bias, o.Rand)))
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}
	o.Logger.Debug("grid built",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("candidates", len(gg.Candidates())),
	)

	ds, err := disjointset.New(gg.Graph(), gg.Nodes(), gg.Candidates(),
		disjointset.WithLogger(o.Logger))
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}
	edges, err := ds.Kruskal()
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}

	o.Logger.Debug("maze built",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Stringer("bias", o.Bias),
		zap.Int("edges", len(edges)),
	)

	return &Maze{grid: gg, edges: edges, bias: o.Bias, logger: o.Logger}, nil
}

// FromGrid wraps a grid whose live edges already are the maze, such as a
// hand-built fixture. No Kruskal pass runs and the grid is not checked for
// the spanning-tree property. Only the Bias and Logger options apply.
func FromGrid(gg *gridgraph.Grid, opts ...Option) *Maze {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Maze{grid: gg, edges: gg.LiveEdges(), bias: o.Bias, logger: o.Logger}
}

// IsLinked reports whether a passage joins a and b.
// Returns ErrOutOfBounds if either lies outside the maze.
func (m *Maze) IsLinked(a, b Point) (bool, error) {
	return m.grid.IsLinked(a, b)
}

// CanMove reports whether a player may step from one cell to another.
// Coordinates outside the maze are never reachable.
func (m *Maze) CanMove(from, to Point) bool {
	ok, err := m.grid.IsLinked(from, to)

	return err == nil && ok
}

// IsGoal reports whether p is the goal cell.
func (m *Maze) IsGoal(p Point) bool { return p == m.grid.Goal() }

// Start returns (0,0).
func (m *Maze) Start() Point { return m.grid.Start() }

// Goal returns (Width-1, Height-1).
func (m *Maze) Goal() Point { return m.grid.Goal() }

// Width returns the number of columns.
func (m *Maze) Width() int { return m.grid.Width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.grid.Height }

// Bias returns the bias the maze was built with.
func (m *Maze) Bias() Bias { return m.bias }

// Grid exposes the underlying grid.
func (m *Maze) Grid() *gridgraph.Grid { return m.grid }

// Edges returns the passages of the maze in acceptance order.
func (m *Maze) Edges() []core.Edge {
	out := make([]core.Edge, 0, len(m.edges))
	for _, id := range m.edges {
		e, err := m.grid.Graph().Edge(id)
		if err != nil {
			continue
		}
		out = append(out, e)
	}

	return out
}

// DFS solves the maze depth-first.
func (m *Maze) DFS(opts ...search.Option) (*search.Result, error) {
	return search.DFS(m.grid, m.searchOptions(opts)...)
}

// BFS solves the maze breadth-first.
func (m *Maze) BFS(opts ...search.Option) (*search.Result, error) {
	return search.BFS(m.grid, m.searchOptions(opts)...)
}

// searchOptions puts the maze logger first so callers can override it.
func (m *Maze) searchOptions(opts []search.Option) []search.Option {
	return append([]search.Option{search.WithLogger(m.logger)}, opts...)
}
