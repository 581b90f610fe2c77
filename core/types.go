// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: NodeID/EdgeID, Edge, Position, Graph, GraphOption, sentinel errors and
//       the NewGraph constructor.

package core

import (
	"errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a node outside the arena.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an unknown edge ID, or an edge that is not on the
	// adjacency list it was asked to be removed from.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-positive edge weight.
	ErrBadWeight = errors.New("core: edge weight must be positive")

	// ErrLoopNotAllowed indicates an edge whose endpoints are the same node.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNotEndpoint indicates the node plays no role in the edge.
	ErrNotEndpoint = errors.New("core: node is not an endpoint of edge")

	// ErrEdgeExists indicates the edge is already on the node's adjacency list.
	ErrEdgeExists = errors.New("core: edge already attached to node")
)

// NodeID is the stable arena index of a node.
type NodeID int

// EdgeID is the stable arena index of an edge record.
type EdgeID int

// Edge is an undirected weighted connection between two nodes.
// From and To are arbitrary labels; neither implies direction.
type Edge struct {
	// ID is the edge's own arena index.
	ID EdgeID

	// From is the first endpoint.
	From NodeID

	// To is the second endpoint.
	To NodeID

	// Weight is strictly positive.
	Weight int64
}

// Position classifies the role a node plays in an edge.
type Position int

const (
	// PositionNone means the node is not an endpoint of the edge.
	PositionNone Position = iota
	// PositionFrom means the node is the edge's From endpoint.
	PositionFrom
	// PositionTo means the node is the edge's To endpoint.
	PositionTo
)

// String implements fmt.Stringer.
func (p Position) String() string {
	switch p {
	case PositionFrom:
		return "from"
	case PositionTo:
		return "to"
	default:
		return "none"
	}
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the node and edge arenas.
// Negative hints are ignored.
func WithCapacity(nodes, edges int) GraphOption {
	return func(g *Graph) {
		if nodes > 0 {
			g.adjacency = make([][]EdgeID, 0, nodes)
		}
		if edges > 0 {
			g.edges = make([]Edge, 0, edges)
		}
	}
}

// Graph is an arena-backed undirected multigraph.
//
// adjacency[n] is the ordered list of edges currently attached to node n.
// edges[e] is the record of edge e; records are never removed.
type Graph struct {
	adjacency [][]EdgeID
	edges     []Edge
}

// NewGraph creates an empty Graph.
// Complexity: O(1) plus any capacity hint.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
