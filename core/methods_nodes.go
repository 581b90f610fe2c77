// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries.

package core

import "fmt"

// AddNode appends a fresh node with an empty adjacency list and returns its ID.
// IDs are dense and assigned in creation order starting at 0.
// Complexity: O(1) amortized.
func (g *Graph) AddNode() NodeID {
	g.adjacency = append(g.adjacency, nil)

	return NodeID(len(g.adjacency) - 1)
}

// HasNode reports whether n lies inside the node arena.
func (g *Graph) HasNode(n NodeID) bool {
	return n >= 0 && int(n) < len(g.adjacency)
}

// NodeCount returns the number of nodes in the arena.
func (g *Graph) NodeCount() int {
	return len(g.adjacency)
}

// Nodes returns every NodeID in ascending order.
// Complexity: O(V).
func (g *Graph) Nodes() []NodeID {
	out := make([]NodeID, len(g.adjacency))
	for i := range out {
		out[i] = NodeID(i)
	}

	return out
}

// Incident returns a copy of n's adjacency list in insertion order.
// Complexity: O(deg(n)).
func (g *Graph) Incident(n NodeID) ([]EdgeID, error) {
	if !g.HasNode(n) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, n)
	}
	out := make([]EdgeID, len(g.adjacency[n]))
	copy(out, g.adjacency[n])

	return out, nil
}

// Degree returns the number of edges currently attached to n.
func (g *Graph) Degree(n NodeID) (int, error) {
	if !g.HasNode(n) {
		return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, n)
	}

	return len(g.adjacency[n]), nil
}
