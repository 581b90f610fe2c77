// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: NewEdge/Connect/AddEdge/RemoveEdge/Detach,
//       SharesEdge/Position/Other and catalogue accessors.
// Determinism:
//   - Adjacency lists keep insertion order; removal preserves the order of the rest.
//   - Edges() returns records in ascending EdgeID order.

package core

import (
	"fmt"
	"slices"
)

// NewEdge registers an edge record between from and to without attaching it to
// either adjacency list.
//
// Errors: ErrNodeNotFound, ErrLoopNotAllowed, ErrBadWeight.
// Complexity: O(1) amortized.
func (g *Graph) NewEdge(from, to NodeID, weight int64) (EdgeID, error) {
	if !g.HasNode(from) || !g.HasNode(to) {
		return 0, fmt.Errorf("%w: edge %d-%d", ErrNodeNotFound, from, to)
	}
	if from == to {
		return 0, fmt.Errorf("%w: node %d", ErrLoopNotAllowed, from)
	}
	if weight <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrBadWeight, weight)
	}
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, Edge{ID: id, From: from, To: to, Weight: weight})

	return id, nil
}

// Connect creates an edge between from and to and attaches it to both
// adjacency lists. It is the symmetric construction helper: one call from the
// From side, the To side is notified.
func (g *Graph) Connect(from, to NodeID, weight int64) (EdgeID, error) {
	id, err := g.NewEdge(from, to, weight)
	if err != nil {
		return 0, err
	}
	if err = g.AddEdge(from, id, true); err != nil {
		return 0, err
	}

	return id, nil
}

// AddEdge appends e to n's adjacency list. When notifyOther is true the edge is
// also appended to the list of the opposite endpoint.
//
// Steps:
//  1. Resolve n and e (ErrNodeNotFound, ErrEdgeNotFound).
//  2. Classify n in e (ErrNotEndpoint when PositionNone).
//  3. Reject duplicates on every list about to change (ErrEdgeExists).
//  4. Append.
//
// Validation happens before any list is touched, so a failed call leaves the
// graph unchanged.
// Complexity: O(deg(n) + deg(other)).
func (g *Graph) AddEdge(n NodeID, e EdgeID, notifyOther bool) error {
	other, err := g.endpointPair(n, e)
	if err != nil {
		return err
	}
	if slices.Contains(g.adjacency[n], e) {
		return fmt.Errorf("%w: edge %d on node %d", ErrEdgeExists, e, n)
	}
	if notifyOther && slices.Contains(g.adjacency[other], e) {
		return fmt.Errorf("%w: edge %d on node %d", ErrEdgeExists, e, other)
	}

	g.adjacency[n] = append(g.adjacency[n], e)
	if notifyOther {
		g.adjacency[other] = append(g.adjacency[other], e)
	}

	return nil
}

// RemoveEdge removes e from n's adjacency list. When notifyOther is true it is
// also removed from the opposite endpoint.
//
// Removing an edge that is not on the list is never a silent no-op: it returns
// ErrEdgeNotFound and leaves the graph unchanged.
// Complexity: O(deg(n) + deg(other)).
func (g *Graph) RemoveEdge(n NodeID, e EdgeID, notifyOther bool) error {
	if !g.HasNode(n) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, n)
	}
	i := slices.Index(g.adjacency[n], e)
	if i < 0 {
		return fmt.Errorf("%w: edge %d not on node %d", ErrEdgeNotFound, e, n)
	}
	if !notifyOther {
		g.adjacency[n] = slices.Delete(g.adjacency[n], i, i+1)

		return nil
	}

	other, err := g.endpointPair(n, e)
	if err != nil {
		return err
	}
	j := slices.Index(g.adjacency[other], e)
	if j < 0 {
		return fmt.Errorf("%w: edge %d not on node %d", ErrEdgeNotFound, e, other)
	}
	g.adjacency[n] = slices.Delete(g.adjacency[n], i, i+1)
	g.adjacency[other] = slices.Delete(g.adjacency[other], j, j+1)

	return nil
}

// Detach removes e from both endpoints' adjacency lists. The record stays in
// the catalogue.
func (g *Graph) Detach(e EdgeID) error {
	rec, err := g.Edge(e)
	if err != nil {
		return err
	}

	return g.RemoveEdge(rec.From, e, true)
}

// SharesEdge reports whether some edge appears on both a's and b's adjacency
// lists. Lists are kept symmetric, so scanning a's side suffices.
// Unknown nodes share nothing.
// Complexity: O(deg(a)·deg(b)), with deg ≤ 4 on a grid.
func (g *Graph) SharesEdge(a, b NodeID) bool {
	if !g.HasNode(a) || !g.HasNode(b) {
		return false
	}
	for _, e := range g.adjacency[a] {
		if slices.Contains(g.adjacency[b], e) {
			return true
		}
	}

	return false
}

// Position classifies the role n plays in e. Unknown edges yield PositionNone.
func (g *Graph) Position(e EdgeID, n NodeID) Position {
	if !g.HasEdge(e) {
		return PositionNone
	}
	rec := g.edges[e]
	switch n {
	case rec.From:
		return PositionFrom
	case rec.To:
		return PositionTo
	default:
		return PositionNone
	}
}

// Other returns the endpoint of e opposite to n.
func (g *Graph) Other(e EdgeID, n NodeID) (NodeID, error) {
	if !g.HasEdge(e) {
		return 0, fmt.Errorf("%w: %d", ErrEdgeNotFound, e)
	}
	switch g.Position(e, n) {
	case PositionFrom:
		return g.edges[e].To, nil
	case PositionTo:
		return g.edges[e].From, nil
	default:
		return 0, fmt.Errorf("%w: node %d, edge %d", ErrNotEndpoint, n, e)
	}
}

// HasEdge reports whether e is a registered edge record.
func (g *Graph) HasEdge(e EdgeID) bool {
	return e >= 0 && int(e) < len(g.edges)
}

// Edge returns a copy of the record of e.
func (g *Graph) Edge(e EdgeID) (Edge, error) {
	if !g.HasEdge(e) {
		return Edge{}, fmt.Errorf("%w: %d", ErrEdgeNotFound, e)
	}

	return g.edges[e], nil
}

// Edges returns a copy of every registered record in ascending ID order,
// attached or not.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of registered records.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Attached reports whether e is currently on both endpoints' adjacency lists.
func (g *Graph) Attached(e EdgeID) bool {
	if !g.HasEdge(e) {
		return false
	}
	rec := g.edges[e]

	return slices.Contains(g.adjacency[rec.From], e) && slices.Contains(g.adjacency[rec.To], e)
}

// endpointPair validates n and e and returns the endpoint of e opposite to n.
func (g *Graph) endpointPair(n NodeID, e EdgeID) (NodeID, error) {
	if !g.HasNode(n) {
		return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, n)
	}

	return g.Other(e, n)
}
