// SPDX-License-Identifier: MIT
//
// File: disjointset.go
// Role: union-find environment (Find/Same/Union/IsComplete) and the Kruskal
//       pass that accepts spanning-tree edges and detaches the rest.

package disjointset

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvmaze/core"
)

// DisjointSet tracks connected components over a node set and owns the sorted
// edge worklist for one Kruskal pass. It holds the graph only for the duration
// of that pass; build a fresh one per maze.
type DisjointSet struct {
	graph    *core.Graph
	env      map[core.NodeID]core.NodeID
	worklist []core.Edge
	accepted []core.EdgeID
	opts     Options
}

// New creates a DisjointSet in which every node of nodes is its own root, and
// stable-sorts worklist ascending by weight.
//
// Returns core.ErrEdgeNotFound if a worklist edge is unknown to g.
// Complexity: O(V + E log E).
func New(g *core.Graph, nodes []core.NodeID, worklist []core.EdgeID, opts ...Option) (*DisjointSet, error) {
	env := make(map[core.NodeID]core.NodeID, len(nodes))
	for _, n := range nodes {
		env[n] = n
	}

	return build(g, env, worklist, opts)
}

// NewFromEnv creates a DisjointSet from a caller-supplied parent environment.
// The map is copied. Parent pointers are not validated here; a looping
// environment surfaces as ErrCycle on the first Find that walks into it.
func NewFromEnv(g *core.Graph, env map[core.NodeID]core.NodeID, worklist []core.EdgeID, opts ...Option) (*DisjointSet, error) {
	own := make(map[core.NodeID]core.NodeID, len(env))
	for k, v := range env {
		own[k] = v
	}

	return build(g, own, worklist, opts)
}

func build(g *core.Graph, env map[core.NodeID]core.NodeID, worklist []core.EdgeID, opts []Option) (*DisjointSet, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	edges := make([]core.Edge, 0, len(worklist))
	for _, id := range worklist {
		e, err := g.Edge(id)
		if err != nil {
			return nil, fmt.Errorf("disjointset: worklist: %w", err)
		}
		edges = append(edges, e)
	}
	// Stable: equal weights keep discovery order, so the earliest edge wins ties.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	return &DisjointSet{
		graph:    g,
		env:      env,
		worklist: edges,
		accepted: make([]core.EdgeID, 0, len(env)),
		opts:     o,
	}, nil
}

// Rep returns n's direct parent entry, or false if n is not in the environment.
func (ds *DisjointSet) Rep(n core.NodeID) (core.NodeID, bool) {
	p, ok := ds.env[n]

	return p, ok
}

// Find returns the root of n's component by following parent pointers.
//
// Errors: ErrUnknownNode if n or any node on the chain has no entry,
// ErrCycle if the chain is longer than the environment.
// Complexity: O(chain length).
func (ds *DisjointSet) Find(n core.NodeID) (core.NodeID, error) {
	cur := n
	for hops := 0; ; hops++ {
		p, ok := ds.env[cur]
		if !ok {
			return 0, fmt.Errorf("%w: %d", ErrUnknownNode, cur)
		}
		if p == cur {
			break
		}
		if hops >= len(ds.env) {
			return 0, fmt.Errorf("%w: starting at node %d", ErrCycle, n)
		}
		cur = p
	}

	if ds.opts.PathCompression {
		root := cur
		for x := n; x != root; {
			next := ds.env[x]
			ds.env[x] = root
			x = next
		}
	}

	return cur, nil
}

// Same reports whether a and b share a root.
func (ds *DisjointSet) Same(a, b core.NodeID) (bool, error) {
	ra, err := ds.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := ds.Find(b)
	if err != nil {
		return false, err
	}

	return ra == rb, nil
}

// Union merges the components of e's endpoints: the root of e.From is
// re-parented under the root of e.To.
func (ds *DisjointSet) Union(e core.EdgeID) error {
	rec, err := ds.graph.Edge(e)
	if err != nil {
		return err
	}

	return ds.union(rec)
}

func (ds *DisjointSet) union(e core.Edge) error {
	from, err := ds.Find(e.From)
	if err != nil {
		return err
	}
	to, err := ds.Find(e.To)
	if err != nil {
		return err
	}
	ds.env[from] = to

	return nil
}

// Kruskal drains the worklist from the front. An edge joining two components
// is accepted and unioned; any other edge is detached from both endpoints in
// the graph. Returns the accepted edges in acceptance order.
//
// Steps:
//  1. Pop the lowest-weight remaining edge.
//  2. If its endpoints are in different components: accept, Union.
//  3. Otherwise: RemoveEdge(from, e, notifyOther=true).
//  4. Repeat until the worklist is empty.
//
// On error the pass stops; edges already processed stay processed.
// Complexity: O(E · chain length).
func (ds *DisjointSet) Kruskal() ([]core.EdgeID, error) {
	rejected := 0
	for len(ds.worklist) > 0 {
		cheapest := ds.worklist[0]
		ds.worklist = ds.worklist[1:]

		same, err := ds.Same(cheapest.From, cheapest.To)
		if err != nil {
			return nil, fmt.Errorf("disjointset: edge %d: %w", cheapest.ID, err)
		}
		if !same {
			ds.accepted = append(ds.accepted, cheapest.ID)
			if err = ds.union(cheapest); err != nil {
				return nil, fmt.Errorf("disjointset: edge %d: %w", cheapest.ID, err)
			}
			continue
		}
		if err = ds.graph.RemoveEdge(cheapest.From, cheapest.ID, true); err != nil {
			return nil, fmt.Errorf("disjointset: detach edge %d: %w", cheapest.ID, err)
		}
		rejected++
	}

	ds.opts.Logger.Debug("kruskal finished",
		zap.Int("nodes", len(ds.env)),
		zap.Int("accepted", len(ds.accepted)),
		zap.Int("rejected", rejected),
	)

	return ds.Accepted(), nil
}

// Accepted returns a copy of the edges accepted so far.
func (ds *DisjointSet) Accepted() []core.EdgeID {
	out := make([]core.EdgeID, len(ds.accepted))
	copy(out, ds.accepted)

	return out
}

// Pending returns the number of edges still on the worklist.
func (ds *DisjointSet) Pending() int {
	return len(ds.worklist)
}

// IsComplete reports whether every node in the environment shares one root.
// An empty environment is trivially complete.
// Complexity: O(V · chain length).
func (ds *DisjointSet) IsComplete() (bool, error) {
	var (
		first core.NodeID
		seen  bool
	)
	for n := range ds.env {
		root, err := ds.Find(n)
		if err != nil {
			return false, err
		}
		if !seen {
			first, seen = root, true
			continue
		}
		if root != first {
			return false, nil
		}
	}

	return true, nil
}
