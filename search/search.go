// SPDX-License-Identifier: MIT
//
// File: search.go
// Role: frontier-driven traversal from start to goal, parent recording and
//       ancestor-chain reconstruction.

package search

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// walker encapsulates mutable search state.
type walker struct {
	maze     Walkable
	frontier Frontier[Entry]
	opts     Options
	seen     *bitset.BitSet
	parent   map[gridgraph.Point]gridgraph.Point
	res      *Result
}

// DFS searches w depth-first.
func DFS(w Walkable, opts ...Option) (*Result, error) {
	return run(w, NewStack[Entry](), "dfs", opts)
}

// BFS searches w breadth-first.
func BFS(w Walkable, opts ...Option) (*Result, error) {
	return run(w, NewQueue[Entry](), "bfs", opts)
}

// Search walks w from w.Start() to w.Goal(), drawing pending entries from f.
// Entries already in f are popped like any other. A pre-seeded entry's
// parent is kept only if that parent was finalized before the entry itself,
// so the recorded ancestry is always acyclic.
//
// Returns ErrNoPath if the goal is unreachable, gridgraph.ErrOutOfBounds if
// w reports a cell outside itself, or the wrapped error of an OnVisit hook.
func Search(w Walkable, f Frontier[Entry], opts ...Option) (*Result, error) {
	return run(w, f, "custom", opts)
}

func run(w Walkable, f Frontier[Entry], strategy string, opts []Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := w.Len()
	wk := &walker{
		maze:     w,
		frontier: f,
		opts:     o,
		seen:     bitset.New(uint(n)),
		parent:   make(map[gridgraph.Point]gridgraph.Point, n),
		res:      &Result{Visited: make([]gridgraph.Point, 0, n)},
	}
	if err := wk.loop(); err != nil {
		return nil, err
	}
	wk.res.Path = wk.ancestors(w.Goal())

	o.Logger.Debug("search finished",
		zap.String("strategy", strategy),
		zap.Int("visited", len(wk.res.Visited)),
		zap.Int("path", len(wk.res.Path)),
	)

	return wk.res, nil
}

// loop pops entries until the goal is finalized or the frontier runs dry.
func (wk *walker) loop() error {
	goal := wk.maze.Goal()
	wk.frontier.Push(Entry{Cell: wk.maze.Start()})

	for !wk.frontier.Empty() {
		e, err := wk.frontier.Pop()
		if err != nil {
			return err
		}

		if e.Cell == goal {
			return wk.finalize(e, wk.finalized(e))
		}

		idx, err := wk.index(e.Cell)
		if err != nil {
			return err
		}
		if wk.seen.Test(idx) {
			continue
		}
		linked := wk.finalized(e)
		wk.seen.Set(idx)
		if err = wk.finalize(e, linked); err != nil {
			return err
		}

		next, err := wk.maze.ConnectingCells(e.Cell)
		if err != nil {
			return err
		}
		for _, nb := range next {
			wk.frontier.Push(Entry{Cell: nb, Parent: e.Cell, HasParent: true})
		}
	}

	return fmt.Errorf("%w: from %v to %v after %d cells",
		ErrNoPath, wk.maze.Start(), goal, len(wk.res.Visited))
}

// finalized reports whether e carries a parent that is already in the
// seen-set. Entries pushed by the loop always do.
func (wk *walker) finalized(e Entry) bool {
	if !e.HasParent {
		return false
	}
	idx, err := wk.index(e.Parent)

	return err == nil && wk.seen.Test(idx)
}

// finalize records e's parent when linked, appends e to the trace and runs
// the hook.
func (wk *walker) finalize(e Entry, linked bool) error {
	if linked {
		wk.parent[e.Cell] = e.Parent
	}
	wk.res.Visited = append(wk.res.Visited, e.Cell)
	if err := wk.opts.OnVisit(e.Cell); err != nil {
		return fmt.Errorf("search: OnVisit error at %v: %w", e.Cell, err)
	}

	return nil
}

func (wk *walker) index(p gridgraph.Point) (uint, error) {
	if !wk.maze.InBounds(p) {
		return 0, fmt.Errorf("%w: %v", gridgraph.ErrOutOfBounds, p)
	}

	return uint(wk.maze.Index(p)), nil
}

// ancestors walks parent links back from p, excluding p itself.
func (wk *walker) ancestors(p gridgraph.Point) []gridgraph.Point {
	var path []gridgraph.Point
	for cur, ok := wk.parent[p]; ok; cur, ok = wk.parent[cur] {
		path = append(path, cur)
	}

	return path
}
