// Package search defines the frontier abstraction, results, options and
// sentinel errors for maze traversal.
package search

import (
	"errors"
	"iter"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

var (
	// ErrEmptyFrontier is returned by Pop on an empty frontier.
	ErrEmptyFrontier = errors.New("search: pop from empty frontier")

	// ErrNoPath is returned when the frontier empties before the goal is
	// reached. On a perfect maze it means the maze is broken.
	ErrNoPath = errors.New("search: goal unreachable")
)

// Walkable is the view of a grid the engine needs. *gridgraph.Grid
// implements it.
type Walkable interface {
	Start() gridgraph.Point
	Goal() gridgraph.Point
	Len() int
	InBounds(p gridgraph.Point) bool
	Index(p gridgraph.Point) int
	ConnectingCells(p gridgraph.Point) ([]gridgraph.Point, error)
}

// Entry is one frontier item: a cell and the cell it was discovered from.
// HasParent is false only for the start entry.
type Entry struct {
	Cell      gridgraph.Point
	Parent    gridgraph.Point
	HasParent bool
}

// Result holds the outcome of a search:
//   - Visited: cells in the order they were finalized, goal last.
//   - Path:    goal's ancestors, nearest first, ending at start.
type Result struct {
	Visited []gridgraph.Point
	Path    []gridgraph.Point
}

// Trace returns the visitation order as a sequence. It can be ranged over
// any number of times.
func (r *Result) Trace() iter.Seq[gridgraph.Point] {
	return slices.Values(r.Visited)
}

// Route returns the full route from start to goal, both included.
func (r *Result) Route() []gridgraph.Point {
	route := make([]gridgraph.Point, 0, len(r.Path)+1)
	for i := len(r.Path) - 1; i >= 0; i-- {
		route = append(route, r.Path[i])
	}
	if n := len(r.Visited); n > 0 {
		route = append(route, r.Visited[n-1])
	}

	return route
}

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds hooks and the logger for a search.
type Options struct {
	// OnVisit is called for every finalized cell, goal included, in trace
	// order. A non-nil error aborts the search and is returned wrapped.
	OnVisit func(p gridgraph.Point) error

	// Logger receives a Debug entry when a search finishes.
	Logger *zap.Logger
}

// DefaultOptions returns Options with a no-op hook and a no-op logger.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(gridgraph.Point) error { return nil },
		Logger:  zap.NewNop(),
	}
}

// WithOnVisit registers a per-cell visit hook.
func WithOnVisit(fn func(p gridgraph.Point) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
