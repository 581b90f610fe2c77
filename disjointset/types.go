// Package disjointset defines configuration options and sentinel errors for
// the union-find environment and its Kruskal pass.
package disjointset

import (
	"errors"

	"go.uber.org/zap"
)

// ErrUnknownNode indicates a node that has no entry in the environment.
var ErrUnknownNode = errors.New("disjointset: node not in environment")

// ErrCycle indicates that following parent pointers never reached a root.
// Only a malformed, externally supplied environment can produce it.
var ErrCycle = errors.New("disjointset: parent pointers form a cycle")

// Options configures a DisjointSet.
type Options struct {
	// PathCompression re-points every node on a Find walk directly at the root.
	// It never changes which root is found.
	PathCompression bool

	// Logger receives a Debug entry when Kruskal finishes.
	Logger *zap.Logger
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options without path compression and with a no-op
// logger.
func DefaultOptions() Options {
	return Options{
		PathCompression: false,
		Logger:          zap.NewNop(),
	}
}

// WithPathCompression enables path compression in Find.
func WithPathCompression() Option {
	return func(o *Options) {
		o.PathCompression = true
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
