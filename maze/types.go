// Package maze defines configuration, bias modes and sentinel errors for
// maze construction.
package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

var (
	// ErrInvalidDimension indicates a width or height below 1.
	ErrInvalidDimension = gridgraph.ErrInvalidDimension

	// ErrOutOfBounds indicates a coordinate outside the maze.
	ErrOutOfBounds = gridgraph.ErrOutOfBounds

	// ErrUnknownBias is returned by ParseBias for an unrecognised name.
	ErrUnknownBias = errors.New("maze: unknown bias")
)

// Point is a maze coordinate.
type Point = gridgraph.Point

// BiasFactor multiplies the weights of the disfavoured axis.
const BiasFactor = 5

// weightBase scales the random draw: weights fall in [weightBase, 2·weightBase).
const weightBase = 201

// Bias steers the corridor direction of generated mazes.
type Bias int

const (
	// BiasNone weighs both axes alike.
	BiasNone Bias = iota
	// BiasVertical favours vertical corridors.
	BiasVertical
	// BiasHorizontal favours horizontal corridors.
	BiasHorizontal
)

// String implements fmt.Stringer.
func (b Bias) String() string {
	switch b {
	case BiasVertical:
		return "vertical"
	case BiasHorizontal:
		return "horizontal"
	default:
		return "none"
	}
}

// ParseBias maps a name to a Bias. Accepted (case-insensitive): "", "none",
// "v", "vertical", "h", "horizontal".
func ParseBias(s string) (Bias, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return BiasNone, nil
	case "v", "vertical":
		return BiasVertical, nil
	case "h", "horizontal":
		return BiasHorizontal, nil
	}

	return BiasNone, fmt.Errorf("%w: %q", ErrUnknownBias, s)
}

// Options configures maze construction.
type Options struct {
	// Bias selects the corridor direction.
	Bias Bias
	// Rand drives edge weights. Nil means a fresh time-seeded source.
	Rand *rand.Rand
	// Logger receives Debug entries from construction and searches.
	Logger *zap.Logger
}

// Option configures Options. Options apply in order; the last one wins.
type Option func(*Options)

// DefaultOptions returns an unbiased configuration with no RNG yet and a
// no-op logger.
func DefaultOptions() Options {
	return Options{
		Bias:   BiasNone,
		Rand:   nil,
		Logger: zap.NewNop(),
	}
}

// WithBias sets the corridor bias.
func WithBias(b Bias) Option {
	return func(o *Options) {
		o.Bias = b
	}
}

// WithSeed uses a deterministic source seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r for edge weights. The maze consumes r during New; do not
// share it across goroutines. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
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
