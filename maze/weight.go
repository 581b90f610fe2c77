package maze

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// newOptions applies opts over DefaultOptions and resolves a missing RNG to a
// time-seeded source.
func newOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return o
}

// multipliers returns the weight multipliers for horizontal and vertical edges.
func (b Bias) multipliers() (horizontal, vertical float64) {
	switch b {
	case BiasVertical:
		return BiasFactor, 1
	case BiasHorizontal:
		return 1, BiasFactor
	default:
		return 1, 1
	}
}

// weightFunc draws lattice weights from rng according to b.
// Every result lies in [201·m, 402·m) and is therefore positive.
func weightFunc(b Bias, rng *rand.Rand) gridgraph.WeightFunc {
	horizontal, vertical := b.multipliers()

	return func(a gridgraph.Axis) int64 {
		m := horizontal
		if a == gridgraph.AxisVertical {
			m = vertical
		}

		return int64((rng.Float64() + 1) * weightBase * m)
	}
}
