package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// pt is shorthand for a grid point.
func pt(x, y int) gridgraph.Point { return gridgraph.Point{X: x, Y: y} }

// zigzag builds a 4×4 perfect maze by hand. Cells a..p are laid out
// row-major:
//
//	a─b─c d
//	│   │ │
//	e─f g─h
//	  │   │
//	i j k─l
//	│ │
//	m─n─o─p
func zigzag(t testing.TB) *gridgraph.Grid {
	t.Helper()
	gg, err := gridgraph.New(4, 4, gridgraph.WithoutEdges())
	require.NoError(t, err)

	links := [][2]gridgraph.Point{
		{pt(0, 0), pt(1, 0)}, // ab
		{pt(0, 0), pt(0, 1)}, // ae
		{pt(1, 0), pt(2, 0)}, // bc
		{pt(0, 1), pt(1, 1)}, // ef
		{pt(2, 0), pt(2, 1)}, // cg
		{pt(1, 1), pt(1, 2)}, // fj
		{pt(2, 1), pt(3, 1)}, // gh
		{pt(1, 2), pt(1, 3)}, // jn
		{pt(3, 1), pt(3, 0)}, // hd
		{pt(3, 1), pt(3, 2)}, // hl
		{pt(3, 2), pt(2, 2)}, // lk
		{pt(1, 3), pt(0, 3)}, // nm
		{pt(1, 3), pt(2, 3)}, // no
		{pt(0, 3), pt(0, 2)}, // mi
		{pt(2, 3), pt(3, 3)}, // op
	}
	for _, l := range links {
		_, err = gg.Link(l[0], l[1], 1)
		require.NoError(t, err)
	}

	return gg
}
