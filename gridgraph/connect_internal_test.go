package gridgraph

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/core"
)

// TestConnect_ErrorClassification verifies that only weight failures are
// reported as ErrBadWeight; other graph errors pass through unchanged.
func TestConnect_ErrorClassification(t *testing.T) {
	gg, err := New(2, 1, WithoutEdges())
	require.NoError(t, err)

	err = gg.connect(0, 1, 0)
	require.ErrorIs(t, err, ErrBadWeight)
	require.ErrorIs(t, err, core.ErrBadWeight)

	err = gg.connect(0, 0, 1)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
	require.NotErrorIs(t, err, ErrBadWeight)

	err = gg.connect(0, 7, 1)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
	require.NotErrorIs(t, err, ErrBadWeight)

	require.Empty(t, gg.Candidates())
}
