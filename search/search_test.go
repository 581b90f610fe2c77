package search_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/search"
)

var zigzagPath = []gridgraph.Point{pt(2, 3), pt(1, 3), pt(1, 2), pt(1, 1), pt(0, 1), pt(0, 0)}

// TestBFS_Zigzag checks the breadth-layer trace and the ancestor chain.
func TestBFS_Zigzag(t *testing.T) {
	res, err := search.BFS(zigzag(t))
	require.NoError(t, err)

	want := []gridgraph.Point{
		pt(0, 0), pt(1, 0), pt(0, 1), pt(2, 0), pt(1, 1), pt(2, 1), pt(1, 2), pt(3, 1),
		pt(1, 3), pt(3, 0), pt(3, 2), pt(0, 3), pt(2, 3), pt(2, 2), pt(0, 2), pt(3, 3),
	}
	require.Equal(t, want, res.Visited)
	require.Equal(t, zigzagPath, res.Path)
}

// TestDFS_Zigzag checks the depth-first trace and that it finds the same path.
func TestDFS_Zigzag(t *testing.T) {
	res, err := search.DFS(zigzag(t))
	require.NoError(t, err)

	want := []gridgraph.Point{pt(0, 0), pt(0, 1), pt(1, 1), pt(1, 2), pt(1, 3), pt(2, 3), pt(3, 3)}
	require.Equal(t, want, res.Visited)
	require.Equal(t, zigzagPath, res.Path)
}

// TestSearch_CustomFrontier verifies that Search with a Queue is BFS.
func TestSearch_CustomFrontier(t *testing.T) {
	gg := zigzag(t)
	viaSearch, err := search.Search(gg, search.NewQueue[search.Entry]())
	require.NoError(t, err)
	viaBFS, err := search.BFS(gg)
	require.NoError(t, err)
	require.Equal(t, viaBFS, viaSearch)
}

// TestSearch_PreseededFrontier verifies that entries already in the frontier
// cannot introduce a cycle into the recorded ancestry.
func TestSearch_PreseededFrontier(t *testing.T) {
	gg, err := gridgraph.New(3, 1)
	require.NoError(t, err)

	tests := []struct {
		name        string
		seed        search.Entry
		wantVisited []gridgraph.Point
		wantPath    []gridgraph.Point
	}{
		{
			name:        "parent not yet finalized",
			seed:        search.Entry{Cell: pt(0, 0), Parent: pt(1, 0), HasParent: true},
			wantVisited: []gridgraph.Point{pt(0, 0), pt(1, 0), pt(2, 0)},
			wantPath:    []gridgraph.Point{pt(1, 0), pt(0, 0)},
		},
		{
			name:        "self parent",
			seed:        search.Entry{Cell: pt(1, 0), Parent: pt(1, 0), HasParent: true},
			wantVisited: []gridgraph.Point{pt(1, 0), pt(0, 0), pt(2, 0)},
			wantPath:    []gridgraph.Point{pt(1, 0)},
		},
		{
			name:        "parent outside grid",
			seed:        search.Entry{Cell: pt(0, 0), Parent: pt(-1, 0), HasParent: true},
			wantVisited: []gridgraph.Point{pt(0, 0), pt(1, 0), pt(2, 0)},
			wantPath:    []gridgraph.Point{pt(1, 0), pt(0, 0)},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := search.NewQueue[search.Entry]()
			q.Push(tc.seed)

			res, err := search.Search(gg, q)
			require.NoError(t, err)
			require.Equal(t, tc.wantVisited, res.Visited)
			require.Equal(t, tc.wantPath, res.Path)
		})
	}
}

// TestResult_TraceRestartable ranges over the trace twice.
func TestResult_TraceRestartable(t *testing.T) {
	res, err := search.BFS(zigzag(t))
	require.NoError(t, err)

	first := slices.Collect(res.Trace())
	second := slices.Collect(res.Trace())
	require.Equal(t, res.Visited, first)
	require.Equal(t, first, second)

	// Early break stops the sequence.
	n := 0
	for range res.Trace() {
		n++
		if n == 3 {
			break
		}
	}
	require.Equal(t, 3, n)
}

// TestResult_Route verifies the start-to-goal route.
func TestResult_Route(t *testing.T) {
	res, err := search.DFS(zigzag(t))
	require.NoError(t, err)
	require.Equal(t,
		[]gridgraph.Point{pt(0, 0), pt(0, 1), pt(1, 1), pt(1, 2), pt(1, 3), pt(2, 3), pt(3, 3)},
		res.Route())
}

// TestSearch_SingleCell: start is goal, the path is empty.
func TestSearch_SingleCell(t *testing.T) {
	gg, err := gridgraph.New(1, 1)
	require.NoError(t, err)

	for name, fn := range map[string]func(search.Walkable, ...search.Option) (*search.Result, error){
		"dfs": search.DFS,
		"bfs": search.BFS,
	} {
		t.Run(name, func(t *testing.T) {
			res, err := fn(gg)
			require.NoError(t, err)
			require.Equal(t, []gridgraph.Point{pt(0, 0)}, res.Visited)
			require.Empty(t, res.Path)
			require.Equal(t, []gridgraph.Point{pt(0, 0)}, res.Route())
		})
	}
}

// TestSearch_NoPath: a grid without edges cannot be solved.
func TestSearch_NoPath(t *testing.T) {
	gg, err := gridgraph.New(2, 2, gridgraph.WithoutEdges())
	require.NoError(t, err)

	_, err = search.BFS(gg)
	require.ErrorIs(t, err, search.ErrNoPath)
	_, err = search.DFS(gg)
	require.ErrorIs(t, err, search.ErrNoPath)
}

// TestSearch_FullLattice: on a grid with cycles both strategies still reach
// the goal and the path is a chain of linked cells.
func TestSearch_FullLattice(t *testing.T) {
	gg, err := gridgraph.New(5, 4)
	require.NoError(t, err)

	for _, fn := range []func(search.Walkable, ...search.Option) (*search.Result, error){search.DFS, search.BFS} {
		res, err := fn(gg)
		require.NoError(t, err)
		route := res.Route()
		require.Equal(t, gg.Start(), route[0])
		require.Equal(t, gg.Goal(), route[len(route)-1])
		for i := 1; i < len(route); i++ {
			linked, err := gg.IsLinked(route[i-1], route[i])
			require.NoError(t, err)
			assert.True(t, linked, "%v-%v", route[i-1], route[i])
		}
	}
}

// TestSearch_BFSShortestOnLattice: BFS on an open lattice takes a Manhattan
// shortest route.
func TestSearch_BFSShortestOnLattice(t *testing.T) {
	gg, err := gridgraph.New(5, 4)
	require.NoError(t, err)
	res, err := search.BFS(gg)
	require.NoError(t, err)
	require.Len(t, res.Path, 4+3)
}

// TestWithOnVisit replays the trace through the hook and aborts on error.
func TestWithOnVisit(t *testing.T) {
	gg := zigzag(t)

	var seen []gridgraph.Point
	res, err := search.BFS(gg, search.WithOnVisit(func(p gridgraph.Point) error {
		seen = append(seen, p)
		return nil
	}))
	require.NoError(t, err)
	require.Equal(t, res.Visited, seen)

	stop := errors.New("stop")
	calls := 0
	_, err = search.DFS(gg, search.WithOnVisit(func(gridgraph.Point) error {
		calls++
		if calls == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	require.Equal(t, 2, calls)
}

// badWalk reports a neighbour outside the grid.
type badWalk struct{ *gridgraph.Grid }

func (b badWalk) ConnectingCells(gridgraph.Point) ([]gridgraph.Point, error) {
	return []gridgraph.Point{pt(9, 9)}, nil
}

// TestSearch_OutOfBoundsNeighbour rejects cells outside the walkable.
func TestSearch_OutOfBoundsNeighbour(t *testing.T) {
	gg, err := gridgraph.New(2, 2)
	require.NoError(t, err)
	_, err = search.BFS(badWalk{gg})
	require.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}

// aliasWalk adds (2,0) to the neighbours of (0,0) on a 2-wide grid. Its
// row-major index collides with (0,1).
type aliasWalk struct{ *gridgraph.Grid }

func (a aliasWalk) ConnectingCells(p gridgraph.Point) ([]gridgraph.Point, error) {
	next, err := a.Grid.ConnectingCells(p)
	if err != nil || p != pt(0, 0) {
		return next, err
	}

	return append(next, pt(2, 0)), nil
}

// TestSearch_AliasedIndexNeighbour rejects a point outside the grid even when
// its index falls inside it.
func TestSearch_AliasedIndexNeighbour(t *testing.T) {
	gg, err := gridgraph.New(2, 2)
	require.NoError(t, err)
	require.Equal(t, gg.Index(pt(0, 1)), gg.Index(pt(2, 0)))

	_, err = search.BFS(aliasWalk{gg})
	require.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}

// TestSearch_Logs verifies the summary entry.
func TestSearch_Logs(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	_, err := search.DFS(zigzag(t), search.WithLogger(zap.New(obsCore)))
	require.NoError(t, err)

	entries := logs.FilterMessage("search finished").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "dfs", fields["strategy"])
	require.EqualValues(t, 7, fields["visited"])
	require.EqualValues(t, 6, fields["path"])
}
