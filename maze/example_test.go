// File: maze/example_test.go
package maze_test

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/maze"
)

// ExampleNew builds a seeded maze and solves it both ways.
func ExampleNew() {
	m, err := maze.New(8, 5, maze.WithSeed(2024))
	if err != nil {
		fmt.Println(err)
		return
	}

	dfs, _ := m.DFS()
	bfs, _ := m.BFS()
	fmt.Println("passages:", len(m.Edges()))
	fmt.Println("same path:", fmt.Sprint(dfs.Path) == fmt.Sprint(bfs.Path))
	fmt.Println("route starts at", dfs.Route()[0], "and ends at", dfs.Route()[len(dfs.Route())-1])

	// Output:
	// passages: 39
	// same path: true
	// route starts at (0,0) and ends at (7,4)
}

// ExampleNew_bias shows that a vertical bias keeps every vertical passage.
func ExampleNew_bias() {
	m, _ := maze.New(4, 3, maze.WithSeed(1), maze.WithBias(maze.BiasVertical))

	vertical := 0
	for _, e := range m.Edges() {
		if m.Grid().Coordinate(int(e.From)).X == m.Grid().Coordinate(int(e.To)).X {
			vertical++
		}
	}
	fmt.Println(m.Bias(), "passages:", vertical, "of", len(m.Edges()))

	// Output:
	// vertical passages: 8 of 11
}

// ExampleParseBias maps a key press to a bias.
func ExampleParseBias() {
	b, _ := maze.ParseBias("h")
	fmt.Println(b)

	_, err := maze.ParseBias("x")
	fmt.Println(err)

	// Output:
	// horizontal
	// maze: unknown bias: "x"
}
