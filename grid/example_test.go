package grid_test

import (
	"fmt"

	"github.com/katalvlaran/leeroute/grid"
)

// ExampleGrid_MarkObstacle shows that obstacle marks are per layer and that
// off-grid marks are ignored.
func ExampleGrid_MarkObstacle() {
	g, _ := grid.New(4, 3)
	g.MarkObstacle(grid.Layer0, 1, 1)
	g.MarkObstacle(grid.Layer0, 9, 9) // ignored

	fmt.Println(g.IsPassable(grid.At(grid.Layer0, 1, 1)))
	fmt.Println(g.IsPassable(grid.At(grid.Layer1, 1, 1)))
	fmt.Println(g.ObstacleCount())

	// Output:
	// false
	// true
	// 1
}

// ExampleGrid_Clamp pulls an off-grid pin back onto the board.
func ExampleGrid_Clamp() {
	g, _ := grid.New(14, 14)
	fmt.Println(g.Clamp(grid.At(0, 20, -4)))

	// Output: (0,13,0)
}
