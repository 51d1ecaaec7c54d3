package wavefront_test

import (
	"fmt"

	"github.com/katalvlaran/leeroute/grid"
	"github.com/katalvlaran/leeroute/wavefront"
)

// ExampleRoute routes along an open row of a 5×5 board.
// Scenario:
//
//   - bend penalty 1, via penalty 0, no obstacles
//   - source (0,0,0), target (0,4,0)
//
// Expected: a straight run of five cells with cost 4.
func ExampleRoute() {
	g, _ := grid.New(5, 5)
	path, cost, err := wavefront.Route(g, grid.At(0, 0, 0), grid.At(0, 4, 0),
		wavefront.WithBendPenalty(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("cost=%.2f path=%v\n", cost, path)

	// Output: cost=4.00 path=[(0,0,0) (0,1,0) (0,2,0) (0,3,0) (0,4,0)]
}

// ExampleExpand shows the cost field left behind by an expansion that has to
// drop to the other layer to pass a wall.
func ExampleExpand() {
	g, _ := grid.New(3, 1)
	g.MarkObstacle(grid.Layer0, 1, 0)

	src, dst := grid.At(0, 0, 0), grid.At(0, 2, 0)
	f, err := wavefront.Expand(g, src, dst, wavefront.WithViaPenalty(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, c := range []grid.Cell{grid.At(1, 0, 0), grid.At(1, 1, 0), grid.At(1, 2, 0), dst} {
		fmt.Printf("%v cost=%.0f via=%s\n", c, f.Cost(c), f.Direction(c))
	}

	// Output:
	// (1,0,0) cost=3 via=up
	// (1,1,0) cost=4 via=east
	// (1,2,0) cost=5 via=east
	// (0,2,0) cost=8 via=down
}
