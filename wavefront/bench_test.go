package wavefront_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/leeroute/grid"
	"github.com/katalvlaran/leeroute/wavefront"
)

// benchGrid is a 200×200 board with 20% of cells blocked on each layer.
func benchGrid(b *testing.B) *grid.Grid {
	r := rand.New(rand.NewSource(42))
	return randomGrid(b, r, 200, 200, 0.2)
}

// BenchmarkRoute_Priority measures a corner-to-corner route with penalties.
func BenchmarkRoute_Priority(b *testing.B) {
	g, _ := grid.New(200, 200)
	src, dst := grid.At(0, 0, 0), grid.At(1, 199, 199)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = wavefront.Route(g, src, dst, wavefront.WithBendPenalty(2), wavefront.WithViaPenalty(3))
	}
}

// BenchmarkRoute_FIFO measures the same route in arrival order.
func BenchmarkRoute_FIFO(b *testing.B) {
	g, _ := grid.New(200, 200)
	src, dst := grid.At(0, 0, 0), grid.At(1, 199, 199)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = wavefront.Route(g, src, dst, wavefront.WithBendPenalty(2), wavefront.WithViaPenalty(3),
			wavefront.WithFrontier(wavefront.FrontierFIFO))
	}
}

// BenchmarkExpand_Obstacles runs on a randomly obstructed board; unreachable
// targets are part of the workload.
func BenchmarkExpand_Obstacles(b *testing.B) {
	g := benchGrid(b)
	src, dst := grid.At(0, 0, 0), grid.At(0, 199, 199)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = wavefront.Expand(g, src, dst, wavefront.WithBendPenalty(1))
	}
}
