package wavefront

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/leeroute/grid"
)

// Direction is the index of a move in the fixed scan order.
type Direction int

// None marks the source cell, which was not entered by any move.
const None Direction = -1

const (
	East  Direction = iota // +x
	West                   // -x
	South                  // +y
	North                  // -y
	Up                     // +layer
	Down                   // -layer
)

// numDirections is the size of the move table.
const numDirections = 6

var moves = [numDirections]struct{ dx, dy, dl int }{
	East:  {1, 0, 0},
	West:  {-1, 0, 0},
	South: {0, 1, 0},
	North: {0, -1, 0},
	Up:    {0, 0, 1},
	Down:  {0, 0, -1},
}

var directionNames = [numDirections]string{"east", "west", "south", "north", "up", "down"}

// String returns the lower-case direction name, or "none".
func (d Direction) String() string {
	if d < 0 || d >= numDirections {
		return "none"
	}
	return directionNames[d]
}

// IsVia reports whether d changes layer.
func (d Direction) IsVia() bool { return d == Up || d == Down }

// Step returns the cell reached from c by moving in direction d.
func (d Direction) Step(c grid.Cell) grid.Cell {
	m := moves[d]
	return grid.Cell{Layer: c.Layer + grid.Layer(m.dl), X: c.X + m.dx, Y: c.Y + m.dy}
}

// Back returns the cell from which a move in direction d reaches c.
func (d Direction) Back(c grid.Cell) grid.Cell {
	m := moves[d]
	return grid.Cell{Layer: c.Layer - grid.Layer(m.dl), X: c.X - m.dx, Y: c.Y - m.dy}
}

// axis groups directions for bend detection. Vias and None have no axis.
type axis int

const (
	axisNone axis = iota
	axisX
	axisY
	numAxes
)

func (d Direction) axis() axis {
	switch d {
	case East, West:
		return axisX
	case South, North:
		return axisY
	default:
		return axisNone
	}
}

// Frontier selects the order in which the expansion processes cells.
type Frontier int

const (
	// FrontierPriority processes states in increasing cost order.
	FrontierPriority Frontier = iota
	// FrontierFIFO processes cells in arrival order.
	FrontierFIFO
)

// String returns "priority" or "fifo".
func (f Frontier) String() string {
	switch f {
	case FrontierPriority:
		return "priority"
	case FrontierFIFO:
		return "fifo"
	default:
		return fmt.Sprintf("Frontier(%d)", int(f))
	}
}

// ParseFrontier maps "priority" or "fifo" (case-insensitive) to a Frontier.
func ParseFrontier(s string) (Frontier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "priority", "":
		return FrontierPriority, nil
	case "fifo":
		return FrontierFIFO, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFrontier, s)
	}
}

// Options configures Expand and Route.
//
// BendPenalty – added to an in-plane move perpendicular to the move that
// entered the current cell. Must be ≥ 0.
// ViaPenalty  – added to the unit cost of every layer change. Must be ≥ 0.
// Frontier    – expansion order; FrontierPriority by default.
// Ctx         – checked periodically during expansion; Background by default.
type Options struct {
	BendPenalty float64
	ViaPenalty  float64
	Frontier    Frontier
	Ctx         context.Context
}

// Option represents a functional option for configuring Expand.
type Option func(*Options)

// WithBendPenalty sets the cost added per direction change.
func WithBendPenalty(p float64) Option {
	return func(o *Options) {
		o.BendPenalty = p
	}
}

// WithViaPenalty sets the cost added per layer change.
func WithViaPenalty(p float64) Option {
	return func(o *Options) {
		o.ViaPenalty = p
	}
}

// WithFrontier selects the expansion order.
func WithFrontier(f Frontier) Option {
	return func(o *Options) {
		o.Frontier = f
	}
}

// WithContext lets a caller abandon a long expansion.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions returns zero penalties, FrontierPriority and a background context.
func DefaultOptions() Options {
	return Options{
		BendPenalty: 0,
		ViaPenalty:  0,
		Frontier:    FrontierPriority,
		Ctx:         context.Background(),
	}
}

func (o Options) validate() error {
	if o.BendPenalty < 0 || math.IsNaN(o.BendPenalty) {
		return fmt.Errorf("%w: bend penalty %v", ErrBadPenalty, o.BendPenalty)
	}
	if o.ViaPenalty < 0 || math.IsNaN(o.ViaPenalty) {
		return fmt.Errorf("%w: via penalty %v", ErrBadPenalty, o.ViaPenalty)
	}
	if o.Frontier != FrontierPriority && o.Frontier != FrontierFIFO {
		return fmt.Errorf("%w: %v", ErrUnknownFrontier, o.Frontier)
	}

	return nil
}

// stepCost prices a move in direction next out of a cell entered by prev.
func (o Options) stepCost(prev, next Direction) float64 {
	if next.IsVia() {
		return 1 + o.ViaPenalty
	}
	if pa := prev.axis(); pa != axisNone && pa != next.axis() {
		return 1 + o.BendPenalty
	}

	return 1
}
