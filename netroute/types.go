package netroute

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/leeroute/grid"
	"github.com/katalvlaran/leeroute/wavefront"
)

// Net is a named, ordered list of pins to connect.
type Net struct {
	Name string
	Pins []grid.Cell
}

// Route is a routed net: the full cell path from the first pin to the last
// and its total cost.
type Route struct {
	Net  string
	Path []grid.Cell
	Cost float64
}

// Clone returns a copy of r that shares no memory with it.
func (r Route) Clone() Route {
	r.Path = append([]grid.Cell(nil), r.Path...)
	return r
}

// Options configures a Router.
type Options struct {
	BendPenalty float64
	ViaPenalty  float64
	Frontier    wavefront.Frontier
	Workers     int // parallelism of RouteNets
	Logger      *zap.Logger
}

// Option represents a functional option for configuring NewRouter.
type Option func(*Options)

// WithPenalties sets the bend and via penalties.
func WithPenalties(bend, via float64) Option {
	return func(o *Options) {
		o.BendPenalty = bend
		o.ViaPenalty = via
	}
}

// WithFrontier selects the wavefront expansion order.
func WithFrontier(f wavefront.Frontier) Option {
	return func(o *Options) {
		o.Frontier = f
	}
}

// WithWorkers bounds how many nets RouteNets routes at once.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns zero penalties, the priority frontier,
// GOMAXPROCS workers and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Frontier: wavefront.FrontierPriority,
		Workers:  runtime.GOMAXPROCS(0),
		Logger:   zap.NewNop(),
	}
}
