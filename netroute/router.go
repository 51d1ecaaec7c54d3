package netroute

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/leeroute/grid"
	"github.com/katalvlaran/leeroute/wavefront"
)

// Router routes nets on one grid and owns the Registry of results.
type Router struct {
	grid     *grid.Grid
	opts     Options
	log      *zap.Logger
	registry *Registry
}

// NewRouter returns a Router over g.
// Returns ErrNilGrid, a wrapped wavefront.ErrBadPenalty or ErrBadWorkers
// for invalid input.
func NewRouter(g *grid.Grid, opts ...Option) (*Router, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.BendPenalty < 0 || math.IsNaN(cfg.BendPenalty) || cfg.ViaPenalty < 0 || math.IsNaN(cfg.ViaPenalty) {
		return nil, fmt.Errorf("%w: bend=%v via=%v", wavefront.ErrBadPenalty, cfg.BendPenalty, cfg.ViaPenalty)
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadWorkers, cfg.Workers)
	}

	return &Router{
		grid:     g,
		opts:     cfg,
		log:      cfg.Logger,
		registry: newRegistry(),
	}, nil
}

// Registry returns the routes stored by this Router.
func (rt *Router) Registry() *Registry { return rt.registry }

// Options returns the effective configuration.
func (rt *Router) Options() Options { return rt.opts }

// RouteNet routes the pins of one net in order and stores the result under
// name, replacing any earlier route of that name.
// Returns ErrInvalidNet for fewer than two pins, or an error wrapping
// wavefront.ErrNoPath naming the segment that could not be routed; in both
// cases the Registry is left untouched.
func (rt *Router) RouteNet(name string, pins []grid.Cell) (Route, error) {
	r, err := rt.route(context.Background(), Net{Name: name, Pins: pins})
	if err != nil {
		return Route{}, err
	}
	rt.registry.put(r)

	return r, nil
}

// RouteNets routes every net in nets, at most Options.Workers at a time.
// All nets are attempted; successful routes are stored in input order and
// the failures are returned joined. Cancelling ctx aborts in-flight searches.
func (rt *Router) RouteNets(ctx context.Context, nets []Net) error {
	routes := make([]Route, len(nets))
	errs := make([]error, len(nets))

	var eg errgroup.Group
	eg.SetLimit(rt.opts.Workers)
	for i, n := range nets {
		i, n := i, n
		eg.Go(func() error {
			routes[i], errs[i] = rt.route(ctx, n)
			return nil
		})
	}
	_ = eg.Wait()

	stored := 0
	for i := range nets {
		if errs[i] == nil {
			rt.registry.put(routes[i])
			stored++
		}
	}
	rt.log.Info("batch routed",
		zap.Int("nets", len(nets)),
		zap.Int("stored", stored),
		zap.Int("failed", len(nets)-stored))

	return errors.Join(errs...)
}

// route computes a net without touching the Registry.
func (rt *Router) route(ctx context.Context, n Net) (Route, error) {
	log := rt.log.With(zap.String("net", n.Name))
	if len(n.Pins) < 2 {
		err := fmt.Errorf("%w: net %q has %d pins", ErrInvalidNet, n.Name, len(n.Pins))
		log.Warn("net rejected", zap.Error(err))
		return Route{}, err
	}

	pins := make([]grid.Cell, len(n.Pins))
	for i, p := range n.Pins {
		pins[i] = rt.grid.Clamp(p)
		if pins[i] != p {
			log.Debug("pin clamped", zap.Stringer("from", p), zap.Stringer("to", pins[i]))
		}
	}

	opts := []wavefront.Option{
		wavefront.WithBendPenalty(rt.opts.BendPenalty),
		wavefront.WithViaPenalty(rt.opts.ViaPenalty),
		wavefront.WithFrontier(rt.opts.Frontier),
		wavefront.WithContext(ctx),
	}

	var (
		path  []grid.Cell
		total float64
	)
	err := rt.grid.View(func(r grid.Reader) error {
		for i := 0; i+1 < len(pins); i++ {
			seg, cost, err := wavefront.Route(r, pins[i], pins[i+1], opts...)
			if err != nil {
				return fmt.Errorf("netroute: net %q segment %d %v → %v: %w", n.Name, i, pins[i], pins[i+1], err)
			}
			log.Debug("segment routed",
				zap.Int("segment", i),
				zap.Float64("cost", cost),
				zap.Int("cells", len(seg)))
			if i == 0 {
				path = append(path, seg...)
			} else {
				path = append(path, seg[1:]...)
			}
			total += cost
		}
		return nil
	})
	if err != nil {
		log.Warn("net routing failed", zap.Error(err))
		return Route{}, err
	}

	log.Info("net routed", zap.Float64("cost", total), zap.Int("cells", len(path)))

	return Route{Net: n.Name, Path: path, Cost: total}, nil
}
