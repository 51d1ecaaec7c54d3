// Command leeroute routes every net of a board description and writes the
// routed paths to a report file.
//
//	leeroute -in board.txt [-out routes.txt] [-config leeroute.yaml]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/katalvlaran/leeroute/internal/config"
	"github.com/katalvlaran/leeroute/internal/logger"
	"github.com/katalvlaran/leeroute/netlist"
	"github.com/katalvlaran/leeroute/netroute"
	"github.com/katalvlaran/leeroute/report"
	"github.com/katalvlaran/leeroute/wavefront"
)

// errNetsFailed marks a run where the report was written but some nets could
// not be routed.
var errNetsFailed = errors.New("leeroute: some nets failed to route")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		if !errors.Is(err, errNetsFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("leeroute", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "optional config file (yaml, json or toml)")
	in := fs.String("in", "", "board description to route (required)")
	out := fs.String("out", "", "report path; overrides the configured output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		fs.Usage()
		return errors.New("leeroute: -in is required")
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *out != "" {
		cfg.Output = *out
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	design, err := netlist.ParseFile(*in)
	if err != nil {
		return err
	}
	g, err := design.Grid()
	if err != nil {
		return err
	}

	bend, via := design.BendPenalty, design.ViaPenalty
	if cfg.BendPenalty != nil {
		bend = *cfg.BendPenalty
	}
	if cfg.ViaPenalty != nil {
		via = *cfg.ViaPenalty
	}
	frontier, err := wavefront.ParseFrontier(cfg.Frontier)
	if err != nil {
		return err
	}

	log.Info("design loaded",
		zap.String("input", *in),
		zap.Int("width", design.Width),
		zap.Int("height", design.Height),
		zap.Int("obstacles", g.ObstacleCount()),
		zap.Int("nets", len(design.Nets)),
		zap.Float64("bend_penalty", bend),
		zap.Float64("via_penalty", via),
		zap.Stringer("frontier", frontier),
	)

	rt, err := netroute.NewRouter(g,
		netroute.WithPenalties(bend, via),
		netroute.WithFrontier(frontier),
		netroute.WithWorkers(cfg.Workers),
		netroute.WithLogger(log),
	)
	if err != nil {
		return err
	}

	routeErr := rt.RouteNets(ctx, design.Nets)

	routes := rt.Registry().Routes()
	if err := report.WriteFile(cfg.Output, routes); err != nil {
		return err
	}
	log.Info("report written", zap.String("output", cfg.Output), zap.Int("routed", len(routes)))

	if routeErr != nil {
		log.Error("routing incomplete",
			zap.Int("failed", len(design.Nets)-len(routes)),
			zap.Error(routeErr),
		)
		return fmt.Errorf("%w: %w", errNetsFailed, routeErr)
	}

	return nil
}
