package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/ttacon/chalk"
	"github.com/urfave/cli"

	"ranks/internal/agent"
	"ranks/internal/arena"
	"ranks/internal/config"
	"ranks/internal/server"
	"ranks/internal/telemetry"
	"ranks/internal/viewer"
)

// setup loads the config named by the flags and builds a logger for it.
func setup(c *cli.Context, w io.Writer) (*config.Config, *log.Logger, error) {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, nil, err
		}
	}
	if c.IsSet("ticks") {
		cfg.Run.Ticks = c.Int("ticks")
	}
	if lvl := c.String("log"); lvl != "" {
		cfg.LogLevel = lvl
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	logger, err := telemetry.NewLogger(w, cfg.LogLevel, "ranks")
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func interrupted() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func runAction(c *cli.Context) error {
	cfg, logger, err := setup(c, os.Stderr)
	if err != nil {
		return err
	}
	keep := c.BoolT("events")
	events := make([]agent.Event, 0, 256)
	emit := func(ev agent.Event) {
		if keep {
			events = append(events, ev)
		}
	}
	w, err := arena.Build(cfg, logger, emit)
	if err != nil {
		return err
	}

	ctx, stop := interrupted()
	defer stop()
	if err := arena.Run(ctx, w, cfg.Run.Ticks, 0, nil); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	res := w.Result(nil)
	if keep {
		res.Events = events
	}
	out := c.String("out")
	if err := os.WriteFile(out, arena.MarshalPretty(res), 0644); err != nil {
		return errors.Wrap(err, "write result")
	}
	fmt.Printf("Run finished. Ticks=%d, survivors=%v -> %s\n", res.Ticks, res.Survivors, out)
	return nil
}

func serveAction(c *cli.Context) error {
	cfg, logger, err := setup(c, os.Stderr)
	if err != nil {
		return err
	}
	addr := cfg.Server.Addr
	if a := c.String("addr"); a != "" {
		addr = a
	}
	w, err := arena.Build(cfg, logger, nil)
	if err != nil {
		return err
	}

	ctx, stop := interrupted()
	defer stop()
	srv := server.New(addr, logger.WithPrefix("server"))
	served := make(chan error, 1)
	go func() { served <- srv.Serve(ctx) }()

	delay := time.Duration(cfg.Run.TickMS) * time.Millisecond
	err = arena.Run(ctx, w, cfg.Run.Ticks, delay, srv.Publish)
	if err != nil && !errors.Is(err, context.Canceled) {
		stop()
		<-served
		return err
	}
	logger.Info("simulation over, still serving the last frame", "tick", w.Tick, "alive", len(w.Alive()))

	select {
	case <-ctx.Done():
		return <-served
	case err := <-served:
		return err
	}
}

func watchAction(c *cli.Context) error {
	// logs would garble the screen
	cfg, logger, err := setup(c, io.Discard)
	if err != nil {
		return err
	}
	w, err := arena.Build(cfg, logger, nil)
	if err != nil {
		return err
	}
	v, err := viewer.New(c.Bool("sound"), logger)
	if err != nil {
		return errors.Wrap(err, "open terminal")
	}
	defer v.Close()

	ctx, stop := interrupted()
	defer stop()
	frames := make(chan arena.Frame)
	fed := make(chan error, 1)
	delay := time.Duration(cfg.Run.TickMS) * time.Millisecond
	go func() { fed <- feed(ctx, w, cfg.Run.Ticks, delay, frames, logger) }()

	err = v.Run(ctx, frames)
	stop()
	if simErr := <-fed; err == nil && simErr != nil && !errors.Is(simErr, context.Canceled) {
		return simErr
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// feed runs w and hands every frame to frames, which it closes when the run ends.
func feed(ctx context.Context, w *arena.World, ticks int, delay time.Duration, frames chan<- arena.Frame, logger *log.Logger) error {
	defer close(frames)
	err := arena.Run(ctx, w, ticks, delay, func(f arena.Frame) {
		select {
		case frames <- f:
		case <-ctx.Done():
		}
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("simulation stopped", "tick", w.Tick, "err", err)
	}
	return err
}

func routeAction(c *cli.Context) error {
	cfg, _, err := setup(c, os.Stderr)
	if err != nil {
		return err
	}
	for _, td := range cfg.Tanks {
		r, err := td.BuildRoute(cfg.Dir)
		if err != nil {
			return errors.Wrapf(err, "tank %q", td.Name)
		}
		b := r.Bound()
		fmt.Printf("%s  %d waypoints, bound (%g, %g)-(%g, %g)\n",
			chalk.Green.Color(td.Name), r.Len(), b.Min.X(), b.Min.Y(), b.Max.X(), b.Max.Y())
		if td.Note != "" {
			fmt.Printf("  %s\n", chalk.Dim.TextStyle(td.Note))
		}
		for i, p := range r.Points() {
			fmt.Printf("  %2d  %s\n", i, formatPoint(p))
		}
	}
	return nil
}

func formatPoint(p orb.Point) string {
	return fmt.Sprintf("(%g, %g)", p.X(), p.Y())
}
