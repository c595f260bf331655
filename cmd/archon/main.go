package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/archon/arena"
	"github.com/lixenwraith/archon/config"
	"github.com/lixenwraith/archon/input"
	"github.com/lixenwraith/archon/render"
	"github.com/lixenwraith/archon/status"
)

var (
	configFlag = flag.String("config", "", "Path to config file (default: ./archon.toml if present)")
	debugFlag  = flag.Bool("debug", false, "Enable debug logging to the log directory")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 derives one from the clock")
	colorFlag  = flag.String("color", "", "Color mode: auto, truecolor, 256 (overrides config)")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadAuto(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *debugFlag {
		cfg.Log.Enabled = true
		cfg.Log.Level = "debug"
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *colorFlag != "" {
		cfg.ColorMode = *colorFlag
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	logger, closer, err := setupLogging(cfg.Log.Enabled, cfg.Log.Dir, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	if closer != nil {
		defer closer.Close()
	}

	if err := run(cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger zerolog.Logger) error {
	mode := render.ParseColorMode(cfg.ColorMode)
	screen, err := openScreen(mode, os.Setenv, tcell.NewScreen)
	if err != nil {
		return err
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	defer crashGuard(screen, "ARCHON", os.Stderr, os.Exit)
	defer screen.Fini()

	metrics := status.NewRegistry()
	session := arena.NewSession(arena.Options{
		Seed:      cfg.Seed,
		Logger:    &logger,
		SessionID: uuid.NewString(),
		Metrics:   metrics,
	})
	renderer := render.NewRenderer(screen, mode)
	collector := input.NewCollector(cfg.HoldWindow(), renderer.Viewport().PointerMapper())

	logger.Info().
		Str("session", session.ID()).
		Uint64("seed", cfg.Seed).
		Int("frame_rate", cfg.FrameRate).
		Msg("archon start")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	events := make(chan tcell.Event, 256)
	g.Go(func() error {
		defer crashGuard(screen, "EVENT POLLER", os.Stderr, os.Exit)
		return pollEvents(ctx, screen, events, metrics.Counter("host.input_events"))
	})

	g.Go(func() error {
		defer crashGuard(screen, "GAME LOOP", os.Stderr, os.Exit)
		defer cancel()
		return frameLoop(ctx, cfg.FrameInterval(), screen, session, renderer, collector, events, metrics)
	})

	err = g.Wait()
	logger.Info().Err(err).Object("metrics", metrics).Msg("archon exit")
	return err
}

// openScreen applies the color mode environment, then creates and initializes the screen
func openScreen(mode render.ColorMode, setenv func(key, value string) error, newScreen func() (tcell.Screen, error)) (tcell.Screen, error) {
	if err := mode.ApplyEnv(setenv); err != nil {
		return nil, errors.Wrap(err, "failed to apply color mode")
	}
	screen, err := newScreen()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize terminal")
	}
	return screen, nil
}

// crashGuard restores the terminal and reports a panic of the calling goroutine
// Each goroutine defers its own guard; recover only sees panics of its own stack
func crashGuard(screen tcell.Screen, name string, w io.Writer, exit func(int)) {
	r := recover()
	if r == nil {
		return
	}
	screen.Fini()
	// \r\n for raw mode compatibility
	fmt.Fprintf(w, "\r\n\x1b[31m%s CRASHED: %v\x1b[0m\r\n", name, r)
	fmt.Fprintf(w, "Stack Trace:\r\n%s\r\n", debug.Stack())
	exit(1)
}

// pollEvents forwards terminal events until the screen closes or ctx ends
func pollEvents(ctx context.Context, screen tcell.Screen, out chan<- tcell.Event, received *atomic.Int64) error {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		received.Add(1)
		select {
		case out <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

// frameLoop advances the session once per tick and renders the result
func frameLoop(
	ctx context.Context,
	interval time.Duration,
	screen tcell.Screen,
	session *arena.Session,
	renderer *render.Renderer,
	collector *input.Collector,
	events <-chan tcell.Event,
	metrics *status.Registry,
) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	frameMs := metrics.Gauge("host.frame_ms")
	drawMs := metrics.Gauge("host.draw_ms")

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch collector.Handle(ev, time.Now()) {
			case input.IntentQuit:
				// Unblocks the poller
				screen.Fini()
				return nil
			case input.IntentResize:
				screen.Sync()
				renderer.Resize()
				collector.SetMapper(renderer.Viewport().PointerMapper())
			}

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now

			snap := session.Advance(collector.Snapshot(now), dt)
			start := time.Now()
			renderer.Draw(&snap)

			frameMs.Set(float64(dt) / float64(time.Millisecond))
			drawMs.Set(float64(time.Since(start)) / float64(time.Millisecond))
		}
	}
}
