package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/Carmen-Shannon/constellations/engine"
	"github.com/Carmen-Shannon/constellations/engine/input"
	"github.com/Carmen-Shannon/constellations/engine/profiler"
	"github.com/Carmen-Shannon/constellations/engine/renderer"
	"github.com/Carmen-Shannon/constellations/engine/scene"
	"github.com/Carmen-Shannon/constellations/engine/window"
	"github.com/Carmen-Shannon/constellations/internal/config"
	"github.com/Carmen-Shannon/constellations/internal/logging"
)

// run opens the window and drives the engine until the window closes or the process is signalled.
func run(ctx context.Context, cfg *config.Config, flags *rootFlags, stderr io.Writer) error {
	logger, err := logging.NewFromConfig(cfg.Logging, stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	seed, err := cfg.SeedValue()
	if err != nil {
		return err
	}
	bindings, err := cfg.Input.Bindings()
	if err != nil {
		return fmt.Errorf("input bindings: %w", err)
	}

	win := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithWidth(cfg.Window.Width),
		window.WithHeight(cfg.Window.Height),
		window.WithFullscreen(!cfg.Window.Windowed),
	)

	presentMode := renderer.PresentModeUncapped
	if cfg.Window.VSync {
		presentMode = renderer.PresentModeVSync
	}
	rend := renderer.NewRenderer(renderer.BackendTypeWGPU, win, renderer.WithPresentMode(presentMode))

	aspect := float32(16) / 9
	if win.Height() > 0 {
		aspect = float32(win.Width()) / float32(win.Height())
	}
	sc := newScene(cfg, seed, aspect, logger)

	eng := engine.NewEngine(
		engine.WithLogger(logger),
		engine.WithWindow(win),
		engine.WithRenderer(rend),
		engine.WithInputDispatcher(input.NewDispatcher(input.WithBindings(bindings), input.WithLogger(logger))),
		engine.WithScene(0, sc),
		engine.WithTickRate(cfg.Engine.TickRate),
		engine.WithRenderFrameLimit(cfg.Engine.RenderFrameLimit),
		engine.WithProfiling(cfg.Engine.Profiling),
		engine.WithProfiler(profiler.NewProfiler(profiler.WithLogger(logger))),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		eng.Quit()
	}()

	if flags.watchConfig {
		if flags.configPath == "" {
			logger.Warn("--watch-config ignored without --config")
		} else {
			watcher, err := config.NewWatcher(flags.configPath)
			if err != nil {
				return fmt.Errorf("watch config: %w", err)
			}
			defer watcher.Close()
			go forwardReloads(watcher, eng, sc, logger)
		}
	}

	logger.Info("constellations starting",
		slog.String("seed", sc.SeedString()),
		slog.Bool("fullscreen", win.Fullscreen()),
		slog.Int("width", win.Width()),
		slog.Int("height", win.Height()),
	)
	eng.Run()
	return nil
}

func newScene(cfg *config.Config, seed uint64, aspect float32, logger *slog.Logger) scene.Scene {
	return scene.NewScene(
		scene.WithLogger(logger),
		scene.WithSeed(seed),
		scene.WithSkipIntro(cfg.SkipIntro),
		scene.WithRandomizeOnReload(cfg.Scene.RandomizeOnRestart),
		scene.WithTuning(cfg.Camera.Tuning()),
		scene.WithLens(cfg.Camera.FovDegrees, cfg.Camera.Near, cfg.Camera.Far),
		scene.WithAspect(aspect),
		scene.WithIntro(cfg.Scene.IntroSeconds, cfg.Scene.IntroFovDegrees),
		scene.WithBackground(cfg.Scene.BackgroundColor(), cfg.Scene.BackgroundFadeSpeed),
	)
}

// tickRunner is the part of the engine reload forwarding needs.
type tickRunner interface {
	RunOnTick(fn func()) bool
}

// forwardReloads hands each reloaded camera section to the tick goroutine until the watcher closes.
func forwardReloads(w *config.Watcher, eng tickRunner, sc scene.Scene, logger *slog.Logger) {
	for {
		select {
		case cfg, ok := <-w.Updates:
			if !ok {
				return
			}
			tuning := cfg.Camera.Tuning()
			if !eng.RunOnTick(func() { sc.ApplyTuning(tuning) }) {
				return
			}
			logger.Info("config reloaded", slog.String("path", w.Path()))
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Warn("config reload rejected, keeping previous settings", slog.Any("error", err))
		}
	}
}
