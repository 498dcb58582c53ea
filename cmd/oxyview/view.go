package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Carmen-Shannon/oxy-forward/engine"
	"github.com/Carmen-Shannon/oxy-forward/engine/gpu/opengl"
	"github.com/Carmen-Shannon/oxy-forward/engine/window"
	"github.com/urfave/cli"
)

// View opens a window on the scene given as the only argument and runs until it is closed.
func View(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() != 1 {
		return errMissingScene
	}
	sceneFile := ctx.Args().First()

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The window locks this goroutine to its OS thread; every GL call below stays on it.
	win, err := window.NewWindow(
		window.WithTitle(cfg.Window.Title+" - "+sceneFile),
		window.WithWidth(cfg.Window.Width),
		window.WithHeight(cfg.Window.Height),
	)
	if err != nil {
		return err
	}

	device, err := opengl.NewDevice()
	if err != nil {
		_ = win.Close()
		return err
	}

	logger.Noticef("loading scene: %s", sceneFile)
	s, err := newLoader(device, cfg).Load(runCtx, sceneFile)
	if err != nil {
		_ = win.Close()
		return err
	}
	placeLights(s, cfg.Lights)

	r := newRenderer(device, s, cfg)
	if err := r.Init(runCtx); err != nil {
		_ = win.Close()
		return err
	}

	e := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithRenderer(r),
		engine.WithProfiling(ctx.Bool("profile")),
		engine.WithRenderFrameLimit(ctx.Float64("fps")),
	)
	return e.Run(runCtx)
}
