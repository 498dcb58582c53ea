// Package engine hosts the render loop: it feeds window input into the camera's input
// state, resizes the viewport and calls RenderFrame once per iteration until the window
// closes or the context is cancelled.
package engine

import (
	"context"
	"errors"
	"time"

	"github.com/Carmen-Shannon/oxy-forward/engine/profiler"
	"github.com/Carmen-Shannon/oxy-forward/engine/renderer"
	"github.com/Carmen-Shannon/oxy-forward/engine/window"
	"github.com/Carmen-Shannon/oxy-forward/log"
)

// ErrNoWindow is returned by Run when the engine was built without a window.
var ErrNoWindow = errors.New("engine: no window")

// ErrNoRenderer is returned by Run when the engine was built without a renderer.
var ErrNoRenderer = errors.New("engine: no renderer")

// engine implements the Engine interface.
type engine struct {
	window   window.Window
	renderer renderer.Renderer
	logger   log.Logger

	profiler         *profiler.Profiler
	profilingEnabled bool

	// frameCallback runs after each rendered frame with the frame's stats and delta time.
	frameCallback func(stats renderer.FrameStats, deltaTime float32)

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
	frames           uint64
}

// Engine is the main entry point for the viewer.
// It ties the window's message loop to the renderer on a single thread.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Renderer returns the renderer frames are drawn with.
	//
	// Returns:
	//   - renderer.Renderer: the renderer instance
	Renderer() renderer.Renderer

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetFrameCallback registers the function called after each rendered frame.
	//
	// Parameters:
	//   - callback: function receiving the frame's stats and the delta time in seconds
	SetFrameCallback(callback func(stats renderer.FrameStats, deltaTime float32))

	// SetRenderFrameLimit sets an optional render frame rate cap in frames per second.
	// Pass 0 to uncap the render loop (default).
	//
	// Parameters:
	//   - fps: maximum render frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Frames returns how many frames have been rendered.
	Frames() uint64

	// Run drives the loop on the calling thread until the window closes, ctx is done or a
	// frame fails. The window is closed before Run returns.
	//
	// Parameters:
	//   - ctx: cancelling it stops the loop after the current frame
	//
	// Returns:
	//   - error: the frame error that stopped the loop, nil on a normal close
	Run(ctx context.Context) error
}

// NewEngine creates a new Engine instance with the provided options.
// Options are applied directly to the engine struct via the option-builder pattern.
//
// Parameters:
//   - options: functional options for engine configuration (window, renderer, profiling, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		logger: log.For(log.Engine),
	}

	for _, opt := range options {
		opt(e)
	}

	if e.profiler == nil {
		e.profiler = profiler.NewProfiler()
	}
	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

func (e *engine) Run(ctx context.Context) error {
	if e.window == nil {
		return ErrNoWindow
	}
	if e.renderer == nil {
		return ErrNoRenderer
	}

	input := e.renderer.Input()
	e.window.SetKeyDownCallback(input.Press)
	e.window.SetKeyUpCallback(input.Release)
	e.window.SetPointerMoveCallback(input.AddPointerDelta)
	e.window.SetResizeCallback(e.renderer.Resize)
	e.renderer.Resize(e.window.Width(), e.window.Height())

	var runErr error
	lastRender := time.Now()
	e.window.SetUpdateCallback(func() {
		if ctx.Err() != nil {
			e.window.RequestClose()
			return
		}

		now := time.Now()
		dt := float32(now.Sub(lastRender).Seconds())
		lastRender = now

		stats, err := e.renderer.RenderFrame()
		if err != nil {
			e.logger.Errorf("frame %d failed: %v", e.frames, err)
			runErr = err
			e.window.RequestClose()
			return
		}
		e.frames++

		if e.frameCallback != nil {
			e.frameCallback(stats, dt)
		}
		if e.profilingEnabled {
			e.profiler.Tick(stats)
		}

		if e.renderFrameLimit > 0 {
			if remaining := e.renderFrameLimit - time.Since(now); remaining > 0 {
				time.Sleep(remaining)
			}
		}
	})

	e.window.ProcessMessages()
	e.logger.Infof("stopped after %d frames", e.frames)

	if err := e.window.Close(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetFrameCallback(callback func(stats renderer.FrameStats, deltaTime float32)) {
	e.frameCallback = callback
}

// SetRenderFrameLimit sets an optional render frame rate cap.
// Pass 0 to uncap the render loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
}

func (e *engine) Frames() uint64 {
	return e.frames
}
