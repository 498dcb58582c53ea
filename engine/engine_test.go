package engine

import (
	"context"
	"testing"

	"github.com/Carmen-Shannon/oxy-forward/common"
	"github.com/Carmen-Shannon/oxy-forward/engine/gpu/headless"
	"github.com/Carmen-Shannon/oxy-forward/engine/renderer"
	"github.com/Carmen-Shannon/oxy-forward/engine/scene"
	"github.com/Carmen-Shannon/oxy-forward/engine/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWindow runs the update callback until closed or maxIterations is reached.
type fakeWindow struct {
	width, height int
	maxIterations int
	iterations    int
	running       bool
	closed        bool

	// beforeUpdate runs ahead of the update callback each iteration, standing in for events.
	beforeUpdate func(w *fakeWindow)

	onUpdate      func()
	onResize      func(width, height int)
	onKeyDown     func(keyCode int)
	onKeyUp       func(keyCode int)
	onPointerMove func(dx, dy float32)
}

var _ window.Window = &fakeWindow{}

func (w *fakeWindow) SetUpdateCallback(cb func())                  { w.onUpdate = cb }
func (w *fakeWindow) SetResizeCallback(cb func(width, height int)) { w.onResize = cb }
func (w *fakeWindow) SetKeyDownCallback(cb func(keyCode int))      { w.onKeyDown = cb }
func (w *fakeWindow) SetKeyUpCallback(cb func(keyCode int))        { w.onKeyUp = cb }
func (w *fakeWindow) SetPointerMoveCallback(cb func(dx, dy float32)) {
	w.onPointerMove = cb
}
func (w *fakeWindow) PointerLocked() bool { return true }
func (w *fakeWindow) IsRunning() bool     { return w.running }
func (w *fakeWindow) RequestClose()       { w.running = false }
func (w *fakeWindow) Close() error {
	w.closed = true
	return nil
}
func (w *fakeWindow) Width() int  { return w.width }
func (w *fakeWindow) Height() int { return w.height }

func (w *fakeWindow) ProcessMessages() {
	w.running = true
	for w.running && w.iterations < w.maxIterations {
		w.iterations++
		if w.beforeUpdate != nil {
			w.beforeUpdate(w)
		}
		if w.onUpdate != nil {
			w.onUpdate()
		}
	}
}

func newRenderer(t *testing.T) (renderer.Renderer, *headless.Device) {
	t.Helper()
	device := headless.NewDevice()
	r := renderer.NewRenderer(device,
		renderer.WithShadersRoot("../res/shaders"),
		renderer.WithScene(scene.NewScene()),
	)
	require.NoError(t, r.Init(context.Background()))
	return r, device
}

func TestRunRendersUntilWindowCloses(t *testing.T) {
	r, device := newRenderer(t)
	w := &fakeWindow{width: 800, height: 400, maxIterations: 5}

	var seen int
	e := NewEngine(WithWindow(w), WithRenderer(r))
	e.SetFrameCallback(func(stats renderer.FrameStats, _ float32) {
		seen++
		assert.Equal(t, 1, stats.NodesVisited)
	})

	require.NoError(t, e.Run(context.Background()))
	assert.Equal(t, uint64(5), e.Frames())
	assert.Equal(t, 5, seen)
	assert.True(t, w.closed)
	assert.Len(t, device.CallsOf(headless.OpBeginFrame), 5)
	assert.InDelta(t, 2.0, r.Camera().Aspect(), 1e-6)
}

func TestRunFeedsInputToCamera(t *testing.T) {
	r, _ := newRenderer(t)
	w := &fakeWindow{width: 100, height: 100, maxIterations: 2}
	w.beforeUpdate = func(w *fakeWindow) {
		if w.iterations == 1 {
			w.onKeyDown(common.KeyW)
			w.onPointerMove(10, 0)
		} else {
			w.onKeyUp(common.KeyW)
		}
	}

	e := NewEngine(WithWindow(w), WithRenderer(r))
	require.NoError(t, e.Run(context.Background()))

	cam := r.Camera()
	assert.InDelta(t, 0.1, cam.Rotation().Y(), 1e-6, "yaw from the pointer delta")
	assert.Less(t, cam.Position().Z(), float32(0), "W moved the camera forward")
	assert.False(t, r.Input().Held(common.KeyW))
}

func TestRunStopsOnCancel(t *testing.T) {
	r, _ := newRenderer(t)
	w := &fakeWindow{width: 100, height: 100, maxIterations: 100}

	ctx, cancel := context.WithCancel(context.Background())
	e := NewEngine(WithWindow(w), WithRenderer(r))
	e.SetFrameCallback(func(renderer.FrameStats, float32) {
		if e.Frames() == 3 {
			cancel()
		}
	})

	require.NoError(t, e.Run(ctx))
	assert.Equal(t, uint64(3), e.Frames())
	assert.True(t, w.closed)
}

func TestRunStopsOnFrameError(t *testing.T) {
	r := renderer.NewRenderer(headless.NewDevice())
	w := &fakeWindow{width: 100, height: 100, maxIterations: 10}

	e := NewEngine(WithWindow(w), WithRenderer(r))
	err := e.Run(context.Background())
	assert.ErrorIs(t, err, renderer.ErrNotInitialized)
	assert.Equal(t, 1, w.iterations)
	assert.Zero(t, e.Frames())
}

func TestRunRequiresWindowAndRenderer(t *testing.T) {
	assert.ErrorIs(t, NewEngine().Run(context.Background()), ErrNoWindow)
	assert.ErrorIs(t, NewEngine(WithWindow(&fakeWindow{})).Run(context.Background()), ErrNoRenderer)
}
