package renderer

import (
	"context"
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-forward/engine/camera"
	"github.com/Carmen-Shannon/oxy-forward/engine/gpu"
	"github.com/Carmen-Shannon/oxy-forward/engine/gpu/headless"
	"github.com/Carmen-Shannon/oxy-forward/engine/light"
	"github.com/Carmen-Shannon/oxy-forward/engine/loader"
	"github.com/Carmen-Shannon/oxy-forward/engine/model"
	"github.com/Carmen-Shannon/oxy-forward/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-forward/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shadersRoot = "../../res/shaders"

func ptr(s string) *string { return &s }

func triangleMesh(groups ...model.MeshBuilderOption) *model.Mesh {
	options := append([]model.MeshBuilderOption{
		model.WithName("tri"),
		model.WithVertices(
			[]float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
			[]float32{0, 0, 1, 0, 0, 1, 0, 0, 1},
			[]float32{0, 0, 1, 0, 0, 1},
		),
	}, groups...)
	return model.NewMesh(options...)
}

func newTestRenderer(t *testing.T, s scene.Scene, options ...RendererBuilderOption) (Renderer, *headless.Device) {
	t.Helper()
	device := headless.NewDevice()
	options = append([]RendererBuilderOption{WithShadersRoot(shadersRoot), WithScene(s)}, options...)
	r := NewRenderer(device, options...)
	require.NoError(t, r.Init(context.Background()))
	device.Reset()
	return r, device
}

func ops(calls []headless.Call, keep ...headless.Op) []headless.Call {
	var out []headless.Call
	for _, c := range calls {
		for _, op := range keep {
			if c.Op == op {
				out = append(out, c)
			}
		}
	}
	return out
}

func TestRenderFrameBeforeInit(t *testing.T) {
	r := NewRenderer(headless.NewDevice())
	_, err := r.RenderFrame()
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestInitCompilesPrograms(t *testing.T) {
	device := headless.NewDevice()
	r := NewRenderer(device, WithShadersRoot(shadersRoot), WithSkyFaces([6]string{"px", "nx", "py", "ny", "pz", "nz"}))
	require.NoError(t, r.Init(context.Background()))

	buffers, textures, programs := device.Counts()
	assert.Equal(t, 2, programs)
	assert.Equal(t, 2, buffers)
	assert.Equal(t, 1, textures)
	require.Len(t, device.CallsOf(headless.OpCreateCubeMap), 1)
	assert.Equal(t, "px", device.CallsOf(headless.OpCreateCubeMap)[0].Texture.Source())
}

func TestInitCompileFailure(t *testing.T) {
	device := headless.NewDevice()
	device.FailCompile("sky", errors.New("0:12: syntax error"))

	err := NewRenderer(device, WithShadersRoot(shadersRoot)).Init(context.Background())
	var rlf *loader.ResourceLoadFailure
	require.True(t, errors.As(err, &rlf))
	assert.Equal(t, "sky program", rlf.Resource)
	assert.ErrorContains(t, err, "syntax error")
}

func TestInitMissingShaders(t *testing.T) {
	err := NewRenderer(headless.NewDevice(), WithShadersRoot(t.TempDir())).Init(context.Background())
	var rlf *loader.ResourceLoadFailure
	assert.True(t, errors.As(err, &rlf))
}

func TestRenderFrameDrawOrder(t *testing.T) {
	mesh := triangleMesh(model.WithGroup(nil, 0, 1, 2), model.WithGroup(ptr("red"), 2, 1, 0))
	s := scene.NewScene(scene.WithMaterials(material.NewMaterial(material.WithName("red"), material.WithAlbedo(mgl32.Vec3{1, 0, 0}))))
	s.Root().AddChild(scene.NewMeshNode("tri", mesh))
	r, device := newTestRenderer(t, s)

	stats, err := r.RenderFrame()
	require.NoError(t, err)
	assert.Equal(t, FrameStats{NodesVisited: 2, DrawCalls: 3}, stats)

	seq := ops(device.Calls(), headless.OpBeginFrame, headless.OpUseProgram, headless.OpDrawIndexed, headless.OpSetDepthFunc)
	require.Len(t, seq, 8)
	assert.Equal(t, headless.OpBeginFrame, seq[0].Op)
	assert.Equal(t, "pbr", seq[1].Program)
	assert.Equal(t, headless.OpDrawIndexed, seq[2].Op)
	assert.Equal(t, headless.OpDrawIndexed, seq[3].Op)
	assert.Equal(t, gpu.DepthLessEqual, seq[4].Depth)
	assert.Equal(t, "sky", seq[5].Program)
	assert.Equal(t, headless.OpDrawIndexed, seq[6].Op)
	assert.Equal(t, 24, seq[6].Count)
	assert.Equal(t, gpu.DepthLess, seq[7].Depth)

	// the unassigned group draws with the default albedo, the second with red
	albedo := device.Uniform("pbr", "uAlbedo")
	require.Len(t, albedo, 2)
	assert.Equal(t, material.DefaultAlbedo, albedo[0].Vec3[0])
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, albedo[1].Vec3[0])

	// vertex streams are bound once per mesh node
	assert.Len(t, ops(device.Calls(), headless.OpBindVertexBuffer), 4)
}

func TestRenderFrameLightSlots(t *testing.T) {
	s := scene.NewScene()
	lamp := scene.NewNode("lamp", scene.WithPosition(0, 2, 0))
	lamp.AddChild(scene.NewLightNode("bulb", light.NewLight(light.WithColor(1, 0.5, 0)), scene.WithPosition(1, 0, 0)))
	s.Root().AddChild(lamp)
	s.Root().AddChild(scene.NewLightNode("fill", light.NewLight(light.WithIntensity(2))))
	s.Root().AddChild(scene.NewLightNode("off", light.NewLight(light.WithEnabled(false))))
	r, device := newTestRenderer(t, s, WithMaxLights(5))

	stats, err := r.RenderFrame()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.LightsBound)
	assert.Zero(t, stats.LightsDropped)

	positions := device.Uniform("pbr", "uLightPositions")
	colors := device.Uniform("pbr", "uLightColors")
	require.Len(t, positions, 1)
	require.Len(t, colors, 1)
	assert.Equal(t, []mgl32.Vec3{{1, 2, 0}, {0, 0, 0}, {}, {}, {}}, positions[0].Vec3)
	assert.Equal(t, []mgl32.Vec3{{1, 0.5, 0}, {2, 2, 2}, {}, {}, {}}, colors[0].Vec3)
}

func TestRenderFrameDropsExtraLights(t *testing.T) {
	s := scene.NewScene()
	for _, name := range []string{"a", "b", "c"} {
		s.Root().AddChild(scene.NewLightNode(name, light.NewLight()))
	}
	r, device := newTestRenderer(t, s, WithMaxLights(2))

	stats, err := r.RenderFrame()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.LightsBound)
	assert.Equal(t, 1, stats.LightsDropped)
	assert.Len(t, device.Uniform("pbr", "uLightColors")[0].Vec3, 2)
}

func TestRenderFrameNoLights(t *testing.T) {
	r, device := newTestRenderer(t, scene.NewScene())

	_, err := r.RenderFrame()
	require.NoError(t, err)
	colors := device.Uniform("pbr", "uLightColors")
	require.Len(t, colors, 1)
	assert.Equal(t, make([]mgl32.Vec3, DefaultMaxLights), colors[0].Vec3)
}

func TestRenderFrameMeshWithoutGroups(t *testing.T) {
	s := scene.NewScene()
	s.Root().AddChild(scene.NewMeshNode("empty", triangleMesh()))
	r, device := newTestRenderer(t, s)

	stats, err := r.RenderFrame()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.DrawCalls)
	draws := device.CallsOf(headless.OpDrawIndexed)
	require.Len(t, draws, 1)
	assert.Equal(t, "sky", draws[0].Program)
}

func TestRenderFrameHooksAndWorldTransforms(t *testing.T) {
	mesh := triangleMesh(model.WithGroup(nil, 0, 1, 2))
	calls := 0
	parent := scene.NewNode("parent",
		scene.WithPosition(1, 0, 0),
		scene.WithUpdater(scene.UpdaterFunc(func(n *scene.Node) {
			calls++
			n.Local = n.Local.Mul4(mgl32.Translate3D(0, 0, -1))
		})),
	)
	parent.AddChild(scene.NewMeshNode("child", mesh, scene.WithPosition(0, 2, 0)))
	s := scene.NewScene()
	s.Root().AddChild(parent)
	r, device := newTestRenderer(t, s)

	for range 2 {
		_, err := r.RenderFrame()
		require.NoError(t, err)
	}
	assert.Equal(t, 2, calls)

	models := device.Uniform("pbr", "uModelMatrix")
	require.Len(t, models, 2)
	assert.Equal(t, mgl32.Translate3D(1, 2, -1), models[0].Mat4)
	assert.Equal(t, mgl32.Translate3D(1, 2, -2), models[1].Mat4)
}

func TestRenderFrameSharesMeshBuffers(t *testing.T) {
	mesh := triangleMesh(model.WithGroup(nil, 0, 1, 2))
	node := scene.NewMeshNode("tri", mesh)
	s := scene.NewScene()
	s.Root().AddChild(node)
	s.Root().AddChild(node.Clone())
	r, device := newTestRenderer(t, s)

	for range 3 {
		_, err := r.RenderFrame()
		require.NoError(t, err)
	}
	buffers, _, _ := device.Counts()
	// two sky buffers plus three streams and one index list for the shared mesh
	assert.Equal(t, 6, buffers)
	assert.Len(t, device.CallsOf(headless.OpDrawIndexed), 9)
}

func TestRenderFrameUsesCameraInput(t *testing.T) {
	input := camera.NewInputState()
	r, device := newTestRenderer(t, scene.NewScene(), WithInput(input))

	input.Press('W')
	_, err := r.RenderFrame()
	require.NoError(t, err)

	pos := device.Uniform("pbr", "uCameraPosition")
	require.Len(t, pos, 1)
	assert.InDelta(t, -camera.DefaultSpeed, pos[0].Vec3[0][2], 1e-6)
	assert.Equal(t, r.Camera().ViewMatrix(), device.Uniform("sky", "uViewMatrix")[0].Mat4)
}

func TestResize(t *testing.T) {
	r, device := newTestRenderer(t, scene.NewScene())

	r.Resize(1600, 800)
	r.Resize(0, 0)
	require.Len(t, device.CallsOf(headless.OpViewport), 1)
	assert.Equal(t, float32(2), r.Camera().Aspect())
}
