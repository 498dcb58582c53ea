// Package renderer draws a scene once per call: a PBR forward pass over every mesh node
// followed by a sky pass.
package renderer

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Carmen-Shannon/oxy-forward/common"
	"github.com/Carmen-Shannon/oxy-forward/engine/asset"
	"github.com/Carmen-Shannon/oxy-forward/engine/camera"
	"github.com/Carmen-Shannon/oxy-forward/engine/gpu"
	"github.com/Carmen-Shannon/oxy-forward/engine/light"
	"github.com/Carmen-Shannon/oxy-forward/engine/loader"
	"github.com/Carmen-Shannon/oxy-forward/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-forward/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-forward/engine/scene"
	"github.com/Carmen-Shannon/oxy-forward/log"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// DefaultMaxLights is the number of light slots when none is configured.
	DefaultMaxLights = 4

	// DefaultShadersRoot is where program sources are fetched from when none is configured.
	DefaultShadersRoot = "res/shaders"
)

// DefaultClearColor is the background color used when none is configured.
var DefaultClearColor = [4]float32{0.9, 0.9, 0.9, 1}

// ErrNotInitialized is returned by RenderFrame before a successful Init.
var ErrNotInitialized = errors.New("renderer: not initialized")

// FrameStats summarizes one RenderFrame call.
type FrameStats struct {
	// NodesVisited counts every node reached by the traversal, the root included.
	NodesVisited int

	// DrawCalls counts indexed draws, the sky included.
	DrawCalls int

	// LightsBound counts lights written into slots.
	LightsBound int

	// LightsDropped counts enabled lights past the slot count.
	LightsDropped int
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	device gpu.Device
	camera camera.Camera
	input  *camera.InputState
	scene  scene.Scene
	logger log.Logger

	maxLights   int
	clearColor  [4]float32
	shadersRoot string
	skyFaces    [6]string

	pbr          gpu.Program
	sky          gpu.Program
	skyPositions gpu.Buffer
	skyIndices   gpu.Buffer
	skyMap       gpu.Texture
}

// Renderer draws frames of a scene through a gpu.Device. It is driven by the host loop
// on the render thread and is not safe for concurrent use.
type Renderer interface {
	// Init fetches and compiles the PBR and sky programs and creates the sky geometry
	// and cube map. It must succeed before the first RenderFrame.
	//
	// Parameters:
	//   - ctx: context bounding remote shader and texture fetches
	//
	// Returns:
	//   - error: a *loader.ResourceLoadFailure if a source cannot be fetched or a program
	//     fails to compile or link
	Init(ctx context.Context) error

	// RenderFrame runs one frame: camera update, view matrix, one pre-order traversal
	// running update hooks and caching world transforms, light collection, the PBR pass
	// and the sky pass.
	//
	// Returns:
	//   - FrameStats: counts for this frame
	//   - error: ErrNotInitialized, or an error if mesh buffers cannot be created
	RenderFrame() (FrameStats, error)

	// Resize updates the viewport and the camera's aspect ratio.
	//
	// Parameters:
	//   - width: the framebuffer width in pixels
	//   - height: the framebuffer height in pixels
	Resize(width, height int)

	// Scene returns the scene being drawn, nil if none is set.
	//
	// Returns:
	//   - scene.Scene: the scene
	Scene() scene.Scene

	// SetScene replaces the scene being drawn.
	//
	// Parameters:
	//   - s: the new scene
	SetScene(s scene.Scene)

	// Camera returns the camera frames are drawn from.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// Input returns the input state handed to the camera each frame.
	//
	// Returns:
	//   - *camera.InputState: the input state
	Input() *camera.InputState

	// Device returns the device draws are issued on.
	//
	// Returns:
	//   - gpu.Device: the device
	Device() gpu.Device
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer with the options applied. Without WithCamera the camera
// is a default camera with a fly controller; without WithInput a fresh input state is used.
//
// Parameters:
//   - device: the device to draw on
//   - options: a variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: the new renderer
func NewRenderer(device gpu.Device, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		device:     device,
		clearColor: DefaultClearColor,
		logger:     log.For(log.Renderer),
	}
	for _, option := range options {
		option(r)
	}

	r.maxLights = common.Coalesce(r.maxLights, DefaultMaxLights)
	r.shadersRoot = common.Coalesce(r.shadersRoot, DefaultShadersRoot)
	if r.camera == nil {
		r.camera = camera.NewCamera(camera.WithController(camera.NewFlyController()))
	}
	if r.input == nil {
		r.input = camera.NewInputState()
	}
	return r
}

func (r *renderer) Init(ctx context.Context) error {
	var err error
	if r.pbr, err = r.compile(ctx, "pbr"); err != nil {
		return err
	}
	if r.sky, err = r.compile(ctx, "sky"); err != nil {
		return err
	}

	if r.skyPositions, err = r.device.CreateBuffer(gpu.BufferUsageVertex, skyPositions); err != nil {
		return fmt.Errorf("sky positions: %w", err)
	}
	if r.skyIndices, err = r.device.CreateBuffer(gpu.BufferUsageIndex, skyIndices); err != nil {
		return fmt.Errorf("sky indices: %w", err)
	}
	if r.skyFaces != ([6]string{}) {
		if r.skyMap, err = r.device.CreateCubeMap(ctx, r.skyFaces); err != nil {
			return &loader.ResourceLoadFailure{Resource: r.skyFaces[0], Err: err}
		}
	}
	return nil
}

// compile fetches <name>.vert and <name>.frag under the shaders root, expands their
// annotations and links them.
func (r *renderer) compile(ctx context.Context, name string) (gpu.Program, error) {
	pp := shader.NewPreProcessor()
	pp.SetConstant(shader.AnnotationArgMaxLights, strconv.Itoa(r.maxLights))

	stages := make([]shader.Shader, 0, 2)
	for _, stage := range []struct {
		ext string
		typ shader.ShaderType
	}{{"vert", shader.ShaderTypeVertex}, {"frag", shader.ShaderTypeFragment}} {
		location := asset.Join(r.shadersRoot, name+"."+stage.ext)
		data, err := asset.ReadAll(ctx, location)
		if err != nil {
			return nil, &loader.ResourceLoadFailure{Resource: location, Err: err}
		}
		s, err := shader.NewShader(name+"."+stage.ext, stage.typ, string(data), pp)
		if err != nil {
			return nil, &loader.ResourceLoadFailure{Resource: location, Err: err}
		}
		stages = append(stages, s)
	}

	src := shader.ProgramSource(name, stages[0], stages[1])
	p, err := r.device.CompileProgram(src)
	if err != nil {
		return nil, &loader.ResourceLoadFailure{Resource: name + " program", Err: err}
	}
	r.logger.Infof("compiled %s program (%d attributes, %d uniforms)", name, len(src.Attributes), len(src.Uniforms))
	return p, nil
}

func (r *renderer) RenderFrame() (FrameStats, error) {
	var stats FrameStats
	if r.pbr == nil || r.sky == nil {
		return stats, ErrNotInitialized
	}

	r.camera.Update(r.input)
	r.device.BeginFrame(r.clearColor)

	var (
		lights []light.Source
		meshes []*scene.Node
	)
	if r.scene != nil {
		for n, parent := range r.scene.Root().Traverse() {
			stats.NodesVisited++
			n.Update()

			parentWorld := mgl32.Ident4()
			if parent != nil {
				parentWorld = parent.World()
			}
			world := n.UpdateWorld(parentWorld)

			switch n.Kind {
			case scene.KindLight:
				if n.Light != nil && n.Light.Enabled() {
					lights = append(lights, light.Source{Position: common.Translation(world), Color: n.Light.Radiance()})
				}
			case scene.KindMesh:
				if n.Mesh != nil {
					meshes = append(meshes, n)
				}
			}
		}
	}

	r.device.UseProgram(r.pbr)
	camera.Bind(r.device, r.pbr, r.camera)
	r.device.SetInt(r.pbr.Uniform("uSkyMap"), material.UnitSky)
	material.BindSamplers(r.device, r.pbr)
	r.device.BindTexture(material.UnitSky, r.skyMap)

	slots := light.Pack(lights, r.maxLights)
	slots.Bind(r.device, r.pbr)
	stats.LightsBound, stats.LightsDropped = slots.Bound, slots.Dropped

	for _, n := range meshes {
		draws, err := r.drawMesh(n)
		stats.DrawCalls += draws
		if err != nil {
			return stats, err
		}
	}

	r.drawSky()
	stats.DrawCalls++
	return stats, nil
}

// drawMesh binds the node's vertex streams once and issues one draw per material group.
func (r *renderer) drawMesh(n *scene.Node) (int, error) {
	if len(n.Mesh.Groups) == 0 {
		return 0, nil
	}
	buffers, err := n.Mesh.Upload(r.device)
	if err != nil {
		return 0, fmt.Errorf("node %q: %w", n.Name, err)
	}

	r.device.SetMat4(r.pbr.Uniform("uModelMatrix"), n.World())
	r.device.BindVertexBuffer(r.pbr.Attribute("aPosition"), buffers.Positions, 3)
	r.device.BindVertexBuffer(r.pbr.Attribute("aNormal"), buffers.Normals, 3)
	r.device.BindVertexBuffer(r.pbr.Attribute("aTexCoord"), buffers.UVs, 2)

	draws := 0
	for i, g := range n.Mesh.Groups {
		if len(g.Indices) == 0 {
			continue
		}
		material.Bind(r.device, r.pbr, r.scene.ResolveMaterial(g.Material))
		r.device.DrawIndexed(buffers.Indices[i], len(g.Indices))
		draws++
	}
	return draws, nil
}

func (r *renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.device.Viewport(width, height)
	r.camera.SetAspect(float32(width) / float32(height))
}

func (r *renderer) Scene() scene.Scene {
	return r.scene
}

func (r *renderer) SetScene(s scene.Scene) {
	r.scene = s
}

func (r *renderer) Camera() camera.Camera {
	return r.camera
}

func (r *renderer) Input() *camera.InputState {
	return r.input
}

func (r *renderer) Device() gpu.Device {
	return r.device
}
