package renderer

import (
	"github.com/Carmen-Shannon/oxy-forward/engine/camera"
	"github.com/Carmen-Shannon/oxy-forward/engine/scene"
	"github.com/Carmen-Shannon/oxy-forward/log"
)

// RendererBuilderOption is a functional option for configuring a Renderer via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithScene is an option builder that sets the scene to draw.
//
// Parameters:
//   - s: the scene
//
// Returns:
//   - RendererBuilderOption: a function that applies the scene option to a renderer
func WithScene(s scene.Scene) RendererBuilderOption {
	return func(r *renderer) {
		r.scene = s
	}
}

// WithCamera is an option builder that sets the camera frames are drawn from.
//
// Parameters:
//   - c: the camera, usually with a controller attached
//
// Returns:
//   - RendererBuilderOption: a function that applies the camera option to a renderer
func WithCamera(c camera.Camera) RendererBuilderOption {
	return func(r *renderer) {
		r.camera = c
	}
}

// WithInput is an option builder that sets the input state handed to the camera.
//
// Parameters:
//   - input: the host-owned input state
//
// Returns:
//   - RendererBuilderOption: a function that applies the input option to a renderer
func WithInput(input *camera.InputState) RendererBuilderOption {
	return func(r *renderer) {
		r.input = input
	}
}

// WithMaxLights is an option builder that sets the number of light slots compiled into
// the PBR program.
//
// Parameters:
//   - n: the slot count
//
// Returns:
//   - RendererBuilderOption: a function that applies the max lights option to a renderer
func WithMaxLights(n int) RendererBuilderOption {
	return func(r *renderer) {
		r.maxLights = n
	}
}

// WithClearColor is an option builder that sets the background color.
//
// Parameters:
//   - color: RGBA in [0, 1]
//
// Returns:
//   - RendererBuilderOption: a function that applies the clear color option to a renderer
func WithClearColor(color [4]float32) RendererBuilderOption {
	return func(r *renderer) {
		r.clearColor = color
	}
}

// WithShadersRoot is an option builder that sets the directory or URL prefix program
// sources are fetched from.
//
// Parameters:
//   - root: the shaders root
//
// Returns:
//   - RendererBuilderOption: a function that applies the shaders root option to a renderer
func WithShadersRoot(root string) RendererBuilderOption {
	return func(r *renderer) {
		r.shadersRoot = root
	}
}

// WithSkyFaces is an option builder that sets the sky cube map images in +X, -X, +Y, -Y,
// +Z, -Z order. Without it the sky samples an unbound cube map.
//
// Parameters:
//   - faces: the six image locations
//
// Returns:
//   - RendererBuilderOption: a function that applies the sky option to a renderer
func WithSkyFaces(faces [6]string) RendererBuilderOption {
	return func(r *renderer) {
		r.skyFaces = faces
	}
}

// WithLogger replaces the renderer's logger.
func WithLogger(logger log.Logger) RendererBuilderOption {
	return func(r *renderer) {
		r.logger = logger
	}
}
