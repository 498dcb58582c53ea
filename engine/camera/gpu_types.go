package camera

import (
	_ "embed"

	"github.com/Carmen-Shannon/oxy-forward/engine/gpu"
)

// GLSLUniforms declares the per-frame camera uniforms shared by the PBR and sky programs.
//
//go:embed assets/camera.glsl
var GLSLUniforms string

// UniformNames lists the uniforms written by Bind.
var UniformNames = []string{"uViewMatrix", "uProjectionMatrix", "uCameraPosition"}

// Bind writes the camera's current matrices and position into the current program.
// Uniforms the program does not declare are skipped.
//
// Parameters:
//   - device: the device to issue calls on
//   - p: the current program
//   - c: the camera
func Bind(device gpu.Device, p gpu.Program, c Camera) {
	if loc := p.Uniform("uProjectionMatrix"); loc != gpu.NoLocation {
		device.SetMat4(loc, c.ProjectionMatrix())
	}
	if loc := p.Uniform("uViewMatrix"); loc != gpu.NoLocation {
		device.SetMat4(loc, c.ViewMatrix())
	}
	if loc := p.Uniform("uCameraPosition"); loc != gpu.NoLocation {
		device.SetVec3(loc, c.Position())
	}
}
