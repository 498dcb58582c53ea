package light

import (
	_ "embed"

	"github.com/Carmen-Shannon/oxy-forward/engine/gpu"
	"github.com/go-gl/mathgl/mgl32"
)

// GLSLUniforms declares the light slot arrays. It expects MAX_LIGHTS to be defined.
//
//go:embed assets/lights.glsl
var GLSLUniforms string

// UniformNames lists the uniforms written by Slots.Bind.
var UniformNames = []string{"uLightPositions", "uLightColors"}

// Source is one collected light: a world-space position and the color it emits.
type Source struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

// Slots is a fixed-size light uniform block. Unused slots hold zero position and
// zero color, which contribute nothing in the shader.
type Slots struct {
	Positions []mgl32.Vec3
	Colors    []mgl32.Vec3

	// Bound counts the sources written into slots.
	Bound int

	// Dropped counts the sources beyond the slot count, in traversal order.
	Dropped int
}

// Pack writes sources into exactly max slots. Sources past max are dropped.
//
// Parameters:
//   - sources: the collected lights, in traversal order
//   - max: the number of slots the program declares
//
// Returns:
//   - Slots: the packed slots
func Pack(sources []Source, max int) Slots {
	if max < 0 {
		max = 0
	}
	s := Slots{
		Positions: make([]mgl32.Vec3, max),
		Colors:    make([]mgl32.Vec3, max),
	}
	for i, src := range sources {
		if i >= max {
			s.Dropped = len(sources) - max
			break
		}
		s.Positions[i] = src.Position
		s.Colors[i] = src.Color
		s.Bound++
	}
	return s
}

// Bind uploads both arrays to the current program. Nothing is written when there are no slots.
//
// Parameters:
//   - device: the device to issue calls on
//   - p: the current program
func (s Slots) Bind(device gpu.Device, p gpu.Program) {
	if len(s.Positions) == 0 {
		return
	}
	device.SetVec3Array(p.Uniform("uLightPositions"), s.Positions)
	device.SetVec3Array(p.Uniform("uLightColors"), s.Colors)
}
