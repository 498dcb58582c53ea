package renderer

import (
	"github.com/Carmen-Shannon/oxy-forward/engine/camera"
	"github.com/Carmen-Shannon/oxy-forward/engine/gpu"
	"github.com/Carmen-Shannon/oxy-forward/engine/renderer/material"
)

// The sky is a unit octahedron around the camera, sampled as a cube map by direction.
var (
	skyPositions = []float32{
		0, 1, 0,
		0, -1, 0,
		1, 0, 0,
		-1, 0, 0,
		0, 0, 1,
		0, 0, -1,
	}
	skyIndices = []uint32{
		2, 4, 0,
		0, 4, 3,
		3, 5, 0,
		5, 2, 0,
		2, 1, 4,
		1, 2, 5,
		3, 4, 1,
		5, 3, 1,
	}
)

// drawSky draws the octahedron at the far plane. Depth testing is relaxed to LEQUAL for
// the pass and restored to LESS afterwards.
func (r *renderer) drawSky() {
	r.device.SetDepthFunc(gpu.DepthLessEqual)

	r.device.UseProgram(r.sky)
	camera.Bind(r.device, r.sky, r.camera)
	r.device.SetInt(r.sky.Uniform("uSkyMap"), material.UnitSky)
	r.device.BindTexture(material.UnitSky, r.skyMap)
	r.device.BindVertexBuffer(r.sky.Attribute("aPosition"), r.skyPositions, 3)
	r.device.DrawIndexed(r.skyIndices, len(skyIndices))

	r.device.SetDepthFunc(gpu.DepthLess)
}
