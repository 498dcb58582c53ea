package material

import (
	_ "embed"

	"github.com/Carmen-Shannon/oxy-forward/engine/gpu"
)

// Texture units shared by the PBR and sky programs.
const (
	UnitSky = iota
	UnitAlbedo
	UnitNormal
	UnitRoughness
	UnitMetalness
)

// GLSLUniforms declares the material uniforms bound by Bind.
//
//go:embed assets/material.glsl
var GLSLUniforms string

// UniformNames lists the uniforms Bind and BindSamplers write, for program compilation.
var UniformNames = []string{
	"uUseAlbedoMap", "uAlbedo", "uAlbedoMap",
	"uUseNormalMap", "uNormalMap",
	"uUseRoughnessMap", "uRoughness", "uRoughnessMap",
	"uUseMetalnessMap", "uMetalness", "uMetalnessMap",
}

// BindSamplers points each material sampler uniform at its fixed texture unit.
// It only needs to run once per frame after the program is made current.
//
// Parameters:
//   - device: the device to issue calls on
//   - p: the current program
func BindSamplers(device gpu.Device, p gpu.Program) {
	device.SetInt(p.Uniform("uAlbedoMap"), UnitAlbedo)
	device.SetInt(p.Uniform("uNormalMap"), UnitNormal)
	device.SetInt(p.Uniform("uRoughnessMap"), UnitRoughness)
	device.SetInt(p.Uniform("uMetalnessMap"), UnitMetalness)
}

// Bind writes m's factors and map flags to p and binds its textures. Units without a
// map are unbound so a previous material's texture never leaks into this draw.
//
// Parameters:
//   - device: the device to issue calls on
//   - p: the current program
//   - m: the material to bind
func Bind(device gpu.Device, p gpu.Program, m Material) {
	albedo, _ := m.Albedo()
	roughness, _ := m.Roughness()
	metalness, _ := m.Metalness()

	device.SetVec3(p.Uniform("uAlbedo"), albedo)
	device.SetInt(p.Uniform("uUseAlbedoMap"), flag(m.AlbedoMap()))
	device.SetInt(p.Uniform("uUseNormalMap"), flag(m.NormalMap()))
	device.SetFloat(p.Uniform("uRoughness"), roughness)
	device.SetInt(p.Uniform("uUseRoughnessMap"), flag(m.RoughnessMap()))
	device.SetFloat(p.Uniform("uMetalness"), metalness)
	device.SetInt(p.Uniform("uUseMetalnessMap"), flag(m.MetalnessMap()))

	device.BindTexture(UnitAlbedo, m.AlbedoMap())
	device.BindTexture(UnitNormal, m.NormalMap())
	device.BindTexture(UnitRoughness, m.RoughnessMap())
	device.BindTexture(UnitMetalness, m.MetalnessMap())
}

func flag(t gpu.Texture) int32 {
	if t == nil {
		return 0
	}
	return 1
}
