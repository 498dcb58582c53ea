package material

import (
	"github.com/Carmen-Shannon/oxy-forward/engine/gpu"
	"github.com/go-gl/mathgl/mgl32"
)

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithAlbedo is an option builder that sets the diffuse color of the material.
//
// Parameters:
//   - color: the albedo as linear RGB
//
// Returns:
//   - MaterialBuilderOption: a function that applies the albedo option to a material
func WithAlbedo(color mgl32.Vec3) MaterialBuilderOption {
	return func(m *material) {
		m.SetAlbedo(color)
	}
}

// WithRoughness is an option builder that sets the roughness factor of the material.
//
// Parameters:
//   - roughness: the roughness factor (0.0 = smooth, 1.0 = rough)
//
// Returns:
//   - MaterialBuilderOption: a function that applies the roughness option to a material
func WithRoughness(roughness float32) MaterialBuilderOption {
	return func(m *material) {
		m.SetRoughness(roughness)
	}
}

// WithMetalness is an option builder that sets the metalness factor of the material.
//
// Parameters:
//   - metalness: the metalness factor (0.0 = dielectric, 1.0 = metal)
//
// Returns:
//   - MaterialBuilderOption: a function that applies the metalness option to a material
func WithMetalness(metalness float32) MaterialBuilderOption {
	return func(m *material) {
		m.SetMetalness(metalness)
	}
}

// WithAlbedoMap is an option builder that sets the albedo texture.
//
// Parameters:
//   - tex: the albedo texture handle
//
// Returns:
//   - MaterialBuilderOption: a function that applies the albedo map option to a material
func WithAlbedoMap(tex gpu.Texture) MaterialBuilderOption {
	return func(m *material) {
		m.albedoMap = tex
	}
}

// WithNormalMap is an option builder that sets the normal texture.
//
// Parameters:
//   - tex: the normal map handle
//
// Returns:
//   - MaterialBuilderOption: a function that applies the normal map option to a material
func WithNormalMap(tex gpu.Texture) MaterialBuilderOption {
	return func(m *material) {
		m.normalMap = tex
	}
}

// WithRoughnessMap is an option builder that sets the roughness texture.
//
// Parameters:
//   - tex: the roughness map handle
//
// Returns:
//   - MaterialBuilderOption: a function that applies the roughness map option to a material
func WithRoughnessMap(tex gpu.Texture) MaterialBuilderOption {
	return func(m *material) {
		m.roughnessMap = tex
	}
}

// WithMetalnessMap is an option builder that sets the metalness texture.
//
// Parameters:
//   - tex: the metalness map handle
//
// Returns:
//   - MaterialBuilderOption: a function that applies the metalness map option to a material
func WithMetalnessMap(tex gpu.Texture) MaterialBuilderOption {
	return func(m *material) {
		m.metalnessMap = tex
	}
}
