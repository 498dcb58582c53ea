package material

import (
	"github.com/Carmen-Shannon/oxy-forward/engine/gpu"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// DefaultName is the name of the material used for unresolved references.
	DefaultName = "default"

	// DefaultRoughness is used when neither a roughness value nor map is set.
	DefaultRoughness float32 = 0.8

	// DefaultMetalness is used when neither a metalness value nor map is set.
	DefaultMetalness float32 = 0
)

// DefaultAlbedo is used when neither an albedo color nor map is set.
var DefaultAlbedo = mgl32.Vec3{1, 1, 1}

// material is the implementation of the Material interface.
type material struct {
	name         string
	albedo       *mgl32.Vec3
	albedoMap    gpu.Texture
	normalMap    gpu.Texture
	roughness    *float32
	roughnessMap gpu.Texture
	metalness    *float32
	metalnessMap gpu.Texture
}

// Material describes a surface for the PBR pass: scalar factors with optional texture
// maps. Unset scalars fall back to the package defaults. When a map is present the
// shader samples it in preference to the matching scalar.
//
// The builder options apply through the setters; callers may also retune a material
// after load.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// Albedo retrieves the diffuse color and whether it was set explicitly.
	//
	// Returns:
	//   - mgl32.Vec3: the albedo, or DefaultAlbedo when unset
	//   - bool: true if the color was set
	Albedo() (mgl32.Vec3, bool)

	// Roughness retrieves the roughness factor and whether it was set explicitly.
	//
	// Returns:
	//   - float32: the roughness, or DefaultRoughness when unset
	//   - bool: true if the value was set
	Roughness() (float32, bool)

	// Metalness retrieves the metalness factor and whether it was set explicitly.
	//
	// Returns:
	//   - float32: the metalness, or DefaultMetalness when unset
	//   - bool: true if the value was set
	Metalness() (float32, bool)

	// AlbedoMap retrieves the albedo texture, or nil if none is set.
	AlbedoMap() gpu.Texture

	// NormalMap retrieves the normal texture, or nil if none is set.
	NormalMap() gpu.Texture

	// RoughnessMap retrieves the roughness texture, or nil if none is set.
	RoughnessMap() gpu.Texture

	// MetalnessMap retrieves the metalness texture, or nil if none is set.
	MetalnessMap() gpu.Texture

	SetAlbedo(c mgl32.Vec3)
	SetRoughness(r float32)
	SetMetalness(m float32)
	SetAlbedoMap(t gpu.Texture)
	SetNormalMap(t gpu.Texture)
	SetRoughnessMap(t gpu.Texture)
	SetMetalnessMap(t gpu.Texture)
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// Default returns a fresh material with every property at its default.
//
// Returns:
//   - Material: the default material
func Default() Material {
	return NewMaterial(WithName(DefaultName))
}

func (m *material) Name() string {
	return m.name
}

func (m *material) Albedo() (mgl32.Vec3, bool) {
	if m.albedo == nil {
		return DefaultAlbedo, false
	}
	return *m.albedo, true
}

func (m *material) Roughness() (float32, bool) {
	if m.roughness == nil {
		return DefaultRoughness, false
	}
	return *m.roughness, true
}

func (m *material) Metalness() (float32, bool) {
	if m.metalness == nil {
		return DefaultMetalness, false
	}
	return *m.metalness, true
}

func (m *material) AlbedoMap() gpu.Texture {
	return m.albedoMap
}

func (m *material) NormalMap() gpu.Texture {
	return m.normalMap
}

func (m *material) RoughnessMap() gpu.Texture {
	return m.roughnessMap
}

func (m *material) MetalnessMap() gpu.Texture {
	return m.metalnessMap
}

func (m *material) SetAlbedo(c mgl32.Vec3) {
	m.albedo = &c
}

func (m *material) SetRoughness(r float32) {
	m.roughness = &r
}

func (m *material) SetMetalness(v float32) {
	m.metalness = &v
}

func (m *material) SetAlbedoMap(t gpu.Texture) {
	m.albedoMap = t
}

func (m *material) SetNormalMap(t gpu.Texture) {
	m.normalMap = t
}

func (m *material) SetRoughnessMap(t gpu.Texture) {
	m.roughnessMap = t
}

func (m *material) SetMetalnessMap(t gpu.Texture) {
	m.metalnessMap = t
}
