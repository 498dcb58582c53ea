package material

import (
	"context"
	"testing"

	"github.com/Carmen-Shannon/oxy-forward/engine/gpu"
	"github.com/Carmen-Shannon/oxy-forward/engine/gpu/headless"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	m := Default()
	assert.Equal(t, DefaultName, m.Name())

	albedo, set := m.Albedo()
	assert.False(t, set)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, albedo)

	roughness, set := m.Roughness()
	assert.False(t, set)
	assert.Equal(t, float32(0.8), roughness)

	metalness, set := m.Metalness()
	assert.False(t, set)
	assert.Zero(t, metalness)
	assert.Nil(t, m.AlbedoMap())
}

func TestOptions(t *testing.T) {
	m := NewMaterial(WithName("red"), WithAlbedo(mgl32.Vec3{1, 0, 0}), WithRoughness(0.25), WithMetalness(1))

	albedo, set := m.Albedo()
	assert.True(t, set)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, albedo)
	r, _ := m.Roughness()
	assert.Equal(t, float32(0.25), r)
	mt, _ := m.Metalness()
	assert.Equal(t, float32(1), mt)
}

func TestBindSetsFlagsPerMap(t *testing.T) {
	device := headless.NewDevice()
	p, err := device.CompileProgram(gpu.ProgramSource{Name: "pbr", Uniforms: UniformNames})
	require.NoError(t, err)
	metal, err := device.CreateTexture(context.Background(), "metal.png")
	require.NoError(t, err)

	device.UseProgram(p)
	Bind(device, p, NewMaterial(WithMetalnessMap(metal)))

	albedoFlag := device.Uniform("pbr", "uUseAlbedoMap")
	require.Len(t, albedoFlag, 1)
	assert.Equal(t, int32(0), albedoFlag[0].Int)

	metalFlag := device.Uniform("pbr", "uUseMetalnessMap")
	require.Len(t, metalFlag, 1)
	assert.Equal(t, int32(1), metalFlag[0].Int)

	binds := device.CallsOf(headless.OpBindTexture)
	require.Len(t, binds, 4)
	for _, b := range binds {
		if b.Unit == UnitMetalness {
			assert.Same(t, metal, b.Texture)
		} else {
			assert.Nil(t, b.Texture)
		}
	}
}
