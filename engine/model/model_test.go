package model

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-forward/engine/gpu"
	"github.com/Carmen-Shannon/oxy-forward/engine/gpu/headless"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func triangle(options ...MeshBuilderOption) *Mesh {
	base := []MeshBuilderOption{
		WithName("tri"),
		WithVertices(
			[]float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
			[]float32{0, 0, 1, 0, 0, 1, 0, 0, 1},
			[]float32{0, 1, 1, 1, 0, 0},
		),
	}
	return NewMesh(append(base, options...)...)
}

func TestGroupKeepsFirstUseOrder(t *testing.T) {
	m := triangle(
		WithGroup(ptr("red"), 0, 1, 2),
		WithGroup(nil, 2, 1, 0),
		WithGroup(ptr("red"), 0, 2, 1),
	)

	require.Len(t, m.Groups, 2)
	assert.Equal(t, "red", m.Groups[0].Label())
	assert.Equal(t, UnassignedLabel, m.Groups[1].Label())
	assert.Len(t, m.Groups[0].Indices, 6)
	assert.Equal(t, 3, m.TriangleCount())
	assert.Equal(t, 3, m.VertexCount())
	assert.NoError(t, m.Validate())
}

func TestValidate(t *testing.T) {
	assert.Error(t, triangle(WithGroup(nil, 0, 1, 3)).Validate())
	assert.Error(t, triangle(WithGroup(nil, 0, 1)).Validate())

	m := triangle()
	m.UVs = m.UVs[:4]
	assert.Error(t, m.Validate())
}

func TestUploadOnce(t *testing.T) {
	device := headless.NewDevice()
	m := triangle(WithGroup(ptr("a"), 0, 1, 2), WithGroup(ptr("b"), 2, 1, 0))

	first, err := m.Upload(device)
	require.NoError(t, err)
	second, err := m.Upload(device)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Same(t, first, m.Buffers())
	require.Len(t, first.Indices, 2)
	assert.Equal(t, gpu.BufferUsageIndex, first.Indices[1].Usage())

	buffers, _, _ := device.Counts()
	assert.Equal(t, 5, buffers)
}
