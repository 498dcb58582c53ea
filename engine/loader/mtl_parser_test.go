package loader

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMTL(t *testing.T) {
	materials, err := parseMTL(strings.NewReader(`
# exported
newmtl red
Kd 1 0 0
Ka 0.1 0.1 0.1
illum 2

newmtl metal
Ns 0.3
Pm 1
map_Kd albedo.png
map_Bump -bm 1.0 normal.png
map_Ns rough.png
refl metal.png
`), "test.mtl")
	require.NoError(t, err)
	require.Len(t, materials, 2)

	red := materials[0]
	assert.Equal(t, "red", red.Name)
	require.NotNil(t, red.Albedo)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, *red.Albedo)
	assert.Nil(t, red.Roughness)
	assert.Empty(t, red.AlbedoMap)

	metal := materials[1]
	assert.Nil(t, metal.Albedo)
	assert.InDelta(t, 0.3, *metal.Roughness, 1e-6)
	assert.InDelta(t, 1, *metal.Metalness, 1e-6)
	assert.Equal(t, "albedo.png", metal.AlbedoMap)
	assert.Equal(t, "normal.png", metal.NormalMap)
	assert.Equal(t, "rough.png", metal.RoughnessMap)
	assert.Equal(t, "metal.png", metal.MetalnessMap)
}

func TestParseMTLBumpAliases(t *testing.T) {
	for _, key := range []string{"map_Bump", "map_bump", "bump"} {
		materials, err := parseMTL(strings.NewReader("newmtl m\n"+key+" n.png\n"), "test.mtl")
		require.NoError(t, err)
		assert.Equal(t, "n.png", materials[0].NormalMap, key)
	}
}

func TestParseMTLErrors(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		line  int
		field string
	}{
		{"property before newmtl", "Kd 1 0 0", 1, "Kd"},
		{"bad color", "newmtl m\nKd 1 zero 0", 2, "Kd"},
		{"bad roughness", "newmtl m\nNs rough", 2, "Ns"},
		{"missing metalness", "newmtl m\nPm", 2, "Pm"},
		{"missing map path", "newmtl m\nmap_Kd", 2, "map_Kd"},
		{"missing name", "newmtl", 1, "newmtl"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseMTL(strings.NewReader(tt.src), "test.mtl")
			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.line, pe.Line)
			assert.Equal(t, tt.field, pe.Field)
		})
	}
}

func TestParseMTLKeepsDuplicates(t *testing.T) {
	materials, err := parseMTL(strings.NewReader("newmtl m\nKd 1 0 0\nnewmtl m\nKd 0 1 0\n"), "test.mtl")
	require.NoError(t, err)
	assert.Len(t, materials, 2)
}
