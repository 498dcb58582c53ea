package loader

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseString(t *testing.T, src string) *ParsedScene {
	t.Helper()
	parsed, err := parseOBJ(strings.NewReader(src), "test.obj")
	require.NoError(t, err)
	return parsed
}

func requireParseError(t *testing.T, src string) *ParseError {
	t.Helper()
	_, err := parseOBJ(strings.NewReader(src), "test.obj")
	require.Error(t, err)
	var pe *ParseError
	require.True(t, errors.As(err, &pe), "expected *ParseError, got %T", err)
	return pe
}

func TestParseOBJEmpty(t *testing.T) {
	parsed := parseString(t, "")
	assert.Empty(t, parsed.Objects)
	assert.Empty(t, parsed.Libraries)

	parsed = parseString(t, "# only a comment\n\n")
	assert.Empty(t, parsed.Objects)
}

func TestParseOBJTriangle(t *testing.T) {
	parsed := parseString(t, `
o tri
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1
`)
	require.Len(t, parsed.Objects, 1)
	m := parsed.Objects[0].Mesh
	require.NotNil(t, m)
	assert.Equal(t, "tri", m.Name)
	assert.Equal(t, 3, m.VertexCount())
	require.Len(t, m.Groups, 1)
	assert.Nil(t, m.Groups[0].Material)
	assert.Equal(t, []uint32{0, 1, 2}, m.Groups[0].Indices)
	assert.NoError(t, m.Validate())
}

func TestParseOBJDeduplicatesByToken(t *testing.T) {
	parsed := parseString(t, `
o quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 0 0 1
f 1//1 2//1 3//1
f 1//1 3//1 4//1
`)
	m := parsed.Objects[0].Mesh
	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, m.Groups[0].Indices)
}

func TestParseOBJFanTriangulation(t *testing.T) {
	parsed := parseString(t, `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
v -1 1 0
f 1 2 3 4 5
`)
	require.Len(t, parsed.Objects, 1)
	assert.Equal(t, DefaultObjectName, parsed.Objects[0].Name)
	m := parsed.Objects[0].Mesh
	assert.Equal(t, 3, m.TriangleCount())
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3, 0, 3, 4}, m.Groups[0].Indices)
}

func TestParseOBJFlipsTexcoordV(t *testing.T) {
	parsed := parseString(t, `
v 0 0 0
v 1 0 0
v 0 1 0
vt 0.25 0.75
f 1/1 2/1 3/1
`)
	m := parsed.Objects[0].Mesh
	assert.InDelta(t, 0.25, m.UVs[0], 1e-6)
	assert.InDelta(t, 0.25, m.UVs[1], 1e-6)
}

func TestParseOBJMissingAttributes(t *testing.T) {
	parsed := parseString(t, `
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`)
	m := parsed.Objects[0].Mesh
	assert.Equal(t, []float32{0, 0, 0, 0, 0, 0}, m.UVs)
	for i := range 3 {
		assert.InDeltaSlice(t, []float32{0, 0, 1}, m.Normals[i*3:i*3+3], 1e-6)
	}
}

func TestParseOBJDegenerateFaceNormal(t *testing.T) {
	parsed := parseString(t, `
v 0 0 0
v 1 0 0
v 2 0 0
f 1 2 3
`)
	assert.Equal(t, []float32{0, 1, 0}, parsed.Objects[0].Mesh.Normals[:3])
}

func TestParseOBJNegativeIndices(t *testing.T) {
	parsed := parseString(t, `
v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
f 1 2 3
`)
	m := parsed.Objects[0].Mesh
	// relative and absolute references to the same vertices share expanded entries
	assert.Equal(t, 3, m.VertexCount())
	assert.Equal(t, []uint32{0, 1, 2, 0, 1, 2}, m.Groups[0].Indices)
}

func TestParseOBJGroupsByMaterial(t *testing.T) {
	parsed := parseString(t, `
mtllib a.mtl b.mtl
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
usemtl red
f 1 2 3
usemtl blue
f 3 2 1
usemtl red
f 2 3 1
`)
	assert.Equal(t, []string{"a.mtl", "b.mtl"}, parsed.Libraries)
	m := parsed.Objects[0].Mesh
	require.Len(t, m.Groups, 3)
	assert.Nil(t, m.Groups[0].Material)
	assert.Equal(t, "red", *m.Groups[1].Material)
	assert.Equal(t, "blue", *m.Groups[2].Material)
	assert.Len(t, m.Groups[1].Indices, 6)
}

func TestParseOBJMaterialCursorSpansObjects(t *testing.T) {
	parsed := parseString(t, `
o a
usemtl red
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
o b
v 0 0 0
v 1 0 0
v 0 1 0
f 4 5 6
`)
	require.Len(t, parsed.Objects, 2)
	b := parsed.Objects[1].Mesh
	require.Len(t, b.Groups, 1)
	assert.Equal(t, "red", *b.Groups[0].Material)
}

func TestParseOBJPerObjectPools(t *testing.T) {
	parsed := parseString(t, `
o a
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
o b
v 5 5 5
v 6 5 5
v 5 6 5
f 4 5 6
`)
	b := parsed.Objects[1].Mesh
	assert.Equal(t, []float32{5, 5, 5}, b.Positions[:3])

	pe := requireParseError(t, `
o a
v 0 0 0
v 1 0 0
v 0 1 0
o b
v 5 5 5
f 1 2 4
`)
	assert.Equal(t, 8, pe.Line)
	assert.Equal(t, "f[0]", pe.Field)
}

func TestParseOBJObjectWithoutFaces(t *testing.T) {
	parsed := parseString(t, `
o pivot
p base
mm 1 0 0 0 0 1 0 0 0 0 1 0 2 3 4 1
`)
	require.Len(t, parsed.Objects, 1)
	obj := parsed.Objects[0]
	assert.Nil(t, obj.Mesh)
	assert.Equal(t, "base", obj.Parent)
	require.NotNil(t, obj.Local)
	assert.Equal(t, mgl32.Vec3{2, 3, 4}, obj.Local.Col(3).Vec3())
}

func TestParseOBJErrors(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		line  int
		field string
	}{
		{"bad number", "v 1 x 2", 1, "v"},
		{"short vertex", "v 1 2", 1, "v"},
		{"bad texcoord", "vt a b", 1, "vt"},
		{"out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 9", 4, "f[2]"},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2", 4, "f[0]"},
		{"too few corners", "v 0 0 0\nv 1 0 0\nf 1 2", 3, "f"},
		{"malformed reference", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1/1/1/1 2 3", 4, "f[0]"},
		{"mm count", "o a\nmm 1 0 0 0 0 1 0 0 0 0 1 0 0 0 0", 2, "mm"},
		{"mm value", "o a\nmm 1 0 0 0 0 1 0 0 0 0 1 0 0 0 0 z", 2, "mm[15]"},
		{"empty object name", "o", 1, "o"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pe := requireParseError(t, tt.src)
			assert.Equal(t, "test.obj", pe.File)
			assert.Equal(t, tt.line, pe.Line)
			assert.Equal(t, tt.field, pe.Field)
		})
	}
}

func TestParseOBJIgnoresUnknownRecords(t *testing.T) {
	parsed := parseString(t, `
s off
g group
v 0 0 0 # trailing comment
v 1 0 0
v 0 1 0
l 1 2
f 1 2 3
`)
	require.Len(t, parsed.Objects, 1)
	assert.Equal(t, 1, parsed.Objects[0].Mesh.TriangleCount())
}
