package model

import "github.com/Carmen-Shannon/oxy-forward/engine/gpu"

// UnassignedLabel is how the group of faces declared before any material switch is printed.
const UnassignedLabel = "(unassigned)"

// MaterialGroup is the set of triangles in a mesh that share one material.
type MaterialGroup struct {
	// Material is the material name, or nil for faces declared before any material switch.
	Material *string

	// Indices lists triangle corners, three per triangle, into the mesh's vertex streams.
	Indices []uint32
}

// Label returns the material name, or UnassignedLabel for the unassigned group.
func (g MaterialGroup) Label() string {
	if g.Material == nil {
		return UnassignedLabel
	}
	return *g.Material
}

// Buffers are the GPU buffers backing a Mesh. Indices is parallel to Mesh.Groups.
type Buffers struct {
	Positions gpu.Buffer
	Normals   gpu.Buffer
	UVs       gpu.Buffer
	Indices   []gpu.Buffer
}
