// Package model holds the GPU-ready mesh data produced by the loader. A Mesh is shared by
// pointer between every scene node that draws it, so cloning a node never copies vertices
// or creates GPU buffers.
package model

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-forward/engine/gpu"
)

// Mesh is an expanded (one entry per unique vertex combination) vertex stream plus the
// triangle index lists of each material group.
type Mesh struct {
	// Name is the object name the mesh was parsed from.
	Name string

	// Positions holds 3 floats per vertex.
	Positions []float32

	// Normals holds 3 floats per vertex.
	Normals []float32

	// UVs holds 2 floats per vertex, with v already flipped.
	UVs []float32

	// Groups holds one entry per material, in first-use order.
	Groups []MaterialGroup

	buffers *Buffers
}

// NewMesh creates a Mesh configured with the provided options.
//
// Parameters:
//   - options: variadic list of MeshBuilderOption functions to configure the mesh
//
// Returns:
//   - *Mesh: the new mesh
func NewMesh(options ...MeshBuilderOption) *Mesh {
	m := &Mesh{}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// VertexCount returns the number of expanded vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount returns the number of triangles across all groups.
func (m *Mesh) TriangleCount() int {
	n := 0
	for _, g := range m.Groups {
		n += len(g.Indices) / 3
	}
	return n
}

// Group returns the group for the given material name, creating it at the end of Groups
// if it does not exist yet. A nil name selects the unassigned group.
//
// Parameters:
//   - material: the material name, or nil
//
// Returns:
//   - *MaterialGroup: the group, valid until the next call that appends a group
func (m *Mesh) Group(material *string) *MaterialGroup {
	for i := range m.Groups {
		if sameMaterial(m.Groups[i].Material, material) {
			return &m.Groups[i]
		}
	}
	m.Groups = append(m.Groups, MaterialGroup{Material: material})
	return &m.Groups[len(m.Groups)-1]
}

// Validate checks that the streams agree on the vertex count and that every index is in range.
//
// Returns:
//   - error: the first inconsistency found
func (m *Mesh) Validate() error {
	n := m.VertexCount()
	if len(m.Positions)%3 != 0 || len(m.Normals) != n*3 || len(m.UVs) != n*2 {
		return fmt.Errorf("mesh %q: stream sizes disagree (positions %d, normals %d, uvs %d)",
			m.Name, len(m.Positions), len(m.Normals), len(m.UVs))
	}
	for _, g := range m.Groups {
		if len(g.Indices)%3 != 0 {
			return fmt.Errorf("mesh %q: group %s has %d indices, not a multiple of 3", m.Name, g.Label(), len(g.Indices))
		}
		for _, idx := range g.Indices {
			if int(idx) >= n {
				return fmt.Errorf("mesh %q: group %s references vertex %d of %d", m.Name, g.Label(), idx, n)
			}
		}
	}
	return nil
}

// Upload creates the mesh's GPU buffers on first call and returns the same buffers on
// every later call, whichever node asks.
//
// Parameters:
//   - device: the device to create buffers on
//
// Returns:
//   - *Buffers: the mesh's buffers
//   - error: error if buffer creation fails
func (m *Mesh) Upload(device gpu.Device) (*Buffers, error) {
	if m.buffers != nil {
		return m.buffers, nil
	}

	b := &Buffers{Indices: make([]gpu.Buffer, len(m.Groups))}
	var err error
	if b.Positions, err = device.CreateBuffer(gpu.BufferUsageVertex, m.Positions); err != nil {
		return nil, fmt.Errorf("mesh %q positions: %w", m.Name, err)
	}
	if b.Normals, err = device.CreateBuffer(gpu.BufferUsageVertex, m.Normals); err != nil {
		return nil, fmt.Errorf("mesh %q normals: %w", m.Name, err)
	}
	if b.UVs, err = device.CreateBuffer(gpu.BufferUsageVertex, m.UVs); err != nil {
		return nil, fmt.Errorf("mesh %q uvs: %w", m.Name, err)
	}
	for i, g := range m.Groups {
		if b.Indices[i], err = device.CreateBuffer(gpu.BufferUsageIndex, g.Indices); err != nil {
			return nil, fmt.Errorf("mesh %q group %s: %w", m.Name, g.Label(), err)
		}
	}
	m.buffers = b
	return b, nil
}

// Buffers returns the uploaded buffers, or nil before Upload.
func (m *Mesh) Buffers() *Buffers {
	return m.buffers
}

func sameMaterial(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
