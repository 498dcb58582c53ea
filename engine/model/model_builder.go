package model

// MeshBuilderOption is a function that configures a Mesh during construction.
type MeshBuilderOption func(*Mesh)

// WithName is an option builder that sets the mesh name.
//
// Parameters:
//   - name: the object name
//
// Returns:
//   - MeshBuilderOption: a function that applies the name option to a mesh
func WithName(name string) MeshBuilderOption {
	return func(m *Mesh) {
		m.Name = name
	}
}

// WithVertices is an option builder that sets the three expanded vertex streams.
//
// Parameters:
//   - positions: 3 floats per vertex
//   - normals: 3 floats per vertex
//   - uvs: 2 floats per vertex
//
// Returns:
//   - MeshBuilderOption: a function that applies the vertex streams to a mesh
func WithVertices(positions, normals, uvs []float32) MeshBuilderOption {
	return func(m *Mesh) {
		m.Positions = positions
		m.Normals = normals
		m.UVs = uvs
	}
}

// WithGroup is an option builder that appends triangles to the group for material,
// creating the group if needed.
//
// Parameters:
//   - material: the material name, or nil for the unassigned group
//   - indices: triangle corner indices, three per triangle
//
// Returns:
//   - MeshBuilderOption: a function that applies the group to a mesh
func WithGroup(material *string, indices ...uint32) MeshBuilderOption {
	return func(m *Mesh) {
		g := m.Group(material)
		g.Indices = append(g.Indices, indices...)
	}
}
