package scene

import (
	"github.com/Carmen-Shannon/oxy-forward/engine/renderer/material"
)

// RootName is the name given to the root node of a loaded scene.
const RootName = "root"

type scene struct {
	root            *Node
	materials       map[string]material.Material
	defaultMaterial material.Material
}

// Scene owns a root node and the material table for the meshes beneath it.
type Scene interface {
	// Root returns the root node.
	//
	// Returns:
	//   - *Node: the root
	Root() *Node

	// Materials returns the name to material table. The map is owned by the scene.
	//
	// Returns:
	//   - map[string]material.Material: the materials
	Materials() map[string]material.Material

	// AddMaterial registers m under its name, replacing any earlier material of that name.
	//
	// Parameters:
	//   - m: the material
	AddMaterial(m material.Material)

	// DefaultMaterial returns the material used for unassigned and unresolved groups.
	//
	// Returns:
	//   - material.Material: the fallback material
	DefaultMaterial() material.Material

	// ResolveMaterial looks up a group's material. A nil name or a name with no entry
	// resolves to the default material.
	//
	// Parameters:
	//   - name: the group's material name, or nil
	//
	// Returns:
	//   - material.Material: the material to draw with
	ResolveMaterial(name *string) material.Material
}

var _ Scene = &scene{}

// NewScene creates a scene with an empty root named RootName and the package default
// material, then applies options.
//
// Parameters:
//   - options: variadic list of SceneBuilderOption functions to configure the scene
//
// Returns:
//   - Scene: the new scene
func NewScene(options ...SceneBuilderOption) Scene {
	s := &scene{
		root:            NewNode(RootName),
		materials:       make(map[string]material.Material),
		defaultMaterial: material.Default(),
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *scene) Root() *Node {
	return s.root
}

func (s *scene) Materials() map[string]material.Material {
	return s.materials
}

func (s *scene) AddMaterial(m material.Material) {
	s.materials[m.Name()] = m
}

func (s *scene) DefaultMaterial() material.Material {
	return s.defaultMaterial
}

func (s *scene) ResolveMaterial(name *string) material.Material {
	if name == nil {
		return s.defaultMaterial
	}
	if m, ok := s.materials[*name]; ok {
		return m
	}
	return s.defaultMaterial
}
