package scene

import "github.com/Carmen-Shannon/oxy-forward/engine/renderer/material"

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithRoot replaces the scene's root node.
//
// Parameters:
//   - root: the new root
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithRoot(root *Node) SceneBuilderOption {
	return func(s *scene) {
		s.root = root
	}
}

// WithMaterials registers each material under its name.
//
// Parameters:
//   - materials: the materials to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithMaterials(materials ...material.Material) SceneBuilderOption {
	return func(s *scene) {
		for _, m := range materials {
			s.materials[m.Name()] = m
		}
	}
}

// WithDefaultMaterial sets the fallback material for unassigned and unresolved groups.
//
// Parameters:
//   - m: the fallback material
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithDefaultMaterial(m material.Material) SceneBuilderOption {
	return func(s *scene) {
		s.defaultMaterial = m
	}
}
