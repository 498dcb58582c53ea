package scene

import (
	"github.com/Carmen-Shannon/oxy-forward/engine/light"
	"github.com/Carmen-Shannon/oxy-forward/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

// NodeBuilderOption is a functional option for configuring a Node.
type NodeBuilderOption func(n *Node)

// WithLocal sets the node-to-parent transform.
//
// Parameters:
//   - m: the local transform
//
// Returns:
//   - NodeBuilderOption: option function to apply
func WithLocal(m mgl32.Mat4) NodeBuilderOption {
	return func(n *Node) {
		n.Local = m
	}
}

// WithTRS sets the local transform from a translation, XYZ Euler rotation in radians and scale.
//
// Parameters:
//   - position: the translation
//   - rotation: rotation angles around X, Y and Z
//   - scale: the scale factors
//
// Returns:
//   - NodeBuilderOption: option function to apply
func WithTRS(position, rotation, scale mgl32.Vec3) NodeBuilderOption {
	return func(n *Node) {
		r := mgl32.AnglesToQuat(rotation[0], rotation[1], rotation[2], mgl32.XYZ).Mat4()
		n.Local = mgl32.Translate3D(position[0], position[1], position[2]).
			Mul4(r).
			Mul4(mgl32.Scale3D(scale[0], scale[1], scale[2]))
	}
}

// WithPosition sets the local transform to a pure translation.
//
// Parameters:
//   - x, y, z: the translation
//
// Returns:
//   - NodeBuilderOption: option function to apply
func WithPosition(x, y, z float32) NodeBuilderOption {
	return func(n *Node) {
		n.Local = mgl32.Translate3D(x, y, z)
	}
}

// WithMesh makes the node a mesh node drawing m.
//
// Parameters:
//   - m: the shared mesh
//
// Returns:
//   - NodeBuilderOption: option function to apply
func WithMesh(m *model.Mesh) NodeBuilderOption {
	return func(n *Node) {
		n.Kind = KindMesh
		n.Mesh = m
	}
}

// WithLight makes the node a light node carrying l.
//
// Parameters:
//   - l: the light
//
// Returns:
//   - NodeBuilderOption: option function to apply
func WithLight(l light.Light) NodeBuilderOption {
	return func(n *Node) {
		n.Kind = KindLight
		n.Light = l
	}
}

// WithUpdater attaches a per-frame update hook.
//
// Parameters:
//   - u: the updater
//
// Returns:
//   - NodeBuilderOption: option function to apply
func WithUpdater(u Updater) NodeBuilderOption {
	return func(n *Node) {
		n.Updater = u
	}
}

// WithChildren adopts each child in order. The children must be detached.
//
// Parameters:
//   - children: the nodes to adopt
//
// Returns:
//   - NodeBuilderOption: option function to apply
func WithChildren(children ...*Node) NodeBuilderOption {
	return func(n *Node) {
		for _, c := range children {
			n.AddChild(c)
		}
	}
}
