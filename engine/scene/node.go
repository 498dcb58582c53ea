// Package scene holds the scene graph: an owning tree of nodes with per-node local
// transforms, plus the material table the renderer resolves group names against.
//
// Each node is owned by exactly one parent. Meshes are shared by pointer, so cloning a
// subtree copies nodes and transforms but never vertex data or GPU buffers. Nothing in
// this package locks: the graph is only touched from the render thread.
package scene

import (
	"fmt"
	"iter"

	"github.com/Carmen-Shannon/oxy-forward/engine/light"
	"github.com/Carmen-Shannon/oxy-forward/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

// Kind is the node variant.
type Kind int

const (
	// KindTransform groups children under a shared transform and draws nothing itself.
	KindTransform Kind = iota

	// KindMesh draws a shared Mesh.
	KindMesh

	// KindLight contributes a point light at its world translation.
	KindLight
)

func (k Kind) String() string {
	switch k {
	case KindTransform:
		return "transform"
	case KindMesh:
		return "mesh"
	case KindLight:
		return "light"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Node is one element of the scene graph.
type Node struct {
	// Name identifies the node for lookup. Names need not be unique.
	Name string

	// Local is the node-to-parent transform.
	Local mgl32.Mat4

	// Kind selects which of Mesh or Light is meaningful.
	Kind Kind

	// Mesh is shared with every clone of this node. Set for KindMesh.
	Mesh *model.Mesh

	// Light is copied on clone. Set for KindLight.
	Light light.Light

	// Updater, when set, runs once per frame before the world transform is computed.
	Updater Updater

	children []*Node
	attached bool
	world    mgl32.Mat4
}

// NewNode creates a detached transform node with an identity local transform.
//
// Parameters:
//   - name: the node name
//   - options: variadic list of NodeBuilderOption functions to configure the node
//
// Returns:
//   - *Node: the new node
func NewNode(name string, options ...NodeBuilderOption) *Node {
	n := &Node{
		Name:  name,
		Local: mgl32.Ident4(),
		world: mgl32.Ident4(),
	}
	for _, opt := range options {
		opt(n)
	}
	return n
}

// NewMeshNode creates a detached node drawing mesh.
func NewMeshNode(name string, mesh *model.Mesh, options ...NodeBuilderOption) *Node {
	return NewNode(name, append([]NodeBuilderOption{WithMesh(mesh)}, options...)...)
}

// NewLightNode creates a detached node carrying l.
func NewLightNode(name string, l light.Light, options ...NodeBuilderOption) *Node {
	return NewNode(name, append([]NodeBuilderOption{WithLight(l)}, options...)...)
}

// Children returns the node's direct children in order. The slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Attached reports whether the node currently has a parent.
func (n *Node) Attached() bool {
	return n.attached
}

// AddChild appends child to n's children. It panics if child already has a parent or if
// adding it would create a cycle; re-parent with RemoveByName first.
//
// Parameters:
//   - child: the detached node to adopt
func (n *Node) AddChild(child *Node) {
	if child.attached {
		panic(fmt.Sprintf("scene: node %q is already attached", child.Name))
	}
	if child.Contains(n) {
		panic(fmt.Sprintf("scene: adding %q under %q would create a cycle", child.Name, n.Name))
	}
	child.attached = true
	n.children = append(n.children, child)
}

// FindByName returns the first node named name in depth-first pre-order, starting with
// n itself, or nil if there is none.
//
// Parameters:
//   - name: the name to look for
//
// Returns:
//   - *Node: the first match, or nil
func (n *Node) FindByName(name string) *Node {
	for node := range n.Traverse() {
		if node.Name == name {
			return node
		}
	}
	return nil
}

// RemoveByName detaches the first descendant named name in pre-order and returns it.
// The receiver itself is never removed. Returns nil if no descendant matches.
//
// Parameters:
//   - name: the name to look for
//
// Returns:
//   - *Node: the detached subtree root, or nil
func (n *Node) RemoveByName(name string) *Node {
	for node, parent := range n.Traverse() {
		if parent == nil || node.Name != name {
			continue
		}
		parent.RemoveChild(node)
		return node
	}
	return nil
}

// RemoveChild detaches child if it is a direct child of n.
//
// Parameters:
//   - child: the node to detach
//
// Returns:
//   - bool: true if child was found and detached
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i:i], n.children[i+1:]...)
			child.attached = false
			return true
		}
	}
	return false
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	for node := range n.Traverse() {
		if node == other {
			return true
		}
	}
	return false
}

// Clone deep-copies n and its subtree. Names, transforms, kinds, updaters and light
// properties are copied; meshes are shared. The clone is detached.
//
// Returns:
//   - *Node: the root of the copied subtree
func (n *Node) Clone() *Node {
	c := &Node{
		Name:    n.Name,
		Local:   n.Local,
		Kind:    n.Kind,
		Mesh:    n.Mesh,
		Updater: n.Updater,
		world:   n.world,
	}
	if n.Light != nil {
		c.Light = n.Light.Copy()
	}
	if len(n.children) > 0 {
		c.children = make([]*Node, len(n.children))
		for i, child := range n.children {
			c.children[i] = child.Clone()
			c.children[i].attached = true
		}
	}
	return c
}

// Traverse yields every node in the subtree in depth-first pre-order together with its
// parent. The receiver is yielded first with a nil parent. Each call starts a fresh walk.
//
// Returns:
//   - iter.Seq2[*Node, *Node]: (node, parent) pairs
func (n *Node) Traverse() iter.Seq2[*Node, *Node] {
	return func(yield func(*Node, *Node) bool) {
		n.walk(nil, yield)
	}
}

func (n *Node) walk(parent *Node, yield func(*Node, *Node) bool) bool {
	if !yield(n, parent) {
		return false
	}
	for _, c := range n.children {
		if !c.walk(n, yield) {
			return false
		}
	}
	return true
}

// Len returns the number of nodes in the subtree, including n.
func (n *Node) Len() int {
	count := 0
	for range n.Traverse() {
		count++
	}
	return count
}

// Update runs the node's updater, if any.
func (n *Node) Update() {
	if n.Updater != nil {
		n.Updater.Update(n)
	}
}

// World returns the world transform cached by the last UpdateWorld call.
func (n *Node) World() mgl32.Mat4 {
	return n.world
}

// UpdateWorld caches parentWorld * Local as the node's world transform for this frame
// and returns it.
//
// Parameters:
//   - parentWorld: the parent's world transform, identity for the root
//
// Returns:
//   - mgl32.Mat4: the node's world transform
func (n *Node) UpdateWorld(parentWorld mgl32.Mat4) mgl32.Mat4 {
	n.world = parentWorld.Mul4(n.Local)
	return n.world
}
