package scene

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-forward/engine/light"
	"github.com/Carmen-Shannon/oxy-forward/engine/model"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTree returns root -> (a -> a1 -> a2 -> a3), b
func buildTree() *Node {
	a3 := NewNode("a3")
	a2 := NewNode("a2", WithChildren(a3))
	a1 := NewNode("a1", WithChildren(a2))
	a := NewNode("a", WithChildren(a1))
	b := NewNode("b")
	return NewNode("root", WithChildren(a, b))
}

func TestTraversePreOrder(t *testing.T) {
	leaf := NewNode("leaf")
	left := NewNode("left", WithChildren(leaf))
	right := NewNode("right")
	root := NewNode("root", WithChildren(left, right))

	var names []string
	parents := map[string]*Node{}
	for n, p := range root.Traverse() {
		names = append(names, n.Name)
		parents[n.Name] = p
	}
	assert.Equal(t, []string{"root", "left", "leaf", "right"}, names)
	assert.Nil(t, parents["root"])
	assert.Same(t, root, parents["left"])
	assert.Same(t, left, parents["leaf"])
	assert.Same(t, root, parents["right"])
}

func TestTraverseIsRestartableAndStoppable(t *testing.T) {
	root := buildTree()
	assert.Equal(t, 6, root.Len())
	assert.Equal(t, 6, root.Len())

	var seen []string
	for n := range root.Traverse() {
		seen = append(seen, n.Name)
		if n.Name == "a2" {
			break
		}
	}
	assert.Equal(t, []string{"root", "a", "a1", "a2"}, seen)
}

func TestFindByName(t *testing.T) {
	root := buildTree()
	dup := NewNode("a2", WithPosition(9, 9, 9))
	root.FindByName("b").AddChild(dup)

	found := root.FindByName("a2")
	require.NotNil(t, found)
	assert.NotSame(t, dup, found, "first pre-order match wins")
	assert.Same(t, root, root.FindByName("root"))
	assert.Nil(t, root.FindByName("missing"))
}

func TestRemoveByName(t *testing.T) {
	root := buildTree()

	removed := root.RemoveByName("a1")
	require.NotNil(t, removed)
	assert.False(t, removed.Attached())
	assert.Equal(t, 3, removed.Len())
	assert.Equal(t, 3, root.Len())
	assert.Empty(t, root.FindByName("a").Children())

	assert.Nil(t, root.RemoveByName("a1"))
	assert.Nil(t, root.RemoveByName("root"), "the receiver is never removed")

	root.FindByName("b").AddChild(removed)
	assert.Equal(t, 6, root.Len())
}

func TestAddChildPanicsWhenAttached(t *testing.T) {
	root := buildTree()
	a := root.FindByName("a")

	assert.Panics(t, func() { root.FindByName("b").AddChild(a) })
	assert.Panics(t, func() { root.FindByName("a3").AddChild(root) })
}

func TestCloneSharesMeshes(t *testing.T) {
	mesh := model.NewMesh(model.WithName("cube"))
	lamp := light.NewLight(light.WithColor(1, 0.5, 0.5))
	spin := Spin(mgl32.Vec3{0, 0.1, 0})

	original := NewNode("fan",
		WithPosition(1, 2, 3),
		WithUpdater(spin),
		WithChildren(
			NewMeshNode("blade", mesh),
			NewMeshNode("hub", mesh, WithChildren(NewLightNode("glow", lamp))),
		),
	)
	NewNode("root", WithChildren(original))

	clone := original.Clone()
	assert.False(t, clone.Attached())
	require.Equal(t, original.Len(), clone.Len())

	var origNodes, cloneNodes []*Node
	for n := range original.Traverse() {
		origNodes = append(origNodes, n)
	}
	for n := range clone.Traverse() {
		cloneNodes = append(cloneNodes, n)
	}
	for i := range origNodes {
		o, c := origNodes[i], cloneNodes[i]
		assert.NotSame(t, o, c)
		assert.Equal(t, o.Name, c.Name)
		assert.Equal(t, o.Local, c.Local)
		assert.Equal(t, o.Kind, c.Kind)
		if o.Mesh != nil {
			assert.Same(t, o.Mesh, c.Mesh)
		}
	}

	glow := clone.FindByName("glow")
	require.NotNil(t, glow)
	glow.Light.SetColor(mgl32.Vec3{0, 0, 1})
	assert.Equal(t, mgl32.Vec3{1, 0.5, 0.5}, lamp.Color())

	clone.Local = mgl32.Ident4()
	assert.Equal(t, mgl32.Translate3D(1, 2, 3), original.Local)
}

func TestUpdateWorld(t *testing.T) {
	parent := NewNode("parent", WithPosition(1, 0, 0))
	child := NewNode("child", WithPosition(0, 2, 0))
	parent.AddChild(child)

	pw := parent.UpdateWorld(mgl32.Ident4())
	cw := child.UpdateWorld(pw)
	assert.Equal(t, mgl32.Translate3D(1, 2, 0), cw)
	assert.Equal(t, cw, child.World())
}

func TestSpinUpdater(t *testing.T) {
	n := NewNode("fan", WithUpdater(Spin(mgl32.Vec3{0, 0.5, 0})))
	n.Update()
	n.Update()
	want := mgl32.HomogRotate3DY(1)
	assert.InDeltaSlice(t, want[:], n.Local[:], 1e-6)

	calls := 0
	counter := UpdaterFunc(func(*Node) { calls++ })
	NewNode("x", WithUpdater(Chain(counter, counter))).Update()
	assert.Equal(t, 2, calls)
}

func TestRemoveChildByIdentity(t *testing.T) {
	first := NewNode("twin")
	second := NewNode("twin")
	root := NewNode("root", WithChildren(first, second))

	assert.True(t, root.RemoveChild(second))
	assert.False(t, root.RemoveChild(second))
	require.Len(t, root.Children(), 1)
	assert.Same(t, first, root.Children()[0])
	assert.True(t, root.Contains(first))
	assert.False(t, root.Contains(second))
}
