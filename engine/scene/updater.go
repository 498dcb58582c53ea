package scene

import "github.com/go-gl/mathgl/mgl32"

// Updater is a per-frame hook that may change its node's local transform. The same
// updater may be shared by several nodes, including clones; per-node state belongs on
// the node, not the updater.
type Updater interface {
	Update(n *Node)
}

// UpdaterFunc adapts a function to the Updater interface.
type UpdaterFunc func(n *Node)

// Update calls f(n).
func (f UpdaterFunc) Update(n *Node) {
	f(n)
}

// Spin returns an updater that rotates the node by rate radians around each local axis
// every frame.
//
// Parameters:
//   - rate: per-frame rotation around X, Y and Z
//
// Returns:
//   - Updater: the spinning hook
func Spin(rate mgl32.Vec3) Updater {
	step := mgl32.HomogRotate3DX(rate[0]).
		Mul4(mgl32.HomogRotate3DY(rate[1])).
		Mul4(mgl32.HomogRotate3DZ(rate[2]))
	return UpdaterFunc(func(n *Node) {
		n.Local = n.Local.Mul4(step)
	})
}

// Chain returns an updater that runs each of updaters in order.
//
// Parameters:
//   - updaters: the hooks to run
//
// Returns:
//   - Updater: the combined hook
func Chain(updaters ...Updater) Updater {
	return UpdaterFunc(func(n *Node) {
		for _, u := range updaters {
			u.Update(n)
		}
	})
}
