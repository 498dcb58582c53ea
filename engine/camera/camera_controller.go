package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// CameraController moves and turns a Camera from input once per tick.
// Speeds are per tick, not per second.
type CameraController interface {
	// Update applies the accumulated pointer delta to the camera's yaw and pitch, resets
	// the delta, then moves the camera along every held key's direction.
	//
	// Parameters:
	//   - c: the camera to move
	//   - input: the input state to read
	Update(c Camera, input *InputState)

	// Speed returns the translation per tick per held key.
	//
	// Returns:
	//   - float32: world units per tick
	Speed() float32

	// SetSpeed sets the translation per tick per held key.
	//
	// Parameters:
	//   - speed: world units per tick
	SetSpeed(speed float32)

	// RotationSpeed returns the rotation per pixel of pointer motion.
	//
	// Returns:
	//   - float32: radians per pixel
	RotationSpeed() float32

	// SetRotationSpeed sets the rotation per pixel of pointer motion.
	//
	// Parameters:
	//   - speed: radians per pixel
	SetRotationSpeed(speed float32)

	// Bindings returns the key to camera-space direction table. The map is owned by the
	// controller.
	//
	// Returns:
	//   - map[int]mgl32.Vec3: the bindings
	Bindings() map[int]mgl32.Vec3
}
