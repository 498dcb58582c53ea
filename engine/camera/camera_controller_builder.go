package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*flyCameraController)

// WithSpeed sets the translation per tick per held key.
//
// Parameters:
//   - speed: world units per tick
//
// Returns:
//   - CameraControllerOption: functional option to set the speed
func WithSpeed(speed float32) CameraControllerOption {
	return func(cc *flyCameraController) {
		cc.speed = speed
	}
}

// WithRotationSpeed sets the rotation per pixel of pointer motion.
//
// Parameters:
//   - speed: radians per pixel
//
// Returns:
//   - CameraControllerOption: functional option to set the rotation speed
func WithRotationSpeed(speed float32) CameraControllerOption {
	return func(cc *flyCameraController) {
		cc.rotationSpeed = speed
	}
}

// WithKeyBinding binds key to a camera-space direction, replacing any earlier binding.
// A zero direction removes the binding.
//
// Parameters:
//   - key: the key code
//   - dir: the direction before yaw is applied
//
// Returns:
//   - CameraControllerOption: functional option to set the binding
func WithKeyBinding(key int, dir mgl32.Vec3) CameraControllerOption {
	return func(cc *flyCameraController) {
		if dir == (mgl32.Vec3{}) {
			delete(cc.bindings, key)
			return
		}
		cc.bindings[key] = dir
	}
}
