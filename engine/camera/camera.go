// Package camera holds the first-person camera, its fly controller and the host-owned
// input state the controller reads each tick.
package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-forward/common"
	"github.com/go-gl/mathgl/mgl32"
)

type cameraImpl struct {
	position mgl32.Vec3
	rotation mgl32.Vec3

	fov    float32
	aspect float32
	near   float32
	far    float32

	viewMatrix       mgl32.Mat4
	projectionMatrix mgl32.Mat4

	controller CameraController
}

// Camera defines the interface for the camera system.
// The camera holds a world position, Euler rotation and perspective settings, and
// recomputes its view and projection matrices whenever Update runs.
// A Camera is owned by the render thread and is not safe for concurrent use.
type Camera interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: the position
	Position() mgl32.Vec3

	// Rotation returns pitch, yaw and roll in radians.
	//
	// Returns:
	//   - mgl32.Vec3: the rotation
	Rotation() mgl32.Vec3

	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// ViewMatrix returns the view matrix computed by the last Update.
	//
	// Returns:
	//   - mgl32.Mat4: Rx(pitch) * Ry(yaw) * Rz(roll) * T(-position)
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the perspective projection matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// Controller returns the attached CameraController, or nil.
	//
	// Returns:
	//   - CameraController: the attached controller or nil
	Controller() CameraController

	// Update runs the attached controller against input, if both are present, and
	// recomputes the view matrix. Call once per frame before drawing.
	//
	// Parameters:
	//   - input: the host-owned input state, may be nil
	Update(input *InputState)

	// SetPosition moves the camera.
	//
	// Parameters:
	//   - p: the new world-space position
	SetPosition(p mgl32.Vec3)

	// SetRotation sets pitch, yaw and roll. Pitch is clamped to [-π/2, π/2].
	//
	// Parameters:
	//   - r: the new rotation in radians
	SetRotation(r mgl32.Vec3)

	// SetFov sets the field of view in radians and recomputes the projection.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// SetAspect sets the aspect ratio (width / height) and recomputes the projection.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetNear sets the near clipping plane distance and recomputes the projection.
	//
	// Parameters:
	//   - near: near plane distance
	SetNear(near float32)

	// SetFar sets the far clipping plane distance and recomputes the projection.
	//
	// Parameters:
	//   - far: far plane distance
	SetFar(far float32)

	// SetController attaches a CameraController to the camera.
	//
	// Parameters:
	//   - ctrl: the controller to attach
	SetController(ctrl CameraController)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera at the origin looking down -Z, with an 80 degree field
// of view and clip planes at 0.1 and 100.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		fov:    mgl32.DegToRad(80),
		aspect: 1.0,
		near:   0.1,
		far:    100.0,
	}
	for _, option := range options {
		option(c)
	}
	c.rotation[0] = clampPitch(c.rotation[0])
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	return c.position
}

func (c *cameraImpl) Rotation() mgl32.Vec3 {
	return c.rotation
}

func (c *cameraImpl) Fov() float32 {
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	return c.near
}

func (c *cameraImpl) Far() float32 {
	return c.far
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	return c.projectionMatrix
}

func (c *cameraImpl) Controller() CameraController {
	return c.controller
}

func (c *cameraImpl) Update(input *InputState) {
	if c.controller != nil && input != nil {
		c.controller.Update(c, input)
	}
	c.viewMatrix = common.ViewMatrix(c.rotation, c.position)
}

func (c *cameraImpl) SetPosition(p mgl32.Vec3) {
	c.position = p
}

func (c *cameraImpl) SetRotation(r mgl32.Vec3) {
	r[0] = clampPitch(r[0])
	c.rotation = r
}

func (c *cameraImpl) SetFov(fov float32) {
	c.fov = fov
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) SetNear(near float32) {
	c.near = near
	c.updateMatrices()
}

func (c *cameraImpl) SetFar(far float32) {
	c.far = far
	c.updateMatrices()
}

func (c *cameraImpl) SetController(ctrl CameraController) {
	c.controller = ctrl
}

// updateMatrices recalculates the view and projection matrices from the current state.
func (c *cameraImpl) updateMatrices() {
	c.viewMatrix = common.ViewMatrix(c.rotation, c.position)
	c.projectionMatrix = mgl32.Perspective(c.fov, c.aspect, c.near, c.far)
}

func clampPitch(pitch float32) float32 {
	return mgl32.Clamp(pitch, -math.Pi/2, math.Pi/2)
}
