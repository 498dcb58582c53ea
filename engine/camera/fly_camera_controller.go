package camera

import (
	"slices"

	"github.com/Carmen-Shannon/oxy-forward/common"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// DefaultSpeed is the default translation per tick.
	DefaultSpeed float32 = 0.05

	// DefaultRotationSpeed is the default rotation per pixel of pointer motion.
	DefaultRotationSpeed float32 = 0.01
)

// DefaultBindings maps the movement keys to camera-space directions before yaw is applied.
func DefaultBindings() map[int]mgl32.Vec3 {
	return map[int]mgl32.Vec3{
		common.KeyW:          {0, 0, -1},
		common.KeyS:          {0, 0, 1},
		common.KeyA:          {-1, 0, 0},
		common.KeyD:          {1, 0, 0},
		common.KeySpace:      {0, 1, 0},
		common.KeyLeftShift:  {0, -1, 0},
		common.KeyRightShift: {0, -1, 0},
	}
}

// flyCameraController is a first-person controller: the pointer turns, keys translate
// in the yaw-only frame so looking up or down never changes the height of a step.
type flyCameraController struct {
	speed         float32
	rotationSpeed float32
	bindings      map[int]mgl32.Vec3
}

var _ CameraController = &flyCameraController{}

// NewFlyController creates a fly controller with DefaultSpeed, DefaultRotationSpeed and
// DefaultBindings.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewFlyController(options ...CameraControllerOption) CameraController {
	cc := &flyCameraController{
		speed:         DefaultSpeed,
		rotationSpeed: DefaultRotationSpeed,
		bindings:      DefaultBindings(),
	}
	for _, option := range options {
		option(cc)
	}
	return cc
}

func (cc *flyCameraController) Update(c Camera, input *InputState) {
	rotation := c.Rotation()
	if dx, dy := input.ConsumePointerDelta(); dx != 0 || dy != 0 {
		rotation[1] += dx * cc.rotationSpeed
		rotation[0] += dy * cc.rotationSpeed
		c.SetRotation(rotation)
		rotation = c.Rotation()
	}

	// Keys are visited in code order so the sum is the same every frame, and a direction
	// bound to several held keys counts once.
	var applied []mgl32.Vec3
	for _, key := range common.SortedKeys(cc.bindings) {
		dir := cc.bindings[key]
		if !input.Held(key) || slices.Contains(applied, dir) {
			continue
		}
		applied = append(applied, dir)
	}
	if len(applied) == 0 {
		return
	}

	position := c.Position()
	for _, dir := range applied {
		position = position.Add(common.RotateAroundY(dir, -rotation[1]).Mul(cc.speed))
	}
	c.SetPosition(position)
}

func (cc *flyCameraController) Speed() float32 {
	return cc.speed
}

func (cc *flyCameraController) SetSpeed(speed float32) {
	cc.speed = speed
}

func (cc *flyCameraController) RotationSpeed() float32 {
	return cc.rotationSpeed
}

func (cc *flyCameraController) SetRotationSpeed(speed float32) {
	cc.rotationSpeed = speed
}

func (cc *flyCameraController) Bindings() map[int]mgl32.Vec3 {
	return cc.bindings
}
