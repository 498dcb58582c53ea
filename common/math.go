package common

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ViewMatrix builds a first-person view matrix from Euler angles and a world-space position.
// The rotation is applied X first, then Y, then Z, followed by the negated translation:
// view = Rx(pitch) * Ry(yaw) * Rz(roll) * T(-position). All matrices are column-major.
//
// Parameters:
//   - rotation: pitch, yaw and roll in radians
//   - position: camera position in world space
//
// Returns:
//   - mgl32.Mat4: the view matrix
func ViewMatrix(rotation, position mgl32.Vec3) mgl32.Mat4 {
	view := mgl32.HomogRotate3DX(rotation[0])
	view = view.Mul4(mgl32.HomogRotate3DY(rotation[1]))
	view = view.Mul4(mgl32.HomogRotate3DZ(rotation[2]))
	return view.Mul4(mgl32.Translate3D(-position[0], -position[1], -position[2]))
}

// Translation extracts the translation component of a column-major 4x4 transform.
//
// Parameters:
//   - m: the transform
//
// Returns:
//   - mgl32.Vec3: the translation (fourth column, xyz)
func Translation(m mgl32.Mat4) mgl32.Vec3 {
	return mgl32.Vec3{m[12], m[13], m[14]}
}

// MatFromSlice builds a column-major 4x4 matrix from exactly 16 values.
//
// Parameters:
//   - values: the 16 matrix elements in column-major order
//
// Returns:
//   - mgl32.Mat4: the matrix
//   - error: error if len(values) != 16
func MatFromSlice(values []float32) (mgl32.Mat4, error) {
	var m mgl32.Mat4
	if len(values) != 16 {
		return m, fmt.Errorf("expected 16 matrix values, got %d", len(values))
	}
	copy(m[:], values)
	return m, nil
}

// RotateAroundY rotates a direction vector around the Y axis by angle radians.
//
// Parameters:
//   - v: the direction to rotate
//   - angle: rotation in radians
//
// Returns:
//   - mgl32.Vec3: the rotated direction
func RotateAroundY(v mgl32.Vec3, angle float32) mgl32.Vec3 {
	return mgl32.HomogRotate3DY(angle).Mul4x1(v.Vec4(0)).Vec3()
}
