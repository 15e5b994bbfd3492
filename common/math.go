package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Perspective creates a right-handed perspective projection matrix mapping depth into the
// WebGPU clip range [0, 1]. mgl32.Perspective targets the OpenGL [-1, 1] range instead.
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - mgl32.Mat4: the projection matrix (column-major)
func Perspective(fovY, aspect, near, far float32) mgl32.Mat4 {
	f := 1.0 / float32(math.Tan(float64(fovY)/2.0))
	out := mgl32.Ident4()

	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	out[15] = 0.0
	return out
}

// OrbitRotation builds the rotation of an orbit rig: yaw around the world Y axis applied after
// pitch around the local X axis. Angles are in degrees.
//
// Parameters:
//   - pitchDeg: rotation around X in degrees
//   - yawDeg: rotation around Y in degrees
//
// Returns:
//   - mgl32.Mat4: the combined rotation
func OrbitRotation(pitchDeg, yawDeg float32) mgl32.Mat4 {
	yaw := mgl32.HomogRotate3DY(mgl32.DegToRad(yawDeg))
	pitch := mgl32.HomogRotate3DX(mgl32.DegToRad(pitchDeg))
	return yaw.Mul4(pitch)
}
