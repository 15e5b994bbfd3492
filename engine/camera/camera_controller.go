package camera

import (
	"github.com/Carmen-Shannon/constellations/engine/input"
)

// CameraController is the positional source a Camera reads each frame.
// Controllers own positional state; the Camera only derives matrices from it.
type CameraController interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: world-space camera position
	Position() (x, y, z float32)

	// Target returns the point the camera looks at.
	//
	// Returns:
	//   - x, y, z: world-space look-at point
	Target() (x, y, z float32)
}

// OrbitController is a smoothed orbit rig. Directional input held in its latch drives angular
// velocities that approach their targets exponentially; a zoom toggle ping-pongs the camera between
// a near and a far point along a fixed line. Rotation sense inverts once the zoom passes its midpoint.
type OrbitController interface {
	CameraController

	// Update advances the rig by one frame.
	// Must be called once per tick with the measured frame delta.
	//
	// Parameters:
	//   - delta: elapsed time in seconds (>= 0)
	Update(delta float32)

	// HandleEvent applies an unhandled input event. Directional presses and releases are latched;
	// a zoom-toggle press flips the sign of the zoom speed. Other events are ignored.
	//
	// Parameters:
	//   - ev: the input event
	HandleEvent(ev input.Event)

	// Latch returns a copy of the current held-direction state.
	//
	// Returns:
	//   - input.Latch: the latched flags
	Latch() input.Latch

	// Reset restores the state captured at construction and releases all held directions.
	Reset()

	// Pitch returns the current vertical angle in degrees.
	Pitch() float32

	// Yaw returns the accumulated horizontal angle in degrees.
	Yaw() float32

	// RotationSpeeds returns the current smoothed angular velocities in degrees per second.
	//
	// Returns:
	//   - vertical: pitch velocity
	//   - horizontal: yaw velocity
	RotationSpeeds() (vertical, horizontal float32)

	// ZoomAmount returns the normalized zoom in [0, 1]; 0 is nearest, 1 farthest.
	ZoomAmount() float32

	// SetZoomAmount sets the normalized zoom, clamped to [0, 1].
	//
	// Parameters:
	//   - amount: the new zoom amount
	SetZoomAmount(amount float32)

	// ZoomSpeed returns the signed zoom rate per second.
	ZoomSpeed() float32

	// ZoomDirectionSign returns +1 while the zoom is below the midpoint and -1 past it.
	ZoomDirectionSign() float32

	// Tuning returns the controller's current tunables.
	Tuning() Tuning

	// SetTuning replaces the tunables while running. The zoom speed keeps its current direction
	// and takes the new magnitude; pitch is re-clamped into the new bounds.
	//
	// Parameters:
	//   - t: the new tunables
	SetTuning(t Tuning)
}
