package camera

import "github.com/go-gl/mathgl/mgl32"

// Tuning holds the orbit rig's tunable constants.
type Tuning struct {
	// MaxRotSpeed is the target angular speed in degrees per second while a direction is held.
	MaxRotSpeed float32
	// MinPitch and MaxPitch bound the vertical angle in degrees.
	MinPitch, MaxPitch float32
	// RotationLerpSpeed is the smoothing rate (1/seconds) of the angular velocities.
	RotationLerpSpeed float32
	// ZoomSpeed is the signed initial zoom rate per second.
	ZoomSpeed float32
	// StartPosition is the camera's local position at zoom 0.
	StartPosition mgl32.Vec3
	// FarMultiplier scales StartPosition to get the local position at zoom 1.
	FarMultiplier float32
}

// DefaultTuning returns the stock rig constants.
//
// Returns:
//   - Tuning: max 90 deg/s, pitch within ±89.9, smoothing rate 4, zoom speed -0.3, far point 10x start
func DefaultTuning() Tuning {
	return Tuning{
		MaxRotSpeed:       90.0,
		MinPitch:          -89.9,
		MaxPitch:          89.9,
		RotationLerpSpeed: 4.0,
		ZoomSpeed:         -0.3,
		StartPosition:     mgl32.Vec3{0, 0, 5},
		FarMultiplier:     10.0,
	}
}

// OrbitControllerOption is a functional option for configuring an OrbitController.
type OrbitControllerOption func(*orbitControllerImpl)

// WithTuning replaces every tunable at once.
//
// Parameters:
//   - t: the tunables
//
// Returns:
//   - OrbitControllerOption: functional option to set the tuning
func WithTuning(t Tuning) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.tuning = t
	}
}

// WithMaxRotSpeed sets the held-direction angular speed.
//
// Parameters:
//   - speed: degrees per second
//
// Returns:
//   - OrbitControllerOption: functional option to set the max rotation speed
func WithMaxRotSpeed(speed float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.tuning.MaxRotSpeed = speed
	}
}

// WithPitchBounds sets the minimum and maximum pitch.
//
// Parameters:
//   - min: lowest pitch in degrees
//   - max: highest pitch in degrees
//
// Returns:
//   - OrbitControllerOption: functional option to set pitch bounds
func WithPitchBounds(min, max float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.tuning.MinPitch = min
		oc.tuning.MaxPitch = max
	}
}

// WithRotationLerpSpeed sets the smoothing rate of the angular velocities.
//
// Parameters:
//   - speed: approach rate in 1/seconds
//
// Returns:
//   - OrbitControllerOption: functional option to set the smoothing rate
func WithRotationLerpSpeed(speed float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.tuning.RotationLerpSpeed = speed
	}
}

// WithZoomSpeed sets the signed initial zoom rate.
//
// Parameters:
//   - speed: zoom amount per second; negative moves toward the near point
//
// Returns:
//   - OrbitControllerOption: functional option to set the zoom speed
func WithZoomSpeed(speed float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.tuning.ZoomSpeed = speed
	}
}

// WithStartPosition sets the camera's local position at zoom 0.
//
// Parameters:
//   - x, y, z: local position relative to the pivot before rotation
//
// Returns:
//   - OrbitControllerOption: functional option to set the start position
func WithStartPosition(x, y, z float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.tuning.StartPosition = mgl32.Vec3{x, y, z}
	}
}

// WithFarMultiplier sets how far the zoom-1 position is, as a multiple of the start position.
//
// Parameters:
//   - m: scale factor
//
// Returns:
//   - OrbitControllerOption: functional option to set the far multiplier
func WithFarMultiplier(m float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.tuning.FarMultiplier = m
	}
}

// WithPivot sets the world-space point the rig orbits.
//
// Parameters:
//   - x, y, z: pivot coordinates
//
// Returns:
//   - OrbitControllerOption: functional option to set the pivot
func WithPivot(x, y, z float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.pivot = mgl32.Vec3{x, y, z}
	}
}

// WithInitialAngles sets the starting pitch and yaw.
//
// Parameters:
//   - pitch: degrees, clamped into the pitch bounds
//   - yaw: degrees
//
// Returns:
//   - OrbitControllerOption: functional option to set the starting angles
func WithInitialAngles(pitch, yaw float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.initialPitch = pitch
		oc.initialYaw = yaw
	}
}

// WithInitialZoomAmount sets the starting zoom amount.
//
// Parameters:
//   - amount: normalized zoom, clamped to [0, 1]
//
// Returns:
//   - OrbitControllerOption: functional option to set the starting zoom
func WithInitialZoomAmount(amount float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.initialZoomAmount = amount
	}
}
