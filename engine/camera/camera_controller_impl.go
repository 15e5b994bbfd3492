package camera

import (
	"sync"

	"github.com/Carmen-Shannon/constellations/common"
	"github.com/Carmen-Shannon/constellations/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// forward is the rig's local viewing direction.
var forward = mgl32.Vec4{0, 0, -1, 0}

// orbitControllerImpl is the single implementation of OrbitController.
// The input latch and every float field are written only by HandleEvent and Update,
// which the engine calls from the tick goroutine; the mutex guards reads from the render side.
type orbitControllerImpl struct {
	mu *sync.Mutex

	tuning Tuning
	pivot  mgl32.Vec3

	latch input.Latch

	// Angles in degrees
	pitch float32
	yaw   float32

	// Smoothed angular velocities in degrees per second
	rotSpeedVert float32
	rotSpeedHor  float32

	zoomAmount float32
	zoomSpeed  float32

	camStartPos mgl32.Vec3
	camEndPos   mgl32.Vec3

	// Derived from the state above at the end of each Update
	position mgl32.Vec3
	target   mgl32.Vec3

	initialPitch      float32
	initialYaw        float32
	initialZoomAmount float32
}

// Compile-time interface compliance check
var _ OrbitController = &orbitControllerImpl{}

// NewOrbitController creates an orbit rig with DefaultTuning, level pitch, zero yaw and zoom 0.
// The near and far endpoints are captured from the start position here.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - OrbitController: the newly created controller
func NewOrbitController(options ...OrbitControllerOption) OrbitController {
	oc := &orbitControllerImpl{
		mu:     &sync.Mutex{},
		tuning: DefaultTuning(),
	}
	for _, option := range options {
		option(oc)
	}
	oc.reset()
	return oc
}

// --- internal helpers ---

// reset restores construction state. Caller must hold the mutex.
func (oc *orbitControllerImpl) reset() {
	oc.latch.Clear()
	oc.captureEndpoints()
	oc.pitch = common.Clamp(oc.initialPitch, oc.tuning.MinPitch, oc.tuning.MaxPitch)
	oc.yaw = oc.initialYaw
	oc.rotSpeedVert = 0
	oc.rotSpeedHor = 0
	oc.zoomAmount = common.Clamp(oc.initialZoomAmount, 0, 1)
	oc.zoomSpeed = oc.tuning.ZoomSpeed
	oc.applyTransform()
}

// captureEndpoints derives the near and far local positions. Caller must hold the mutex.
func (oc *orbitControllerImpl) captureEndpoints() {
	oc.camStartPos = oc.tuning.StartPosition
	oc.camEndPos = oc.tuning.StartPosition.Mul(oc.tuning.FarMultiplier)
}

// zoomSign is the rotation inversion rule, evaluated from the live zoom amount.
// Caller must hold the mutex.
func (oc *orbitControllerImpl) zoomSign() float32 {
	if oc.zoomAmount < 0.5 {
		return 1
	}
	return -1
}

// applyTransform recomputes position and look target from the angles and zoom.
// Caller must hold the mutex.
func (oc *orbitControllerImpl) applyTransform() {
	rot := common.OrbitRotation(oc.pitch, oc.yaw)
	eased := common.Smoothstep(0, 1, oc.zoomAmount)
	local := common.Slerp(oc.camStartPos, oc.camEndPos, eased)

	oc.position = oc.pivot.Add(rot.Mul4x1(local.Vec4(1)).Vec3())
	oc.target = oc.position.Add(rot.Mul4x1(forward).Vec3())
}

// --- OrbitController implementation ---

func (oc *orbitControllerImpl) Update(delta float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()

	rotH, rotV := oc.latch.Axes()
	mult := oc.zoomSign()
	t := oc.tuning

	oc.rotSpeedVert = common.LerpSmoothf(oc.rotSpeedVert, rotV*t.MaxRotSpeed*mult, t.RotationLerpSpeed, delta)
	oc.pitch += oc.rotSpeedVert * delta
	oc.pitch = common.Clamp(oc.pitch, t.MinPitch, t.MaxPitch)

	oc.rotSpeedHor = common.LerpSmoothf(oc.rotSpeedHor, rotH*t.MaxRotSpeed*mult, t.RotationLerpSpeed, delta)
	oc.yaw += oc.rotSpeedHor * delta

	oc.zoomAmount = common.Clamp(oc.zoomAmount+oc.zoomSpeed*delta, 0, 1)

	oc.applyTransform()
}

func (oc *orbitControllerImpl) HandleEvent(ev input.Event) {
	oc.mu.Lock()
	defer oc.mu.Unlock()

	if oc.latch.Apply(ev) {
		return
	}
	if ev.Action == input.ActionZoomToggle && ev.Pressed {
		oc.zoomSpeed = -oc.zoomSpeed
	}
}

func (oc *orbitControllerImpl) Latch() input.Latch {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.latch
}

func (oc *orbitControllerImpl) Reset() {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.reset()
}

func (oc *orbitControllerImpl) Position() (x, y, z float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.position[0], oc.position[1], oc.position[2]
}

func (oc *orbitControllerImpl) Target() (x, y, z float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.target[0], oc.target[1], oc.target[2]
}

func (oc *orbitControllerImpl) Pitch() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.pitch
}

func (oc *orbitControllerImpl) Yaw() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.yaw
}

func (oc *orbitControllerImpl) RotationSpeeds() (vertical, horizontal float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.rotSpeedVert, oc.rotSpeedHor
}

func (oc *orbitControllerImpl) ZoomAmount() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.zoomAmount
}

func (oc *orbitControllerImpl) SetZoomAmount(amount float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.zoomAmount = common.Clamp(amount, 0, 1)
	oc.applyTransform()
}

func (oc *orbitControllerImpl) ZoomSpeed() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.zoomSpeed
}

func (oc *orbitControllerImpl) ZoomDirectionSign() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.zoomSign()
}

func (oc *orbitControllerImpl) Tuning() Tuning {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.tuning
}

func (oc *orbitControllerImpl) SetTuning(t Tuning) {
	oc.mu.Lock()
	defer oc.mu.Unlock()

	magnitude := t.ZoomSpeed
	if magnitude < 0 {
		magnitude = -magnitude
	}
	if oc.zoomSpeed < 0 {
		magnitude = -magnitude
	}

	oc.tuning = t
	oc.zoomSpeed = magnitude
	oc.pitch = common.Clamp(oc.pitch, t.MinPitch, t.MaxPitch)
	oc.captureEndpoints()
	oc.applyTransform()
}
