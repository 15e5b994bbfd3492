package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCameraViewMatrixFollowsController(t *testing.T) {
	oc := NewOrbitController()
	cam := NewCamera(
		WithFov(mgl32.DegToRad(60)),
		WithAspect(16.0/9.0),
		WithNear(0.05),
		WithFar(1000),
		WithController(oc),
	)

	view := cam.ViewMatrix()
	eye := view.Mul4x1(mgl32.Vec4{0, 0, 5, 1})
	if !eye.Vec3().ApproxEqualThreshold(mgl32.Vec3{}, 1e-4) {
		t.Fatalf("camera position should map to view origin, got %v", eye)
	}
	pivot := view.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if pivot.Z() >= 0 {
		t.Fatalf("pivot should be in front of the camera (negative view z), got %v", pivot)
	}

	oc.SetZoomAmount(1)
	cam.Update()
	eye = cam.ViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 50, 1})
	if !eye.Vec3().ApproxEqualThreshold(mgl32.Vec3{}, 1e-3) {
		t.Fatalf("view matrix not refreshed after controller moved, got %v", eye)
	}
}

func TestCameraProjectionDepthRange(t *testing.T) {
	cam := NewCamera(WithNear(1), WithFar(100))
	proj := cam.ProjectionMatrix()

	ndc := func(z float32) float32 {
		clip := proj.Mul4x1(mgl32.Vec4{0, 0, -z, 1})
		return clip.Z() / clip.W()
	}
	if d := ndc(1); math.Abs(float64(d)) > 1e-5 {
		t.Fatalf("near plane depth = %v, want 0", d)
	}
	if d := ndc(100); math.Abs(float64(d-1)) > 1e-4 {
		t.Fatalf("far plane depth = %v, want 1", d)
	}

	ident := proj.Mul4(cam.InverseProjectionMatrix())
	if !ident.ApproxEqualThreshold(mgl32.Ident4(), 1e-4) {
		t.Fatalf("inverse projection mismatch: %v", ident)
	}
}

func TestCameraSetAspectRebuildsProjection(t *testing.T) {
	cam := NewCamera()
	before := cam.ProjectionMatrix()
	cam.SetAspect(2)
	after := cam.ProjectionMatrix()
	if after[0] != before[0]/2 {
		t.Fatalf("expected x scale halved, got %v -> %v", before[0], after[0])
	}
	if cam.Aspect() != 2 {
		t.Fatalf("Aspect() = %v", cam.Aspect())
	}
}
