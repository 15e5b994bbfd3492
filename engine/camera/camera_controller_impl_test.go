package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/constellations/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

const frame = float32(1.0 / 60.0)

func press(oc OrbitController, a input.Action) {
	oc.HandleEvent(input.Event{Action: a, Pressed: true})
}

func release(oc OrbitController, a input.Action) {
	oc.HandleEvent(input.Event{Action: a, Pressed: false})
}

func run(oc OrbitController, seconds float32, each func()) {
	steps := int(math.Round(float64(seconds / frame)))
	for i := 0; i < steps; i++ {
		oc.Update(frame)
		if each != nil {
			each()
		}
	}
}

func TestNewOrbitControllerDefaults(t *testing.T) {
	oc := NewOrbitController()
	if oc.Pitch() != 0 || oc.Yaw() != 0 || oc.ZoomAmount() != 0 {
		t.Fatalf("unexpected initial state pitch=%v yaw=%v zoom=%v", oc.Pitch(), oc.Yaw(), oc.ZoomAmount())
	}
	if oc.ZoomSpeed() != -0.3 {
		t.Fatalf("expected initial zoom speed -0.3, got %v", oc.ZoomSpeed())
	}
	tn := oc.Tuning()
	if tn.MaxRotSpeed != 90 || tn.MinPitch != -89.9 || tn.MaxPitch != 89.9 || tn.RotationLerpSpeed != 4 {
		t.Fatalf("unexpected default tuning %+v", tn)
	}
	x, y, z := oc.Position()
	if x != 0 || y != 0 || z != 5 {
		t.Fatalf("expected start position (0,0,5), got (%v,%v,%v)", x, y, z)
	}
	tx, ty, tz := oc.Target()
	if tx != 0 || ty != 0 || tz != 4 {
		t.Fatalf("expected target one unit forward (0,0,4), got (%v,%v,%v)", tx, ty, tz)
	}
}

func TestPitchStaysWithinBoundsUnderSustainedInput(t *testing.T) {
	for _, dir := range []input.Action{input.ActionUp, input.ActionDown} {
		oc := NewOrbitController()
		press(oc, dir)
		run(oc, 120, func() {
			p := oc.Pitch()
			if p < -89.9 || p > 89.9 {
				t.Fatalf("%s: pitch %v escaped bounds", dir, p)
			}
		})
	}
}

func TestHoldUpApproachesMaxPitchMonotonically(t *testing.T) {
	oc := NewOrbitController()
	press(oc, input.ActionUp)

	prev := oc.Pitch()
	run(oc, 10, func() {
		p := oc.Pitch()
		if p < prev {
			t.Fatalf("pitch decreased from %v to %v", prev, p)
		}
		if p > 89.9 {
			t.Fatalf("pitch %v exceeded max", p)
		}
		prev = p
	})
	if prev < 89.9-1e-3 {
		t.Fatalf("expected pitch to reach max after 10s, got %v", prev)
	}
}

func TestClampDoesNotZeroVelocity(t *testing.T) {
	oc := NewOrbitController()
	press(oc, input.ActionUp)
	run(oc, 5, nil)

	vert, _ := oc.RotationSpeeds()
	if vert < 89 {
		t.Fatalf("expected vertical velocity near max while clamped, got %v", vert)
	}
	if oc.Pitch() != 89.9 {
		t.Fatalf("expected clamped pitch, got %v", oc.Pitch())
	}
}

func TestYawIsUnbounded(t *testing.T) {
	oc := NewOrbitController()
	press(oc, input.ActionLeft)
	run(oc, 10, nil)
	if oc.Yaw() < 360 {
		t.Fatalf("expected yaw to wrap past a full turn, got %v", oc.Yaw())
	}
}

func TestOpposingDirectionsCancel(t *testing.T) {
	oc := NewOrbitController()
	press(oc, input.ActionLeft)
	press(oc, input.ActionRight)
	press(oc, input.ActionUp)
	press(oc, input.ActionDown)
	run(oc, 2, nil)
	if oc.Pitch() != 0 || oc.Yaw() != 0 {
		t.Fatalf("expected no rotation, got pitch=%v yaw=%v", oc.Pitch(), oc.Yaw())
	}
}

func TestRotationInvertsPastZoomMidpoint(t *testing.T) {
	yawRate := func(zoom float32) float32 {
		oc := NewOrbitController(WithInitialZoomAmount(zoom))
		press(oc, input.ActionLeft)
		before := oc.Yaw()
		oc.Update(frame)
		return oc.Yaw() - before
	}

	near := yawRate(0.1)
	far := yawRate(0.9)
	if near == 0 || far == 0 {
		t.Fatalf("expected yaw to change, got near=%v far=%v", near, far)
	}
	if (near > 0) == (far > 0) {
		t.Fatalf("expected opposite yaw rates, got near=%v far=%v", near, far)
	}
}

func TestZoomDirectionSignFlipsAtMidpoint(t *testing.T) {
	oc := NewOrbitController()
	cases := []struct {
		zoom float32
		want float32
	}{
		{0, 1},
		{0.4999, 1},
		{0.5, -1},
		{1, -1},
	}
	for _, tc := range cases {
		oc.SetZoomAmount(tc.zoom)
		if got := oc.ZoomDirectionSign(); got != tc.want {
			t.Fatalf("zoom %v: sign %v, want %v", tc.zoom, got, tc.want)
		}
	}
}

func TestZoomTogglePingPong(t *testing.T) {
	oc := NewOrbitController()
	start := oc.ZoomSpeed()

	press(oc, input.ActionZoomToggle)
	if oc.ZoomSpeed() != -start {
		t.Fatalf("expected flipped zoom speed, got %v", oc.ZoomSpeed())
	}
	release(oc, input.ActionZoomToggle)
	if oc.ZoomSpeed() != -start {
		t.Fatal("release must not flip zoom speed")
	}
	press(oc, input.ActionZoomToggle)
	if oc.ZoomSpeed() != start {
		t.Fatalf("expected original zoom speed after two toggles, got %v", oc.ZoomSpeed())
	}
}

func TestZoomClampsAtBothEnds(t *testing.T) {
	oc := NewOrbitController()

	press(oc, input.ActionZoomToggle)
	run(oc, 5, func() {
		if z := oc.ZoomAmount(); z < 0 || z > 1 {
			t.Fatalf("zoom %v escaped [0,1]", z)
		}
	})
	if oc.ZoomAmount() != 1 {
		t.Fatalf("expected zoom clamped at 1, got %v", oc.ZoomAmount())
	}

	press(oc, input.ActionZoomToggle)
	run(oc, 5, func() {
		if z := oc.ZoomAmount(); z < 0 || z > 1 {
			t.Fatalf("zoom %v escaped [0,1]", z)
		}
	})
	if oc.ZoomAmount() != 0 {
		t.Fatalf("expected zoom clamped at exactly 0, got %v", oc.ZoomAmount())
	}
}

func TestZoomMovesAlongStraightLineWithEase(t *testing.T) {
	oc := NewOrbitController()

	oc.SetZoomAmount(1)
	if _, _, z := oc.Position(); z != 50 {
		t.Fatalf("expected far position z=50, got %v", z)
	}

	oc.SetZoomAmount(0.5)
	x, y, z := oc.Position()
	if x != 0 || y != 0 || math.Abs(float64(z-27.5)) > 1e-4 {
		t.Fatalf("expected midpoint (0,0,27.5), got (%v,%v,%v)", x, y, z)
	}

	oc.SetZoomAmount(0.25)
	if _, _, z := oc.Position(); math.Abs(float64(z-(5+45*0.15625))) > 1e-4 {
		t.Fatalf("expected smoothstep-eased z at quarter zoom, got %v", z)
	}
}

func TestYawRotatesAroundPivot(t *testing.T) {
	oc := NewOrbitController(WithInitialAngles(0, 90), WithPivot(1, 2, 3))
	x, y, z := oc.Position()
	got := mgl32.Vec3{x, y, z}
	want := mgl32.Vec3{6, 2, 3}
	if !got.ApproxEqualThreshold(want, 1e-4) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	tx, ty, tz := oc.Target()
	if !(mgl32.Vec3{tx, ty, tz}).ApproxEqualThreshold(mgl32.Vec3{5, 2, 3}, 1e-4) {
		t.Fatalf("expected target facing the pivot, got (%v,%v,%v)", tx, ty, tz)
	}
}

func TestReleaseDecaysVelocity(t *testing.T) {
	oc := NewOrbitController()
	press(oc, input.ActionLeft)
	run(oc, 2, nil)
	release(oc, input.ActionLeft)
	run(oc, 5, nil)
	_, hor := oc.RotationSpeeds()
	if math.Abs(float64(hor)) > 0.01 {
		t.Fatalf("expected horizontal velocity to decay, got %v", hor)
	}
}

func TestZeroDeltaUpdateChangesNothing(t *testing.T) {
	oc := NewOrbitController(WithInitialZoomAmount(0.3))
	press(oc, input.ActionUp)
	oc.Update(0)
	vert, hor := oc.RotationSpeeds()
	if vert != 0 || hor != 0 || oc.Pitch() != 0 || oc.ZoomAmount() != 0.3 {
		t.Fatalf("zero delta changed state: vert=%v hor=%v pitch=%v zoom=%v", vert, hor, oc.Pitch(), oc.ZoomAmount())
	}
}

func TestResetRestoresConstructionState(t *testing.T) {
	oc := NewOrbitController(WithInitialAngles(10, 20))
	press(oc, input.ActionDown)
	press(oc, input.ActionZoomToggle)
	run(oc, 1, nil)

	oc.Reset()
	if oc.Pitch() != 10 || oc.Yaw() != 20 || oc.ZoomAmount() != 0 || oc.ZoomSpeed() != -0.3 {
		t.Fatalf("unexpected state after reset: pitch=%v yaw=%v zoom=%v speed=%v",
			oc.Pitch(), oc.Yaw(), oc.ZoomAmount(), oc.ZoomSpeed())
	}
	l := oc.Latch()
	if l.Held(input.ActionDown) {
		t.Fatal("expected latch cleared by reset")
	}
}

func TestSetTuningKeepsZoomDirectionAndReclampsPitch(t *testing.T) {
	oc := NewOrbitController()
	press(oc, input.ActionZoomToggle) // now +0.3
	press(oc, input.ActionUp)
	run(oc, 3, nil)

	tn := oc.Tuning()
	tn.ZoomSpeed = -0.5
	tn.MaxPitch = 45
	oc.SetTuning(tn)

	if oc.ZoomSpeed() != 0.5 {
		t.Fatalf("expected zoom speed 0.5 keeping direction, got %v", oc.ZoomSpeed())
	}
	if oc.Pitch() != 45 {
		t.Fatalf("expected pitch re-clamped to 45, got %v", oc.Pitch())
	}
}
