package scene

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/Carmen-Shannon/constellations/common"
	"github.com/Carmen-Shannon/constellations/engine/camera"
	"github.com/Carmen-Shannon/constellations/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func approx(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

func TestParseSeed(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    uint64
		wantErr bool
	}{
		{name: "default", in: "DEADBEEF", want: 0xDEADBEEF},
		{name: "lower case", in: "deadbeef", want: 0xDEADBEEF},
		{name: "sixteen digits", in: "FFFFFFFFFFFFFFFF", want: math.MaxUint64},
		{name: "padded", in: "  00000000000000ff ", want: 0xFF},
		{name: "seventeen digits", in: "10000000000000000", wantErr: true},
		{name: "non hex", in: "XYZ", wantErr: true},
		{name: "negative", in: "-1", wantErr: true},
		{name: "plus sign", in: "+1", wantErr: true},
		{name: "0x prefix", in: "0x1F", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSeed(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSeed) {
					t.Fatalf("ParseSeed(%q) err = %v, want ErrInvalidSeed", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSeed(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseSeed(%q) = %#x, want %#x", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatSeed(t *testing.T) {
	if got := FormatSeed(DefaultSeed); got != "00000000DEADBEEF" {
		t.Errorf("FormatSeed(default) = %q", got)
	}
	seed, err := ParseSeed(FormatSeed(0x1234ABCD5678EF90))
	if err != nil || seed != 0x1234ABCD5678EF90 {
		t.Errorf("round trip = %#x, %v", seed, err)
	}
}

func TestSetSeedString_KeepsSeedOnError(t *testing.T) {
	s := NewScene(WithLogger(quietLogger()))
	if err := s.SetSeedString("not-hex"); !errors.Is(err, ErrInvalidSeed) {
		t.Fatalf("err = %v, want ErrInvalidSeed", err)
	}
	if s.Seed() != DefaultSeed {
		t.Errorf("seed changed to %#x", s.Seed())
	}
	if err := s.SetSeedString("cafe"); err != nil {
		t.Fatalf("SetSeedString: %v", err)
	}
	if got := s.SeedString(); got != "000000000000CAFE" {
		t.Errorf("SeedString = %q", got)
	}
}

func TestIntro_SweepsFovThenStops(t *testing.T) {
	s := NewScene(
		WithLogger(quietLogger()),
		WithLens(60, 0.05, 1000),
		WithIntro(1, 110),
	)
	if !s.IntroActive() {
		t.Fatal("intro should start active")
	}
	if got := s.Camera().Fov(); !approx(got, mgl32.DegToRad(110), 1e-4) {
		t.Errorf("initial fov = %v rad, want 110 deg", got)
	}

	s.Update(0.5)
	mid := s.Camera().Fov()
	if mid >= mgl32.DegToRad(110) || mid <= mgl32.DegToRad(60) {
		t.Errorf("mid-intro fov = %v rad, want between 60 and 110 deg", mid)
	}

	s.Update(0.6)
	if s.IntroActive() {
		t.Error("intro should have finished")
	}
	if got := s.Camera().Fov(); !approx(got, mgl32.DegToRad(60), 1e-4) {
		t.Errorf("final fov = %v rad, want 60 deg", got)
	}
}

func TestSkipIntro(t *testing.T) {
	s := NewScene(WithLogger(quietLogger()), WithSkipIntro(true), WithLens(70, 0.1, 100))
	if s.IntroActive() {
		t.Error("intro should be skipped")
	}
	if got := s.Camera().Fov(); !approx(got, mgl32.DegToRad(70), 1e-5) {
		t.Errorf("fov = %v rad, want 70 deg", got)
	}
}

func TestBackground_FadesFromBlack(t *testing.T) {
	target := common.Color{0.2, 0.4, 0.6, 1}
	s := NewScene(WithLogger(quietLogger()), WithBackground(target, 2))

	if got := s.Background(); got != (common.Color{0, 0, 0, 1}) {
		t.Fatalf("initial background = %v, want black", got)
	}
	prev := s.Background()
	for i := 0; i < 5; i++ {
		s.Update(0.1)
		cur := s.Background()
		if cur[2] <= prev[2] || cur[2] > target[2] {
			t.Fatalf("step %d: blue %v did not approach %v monotonically from %v", i, cur[2], target[2], prev[2])
		}
		prev = cur
	}
}

func TestRestart_ReloadsScene(t *testing.T) {
	s := NewScene(WithLogger(quietLogger()), WithSkipIntro(true))

	s.HandleEvent(input.Event{Action: input.ActionLeft, Pressed: true})
	s.HandleEvent(input.Event{Action: input.ActionZoomToggle, Pressed: true})
	for i := 0; i < 30; i++ {
		s.Update(1.0 / 30)
	}
	ctrl := s.Controller()
	if ctrl.Yaw() == 0 || ctrl.ZoomAmount() == 0 {
		t.Fatalf("rig did not move: yaw %v zoom %v", ctrl.Yaw(), ctrl.ZoomAmount())
	}

	s.HandleEvent(input.Event{Action: input.ActionRestart, Pressed: false})
	if s.Generation() != 0 {
		t.Fatal("restart release must not reload")
	}
	s.HandleEvent(input.Event{Action: input.ActionRestart, Pressed: true})

	if s.Generation() != 1 {
		t.Errorf("generation = %d, want 1", s.Generation())
	}
	if ctrl.Yaw() != 0 || ctrl.Pitch() != 0 || ctrl.ZoomAmount() != 0 {
		t.Errorf("rig not reset: pitch %v yaw %v zoom %v", ctrl.Pitch(), ctrl.Yaw(), ctrl.ZoomAmount())
	}
	latch := ctrl.Latch()
	if latch.Held(input.ActionLeft) {
		t.Error("latch should be cleared on reload")
	}
	if ctrl.ZoomSpeed() != camera.DefaultTuning().ZoomSpeed {
		t.Errorf("zoom speed = %v, want default", ctrl.ZoomSpeed())
	}
	if got := s.Background(); got != (common.Color{0, 0, 0, 1}) {
		t.Errorf("background = %v, want black after reload", got)
	}
}

func TestRestart_SeedHandling(t *testing.T) {
	tests := []struct {
		name      string
		randomize bool
		want      uint64
	}{
		{name: "keeps seed", randomize: false, want: 0xABC},
		{name: "randomizes seed", randomize: true, want: 0x1234},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScene(
				WithLogger(quietLogger()),
				WithSkipIntro(true),
				WithSeed(0xABC),
				WithRandomizeOnReload(tt.randomize),
				WithSeedSource(func() uint64 { return 0x1234 }),
			)
			s.HandleEvent(input.Event{Action: input.ActionRestart, Pressed: true})
			if s.Seed() != tt.want {
				t.Errorf("seed = %X, want %X", s.Seed(), tt.want)
			}
			if s.Generation() != 1 {
				t.Errorf("generation = %d, want 1", s.Generation())
			}
		})
	}
}

func TestRandomizeSeed_DoesNotReload(t *testing.T) {
	next := uint64(0)
	s := NewScene(
		WithLogger(quietLogger()),
		WithSkipIntro(true),
		WithSeedSource(func() uint64 { next++; return next }),
	)
	if got := s.RandomizeSeed(); got != 1 || s.Seed() != 1 {
		t.Fatalf("RandomizeSeed = %d, seed = %d, want 1", got, s.Seed())
	}
	if s.SeedString() != "0000000000000001" {
		t.Errorf("SeedString = %q", s.SeedString())
	}
	if s.Generation() != 0 {
		t.Errorf("generation = %d, want 0", s.Generation())
	}
}

func TestApplyTuning(t *testing.T) {
	s := NewScene(WithLogger(quietLogger()), WithSkipIntro(true))
	tuning := camera.DefaultTuning()
	tuning.MaxRotSpeed = 45
	tuning.MaxPitch = 10

	s.ApplyTuning(tuning)
	s.HandleEvent(input.Event{Action: input.ActionUp, Pressed: true})
	for i := 0; i < 120; i++ {
		s.Update(1.0 / 60)
	}
	if got := s.Controller().Pitch(); got != 10 {
		t.Errorf("pitch = %v, want clamped to 10", got)
	}
	if got := s.Controller().Tuning().MaxRotSpeed; got != 45 {
		t.Errorf("MaxRotSpeed = %v, want 45", got)
	}
}

func TestCameraFollowsRig(t *testing.T) {
	s := NewScene(WithLogger(quietLogger()), WithSkipIntro(true))
	s.Update(1.0 / 60)

	x, y, z := s.Controller().Position()
	eye := mgl32.Vec3{x, y, z}
	got := s.Camera().ViewMatrix().Mul4x1(eye.Vec4(1)).Vec3()
	if got.Len() > 1e-4 {
		t.Errorf("eye in view space = %v, want origin", got)
	}
}
