package engine

import (
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Carmen-Shannon/constellations/common"
	"github.com/Carmen-Shannon/constellations/engine/input"
	"github.com/Carmen-Shannon/constellations/engine/scene"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newHeadless(t *testing.T, opts ...EngineBuilderOption) (*engine, scene.Scene) {
	t.Helper()
	s := scene.NewScene(scene.WithLogger(quietLogger()), scene.WithSkipIntro(true))
	opts = append([]EngineBuilderOption{WithLogger(quietLogger()), WithScene(0, s)}, opts...)
	return NewEngine(opts...).(*engine), s
}

func TestTick_DeliversInputBeforeUpdate(t *testing.T) {
	e, s := newHeadless(t)

	e.Dispatcher().KeyDown(common.KeyLeft)
	e.tick(0.5)

	latch := s.Controller().Latch()
	if !latch.Held(input.ActionLeft) {
		t.Fatal("left should be latched after the tick drained input")
	}
	vert, hor := s.Controller().RotationSpeeds()
	if vert != 0 || hor <= 0 {
		t.Errorf("speeds = (%v, %v), want horizontal > 0 in the same tick", vert, hor)
	}

	e.Dispatcher().KeyUp(common.KeyLeft)
	e.tick(0.1)
	released := s.Controller().Latch()
	if released.Held(input.ActionLeft) {
		t.Error("left should be released")
	}
}

func TestTick_TextFocusBlocksInput(t *testing.T) {
	e, s := newHeadless(t)

	e.Dispatcher().SetTextFocus(true)
	e.Dispatcher().KeyDown(common.KeyUp)
	e.tick(0.1)

	latch := s.Controller().Latch()
	if latch.Held(input.ActionUp) {
		t.Error("input should be ignored while a text field has focus")
	}
	if s.Controller().Pitch() != 0 {
		t.Errorf("pitch = %v, want 0", s.Controller().Pitch())
	}
}

func TestTick_InactiveSceneUntouched(t *testing.T) {
	e, s := newHeadless(t)
	s.SetActive(false)

	e.Dispatcher().KeyDown(common.KeyR)
	e.tick(0.1)

	if s.Generation() != 0 {
		t.Errorf("inactive scene reloaded, generation %d", s.Generation())
	}
}

func TestTick_RunsQueuedTasksThenCallback(t *testing.T) {
	e, _ := newHeadless(t)

	var order []string
	e.SetTickCallback(func(dt float32) { order = append(order, "callback") })
	if !e.RunOnTick(func() { order = append(order, "task") }) {
		t.Fatal("RunOnTick refused before quit")
	}
	e.tick(0.016)

	if len(order) != 2 || order[0] != "task" || order[1] != "callback" {
		t.Errorf("order = %v, want [task callback]", order)
	}

	e.Quit()
	if e.RunOnTick(func() {}) {
		t.Error("RunOnTick should refuse after quit")
	}
}

func TestSetTickRate(t *testing.T) {
	tests := []struct {
		fps  float64
		want time.Duration
	}{
		{fps: 60, want: time.Second / 60},
		{fps: 120, want: time.Second / 120},
		{fps: 0, want: time.Second / 60},
		{fps: -5, want: time.Second / 60},
	}
	for _, tt := range tests {
		e, _ := newHeadless(t)
		e.SetTickRate(tt.fps)
		if diff := e.engineTickRate - tt.want; diff < -time.Microsecond || diff > time.Microsecond {
			t.Errorf("SetTickRate(%v) = %v, want %v", tt.fps, e.engineTickRate, tt.want)
		}
	}
}

func TestRun_HeadlessQuit(t *testing.T) {
	e, s := newHeadless(t, WithTickRate(500))

	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()

	e.Dispatcher().KeyDown(common.KeyR)
	deadline := time.After(2 * time.Second)
	for s.Generation() == 0 {
		select {
		case <-deadline:
			t.Fatal("tick loop never delivered the restart")
		case <-time.After(time.Millisecond):
		}
	}

	e.Quit()
	e.Quit()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Quit")
	}
}

func TestRun_SettersWhileRunning(t *testing.T) {
	e, _ := newHeadless(t, WithTickRate(500))

	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()

	var ticks, frames atomic.Int32
	e.SetTickCallback(func(float32) { ticks.Add(1) })
	e.SetRenderCallback(func(float32) { frames.Add(1) })
	e.SetRenderFrameLimit(1000)
	e.EnableProfiler()
	e.DisableProfiler()

	deadline := time.After(2 * time.Second)
	for ticks.Load() == 0 || frames.Load() == 0 {
		select {
		case <-deadline:
			t.Fatalf("callbacks set during Run never fired: ticks=%d frames=%d", ticks.Load(), frames.Load())
		case <-time.After(time.Millisecond):
		}
	}

	e.Quit()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Quit")
	}
}

func TestScenes_ReturnsCopy(t *testing.T) {
	e, s := newHeadless(t)
	cp := e.Scenes()
	delete(cp, 0)
	if e.Scene(0) != s {
		t.Error("mutating the copy changed the engine")
	}
	e.RemoveScene(0)
	if e.Scene(0) != nil {
		t.Error("scene not removed")
	}
}
