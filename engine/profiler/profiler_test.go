package profiler

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestTick_ReportsAfterInterval(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	clock := time.Unix(1000, 0)
	p := NewProfiler(WithLogger(logger), WithInterval(time.Second))
	p.now = func() time.Time { return clock }
	p.lastTime = clock

	for i := 0; i < 39; i++ {
		clock = clock.Add(25 * time.Millisecond)
		if p.Tick() {
			t.Fatalf("reported early at frame %d", i)
		}
	}
	clock = clock.Add(25 * time.Millisecond)
	if !p.Tick() {
		t.Fatal("expected a report after one second")
	}

	if got := p.Last().FPS; got < 39.9 || got > 40.1 {
		t.Errorf("FPS = %v, want ~40", got)
	}
	if !strings.Contains(buf.String(), "fps=") {
		t.Errorf("log output missing fps: %q", buf.String())
	}
}

func TestOptions_IgnoreInvalid(t *testing.T) {
	p := NewProfiler(WithInterval(0), WithLogger(nil))
	if p.updateInterval != time.Second {
		t.Errorf("updateInterval = %v, want 1s", p.updateInterval)
	}
	if p.logger == nil {
		t.Error("logger should fall back to default")
	}
}
