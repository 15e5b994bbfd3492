package scene

import (
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/Carmen-Shannon/constellations/common"
	"github.com/Carmen-Shannon/constellations/engine/camera"
	"github.com/Carmen-Shannon/constellations/engine/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scene implements the Scene interface.
type scene struct {
	mu     *sync.Mutex
	logger *slog.Logger
	active bool

	cam  camera.Camera
	ctrl camera.OrbitController

	tuning     camera.Tuning
	fovDegrees float32
	near, far  float32
	aspect     float32

	seed       uint64
	generation uint64

	randomizeOnReload bool
	seedSource        func() uint64

	skipIntro       bool
	introSeconds    float32
	introFovDegrees float32
	intro           *gween.Tween

	bg          common.Color
	bgTarget    common.Color
	bgFadeSpeed float32
}

// Scene is the world the camera orbits. It owns the camera rig, the world seed and the
// intro and background transitions, and can be restarted in place with Reload.
//
// All methods are safe for concurrent use; simulation calls (HandleEvent, Update, Reload)
// are expected on the tick goroutine while the render goroutine reads Background.
type Scene interface {
	// Active reports whether the scene should be rendered.
	Active() bool

	// SetActive sets whether the scene should be rendered.
	SetActive(active bool)

	// Camera returns the scene camera.
	Camera() camera.Camera

	// Controller returns the orbit rig driving the camera.
	Controller() camera.OrbitController

	// HandleEvent routes an input event. A restart press reloads the scene; everything else
	// is forwarded to the orbit rig.
	//
	// Parameters:
	//   - ev: the input event
	HandleEvent(ev input.Event)

	// Update advances the rig, the intro sweep and the background fade by delta seconds and
	// recomputes the camera matrices.
	//
	// Parameters:
	//   - delta: elapsed seconds since the previous update
	Update(delta float32)

	// Reload restarts the scene: the rig returns to its construction state, the generation
	// counter increases and the intro and background fade start over. With WithRandomizeOnReload
	// the seed is re-rolled first.
	Reload()

	// Generation returns how many times the scene has been reloaded.
	Generation() uint64

	// Seed returns the world seed.
	Seed() uint64

	// SeedString returns the world seed as 16 upper-case hex digits.
	SeedString() string

	// SetSeedString parses and applies a hexadecimal seed. On error the seed is unchanged.
	//
	// Parameters:
	//   - s: 1 to 16 hexadecimal digits
	//
	// Returns:
	//   - error: wraps ErrInvalidSeed if s cannot be parsed
	SetSeedString(s string) error

	// RandomizeSeed replaces the seed with a random one without reloading.
	//
	// Returns:
	//   - uint64: the new seed
	RandomizeSeed() uint64

	// IntroActive reports whether the intro sweep is still running.
	IntroActive() bool

	// Background returns the current clear color.
	Background() common.Color

	// ApplyTuning replaces the rig constants without resetting its state.
	//
	// Parameters:
	//   - t: the new tunables
	ApplyTuning(t camera.Tuning)
}

var _ Scene = &scene{}

// NewScene creates a Scene with its camera and orbit rig and starts the intro.
//
// Parameters:
//   - options: variadic list of SceneBuilderOption functions
//
// Returns:
//   - Scene: the newly created scene
func NewScene(options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:              &sync.Mutex{},
		logger:          slog.Default(),
		active:          true,
		tuning:          camera.DefaultTuning(),
		fovDegrees:      60,
		near:            0.05,
		far:             1000,
		aspect:          16.0 / 9.0,
		seed:            DefaultSeed,
		seedSource:      rand.Uint64,
		introSeconds:    3,
		introFovDegrees: 110,
		bgTarget:        common.Color{0.02, 0.02, 0.06, 1},
		bgFadeSpeed:     1.5,
	}
	for _, opt := range options {
		opt(s)
	}

	s.ctrl = camera.NewOrbitController(camera.WithTuning(s.tuning))
	s.cam = camera.NewCamera(
		camera.WithController(s.ctrl),
		camera.WithFov(mgl32.DegToRad(s.fovDegrees)),
		camera.WithNear(s.near),
		camera.WithFar(s.far),
		camera.WithAspect(s.aspect),
	)
	s.restartTransitions()
	s.logger.Info("scene started", slog.String("seed", FormatSeed(s.seed)), slog.Bool("skip_intro", s.skipIntro))
	return s
}

// restartTransitions rewinds the intro sweep and the background fade. Caller holds mu or owns s.
func (s *scene) restartTransitions() {
	s.bg = common.Color{0, 0, 0, 1}
	if s.skipIntro || s.introSeconds <= 0 {
		s.intro = nil
		s.cam.SetFov(mgl32.DegToRad(s.fovDegrees))
		return
	}
	s.intro = gween.New(s.introFovDegrees, s.fovDegrees, s.introSeconds, ease.OutCubic)
	s.cam.SetFov(mgl32.DegToRad(s.introFovDegrees))
}

func (s *scene) reload() {
	if s.randomizeOnReload {
		s.seed = s.seedSource()
	}
	s.ctrl.Reset()
	s.generation++
	s.restartTransitions()
	s.cam.Update()
	s.logger.Info("scene reloaded",
		slog.String("seed", FormatSeed(s.seed)),
		slog.Uint64("generation", s.generation),
	)
}

func (s *scene) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	return s.cam
}

func (s *scene) Controller() camera.OrbitController {
	return s.ctrl
}

func (s *scene) HandleEvent(ev input.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ev.Action == input.ActionRestart {
		if ev.Pressed {
			s.reload()
		}
		return
	}
	s.ctrl.HandleEvent(ev)
}

func (s *scene) Update(delta float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctrl.Update(delta)

	if s.intro != nil {
		fov, done := s.intro.Update(delta)
		s.cam.SetFov(mgl32.DegToRad(fov))
		if done {
			s.intro = nil
		}
	}

	s.bg = common.LerpSmooth(s.bg, s.bgTarget, s.bgFadeSpeed, delta)
	s.cam.Update()
}

func (s *scene) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reload()
}

func (s *scene) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

func (s *scene) Seed() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seed
}

func (s *scene) SeedString() string {
	return FormatSeed(s.Seed())
}

func (s *scene) SetSeedString(str string) error {
	seed, err := ParseSeed(str)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.seed = seed
	s.mu.Unlock()
	return nil
}

func (s *scene) RandomizeSeed() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seed = s.seedSource()
	s.logger.Debug("seed randomized", slog.String("seed", FormatSeed(s.seed)))
	return s.seed
}

func (s *scene) IntroActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.intro != nil
}

func (s *scene) Background() common.Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bg
}

func (s *scene) ApplyTuning(t camera.Tuning) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tuning = t
	s.ctrl.SetTuning(t)
	s.logger.Debug("camera tuning applied",
		slog.Float64("max_rot_speed", float64(t.MaxRotSpeed)),
		slog.Float64("zoom_speed", float64(t.ZoomSpeed)),
	)
}
