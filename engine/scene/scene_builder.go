package scene

import (
	"log/slog"

	"github.com/Carmen-Shannon/constellations/common"
	"github.com/Carmen-Shannon/constellations/engine/camera"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active for rendering.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithLogger sets the logger used for reload and seed messages.
func WithLogger(logger *slog.Logger) SceneBuilderOption {
	return func(s *scene) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSeed sets the initial world seed.
//
// Parameters:
//   - seed: the world seed
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithSeed(seed uint64) SceneBuilderOption {
	return func(s *scene) {
		s.seed = seed
	}
}

// WithRandomizeOnReload makes every reload start from a fresh random seed.
func WithRandomizeOnReload(randomize bool) SceneBuilderOption {
	return func(s *scene) {
		s.randomizeOnReload = randomize
	}
}

// WithSeedSource replaces the random source used for new seeds.
//
// Parameters:
//   - source: returns a new seed on each call, ignored if nil
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithSeedSource(source func() uint64) SceneBuilderOption {
	return func(s *scene) {
		if source != nil {
			s.seedSource = source
		}
	}
}

// WithSkipIntro disables the intro field-of-view sweep; the camera starts at its final FOV.
func WithSkipIntro(skip bool) SceneBuilderOption {
	return func(s *scene) {
		s.skipIntro = skip
	}
}

// WithTuning sets the orbit rig constants.
//
// Parameters:
//   - t: the rig tunables
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithTuning(t camera.Tuning) SceneBuilderOption {
	return func(s *scene) {
		s.tuning = t
	}
}

// WithLens sets the perspective lens.
//
// Parameters:
//   - fovDegrees: vertical field of view in degrees once the intro has finished
//   - near: near clipping distance
//   - far: far clipping distance
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLens(fovDegrees, near, far float32) SceneBuilderOption {
	return func(s *scene) {
		s.fovDegrees = fovDegrees
		s.near = near
		s.far = far
	}
}

// WithAspect sets the initial viewport aspect ratio (width / height).
func WithAspect(aspect float32) SceneBuilderOption {
	return func(s *scene) {
		if aspect > 0 {
			s.aspect = aspect
		}
	}
}

// WithIntro configures the intro sweep from a wide field of view down to the lens FOV.
//
// Parameters:
//   - seconds: sweep duration; zero or less disables the intro
//   - fovDegrees: field of view the sweep starts from
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithIntro(seconds, fovDegrees float32) SceneBuilderOption {
	return func(s *scene) {
		s.introSeconds = seconds
		s.introFovDegrees = fovDegrees
	}
}

// WithBackground sets the background color the scene fades in to, and the fade rate.
//
// Parameters:
//   - color: target clear color
//   - fadeSpeed: smoothing rate in 1/seconds
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithBackground(color common.Color, fadeSpeed float32) SceneBuilderOption {
	return func(s *scene) {
		s.bgTarget = color
		s.bgFadeSpeed = fadeSpeed
	}
}
