package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if _, err := c.SeedValue(); err != nil {
		return fmt.Errorf("%w: seed: %w", ErrInvalid, err)
	}
	if err := c.validateWindow(); err != nil {
		return err
	}
	if err := c.validateEngine(); err != nil {
		return err
	}
	if err := c.validateCamera(); err != nil {
		return err
	}
	if err := c.validateScene(); err != nil {
		return err
	}
	if _, err := c.Input.Bindings(); err != nil {
		return fmt.Errorf("%w: input: %w", ErrInvalid, err)
	}
	return c.validateLogging()
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...)
}

func (c *Config) validateWindow() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return invalid("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}

func (c *Config) validateEngine() error {
	if c.Engine.TickRate <= 0 {
		return invalid("engine.tick_rate must be positive, got %v", c.Engine.TickRate)
	}
	if c.Engine.RenderFrameLimit < 0 {
		return invalid("engine.render_frame_limit must not be negative, got %v", c.Engine.RenderFrameLimit)
	}
	return nil
}

func (c *Config) validateCamera() error {
	cam := c.Camera
	if cam.MinPitch <= -90 || cam.MaxPitch >= 90 {
		return invalid("camera pitch bounds must lie strictly within (-90, 90), got [%v, %v]", cam.MinPitch, cam.MaxPitch)
	}
	if cam.MinPitch >= cam.MaxPitch {
		return invalid("camera.min_pitch (%v) must be less than camera.max_pitch (%v)", cam.MinPitch, cam.MaxPitch)
	}
	if cam.MaxRotSpeed < 0 {
		return invalid("camera.max_rot_speed must not be negative, got %v", cam.MaxRotSpeed)
	}
	if cam.RotationLerpSpeed < 0 {
		return invalid("camera.rotation_lerp_speed must not be negative, got %v", cam.RotationLerpSpeed)
	}
	if cam.FarMultiplier <= 0 {
		return invalid("camera.far_multiplier must be positive, got %v", cam.FarMultiplier)
	}
	if cam.FovDegrees <= 0 || cam.FovDegrees >= 180 {
		return invalid("camera.fov_degrees must lie within (0, 180), got %v", cam.FovDegrees)
	}
	if cam.Near <= 0 || cam.Far <= cam.Near {
		return invalid("camera clip planes need 0 < near < far, got near %v far %v", cam.Near, cam.Far)
	}
	return nil
}

func (c *Config) validateScene() error {
	s := c.Scene
	if s.IntroSeconds < 0 {
		return invalid("scene.intro_seconds must not be negative, got %v", s.IntroSeconds)
	}
	if s.IntroFovDegrees <= 0 || s.IntroFovDegrees >= 180 {
		return invalid("scene.intro_fov_degrees must lie within (0, 180), got %v", s.IntroFovDegrees)
	}
	for i, v := range s.Background {
		if v < 0 || v > 1 {
			return invalid("scene.background[%d] must lie within [0, 1], got %v", i, v)
		}
	}
	if s.BackgroundFadeSpeed < 0 {
		return invalid("scene.background_fade_speed must not be negative, got %v", s.BackgroundFadeSpeed)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return invalid("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json", "auto":
	default:
		return invalid("logging.format must be console, json or auto, got %q", c.Logging.Format)
	}
	return nil
}
