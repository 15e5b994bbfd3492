package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Carmen-Shannon/constellations/common"
	"github.com/Carmen-Shannon/constellations/engine/camera"
	"github.com/Carmen-Shannon/constellations/engine/input"
	"github.com/Carmen-Shannon/constellations/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format names a configuration file syntax.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Window contains window creation settings.
type Window struct {
	Title    string `toml:"title" yaml:"title"`
	Width    int    `toml:"width" yaml:"width"`
	Height   int    `toml:"height" yaml:"height"`
	Windowed bool   `toml:"windowed" yaml:"windowed"`
	VSync    bool   `toml:"vsync" yaml:"vsync"`
}

// Engine contains frame loop settings.
type Engine struct {
	TickRate         float64 `toml:"tick_rate" yaml:"tick_rate"`
	RenderFrameLimit float64 `toml:"render_frame_limit" yaml:"render_frame_limit"`
	Profiling        bool    `toml:"profiling" yaml:"profiling"`
}

// Camera contains the orbit rig tunables and the lens.
type Camera struct {
	MaxRotSpeed       float32    `toml:"max_rot_speed" yaml:"max_rot_speed"`
	MinPitch          float32    `toml:"min_pitch" yaml:"min_pitch"`
	MaxPitch          float32    `toml:"max_pitch" yaml:"max_pitch"`
	RotationLerpSpeed float32    `toml:"rotation_lerp_speed" yaml:"rotation_lerp_speed"`
	ZoomSpeed         float32    `toml:"zoom_speed" yaml:"zoom_speed"`
	FarMultiplier     float32    `toml:"far_multiplier" yaml:"far_multiplier"`
	StartPosition     [3]float32 `toml:"start_position" yaml:"start_position"`
	FovDegrees        float32    `toml:"fov_degrees" yaml:"fov_degrees"`
	Near              float32    `toml:"near" yaml:"near"`
	Far               float32    `toml:"far" yaml:"far"`
}

// Scene contains intro and background settings.
type Scene struct {
	IntroSeconds        float32    `toml:"intro_seconds" yaml:"intro_seconds"`
	IntroFovDegrees     float32    `toml:"intro_fov_degrees" yaml:"intro_fov_degrees"`
	Background          [4]float32 `toml:"background" yaml:"background"`
	BackgroundFadeSpeed float32    `toml:"background_fade_speed" yaml:"background_fade_speed"`
	RandomizeOnRestart  bool       `toml:"randomize_on_restart" yaml:"randomize_on_restart"`
}

// Input maps each action to the names of the keys bound to it.
type Input struct {
	Left       []string `toml:"left" yaml:"left"`
	Right      []string `toml:"right" yaml:"right"`
	Up         []string `toml:"up" yaml:"up"`
	Down       []string `toml:"down" yaml:"down"`
	ZoomToggle []string `toml:"zoom_toggle" yaml:"zoom_toggle"`
	Restart    []string `toml:"restart" yaml:"restart"`
}

// Logging contains configuration for log output.
type Logging struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// Config is the full program configuration.
type Config struct {
	Seed      string  `toml:"seed" yaml:"seed"`
	SkipIntro bool    `toml:"skip_intro" yaml:"skip_intro"`
	Window    Window  `toml:"window" yaml:"window"`
	Engine    Engine  `toml:"engine" yaml:"engine"`
	Camera    Camera  `toml:"camera" yaml:"camera"`
	Scene     Scene   `toml:"scene" yaml:"scene"`
	Input     Input   `toml:"input" yaml:"input"`
	Logging   Logging `toml:"logging" yaml:"logging"`
}

// FormatForPath picks the syntax from a file extension.
//
// Parameters:
//   - path: config file path
//
// Returns:
//   - Format: the file syntax
//   - error: wraps ErrInvalid for unknown extensions
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: unsupported config extension %q (want .toml, .yaml or .yml)", ErrInvalid, filepath.Ext(path))
	}
}

// Load reads, normalizes and validates the configuration at path. An empty path yields the
// defaults. Keys missing from the file keep their default values; unknown keys are an error.
//
// Parameters:
//   - path: config file path, or "" for defaults only
//
// Returns:
//   - *Config: the usable configuration
//   - error: open, parse or validation failure
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		cfg := Default()
		if err := cfg.finish(); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	return Decode(file, format)
}

// Parse decodes configuration from memory. See Decode.
func Parse(data []byte, format Format) (*Config, error) {
	return Decode(bytes.NewReader(data), format)
}

// Decode reads configuration in the given syntax on top of the defaults, then normalizes and
// validates it.
//
// Parameters:
//   - r: the encoded configuration
//   - format: FormatTOML or FormatYAML
//
// Returns:
//   - *Config: the usable configuration
//   - error: parse or validation failure
func Decode(r io.Reader, format Format) (*Config, error) {
	cfg := Default()
	switch format {
	case FormatTOML:
		if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrInvalid, format)
	}

	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) finish() error {
	c.Normalize()
	return c.Validate()
}

// SeedValue parses the configured world seed.
func (c *Config) SeedValue() (uint64, error) {
	return scene.ParseSeed(c.Seed)
}

// Tuning converts the camera section into orbit rig constants.
func (c Camera) Tuning() camera.Tuning {
	return camera.Tuning{
		MaxRotSpeed:       c.MaxRotSpeed,
		MinPitch:          c.MinPitch,
		MaxPitch:          c.MaxPitch,
		RotationLerpSpeed: c.RotationLerpSpeed,
		ZoomSpeed:         c.ZoomSpeed,
		StartPosition:     mgl32.Vec3(c.StartPosition),
		FarMultiplier:     c.FarMultiplier,
	}
}

// BackgroundColor returns the scene background as a lerpable color.
func (s Scene) BackgroundColor() common.Color {
	return common.Color(s.Background)
}

// Bindings resolves the key names into dispatcher bindings.
//
// Returns:
//   - input.Bindings: key code to action map
//   - error: unknown key name or a key bound to two actions
func (in Input) Bindings() (input.Bindings, error) {
	return input.BindingsFromNames(in.names())
}

func (in Input) names() map[input.Action][]string {
	return map[input.Action][]string{
		input.ActionLeft:       in.Left,
		input.ActionRight:      in.Right,
		input.ActionUp:         in.Up,
		input.ActionDown:       in.Down,
		input.ActionZoomToggle: in.ZoomToggle,
		input.ActionRestart:    in.Restart,
	}
}
