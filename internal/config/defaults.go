package config

const (
	defaultSeed                = "DEADBEEF"
	defaultWindowTitle         = "Musical Constellations"
	defaultWindowWidth         = 1280
	defaultWindowHeight        = 720
	defaultTickRate            = 60
	defaultMaxRotSpeed         = 90.0
	defaultMinPitch            = -89.9
	defaultMaxPitch            = 89.9
	defaultRotationLerpSpeed   = 4.0
	defaultZoomSpeed           = -0.3
	defaultFarMultiplier       = 10.0
	defaultFovDegrees          = 60.0
	defaultNear                = 0.05
	defaultFar                 = 1000.0
	defaultIntroSeconds        = 3.0
	defaultIntroFovDegrees     = 110.0
	defaultBackgroundFadeSpeed = 1.5
	defaultLogLevel            = "info"
	defaultLogFormat           = "auto"
)

// Default returns a Config populated with the stock settings.
func Default() Config {
	return Config{
		Seed: defaultSeed,
		Window: Window{
			Title:  defaultWindowTitle,
			Width:  defaultWindowWidth,
			Height: defaultWindowHeight,
			VSync:  true,
		},
		Engine: Engine{
			TickRate: defaultTickRate,
		},
		Camera: Camera{
			MaxRotSpeed:       defaultMaxRotSpeed,
			MinPitch:          defaultMinPitch,
			MaxPitch:          defaultMaxPitch,
			RotationLerpSpeed: defaultRotationLerpSpeed,
			ZoomSpeed:         defaultZoomSpeed,
			FarMultiplier:     defaultFarMultiplier,
			StartPosition:     [3]float32{0, 0, 5},
			FovDegrees:        defaultFovDegrees,
			Near:              defaultNear,
			Far:               defaultFar,
		},
		Scene: Scene{
			IntroSeconds:        defaultIntroSeconds,
			IntroFovDegrees:     defaultIntroFovDegrees,
			Background:          [4]float32{0.02, 0.02, 0.06, 1},
			BackgroundFadeSpeed: defaultBackgroundFadeSpeed,
		},
		Input: defaultInput(),
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

func defaultInput() Input {
	return Input{
		Left:       []string{"left", "a"},
		Right:      []string{"right", "d"},
		Up:         []string{"up", "w"},
		Down:       []string{"down", "s"},
		ZoomToggle: []string{"space"},
		Restart:    []string{"r"},
	}
}
