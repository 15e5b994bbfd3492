package main

import (
	"fmt"

	"github.com/Carmen-Shannon/constellations/engine/scene"
	"github.com/Carmen-Shannon/constellations/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// rootFlags holds the command-line overrides. A flag only overrides the config file when it was
// set explicitly.
type rootFlags struct {
	configPath  string
	seed        string
	skipIntro   bool
	windowed    bool
	logLevel    string
	logFormat   string
	profile     bool
	watchConfig bool
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:           "constellations",
		Short:         "Orbit a seeded constellation world",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(flags, cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, flags, cmd.ErrOrStderr())
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Configuration file path (.toml, .yaml or .yml)")

	f := rootCmd.Flags()
	f.StringVar(&flags.seed, "seed", "", "World seed as up to 16 hex digits (default DEADBEEF)")
	f.BoolVar(&flags.skipIntro, "skip-intro", false, "Start at the final field of view without the intro sweep")
	f.BoolVar(&flags.windowed, "windowed", false, "Open a decorated window instead of fullscreen")
	f.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	f.StringVar(&flags.logFormat, "log-format", "", "Log format: console, json or auto")
	f.BoolVar(&flags.profile, "profile", false, "Log frame rate and memory statistics every second")
	f.BoolVar(&flags.watchConfig, "watch-config", false, "Reload camera tuning when the config file changes")

	rootCmd.AddCommand(newConfigCommand(flags))
	return rootCmd
}

// resolveConfig loads the config file and applies explicitly set flags on top.
func resolveConfig(flags *rootFlags, fs *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	if fs.Changed("seed") {
		if _, err := scene.ParseSeed(flags.seed); err != nil {
			return nil, fmt.Errorf("--seed: %w", err)
		}
		cfg.Seed = flags.seed
	}
	if fs.Changed("skip-intro") {
		cfg.SkipIntro = flags.skipIntro
	}
	if fs.Changed("windowed") {
		cfg.Window.Windowed = flags.windowed
	}
	if fs.Changed("log-level") {
		cfg.Logging.Level = flags.logLevel
	}
	if fs.Changed("log-format") {
		cfg.Logging.Format = flags.logFormat
	}
	if fs.Changed("profile") {
		cfg.Engine.Profiling = flags.profile
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
