package main

import (
	"fmt"

	"github.com/Carmen-Shannon/constellations/internal/config"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCommand(flags *rootFlags) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Load and validate the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := config.Load(flags.configPath); err != nil {
				return err
			}
			source := flags.configPath
			if source == "" {
				source = "defaults"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "config ok: %s\n", source)
			return nil
		},
	})

	var format string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			var out []byte
			switch format {
			case "toml":
				out, err = toml.Marshal(cfg)
			case "yaml":
				out, err = yaml.Marshal(cfg)
			default:
				return fmt.Errorf("--format: unsupported value %q (want toml or yaml)", format)
			}
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	showCmd.Flags().StringVar(&format, "format", "toml", "Output format: toml or yaml")
	configCmd.AddCommand(showCmd)

	return configCmd
}
