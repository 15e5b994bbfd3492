package config

import (
	"strings"

	"github.com/Carmen-Shannon/constellations/common"
)

// Normalize trims and lower-cases free-form values and fills blank fields with defaults.
func (c *Config) Normalize() {
	c.Seed = common.CoalesceString(c.Seed, defaultSeed)
	c.normalizeWindow()
	c.Engine.TickRate = common.Coalesce(c.Engine.TickRate, defaultTickRate)
	c.normalizeInput()
	c.normalizeLogging()
}

func (c *Config) normalizeWindow() {
	c.Window.Title = common.CoalesceString(c.Window.Title, defaultWindowTitle)
	c.Window.Width = common.Coalesce(c.Window.Width, defaultWindowWidth)
	c.Window.Height = common.Coalesce(c.Window.Height, defaultWindowHeight)
}

func (c *Config) normalizeInput() {
	for _, names := range []*[]string{
		&c.Input.Left, &c.Input.Right, &c.Input.Up, &c.Input.Down,
		&c.Input.ZoomToggle, &c.Input.Restart,
	} {
		out := (*names)[:0]
		for _, n := range *names {
			if n = strings.ToLower(strings.TrimSpace(n)); n != "" {
				out = append(out, n)
			}
		}
		*names = out
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(common.CoalesceString(c.Logging.Level, defaultLogLevel))
	c.Logging.Format = strings.ToLower(common.CoalesceString(c.Logging.Format, defaultLogFormat))
	if c.Logging.Format == "text" {
		c.Logging.Format = "console"
	}
}
