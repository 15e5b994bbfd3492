// Package config loads, normalizes, and validates Constellations configuration.
//
// It supplies defaults for every knob, reads TOML or YAML files chosen by
// extension, and converts sections into the values the engine packages take
// (camera tuning, input bindings, world seed). Watcher reloads the file when
// it changes on disk so camera tuning can be adjusted while the program runs.
package config
