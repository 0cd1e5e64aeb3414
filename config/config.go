// Package config loads the emulator's ambient run-time configuration — log
// verbosity and the informational clock rate — from a TOML file, in the
// style of arl-nestor's own ui/config.go. It has no dependency on the cpu
// or memory packages; a driver (out of scope for this core, per spec.md
// §1) wires Config.TraceLevel into the cpu package's logger.
package config

import "github.com/BurntSushi/toml"

// Config holds the ambient settings a driver would load once at startup.
type Config struct {
	// TraceLevel is a logrus level name ("warn", "trace", ...) selecting
	// how verbosely the CPU logs retired instructions. See cpu.WithTrace.
	TraceLevel string `toml:"trace_level"`

	// ClockHz is the nominal bus clock rate in Hz, used only to convert a
	// cycle count from Run(n) into an expected wall-clock duration for
	// display. The CPU core itself has no notion of wall-clock time.
	ClockHz int `toml:"clock_hz"`
}

// Default returns the configuration a fresh install would run with: no
// instruction tracing, and the NTSC NES clock rate (the most common
// 6502-family clock among this module's reference implementations).
func Default() Config {
	return Config{
		TraceLevel: "warn",
		ClockHz:    1789773,
	}
}

// Load reads and parses a TOML configuration file at path, starting from
// Default so that a file which only overrides one field leaves the rest at
// their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
