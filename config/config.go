// SPDX-License-Identifier: MIT
//
// Package config loads graphsolve run configuration: which scenarios to
// solve, how many milliseconds to pace each traced step, and whether to
// emit debug tracing. Configuration is plain YAML, following a
// "defaults first, then overlay the file" load order.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario names one fixtures.Build entry plus any per-scenario override
// of the run's default pacing.
type Scenario struct {
	Name    string `yaml:"name"`
	SleepMS int    `yaml:"sleep_ms,omitempty"`
}

// Config is the top-level graphsolve run configuration.
type Config struct {
	Scenarios []Scenario `yaml:"scenarios"`
	Debug     bool       `yaml:"debug,omitempty"`
	SleepMS   int        `yaml:"sleep_ms,omitempty"`
	OutputDir string     `yaml:"output_dir,omitempty"`
}

// Default returns the single-scenario configuration graphsolve falls
// back to when no config file is given.
func Default() Config {
	return Config{
		Scenarios: []Scenario{{Name: "square"}},
		OutputDir: ".",
	}
}

// Load reads and parses a YAML config file at path. A missing file is
// not an error: it returns Default().
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg.Scenarios = nil // the file is authoritative on scenarios if present
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if len(cfg.Scenarios) == 0 {
		cfg.Scenarios = Default().Scenarios
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	return cfg, nil
}

// EffectiveSleepMS resolves a scenario's pacing: its own override if set,
// otherwise the run-wide default.
func (c Config) EffectiveSleepMS(s Scenario) int {
	if s.SleepMS > 0 {
		return s.SleepMS
	}
	return c.SleepMS
}
