package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds segmentation settings loadable from a YAML file.
type Config struct {
	Duration int    `yaml:"duration"` // segment duration in seconds
	MPEGTS   int    `yaml:"mpegts"`   // X-TIMESTAMP-MAP offset
	Output   string `yaml:"output"`   // output directory
}

// Default returns the documented defaults.
func Default() *Config {
	return &Config{
		Duration: 10,
		MPEGTS:   900000,
		Output:   "output",
	}
}

// Load reads a YAML config file on top of the defaults and validates the
// result. Fields absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration, collecting every problem into a
// single error.
func (c *Config) Validate() error {
	var problems []string

	if c.Duration <= 0 {
		problems = append(problems, "duration must be positive")
	}
	if c.MPEGTS < 0 {
		problems = append(problems, "mpegts cannot be negative")
	}
	if c.Output == "" {
		problems = append(problems, "output directory is required")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s",
			strings.Join(problems, "\n  - "))
	}
	return nil
}
