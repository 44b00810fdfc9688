package log

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes optional logging settings loaded from a yaml file.
type Config struct {
	// DefaultLevel is used when a command does not set an explicit level.
	DefaultLevel string `yaml:"defaultLevel"`
	// Filters contains zapfilter rules, e.g. "debug:simulation.* info:*"
	Filters string `yaml:"filters"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading log config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing log config: %w", err)
	}
	return &cfg, nil
}
