package server

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config is the provd configuration file (YAML). New sections can be
// added without breaking existing configs.
type Config struct {
	// Addr is the TCP listen address.
	Addr string `yaml:"addr"`

	// Limits bound every query the server runs.
	Limits *LimitsConfig `yaml:"limits"`
}

// LimitsConfig caps the search a single request may trigger. Zero or
// negative values take the engine defaults.
type LimitsConfig struct {
	MaxSteps    int `yaml:"maxSteps"`
	MaxBranches int `yaml:"maxBranches"`

	// MaxModels caps how many models one request may enumerate.
	MaxModels int `yaml:"maxModels"`
}

func DefaultConfig() *Config {
	return &Config{
		Addr:   "localhost:9131",
		Limits: &LimitsConfig{MaxModels: 100},
	}
}

// LoadConfig loads a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}
