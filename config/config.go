// Package config holds browser settings loaded from an optional YAML file.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Web     WebConfig        `yaml:"web"`
	Color   DebugColorConfig `yaml:"debug_color"`
	Logging LoggingConfig    `yaml:"logging"`
}

type WebConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// DebugColorConfig controls the deterministic per-primitive debug coloring.
// Hue is derived from the primitive ordinal; saturation and value come from
// here and are passed to the HSV conversion unclamped.
type DebugColorConfig struct {
	Saturation float32 `yaml:"saturation"`
	Value      float32 `yaml:"value"`
}

type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

func Default() *Config {
	return &Config{
		Web:     WebConfig{ListenAddr: ":8000"},
		Color:   DebugColorConfig{Saturation: 0.5, Value: 1.0},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load returns defaults overridden by the YAML file at path, when given.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to read config %q", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "Failed to parse config %q", path)
	}
	return cfg, nil
}
