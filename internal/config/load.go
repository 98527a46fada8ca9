package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML config file, applies defaults and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Default returns a config with all defaults applied and no config file.
// The whisper model directory falls back to ~/.cache/whisper.
func Default() *Config {
	cfg := &Config{}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.Whisper.ModelDir = home + "/.cache/whisper"
	} else {
		cfg.Whisper.ModelDir = "models"
	}
	// Validate never fails once model_dir is set.
	_ = cfg.Validate()
	return cfg
}
