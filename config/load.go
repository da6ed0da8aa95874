package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load parses a YAML document into an Exploration config and validates it.
// Unknown fields are rejected so typos surface instead of silently falling
// back to defaults.
func Load(data []byte) (Exploration, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Exploration
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Exploration{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Exploration{}, err
	}

	return cfg, nil
}

// LoadFile reads and parses a YAML exploration config from disk.
func LoadFile(path string) (Exploration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Exploration{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Load(data)
	if err != nil {
		return Exploration{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}
