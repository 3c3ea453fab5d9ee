package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"notoday/internal/spec"
)

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (spec.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return spec.Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := spec.ParseConfig(data)
	if err != nil {
		return spec.Config{}, err
	}
	Normalize(&cfg, BaseDirFromConfigPath(path))
	if err := Validate(&cfg); err != nil {
		return spec.Config{}, err
	}
	return cfg, nil
}

// Resolve loads the config at path, or searches upward from the working
// directory when path is empty. A missing config yields Default.
func Resolve(path string) (spec.Config, error) {
	if strings.TrimSpace(path) != "" {
		return Load(path)
	}
	found, err := FindConfigPath("")
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			return Default(), nil
		}
		return spec.Config{}, err
	}
	return Load(found)
}
