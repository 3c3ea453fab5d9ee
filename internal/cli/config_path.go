package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"notoday/internal/config"
	"notoday/internal/spec"
)

// resolveConfigPath normalizes a config path or defaults to the working directory.
func resolveConfigPath(configPath string) (string, error) {
	if strings.TrimSpace(configPath) == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return config.ConfigPath(wd), nil
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return abs, nil
}

// loadConfig loads an explicit config or searches for one, falling back to defaults.
func loadConfig(configPath string) (spec.Config, error) {
	if strings.TrimSpace(configPath) == "" {
		return config.Resolve("")
	}
	abs, err := resolveConfigPath(configPath)
	if err != nil {
		return spec.Config{}, err
	}
	return config.Load(abs)
}
