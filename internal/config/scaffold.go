package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `version: 1

# Directory holding questions.json. Leave empty to use the packaged questions.
assets_dir: ""
questions_file: "questions.json"

# Go time layout for the date label shown on the day screen.
date_format: "2006-01-02"

ui:
  mode: auto
  no_color: false
`

// Scaffold writes a default config file at configPath.
func Scaffold(configPath string) error {
	if configPath == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(configPath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", configPath)
		}
		return fmt.Errorf("config file already exists at %q", configPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
