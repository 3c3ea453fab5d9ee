package config

import (
	"path/filepath"
	"strings"

	"notoday/internal/question"
	"notoday/internal/spec"
)

// Defaults applied by Normalize.
const (
	DefaultDateFormat = "2006-01-02"
	DefaultUIMode     = "auto"
)

// Default returns the configuration used when no config file exists.
func Default() spec.Config {
	cfg := spec.Config{Version: 1}
	Normalize(&cfg, "")
	return cfg
}

// Normalize fills defaults and resolves assets_dir against baseDir.
func Normalize(cfg *spec.Config, baseDir string) {
	cfg.AssetsDir = strings.TrimSpace(cfg.AssetsDir)
	if cfg.AssetsDir != "" && baseDir != "" && !filepath.IsAbs(cfg.AssetsDir) {
		cfg.AssetsDir = filepath.Join(baseDir, cfg.AssetsDir)
	}
	cfg.QuestionsFile = strings.TrimSpace(cfg.QuestionsFile)
	if cfg.QuestionsFile == "" {
		cfg.QuestionsFile = question.DefaultResource
	}
	if cfg.DateFormat == "" {
		cfg.DateFormat = DefaultDateFormat
	}
	cfg.UI.Mode = strings.ToLower(strings.TrimSpace(cfg.UI.Mode))
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = DefaultUIMode
	}
}
