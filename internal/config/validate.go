package config

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"notoday/internal/spec"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Validate checks a normalized config and the files it references.
func Validate(cfg *spec.Config) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	validQuestionsFile := true
	if !fs.ValidPath(cfg.QuestionsFile) || cfg.QuestionsFile == "." {
		collector.add("questions_file", fmt.Sprintf("invalid resource name %q", cfg.QuestionsFile))
		validQuestionsFile = false
	} else if path.Ext(cfg.QuestionsFile) != ".json" {
		collector.add("questions_file", "must be a .json file")
	}

	if cfg.AssetsDir != "" {
		validateAssetsDir(cfg, validQuestionsFile, collector)
	}

	switch cfg.UI.Mode {
	case "auto", "live", "plain":
	default:
		collector.add("ui.mode", fmt.Sprintf("invalid ui mode %q (expected auto|live|plain)", cfg.UI.Mode))
	}

	return collector.result()
}

func validateAssetsDir(cfg *spec.Config, checkFile bool, collector *issueCollector) {
	info, err := os.Stat(cfg.AssetsDir)
	if err != nil {
		if os.IsNotExist(err) {
			collector.add("assets_dir", fmt.Sprintf("directory %q does not exist", cfg.AssetsDir))
			return
		}
		collector.add("assets_dir", fmt.Sprintf("stat %q: %v", cfg.AssetsDir, err))
		return
	}
	if !info.IsDir() {
		collector.add("assets_dir", fmt.Sprintf("%q is not a directory", cfg.AssetsDir))
		return
	}
	if !checkFile {
		return
	}
	questionsPath := filepath.Join(cfg.AssetsDir, filepath.FromSlash(cfg.QuestionsFile))
	if _, err := os.Stat(questionsPath); err != nil {
		collector.add("questions_file", fmt.Sprintf("%q not found in assets_dir", cfg.QuestionsFile))
	}
}
