package cli

import (
	"os"
	"path/filepath"
	"testing"

	"notoday/internal/config"
)

// writeRepo creates a config whose assets dir holds the given questions payload.
func writeRepo(t *testing.T, questions string) string {
	t.Helper()
	root := t.TempDir()
	configPath := config.ConfigPath(root)
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	body := "version: 1\nassets_dir: data\ndate_format: \"Jan 2\"\nui:\n  mode: plain\n  no_color: true\n"
	if err := os.WriteFile(configPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	dataDir := filepath.Join(root, "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		t.Fatalf("create data dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dataDir, "questions.json"), []byte(questions), 0o644); err != nil {
		t.Fatalf("write questions: %v", err)
	}
	return configPath
}
