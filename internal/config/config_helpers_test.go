package config

import (
	"os"
	"path/filepath"
	"testing"
)

// writeConfig writes body to .notoday/config.yml under a temp root.
func writeConfig(t *testing.T, body string) (string, string) {
	t.Helper()
	root := t.TempDir()
	path := ConfigPath(root)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return root, path
}

// writeQuestions writes a questions file under root/dir.
func writeQuestions(t *testing.T, root, dir, name string) {
	t.Helper()
	target := filepath.Join(root, dir)
	if err := os.MkdirAll(target, 0o755); err != nil {
		t.Fatalf("create assets dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(target, name), []byte(`[{"question": "Any cravings?"}]`), 0o644); err != nil {
		t.Fatalf("write questions: %v", err)
	}
}
