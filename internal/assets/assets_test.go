package assets

import (
	"os"
	"path/filepath"
	"testing"

	"notoday/internal/question"
)

// TestPackagedQuestionsAreValid verifies the bundled data decodes strictly.
func TestPackagedQuestionsAreValid(t *testing.T) {
	questions, err := question.Load(Packaged(), question.DefaultResource)
	if err != nil {
		t.Fatalf("load packaged questions: %v", err)
	}
	if len(questions) == 0 {
		t.Fatalf("expected packaged questions")
	}
}

// TestResolveDir verifies a configured directory replaces the packaged data.
func TestResolveDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, question.DefaultResource), []byte(`[{"question": "Custom?"}]`), 0o644); err != nil {
		t.Fatalf("write questions: %v", err)
	}
	fsys, err := Resolve(dir)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	questions, err := question.Load(fsys, question.DefaultResource)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(questions) != 1 || questions[0].Prompt != "Custom?" {
		t.Fatalf("unexpected questions: %+v", questions)
	}
}

// TestDirRejectsFiles verifies a file path is not accepted as an assets dir.
func TestDirRejectsFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := Dir(path); err == nil {
		t.Fatalf("expected error")
	}
	if _, err := Resolve(""); err != nil {
		t.Fatalf("expected packaged fallback, got %v", err)
	}
}
