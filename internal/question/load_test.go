package question

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

// TestLoadPackagedQuestions verifies records decode in file order.
func TestLoadPackagedQuestions(t *testing.T) {
	fsys := fstest.MapFS{
		DefaultResource: &fstest.MapFile{Data: []byte(`[
  {"id": "smoke", "question": "Did you crave a cigarette today?", "kind": "craving", "answers": ["yes", "no"]},
  {"id": "walk", "question": "Did you go for a walk?"}
]`)},
	}
	questions, err := Load(fsys, DefaultResource)
	if err != nil {
		t.Fatalf("load questions: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[0].ID != "smoke" || questions[1].ID != "walk" {
		t.Fatalf("unexpected order: %+v", questions)
	}
	if questions[0].Kind != "craving" || len(questions[0].Answers) != 2 {
		t.Fatalf("unexpected first question: %+v", questions[0])
	}
}

// TestLoadEmptyArray verifies an empty array yields a non-nil empty list.
func TestLoadEmptyArray(t *testing.T) {
	fsys := fstest.MapFS{DefaultResource: &fstest.MapFile{Data: []byte(`[]`)}}
	questions, err := Load(fsys, DefaultResource)
	if err != nil {
		t.Fatalf("load questions: %v", err)
	}
	if questions == nil || len(questions) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", questions)
	}
}

// TestLoadMissingResource verifies missing files map to ResourceMissingError.
func TestLoadMissingResource(t *testing.T) {
	_, err := Load(fstest.MapFS{}, DefaultResource)
	if err == nil {
		t.Fatalf("expected error")
	}
	var missing *ResourceMissingError
	if !errors.As(err, &missing) {
		t.Fatalf("expected resource missing error, got %v", err)
	}
	if missing.Name != DefaultResource {
		t.Fatalf("expected name %q, got %q", DefaultResource, missing.Name)
	}
	if !errors.Is(err, ErrResourceMissing) || !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected sentinel matches, got %v", err)
	}
}

// TestLoadUnreadableResource verifies read failures map to IOError.
func TestLoadUnreadableResource(t *testing.T) {
	fsys := fstest.MapFS{DefaultResource: &fstest.MapFile{Mode: fs.ModeDir}}
	_, err := Load(fsys, DefaultResource)
	if err == nil {
		t.Fatalf("expected error")
	}
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected io error, got %v", err)
	}
	if !errors.Is(err, ErrIO) {
		t.Fatalf("expected ErrIO match, got %v", err)
	}
}

// TestLoadRejectsUnknownShape verifies a foreign record fails the whole load.
func TestLoadRejectsUnknownShape(t *testing.T) {
	fsys := fstest.MapFS{DefaultResource: &fstest.MapFile{Data: []byte(`[
  {"question": "Did you sleep well?"},
  {"not": "a valid question shape"}
]`)}}
	questions, err := Load(fsys, DefaultResource)
	if err == nil {
		t.Fatalf("expected error")
	}
	if questions != nil {
		t.Fatalf("expected no partial result, got %+v", questions)
	}
	var malformed *MalformedDataError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected malformed data error, got %v", err)
	}
	if malformed.Name != DefaultResource {
		t.Fatalf("expected resource name on error, got %q", malformed.Name)
	}
	if !strings.Contains(err.Error(), "questions[1]") {
		t.Fatalf("expected record index in error, got %q", err.Error())
	}
}

// TestParseRejectsInvalidDocuments verifies document-level schema checks.
func TestParseRejectsInvalidDocuments(t *testing.T) {
	cases := map[string]string{
		"empty":               ``,
		"object":              `{"question": "x"}`,
		"null":                `null`,
		"scalar element":      `["x"]`,
		"wrong type":          `[{"question": 3}]`,
		"truncated":           `[{"question": "x"}`,
		"trailing":            `[] []`,
		"case-mismatched key": `[{"QUESTION": "x", "Kind": "craving", "ID": "a"}]`,
		"duplicate key":       `[{"question": "a", "question": "b"}]`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(payload))
			if !errors.Is(err, ErrMalformedData) {
				t.Fatalf("expected malformed data error, got %v", err)
			}
		})
	}
}

// TestParseNamesOffendingKey verifies key errors point at the record and key.
func TestParseNamesOffendingKey(t *testing.T) {
	cases := map[string]struct {
		payload string
		want    string
	}{
		"case-mismatched": {payload: `[{"question": "ok"}, {"Question": "x"}]`, want: `questions[1]: unknown field "Question"`},
		"duplicate":       {payload: `[{"question": "a", "question": "b"}]`, want: `questions[0]: duplicate field "question"`},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			questions, err := Parse([]byte(tc.payload))
			if questions != nil {
				t.Fatalf("expected no partial result, got %+v", questions)
			}
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

// TestParseValidationIssues verifies record-level issues are collected.
func TestParseValidationIssues(t *testing.T) {
	payload := `[
  {"id": "dup", "question": "  "},
  {"id": "dup", "question": "Q2", "answers": ["yes", ""]}
]`
	_, err := Parse([]byte(payload))
	var malformed *MalformedDataError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected malformed data error, got %v", err)
	}
	if len(malformed.Issues) != 3 {
		t.Fatalf("expected 3 issues, got %+v", malformed.Issues)
	}
	fields := []string{malformed.Issues[0].Field, malformed.Issues[1].Field, malformed.Issues[2].Field}
	expected := []string{"questions[0].question", "questions[1].id", "questions[1].answers[1]"}
	for i := range expected {
		if fields[i] != expected[i] {
			t.Fatalf("expected field %q at %d, got %q", expected[i], i, fields[i])
		}
	}
}

// TestLoadFile verifies questions load from a filesystem path.
func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "questions.json")
	if err := os.WriteFile(path, []byte(`[{"question": "Any cravings?"}]`), 0o644); err != nil {
		t.Fatalf("write questions: %v", err)
	}
	questions, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if len(questions) != 1 || questions[0].Prompt != "Any cravings?" {
		t.Fatalf("unexpected questions: %+v", questions)
	}
}
