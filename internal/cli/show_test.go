package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const threeQuestions = `[
  {"id": "cigarette", "question": "Craved a cigarette?", "kind": "craving", "answers": ["yes", "no"]},
  {"id": "sugar", "question": "Craved sugar?", "kind": "craving"},
  {"id": "walk", "question": "Went for a walk?"}
]`

// TestShowPrintsQuestions verifies the loaded day is printed with its count.
func TestShowPrintsQuestions(t *testing.T) {
	configPath := writeRepo(t, threeQuestions)
	var out, errOut bytes.Buffer
	code := Run([]string{"show", "--config", configPath, "--date", "Monday"}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut.String())
	}
	output := out.String()
	for _, want := range []string{"Day Monday", "1. [craving] Craved a cigarette? (yes / no)", "3. Went for a walk?", "Cravings: 3"} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected output to contain %q, got %q", want, output)
		}
	}
}

// TestShowWatchPrintsCascade verifies notifications are printed in cascade order.
func TestShowWatchPrintsCascade(t *testing.T) {
	configPath := writeRepo(t, threeQuestions)
	var out, errOut bytes.Buffer
	code := Run([]string{"show", "--config", configPath, "--watch"}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut.String())
	}
	output := out.String()
	questionsAt := strings.Index(output, "changed questions: 3 questions")
	countAt := strings.Index(output, "changed howManyCravings: 3")
	if questionsAt < 0 || countAt < 0 || questionsAt > countAt {
		t.Fatalf("expected questions before howManyCravings, got %q", output)
	}
	if !strings.Contains(output, "changed isBusy: true") || !strings.Contains(output, "changed isNotBusy: true") {
		t.Fatalf("expected busy notifications, got %q", output)
	}
}

// TestShowVerboseTracesToStderr verifies verbose lines go to stderr.
func TestShowVerboseTracesToStderr(t *testing.T) {
	configPath := writeRepo(t, threeQuestions)
	var out, errOut bytes.Buffer
	code := Run([]string{"show", "--config", configPath, "--verbose", "--no-color"}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if !strings.Contains(errOut.String(), "[verbose] Session ") || !strings.Contains(errOut.String(), "[verbose] questions -> 3 questions") {
		t.Fatalf("expected verbose trace, got %q", errOut.String())
	}
}

// TestShowMalformedData verifies schema errors fail the command.
func TestShowMalformedData(t *testing.T) {
	configPath := writeRepo(t, `[{"not": "a valid question shape"}]`)
	var out, errOut bytes.Buffer
	code := Run([]string{"show", "--config", configPath}, &out, &errOut)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut.String(), "malformed question data") {
		t.Fatalf("expected malformed data message, got %q", errOut.String())
	}
}

// TestShowMissingResource verifies a missing questions file fails the command.
func TestShowMissingResource(t *testing.T) {
	configPath := writeRepo(t, `[]`)
	root := filepath.Dir(filepath.Dir(configPath))
	if err := os.Remove(filepath.Join(root, "data", "questions.json")); err != nil {
		t.Fatalf("remove questions: %v", err)
	}
	var out, errOut bytes.Buffer
	code := Run([]string{"show", "--config", configPath}, &out, &errOut)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut.String(), "questions_file") {
		t.Fatalf("expected config validation to flag the missing file, got %q", errOut.String())
	}
}
