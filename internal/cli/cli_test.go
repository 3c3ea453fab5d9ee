package cli

import (
	"bytes"
	"strings"
	"testing"
)

// TestRunWithoutArgsPrintsUsage verifies the bare command prints usage.
func TestRunWithoutArgsPrintsUsage(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run(nil, &out, &errOut)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	for _, name := range []string{"init", "validate", "show", "ui"} {
		if !strings.Contains(out.String(), name) {
			t.Fatalf("expected usage to list %q, got %q", name, out.String())
		}
	}
}

// TestRunHelp verifies help flags exit cleanly.
func TestRunHelp(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := Run([]string{"--help"}, &out, &errOut); code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	out.Reset()
	if code := Run([]string{"show", "--help"}, &out, &errOut); code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if !strings.Contains(out.String(), "notoday show") {
		t.Fatalf("expected command usage, got %q", out.String())
	}
}

// TestRunUnknownCommand verifies unknown commands are rejected.
func TestRunUnknownCommand(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run([]string{"sync"}, &out, &errOut)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(errOut.String(), "Unknown command: sync") {
		t.Fatalf("expected unknown command message, got %q", errOut.String())
	}
}

// TestRunRejectsExtraArgs verifies positional arguments are usage errors.
func TestRunRejectsExtraArgs(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run([]string{"validate", "extra"}, &out, &errOut)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(errOut.String(), "unexpected arguments: extra") {
		t.Fatalf("expected unexpected arguments message, got %q", errOut.String())
	}
}
