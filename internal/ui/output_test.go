package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func newTestUI(t *testing.T) (*UI, *bytes.Buffer) {
	t.Helper()
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	var buf bytes.Buffer
	return NewWithWriter(&buf), &buf
}

func TestMessagePrefixes(t *testing.T) {
	u, buf := newTestUI(t)

	u.Successf("Generated %d HTML file(s)", 3)
	u.Warning("No admonition classes found in output")
	u.Error("Hugo build failed")
	u.Info("Building test site...")

	want := strings.Join([]string{
		"✓ Generated 3 HTML file(s)",
		"⚠ Warning: No admonition classes found in output",
		"✗ Error: Hugo build failed",
		"Building test site...",
		"",
	}, "\n")
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestHeader(t *testing.T) {
	u, buf := newTestUI(t)

	u.Header("Hugo Admonitions Test Suite")

	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("Header() printed %d lines", len(lines))
	}
	if lines[0] != strings.Repeat("=", 42) || lines[1] != "Hugo Admonitions Test Suite" || lines[2] != lines[0] {
		t.Errorf("Header() = %q", buf.String())
	}
}

func TestPromptYesNoNonInteractive(t *testing.T) {
	u, _ := newTestUI(t)

	for _, def := range []bool{true, false} {
		got, err := u.PromptYesNo("Remove previous build?", def)
		if err != nil {
			t.Fatalf("PromptYesNo() error = %v", err)
		}
		if got != def {
			t.Errorf("PromptYesNo() = %v, want default %v", got, def)
		}
	}
}

func TestVerdictMessages(t *testing.T) {
	u, buf := newTestUI(t)

	u.Failuref("Tests failed with %d error(s)", 2)
	u.Noticef("%d warning(s)", 1)

	want := "✗ Tests failed with 2 error(s)\n⚠ 1 warning(s)\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestStep(t *testing.T) {
	u, buf := newTestUI(t)

	u.Success("Build successful")
	u.Step("Checking specific test cases...")

	want := "✓ Build successful\n\nChecking specific test cases...\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}
