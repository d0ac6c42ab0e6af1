package manifest_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	befungeerrors "github.com/Dzonas/befunge93/errors"
	"github.com/Dzonas/befunge93/manifest"
)

func write(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "befunge.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	m, err := manifest.Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if m.Run.StepLimit != 0 {
		t.Errorf("StepLimit = %d, want 0", m.Run.StepLimit)
	}
	if m.TUI.AccentColor == "" {
		t.Error("default accent color empty")
	}
	if m.Dir != dir {
		t.Errorf("Dir = %q, want %q", m.Dir, dir)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, `
[run]
step-limit = 5000
stdin = "65"

[tui]
accent-color = "#00FF00"
`)

	m, err := manifest.Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if m.Run.StepLimit != 5000 {
		t.Errorf("StepLimit = %d, want 5000", m.Run.StepLimit)
	}
	if m.Run.Stdin != "65" {
		t.Errorf("Stdin = %q, want %q", m.Run.Stdin, "65")
	}
	if m.TUI.AccentColor != "#00FF00" {
		t.Errorf("AccentColor = %q", m.TUI.AccentColor)
	}
	// unset fields keep their defaults
	if m.TUI.ErrorColor == "" {
		t.Error("unset error color lost its default")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "[run\nstep-limit = ")
	if _, err := manifest.Load(dir); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadNegativeStepLimit(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "[run]\nstep-limit = -1\n")
	_, err := manifest.Load(dir)
	var fault *befungeerrors.Error
	if !errors.As(err, &fault) || fault.Kind != befungeerrors.KindInvalidConfig {
		t.Fatalf("err = %v, want invalid_config fault", err)
	}
}
