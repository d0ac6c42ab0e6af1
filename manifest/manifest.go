// Package manifest handles befunge.toml runner configuration.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/Dzonas/befunge93/errors"
)

// Manifest represents a befunge.toml runner configuration.
type Manifest struct {
	Run Run `toml:"run"`
	TUI TUI `toml:"tui"`

	// Dir is the directory containing the befunge.toml file (set at load time).
	Dir string `toml:"-"`
}

// Run configures batch execution.
type Run struct {
	// StepLimit bounds Run; 0 means unbounded.
	StepLimit int `toml:"step-limit"`
	// Stdin is program input supplied up front, useful for programs
	// driven by & and ~.
	Stdin string `toml:"stdin"`
}

// TUI configures the interactive stepper's appearance.
type TUI struct {
	AccentColor string `toml:"accent-color"`
	ErrorColor  string `toml:"error-color"`
}

// Default returns the configuration used when no befunge.toml exists.
func Default() *Manifest {
	return &Manifest{
		TUI: TUI{
			AccentColor: "#7D56F4",
			ErrorColor:  "#FF6B6B",
		},
	}
}

// Load parses a befunge.toml file from the given directory. A missing
// file is not an error; defaults are returned instead.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "befunge.toml")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		m := Default()
		m.Dir = dir
		return m, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	m := Default()
	if err := toml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	m.Dir = dir

	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manifest) validate() error {
	if m.Run.StepLimit < 0 {
		return errors.InvalidConfig("run.step-limit must be >= 0, got %d", m.Run.StepLimit)
	}
	return nil
}
