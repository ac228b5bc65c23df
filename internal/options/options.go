// Package options manages the player-tunable gameplay settings: missile
// speed, starting lives, and the per-wave invader speed increment. Settings
// live in a small YAML file and take effect on the next game reset, never
// mid-run.
package options

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dperique/invaders/internal/core"
)

// Allowed ranges for each option. Loads and menu edits clamp into these.
const (
	MinMissileSpeed = 5.0
	MaxMissileSpeed = 20.0

	MinLives = 1
	MaxLives = 5

	MinSpeedIncrement = 1.0
	MaxSpeedIncrement = 2.0
)

// Options holds the tunable gameplay settings.
type Options struct {
	// MissileSpeed is how far a player missile travels per tick.
	MissileSpeed float64 `yaml:"missile_speed"`
	// Lives is the number of lives a new game starts with.
	Lives int `yaml:"lives"`
	// InvaderSpeedIncrement multiplies alien speed after each cleared wave.
	InvaderSpeedIncrement float64 `yaml:"invader_speed_increment"`
}

// Default returns the out-of-the-box settings.
func Default() Options {
	return Options{
		MissileSpeed:          10.0,
		Lives:                 3,
		InvaderSpeedIncrement: 1.2,
	}
}

// Clamped returns a copy with every field forced into its allowed range.
func (o Options) Clamped() Options {
	o.MissileSpeed = core.ClampF(o.MissileSpeed, MinMissileSpeed, MaxMissileSpeed)
	o.Lives = core.Clamp(o.Lives, MinLives, MaxLives)
	o.InvaderSpeedIncrement = core.ClampF(o.InvaderSpeedIncrement, MinSpeedIncrement, MaxSpeedIncrement)
	return o
}

// Load loads options from disk.
// Search order: customPath -> ~/.invaders/options.yaml -> ./options.yaml -> embedded default.
// Missing or unreadable files in the search path (other than an explicit
// customPath) fall through to the next candidate, so Load without a custom
// path always succeeds. The result is always clamped.
func Load(customPath string) (Options, error) {
	opts := Default()

	// An explicit path must work; the caller decides how to recover.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return opts, fmt.Errorf("failed to read options %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return Default(), fmt.Errorf("failed to parse options %s: %w", customPath, err)
		}
		return opts.Clamped(), nil
	}

	// Try the user options file.
	if userPath := DefaultPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &opts); err == nil {
				return opts.Clamped(), nil
			}
			opts = Default()
		}
	}

	// Try an options file next to the binary.
	if data, err := os.ReadFile("options.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &opts); err == nil {
			return opts.Clamped(), nil
		}
		opts = Default()
	}

	// Use the embedded default YAML.
	if err := yaml.Unmarshal(defaultOptionsYAML, &opts); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return opts.Clamped(), nil
}

// Save writes options as YAML to the given path, creating parent
// directories as needed.
func Save(path string, o Options) error {
	if path == "" {
		return fmt.Errorf("failed to save options: no path")
	}
	data, err := yaml.Marshal(o.Clamped())
	if err != nil {
		return fmt.Errorf("failed to encode options: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create options directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write options %s: %w", path, err)
	}
	return nil
}

// DefaultPath returns the user options file path, or empty if the home
// directory is unavailable.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", "options.yaml")
}

// roundStep snaps a float option to one decimal so repeated menu steps do
// not accumulate floating point drift.
func roundStep(v float64) float64 {
	return math.Round(v*10) / 10
}
