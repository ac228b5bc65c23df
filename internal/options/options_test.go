package options

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	opts := Default()

	if opts.MissileSpeed != 10.0 {
		t.Errorf("default MissileSpeed = %v, expected 10.0", opts.MissileSpeed)
	}
	if opts.Lives != 3 {
		t.Errorf("default Lives = %d, expected 3", opts.Lives)
	}
	if opts.InvaderSpeedIncrement != 1.2 {
		t.Errorf("default InvaderSpeedIncrement = %v, expected 1.2", opts.InvaderSpeedIncrement)
	}
}

func TestClamped(t *testing.T) {
	tests := []struct {
		name     string
		in       Options
		expected Options
	}{
		{
			name:     "in range unchanged",
			in:       Options{MissileSpeed: 12.0, Lives: 4, InvaderSpeedIncrement: 1.5},
			expected: Options{MissileSpeed: 12.0, Lives: 4, InvaderSpeedIncrement: 1.5},
		},
		{
			name:     "all below minimum",
			in:       Options{MissileSpeed: 1.0, Lives: 0, InvaderSpeedIncrement: 0.5},
			expected: Options{MissileSpeed: 5.0, Lives: 1, InvaderSpeedIncrement: 1.0},
		},
		{
			name:     "all above maximum",
			in:       Options{MissileSpeed: 99.0, Lives: 10, InvaderSpeedIncrement: 3.0},
			expected: Options{MissileSpeed: 20.0, Lives: 5, InvaderSpeedIncrement: 2.0},
		},
		{
			name:     "zero value clamps to minimums",
			in:       Options{},
			expected: Options{MissileSpeed: 5.0, Lives: 1, InvaderSpeedIncrement: 1.0},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Clamped(); got != tc.expected {
				t.Errorf("Clamped() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yaml")
	content := "missile_speed: 15.0\nlives: 5\ninvader_speed_increment: 1.8\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test options: %v", err)
	}

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	expected := Options{MissileSpeed: 15.0, Lives: 5, InvaderSpeedIncrement: 1.8}
	if opts != expected {
		t.Errorf("Load = %+v, expected %+v", opts, expected)
	}
}

func TestLoadClampsOutOfRangeValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yaml")
	content := "missile_speed: 100\nlives: 0\ninvader_speed_increment: 9.9\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test options: %v", err)
	}

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	expected := Options{MissileSpeed: 20.0, Lives: 1, InvaderSpeedIncrement: 2.0}
	if opts != expected {
		t.Errorf("Load = %+v, expected %+v", opts, expected)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yaml")
	if err := os.WriteFile(path, []byte("lives: 5\n"), 0o644); err != nil {
		t.Fatalf("failed to write test options: %v", err)
	}

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if opts.Lives != 5 {
		t.Errorf("Lives = %d, expected 5", opts.Lives)
	}
	// Fields missing from the file keep their defaults.
	if opts.MissileSpeed != 10.0 || opts.InvaderSpeedIncrement != 1.2 {
		t.Errorf("missing fields should keep defaults, got %+v", opts)
	}
}

func TestLoadMissingCustomPathReturnsError(t *testing.T) {
	opts, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load of a missing explicit path should fail")
	}
	// The returned options are still usable defaults.
	if opts != Default() {
		t.Errorf("failed Load should return defaults, got %+v", opts)
	}
}

func TestLoadMalformedCustomPathReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yaml")
	if err := os.WriteFile(path, []byte("lives: [not a number\n"), 0o644); err != nil {
		t.Fatalf("failed to write test options: %v", err)
	}

	opts, err := Load(path)
	if err == nil {
		t.Fatal("Load of malformed YAML should fail")
	}
	if opts != Default() {
		t.Errorf("failed Load should return defaults, got %+v", opts)
	}
}

func TestLoadUserFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	userPath := filepath.Join(home, ".invaders", "options.yaml")
	if err := os.MkdirAll(filepath.Dir(userPath), 0o755); err != nil {
		t.Fatalf("failed to create user dir: %v", err)
	}
	if err := os.WriteFile(userPath, []byte("missile_speed: 7\n"), 0o644); err != nil {
		t.Fatalf("failed to write user options: %v", err)
	}

	opts, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if opts.MissileSpeed != 7.0 {
		t.Errorf("MissileSpeed = %v, expected 7.0 from the user file", opts.MissileSpeed)
	}
}

func TestLoadWithoutAnyFileUsesDefaults(t *testing.T) {
	// Point HOME at an empty directory so no user file is found.
	t.Setenv("HOME", t.TempDir())

	opts, err := Load("")
	if err != nil {
		t.Fatalf("Load without files should not fail: %v", err)
	}
	if opts != Default() {
		t.Errorf("Load = %+v, expected defaults", opts)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "options.yaml")
	saved := Options{MissileSpeed: 18.0, Lives: 2, InvaderSpeedIncrement: 1.6}

	if err := Save(path, saved); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load after Save failed: %v", err)
	}
	if loaded != saved {
		t.Errorf("round trip: got %+v, expected %+v", loaded, saved)
	}
}

func TestSaveClampsBeforeWriting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yaml")
	if err := Save(path, Options{MissileSpeed: 50.0, Lives: 9, InvaderSpeedIncrement: 0.1}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	expected := Options{MissileSpeed: 20.0, Lives: 5, InvaderSpeedIncrement: 1.0}
	if loaded != expected {
		t.Errorf("saved file should hold clamped values, got %+v", loaded)
	}
}

func TestSaveWithoutPathFails(t *testing.T) {
	if err := Save("", Default()); err == nil {
		t.Error("Save with an empty path should fail")
	}
}
