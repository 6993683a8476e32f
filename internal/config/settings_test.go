package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"go-hex-territory/pkg/hexmap"
)

func TestDefaults(t *testing.T) {
	s := Default()
	if s.Grid.Width != 9 || s.Grid.Height != 9 {
		t.Fatalf("grid = %+v, want 9x9", s.Grid)
	}
	if s.Secure.Window != 3.0 || s.Secure.CaptureFxDelay != 0.25 {
		t.Fatalf("secure = %+v", s.Secure)
	}
	if fixes := s.Validate(); len(fixes) != 0 {
		t.Fatalf("defaults needed fixes: %v", fixes)
	}
}

func TestParseKeepsDefaultsForMissingFields(t *testing.T) {
	s, err := Parse([]byte("grid:\n  width: 15\n  height: 11\nsecure:\n  window: 4.5\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Grid.Width != 15 || s.Grid.Height != 11 {
		t.Fatalf("grid = %+v", s.Grid)
	}
	if s.Secure.Window != 4.5 {
		t.Fatalf("window = %v", s.Secure.Window)
	}
	if s.Player.HP != 3 || s.Player.StepDuration != 0.2 {
		t.Fatalf("player defaults lost: %+v", s.Player)
	}
	if len(s.Secure.RequiredDirs) != 2 {
		t.Fatalf("required dirs = %v", s.Secure.RequiredDirs)
	}
}

func TestParseFixesMalformedValues(t *testing.T) {
	s, err := Parse([]byte("grid:\n  width: 0\n  height: 4\nplayer:\n  step_duration: -1\nlog_level: loud\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Grid.Width != 9 || s.Grid.Height != 9 {
		t.Fatalf("zero-size grid not replaced: %+v", s.Grid)
	}
	if s.Player.StepDuration != 0.2 {
		t.Fatalf("step duration = %v", s.Player.StepDuration)
	}
	if s.LogLevel != "info" {
		t.Fatalf("log level = %q", s.LogLevel)
	}
}

func TestParseRejectsBrokenYAML(t *testing.T) {
	if _, err := Parse([]byte("grid: [1, 2")); err == nil {
		t.Fatalf("expected an error for broken YAML")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("seed: 99\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Seed != 99 {
		t.Fatalf("seed = %d", s.Seed)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file error = %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	s, err := LoadFromEnv()
	if err != nil || s.Grid.Width != 9 {
		t.Fatalf("LoadFromEnv without path = %+v, %v", s, err)
	}
}

func TestDirections(t *testing.T) {
	sec := SecureSettings{RequiredDirs: []string{"nw", "up", "S"}}
	dirs, err := sec.Directions()
	if !errors.Is(err, hexmap.ErrUnknownDirection) {
		t.Fatalf("err = %v, want ErrUnknownDirection", err)
	}
	if len(dirs) != 2 || dirs[0] != hexmap.NorthWest || dirs[1] != hexmap.South {
		t.Fatalf("dirs = %v", dirs)
	}
}

func TestParseLogLevel(t *testing.T) {
	if l, err := ParseLogLevel("DEBUG"); err != nil || l != slog.LevelDebug {
		t.Fatalf("ParseLogLevel(DEBUG) = %v, %v", l, err)
	}
	if _, err := ParseLogLevel("verbose"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
