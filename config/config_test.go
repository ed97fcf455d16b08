package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}

	def := Default()
	if cfg.Window != def.Window {
		t.Errorf("expected default window config, got %+v", cfg.Window)
	}
	if cfg.Light.Ambient != 0.3 {
		t.Errorf("expected default ambient 0.3, got %v", cfg.Light.Ambient)
	}
	if cfg.Shadow.MapSize != 2048 {
		t.Errorf("expected default shadow map size 2048, got %v", cfg.Shadow.MapSize)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
log_level = "debug"

[window]
width = 1280
height = 720

[light]
ambient = 0.5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}

	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Errorf("expected 1280x720, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Light.Ambient != 0.5 {
		t.Errorf("expected ambient 0.5, got %v", cfg.Light.Ambient)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %q", cfg.LogLevel)
	}
	// Untouched sections keep their defaults
	if cfg.Camera.FovDegrees != 90 {
		t.Errorf("expected default fov 90, got %v", cfg.Camera.FovDegrees)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"inverted camera planes", "[camera]\nnear = 10.0\nfar = 1.0\n"},
		{"zero window", "[window]\nwidth = 0\n"},
		{"ambient out of range", "[light]\nambient = 1.5\n"},
		{"bad shadow map size", "[shadow]\nmap_size = -1\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
