package core

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	data := `
[window]
title = "orbit"
width = 320
height = 200

[viewport]
near_clip = 0.5
show_hud = true

[output]
format = "bmp"
frames = 12

[[scene.primitives]]
type = "box"
position = [1.0, 2.0, 3.0]
scale = [1.0, 1.0, 1.0]
color = "red"

[[scene.coils]]
radius = 2.0
height = 3.0
revolutions = 4
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Window.Title != "orbit" || cfg.Window.Width != 320 || cfg.Window.Height != 200 {
		t.Errorf("window = %+v, want orbit 320x200", cfg.Window)
	}
	if cfg.Viewport.NearClip != 0.5 || !cfg.Viewport.ShowHUD {
		t.Errorf("viewport = %+v", cfg.Viewport)
	}
	// Untouched keys keep their defaults.
	if cfg.Viewport.FarClip != 1000 || cfg.Navigation.MaxVelocity != 8 {
		t.Errorf("defaults lost: far=%v maxVelocity=%v", cfg.Viewport.FarClip, cfg.Navigation.MaxVelocity)
	}
	if cfg.Output.Format != "bmp" || cfg.Output.Frames != 12 {
		t.Errorf("output = %+v", cfg.Output)
	}
	if len(cfg.Scene.Primitives) != 1 || cfg.Scene.Primitives[0].Position != [3]float32{1, 2, 3} {
		t.Errorf("primitives = %+v", cfg.Scene.Primitives)
	}
	if len(cfg.Scene.Coils) != 1 || cfg.Scene.Coils[0].Revolutions != 4 {
		t.Errorf("coils = %+v", cfg.Scene.Coils)
	}
}

func TestLoadConfigEnvironmentOverrides(t *testing.T) {
	t.Setenv("SLIM_WINDOW_WIDTH", "800")
	t.Setenv("SLIM_VIEWPORT_RENDER_MODE", "depth")
	t.Setenv("SLIM_CAMERA_FOCAL_LENGTH", "3.5")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Window.Width != 800 {
		t.Errorf("Window.Width = %d, want 800", cfg.Window.Width)
	}
	if cfg.Viewport.RenderMode != "depth" {
		t.Errorf("Viewport.RenderMode = %q, want depth", cfg.Viewport.RenderMode)
	}
	if cfg.Camera.FocalLength != 3.5 {
		t.Errorf("Camera.FocalLength = %v, want 3.5", cfg.Camera.FocalLength)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		data string
	}{
		{"unknown key", "[window]\ncolour = 1\n"},
		{"zero width", "[window]\nwidth = 0\n"},
		{"too large", "[window]\nwidth = 4000\n"},
		{"bad clip", "[viewport]\nnear_clip = 10.0\nfar_clip = 1.0\n"},
		{"bad format", "[output]\nformat = \"gif\"\n"},
		{"syntax", "[window\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".toml")
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Errorf("LoadConfig() error = nil, want failure")
			}
		})
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadConfig(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestConfigEncodeRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scene.Helixes = append(cfg.Scene.Helixes, HelixConfig{Radius: 3, ThicknessRadius: 0.5, Revolutions: 10, Color: "cyan"})

	var buf bytes.Buffer
	if err := cfg.Encode(&buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	decoded := DefaultConfig()
	if err := decoded.Decode(&buf); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(decoded.Scene.Helixes) != 1 || decoded.Scene.Helixes[0].Revolutions != 10 {
		t.Errorf("helixes = %+v", decoded.Scene.Helixes)
	}
	if decoded.Window != cfg.Window {
		t.Errorf("window = %+v, want %+v", decoded.Window, cfg.Window)
	}
}
