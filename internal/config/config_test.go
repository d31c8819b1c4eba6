package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Display.Width != 800 || cfg.Display.Height != 480 {
		t.Errorf("Expected 800x480, got %dx%d", cfg.Display.Width, cfg.Display.Height)
	}
	if cfg.Controller.ButtonWidth != 100 {
		t.Errorf("Expected button width 100, got %v", cfg.Controller.ButtonWidth)
	}
	if cfg.Controller.Icons.Up != "btn_arrow_up.png" {
		t.Errorf("Expected up icon 'btn_arrow_up.png', got '%s'", cfg.Controller.Icons.Up)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to be valid, got %v", err)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
display:
  width: 1280
controller:
  hide_hints: true
font:
  kind: goregular
  size: 24
`))
	if err != nil {
		t.Fatalf("Failed to parse config: %v", err)
	}

	if cfg.Display.Width != 1280 {
		t.Errorf("Expected width 1280, got %d", cfg.Display.Width)
	}
	if cfg.Display.Height != 480 {
		t.Errorf("Expected height to keep its default 480, got %d", cfg.Display.Height)
	}
	if !cfg.Controller.HideHints {
		t.Error("Expected hide_hints to be true")
	}
	if cfg.Font.Kind != FontGoRegular || cfg.Font.Size != 24 {
		t.Errorf("Expected goregular at 24, got %s at %v", cfg.Font.Kind, cfg.Font.Size)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"zero width", "display:\n  width: 0\n", "display size"},
		{"negative height", "display:\n  height: -1\n", "display size"},
		{"zero scale", "display:\n  scale: 0\n", "display scale"},
		{"unknown font", "font:\n  kind: comic\n", "unknown font"},
		{"zero ttf size", "font:\n  kind: goregular\n  size: 0\n", "font size"},
		{"bad yaml", "display: [", "failed to parse"},
	}

	for _, tt := range tests {
		_, err := Parse([]byte(tt.yaml))
		if err == nil {
			t.Errorf("%s: Expected an error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: Expected error containing '%s', got '%v'", tt.name, tt.want, err)
		}
	}
}

func TestLoadExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	if err := os.WriteFile(path, []byte("display:\n  window_title: Test\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Display.WindowTitle != "Test" {
		t.Errorf("Expected title 'Test', got '%s'", cfg.Display.WindowTitle)
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected an error for a missing explicit config")
	}
}

func TestLoadFallsBackToDefault(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Display.WindowTitle != Default().Display.WindowTitle {
		t.Errorf("Expected default title, got '%s'", cfg.Display.WindowTitle)
	}
}

func TestWindowSize(t *testing.T) {
	cfg := Default()
	cfg.Display.Scale = 1.5

	w, h := cfg.WindowSize()
	if w != 1200 || h != 720 {
		t.Errorf("Expected 1200x720, got %dx%d", w, h)
	}
}
