package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeRC(t *testing.T, content string) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	if err := os.WriteFile(filepath.Join(home, ".crawrc"), []byte(content), 0644); err != nil {
		t.Fatalf("write .crawrc: %v", err)
	}
	return home
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	config := loadConfig()
	want := defaultConfig()
	if *config != *want {
		t.Fatalf("config: got %+v, want %+v", *config, *want)
	}
}

func TestLoadConfig_ParsesKeys(t *testing.T) {
	home := writeRC(t, `# craw settings
width = 80
height=24
show_grid = true
colour = royalblue
shape = Circle
snapshot_dir = ~/shots
cursor = @

not a setting
`)
	config := loadConfig()

	if config.Width != 80 || config.Height != 24 {
		t.Errorf("size: got %dx%d, want 80x24", config.Width, config.Height)
	}
	if !config.ShowGrid {
		t.Errorf("ShowGrid: got false, want true")
	}
	if config.Color != RoyalBlue {
		t.Errorf("Color: got %v, want RoyalBlue", config.Color)
	}
	if config.Shape != KindCircle {
		t.Errorf("Shape: got %v, want Circle", config.Shape)
	}
	if want := filepath.Join(home, "shots"); config.SnapshotDir != want {
		t.Errorf("SnapshotDir: got %q, want %q", config.SnapshotDir, want)
	}
	if config.CursorGlyph != '@' {
		t.Errorf("CursorGlyph: got %q, want '@'", config.CursorGlyph)
	}
}

func TestLoadConfig_IgnoresInvalidValues(t *testing.T) {
	writeRC(t, `width = -3
height = tall
color = 99
shape = hexagon
cursor =
`)
	config := loadConfig()
	want := defaultConfig()
	if *config != *want {
		t.Fatalf("config: got %+v, want %+v", *config, *want)
	}
}

func TestLoadConfig_ColorByIndex(t *testing.T) {
	writeRC(t, "color = 12\n")
	if got := loadConfig().Color; got != Color(12) {
		t.Fatalf("Color: got %v, want %v", got, Color(12))
	}
}

func TestConfig_GridSize(t *testing.T) {
	tests := []struct {
		name         string
		config       Config
		termW, termH int
		wantW, wantH int
	}{
		{"follow terminal", Config{}, 120, 40, 120, 39},
		{"fixed", Config{Width: 60, Height: 20}, 120, 40, 60, 20},
		{"fixed width only", Config{Width: 60}, 120, 40, 60, 39},
		{"tiny terminal", Config{}, 0, 1, 1, 1},
	}
	for _, tt := range tests {
		w, h := tt.config.gridSize(tt.termW, tt.termH)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("%s: got %dx%d, want %dx%d", tt.name, w, h, tt.wantW, tt.wantH)
		}
	}
}
