package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"
)

type Config struct {
	Width       int // 0 follows the terminal
	Height      int
	ShowGrid    bool
	Color       Color
	Shape       ShapeKind
	SnapshotDir string
	CursorGlyph rune
}

func defaultConfig() *Config {
	return &Config{
		Color:       DefaultColor,
		Shape:       KindRectangle,
		CursorGlyph: defaultCursorGlyph,
	}
}

func loadConfig() *Config {
	config := defaultConfig()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config
	}

	file, err := os.Open(filepath.Join(homeDir, ".crawrc"))
	if err != nil {
		return config
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		config.set(homeDir, strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
	}

	return config
}

func (c *Config) set(homeDir, key, value string) {
	switch strings.ToLower(key) {
	case "width":
		if n, err := strconv.Atoi(value); err == nil && n >= 0 {
			c.Width = n
		}
	case "height":
		if n, err := strconv.Atoi(value); err == nil && n >= 0 {
			c.Height = n
		}
	case "grid", "show_grid", "showgrid":
		c.ShowGrid = strings.ToLower(value) == "true"
	case "color", "colour":
		if col, ok := parseColor(value); ok {
			c.Color = col
		}
	case "shape", "kind":
		if kind, ok := parseKind(value); ok {
			c.Shape = kind
		}
	case "snapshotdir", "snapshot_dir":
		if strings.HasPrefix(value, "~") {
			value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
		}
		if !filepath.IsAbs(value) {
			if absPath, err := filepath.Abs(value); err == nil {
				value = absPath
			}
		}
		c.SnapshotDir = value
	case "cursor":
		if r, _ := utf8.DecodeRuneInString(value); r != utf8.RuneError {
			c.CursorGlyph = r
		}
	}
}

// gridSize returns the grid for a terminal of the given size; the status
// line is excluded.
func (c *Config) gridSize(termWidth, termHeight int) (int, int) {
	width, height := c.Width, c.Height
	if width <= 0 {
		width = termWidth
	}
	if height <= 0 {
		height = termHeight - statusLines
	}
	return max(1, width), max(1, height)
}
