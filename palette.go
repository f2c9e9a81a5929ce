package main

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an index into the fixed 16-entry console palette.
type Color uint8

const (
	Black Color = iota
	DarkBlue
	DarkGreen
	SkyBlue
	Red
	Violet
	Orange
	LightGray
	Gray
	RoyalBlue
	Green
	Turquoise
	Salmon
	Magenta
	LightYellow
	White

	numColors    = 16
	DefaultColor = White
)

type paletteEntry struct {
	name string
	// ansi is the 16-color terminal index; the console ordering swaps
	// red and blue relative to ANSI.
	ansi string
	hex  string
}

var palette = [numColors]paletteEntry{
	{"Black", "0", "#0c0c0c"},
	{"DarkBlue", "4", "#0037da"},
	{"DarkGreen", "2", "#13a10e"},
	{"SkyBlue", "6", "#3a96dd"},
	{"Red", "1", "#c50f1f"},
	{"Violet", "5", "#881798"},
	{"Orange", "3", "#c19c00"},
	{"LightGray", "7", "#cccccc"},
	{"Gray", "8", "#767676"},
	{"RoyalBlue", "12", "#3b78ff"},
	{"Green", "10", "#16c60c"},
	{"Turquoise", "14", "#61d6d6"},
	{"Salmon", "9", "#e74856"},
	{"Magenta", "13", "#b4009e"},
	{"LightYellow", "11", "#f9f1a5"},
	{"White", "15", "#f2f2f2"},
}

func (c Color) Next() Color {
	return (c + 1) % numColors
}

func (c Color) String() string {
	if int(c) >= numColors {
		return "Color(" + strconv.Itoa(int(c)) + ")"
	}
	return palette[c].name
}

// Terminal returns the lipgloss color used by the terminal sink.
func (c Color) Terminal() lipgloss.Color {
	if int(c) >= numColors {
		return lipgloss.Color(palette[DefaultColor].ansi)
	}
	return lipgloss.Color(palette[c].ansi)
}

// ImageColor returns the color used for raster snapshots.
func (c Color) ImageColor() color.Color {
	if int(c) >= numColors {
		c = DefaultColor
	}
	rgb, err := colorful.Hex(palette[c].hex)
	if err != nil {
		return color.White
	}
	return rgb
}

// parseColor accepts a palette index or a palette name.
func parseColor(value string) (Color, bool) {
	value = strings.TrimSpace(value)
	if n, err := strconv.Atoi(value); err == nil {
		if n < 0 || n >= numColors {
			return 0, false
		}
		return Color(n), true
	}
	for i, entry := range palette {
		if strings.EqualFold(entry.name, value) {
			return Color(i), true
		}
	}
	return 0, false
}

func parseKind(value string) (ShapeKind, bool) {
	value = strings.TrimSpace(value)
	for k := KindRectangle; k < numKinds; k++ {
		if strings.EqualFold(k.String(), value) {
			return k, true
		}
	}
	return 0, false
}
