package main

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrInvalidSize = errors.New("invalid frame size")
)

// Cell is one grid position's glyph and color.
type Cell struct {
	Glyph rune
	Color Color
}

var blankCell = Cell{Glyph: ' ', Color: DefaultColor}

// Pixel is a single rasterized write.
type Pixel struct {
	Pos   Position
	Glyph rune
	Color Color
}

// Region is an inclusive rectangle of 1-based cells to refresh.
type Region struct {
	Left, Top, Right, Bottom int
}

func (r Region) Empty() bool {
	return r.Right < r.Left || r.Bottom < r.Top
}

// Grid is a row-major snapshot of a frame, handed to sinks.
type Grid struct {
	Width  int
	Height int
	Cells  []Cell
}

// At returns the cell at the 1-based position (x, y).
func (g Grid) At(x, y int) Cell {
	if x < 1 || y < 1 || x > g.Width || y > g.Height {
		return blankCell
	}
	return g.Cells[(y-1)*g.Width+(x-1)]
}

// Lines renders the glyphs of the region as plain text, one string per row.
func (g Grid) Lines(region Region) []string {
	lines := make([]string, 0, region.Bottom-region.Top+1)
	for y := region.Top; y <= region.Bottom; y++ {
		var line strings.Builder
		for x := region.Left; x <= region.Right; x++ {
			line.WriteRune(g.At(x, y).Glyph)
		}
		lines = append(lines, line.String())
	}
	return lines
}

// Frame is a fixed-size grid of cells, allocated fresh for every tick.
type Frame struct {
	width  int
	height int
	cells  []Cell
}

func NewFrame(width, height int) (*Frame, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = blankCell
	}
	return &Frame{width: width, height: height, cells: cells}, nil
}

func (f *Frame) Width() int  { return f.width }
func (f *Frame) Height() int { return f.height }

func (f *Frame) Bounds() Region {
	return Region{Left: 1, Top: 1, Right: f.width, Bottom: f.height}
}

func (f *Frame) contains(pos Position) bool {
	return pos.X >= 1 && pos.X <= f.width && pos.Y >= 1 && pos.Y <= f.height
}

// Set overwrites the cell at pos.
func (f *Frame) Set(pos Position, glyph rune, color Color) error {
	if !f.contains(pos) {
		return fmt.Errorf("set %v in %dx%d frame: %w", pos, f.width, f.height, ErrOutOfBounds)
	}
	f.cells[(pos.Y-1)*f.width+(pos.X-1)] = Cell{Glyph: glyph, Color: color}
	return nil
}

// Get returns the cell at pos, or a blank cell outside the frame.
func (f *Frame) Get(pos Position) Cell {
	if !f.contains(pos) {
		return blankCell
	}
	return f.cells[(pos.Y-1)*f.width+(pos.X-1)]
}

// InsertText writes text one rune per cell along the given axis and stops
// at the first rune that would land outside the frame.
func (f *Frame) InsertText(pos Position, text string, color Color, orientation Orientation) {
	for _, r := range text {
		if f.Set(pos, r, color) != nil {
			return
		}
		if orientation == Vertical {
			pos.Y++
		} else {
			pos.X++
		}
	}
}

// Put writes pixels in order, skipping the ones outside the frame.
// It returns how many were dropped.
func (f *Frame) Put(pixels []Pixel) int {
	dropped := 0
	for _, p := range pixels {
		if f.Set(p.Pos, p.Glyph, p.Color) != nil {
			dropped++
		}
	}
	return dropped
}

// Grid returns a copy of the frame's cells.
func (f *Frame) Grid() Grid {
	cells := make([]Cell, len(f.cells))
	copy(cells, f.cells)
	return Grid{Width: f.width, Height: f.height, Cells: cells}
}
