package main

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	snapshotCellWidth  = 8.0
	snapshotCellHeight = 16.0
	snapshotFontSize   = 12.0
	snapshotLineWidth  = 1.5
)

// strokes draws line glyphs as vector paths; a font rarely covers all of
// them. Coordinates are fractions of a cell.
var strokes = map[rune][][2]float64{
	glyphHorizontal:  {{0, 0.5}, {1, 0.5}},
	glyphVertical:    {{0.5, 0}, {0.5, 1}},
	glyphRising:      {{0, 1}, {1, 0}},
	glyphFalling:     {{0, 0}, {1, 1}},
	glyphTopLeft:     {{0.5, 1}, {0.5, 0.5}, {1, 0.5}},
	glyphTopRight:    {{0, 0.5}, {0.5, 0.5}, {0.5, 1}},
	glyphBottomLeft:  {{0.5, 0}, {0.5, 0.5}, {1, 0.5}},
	glyphBottomRight: {{0, 0.5}, {0.5, 0.5}, {0.5, 0}},
}

// pngSink writes each grid it receives to a timestamped PNG file.
type pngSink struct {
	dir      string
	now      func() time.Time
	lastPath string
}

func newPNGSink(dir string) *pngSink {
	return &pngSink{dir: dir, now: time.Now}
}

func (p *pngSink) path() string {
	name := fmt.Sprintf("craw-%s.png", p.now().Format("20060102-150405"))
	if p.dir == "" {
		return name
	}
	return filepath.Join(p.dir, name)
}

func (p *pngSink) Write(grid Grid, region Region) error {
	if err := checkRegion(grid, region); err != nil {
		return fmt.Errorf("png sink: %w", err)
	}
	if p.dir != "" {
		if err := os.MkdirAll(p.dir, 0755); err != nil {
			return fmt.Errorf("png sink: %w", err)
		}
	}

	cols := region.Right - region.Left + 1
	rows := region.Bottom - region.Top + 1
	dc := gg.NewContext(int(float64(cols)*snapshotCellWidth), int(float64(rows)*snapshotCellHeight))
	dc.SetColor(color.Black)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("png sink: failed to parse font: %w", err)
	}
	dc.SetFontFace(truetype.NewFace(ttfFont, &truetype.Options{
		Size:    snapshotFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	}))
	dc.SetLineWidth(snapshotLineWidth)

	for y := region.Top; y <= region.Bottom; y++ {
		for x := region.Left; x <= region.Right; x++ {
			cell := grid.At(x, y)
			if cell.Glyph == ' ' {
				continue
			}
			left := float64(x-region.Left) * snapshotCellWidth
			top := float64(y-region.Top) * snapshotCellHeight
			drawSnapshotCell(dc, cell, left, top)
		}
	}

	path := p.path()
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("png sink: %w", err)
	}
	p.lastPath = path
	return nil
}

func drawSnapshotCell(dc *gg.Context, cell Cell, left, top float64) {
	dc.SetColor(cell.Color.ImageColor())
	if path, ok := strokes[cell.Glyph]; ok {
		for i, pt := range path {
			px := left + pt[0]*snapshotCellWidth
			py := top + pt[1]*snapshotCellHeight
			if i == 0 {
				dc.MoveTo(px, py)
			} else {
				dc.LineTo(px, py)
			}
		}
		dc.Stroke()
		return
	}
	if cell.Glyph == swatchGlyph {
		dc.DrawRectangle(left, top, snapshotCellWidth, snapshotCellHeight)
		dc.Fill()
		return
	}
	dc.DrawStringAnchored(string(cell.Glyph), left+snapshotCellWidth/2, top+snapshotCellHeight/2, 0.5, 0.5)
}

// clipboardSink copies the glyphs of a grid to the system clipboard.
type clipboardSink struct {
	write func(string) error
}

func newClipboardSink() *clipboardSink {
	return &clipboardSink{write: clipboard.WriteAll}
}

func (c *clipboardSink) Write(grid Grid, region Region) error {
	if err := checkRegion(grid, region); err != nil {
		return fmt.Errorf("clipboard sink: %w", err)
	}
	lines := grid.Lines(region)
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	if err := c.write(strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("clipboard sink: %w", err)
	}
	return nil
}
