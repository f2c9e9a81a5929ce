package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var ErrEmptyRegion = errors.New("empty refresh region")

// Sink accepts a finished grid and the region of it to refresh.
type Sink interface {
	Write(grid Grid, region Region) error
}

func checkRegion(grid Grid, region Region) error {
	if region.Empty() {
		return fmt.Errorf("region %+v: %w", region, ErrEmptyRegion)
	}
	if region.Left < 1 || region.Top < 1 || region.Right > grid.Width || region.Bottom > grid.Height {
		return fmt.Errorf("region %+v outside %dx%d grid: %w", region, grid.Width, grid.Height, ErrOutOfBounds)
	}
	return nil
}

// terminalSink turns grids into lipgloss-colored text for the bubbletea
// view. A failed write keeps the previous frame.
type terminalSink struct {
	styles [numColors]lipgloss.Style
	frame  string
}

func newTerminalSink() *terminalSink {
	t := &terminalSink{}
	for i := range t.styles {
		t.styles[i] = lipgloss.NewStyle().Foreground(Color(i).Terminal())
	}
	return t
}

func (t *terminalSink) Write(grid Grid, region Region) error {
	if err := checkRegion(grid, region); err != nil {
		return fmt.Errorf("terminal sink: %w", err)
	}

	var out strings.Builder
	for y := region.Top; y <= region.Bottom; y++ {
		if y > region.Top {
			out.WriteString("\n")
		}
		var run strings.Builder
		runColor := grid.At(region.Left, y).Color
		for x := region.Left; x <= region.Right; x++ {
			cell := grid.At(x, y)
			if cell.Color != runColor {
				out.WriteString(t.render(runColor, run.String()))
				run.Reset()
				runColor = cell.Color
			}
			run.WriteRune(cell.Glyph)
		}
		out.WriteString(t.render(runColor, run.String()))
	}

	t.frame = out.String()
	return nil
}

func (t *terminalSink) render(c Color, text string) string {
	if text == "" {
		return ""
	}
	if int(c) >= numColors {
		c = DefaultColor
	}
	return t.styles[c].Render(text)
}

// Frame returns the last successfully written frame.
func (t *terminalSink) Frame() string {
	return t.frame
}
