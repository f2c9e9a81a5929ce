package main

import (
	"strings"
	"unicode/utf8"
)

const (
	chromeTitle   = "ᴄᴚᴀᴡ"
	chromeColor   = White
	legendColor   = LightGray
	swatchGlyph   = '█'
	swatchMarker  = '▲'
	kindSeparator = " "
)

// kindSelector lists every shape kind with the selected one bracketed.
func kindSelector(selected ShapeKind) (text string, from, to int) {
	var b strings.Builder
	for k := KindRectangle; k < numKinds; k++ {
		if k > KindRectangle {
			b.WriteString(kindSeparator)
		}
		if k == selected {
			from = utf8.RuneCountInString(b.String())
			b.WriteString("[" + k.String() + "]")
			to = utf8.RuneCountInString(b.String())
		} else {
			b.WriteString(" " + k.String() + " ")
		}
	}
	return b.String(), from, to
}

// drawChrome writes the title box with the shape selector and palette, and
// the key legend on the last row.
func (s *Scene) drawChrome(f *Frame) {
	selector, selFrom, selTo := kindSelector(s.kind)
	selectorWidth := utf8.RuneCountInString(selector)
	// " selector  swatches "
	inner := 1 + selectorWidth + 2 + numColors + 1
	titleWidth := utf8.RuneCountInString(chromeTitle)

	top := "╔" + chromeTitle + strings.Repeat("═", max(0, inner-titleWidth)) + "╗"
	bottom := "╚" + strings.Repeat("═", inner) + "╝"
	middle := "║" + strings.Repeat(" ", inner) + "║"

	f.InsertText(Position{X: 1, Y: 1}, top, chromeColor, Horizontal)
	f.InsertText(Position{X: 1, Y: 2}, middle, chromeColor, Horizontal)
	f.InsertText(Position{X: 1, Y: 3}, bottom, chromeColor, Horizontal)

	selectorAt := Position{X: 3, Y: 2}
	f.InsertText(selectorAt, selector, chromeColor, Horizontal)
	selected := []rune(selector)[selFrom:selTo]
	f.InsertText(selectorAt.Add(selFrom, 0), string(selected), s.color, Horizontal)

	// Swatches and the marker clip like shape pixels on a narrow grid.
	swatchAt := selectorAt.Add(selectorWidth+2, 0)
	swatches := make([]Pixel, 0, numColors+1)
	for i := 0; i < numColors; i++ {
		swatches = append(swatches, Pixel{Pos: swatchAt.Add(i, 0), Glyph: swatchGlyph, Color: Color(i)})
	}
	swatches = append(swatches, Pixel{
		Pos:   Position{X: swatchAt.X + int(s.color), Y: 3},
		Glyph: swatchMarker,
		Color: chromeColor,
	})
	f.Put(swatches)

	if s.legend != "" {
		f.InsertText(Position{X: 1, Y: f.Height()}, s.legend, legendColor, Horizontal)
	}
}
