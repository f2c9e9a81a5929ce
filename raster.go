package main

import "math"

const (
	glyphHorizontal  = '─'
	glyphVertical    = '│'
	glyphRising      = '╱'
	glyphFalling     = '╲'
	glyphTopLeft     = '┌'
	glyphTopRight    = '┐'
	glyphBottomLeft  = '└'
	glyphBottomRight = '┘'

	minCircleRadius  = 2
	smallCircleLimit = 5
	smallCircleStep  = 0.3
	circleStep       = 0.1
)

// SectorGlyph maps a direction in degrees to one of the four line glyphs.
// Y grows downward, so 45° runs toward the lower right.
func SectorGlyph(angle float64) rune {
	a := normalizeDegrees(angle)
	glyph := glyphHorizontal
	if a >= 22.5 && a <= 67.5 || a < -112.5 && a > -157.5 {
		glyph = glyphFalling
	}
	if a >= 67.5 && a <= 112.5 || a <= -67.5 && a >= -112.5 {
		glyph = glyphVertical
	}
	if a <= -22.5 && a >= -67.5 || a >= 112.5 && a <= 157.5 {
		glyph = glyphRising
	}
	return glyph
}

// Line rasterizes the segment a-b with Bresenham's algorithm. Every pixel
// shares the glyph chosen from the a->b angle. A zero-length line is empty.
func Line(a, b Position, color Color) []Pixel {
	dist := int(math.Ceil(a.DistanceTo(b)))
	if dist == 0 {
		return nil
	}
	glyph := SectorGlyph(a.AngleTo(b))

	x0, y0 := a.X, a.Y
	dx := abs(b.X - x0)
	dy := -abs(b.Y - y0)
	sx, sy := 1, 1
	if x0 > b.X {
		sx = -1
	}
	if y0 > b.Y {
		sy = -1
	}
	err := dx + dy

	pixels := make([]Pixel, 0, dist+1)
	for {
		pixels = append(pixels, Pixel{Pos: Position{X: x0, Y: y0}, Glyph: glyph, Color: color})
		if x0 == b.X && y0 == b.Y {
			return pixels
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Rectangle rasterizes the hollow border of the box spanned by start and
// current. It reports false when the box is less than one cell wide or tall.
func Rectangle(start, current Position, color Color) ([]Pixel, bool) {
	xLeft, xRight := min(start.X, current.X), max(start.X, current.X)
	yTop, yBottom := min(start.Y, current.Y), max(start.Y, current.Y)
	if xRight-xLeft < 1 || yBottom-yTop < 1 {
		return nil, false
	}

	pixels := make([]Pixel, 0, 2*(xRight-xLeft+yBottom-yTop))
	for x := xLeft; x <= xRight; x++ {
		for y := yTop; y <= yBottom; y++ {
			var glyph rune
			switch {
			case x == xLeft && y == yTop:
				glyph = glyphTopLeft
			case x == xLeft && y == yBottom:
				glyph = glyphBottomLeft
			case x == xRight && y == yTop:
				glyph = glyphTopRight
			case x == xRight && y == yBottom:
				glyph = glyphBottomRight
			case x == xLeft || x == xRight:
				glyph = glyphVertical
			case y == yTop || y == yBottom:
				glyph = glyphHorizontal
			default:
				continue
			}
			pixels = append(pixels, Pixel{Pos: Position{X: x, Y: y}, Glyph: glyph, Color: color})
		}
	}
	return pixels, true
}

// Triangle joins start, middle and current with three lines.
func Triangle(start, middle, current Position, color Color) []Pixel {
	var pixels []Pixel
	pixels = append(pixels, Line(start, middle, color)...)
	pixels = append(pixels, Line(current, middle, color)...)
	pixels = append(pixels, Line(current, start, color)...)
	return pixels
}

// Circle samples a circle around center through rim. X is stretched by two
// to make up for terminal cells being twice as tall as they are wide.
// Circles with a radius under two cells are not drawn.
func Circle(center, rim Position, color Color) []Pixel {
	r := math.Ceil(center.DistanceTo(rim))
	if r < minCircleRadius {
		return nil
	}
	step := circleStep
	if r < smallCircleLimit {
		step = smallCircleStep
	}

	var pixels []Pixel
	for theta := 0.0; theta < 2*math.Pi; theta += step {
		x := math.Round(float64(center.X) + 2*r*math.Cos(theta) - r)
		y := math.Round(float64(center.Y) + r*math.Sin(theta))
		pixels = append(pixels, Pixel{
			Pos:   Position{X: int(x), Y: int(y)},
			Glyph: SectorGlyph(radToDeg(theta)),
			Color: color,
		})
	}
	return pixels
}
