package main

import (
	"fmt"
	"math"
)

// Position is a 1-based grid coordinate.
type Position struct {
	X, Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// DistanceTo returns the Euclidean distance between p and b.
func (p Position) DistanceTo(b Position) float64 {
	return math.Hypot(float64(b.X-p.X), float64(b.Y-p.Y))
}

// AngleTo returns the angle from p to b in degrees, in (-180, 180].
// Y grows downward, so a positive angle points below p.
func (p Position) AngleTo(b Position) float64 {
	return radToDeg(math.Atan2(float64(b.Y-p.Y), float64(b.X-p.X)))
}

func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func radToDeg(r float64) float64 {
	return r * 180 / math.Pi
}

// normalizeDegrees folds an angle into (-180, 180].
func normalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a <= -180 {
		a += 360
	} else if a > 180 {
		a -= 360
	}
	return a
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
