package main

import (
	"math"
	"testing"
)

func TestPosition_DistanceTo(t *testing.T) {
	a := Position{X: 1, Y: 1}
	if got := a.DistanceTo(Position{X: 4, Y: 5}); got != 5 {
		t.Fatalf("distance: got %v, want 5", got)
	}
	if got := a.DistanceTo(a); got != 0 {
		t.Fatalf("distance to self: got %v, want 0", got)
	}
}

func TestPosition_AngleTo(t *testing.T) {
	origin := Position{X: 5, Y: 5}
	tests := []struct {
		to   Position
		want float64
	}{
		{Position{X: 9, Y: 5}, 0},
		{Position{X: 5, Y: 9}, 90},
		{Position{X: 1, Y: 5}, 180},
		{Position{X: 5, Y: 1}, -90},
		{Position{X: 9, Y: 9}, 45},
		{Position{X: 1, Y: 1}, -135},
	}
	for _, tt := range tests {
		got := origin.AngleTo(tt.to)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("angle %v->%v: got %v, want %v", origin, tt.to, got, tt.want)
		}
		if got <= -180 || got > 180 {
			t.Errorf("angle %v->%v: %v outside (-180, 180]", origin, tt.to, got)
		}
	}
}

func TestNormalizeDegrees(t *testing.T) {
	tests := map[float64]float64{
		0:    0,
		180:  180,
		-180: 180,
		270:  -90,
		405:  45,
		-225: 135,
	}
	for in, want := range tests {
		if got := normalizeDegrees(in); math.Abs(got-want) > 1e-9 {
			t.Errorf("normalizeDegrees(%v): got %v, want %v", in, got, want)
		}
	}
}
