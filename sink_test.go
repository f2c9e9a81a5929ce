package main

import (
	"errors"
	"regexp"
	"strings"
	"testing"
)

var ansiEscape = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripANSI(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}

func rectangleGrid(t *testing.T, width, height int) Grid {
	t.Helper()
	f, err := NewFrame(width, height)
	if err != nil {
		t.Fatalf("NewFrame: %v", err)
	}
	pixels, ok := Rectangle(Position{X: 1, Y: 1}, Position{X: 4, Y: 3}, Red)
	if !ok {
		t.Fatalf("Rectangle: degenerate")
	}
	f.Put(pixels)
	return f.Grid()
}

func fullRegion(g Grid) Region {
	return Region{Left: 1, Top: 1, Right: g.Width, Bottom: g.Height}
}

func TestCheckRegion(t *testing.T) {
	g := rectangleGrid(t, 6, 4)
	tests := []struct {
		name   string
		region Region
		want   error
	}{
		{"full", fullRegion(g), nil},
		{"inner", Region{Left: 2, Top: 2, Right: 3, Bottom: 3}, nil},
		{"empty", Region{Left: 3, Top: 1, Right: 2, Bottom: 4}, ErrEmptyRegion},
		{"too wide", Region{Left: 1, Top: 1, Right: 7, Bottom: 4}, ErrOutOfBounds},
		{"zero origin", Region{Left: 0, Top: 1, Right: 6, Bottom: 4}, ErrOutOfBounds},
	}
	for _, tt := range tests {
		err := checkRegion(g, tt.region)
		if tt.want == nil {
			if err != nil {
				t.Errorf("%s: unexpected error %v", tt.name, err)
			}
			continue
		}
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestTerminalSink_Write(t *testing.T) {
	g := rectangleGrid(t, 6, 4)
	sink := newTerminalSink()
	if err := sink.Write(g, fullRegion(g)); err != nil {
		t.Fatalf("Write: %v", err)
	}

	lines := strings.Split(stripANSI(sink.Frame()), "\n")
	want := []string{
		"┌──┐  ",
		"│  │  ",
		"└──┘  ",
		"      ",
	}
	if len(lines) != len(want) {
		t.Fatalf("rows: got %d, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("row %d: got %q, want %q", i+1, lines[i], want[i])
		}
	}
}

func TestTerminalSink_KeepsFrameOnError(t *testing.T) {
	g := rectangleGrid(t, 6, 4)
	sink := newTerminalSink()
	if err := sink.Write(g, fullRegion(g)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	before := sink.Frame()

	err := sink.Write(g, Region{Left: 1, Top: 1, Right: 10, Bottom: 10})
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("Write: got %v, want ErrOutOfBounds", err)
	}
	if sink.Frame() != before {
		t.Fatalf("frame changed after failed write")
	}
}

func TestTerminalSink_PartialRegion(t *testing.T) {
	g := rectangleGrid(t, 6, 4)
	sink := newTerminalSink()
	if err := sink.Write(g, Region{Left: 2, Top: 1, Right: 4, Bottom: 2}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got, want := stripANSI(sink.Frame()), "──┐\n  │"; got != want {
		t.Fatalf("frame: got %q, want %q", got, want)
	}
}

func TestClipboardSink_Write(t *testing.T) {
	g := rectangleGrid(t, 6, 4)
	var copied string
	sink := &clipboardSink{write: func(s string) error {
		copied = s
		return nil
	}}
	if err := sink.Write(g, fullRegion(g)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if want := "┌──┐\n│  │\n└──┘\n"; copied != want {
		t.Fatalf("copied: got %q, want %q", copied, want)
	}
}

func TestClipboardSink_Errors(t *testing.T) {
	g := rectangleGrid(t, 6, 4)
	unavailable := errors.New("clipboard unavailable")
	called := false
	sink := &clipboardSink{write: func(string) error {
		called = true
		return unavailable
	}}

	if err := sink.Write(g, Region{Left: 2, Top: 1, Right: 1, Bottom: 1}); !errors.Is(err, ErrEmptyRegion) {
		t.Fatalf("empty region: got %v, want ErrEmptyRegion", err)
	}
	if called {
		t.Fatalf("clipboard written for an invalid region")
	}

	err := sink.Write(g, fullRegion(g))
	if !errors.Is(err, unavailable) {
		t.Fatalf("Write: got %v, want wrapped %v", err, unavailable)
	}
	if !strings.HasPrefix(err.Error(), "clipboard sink:") {
		t.Fatalf("error not prefixed: %v", err)
	}
}
