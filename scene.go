package main

// Scene owns everything that is drawn: committed shapes in z-order, the
// redo stack, the active shape and the cursor.
type Scene struct {
	width       int
	height      int
	cursor      Position
	cursorGlyph rune
	color       Color
	kind        ShapeKind
	showGrid    bool
	legend      string

	committed []*Shape
	redoStack []*Shape
	active    *Shape
}

func NewScene(width, height int) *Scene {
	s := &Scene{
		cursorGlyph: defaultCursorGlyph,
		color:       DefaultColor,
		kind:        KindRectangle,
		committed:   make([]*Shape, 0),
		redoStack:   make([]*Shape, 0),
	}
	s.Resize(width, height)
	s.cursor = Position{X: max(1, s.width/2), Y: max(1, s.height/2)}
	return s
}

func (s *Scene) Width() int            { return s.width }
func (s *Scene) Height() int           { return s.height }
func (s *Scene) Cursor() Position      { return s.cursor }
func (s *Scene) Color() Color          { return s.color }
func (s *Scene) Kind() ShapeKind       { return s.kind }
func (s *Scene) ShowGrid() bool        { return s.showGrid }
func (s *Scene) Active() *Shape        { return s.active }
func (s *Scene) Committed() []*Shape   { return s.committed }
func (s *Scene) RedoDepth() int        { return len(s.redoStack) }
func (s *Scene) SetLegend(text string) { s.legend = text }

func (s *Scene) Mode() Mode {
	if s.active != nil {
		return ModeDrawing
	}
	return ModeIdle
}

// Resize changes the grid size used by following renders and pulls the
// cursor back inside it.
func (s *Scene) Resize(width, height int) {
	s.width = max(1, width)
	s.height = max(1, height)
	s.cursor.X = min(max(s.cursor.X, 1), s.width)
	s.cursor.Y = min(max(s.cursor.Y, 1), s.height)
}

// MoveCursor moves the cursor by (dx, dy). A move that would leave the grid
// is rejected.
func (s *Scene) MoveCursor(dx, dy int) bool {
	next := s.cursor.Add(dx, dy)
	if next.X < 1 || next.X > s.width || next.Y < 1 || next.Y > s.height {
		return false
	}
	s.cursor = next
	return true
}

// setCursor places the cursor directly, clamped into the grid.
func (s *Scene) setCursor(pos Position) {
	s.cursor = pos
	s.Resize(s.width, s.height)
}

func (s *Scene) NextColor() Color {
	s.color = s.color.Next()
	return s.color
}

func (s *Scene) SetColor(c Color) {
	if int(c) < numColors {
		s.color = c
	}
}

func (s *Scene) NextKind() ShapeKind {
	s.kind = s.kind.Next()
	return s.kind
}

func (s *Scene) SetKind(k ShapeKind) {
	if _, ok := shapeBehaviors[k]; ok {
		s.kind = k
	}
}

func (s *Scene) ToggleGrid() bool {
	s.showGrid = !s.showGrid
	return s.showGrid
}

func (s *Scene) SetCursorGlyph(r rune) {
	if r != 0 {
		s.cursorGlyph = r
	}
}

// BeginOrCommit starts a shape of the selected kind at the cursor, or
// confirms the active one. It reports whether a shape was committed.
func (s *Scene) BeginOrCommit() bool {
	if s.active == nil {
		s.active = NewShape(s.kind, s.cursor)
		return false
	}

	s.active.Update(s.cursor, s.color)
	s.active.NextState(s.cursor)
	if !s.active.Done() {
		return false
	}

	// Degenerate shapes are committed too; they simply have no pixels.
	s.committed = append(s.committed, s.active)
	s.active = nil
	return true
}

// Cancel drops the active shape.
func (s *Scene) Cancel() bool {
	if s.active == nil {
		return false
	}
	s.active = nil
	return true
}

// Render composes one frame: background grid, committed shapes in order,
// the active shape, UI chrome and the cursor. Every layer overwrites the
// cells beneath it. It returns the number of shape pixels clipped.
func (s *Scene) Render(f *Frame) int {
	if s.showGrid {
		s.drawGrid(f)
	}

	dropped := 0
	for _, shape := range s.committed {
		dropped += shape.Put(f)
	}
	if s.active != nil {
		s.active.Update(s.cursor, s.color)
		dropped += s.active.Put(f)
	}

	s.drawChrome(f)
	f.Put([]Pixel{{Pos: s.cursor, Glyph: s.cursorGlyph, Color: White}})
	return dropped
}

func (s *Scene) drawGrid(f *Frame) {
	var dots []Pixel
	for y := 1; y <= f.Height(); y += gridSpacingY {
		for x := 1; x <= f.Width(); x += gridSpacingX {
			dots = append(dots, Pixel{Pos: Position{X: x, Y: y}, Glyph: gridGlyph, Color: gridColor})
		}
	}
	f.Put(dots)
}
