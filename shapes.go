package main

import "fmt"

// Shape is an in-progress or committed drawing. Its Pixels are recomputed
// from scratch by every Update.
type Shape struct {
	Kind   ShapeKind
	Start  Position
	Middle Position
	State  ShapeState
	Pixels []Pixel
}

type shapeBehavior struct {
	update func(s *Shape, current Position, color Color)
	// confirms is the number of NextState calls that take the shape from
	// Begin to End.
	confirms int
	// onConfirm runs after each state change with the cursor at that moment.
	onConfirm func(s *Shape, stop Position)
}

var shapeBehaviors = map[ShapeKind]shapeBehavior{
	KindRectangle: {
		update: func(s *Shape, current Position, color Color) {
			if pixels, ok := Rectangle(s.Start, current, color); ok {
				s.Pixels = pixels
			}
		},
		confirms: 1,
	},
	KindLine: {
		update: func(s *Shape, current Position, color Color) {
			s.Pixels = Line(s.Start, current, color)
		},
		confirms: 1,
	},
	KindTriangle: {
		update: func(s *Shape, current Position, color Color) {
			switch s.State {
			case StateBegin:
				s.Middle = current
				s.Pixels = Line(s.Start, current, color)
			case State1:
				s.Pixels = Triangle(s.Start, s.Middle, current, color)
			}
		},
		confirms: 2,
		onConfirm: func(s *Shape, stop Position) {
			if s.State == State1 {
				s.Middle = stop
			}
		},
	},
	KindCircle: {
		update: func(s *Shape, current Position, color Color) {
			if s.State == StateBegin {
				s.Pixels = Circle(s.Start, current, color)
			}
		},
		confirms: 1,
	},
}

func behaviorOf(kind ShapeKind) shapeBehavior {
	b, ok := shapeBehaviors[kind]
	if !ok {
		panic(fmt.Sprintf("no behavior for shape kind %d", int(kind)))
	}
	return b
}

func NewShape(kind ShapeKind, start Position) *Shape {
	behaviorOf(kind) // unknown kinds fail here rather than on the first Update
	return &Shape{Kind: kind, Start: start, State: StateBegin}
}

// Update recomputes the shape's pixels against the current cursor position.
// A finished shape is left untouched.
func (s *Shape) Update(current Position, color Color) {
	if s.Done() {
		return
	}
	behaviorOf(s.Kind).update(s, current, color)
}

// NextState advances the shape by one confirmation and reports whether it
// has reached End.
func (s *Shape) NextState(stop Position) bool {
	if s.Done() {
		return true
	}
	b := behaviorOf(s.Kind)
	if s.confirmsSeen()+1 >= b.confirms {
		s.State = StateEnd
	} else {
		s.State++
	}
	if b.onConfirm != nil {
		b.onConfirm(s, stop)
	}
	return s.Done()
}

// confirmsSeen is how many confirmations moved the shape off Begin.
func (s *Shape) confirmsSeen() int {
	return int(s.State - StateBegin)
}

func (s *Shape) Done() bool {
	return s.State == StateEnd
}

// Put draws the shape onto the frame and returns the number of pixels
// that fell outside it.
func (s *Shape) Put(f *Frame) int {
	return f.Put(s.Pixels)
}
