package main

type Mode int

const (
	ModeIdle Mode = iota
	ModeDrawing
)

type ShapeKind int

const (
	KindRectangle ShapeKind = iota
	KindTriangle
	KindCircle
	KindLine
	numKinds
)

type ShapeState int

const (
	StateBegin ShapeState = iota
	State1
	StateEnd
)

type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

type ActionType int

const (
	ActionNone ActionType = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionConfirm
	ActionChangeColor
	ActionChangeKind
	ActionUndo
	ActionRedo
	ActionToggleGrid
	ActionCancel
	ActionSnapshot
	ActionYank
	ActionHelp
	ActionQuit
)

const (
	defaultCursorGlyph = '⌂'
	gridGlyph          = '·'
	gridColor          = Gray
	gridSpacingX       = 4
	gridSpacingY       = 2

	// The status line takes the last terminal row.
	statusLines = 1

	// Fallback grid size until the first window size message arrives.
	fallbackWidth  = 150
	fallbackHeight = 50
)

func (k ShapeKind) String() string {
	switch k {
	case KindRectangle:
		return "Rectangle"
	case KindTriangle:
		return "Triangle"
	case KindCircle:
		return "Circle"
	case KindLine:
		return "Line"
	default:
		return "Unknown"
	}
}

func (k ShapeKind) Next() ShapeKind {
	return (k + 1) % numKinds
}

func (s ShapeState) String() string {
	switch s {
	case StateBegin:
		return "Begin"
	case State1:
		return "State1"
	case StateEnd:
		return "End"
	default:
		return "Unknown"
	}
}

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "NORMAL"
	case ModeDrawing:
		return "DRAW"
	default:
		return "UNKNOWN"
	}
}
