package main

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap binds terminal keys to drawing actions.
type KeyMap struct {
	Left, Right, Up, Down key.Binding

	Confirm, Cancel key.Binding
	Color, Shape    key.Binding
	Undo, Redo      key.Binding
	Grid            key.Binding
	Snapshot, Yank  key.Binding
	Help, Quit      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),

		Confirm: key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space", "draw")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),

		Color: key.NewBinding(key.WithKeys("c", "pgdown"), key.WithHelp("c", "color")),
		Shape: key.NewBinding(key.WithKeys("s", "tab"), key.WithHelp("s", "shape")),

		Undo: key.NewBinding(key.WithKeys("u", "ctrl+z"), key.WithHelp("u", "undo")),
		Redo: key.NewBinding(key.WithKeys("U", "ctrl+y", "ctrl+r"), key.WithHelp("U", "redo")),

		Grid: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "grid")),

		Snapshot: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "png")),
		Yank:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yank")),

		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Action maps a key event to the action it triggers.
func (km KeyMap) Action(msg tea.KeyMsg) ActionType {
	switch {
	case key.Matches(msg, km.Left):
		return ActionMoveLeft
	case key.Matches(msg, km.Right):
		return ActionMoveRight
	case key.Matches(msg, km.Up):
		return ActionMoveUp
	case key.Matches(msg, km.Down):
		return ActionMoveDown
	case key.Matches(msg, km.Confirm):
		return ActionConfirm
	case key.Matches(msg, km.Cancel):
		return ActionCancel
	case key.Matches(msg, km.Color):
		return ActionChangeColor
	case key.Matches(msg, km.Shape):
		return ActionChangeKind
	case key.Matches(msg, km.Undo):
		return ActionUndo
	case key.Matches(msg, km.Redo):
		return ActionRedo
	case key.Matches(msg, km.Grid):
		return ActionToggleGrid
	case key.Matches(msg, km.Snapshot):
		return ActionSnapshot
	case key.Matches(msg, km.Yank):
		return ActionYank
	case key.Matches(msg, km.Help):
		return ActionHelp
	case key.Matches(msg, km.Quit):
		return ActionQuit
	}
	return ActionNone
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Confirm, km.Color, km.Shape, km.Undo, km.Redo, km.Grid, km.Help, km.Quit}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right, km.Up, km.Down},
		{km.Confirm, km.Cancel, km.Color, km.Shape},
		{km.Undo, km.Redo, km.Grid},
		{km.Snapshot, km.Yank, km.Help, km.Quit},
	}
}

// legendText renders the short help as plain text so it can be written
// into the frame cell by cell.
func legendText(km KeyMap) string {
	h := help.New()
	plain := lipgloss.NewStyle()
	h.Styles = help.Styles{
		Ellipsis:       plain,
		ShortKey:       plain,
		ShortDesc:      plain,
		ShortSeparator: plain,
		FullKey:        plain,
		FullDesc:       plain,
		FullSeparator:  plain,
	}
	return h.ShortHelpView(km.ShortHelp())
}
