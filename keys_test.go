package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyMap_Action(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want ActionType
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, ActionMoveLeft},
		{runeKey("h"), ActionMoveLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, ActionMoveRight},
		{tea.KeyMsg{Type: tea.KeyUp}, ActionMoveUp},
		{runeKey("j"), ActionMoveDown},
		{tea.KeyMsg{Type: tea.KeySpace}, ActionConfirm},
		{tea.KeyMsg{Type: tea.KeyEnter}, ActionConfirm},
		{tea.KeyMsg{Type: tea.KeyEsc}, ActionCancel},
		{runeKey("c"), ActionChangeColor},
		{runeKey("s"), ActionChangeKind},
		{tea.KeyMsg{Type: tea.KeyTab}, ActionChangeKind},
		{runeKey("u"), ActionUndo},
		{tea.KeyMsg{Type: tea.KeyCtrlZ}, ActionUndo},
		{runeKey("U"), ActionRedo},
		{tea.KeyMsg{Type: tea.KeyCtrlY}, ActionRedo},
		{runeKey("g"), ActionToggleGrid},
		{runeKey("p"), ActionSnapshot},
		{runeKey("y"), ActionYank},
		{runeKey("?"), ActionHelp},
		{runeKey("q"), ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, ActionQuit},
		{runeKey("x"), ActionNone},
	}
	for _, tt := range tests {
		if got := km.Action(tt.msg); got != tt.want {
			t.Errorf("Action(%q): got %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestLegendText_IsPlain(t *testing.T) {
	legend := legendText(DefaultKeyMap())
	if strings.Contains(legend, "\x1b") {
		t.Fatalf("legend contains escape sequences: %q", legend)
	}
	for _, want := range []string{"space draw", "c color", "u undo", "q quit"} {
		if !strings.Contains(legend, want) {
			t.Errorf("legend %q missing %q", legend, want)
		}
	}
}
