package main

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

// handleAction applies one input action to the scene.
func (m *model) handleAction(action ActionType) tea.Cmd {
	switch action {
	case ActionMoveLeft, ActionMoveRight, ActionMoveUp, ActionMoveDown:
		m.handleCursorMove(action)
	case ActionConfirm:
		kind := m.scene.Kind()
		if active := m.scene.Active(); active != nil {
			kind = active.Kind
		}
		if m.scene.BeginOrCommit() {
			m.setSuccess(fmt.Sprintf("%s committed", kind))
		}
	case ActionCancel:
		if m.scene.Cancel() {
			m.setSuccess("Shape discarded")
		} else {
			m.clearMessages()
		}
	case ActionChangeColor:
		m.scene.NextColor()
	case ActionChangeKind:
		m.scene.NextKind()
	case ActionUndo:
		m.scene.Undo()
	case ActionRedo:
		m.scene.Redo()
	case ActionToggleGrid:
		m.scene.ToggleGrid()
	case ActionSnapshot:
		if m.exportTo(m.snapshot) {
			log.Printf("snapshot: wrote %s", m.snapshot.lastPath)
			m.setSuccess("Saved " + m.snapshot.lastPath)
		}
	case ActionYank:
		if m.exportTo(m.clip) {
			m.setSuccess("Frame copied to clipboard")
		}
	case ActionHelp:
		m.help = !m.help
	case ActionQuit:
		return tea.Quit
	}
	return nil
}

func (m *model) handleCursorMove(action ActionType) {
	switch action {
	case ActionMoveLeft:
		m.scene.MoveCursor(-1, 0)
	case ActionMoveRight:
		m.scene.MoveCursor(1, 0)
	case ActionMoveUp:
		m.scene.MoveCursor(0, -1)
	case ActionMoveDown:
		m.scene.MoveCursor(0, 1)
	}
}

// exportTo renders a fresh frame and hands it to sink. Failures are logged
// and shown on the status line.
func (m *model) exportTo(sink Sink) bool {
	frame, err := m.renderFrame()
	if err == nil {
		err = sink.Write(frame.Grid(), frame.Bounds())
	}
	if err != nil {
		log.Printf("export: %v", err)
		m.setError(err.Error())
		return false
	}
	return true
}

func (m *model) setSuccess(msg string) {
	m.successMessage = msg
	m.errorMessage = ""
}

func (m *model) setError(msg string) {
	m.errorMessage = msg
	m.successMessage = ""
}

func (m *model) clearMessages() {
	m.errorMessage = ""
	m.successMessage = ""
}
