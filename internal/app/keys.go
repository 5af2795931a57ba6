package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/pacaro/internal/ui/overlay"
)

// handleKey processes keyboard input when no overlay is open
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.drag.Dragging() {
		return m.handleMoveMode(msg)
	}
	return m.handleNormalMode(msg)
}

// handleNormalMode processes keyboard input in normal mode
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	columns := m.buildColumns()

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "j", "down":
		m.nav.MoveDown(columns)
	case "k", "up":
		m.nav.MoveUp(columns)
	case "h", "left":
		m.nav.MoveLeft(columns)
	case "l", "right":
		m.nav.MoveRight(columns)
	case "g":
		m.nav.GotoTop(columns)
	case "G":
		m.nav.GotoBottom(columns)
	case "0":
		m.nav.GotoFirstColumn(columns)
	case "$":
		m.nav.GotoLastColumn(columns)

	case "c":
		if m.creator == nil {
			m.creator = overlay.NewCreateForm(m.client, m.reloadCmd)
		}
		return m, m.overlayStack.Push(m.creator)

	case "e", "enter":
		task, ok := m.nav.GetCurrentTask(columns)
		if !ok {
			return m, nil
		}
		if m.editor == nil {
			m.editor = overlay.NewEditForm(task, m.client, m.reloadCmd)
		} else {
			m.editor.SetTask(task)
		}
		return m, m.overlayStack.Push(m.editor)

	case "d":
		task, ok := m.nav.GetCurrentTask(columns)
		if !ok {
			return m, nil
		}
		return m, m.overlayStack.Push(overlay.NewDeleteConfirm(task))

	case "m":
		task, ok := m.nav.GetCurrentTask(columns)
		if !ok {
			return m, nil
		}
		m.drag.DragStart(task.ID)
		m.drag.DragOver(task.Step)

	case "r":
		return m, m.reloadCmd()

	case "v":
		m.compact = !m.compact

	case "?":
		return m, m.overlayStack.Push(overlay.NewHelpOverlay())
	}

	return m, nil
}

// handleMoveMode processes keyboard input while a card is picked up
func (m Model) handleMoveMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "h", "left":
		m.drag.MoveHover(-1)
	case "l", "right":
		m.drag.MoveHover(1)
	case "enter", " ":
		if move, ok := m.drag.DropOnHover(); ok {
			return m, m.updateStepCmd(move)
		}
	case "esc", "q":
		m.drag.Cancel()
	}
	return m, nil
}
