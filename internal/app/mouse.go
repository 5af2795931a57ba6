package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/pacaro/internal/domain"
	"github.com/riordanpawley/pacaro/internal/ui/board"
)

// headerHeight is the title line drawn above the board
const headerHeight = 1

// handleMouse drives the drag-and-drop coordinator from pointer events:
// press on a card picks it up, motion highlights the column under the
// pointer and release drops it there.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	columns := m.buildColumns()
	hit, inside := m.layout(columns).HitTest(columns, msg.X, msg.Y-headerHeight)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !inside || !hit.OnCard {
			return m, nil
		}
		task := columns[hit.Column].Tasks[hit.Task]
		m.nav.JumpToTaskByID(columns, task.ID)
		m.drag.DragStart(task.ID)

	case tea.MouseActionMotion:
		if !m.drag.Dragging() {
			return m, nil
		}
		if step, ok := stepUnder(hit, inside); ok {
			m.drag.DragOver(step)
		} else {
			m.drag.DragLeave()
		}

	case tea.MouseActionRelease:
		if !m.drag.Dragging() {
			return m, nil
		}
		step, ok := stepUnder(hit, inside)
		if !ok {
			m.drag.Cancel()
			return m, nil
		}
		if move, accepted := m.drag.Drop(step); accepted {
			return m, m.updateStepCmd(move)
		}
	}

	return m, nil
}

func stepUnder(hit board.Hit, inside bool) (domain.Step, bool) {
	if !inside {
		return "", false
	}
	return domain.StepAt(hit.Column)
}
