package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/pacaro/internal/domain"
	"github.com/riordanpawley/pacaro/internal/services/dragdrop"
)

// Message types for async operations

type tasksLoadedMsg struct {
	tasks []domain.Task
}

type tasksLoadFailedMsg struct {
	err error
}

type stepUpdatedMsg struct {
	move dragdrop.Move
	err  error
}

type taskDeletedMsg struct {
	id  int
	err error
}

type toastExpireMsg time.Time

// Commands

// reloadCmd fetches the full task list. It is also the changed callback
// handed to the task form.
func (m Model) reloadCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		tasks, err := client.List(context.Background())
		if err != nil {
			return tasksLoadFailedMsg{err: err}
		}
		return tasksLoadedMsg{tasks: tasks}
	}
}

// updateStepCmd persists an accepted drop
func (m Model) updateStepCmd(move dragdrop.Move) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		err := client.UpdateStep(context.Background(), move.TaskID, move.To)
		return stepUpdatedMsg{move: move, err: err}
	}
}

// deleteCmd removes a task after the user confirmed
func (m Model) deleteCmd(id int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		return taskDeletedMsg{id: id, err: client.Delete(context.Background(), id)}
	}
}
