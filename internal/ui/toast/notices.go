package toast

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/pacaro/internal/domain"
	"github.com/riordanpawley/pacaro/internal/types"
)

// ShowMsg asks the controller to push a toast
type ShowMsg struct {
	Level   types.ToastLevel
	Message string
}

// Cmd returns a command that emits m
func (m ShowMsg) Cmd() tea.Cmd {
	return func() tea.Msg { return m }
}

// Op identifies a user-triggered task operation
type Op string

const (
	OpLoad   Op = "load"
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpMove   Op = "move"
	OpDelete Op = "delete"
)

type noticeText struct {
	success   string
	rejected  string
	transport string
	// rejected is a prefix followed by the server message
	withServerMessage bool
}

var notices = map[Op]noticeText{
	OpLoad: {
		rejected:  "Failed to load tasks.",
		transport: "Connection error while loading tasks.",
	},
	OpCreate: {
		success:           "Task created successfully!",
		rejected:          "Failed to create task: ",
		transport:         "Connection error while sending the task.",
		withServerMessage: true,
	},
	OpUpdate: {
		success:           "Task updated successfully!",
		rejected:          "Failed to update task: ",
		transport:         "Connection error while updating the task.",
		withServerMessage: true,
	},
	OpMove: {
		rejected:  "Failed to move the task.",
		transport: "Connection error while moving the task.",
	},
	OpDelete: {
		success:   "Task deleted successfully!",
		rejected:  "Failed to delete task.",
		transport: "Connection error while deleting the task.",
	},
}

// unknownServerMessage stands in when a rejection carries no message
const unknownServerMessage = "Unknown error."

// Notice returns the toast for the outcome of op.
// A nil err is a success; validation errors show their own message.
func Notice(op Op, err error) ShowMsg {
	text := notices[op]
	if err == nil {
		return ShowMsg{Level: types.ToastSuccess, Message: text.success}
	}

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return ShowMsg{Level: types.ToastError, Message: verr.Message}
	case domain.IsTransport(err):
		return ShowMsg{Level: types.ToastError, Message: text.transport}
	case text.withServerMessage:
		msg := domain.ServerMessage(err)
		if msg == "" {
			msg = unknownServerMessage
		}
		return ShowMsg{Level: types.ToastError, Message: text.rejected + msg}
	default:
		return ShowMsg{Level: types.ToastError, Message: text.rejected}
	}
}

// Moved is the success notice for a step change
func Moved(step domain.Step) ShowMsg {
	return ShowMsg{Level: types.ToastSuccess, Message: fmt.Sprintf("Task moved to %q!", string(step))}
}
