package overlay

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/pacaro/internal/domain"
)

// ConfirmDialog is a confirmation dialog overlay with Yes/No options
type ConfirmDialog struct {
	title    string
	message  string
	taskID   int
	styles   *Styles
	selected bool // true = Yes, false = No
}

// ConfirmResult is carried in the SelectionMsg a ConfirmDialog emits
type ConfirmResult struct {
	Confirmed bool
	TaskID    int // task the question was about, 0 for none
}

// NewConfirmDialog creates a new confirmation dialog with the given title and message
func NewConfirmDialog(title, message string) *ConfirmDialog {
	return &ConfirmDialog{
		title:    title,
		message:  message,
		styles:   New(),
		selected: false, // Default to No
	}
}

// NewDeleteConfirm asks whether task should be deleted
func NewDeleteConfirm(task domain.Task) *ConfirmDialog {
	c := NewConfirmDialog(
		"Delete Task",
		fmt.Sprintf("Are you sure you want to delete the task: %q?", task.Title),
	)
	c.taskID = task.ID
	return c
}

// Init initializes the dialog
func (c *ConfirmDialog) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (c *ConfirmDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		return c, c.answer(true)

	case "n", "N", "esc":
		return c, c.answer(false)

	case "enter":
		return c, c.answer(c.selected)

	case "left", "h":
		c.selected = true
		return c, nil

	case "right", "l", "tab":
		c.selected = false
		return c, nil
	}

	return c, nil
}

func (c *ConfirmDialog) answer(confirmed bool) tea.Cmd {
	key := "no"
	if confirmed {
		key = "yes"
	}
	result := ConfirmResult{Confirmed: confirmed, TaskID: c.taskID}
	return func() tea.Msg {
		return SelectionMsg{Key: key, Value: result}
	}
}

// View renders the dialog
func (c *ConfirmDialog) View() string {
	var b strings.Builder

	if c.message != "" {
		b.WriteString(c.styles.MenuItem.Render(c.message))
		b.WriteString("\n\n")
	}

	yesStyle := c.styles.Button
	noStyle := c.styles.Button
	if c.selected {
		yesStyle = c.styles.ButtonActive
	} else {
		noStyle = c.styles.ButtonActive
	}

	b.WriteString(yesStyle.Render("[Y] Yes"))
	b.WriteString("    ")
	b.WriteString(noStyle.Render("[N] No"))
	b.WriteString("\n")

	b.WriteString(c.styles.Footer.Render("← → / Tab: Switch • Enter: Confirm • Esc: Cancel"))

	return b.String()
}

// Title returns the dialog title
func (c *ConfirmDialog) Title() string {
	return c.title
}

// Size returns the dialog dimensions
func (c *ConfirmDialog) Size() (width, height int) {
	messageLines := len(strings.Split(c.message, "\n"))
	return 60, messageLines + 6
}
